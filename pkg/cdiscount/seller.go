package cdiscount

import "context"

// SellerAPI reads the seller account profile.
type SellerAPI struct {
	r Requester
}

// NewSellerAPI creates a SellerAPI over r.
func NewSellerAPI(r Requester) *SellerAPI {
	return &SellerAPI{r: r}
}

// GetSeller returns the seller profile.
func (a *SellerAPI) GetSeller(ctx context.Context) (*Response, error) {
	return a.r.Get(ctx, "/sellers", nil, nil)
}

// GetAddresses returns the seller's addresses.
func (a *SellerAPI) GetAddresses(ctx context.Context) (*Response, error) {
	return a.r.Get(ctx, "/sellers/addresses", nil, nil)
}

// GetIndicators returns the seller's performance indicators.
func (a *SellerAPI) GetIndicators(ctx context.Context) (*Response, error) {
	return a.r.Get(ctx, "/sellers/indicators", nil, nil)
}

// GetSubscriptions returns the seller's subscriptions.
func (a *SellerAPI) GetSubscriptions(ctx context.Context) (*Response, error) {
	return a.r.Get(ctx, "/sellers/subscriptions", nil, nil)
}

// GetDeliveryModes returns the delivery modes configured for the seller.
func (a *SellerAPI) GetDeliveryModes(ctx context.Context) (*Response, error) {
	return a.r.Get(ctx, "/sellers/delivery-modes", nil, nil)
}

// GetCarriers returns the available carriers.
//
// Deprecated: the upstream endpoint is deprecated.
func (a *SellerAPI) GetCarriers(ctx context.Context) (*Response, error) {
	return a.r.Get(ctx, "/carriers", nil, nil)
}
