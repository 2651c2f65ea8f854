package cdiscount

import "context"

// FulfillmentAPI covers the Octopia fulfillment service: stored products,
// inbound and outbound shipments, stocks and returns.
type FulfillmentAPI struct {
	r Requester
}

// NewFulfillmentAPI creates a FulfillmentAPI over r.
func NewFulfillmentAPI(r Requester) *FulfillmentAPI {
	return &FulfillmentAPI{r: r}
}

// CreateFulfillmentProducts registers products for fulfillment.
func (a *FulfillmentAPI) CreateFulfillmentProducts(ctx context.Context, products any) (*Response, error) {
	return a.r.Post(ctx, "/fulfillment-products", products, nil)
}

// GetInboundShipmentsCount returns the number of inbound shipments.
func (a *FulfillmentAPI) GetInboundShipmentsCount(ctx context.Context, params Params) (*Response, error) {
	return a.r.Get(ctx, "/inbound-shipments/count", params, nil)
}

// GetInboundShipments lists inbound shipments.
func (a *FulfillmentAPI) GetInboundShipments(ctx context.Context, params Params) (*Response, error) {
	return a.r.Get(ctx, "/inbound-shipments", params, nil)
}

// CreateInboundShipment declares an inbound shipment.
func (a *FulfillmentAPI) CreateInboundShipment(ctx context.Context, shipment any) (*Response, error) {
	return a.r.Post(ctx, "/inbound-shipments", shipment, nil)
}

// GetInboundShipment returns one inbound shipment.
func (a *FulfillmentAPI) GetInboundShipment(ctx context.Context, inboundShipmentID string) (*Response, error) {
	return a.r.Get(ctx, resourcePath("/inbound-shipments", inboundShipmentID), nil, nil)
}

// GetInboundShipmentDeliveryNotes returns the delivery notes of an inbound shipment.
func (a *FulfillmentAPI) GetInboundShipmentDeliveryNotes(
	ctx context.Context,
	inboundShipmentID string,
) (*Response, error) {
	return a.r.Get(ctx, resourcePath("/inbound-shipments", inboundShipmentID)+"/delivery-notes", nil, nil)
}

// GetStocks lists warehouse stocks.
func (a *FulfillmentAPI) GetStocks(ctx context.Context, params Params) (*Response, error) {
	return a.r.Get(ctx, "/stocks", params, nil)
}

// GetStock returns one stock.
func (a *FulfillmentAPI) GetStock(ctx context.Context, stockID string) (*Response, error) {
	return a.r.Get(ctx, resourcePath("/stocks", stockID), nil, nil)
}

// GetStockSellerReferences lists stock by seller reference.
func (a *FulfillmentAPI) GetStockSellerReferences(ctx context.Context, params Params) (*Response, error) {
	return a.r.Get(ctx, "/stock-seller-references", params, nil)
}

// GetOutboundShipments lists outbound shipments.
func (a *FulfillmentAPI) GetOutboundShipments(ctx context.Context, params Params) (*Response, error) {
	return a.r.Get(ctx, "/outbound-shipments", params, nil)
}

// CreateOutboundShipment requests an outbound shipment.
func (a *FulfillmentAPI) CreateOutboundShipment(ctx context.Context, shipment any) (*Response, error) {
	return a.r.Post(ctx, "/outbound-shipments", shipment, nil)
}

// GetOutboundShipment returns one outbound shipment.
func (a *FulfillmentAPI) GetOutboundShipment(ctx context.Context, outboundShipmentID string) (*Response, error) {
	return a.r.Get(ctx, resourcePath("/outbound-shipments", outboundShipmentID), nil, nil)
}

// CreateOutboundCancellationRequest asks to cancel an outbound shipment.
func (a *FulfillmentAPI) CreateOutboundCancellationRequest(ctx context.Context, request any) (*Response, error) {
	return a.r.Post(ctx, "/outbound-cancellation-requests", request, nil)
}

// GetOutboundCancellationRequest returns one outbound cancellation request.
func (a *FulfillmentAPI) GetOutboundCancellationRequest(ctx context.Context, requestID string) (*Response, error) {
	return a.r.Get(ctx, resourcePath("/outbound-cancellation-requests", requestID), nil, nil)
}

// GetReturnsCount returns the number of returns.
func (a *FulfillmentAPI) GetReturnsCount(ctx context.Context, params Params) (*Response, error) {
	return a.r.Get(ctx, "/returns/count", params, nil)
}

// GetReturns lists returns.
func (a *FulfillmentAPI) GetReturns(ctx context.Context, params Params) (*Response, error) {
	return a.r.Get(ctx, "/returns", params, nil)
}

// CreateReturn declares a return.
func (a *FulfillmentAPI) CreateReturn(ctx context.Context, ret any) (*Response, error) {
	return a.r.Post(ctx, "/returns", ret, nil)
}

// GetReturn returns one return.
func (a *FulfillmentAPI) GetReturn(ctx context.Context, returnID string) (*Response, error) {
	return a.r.Get(ctx, resourcePath("/returns", returnID), nil, nil)
}

// GetReturnLabels returns the shipping labels of a return.
func (a *FulfillmentAPI) GetReturnLabels(ctx context.Context, returnID string) (*Response, error) {
	return a.r.Get(ctx, resourcePath("/returns", returnID)+"/labels", nil, nil)
}
