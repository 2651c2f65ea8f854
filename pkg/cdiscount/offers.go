package cdiscount

import (
	"context"
	"strconv"
)

// DefaultPackageLanguage is the Accept-Language sent when creating an
// offer package without an explicit language.
const DefaultPackageLanguage = "en-US"

// OffersAPI manages offer packages, offer integration and offer search.
type OffersAPI struct {
	r Requester
}

// NewOffersAPI creates an OffersAPI over r.
func NewOffersAPI(r Requester) *OffersAPI {
	return &OffersAPI{r: r}
}

// CreatePackage opens an offer package scoped to a sales channel. An empty
// lang selects DefaultPackageLanguage.
func (a *OffersAPI) CreatePackage(
	ctx context.Context,
	packageType, salesChannelID, lang string,
) (*Response, error) {
	if lang == "" {
		lang = DefaultPackageLanguage
	}
	header := map[string]string{
		"salesChannelId":  salesChannelID,
		"Accept-Language": lang,
	}
	return a.r.Post(ctx, "/offer-packages", map[string]any{"packageType": packageType}, header)
}

// GetPackages lists offer packages.
func (a *OffersAPI) GetPackages(ctx context.Context, params Params) (*Response, error) {
	return a.r.Get(ctx, "/offer-packages", params, nil)
}

// GetPackage returns one offer package.
func (a *OffersAPI) GetPackage(ctx context.Context, packageID string) (*Response, error) {
	return a.r.Get(ctx, resourcePath("/offer-packages", packageID), nil, nil)
}

// SubmitPackage moves a package to the Ready state.
func (a *OffersAPI) SubmitPackage(ctx context.Context, packageID string) (*Response, error) {
	return a.r.Patch(ctx, resourcePath("/offer-packages", packageID), map[string]any{"state": "Ready"}, nil)
}

// UploadOfferRequests adds offer requests to an open package.
func (a *OffersAPI) UploadOfferRequests(ctx context.Context, packageID string, requests any) (*Response, error) {
	return a.r.Post(ctx, resourcePath("/offer-packages", packageID)+"/offer-requests", requests, nil)
}

// GetOfferRequestResults lists the outcome of each request in a package.
// A zero limit is omitted.
func (a *OffersAPI) GetOfferRequestResults(ctx context.Context, packageID string, limit int) (*Response, error) {
	return a.r.Get(
		ctx,
		resourcePath("/offer-packages", packageID)+"/offer-requests-results",
		PageOptions{Limit: limit}.Params(),
		nil,
	)
}

// GetOfferIntegrationPackage reads a legacy integration package. Zero
// limit or page are omitted.
func (a *OffersAPI) GetOfferIntegrationPackage(
	ctx context.Context,
	packageID int64,
	limit, page int,
) (*Response, error) {
	return a.r.Get(
		ctx,
		resourcePath("/offer-integration-packages", strconv.FormatInt(packageID, 10)),
		dollarPaging(limit, page),
		nil,
	)
}

// SubmitOfferIntegrationPackage registers a package file by URL.
func (a *OffersAPI) SubmitOfferIntegrationPackage(ctx context.Context, packageURL string) (*Response, error) {
	return a.r.Post(ctx, "/offer-integration-packages", map[string]any{"packageUrl": packageURL}, nil)
}

// SearchOffers searches offers with a request body.
//
// Deprecated: the upstream endpoint is deprecated.
func (a *OffersAPI) SearchOffers(ctx context.Context, request any, limit, page int) (*Response, error) {
	endpoint := "/offers/search"
	if q := dollarPaging(limit, page).Encode(); q != "" {
		endpoint += "?" + q
	}
	return a.r.Post(ctx, endpoint, request, nil)
}

// GetOffers lists offers on one sales channel.
func (a *OffersAPI) GetOffers(ctx context.Context, salesChannelID string, params Params) (*Response, error) {
	return a.r.Get(ctx, "/offers", MergeParams(params, Params{"salesChannelId": salesChannelID}), nil)
}

// GetCompetingOfferChanges lists recent competing offer changes.
//
// Deprecated: the upstream endpoint is deprecated.
func (a *OffersAPI) GetCompetingOfferChanges(ctx context.Context) (*Response, error) {
	return a.r.Get(ctx, "/competing-offer-changes", nil, nil)
}

// GetCompetingOffers lists competing offers for the given products.
//
// Deprecated: the upstream endpoint is deprecated.
func (a *OffersAPI) GetCompetingOffers(ctx context.Context, products ...string) (*Response, error) {
	return a.r.Get(ctx, "/competing-offers", Params{"products": products}, nil)
}

// dollarPaging builds the $limit/$page parameters used by the older offer
// endpoints.
func dollarPaging(limit, page int) Params {
	p := Params{}
	if limit > 0 {
		p["$limit"] = limit
	}
	if page > 0 {
		p["$page"] = page
	}
	return p
}
