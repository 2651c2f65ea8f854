package cdiscount

import "context"

// DefaultProductLanguage is the Accept-Language sent when submitting
// products without an explicit language.
const DefaultProductLanguage = "fr-FR"

// ProductsAPI covers the catalog: categories, brands and product
// integration. Methods taking lang send it as Accept-Language when set.
type ProductsAPI struct {
	r Requester
}

// NewProductsAPI creates a ProductsAPI over r.
func NewProductsAPI(r Requester) *ProductsAPI {
	return &ProductsAPI{r: r}
}

// GetCategoriesCount returns the number of categories.
func (a *ProductsAPI) GetCategoriesCount(ctx context.Context, lang string) (*Response, error) {
	return a.r.Get(ctx, "/categories/count", nil, languageHeader(lang))
}

// GetCategories lists catalog categories.
func (a *ProductsAPI) GetCategories(ctx context.Context, params Params, lang string) (*Response, error) {
	return a.r.Get(ctx, "/categories", params, languageHeader(lang))
}

// GetCategory returns one category.
func (a *ProductsAPI) GetCategory(ctx context.Context, categoryReference, lang string) (*Response, error) {
	return a.r.Get(ctx, resourcePath("/categories", categoryReference), nil, languageHeader(lang))
}

// GetCategoryProperties lists the properties products in a category must carry.
func (a *ProductsAPI) GetCategoryProperties(
	ctx context.Context,
	categoryReference, lang string,
) (*Response, error) {
	return a.r.Get(
		ctx,
		resourcePath("/categories", categoryReference)+"/properties",
		nil,
		languageHeader(lang),
	)
}

// GetBrands lists brands. Zero pageIndex or pageSize and an empty fields
// selector are omitted.
func (a *ProductsAPI) GetBrands(ctx context.Context, pageIndex, pageSize int, fields string) (*Response, error) {
	params := PageOptions{PageIndex: pageIndex, PageSize: pageSize}.Params()
	params["fields"] = fields
	return a.r.Get(ctx, "/brands", params, nil)
}

// GetProductsCount counts products, optionally within one category.
func (a *ProductsAPI) GetProductsCount(ctx context.Context, categoryReference, lang string) (*Response, error) {
	return a.r.Get(
		ctx,
		"/products/count",
		Params{"categoryReference": categoryReference},
		languageHeader(lang),
	)
}

// GetProducts lists catalog products.
func (a *ProductsAPI) GetProducts(ctx context.Context, params Params, lang string) (*Response, error) {
	return a.r.Get(ctx, "/products", params, languageHeader(lang))
}

// SubmitProducts sends products for integration. An empty lang selects
// DefaultProductLanguage.
func (a *ProductsAPI) SubmitProducts(ctx context.Context, products []any, lang string) (*Response, error) {
	if lang == "" {
		lang = DefaultProductLanguage
	}
	return a.r.Post(
		ctx,
		"/products-integration",
		map[string]any{"products": products},
		languageHeader(lang),
	)
}

// GetProductIntegrationReports lists product integration reports.
func (a *ProductsAPI) GetProductIntegrationReports(
	ctx context.Context,
	params Params,
	lang string,
) (*Response, error) {
	return a.r.Get(ctx, "/products-integration-reports", params, languageHeader(lang))
}
