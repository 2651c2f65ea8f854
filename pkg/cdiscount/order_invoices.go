package cdiscount

import "context"

// OrderInvoicesAPI uploads and reads order invoice files.
type OrderInvoicesAPI struct {
	r Requester
}

// NewOrderInvoicesAPI creates an OrderInvoicesAPI over r.
func NewOrderInvoicesAPI(r Requester) *OrderInvoicesAPI {
	return &OrderInvoicesAPI{r: r}
}

// GetInvoiceImports lists invoice imports using cursor paging.
func (a *OrderInvoicesAPI) GetInvoiceImports(ctx context.Context, pageSize int, cursor string) (*Response, error) {
	return a.r.Get(ctx, "/order-invoice-imports", PageOptions{PageSize: pageSize, Cursor: cursor}.Params(), nil)
}

// UploadInvoiceFiles imports invoice files as one multipart request.
func (a *OrderInvoicesAPI) UploadInvoiceFiles(ctx context.Context, files []Part) (*Response, error) {
	return a.r.PostMultipart(ctx, "/order-invoice-imports", files, nil)
}

// GetInvoiceImport returns the status of one invoice import.
func (a *OrderInvoicesAPI) GetInvoiceImport(ctx context.Context, importID string) (*Response, error) {
	return a.r.Get(ctx, resourcePath("/order-invoice-imports", importID), nil, nil)
}

// GetOrderInvoiceDocuments lists the invoice documents attached to an order.
func (a *OrderInvoicesAPI) GetOrderInvoiceDocuments(ctx context.Context, orderID string) (*Response, error) {
	return a.r.Get(ctx, resourcePath("/orders", orderID)+"/invoice-documents", nil, nil)
}

// UploadOrderInvoiceDocuments attaches invoice documents to one order.
func (a *OrderInvoicesAPI) UploadOrderInvoiceDocuments(
	ctx context.Context,
	orderID string,
	files []Part,
) (*Response, error) {
	return a.r.PostMultipart(ctx, resourcePath("/orders", orderID)+"/invoice-documents", files, nil)
}
