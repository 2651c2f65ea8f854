package cdiscount

import "context"

// FinanceAPI reads invoices, operations, payments and reports.
type FinanceAPI struct {
	r Requester
}

// NewFinanceAPI creates a FinanceAPI over r.
func NewFinanceAPI(r Requester) *FinanceAPI {
	return &FinanceAPI{r: r}
}

// GetInvoiceDetails lists the lines of an invoice.
func (a *FinanceAPI) GetInvoiceDetails(ctx context.Context, invoiceID string, params Params) (*Response, error) {
	return a.r.Get(ctx, resourcePath("/invoices", invoiceID)+"/details", params, nil)
}

// GetInvoiceDetailsCount returns the number of lines of an invoice.
func (a *FinanceAPI) GetInvoiceDetailsCount(ctx context.Context, invoiceID string) (*Response, error) {
	return a.r.Get(ctx, resourcePath("/invoices", invoiceID)+"/details/count", nil, nil)
}

// GetInvoiceDocuments lists the documents of an invoice.
func (a *FinanceAPI) GetInvoiceDocuments(ctx context.Context, invoiceID string) (*Response, error) {
	return a.r.Get(ctx, resourcePath("/invoices", invoiceID)+"/documents", nil, nil)
}

// GetAllInvoiceDocuments lists invoice documents across invoices.
func (a *FinanceAPI) GetAllInvoiceDocuments(ctx context.Context, params Params) (*Response, error) {
	return a.r.Get(ctx, "/invoice-documents", params, nil)
}

// GetOperations lists financial operations.
func (a *FinanceAPI) GetOperations(ctx context.Context, params Params) (*Response, error) {
	return a.r.Get(ctx, "/operations", params, nil)
}

// GetOperationsCount returns the number of financial operations.
func (a *FinanceAPI) GetOperationsCount(ctx context.Context, params Params) (*Response, error) {
	return a.r.Get(ctx, "/operations/count", params, nil)
}

// GetPayments lists payments.
func (a *FinanceAPI) GetPayments(ctx context.Context, params Params) (*Response, error) {
	return a.r.Get(ctx, "/payments", params, nil)
}

// GetPaymentsCount returns the number of payments.
func (a *FinanceAPI) GetPaymentsCount(ctx context.Context, params Params) (*Response, error) {
	return a.r.Get(ctx, "/payments/count", params, nil)
}

// GetReports lists financial reports.
func (a *FinanceAPI) GetReports(ctx context.Context, params Params) (*Response, error) {
	return a.r.Get(ctx, "/reports", params, nil)
}

// GetReportDocuments lists the documents of a report.
func (a *FinanceAPI) GetReportDocuments(ctx context.Context, reportID string) (*Response, error) {
	return a.r.Get(ctx, resourcePath("/reports", reportID)+"/report-documents", nil, nil)
}
