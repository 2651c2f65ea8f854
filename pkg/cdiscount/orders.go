package cdiscount

import "context"

// DefaultApprovalStatus is the approval status sent by ValidateOrder when
// none is given.
const DefaultApprovalStatus = "Accepted"

// OrdersAPI covers orders, cancellations and commercial gestures.
type OrdersAPI struct {
	r Requester
}

// NewOrdersAPI creates an OrdersAPI over r.
func NewOrdersAPI(r Requester) *OrdersAPI {
	return &OrdersAPI{r: r}
}

// GetOrdersCount returns the number of orders matching params.
func (a *OrdersAPI) GetOrdersCount(ctx context.Context, params Params) (*Response, error) {
	return a.r.Get(ctx, "/orders/count", params, nil)
}

// GetOrders lists orders. Typical params are status, salesChannel,
// updatedAtMin, updatedAtMax, pageIndex and pageSize.
func (a *OrdersAPI) GetOrders(ctx context.Context, params Params) (*Response, error) {
	return a.r.Get(ctx, "/orders", params, nil)
}

// GetOrder returns one order.
func (a *OrdersAPI) GetOrder(ctx context.Context, orderID string) (*Response, error) {
	return a.r.Get(ctx, resourcePath("/orders", orderID), nil, nil)
}

// ValidateOrder sets the approval status of an order. An empty status
// selects DefaultApprovalStatus.
func (a *OrdersAPI) ValidateOrder(ctx context.Context, orderID, approvalStatus string) (*Response, error) {
	if approvalStatus == "" {
		approvalStatus = DefaultApprovalStatus
	}
	return a.r.Post(
		ctx,
		resourcePath("/orders", orderID)+"/approval-status",
		map[string]any{"approval_status": approvalStatus},
		nil,
	)
}

// ShipOrder posts shipment information for an order.
func (a *OrdersAPI) ShipOrder(ctx context.Context, orderID string, shipments any) (*Response, error) {
	return a.r.Post(ctx, resourcePath("/orders", orderID)+"/shipments", shipments, nil)
}

// GetCancellationReasons lists the reasons accepted for a cancellation.
// Empty filters are omitted.
func (a *OrdersAPI) GetCancellationReasons(
	ctx context.Context,
	salesChannel, userType, orderStatus string,
) (*Response, error) {
	return a.r.Get(ctx, "/cancellation-reasons", Params{
		"salesChannel": salesChannel,
		"userType":     userType,
		"orderStatus":  orderStatus,
	}, nil)
}

// GetCancellationRequests lists order cancellation requests.
func (a *OrdersAPI) GetCancellationRequests(ctx context.Context, params Params) (*Response, error) {
	return a.r.Get(ctx, "/order-cancellation-requests", params, nil)
}

// CreateCancellationRequest asks for a full cancellation of an order.
func (a *OrdersAPI) CreateCancellationRequest(
	ctx context.Context,
	orderID, reason string,
	shippingCostRefund bool,
) (*Response, error) {
	return a.r.Post(ctx, "/order-cancellation-requests", map[string]any{
		"orderId":            orderID,
		"reason":             reason,
		"shippingCostRefund": shippingCostRefund,
	}, nil)
}

// CreatePartialCancellationRequest cancels selected lines of an order.
func (a *OrdersAPI) CreatePartialCancellationRequest(
	ctx context.Context,
	orderSellerID string,
	lines []any,
	shippingCostRefund bool,
) (*Response, error) {
	return a.r.Post(ctx, "/order-partial-cancellation-requests", map[string]any{
		"orderSellerId":      orderSellerID,
		"lines":              lines,
		"shippingCostRefund": shippingCostRefund,
	}, nil)
}

// GetCommercialGestureAvailableAmounts returns the amounts a gesture on the order may refund.
func (a *OrdersAPI) GetCommercialGestureAvailableAmounts(ctx context.Context, orderID string) (*Response, error) {
	return a.r.Get(ctx, resourcePath("/orders", orderID)+"/commercial-gestures-available-amounts", nil, nil)
}

// GetCommercialGestureRequests lists commercial gesture requests.
func (a *OrdersAPI) GetCommercialGestureRequests(ctx context.Context, params Params) (*Response, error) {
	return a.r.Get(ctx, "/order-commercial-gesture-requests", params, nil)
}

// CreateCommercialGestureRequest offers a partial refund on an order.
// reasonDetails is sent only when non-empty.
func (a *OrdersAPI) CreateCommercialGestureRequest(
	ctx context.Context,
	orderID, reason string,
	amount float64,
	reasonDetails string,
) (*Response, error) {
	body := map[string]any{
		"orderId": orderID,
		"reason":  reason,
		"amount":  amount,
	}
	if reasonDetails != "" {
		body["reasonDetails"] = reasonDetails
	}
	return a.r.Post(ctx, "/order-commercial-gesture-requests", body, nil)
}

// GetCommercialGestureRequest returns one commercial gesture request.
func (a *OrdersAPI) GetCommercialGestureRequest(ctx context.Context, requestID string) (*Response, error) {
	return a.r.Get(ctx, resourcePath("/order-commercial-gesture-requests", requestID), nil, nil)
}

// GetSalesChannelCommercialGestureConfiguration returns the gesture rules of a sales channel.
func (a *OrdersAPI) GetSalesChannelCommercialGestureConfiguration(
	ctx context.Context,
	salesChannelID string,
) (*Response, error) {
	return a.r.Get(ctx, resourcePath("/sales-channel-commercial-gesture-configurations", salesChannelID), nil, nil)
}
