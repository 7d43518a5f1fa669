package backendapi

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/Shajeel/bnw-orders-admin/internal/common/backendprotocol"
	"github.com/Shajeel/bnw-orders-admin/internal/ordersadmin/listquery"
)

// Sortable column sets per resource. A sort request outside the set fails
// validation before any network call.
var (
	bankOrderColumns     = []string{"orderDate", "poNumber", "refNo", "customerName", "redeemedPoints", "status", "createdAt"}
	bipOrderColumns      = []string{"orderDate", "poNumber", "eforms", "product", "customerName", "amount", "status", "createdAt"}
	productColumns       = []string{"name", "brand", "price", "status", "createdAt"}
	vendorColumns        = []string{"name", "city", "isActive"}
	bankColumns          = []string{"name", "code"}
	categoryColumns      = []string{"name"}
	purchaseOrderColumns = []string{"poNumber", "totalAmount", "status", "createdAt"}
)

func (c *Client) ListBankOrders(ctx context.Context, params listquery.Params) (listquery.Result[backendprotocol.BankOrder], error) {
	return list[backendprotocol.BankOrder](ctx, c, "/bank-orders", bankOrderColumns, params)
}

func (c *Client) ListBipOrders(ctx context.Context, params listquery.Params) (listquery.Result[backendprotocol.BipOrder], error) {
	return list[backendprotocol.BipOrder](ctx, c, "/bip-orders", bipOrderColumns, params)
}

func (c *Client) ListProducts(ctx context.Context, params listquery.Params) (listquery.Result[backendprotocol.Product], error) {
	return list[backendprotocol.Product](ctx, c, "/products", productColumns, params)
}

func (c *Client) ListVendors(ctx context.Context, params listquery.Params) (listquery.Result[backendprotocol.Vendor], error) {
	return list[backendprotocol.Vendor](ctx, c, "/vendors", vendorColumns, params)
}

func (c *Client) ListBanks(ctx context.Context, params listquery.Params) (listquery.Result[backendprotocol.Bank], error) {
	return list[backendprotocol.Bank](ctx, c, "/banks", bankColumns, params)
}

func (c *Client) ListCategories(ctx context.Context, params listquery.Params) (listquery.Result[backendprotocol.Category], error) {
	return list[backendprotocol.Category](ctx, c, "/categories", categoryColumns, params)
}

func (c *Client) ListPurchaseOrders(ctx context.Context, params listquery.Params) (listquery.Result[backendprotocol.PurchaseOrder], error) {
	return list[backendprotocol.PurchaseOrder](ctx, c, "/purchase-orders", purchaseOrderColumns, params)
}

// list is the one idempotent read behind every list endpoint: normalize,
// validate, encode the query with placeholders omitted, fetch, decode the
// envelope. No retry, no caching; every call is a fresh request.
func list[T any](ctx context.Context, c *Client, path string, sortable []string, params listquery.Params) (listquery.Result[T], error) {
	var zero listquery.Result[T]

	params = params.Normalize()
	if err := params.Validate(sortable); err != nil {
		return zero, err
	}

	req, err := c.newRequest(ctx)
	if err != nil {
		return zero, err
	}
	resp, err := req.SetQueryParamsFromValues(params.Values()).Get(path)
	if err != nil {
		return zero, fmt.Errorf("list request failed: %w", err)
	}
	if err := c.checkStatus(ctx, resp); err != nil {
		return zero, err
	}

	var envelope backendprotocol.Paginated[T]
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		c.logger.ErrorCtx(ctx, "error unmarshalling list response", zap.Error(err), zap.String("path", path))
		return zero, fmt.Errorf("error unmarshalling list response: %w", err)
	}
	return listquery.FromPaginated(envelope), nil
}

func (c *Client) GetBipOrder(ctx context.Context, orderID string) (backendprotocol.BipOrder, error) {
	return getRecord[backendprotocol.BipOrder](ctx, c, "/bip-orders/"+orderID)
}

func (c *Client) CreateBipOrder(ctx context.Context, order backendprotocol.CreateBipOrder) (backendprotocol.BipOrder, error) {
	return postRecord[backendprotocol.BipOrder](ctx, c, "/bip-orders", order)
}

func (c *Client) UpdateBipOrder(ctx context.Context, orderID string, update backendprotocol.UpdateBipOrder) (backendprotocol.BipOrder, error) {
	return patchRecord[backendprotocol.BipOrder](ctx, c, "/bip-orders/"+orderID, update)
}

func (c *Client) UpdateBipOrderStatus(ctx context.Context, orderID string, status backendprotocol.OrderStatus) (backendprotocol.BipOrder, error) {
	return patchRecord[backendprotocol.BipOrder](ctx, c, "/bip-orders/"+orderID+"/status", map[string]backendprotocol.OrderStatus{"status": status})
}

func (c *Client) DeleteBipOrder(ctx context.Context, orderID string) error {
	return deleteRecord(ctx, c, "/bip-orders/"+orderID)
}

func (c *Client) GetBankOrder(ctx context.Context, orderID string) (backendprotocol.BankOrder, error) {
	return getRecord[backendprotocol.BankOrder](ctx, c, "/bank-orders/"+orderID)
}

func (c *Client) CreateBankOrder(ctx context.Context, order backendprotocol.CreateBankOrder) (backendprotocol.BankOrder, error) {
	return postRecord[backendprotocol.BankOrder](ctx, c, "/bank-orders", order)
}

func (c *Client) UpdateBankOrder(ctx context.Context, orderID string, update backendprotocol.UpdateBankOrder) (backendprotocol.BankOrder, error) {
	return patchRecord[backendprotocol.BankOrder](ctx, c, "/bank-orders/"+orderID, update)
}

func (c *Client) UpdateBankOrderStatus(ctx context.Context, orderID string, status backendprotocol.OrderStatus) (backendprotocol.BankOrder, error) {
	return patchRecord[backendprotocol.BankOrder](ctx, c, "/bank-orders/"+orderID+"/status", map[string]backendprotocol.OrderStatus{"status": status})
}

func (c *Client) DeleteBankOrder(ctx context.Context, orderID string) error {
	return deleteRecord(ctx, c, "/bank-orders/"+orderID)
}
