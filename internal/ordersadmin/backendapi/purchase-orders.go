package backendapi

import (
	"context"
	"fmt"

	"github.com/Shajeel/bnw-orders-admin/internal/common/backendprotocol"
)

// CombinePreview projects what a merge of the given purchase orders would
// produce, without changing anything upstream.
func (c *Client) CombinePreview(ctx context.Context, poIDs []string) (backendprotocol.CombinedPOPreview, error) {
	return postRecord[backendprotocol.CombinedPOPreview](
		ctx,
		c,
		"/purchase-orders/combine/preview",
		backendprotocol.CombinePORequest{PurchaseOrderIDs: poIDs},
	)
}

// MergePurchaseOrders triggers the upstream consolidation of the given
// purchase orders into one.
func (c *Client) MergePurchaseOrders(ctx context.Context, poIDs []string) (backendprotocol.PurchaseOrder, error) {
	return postRecord[backendprotocol.PurchaseOrder](
		ctx,
		c,
		"/purchase-orders/merge",
		backendprotocol.CombinePORequest{PurchaseOrderIDs: poIDs},
	)
}

// CombinableList returns the purchase orders of a vendor eligible for
// combining, optionally bounded by creation date.
func (c *Client) CombinableList(ctx context.Context, vendorID, startDate, endDate string) ([]backendprotocol.PurchaseOrder, error) {
	req, err := c.newRequest(ctx)
	if err != nil {
		return nil, err
	}
	req.SetQueryParam("vendorId", vendorID)
	if startDate != "" {
		req.SetQueryParam("startDate", startDate)
	}
	if endDate != "" {
		req.SetQueryParam("endDate", endDate)
	}
	resp, err := req.Get("/purchase-orders/combinable/list")
	if err != nil {
		return nil, fmt.Errorf("combinable list request failed: %w", err)
	}
	if err := c.checkStatus(ctx, resp); err != nil {
		return nil, err
	}
	return decodeRecord[[]backendprotocol.PurchaseOrder](ctx, c, resp.Body())
}
