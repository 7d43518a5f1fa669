package backendapi

import (
	"context"

	"github.com/Shajeel/bnw-orders-admin/internal/common/backendprotocol"
)

// Catalog write passthroughs. The upstream owns all validation beyond the
// non-empty name the handlers check; its message surfaces via checkStatus.

func (c *Client) CreateProduct(ctx context.Context, input backendprotocol.ProductInput) (backendprotocol.Product, error) {
	return postRecord[backendprotocol.Product](ctx, c, "/products", input)
}

func (c *Client) UpdateProduct(ctx context.Context, productID string, input backendprotocol.ProductInput) (backendprotocol.Product, error) {
	return patchRecord[backendprotocol.Product](ctx, c, "/products/"+productID, input)
}

func (c *Client) DeleteProduct(ctx context.Context, productID string) error {
	return deleteRecord(ctx, c, "/products/"+productID)
}

func (c *Client) CreateVendor(ctx context.Context, input backendprotocol.VendorInput) (backendprotocol.Vendor, error) {
	return postRecord[backendprotocol.Vendor](ctx, c, "/vendors", input)
}

func (c *Client) UpdateVendor(ctx context.Context, vendorID string, input backendprotocol.VendorInput) (backendprotocol.Vendor, error) {
	return patchRecord[backendprotocol.Vendor](ctx, c, "/vendors/"+vendorID, input)
}

func (c *Client) DeleteVendor(ctx context.Context, vendorID string) error {
	return deleteRecord(ctx, c, "/vendors/"+vendorID)
}

func (c *Client) CreateBank(ctx context.Context, input backendprotocol.BankInput) (backendprotocol.Bank, error) {
	return postRecord[backendprotocol.Bank](ctx, c, "/banks", input)
}

func (c *Client) UpdateBank(ctx context.Context, bankID string, input backendprotocol.BankInput) (backendprotocol.Bank, error) {
	return patchRecord[backendprotocol.Bank](ctx, c, "/banks/"+bankID, input)
}

func (c *Client) DeleteBank(ctx context.Context, bankID string) error {
	return deleteRecord(ctx, c, "/banks/"+bankID)
}

func (c *Client) CreateCategory(ctx context.Context, input backendprotocol.CategoryInput) (backendprotocol.Category, error) {
	return postRecord[backendprotocol.Category](ctx, c, "/categories", input)
}

func (c *Client) UpdateCategory(ctx context.Context, categoryID string, input backendprotocol.CategoryInput) (backendprotocol.Category, error) {
	return patchRecord[backendprotocol.Category](ctx, c, "/categories/"+categoryID, input)
}

func (c *Client) DeleteCategory(ctx context.Context, categoryID string) error {
	return deleteRecord(ctx, c, "/categories/"+categoryID)
}
