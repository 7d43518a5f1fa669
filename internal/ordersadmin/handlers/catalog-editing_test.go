package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shajeel/bnw-orders-admin/internal/common/backendprotocol"
	"github.com/Shajeel/bnw-orders-admin/internal/ordersadmin/backendapi"
	"github.com/Shajeel/bnw-orders-admin/pkg/logging"
)

type fakeCatalogService struct {
	gotID      string
	gotProduct backendprotocol.ProductInput
	gotVendor  backendprotocol.VendorInput
	deleted    []string
	err        error
}

func (f *fakeCatalogService) CreateProduct(_ context.Context, input backendprotocol.ProductInput) (backendprotocol.Product, error) {
	f.gotProduct = input
	return backendprotocol.Product{ID: "p1", Name: input.Name}, f.err
}

func (f *fakeCatalogService) UpdateProduct(_ context.Context, productID string, input backendprotocol.ProductInput) (backendprotocol.Product, error) {
	f.gotID = productID
	f.gotProduct = input
	return backendprotocol.Product{ID: productID, Name: input.Name}, f.err
}

func (f *fakeCatalogService) DeleteProduct(_ context.Context, productID string) error {
	f.deleted = append(f.deleted, productID)
	return f.err
}

func (f *fakeCatalogService) CreateVendor(_ context.Context, input backendprotocol.VendorInput) (backendprotocol.Vendor, error) {
	f.gotVendor = input
	return backendprotocol.Vendor{ID: "v1", Name: input.Name}, f.err
}

func (f *fakeCatalogService) UpdateVendor(_ context.Context, vendorID string, input backendprotocol.VendorInput) (backendprotocol.Vendor, error) {
	f.gotID = vendorID
	f.gotVendor = input
	return backendprotocol.Vendor{ID: vendorID, Name: input.Name}, f.err
}

func (f *fakeCatalogService) DeleteVendor(_ context.Context, vendorID string) error {
	f.deleted = append(f.deleted, vendorID)
	return f.err
}

func (f *fakeCatalogService) CreateBank(_ context.Context, input backendprotocol.BankInput) (backendprotocol.Bank, error) {
	return backendprotocol.Bank{ID: "b1", Name: input.Name}, f.err
}

func (f *fakeCatalogService) UpdateBank(_ context.Context, bankID string, input backendprotocol.BankInput) (backendprotocol.Bank, error) {
	f.gotID = bankID
	return backendprotocol.Bank{ID: bankID, Name: input.Name}, f.err
}

func (f *fakeCatalogService) DeleteBank(_ context.Context, bankID string) error {
	f.deleted = append(f.deleted, bankID)
	return f.err
}

func (f *fakeCatalogService) CreateCategory(_ context.Context, input backendprotocol.CategoryInput) (backendprotocol.Category, error) {
	return backendprotocol.Category{ID: "c1", Name: input.Name}, f.err
}

func (f *fakeCatalogService) UpdateCategory(_ context.Context, categoryID string, input backendprotocol.CategoryInput) (backendprotocol.Category, error) {
	f.gotID = categoryID
	return backendprotocol.Category{ID: categoryID, Name: input.Name}, f.err
}

func (f *fakeCatalogService) DeleteCategory(_ context.Context, categoryID string) error {
	f.deleted = append(f.deleted, categoryID)
	return f.err
}

func catalogEditingRouter(service CatalogService) *chi.Mux {
	handler := NewCatalogEditingHandler(service, logging.NewNop())
	router := chi.NewRouter()
	router.Post("/products", handler.CreateProduct)
	router.Patch("/products/{id}", handler.UpdateProduct)
	router.Delete("/products/{id}", handler.DeleteProduct)
	router.Post("/vendors", handler.CreateVendor)
	router.Patch("/vendors/{id}", handler.UpdateVendor)
	router.Delete("/vendors/{id}", handler.DeleteVendor)
	return router
}

func TestCatalogEditing_CreateProduct(t *testing.T) {
	service := &fakeCatalogService{}
	router := catalogEditingRouter(service)

	body := `{"name":"Fridge","brand":"Haier","price":"104999","categoryId":"c9","status":"active"}`
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Fridge", service.gotProduct.Name)
	assert.Equal(t, "c9", service.gotProduct.CategoryID)
	assert.Contains(t, rec.Body.String(), "p1")
}

func TestCatalogEditing_EmptyNameRejected(t *testing.T) {
	service := &fakeCatalogService{}
	router := catalogEditingRouter(service)

	req := httptest.NewRequest(http.MethodPost, "/vendors", strings.NewReader(`{"email":"x@y.pk"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "name is required")
	assert.Empty(t, service.gotVendor.Email, "invalid input must not reach the upstream")
}

func TestCatalogEditing_UpdateForwardsID(t *testing.T) {
	service := &fakeCatalogService{}
	router := catalogEditingRouter(service)

	req := httptest.NewRequest(http.MethodPatch, "/vendors/v3", strings.NewReader(`{"name":"Haier Lahore"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "v3", service.gotID)
	assert.Equal(t, "Haier Lahore", service.gotVendor.Name)
}

func TestCatalogEditing_DeleteIsNoContent(t *testing.T) {
	service := &fakeCatalogService{}
	router := catalogEditingRouter(service)

	req := httptest.NewRequest(http.MethodDelete, "/products/p4", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{"p4"}, service.deleted)
}

func TestCatalogEditing_UpstreamNotFound(t *testing.T) {
	service := &fakeCatalogService{err: backendapi.ErrNotFound}
	router := catalogEditingRouter(service)

	req := httptest.NewRequest(http.MethodPatch, "/products/p9", strings.NewReader(`{"name":"Fridge"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
