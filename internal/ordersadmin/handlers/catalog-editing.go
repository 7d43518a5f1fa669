package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Shajeel/bnw-orders-admin/internal/common/backendprotocol"
	"github.com/Shajeel/bnw-orders-admin/pkg/logging"
)

// CatalogService covers the create/update/delete side of the four catalog
// resources; the list side lives on ListService.
type CatalogService interface {
	CreateProduct(ctx context.Context, input backendprotocol.ProductInput) (backendprotocol.Product, error)
	UpdateProduct(ctx context.Context, productID string, input backendprotocol.ProductInput) (backendprotocol.Product, error)
	DeleteProduct(ctx context.Context, productID string) error
	CreateVendor(ctx context.Context, input backendprotocol.VendorInput) (backendprotocol.Vendor, error)
	UpdateVendor(ctx context.Context, vendorID string, input backendprotocol.VendorInput) (backendprotocol.Vendor, error)
	DeleteVendor(ctx context.Context, vendorID string) error
	CreateBank(ctx context.Context, input backendprotocol.BankInput) (backendprotocol.Bank, error)
	UpdateBank(ctx context.Context, bankID string, input backendprotocol.BankInput) (backendprotocol.Bank, error)
	DeleteBank(ctx context.Context, bankID string) error
	CreateCategory(ctx context.Context, input backendprotocol.CategoryInput) (backendprotocol.Category, error)
	UpdateCategory(ctx context.Context, categoryID string, input backendprotocol.CategoryInput) (backendprotocol.Category, error)
	DeleteCategory(ctx context.Context, categoryID string) error
}

type CatalogEditingHandler struct {
	service CatalogService
	logger  *logging.ZapLogger
}

func NewCatalogEditingHandler(service CatalogService, logger *logging.ZapLogger) *CatalogEditingHandler {
	return &CatalogEditingHandler{
		service: service,
		logger:  logger,
	}
}

func (h *CatalogEditingHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	upsertCatalog(w, r, h.logger, func(in backendprotocol.ProductInput) string { return in.Name },
		func(ctx context.Context, in backendprotocol.ProductInput) (backendprotocol.Product, error) {
			return h.service.CreateProduct(ctx, in)
		})
}

func (h *CatalogEditingHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	upsertCatalog(w, r, h.logger, func(in backendprotocol.ProductInput) string { return in.Name },
		func(ctx context.Context, in backendprotocol.ProductInput) (backendprotocol.Product, error) {
			return h.service.UpdateProduct(ctx, chi.URLParam(r, "id"), in)
		})
}

func (h *CatalogEditingHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	h.deleteCatalog(w, r, h.service.DeleteProduct)
}

func (h *CatalogEditingHandler) CreateVendor(w http.ResponseWriter, r *http.Request) {
	upsertCatalog(w, r, h.logger, func(in backendprotocol.VendorInput) string { return in.Name },
		func(ctx context.Context, in backendprotocol.VendorInput) (backendprotocol.Vendor, error) {
			return h.service.CreateVendor(ctx, in)
		})
}

func (h *CatalogEditingHandler) UpdateVendor(w http.ResponseWriter, r *http.Request) {
	upsertCatalog(w, r, h.logger, func(in backendprotocol.VendorInput) string { return in.Name },
		func(ctx context.Context, in backendprotocol.VendorInput) (backendprotocol.Vendor, error) {
			return h.service.UpdateVendor(ctx, chi.URLParam(r, "id"), in)
		})
}

func (h *CatalogEditingHandler) DeleteVendor(w http.ResponseWriter, r *http.Request) {
	h.deleteCatalog(w, r, h.service.DeleteVendor)
}

func (h *CatalogEditingHandler) CreateBank(w http.ResponseWriter, r *http.Request) {
	upsertCatalog(w, r, h.logger, func(in backendprotocol.BankInput) string { return in.Name },
		func(ctx context.Context, in backendprotocol.BankInput) (backendprotocol.Bank, error) {
			return h.service.CreateBank(ctx, in)
		})
}

func (h *CatalogEditingHandler) UpdateBank(w http.ResponseWriter, r *http.Request) {
	upsertCatalog(w, r, h.logger, func(in backendprotocol.BankInput) string { return in.Name },
		func(ctx context.Context, in backendprotocol.BankInput) (backendprotocol.Bank, error) {
			return h.service.UpdateBank(ctx, chi.URLParam(r, "id"), in)
		})
}

func (h *CatalogEditingHandler) DeleteBank(w http.ResponseWriter, r *http.Request) {
	h.deleteCatalog(w, r, h.service.DeleteBank)
}

func (h *CatalogEditingHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	upsertCatalog(w, r, h.logger, func(in backendprotocol.CategoryInput) string { return in.Name },
		func(ctx context.Context, in backendprotocol.CategoryInput) (backendprotocol.Category, error) {
			return h.service.CreateCategory(ctx, in)
		})
}

func (h *CatalogEditingHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	upsertCatalog(w, r, h.logger, func(in backendprotocol.CategoryInput) string { return in.Name },
		func(ctx context.Context, in backendprotocol.CategoryInput) (backendprotocol.Category, error) {
			return h.service.UpdateCategory(ctx, chi.URLParam(r, "id"), in)
		})
}

func (h *CatalogEditingHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	h.deleteCatalog(w, r, h.service.DeleteCategory)
}

// upsertCatalog decodes the input, checks the one field every catalog form
// requires, and forwards. Everything else is the upstream's call.
func upsertCatalog[In, Out any](
	w http.ResponseWriter,
	r *http.Request,
	logger *logging.ZapLogger,
	name func(In) string,
	action func(ctx context.Context, in In) (Out, error),
) {
	defer closeBody(r.Context(), r.Body, logger)

	input, err := decodeJSON[In](r.Body)
	if err != nil {
		logger.DebugCtx(r.Context(), "input decoding error", zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if name(input) == "" {
		writeMessage(w, http.StatusUnprocessableEntity, "name is required")
		return
	}

	record, err := action(r.Context(), input)
	if err != nil {
		writeUpstreamError(r.Context(), w, logger, err)
		return
	}
	if err := tryWriteResponseJSON(w, record); err != nil {
		logger.ErrorCtx(r.Context(), "error writing catalog response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (h *CatalogEditingHandler) deleteCatalog(
	w http.ResponseWriter,
	r *http.Request,
	remove func(ctx context.Context, id string) error,
) {
	if err := remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeUpstreamError(r.Context(), w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
