package handlers

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/Shajeel/bnw-orders-admin/internal/common/backendprotocol"
	"github.com/Shajeel/bnw-orders-admin/pkg/logging"
)

type PurchaseOrderService interface {
	CombinePreview(ctx context.Context, poIDs []string) (backendprotocol.CombinedPOPreview, error)
	MergePurchaseOrders(ctx context.Context, poIDs []string) (backendprotocol.PurchaseOrder, error)
	CombinableList(ctx context.Context, vendorID, startDate, endDate string) ([]backendprotocol.PurchaseOrder, error)
}

type POCombinerHandler struct {
	service PurchaseOrderService
	logger  *logging.ZapLogger
}

func NewPOCombinerHandler(service PurchaseOrderService, logger *logging.ZapLogger) *POCombinerHandler {
	return &POCombinerHandler{
		service: service,
		logger:  logger,
	}
}

func (h *POCombinerHandler) Preview(w http.ResponseWriter, r *http.Request) {
	h.combine(w, r, func(ctx context.Context, poIDs []string) (any, error) {
		return h.service.CombinePreview(ctx, poIDs)
	})
}

func (h *POCombinerHandler) Merge(w http.ResponseWriter, r *http.Request) {
	h.combine(w, r, func(ctx context.Context, poIDs []string) (any, error) {
		return h.service.MergePurchaseOrders(ctx, poIDs)
	})
}

func (h *POCombinerHandler) combine(
	w http.ResponseWriter,
	r *http.Request,
	action func(ctx context.Context, poIDs []string) (any, error),
) {
	defer closeBody(r.Context(), r.Body, h.logger)

	request, err := decodeJSON[backendprotocol.CombinePORequest](r.Body)
	if err != nil {
		h.logger.DebugCtx(r.Context(), "input decoding error", zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if len(request.PurchaseOrderIDs) < 2 {
		writeMessage(w, http.StatusUnprocessableEntity, "combining needs at least two purchase orders")
		return
	}

	result, err := action(r.Context(), request.PurchaseOrderIDs)
	if err != nil {
		writeUpstreamError(r.Context(), w, h.logger, err)
		return
	}
	if err := tryWriteResponseJSON(w, result); err != nil {
		h.logger.ErrorCtx(r.Context(), "error writing combine response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (h *POCombinerHandler) Combinable(w http.ResponseWriter, r *http.Request) {
	vendorID := r.URL.Query().Get("vendorId")
	if vendorID == "" {
		writeMessage(w, http.StatusBadRequest, "vendorId is required")
		return
	}
	pos, err := h.service.CombinableList(
		r.Context(),
		vendorID,
		r.URL.Query().Get("startDate"),
		r.URL.Query().Get("endDate"),
	)
	if err != nil {
		writeUpstreamError(r.Context(), w, h.logger, err)
		return
	}
	if err := tryWriteResponseJSON(w, pos); err != nil {
		h.logger.ErrorCtx(r.Context(), "error writing combinable response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}
