package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Shajeel/bnw-orders-admin/internal/common/backendprotocol"
	"github.com/Shajeel/bnw-orders-admin/internal/ordersadmin/backendapi"
	"github.com/Shajeel/bnw-orders-admin/pkg/logging"
)

type ShipmentService interface {
	DispatchOrder(ctx context.Context, kind backendapi.OrderKind, orderID string, req backendprotocol.DispatchRequest) (backendprotocol.Shipment, error)
	ManualDispatchOrder(ctx context.Context, kind backendapi.OrderKind, orderID string, req backendprotocol.DispatchRequest) (backendprotocol.Shipment, error)
	ActiveCouriers(ctx context.Context) ([]backendprotocol.Courier, error)
}

type ShipmentDispatcherHandler struct {
	service ShipmentService
	logger  *logging.ZapLogger
}

func NewShipmentDispatcherHandler(service ShipmentService, logger *logging.ZapLogger) *ShipmentDispatcherHandler {
	return &ShipmentDispatcherHandler{
		service: service,
		logger:  logger,
	}
}

func (h *ShipmentDispatcherHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, h.service.DispatchOrder)
}

func (h *ShipmentDispatcherHandler) ManualDispatch(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, h.service.ManualDispatchOrder)
}

func (h *ShipmentDispatcherHandler) dispatch(
	w http.ResponseWriter,
	r *http.Request,
	send func(ctx context.Context, kind backendapi.OrderKind, orderID string, req backendprotocol.DispatchRequest) (backendprotocol.Shipment, error),
) {
	defer closeBody(r.Context(), r.Body, h.logger)

	kind, err := backendapi.ParseOrderKind(chi.URLParam(r, "kind"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	orderID := chi.URLParam(r, "orderID")

	request, err := decodeJSON[backendprotocol.DispatchRequest](r.Body)
	if err != nil {
		h.logger.DebugCtx(r.Context(), "input decoding error", zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	shipment, err := send(r.Context(), kind, orderID, request)
	if err != nil {
		writeUpstreamError(r.Context(), w, h.logger, err)
		return
	}
	if err := tryWriteResponseJSON(w, shipment); err != nil {
		h.logger.ErrorCtx(r.Context(), "error writing shipment response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (h *ShipmentDispatcherHandler) Couriers(w http.ResponseWriter, r *http.Request) {
	couriers, err := h.service.ActiveCouriers(r.Context())
	if err != nil {
		writeUpstreamError(r.Context(), w, h.logger, err)
		return
	}
	if err := tryWriteResponseJSON(w, couriers); err != nil {
		h.logger.ErrorCtx(r.Context(), "error writing couriers response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}
