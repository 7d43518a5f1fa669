package handlers

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/Shajeel/bnw-orders-admin/internal/common/backendprotocol"
	"github.com/Shajeel/bnw-orders-admin/internal/ordersadmin/backendapi"
	"github.com/Shajeel/bnw-orders-admin/internal/ordersadmin/notify"
	"github.com/Shajeel/bnw-orders-admin/pkg/logging"
)

type OrderLoader interface {
	NotificationRecords(ctx context.Context, kind backendapi.OrderKind, orderIDs []string) ([]backendprotocol.OrderRecord, error)
}

type NotificationDispatcher interface {
	Dispatch(ctx context.Context, orders []backendprotocol.OrderRecord, flowID int) (notify.Report, error)
}

type BulkNotifyRequest struct {
	OrderIDs []string `json:"orderIds"`
	Kind     string   `json:"kind"`
	FlowID   int      `json:"flowId"`
}

type BulkNotifierHandler struct {
	loader        OrderLoader
	dispatcher    NotificationDispatcher
	defaultFlowID int
	logger        *logging.ZapLogger
}

func NewBulkNotifierHandler(
	loader OrderLoader,
	dispatcher NotificationDispatcher,
	defaultFlowID int,
	logger *logging.ZapLogger,
) *BulkNotifierHandler {
	return &BulkNotifierHandler{
		loader:        loader,
		dispatcher:    dispatcher,
		defaultFlowID: defaultFlowID,
		logger:        logger,
	}
}

// ServeHTTP runs one bulk confirmation batch. The report is a 200 even when
// every order failed: per-item failures are data for the operator, only a
// request that never started is an error status.
func (h *BulkNotifierHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer closeBody(r.Context(), r.Body, h.logger)

	request, err := decodeJSON[BulkNotifyRequest](r.Body)
	if err != nil {
		h.logger.DebugCtx(r.Context(), "input decoding error", zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	kind, err := backendapi.ParseOrderKind(request.Kind)
	if err != nil {
		writeMessage(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if len(request.OrderIDs) == 0 {
		writeMessage(w, http.StatusUnprocessableEntity, notify.ErrNoOrders.Error())
		return
	}
	flowID := request.FlowID
	if flowID == 0 {
		flowID = h.defaultFlowID
	}

	orders, err := h.loader.NotificationRecords(r.Context(), kind, request.OrderIDs)
	if err != nil {
		writeUpstreamError(r.Context(), w, h.logger, err)
		return
	}

	report, err := h.dispatcher.Dispatch(r.Context(), orders, flowID)
	if err != nil {
		switch {
		case errors.Is(err, notify.ErrBatchOverlap):
			writeMessage(w, http.StatusConflict, err.Error())
		case errors.Is(err, notify.ErrInvalidFlow), errors.Is(err, notify.ErrNoOrders):
			writeMessage(w, http.StatusUnprocessableEntity, err.Error())
		default:
			h.logger.ErrorCtx(r.Context(), "bulk dispatch failed", zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	if err := tryWriteResponseJSON(w, report); err != nil {
		h.logger.ErrorCtx(r.Context(), "error writing dispatch report", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}
