package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Shajeel/bnw-orders-admin/internal/common/backendprotocol"
	"github.com/Shajeel/bnw-orders-admin/pkg/logging"
)

// OrderEditor covers the single-record order operations the console exposes
// next to the list views.
type OrderEditor interface {
	GetBankOrder(ctx context.Context, orderID string) (backendprotocol.BankOrder, error)
	GetBipOrder(ctx context.Context, orderID string) (backendprotocol.BipOrder, error)
	CreateBankOrder(ctx context.Context, order backendprotocol.CreateBankOrder) (backendprotocol.BankOrder, error)
	CreateBipOrder(ctx context.Context, order backendprotocol.CreateBipOrder) (backendprotocol.BipOrder, error)
	UpdateBankOrder(ctx context.Context, orderID string, update backendprotocol.UpdateBankOrder) (backendprotocol.BankOrder, error)
	UpdateBipOrder(ctx context.Context, orderID string, update backendprotocol.UpdateBipOrder) (backendprotocol.BipOrder, error)
	UpdateBankOrderStatus(ctx context.Context, orderID string, status backendprotocol.OrderStatus) (backendprotocol.BankOrder, error)
	UpdateBipOrderStatus(ctx context.Context, orderID string, status backendprotocol.OrderStatus) (backendprotocol.BipOrder, error)
	DeleteBankOrder(ctx context.Context, orderID string) error
	DeleteBipOrder(ctx context.Context, orderID string) error
}

type StatusUpdateRequest struct {
	Status string `json:"status"`
}

type OrderEditingHandler struct {
	service OrderEditor
	logger  *logging.ZapLogger
}

func NewOrderEditingHandler(service OrderEditor, logger *logging.ZapLogger) *OrderEditingHandler {
	return &OrderEditingHandler{
		service: service,
		logger:  logger,
	}
}

func (h *OrderEditingHandler) GetBankOrder(w http.ResponseWriter, r *http.Request) {
	serveRecord(w, r, h.logger, h.service.GetBankOrder)
}

func (h *OrderEditingHandler) GetBipOrder(w http.ResponseWriter, r *http.Request) {
	serveRecord(w, r, h.logger, h.service.GetBipOrder)
}

func (h *OrderEditingHandler) CreateBankOrder(w http.ResponseWriter, r *http.Request) {
	createOrder(w, r, h.logger, requireBankOrderFields, h.service.CreateBankOrder)
}

func (h *OrderEditingHandler) CreateBipOrder(w http.ResponseWriter, r *http.Request) {
	createOrder(w, r, h.logger, requireBipOrderFields, h.service.CreateBipOrder)
}

func (h *OrderEditingHandler) UpdateBankOrder(w http.ResponseWriter, r *http.Request) {
	editOrder(w, r, h.logger, h.service.UpdateBankOrder)
}

func (h *OrderEditingHandler) UpdateBipOrder(w http.ResponseWriter, r *http.Request) {
	editOrder(w, r, h.logger, h.service.UpdateBipOrder)
}

func (h *OrderEditingHandler) UpdateBankOrderStatus(w http.ResponseWriter, r *http.Request) {
	updateStatus(w, r, h.logger, h.service.UpdateBankOrderStatus)
}

func (h *OrderEditingHandler) UpdateBipOrderStatus(w http.ResponseWriter, r *http.Request) {
	updateStatus(w, r, h.logger, h.service.UpdateBipOrderStatus)
}

func (h *OrderEditingHandler) DeleteBankOrder(w http.ResponseWriter, r *http.Request) {
	h.deleteOrder(w, r, h.service.DeleteBankOrder)
}

func (h *OrderEditingHandler) DeleteBipOrder(w http.ResponseWriter, r *http.Request) {
	h.deleteOrder(w, r, h.service.DeleteBipOrder)
}

func requireBankOrderFields(order backendprotocol.CreateBankOrder) error {
	return requireFields(map[string]string{
		"cnic":         order.CNIC,
		"customerName": order.CustomerName,
		"mobile1":      order.Mobile1,
		"poNumber":     order.PONumber,
	})
}

func requireBipOrderFields(order backendprotocol.CreateBipOrder) error {
	return requireFields(map[string]string{
		"cnic":         order.CNIC,
		"customerName": order.CustomerName,
		"mobile1":      order.Mobile1,
		"poNumber":     order.PONumber,
	})
}

func requireFields(fields map[string]string) error {
	for name, value := range fields {
		if value == "" {
			return fmt.Errorf("%s is required", name)
		}
	}
	return nil
}

func createOrder[In, Out any](
	w http.ResponseWriter,
	r *http.Request,
	logger *logging.ZapLogger,
	validate func(In) error,
	create func(ctx context.Context, order In) (Out, error),
) {
	defer closeBody(r.Context(), r.Body, logger)

	order, err := decodeJSON[In](r.Body)
	if err != nil {
		logger.DebugCtx(r.Context(), "input decoding error", zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := validate(order); err != nil {
		writeMessage(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	record, err := create(r.Context(), order)
	if err != nil {
		writeUpstreamError(r.Context(), w, logger, err)
		return
	}
	if err := tryWriteResponseJSON(w, record); err != nil {
		logger.ErrorCtx(r.Context(), "error writing record response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func editOrder[In, Out any](
	w http.ResponseWriter,
	r *http.Request,
	logger *logging.ZapLogger,
	update func(ctx context.Context, orderID string, in In) (Out, error),
) {
	defer closeBody(r.Context(), r.Body, logger)

	edit, err := decodeJSON[In](r.Body)
	if err != nil {
		logger.DebugCtx(r.Context(), "input decoding error", zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	record, err := update(r.Context(), chi.URLParam(r, "orderID"), edit)
	if err != nil {
		writeUpstreamError(r.Context(), w, logger, err)
		return
	}
	if err := tryWriteResponseJSON(w, record); err != nil {
		logger.ErrorCtx(r.Context(), "error writing record response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func serveRecord[T any](
	w http.ResponseWriter,
	r *http.Request,
	logger *logging.ZapLogger,
	get func(ctx context.Context, orderID string) (T, error),
) {
	record, err := get(r.Context(), chi.URLParam(r, "orderID"))
	if err != nil {
		writeUpstreamError(r.Context(), w, logger, err)
		return
	}
	if err := tryWriteResponseJSON(w, record); err != nil {
		logger.ErrorCtx(r.Context(), "error writing record response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func updateStatus[T any](
	w http.ResponseWriter,
	r *http.Request,
	logger *logging.ZapLogger,
	update func(ctx context.Context, orderID string, status backendprotocol.OrderStatus) (T, error),
) {
	defer closeBody(r.Context(), r.Body, logger)

	request, err := decodeJSON[StatusUpdateRequest](r.Body)
	if err != nil {
		logger.DebugCtx(r.Context(), "input decoding error", zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	status, err := backendprotocol.ParseOrderStatus(request.Status)
	if err != nil {
		writeMessage(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	record, err := update(r.Context(), chi.URLParam(r, "orderID"), status)
	if err != nil {
		writeUpstreamError(r.Context(), w, logger, err)
		return
	}
	if err := tryWriteResponseJSON(w, record); err != nil {
		logger.ErrorCtx(r.Context(), "error writing record response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (h *OrderEditingHandler) deleteOrder(
	w http.ResponseWriter,
	r *http.Request,
	remove func(ctx context.Context, orderID string) error,
) {
	if err := remove(r.Context(), chi.URLParam(r, "orderID")); err != nil {
		writeUpstreamError(r.Context(), w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
