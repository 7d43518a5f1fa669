package handlers

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/Shajeel/bnw-orders-admin/internal/common/backendprotocol"
	"github.com/Shajeel/bnw-orders-admin/internal/ordersadmin/listquery"
	"github.com/Shajeel/bnw-orders-admin/pkg/logging"
)

// ListService is the slice of the backend client the list endpoints use.
type ListService interface {
	ListBankOrders(ctx context.Context, params listquery.Params) (listquery.Result[backendprotocol.BankOrder], error)
	ListBipOrders(ctx context.Context, params listquery.Params) (listquery.Result[backendprotocol.BipOrder], error)
	ListProducts(ctx context.Context, params listquery.Params) (listquery.Result[backendprotocol.Product], error)
	ListVendors(ctx context.Context, params listquery.Params) (listquery.Result[backendprotocol.Vendor], error)
	ListBanks(ctx context.Context, params listquery.Params) (listquery.Result[backendprotocol.Bank], error)
	ListCategories(ctx context.Context, params listquery.Params) (listquery.Result[backendprotocol.Category], error)
	ListPurchaseOrders(ctx context.Context, params listquery.Params) (listquery.Result[backendprotocol.PurchaseOrder], error)
}

type ListGettingHandler struct {
	service ListService
	logger  *logging.ZapLogger
}

func NewListGettingHandler(service ListService, logger *logging.ZapLogger) *ListGettingHandler {
	return &ListGettingHandler{
		service: service,
		logger:  logger,
	}
}

func (h *ListGettingHandler) BankOrders(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, h.logger, h.service.ListBankOrders)
}

func (h *ListGettingHandler) BipOrders(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, h.logger, h.service.ListBipOrders)
}

func (h *ListGettingHandler) Products(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, h.logger, h.service.ListProducts)
}

func (h *ListGettingHandler) Vendors(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, h.logger, h.service.ListVendors)
}

func (h *ListGettingHandler) Banks(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, h.logger, h.service.ListBanks)
}

func (h *ListGettingHandler) Categories(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, h.logger, h.service.ListCategories)
}

func (h *ListGettingHandler) PurchaseOrders(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, h.logger, h.service.ListPurchaseOrders)
}

func serveList[T any](
	w http.ResponseWriter,
	r *http.Request,
	logger *logging.ZapLogger,
	fetch func(ctx context.Context, params listquery.Params) (listquery.Result[T], error),
) {
	params := listquery.ParseParams(r.URL.Query())
	result, err := fetch(r.Context(), params)
	if err != nil {
		writeUpstreamError(r.Context(), w, logger, err)
		return
	}
	if err := tryWriteResponseJSON(w, result); err != nil {
		logger.ErrorCtx(r.Context(), "error writing list response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}
