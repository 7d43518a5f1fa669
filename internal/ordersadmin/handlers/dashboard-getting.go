package handlers

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/Shajeel/bnw-orders-admin/internal/common/backendprotocol"
	"github.com/Shajeel/bnw-orders-admin/pkg/logging"
)

type DashboardService interface {
	DashboardStats(ctx context.Context) (backendprotocol.DashboardStats, error)
}

type DashboardGettingHandler struct {
	service DashboardService
	logger  *logging.ZapLogger
}

func NewDashboardGettingHandler(service DashboardService, logger *logging.ZapLogger) *DashboardGettingHandler {
	return &DashboardGettingHandler{
		service: service,
		logger:  logger,
	}
}

func (h *DashboardGettingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.DashboardStats(r.Context())
	if err != nil {
		writeUpstreamError(r.Context(), w, h.logger, err)
		return
	}
	if err := tryWriteResponseJSON(w, stats); err != nil {
		h.logger.ErrorCtx(r.Context(), "error writing stats response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}
