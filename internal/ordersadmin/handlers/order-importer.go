package handlers

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/Shajeel/bnw-orders-admin/internal/ordersadmin/importer"
	"github.com/Shajeel/bnw-orders-admin/pkg/logging"
)

type ImportService interface {
	ImportCSV(ctx context.Context, r io.Reader) (importer.Report, error)
}

type OrderImporterHandler struct {
	service ImportService
	logger  *logging.ZapLogger
}

func NewOrderImporterHandler(service ImportService, logger *logging.ZapLogger) *OrderImporterHandler {
	return &OrderImporterHandler{
		service: service,
		logger:  logger,
	}
}

func (h *OrderImporterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer closeBody(r.Context(), r.Body, h.logger)

	body, err := importBody(r)
	if err != nil {
		h.logger.DebugCtx(r.Context(), "unreadable import upload", zap.Error(err))
		writeMessage(w, http.StatusBadRequest, "expected a CSV body or a multipart \"file\" part")
		return
	}
	defer closeBody(r.Context(), body, h.logger)

	report, err := h.service.ImportCSV(r.Context(), body)
	if err != nil {
		switch {
		case errors.Is(err, importer.ErrEmptyFile), errors.Is(err, importer.ErrMissingHeader):
			writeMessage(w, http.StatusUnprocessableEntity, err.Error())
		default:
			writeMessage(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	if err := tryWriteResponseJSON(w, report); err != nil {
		h.logger.ErrorCtx(r.Context(), "error writing import report", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func importBody(r *http.Request) (io.ReadCloser, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || !strings.HasPrefix(mediaType, "multipart/") {
		return io.NopCloser(r.Body), nil
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		return nil, err
	}
	return file, nil
}
