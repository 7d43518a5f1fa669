package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/Shajeel/bnw-orders-admin/internal/ordersadmin/backendapi"
	"github.com/Shajeel/bnw-orders-admin/internal/ordersadmin/listquery"
	"github.com/Shajeel/bnw-orders-admin/pkg/logging"
)

func closeBody(ctx context.Context, body io.ReadCloser, logger *logging.ZapLogger) {
	err := body.Close()
	if err != nil {
		logger.ErrorCtx(ctx, "failed to close body", zap.Error(err))
	}
}

func decodeJSON[T any](r io.Reader) (T, error) {
	var out T
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	err := decoder.Decode(&out)
	return out, err
}

func tryWriteResponseJSON(w http.ResponseWriter, responseItem any) error {
	res, err := json.Marshal(responseItem)
	if err != nil {
		return err
	}
	w.Header().Add("Content-Type", "application/json")
	_, err = w.Write(res)
	if err != nil {
		return err
	}
	return nil
}

func writeMessage(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// writeUpstreamError maps a backend client failure onto this service's own
// status codes. A dead service credential is the gateway's fault, not the
// operator's, hence 502 rather than 401.
func writeUpstreamError(ctx context.Context, w http.ResponseWriter, logger *logging.ZapLogger, err error) {
	switch {
	case isParamsError(err):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, backendapi.ErrUnknownOrderKind):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, backendapi.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "record not found")
	case errors.Is(err, backendapi.ErrSessionExpired):
		logger.ErrorCtx(ctx, "upstream session expired", zap.Error(err))
		writeMessage(w, http.StatusBadGateway, "upstream session expired")
	default:
		logger.ErrorCtx(ctx, "upstream request failed", zap.Error(err))
		writeMessage(w, http.StatusBadGateway, "upstream request failed")
	}
}

func isParamsError(err error) bool {
	return errors.Is(err, listquery.ErrInvalidPage) ||
		errors.Is(err, listquery.ErrInvalidPageSize) ||
		errors.Is(err, listquery.ErrUnknownSortColumn) ||
		errors.Is(err, listquery.ErrInvalidSortOrder)
}
