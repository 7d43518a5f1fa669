package handlers

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/Shajeel/bnw-orders-admin/internal/common/backendprotocol"
	"github.com/Shajeel/bnw-orders-admin/internal/ordersadmin/backendapi"
	"github.com/Shajeel/bnw-orders-admin/pkg/logging"
)

type AuthorizationService interface {
	Login(ctx context.Context, email, password string) (backendprotocol.LoginData, error)
}

type TokenFactory interface {
	Generate(email, role string) (string, error)
}

type LoginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type AuthorizationHandler struct {
	service      AuthorizationService
	tokenFactory TokenFactory
	logger       *logging.ZapLogger
}

func NewAuthorizationHandler(service AuthorizationService, tokenFactory TokenFactory, logger *logging.ZapLogger) *AuthorizationHandler {
	return &AuthorizationHandler{
		service:      service,
		tokenFactory: tokenFactory,
		logger:       logger,
	}
}

// ServeHTTP verifies operator credentials upstream and mints this
// gateway's own session token.
func (h *AuthorizationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer closeBody(r.Context(), r.Body, h.logger)

	request, err := decodeJSON[backendprotocol.LoginRequest](r.Body)
	if err != nil {
		h.logger.DebugCtx(r.Context(), "input decoding error", zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if request.Email == "" || request.Password == "" {
		writeMessage(w, http.StatusBadRequest, "email and password are required")
		return
	}

	login, err := h.service.Login(r.Context(), request.Email, request.Password)
	if err != nil {
		switch {
		case errors.Is(err, backendapi.ErrInvalidCredentials):
			writeMessage(w, http.StatusUnauthorized, "invalid credentials")
		default:
			writeUpstreamError(r.Context(), w, h.logger, err)
		}
		return
	}

	token, err := h.tokenFactory.Generate(login.User.Email, login.User.Role)
	if err != nil {
		h.logger.ErrorCtx(r.Context(), "token generation failed", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := LoginResponse{
		Token: token,
		Email: login.User.Email,
		Role:  login.User.Role,
	}
	if err := tryWriteResponseJSON(w, response); err != nil {
		h.logger.ErrorCtx(r.Context(), "error writing login response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}
