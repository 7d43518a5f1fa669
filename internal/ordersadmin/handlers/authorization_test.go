package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shajeel/bnw-orders-admin/internal/common/backendprotocol"
	"github.com/Shajeel/bnw-orders-admin/internal/ordersadmin/backendapi"
	"github.com/Shajeel/bnw-orders-admin/pkg/logging"
)

type fakeAuthService struct {
	login backendprotocol.LoginData
	err   error
}

func (f *fakeAuthService) Login(_ context.Context, _, _ string) (backendprotocol.LoginData, error) {
	return f.login, f.err
}

type fakeTokenFactory struct {
	gotEmail string
	gotRole  string
	err      error
}

func (f *fakeTokenFactory) Generate(email, role string) (string, error) {
	f.gotEmail = email
	f.gotRole = role
	return "minted-token", f.err
}

func postLogin(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAuthorization_MintsOwnToken(t *testing.T) {
	service := &fakeAuthService{}
	service.login.User.Email = "ops@example.com"
	service.login.User.Role = "admin"
	factory := &fakeTokenFactory{}
	handler := NewAuthorizationHandler(service, factory, logging.NewNop())

	rec := postLogin(t, handler, `{"email":"ops@example.com","password":"hunter2"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ops@example.com", factory.gotEmail)
	assert.Equal(t, "admin", factory.gotRole)

	var response LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "minted-token", response.Token)
	assert.Equal(t, "admin", response.Role)
}

func TestAuthorization_InvalidCredentials(t *testing.T) {
	service := &fakeAuthService{err: backendapi.ErrInvalidCredentials}
	handler := NewAuthorizationHandler(service, &fakeTokenFactory{}, logging.NewNop())

	rec := postLogin(t, handler, `{"email":"ops@example.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthorization_MissingFields(t *testing.T) {
	handler := NewAuthorizationHandler(&fakeAuthService{}, &fakeTokenFactory{}, logging.NewNop())

	rec := postLogin(t, handler, `{"email":"","password":""}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
