package handlers

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shajeel/bnw-orders-admin/internal/ordersadmin/importer"
	"github.com/Shajeel/bnw-orders-admin/pkg/logging"
)

type fakeImportService struct {
	gotBody string
	report  importer.Report
	err     error
}

func (f *fakeImportService) ImportCSV(_ context.Context, r io.Reader) (importer.Report, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return importer.Report{}, err
	}
	f.gotBody = string(body)
	return f.report, f.err
}

func TestOrderImporter_RawCSVBody(t *testing.T) {
	service := &fakeImportService{report: importer.Report{Created: 2}}
	handler := NewOrderImporterHandler(service, logging.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/bip-orders/import", strings.NewReader("poNumber,qty\nPO-1,2\n"))
	req.Header.Set("Content-Type", "text/csv")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, service.gotBody, "PO-1")
	assert.Contains(t, rec.Body.String(), "createdCount")
}

func TestOrderImporter_MultipartFilePart(t *testing.T) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "orders.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte("poNumber,qty\nPO-7,1\n"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	service := &fakeImportService{report: importer.Report{Created: 1}}
	handler := NewOrderImporterHandler(service, logging.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/bip-orders/import", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, service.gotBody, "PO-7")
}

func TestOrderImporter_EmptyFileIsUnprocessable(t *testing.T) {
	service := &fakeImportService{err: importer.ErrEmptyFile}
	handler := NewOrderImporterHandler(service, logging.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/bip-orders/import", strings.NewReader(""))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestOrderImporter_MalformedCSVIsBadRequest(t *testing.T) {
	service := &fakeImportService{err: io.ErrUnexpectedEOF}
	handler := NewOrderImporterHandler(service, logging.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/bip-orders/import", strings.NewReader(`"broken`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
