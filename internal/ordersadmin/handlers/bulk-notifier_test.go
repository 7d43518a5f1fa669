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
	"github.com/Shajeel/bnw-orders-admin/internal/ordersadmin/notify"
	"github.com/Shajeel/bnw-orders-admin/pkg/logging"
)

type fakeLoader struct {
	records []backendprotocol.OrderRecord
	err     error
	calls   int
}

func (f *fakeLoader) NotificationRecords(_ context.Context, _ backendapi.OrderKind, _ []string) ([]backendprotocol.OrderRecord, error) {
	f.calls++
	return f.records, f.err
}

type fakeDispatcher struct {
	report    notify.Report
	err       error
	gotFlowID int
	gotOrders []backendprotocol.OrderRecord
	calls     int
}

func (f *fakeDispatcher) Dispatch(_ context.Context, orders []backendprotocol.OrderRecord, flowID int) (notify.Report, error) {
	f.calls++
	f.gotFlowID = flowID
	f.gotOrders = orders
	return f.report, f.err
}

func postBulk(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/notifications/bulk", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestBulkNotifier_ReportWithFailuresIsStillOK(t *testing.T) {
	loader := &fakeLoader{
		records: []backendprotocol.OrderRecord{
			{OrderID: "1", OrderNumber: "PO-1"},
			{OrderID: "2", OrderNumber: "PO-2"},
		},
	}
	dispatcher := &fakeDispatcher{
		report: notify.Report{
			Succeeded: 1,
			Failed:    1,
			Outcomes: []notify.Outcome{
				{OrderNumber: "PO-1", OK: true},
				{OrderNumber: "PO-2", Error: "gateway refused"},
			},
		},
	}
	handler := NewBulkNotifierHandler(loader, dispatcher, 7, logging.NewNop())

	rec := postBulk(t, handler, `{"orderIds":["1","2"],"kind":"bip-order","flowId":42}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 42, dispatcher.gotFlowID)
	assert.Len(t, dispatcher.gotOrders, 2)

	var report notify.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, 1, report.Succeeded)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Outcomes, 2)
	assert.Equal(t, "PO-2", report.Outcomes[1].OrderNumber)
}

func TestBulkNotifier_DefaultFlowID(t *testing.T) {
	loader := &fakeLoader{records: []backendprotocol.OrderRecord{{OrderID: "1", OrderNumber: "PO-1"}}}
	dispatcher := &fakeDispatcher{report: notify.Report{Succeeded: 1, Outcomes: []notify.Outcome{{OrderNumber: "PO-1", OK: true}}}}
	handler := NewBulkNotifierHandler(loader, dispatcher, 7, logging.NewNop())

	rec := postBulk(t, handler, `{"orderIds":["1"],"kind":"bank-order"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 7, dispatcher.gotFlowID)
}

func TestBulkNotifier_RejectsBadInputBeforeLoading(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{
			name:     "unknown kind",
			body:     `{"orderIds":["1"],"kind":"mystery-order"}`,
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:     "empty selection",
			body:     `{"orderIds":[],"kind":"bip-order"}`,
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:     "malformed json",
			body:     `{"orderIds":`,
			wantCode: http.StatusBadRequest,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			loader := &fakeLoader{}
			dispatcher := &fakeDispatcher{}
			handler := NewBulkNotifierHandler(loader, dispatcher, 7, logging.NewNop())

			rec := postBulk(t, handler, tc.body)

			assert.Equal(t, tc.wantCode, rec.Code)
			assert.Zero(t, loader.calls)
			assert.Zero(t, dispatcher.calls)
		})
	}
}

func TestBulkNotifier_OverlapConflicts(t *testing.T) {
	loader := &fakeLoader{records: []backendprotocol.OrderRecord{{OrderID: "1", OrderNumber: "PO-1"}}}
	dispatcher := &fakeDispatcher{err: notify.ErrBatchOverlap}
	handler := NewBulkNotifierHandler(loader, dispatcher, 7, logging.NewNop())

	rec := postBulk(t, handler, `{"orderIds":["1"],"kind":"bip-order"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestBulkNotifier_LoaderNotFound(t *testing.T) {
	loader := &fakeLoader{err: backendapi.ErrNotFound}
	dispatcher := &fakeDispatcher{}
	handler := NewBulkNotifierHandler(loader, dispatcher, 7, logging.NewNop())

	rec := postBulk(t, handler, `{"orderIds":["missing"],"kind":"bip-order"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Zero(t, dispatcher.calls)
}
