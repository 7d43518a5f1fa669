package notify

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shajeel/bnw-orders-admin/internal/common/backendprotocol"
	"github.com/Shajeel/bnw-orders-admin/pkg/logging"
)

type fakeSender struct {
	mux      sync.Mutex
	calls    []string
	failFor  map[string]error
	inflight int
	parallel bool
	block    func(orderNumber string)
}

func (f *fakeSender) SendOrderConfirmation(_ context.Context, record backendprotocol.OrderRecord, _ int) error {
	f.mux.Lock()
	f.inflight++
	if f.inflight > 1 {
		f.parallel = true
	}
	f.calls = append(f.calls, record.OrderNumber)
	f.mux.Unlock()

	if f.block != nil {
		f.block(record.OrderNumber)
	}

	f.mux.Lock()
	f.inflight--
	err := f.failFor[record.OrderNumber]
	f.mux.Unlock()
	return err
}

func orders(numbers ...string) []backendprotocol.OrderRecord {
	records := make([]backendprotocol.OrderRecord, len(numbers))
	for i, number := range numbers {
		records[i] = backendprotocol.OrderRecord{
			OrderID:      "id-" + number,
			OrderNumber:  number,
			Phone:        "03001234567",
			CustomerName: "Customer " + number,
		}
	}
	return records
}

func TestDispatchSequentialCompleteReport(t *testing.T) {
	sender := &fakeSender{}
	dispatcher := NewDispatcher(sender, logging.NewNop())

	report, err := dispatcher.Dispatch(context.Background(), orders("PO-1", "PO-2", "PO-3"), 42)
	require.NoError(t, err)

	assert.Equal(t, []string{"PO-1", "PO-2", "PO-3"}, sender.calls, "input order must be preserved")
	assert.False(t, sender.parallel, "per-order calls must never overlap")
	require.Len(t, report.Outcomes, 3)
	assert.Equal(t, 3, report.Succeeded)
	assert.Zero(t, report.Failed)
	assert.Equal(t, report.Succeeded+report.Failed, len(report.Outcomes))
}

func TestDispatchContinuesPastFailure(t *testing.T) {
	sender := &fakeSender{failFor: map[string]error{
		"PO-2": errors.New("gateway rejected contact (500): template missing"),
	}}
	dispatcher := NewDispatcher(sender, logging.NewNop())

	report, err := dispatcher.Dispatch(context.Background(), orders("PO-1", "PO-2", "PO-3"), 42)
	require.NoError(t, err, "per-item failures are report data, not errors")

	assert.Equal(t, []string{"PO-1", "PO-2", "PO-3"}, sender.calls, "order after a failure must still be attempted")
	assert.Equal(t, 2, report.Succeeded)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Outcomes, 3)
	assert.True(t, report.Outcomes[0].OK)
	assert.False(t, report.Outcomes[1].OK)
	assert.Contains(t, report.Outcomes[1].Error, "template missing")
	assert.True(t, report.Outcomes[2].OK)
}

func TestDispatchFailFastValidation(t *testing.T) {
	tests := []struct {
		name    string
		orders  []backendprotocol.OrderRecord
		flowID  int
		wantErr error
	}{
		{
			name:    "empty selection",
			orders:  nil,
			flowID:  42,
			wantErr: ErrNoOrders,
		},
		{
			name:    "zero flow",
			orders:  orders("PO-1"),
			flowID:  0,
			wantErr: ErrInvalidFlow,
		},
		{
			name:    "negative flow",
			orders:  orders("PO-1"),
			flowID:  -7,
			wantErr: ErrInvalidFlow,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			sender := &fakeSender{}
			dispatcher := NewDispatcher(sender, logging.NewNop())

			report, err := dispatcher.Dispatch(context.Background(), test.orders, test.flowID)

			assert.ErrorIs(t, err, test.wantErr)
			assert.Empty(t, sender.calls, "validation failures must make zero network calls")
			assert.Empty(t, report.Outcomes)
		})
	}
}

func TestDispatchRejectsOverlappingBatch(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	sender := &fakeSender{block: func(string) {
		close(started)
		<-release
	}}
	dispatcher := NewDispatcher(sender, logging.NewNop())

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := dispatcher.Dispatch(context.Background(), orders("PO-1"), 42)
		assert.NoError(t, err)
	}()
	<-started

	_, err := dispatcher.Dispatch(context.Background(), orders("PO-1", "PO-9"), 42)
	assert.ErrorIs(t, err, ErrBatchOverlap)

	close(release)
	<-done
	sender.mux.Lock()
	sender.block = nil
	sender.mux.Unlock()

	// The first batch released its orders; the selection is dispatchable again.
	report, err := dispatcher.Dispatch(context.Background(), orders("PO-1", "PO-9"), 42)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Succeeded)
}

func TestDispatchCancellationKeepsReportComplete(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sender := &fakeSender{block: func(orderNumber string) {
		if orderNumber == "PO-1" {
			cancel()
		}
	}}
	dispatcher := NewDispatcher(sender, logging.NewNop())

	report, err := dispatcher.Dispatch(ctx, orders("PO-1", "PO-2", "PO-3"), 42)
	require.NoError(t, err)

	assert.Equal(t, []string{"PO-1"}, sender.calls, "no new calls after cancellation")
	require.Len(t, report.Outcomes, 3)
	assert.Equal(t, 1, report.Succeeded)
	assert.Equal(t, 2, report.Failed)
	for _, outcome := range report.Outcomes[1:] {
		assert.Contains(t, outcome.Error, "dispatch canceled")
	}
}

func TestDispatchManyFailuresKeepCounts(t *testing.T) {
	failFor := make(map[string]error)
	var numbers []string
	for i := 1; i <= 30; i++ {
		number := fmt.Sprintf("PO-%d", i)
		numbers = append(numbers, number)
		if i%3 == 0 {
			failFor[number] = errors.New("boom")
		}
	}
	sender := &fakeSender{failFor: failFor}
	dispatcher := NewDispatcher(sender, logging.NewNop())

	report, err := dispatcher.Dispatch(context.Background(), orders(numbers...), 7)
	require.NoError(t, err)

	assert.Equal(t, 20, report.Succeeded)
	assert.Equal(t, 10, report.Failed)
	assert.Len(t, report.Outcomes, 30)
	for i, outcome := range report.Outcomes {
		assert.Equal(t, numbers[i], outcome.OrderNumber, "outcomes must keep input order")
	}
}
