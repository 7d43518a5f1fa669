package notify

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Shajeel/bnw-orders-admin/internal/common/backendprotocol"
	"github.com/Shajeel/bnw-orders-admin/pkg/logging"
	"github.com/Shajeel/bnw-orders-admin/pkg/threadsafe"
)

var (
	ErrNoOrders     = errors.New("no orders selected")
	ErrInvalidFlow  = errors.New("flow id must be a positive integer")
	ErrBatchOverlap = errors.New("selection overlaps a dispatch already in progress")
)

type Sender interface {
	SendOrderConfirmation(ctx context.Context, record backendprotocol.OrderRecord, flowID int) error
}

// Outcome is the per-order result of a bulk dispatch.
type Outcome struct {
	OrderNumber string `json:"orderNumber"`
	OK          bool   `json:"success"`
	Error       string `json:"error,omitempty"`
}

// Report aggregates one bulk dispatch: exactly one outcome per input order,
// in input order. Succeeded+Failed always equals len(Outcomes).
type Report struct {
	Succeeded int       `json:"successCount"`
	Failed    int       `json:"failureCount"`
	Outcomes  []Outcome `json:"outcomes"`
}

func (r *Report) recordSuccess(record backendprotocol.OrderRecord) {
	r.Succeeded++
	r.Outcomes = append(r.Outcomes, Outcome{OrderNumber: record.OrderNumber, OK: true})
}

func (r *Report) recordFailure(record backendprotocol.OrderRecord, err error) {
	r.Failed++
	r.Outcomes = append(r.Outcomes, Outcome{OrderNumber: record.OrderNumber, Error: err.Error()})
}

// Dispatcher sends one confirmation per order, strictly one at a time. The
// messaging gateway is a rate-sensitive third party and there is no retry
// or backpressure here, so sequential delivery is the safety margin; batch
// sizes are tens of orders, not thousands.
type Dispatcher struct {
	sender   Sender
	inFlight *threadsafe.HashSet[string]
	logger   *logging.ZapLogger
}

func NewDispatcher(sender Sender, logger *logging.ZapLogger) *Dispatcher {
	return &Dispatcher{
		sender:   sender,
		inFlight: threadsafe.NewHashSet[string](),
		logger:   logger,
	}
}

// Dispatch delivers the flow to every order in the input sequence's order.
// A per-order failure is captured into the report and the batch continues;
// the returned error is non-nil only for the fail-fast validation cases,
// which perform zero network calls. Cancelling ctx stops launching new
// per-order calls; orders not attempted are recorded as failed with the
// context error, so the report stays complete.
func (d *Dispatcher) Dispatch(ctx context.Context, orders []backendprotocol.OrderRecord, flowID int) (Report, error) {
	if len(orders) == 0 {
		return Report{}, ErrNoOrders
	}
	if flowID <= 0 {
		return Report{}, fmt.Errorf("%w: %d", ErrInvalidFlow, flowID)
	}

	orderIDs := make([]string, len(orders))
	for i, order := range orders {
		orderIDs[i] = order.OrderID
	}
	if !d.inFlight.AddAll(orderIDs...) {
		return Report{}, ErrBatchOverlap
	}
	defer d.inFlight.RemoveAll(orderIDs...)

	report := Report{
		Outcomes: make([]Outcome, 0, len(orders)),
	}
	for _, order := range orders {
		if err := ctx.Err(); err != nil {
			report.recordFailure(order, fmt.Errorf("dispatch canceled: %w", err))
			continue
		}
		if err := d.sender.SendOrderConfirmation(ctx, order, flowID); err != nil {
			d.logger.ErrorCtx(ctx, "order confirmation failed",
				zap.String("orderNumber", order.OrderNumber),
				zap.Error(err),
			)
			report.recordFailure(order, err)
			continue
		}
		report.recordSuccess(order)
	}

	d.logger.InfoCtx(ctx, "bulk dispatch finished",
		zap.Int("flowId", flowID),
		zap.Int("succeeded", report.Succeeded),
		zap.Int("failed", report.Failed),
	)
	return report, nil
}
