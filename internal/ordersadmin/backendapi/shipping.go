package backendapi

import (
	"context"
	"errors"
	"fmt"

	"github.com/Shajeel/bnw-orders-admin/internal/common/backendprotocol"
)

const (
	BankOrderKind OrderKind = "bank-order"
	BipOrderKind  OrderKind = "bip-order"
)

// OrderKind selects which order collection a dispatch or lookup targets.
// Symbolic on purpose: a typo'd free-form kind would otherwise surface as a
// silent upstream 404.
type OrderKind string

var ErrUnknownOrderKind = errors.New("unknown order kind")

func ParseOrderKind(kind string) (OrderKind, error) {
	switch OrderKind(kind) {
	case BankOrderKind, BipOrderKind:
		return OrderKind(kind), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOrderKind, kind)
}

// DispatchOrder books a courier shipment for one order.
func (c *Client) DispatchOrder(ctx context.Context, kind OrderKind, orderID string, req backendprotocol.DispatchRequest) (backendprotocol.Shipment, error) {
	if _, err := ParseOrderKind(string(kind)); err != nil {
		return backendprotocol.Shipment{}, err
	}
	return postRecord[backendprotocol.Shipment](ctx, c, fmt.Sprintf("/shipments/dispatch/%s/%s", kind, orderID), req)
}

// ManualDispatchOrder books a shipment through the manual path. The payload
// is narrowed via ManualPayload before it leaves the process.
func (c *Client) ManualDispatchOrder(ctx context.Context, kind OrderKind, orderID string, req backendprotocol.DispatchRequest) (backendprotocol.Shipment, error) {
	if _, err := ParseOrderKind(string(kind)); err != nil {
		return backendprotocol.Shipment{}, err
	}
	return postRecord[backendprotocol.Shipment](ctx, c, fmt.Sprintf("/shipments/dispatch/%s/%s/manual", kind, orderID), req.ManualPayload())
}

func (c *Client) ActiveCouriers(ctx context.Context) ([]backendprotocol.Courier, error) {
	req, err := c.newRequest(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := req.SetQueryParam("isActive", "true").Get("/couriers")
	if err != nil {
		return nil, fmt.Errorf("couriers request failed: %w", err)
	}
	if err := c.checkStatus(ctx, resp); err != nil {
		return nil, err
	}
	return decodeRecord[[]backendprotocol.Courier](ctx, c, resp.Body())
}

// NotificationRecords resolves the selected order ids into the
// kind-agnostic projection the bulk dispatcher consumes, in the given
// order. Lookups are sequential; the first failure aborts, since a partial
// selection must never be dispatched silently.
func (c *Client) NotificationRecords(ctx context.Context, kind OrderKind, orderIDs []string) ([]backendprotocol.OrderRecord, error) {
	records := make([]backendprotocol.OrderRecord, 0, len(orderIDs))
	for _, orderID := range orderIDs {
		switch kind {
		case BankOrderKind:
			order, err := c.GetBankOrder(ctx, orderID)
			if err != nil {
				return nil, fmt.Errorf("loading bank order %s failed: %w", orderID, err)
			}
			records = append(records, order.NotificationRecord())
		case BipOrderKind:
			order, err := c.GetBipOrder(ctx, orderID)
			if err != nil {
				return nil, fmt.Errorf("loading bip order %s failed: %w", orderID, err)
			}
			records = append(records, order.NotificationRecord())
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownOrderKind, kind)
		}
	}
	return records, nil
}
