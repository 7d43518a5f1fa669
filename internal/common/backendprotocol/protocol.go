package backendprotocol

import (
	"errors"
	"fmt"
)

const (
	Pending    OrderStatus = "Pending"
	Confirmed  OrderStatus = "Confirmed"
	Processing OrderStatus = "Processing"
	Dispatched OrderStatus = "Dispatched"
	Delivered  OrderStatus = "Delivered"
)

type OrderStatus string

var ErrUnknownOrderStatus = errors.New("unknown order status")

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case Pending, Confirmed, Processing, Dispatched, Delivered:
		return OrderStatus(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOrderStatus, s)
}

const (
	ShipmentBooked    ShipmentStatus = "booked"
	ShipmentInTransit ShipmentStatus = "in_transit"
	ShipmentDelivered ShipmentStatus = "delivered"
	ShipmentCancelled ShipmentStatus = "cancelled"
)

type ShipmentStatus string

const (
	CourierTCS      CourierType = "tcs"
	CourierLeopards CourierType = "leopards"
)

type CourierType string

// Paginated is the collection envelope every upstream list endpoint returns.
// The server owns total and totalPages; clients never derive them.
type Paginated[T any] struct {
	Data       []T `json:"data"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Response is the single-record envelope.
type Response[T any] struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Data       T      `json:"data"`
}

// APIError is the error body the upstream returns on non-2xx responses.
type APIError struct {
	StatusCode int                 `json:"statusCode,omitempty"`
	Message    string              `json:"message"`
	Errors     map[string][]string `json:"errors,omitempty"`
}
