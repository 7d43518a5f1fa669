package backendprotocol

import (
	"time"

	"github.com/shopspring/decimal"
)

type BankOrder struct {
	ID             string          `json:"_id"`
	CNIC           string          `json:"cnic"`
	CustomerName   string          `json:"customerName"`
	Mobile1        string          `json:"mobile1"`
	Mobile2        string          `json:"mobile2,omitempty"`
	Address        string          `json:"address"`
	City           string          `json:"city"`
	Brand          string          `json:"brand"`
	Product        string          `json:"product"`
	GiftCode       string          `json:"giftCode"`
	ProductID      string          `json:"productId"`
	Qty            int             `json:"qty"`
	RefNo          string          `json:"refNo"`
	PONumber       string          `json:"poNumber"`
	OrderDate      string          `json:"orderDate"`
	RedeemedPoints decimal.Decimal `json:"redeemedPoints"`
	Status         OrderStatus     `json:"status"`
	Shipment       Ref[Shipment]   `json:"shipmentId,omitempty"`
	IsDeleted      bool            `json:"isDeleted"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

type BipOrder struct {
	ID                 string          `json:"_id"`
	Eforms             string          `json:"eforms"`
	CNIC               string          `json:"cnic"`
	CustomerName       string          `json:"customerName"`
	Mobile1            string          `json:"mobile1"`
	AuthorizedReceiver string          `json:"authorizedReceiver"`
	ReceiverCNIC       string          `json:"receiverCnic"`
	Address            string          `json:"address"`
	City               string          `json:"city"`
	Product            string          `json:"product"`
	GiftCode           string          `json:"giftCode"`
	Qty                int             `json:"qty"`
	PONumber           string          `json:"poNumber"`
	OrderDate          string          `json:"orderDate"`
	Amount             decimal.Decimal `json:"amount"`
	Color              string          `json:"color"`
	Status             OrderStatus     `json:"status"`
	Shipment           Ref[Shipment]   `json:"shipmentId,omitempty"`
	IsDeleted          bool            `json:"isDeleted,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

// OrderRecord is the kind-agnostic projection the notification dispatcher
// consumes. Both order kinds produce the same shape.
type OrderRecord struct {
	OrderID      string
	Phone        string
	CustomerName string
	OrderNumber  string
	Amount       decimal.Decimal
	Address      string
}

func (o BankOrder) NotificationRecord() OrderRecord {
	return OrderRecord{
		OrderID:      o.ID,
		Phone:        o.Mobile1,
		CustomerName: o.CustomerName,
		OrderNumber:  o.PONumber,
		Amount:       o.RedeemedPoints,
		Address:      o.Address,
	}
}

func (o BipOrder) NotificationRecord() OrderRecord {
	return OrderRecord{
		OrderID:      o.ID,
		Phone:        o.Mobile1,
		CustomerName: o.CustomerName,
		OrderNumber:  o.PONumber,
		Amount:       o.Amount,
		Address:      o.Address,
	}
}

type CreateBipOrder struct {
	Eforms             string          `json:"eforms"`
	CNIC               string          `json:"cnic"`
	CustomerName       string          `json:"customerName"`
	Mobile1            string          `json:"mobile1"`
	AuthorizedReceiver string          `json:"authorizedReceiver,omitempty"`
	ReceiverCNIC       string          `json:"receiverCnic,omitempty"`
	Address            string          `json:"address"`
	City               string          `json:"city"`
	Product            string          `json:"product"`
	GiftCode           string          `json:"giftCode,omitempty"`
	Qty                int             `json:"qty"`
	PONumber           string          `json:"poNumber"`
	OrderDate          string          `json:"orderDate"`
	Amount             decimal.Decimal `json:"amount"`
	Color              string          `json:"color,omitempty"`
}

// UpdateBipOrder is the partial-edit payload of the bip-order edit form.
// Zero-valued fields stay off the wire and leave the record untouched.
type UpdateBipOrder struct {
	CustomerName string           `json:"customerName,omitempty"`
	Mobile1      string           `json:"mobile1,omitempty"`
	Address      string           `json:"address,omitempty"`
	City         string           `json:"city,omitempty"`
	Product      string           `json:"product,omitempty"`
	Qty          int              `json:"qty,omitempty"`
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	Color        string           `json:"color,omitempty"`
	Status       OrderStatus      `json:"status,omitempty"`
	IsDeleted    *bool            `json:"isDeleted,omitempty"`
}

type CreateBankOrder struct {
	CNIC           string          `json:"cnic"`
	CustomerName   string          `json:"customerName"`
	Mobile1        string          `json:"mobile1"`
	Mobile2        string          `json:"mobile2,omitempty"`
	Address        string          `json:"address"`
	City           string          `json:"city"`
	Brand          string          `json:"brand,omitempty"`
	Product        string          `json:"product"`
	GiftCode       string          `json:"giftCode,omitempty"`
	ProductID      string          `json:"productId,omitempty"`
	Qty            int             `json:"qty"`
	RefNo          string          `json:"refNo,omitempty"`
	PONumber       string          `json:"poNumber"`
	OrderDate      string          `json:"orderDate"`
	RedeemedPoints decimal.Decimal `json:"redeemedPoints"`
}

type UpdateBankOrder struct {
	CustomerName   string           `json:"customerName,omitempty"`
	Mobile1        string           `json:"mobile1,omitempty"`
	Address        string           `json:"address,omitempty"`
	City           string           `json:"city,omitempty"`
	Product        string           `json:"product,omitempty"`
	Qty            int              `json:"qty,omitempty"`
	RedeemedPoints *decimal.Decimal `json:"redeemedPoints,omitempty"`
	Status         OrderStatus      `json:"status,omitempty"`
	IsDeleted      *bool            `json:"isDeleted,omitempty"`
}

type Shipment struct {
	ID                string         `json:"_id"`
	Courier           Ref[Courier]   `json:"courierId,omitempty"`
	TrackingNumber    string         `json:"trackingNumber"`
	ConsignmentNumber string         `json:"consignmentNumber"`
	Status            ShipmentStatus `json:"status"`
	BookingDate       string         `json:"bookingDate,omitempty"`
}

type Courier struct {
	ID          string      `json:"_id"`
	CourierName string      `json:"courierName"`
	CourierType CourierType `json:"courierType"`
	IsActive    bool        `json:"isActive"`
}

// DispatchRequest is the courier dispatch payload. The manual dispatch path
// must not carry CourierType or IsManualDispatch; see ManualPayload.
type DispatchRequest struct {
	CourierType       CourierType `json:"courierType,omitempty"`
	IsManualDispatch  bool        `json:"isManualDispatch,omitempty"`
	CourierID         string      `json:"courierId,omitempty"`
	TrackingNumber    string      `json:"trackingNumber,omitempty"`
	ConsignmentNumber string      `json:"consignmentNumber,omitempty"`
	Remarks           string      `json:"remarks,omitempty"`
}

type manualDispatchPayload struct {
	CourierID         string `json:"courierId,omitempty"`
	TrackingNumber    string `json:"trackingNumber,omitempty"`
	ConsignmentNumber string `json:"consignmentNumber,omitempty"`
	Remarks           string `json:"remarks,omitempty"`
}

// ManualPayload strips the fields the manual endpoint does not take. The
// upstream has always been sent the narrowed form; whether it would reject
// the extra fields is unverified, so the stripping stays.
func (r DispatchRequest) ManualPayload() any {
	return manualDispatchPayload{
		CourierID:         r.CourierID,
		TrackingNumber:    r.TrackingNumber,
		ConsignmentNumber: r.ConsignmentNumber,
		Remarks:           r.Remarks,
	}
}
