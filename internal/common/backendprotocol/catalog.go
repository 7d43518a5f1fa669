package backendprotocol

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string          `json:"_id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Brand       string          `json:"brand,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Category    Ref[Category]   `json:"categoryId,omitempty"`
	Status      string          `json:"status"`
	IsDeleted   bool            `json:"isDeleted"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ProductInput is the create/update payload for the products catalog. The
// category travels as a bare id; the expanded Ref form is read-only.
type ProductInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Brand       string          `json:"brand,omitempty"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  string          `json:"categoryId,omitempty"`
	Status      string          `json:"status,omitempty"`
}

type Category struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsDeleted   bool   `json:"isDeleted"`
}

type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type Vendor struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	City     string `json:"city,omitempty"`
	IsActive bool   `json:"isActive"`
}

type VendorInput struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	City     string `json:"city,omitempty"`
	IsActive *bool  `json:"isActive,omitempty"`
}

type Bank struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Code     string `json:"code,omitempty"`
	IsActive bool   `json:"isActive"`
}

type BankInput struct {
	Name     string `json:"name"`
	Code     string `json:"code,omitempty"`
	IsActive *bool  `json:"isActive,omitempty"`
}

type PurchaseOrderItem struct {
	Product   Ref[Product]    `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Total     decimal.Decimal `json:"total"`
}

type PurchaseOrder struct {
	ID          string              `json:"_id"`
	PONumber    string              `json:"poNumber"`
	Vendor      Ref[Vendor]         `json:"vendorId"`
	Items       []PurchaseOrderItem `json:"items"`
	TotalAmount decimal.Decimal     `json:"totalAmount"`
	Status      string              `json:"status"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// CombinedPOPreview is what the combine/preview endpoint projects for a set
// of purchase orders before an actual merge is triggered.
type CombinedPOPreview struct {
	Vendor      Ref[Vendor]         `json:"vendorId"`
	Items       []PurchaseOrderItem `json:"items"`
	TotalAmount decimal.Decimal     `json:"totalAmount"`
	SourcePOIDs []string            `json:"sourcePoIds,omitempty"`
}

type CombinePORequest struct {
	PurchaseOrderIDs []string `json:"purchaseOrderIds"`
}

type DashboardStats struct {
	TotalBankOrders    int `json:"totalBankOrders"`
	TotalBipOrders     int `json:"totalBipOrders"`
	PendingOrders      int `json:"pendingOrders"`
	DispatchedOrders   int `json:"dispatchedOrders"`
	TotalProducts      int `json:"totalProducts"`
	TotalVendors       int `json:"totalVendors"`
	OpenPurchaseOrders int `json:"openPurchaseOrders"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginData struct {
	User struct {
		ID        string `json:"_id"`
		Email     string `json:"email"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Role      string `json:"role"`
	} `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
