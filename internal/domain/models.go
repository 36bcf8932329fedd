package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Tenant represents one restaurant on the platform.
type Tenant struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Slug      string    `db:"slug" json:"slug"`
	GSTIN     string    `db:"gstin" json:"gstin"`
	Address   string    `db:"address" json:"address"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// User represents an authenticated staff member belonging to a restaurant.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	TenantID     uuid.UUID `db:"tenant_id" json:"tenant_id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// MenuCategory groups menu items and carries the GST configuration items
// inherit when they don't override it.
type MenuCategory struct {
	ID        uuid.UUID `db:"id" json:"id"`
	TenantID  uuid.UUID `db:"tenant_id" json:"tenant_id"`
	Name      string    `db:"name" json:"name"`
	SortOrder int       `db:"sort_order" json:"sort_order"`
	GSTRate   *float64  `db:"gst_rate" json:"gst_rate"`
	GSTMode   string    `db:"gst_mode" json:"gst_mode"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// MenuItem is one orderable dish. GSTRate/GSTMode are optional overrides;
// when unset the category's configuration applies.
type MenuItem struct {
	ID          uuid.UUID `db:"id" json:"id"`
	TenantID    uuid.UUID `db:"tenant_id" json:"tenant_id"`
	CategoryID  uuid.UUID `db:"category_id" json:"category_id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Price       float64   `db:"price" json:"price"`
	GSTRate     *float64  `db:"gst_rate" json:"gst_rate"`
	GSTMode     string    `db:"gst_mode" json:"gst_mode"`
	ImageKey    string    `db:"image_key" json:"image_key"`
	IsAvailable bool      `db:"is_available" json:"is_available"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// DiningTable is a physical table a dine-in order is attached to.
type DiningTable struct {
	ID        uuid.UUID `db:"id" json:"id"`
	TenantID  uuid.UUID `db:"tenant_id" json:"tenant_id"`
	Label     string    `db:"label" json:"label"`
	Capacity  int       `db:"capacity" json:"capacity"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Order is one customer order. Items is the persisted JSONB line array; each
// line stores its resolved GST rate/mode/subtotal at write time so later
// reprints reconcile against consistent stored values. Total is the
// authoritative figure captured at billing/settlement and is what any
// financial document must show as TOTAL, even if the menu changed afterwards.
type Order struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	TenantID      uuid.UUID       `db:"tenant_id" json:"tenant_id"`
	TableID       *uuid.UUID      `db:"table_id" json:"table_id"`
	OrderNumber   string          `db:"order_number" json:"order_number"`
	OrderType     OrderType       `db:"order_type" json:"order_type"`
	Status        OrderStatus     `db:"status" json:"status"`
	Items         json.RawMessage `db:"items" json:"items"`
	Total         float64         `db:"total" json:"total"`
	PaymentMode   *PaymentMode    `db:"payment_mode" json:"payment_mode"`
	CustomerName  string          `db:"customer_name" json:"customer_name"`
	CustomerPhone string          `db:"customer_phone" json:"customer_phone"`
	Notes         string          `db:"notes" json:"notes"`
	CreatedBy     uuid.UUID       `db:"created_by" json:"created_by"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`
	SettledAt     *time.Time      `db:"settled_at" json:"settled_at"`
}

// CanCancel reports whether the order may still be cancelled.
func (o *Order) CanCancel() bool {
	switch o.Status {
	case OrderStatusPlaced, OrderStatusPreparing, OrderStatusServed:
		return true
	}
	return false
}

// ReportFilters narrows reporting queries to a date window.
type ReportFilters struct {
	From time.Time
	To   time.Time
}

// SalesRegisterRow is one settled order in the sales register report.
type SalesRegisterRow struct {
	OrderID     uuid.UUID   `json:"order_id"`
	OrderNumber string      `json:"order_number"`
	SettledAt   time.Time   `json:"settled_at"`
	OrderType   OrderType   `json:"order_type"`
	PaymentMode PaymentMode `json:"payment_mode"`
	Subtotal    float64     `json:"subtotal"`
	CGST        float64     `json:"cgst"`
	SGST        float64     `json:"sgst"`
	RoundOff    float64     `json:"round_off"`
	Total       float64     `json:"total"`
}

// DailySummary aggregates one business day's settled orders.
type DailySummary struct {
	Date       string  `json:"date"`
	OrderCount int     `json:"order_count"`
	Subtotal   float64 `json:"subtotal"`
	TotalGST   float64 `json:"total_gst"`
	CGST       float64 `json:"cgst"`
	SGST       float64 `json:"sgst"`
	RoundOff   float64 `json:"round_off"`
	GrossSales float64 `json:"gross_sales"`
	CashSales  float64 `json:"cash_sales"`
	CardSales  float64 `json:"card_sales"`
	UPISales   float64 `json:"upi_sales"`
}
