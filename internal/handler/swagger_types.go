package handler

import (
	"time"

	"github.com/google/uuid"

	"dhaba/internal/domain"
)

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// LoginRequest represents the login request body.
type LoginRequest struct {
	TenantSlug string `json:"tenant_slug" binding:"required" example:"sharma-dhaba"`
	Email      string `json:"email" binding:"required" example:"owner@sharmadhaba.in"`
	Password   string `json:"password" binding:"required" example:"securepassword123"`
}

// RefreshRequest represents the token refresh request body.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// CreateTenantRequest represents the restaurant onboarding request body.
type CreateTenantRequest struct {
	Name    string `json:"name" binding:"required" example:"Sharma Dhaba"`
	Slug    string `json:"slug" binding:"required" example:"sharma-dhaba"`
	GSTIN   string `json:"gstin" example:"27AABCS1234A1Z5"`
	Address string `json:"address" example:"NH-44, Murthal, Haryana"`
}

// UpdateTenantRequest represents the restaurant update request body.
type UpdateTenantRequest struct {
	Name     *string `json:"name" example:"Sharma Dhaba & Restaurant"`
	Slug     *string `json:"slug" example:"sharma-dhaba"`
	GSTIN    *string `json:"gstin" example:"27AABCS1234A1Z5"`
	Address  *string `json:"address" example:"NH-44, Murthal, Haryana"`
	IsActive *bool   `json:"is_active" example:"true"`
}

// CreateUserRequest represents the create staff account request body.
type CreateUserRequest struct {
	Email    string          `json:"email" binding:"required" example:"captain@sharmadhaba.in"`
	Password string          `json:"password" binding:"required" example:"securepassword123"`
	FullName string          `json:"full_name" example:"Ravi Kumar"`
	Role     domain.UserRole `json:"role" binding:"required" example:"captain"`
}

// UpdateUserRequest represents the update staff account request body.
type UpdateUserRequest struct {
	Email    *string          `json:"email" example:"ravi.kumar@sharmadhaba.in"`
	FullName *string          `json:"full_name" example:"Ravi Kumar"`
	Role     *domain.UserRole `json:"role" example:"manager"`
	IsActive *bool            `json:"is_active" example:"true"`
}

// CreateCategoryRequest represents the create menu category request body.
type CreateCategoryRequest struct {
	Name      string   `json:"name" binding:"required" example:"Tandoor"`
	SortOrder int      `json:"sort_order" example:"2"`
	GSTRate   *float64 `json:"gst_rate" example:"5"`
	GSTMode   string   `json:"gst_mode" example:"exclude"`
}

// CreateMenuItemRequest represents the create menu item request body.
type CreateMenuItemRequest struct {
	CategoryID  uuid.UUID `json:"category_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name        string    `json:"name" binding:"required" example:"Butter Naan"`
	Description string    `json:"description" example:"Tandoor-baked, brushed with butter"`
	Price       float64   `json:"price" binding:"required" example:"60"`
	GSTRate     *float64  `json:"gst_rate" example:"5"`
	GSTMode     string    `json:"gst_mode" example:"include"`
}

// CreateTableRequest represents the create dining table request body.
type CreateTableRequest struct {
	Label    string `json:"label" binding:"required" example:"T4"`
	Capacity int    `json:"capacity" binding:"required" example:"4"`
}

// CreateOrderRequest represents the place order request body.
type CreateOrderRequest struct {
	TableID       *uuid.UUID       `json:"table_id" example:"660e8400-e29b-41d4-a716-446655440001"`
	OrderType     domain.OrderType `json:"order_type" binding:"required" example:"dine_in"`
	Items         []OrderItemBody  `json:"items" binding:"required"`
	CustomerName  string           `json:"customer_name" example:"Walk-in"`
	CustomerPhone string           `json:"customer_phone" example:"+919812345678"`
	Notes         string           `json:"notes" example:"less spicy"`
}

// OrderItemBody represents one requested line on an order.
type OrderItemBody struct {
	ItemID   uuid.UUID `json:"item_id" binding:"required" example:"770e8400-e29b-41d4-a716-446655440002"`
	Quantity int       `json:"quantity" binding:"required" example:"2"`
}

// ChangeStatusRequest represents the order status change request body.
type ChangeStatusRequest struct {
	Status domain.OrderStatus `json:"status" binding:"required" example:"billed"`
}

// SettleOrderRequest represents the order settlement request body.
type SettleOrderRequest struct {
	PaymentMode   domain.PaymentMode `json:"payment_mode" binding:"required" example:"upi"`
	TenderedTotal *float64           `json:"tendered_total" example:"210"`
}

// DayCloseRequest represents the day-close email request body.
type DayCloseRequest struct {
	Date       string   `json:"date" binding:"required" example:"2025-03-14"`
	Recipients []string `json:"recipients" binding:"required" example:"owner@sharmadhaba.in"`
}

// --- Response Types ---

// TokenResponse represents the authentication token response.
type TokenResponse struct {
	AccessToken  string    `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string    `json:"refresh_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt    time.Time `json:"expires_at" example:"2025-03-14T10:30:00Z"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"database not reachable"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message" example:"operation completed successfully"`
}

// ImageURLResponse represents a presigned menu item image URL.
type ImageURLResponse struct {
	URL string `json:"url" example:"https://s3.ap-south-1.amazonaws.com/dhaba-menu-images/...?X-Amz-Signature=..."`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
