package domain

// UserRole defines the role hierarchy within a restaurant.
type UserRole string

const (
	RoleOwner   UserRole = "owner"
	RoleManager UserRole = "manager"
	RoleCaptain UserRole = "captain"
)

// ValidUserRoles lists the assignable staff roles.
var ValidUserRoles = map[UserRole]bool{
	RoleOwner:   true,
	RoleManager: true,
	RoleCaptain: true,
}

// OrderStatus represents the kitchen/billing lifecycle of an order.
type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "placed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusServed    OrderStatus = "served"
	OrderStatusBilled    OrderStatus = "billed"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// ValidOrderStatusTransition reports whether an order may move between two
// statuses. Settlement and cancellation are terminal.
func ValidOrderStatusTransition(from, to OrderStatus) bool {
	allowed := map[OrderStatus][]OrderStatus{
		OrderStatusPlaced:    {OrderStatusPreparing, OrderStatusServed, OrderStatusBilled, OrderStatusCancelled},
		OrderStatusPreparing: {OrderStatusServed, OrderStatusBilled, OrderStatusCancelled},
		OrderStatusServed:    {OrderStatusBilled, OrderStatusCancelled},
		OrderStatusBilled:    {OrderStatusPaid},
		OrderStatusPaid:      {},
		OrderStatusCancelled: {},
	}
	for _, s := range allowed[from] {
		if s == to {
			return true
		}
	}
	return false
}

// OrderType distinguishes dine-in orders (table-bound) from takeaway.
type OrderType string

const (
	OrderTypeDineIn   OrderType = "dine_in"
	OrderTypeTakeaway OrderType = "takeaway"
)

// PaymentMode is how a settled order was paid.
type PaymentMode string

const (
	PaymentModeCash PaymentMode = "cash"
	PaymentModeCard PaymentMode = "card"
	PaymentModeUPI  PaymentMode = "upi"
)

// ValidPaymentModes lists the accepted settlement modes.
var ValidPaymentModes = map[PaymentMode]bool{
	PaymentModeCash: true,
	PaymentModeCard: true,
	PaymentModeUPI:  true,
}
