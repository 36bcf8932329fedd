package domain

import "errors"

var (
	ErrNotFound             = errors.New("resource not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrTenantInactive       = errors.New("tenant is inactive")
	ErrUserInactive         = errors.New("user is inactive")
	ErrDuplicateEmail       = errors.New("email already exists for this tenant")
	ErrDuplicateTenantSlug  = errors.New("tenant slug already exists")
	ErrCategoryNotFound     = errors.New("menu category not found")
	ErrMenuItemNotFound     = errors.New("menu item not found")
	ErrMenuItemUnavailable  = errors.New("menu item is not available")
	ErrTableNotFound        = errors.New("dining table not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrOrderEmpty           = errors.New("order has no line items")
	ErrOrderNotCancellable  = errors.New("order cannot be cancelled in its current status")
	ErrInvalidStatusChange  = errors.New("invalid order status transition")
	ErrOrderAlreadySettled  = errors.New("order is already settled")
	ErrOrderNotBilled       = errors.New("order must be billed before settlement")
	ErrInvalidPaymentMode   = errors.New("invalid payment mode")
	ErrUnsupportedImageType = errors.New("unsupported image type")
	ErrImageTooLarge        = errors.New("image exceeds maximum allowed size")
	ErrUploadFailed         = errors.New("upload to object storage failed")
	ErrInsufficientRole     = errors.New("insufficient role for this action")
)
