package utils

import "errors"

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrPlanNotFound       = errors.New("plan not found")
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidSignature   = errors.New("invalid signature")
	ErrPaymentReplayed    = errors.New("payment already applied")
	ErrPlanMismatch       = errors.New("order was created for a different plan")
	ErrSlugTaken          = errors.New("slug already taken")
	ErrNotOwner           = errors.New("restaurant does not belong to this account")
	ErrMembershipExpired  = errors.New("membership expired")
	ErrGatewayFailure     = errors.New("payment gateway error")
	ErrValidation         = errors.New("missing required field")
	ErrDatabaseError      = errors.New("database error")
)
