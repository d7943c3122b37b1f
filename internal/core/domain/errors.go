package domain

import "errors"

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInternalServer     = errors.New("internal server error")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
)

// UserErrors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrUnitNotAssigned   = errors.New("user has no assigned unit")
)

// PaymentErrors
var (
	ErrInvalidAmount        = errors.New("invalid payment amount")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

// RequestErrors
var (
	ErrRequestNotFound     = errors.New("support request not found")
	ErrEmptyRequestDetail  = errors.New("request detail is required")
	ErrInvalidRequestType  = errors.New("invalid request type")
	ErrInvalidStatusChange = errors.New("invalid request status transition")
)

// CatalogErrors
var (
	ErrUnitNotFound      = errors.New("unit not found")
	ErrInvalidUnitStatus = errors.New("invalid unit status")
	ErrInvalidUnitType   = errors.New("invalid unit type")
)
