package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON     = "INVALID_JSON"
	ErrCodeInvalidID       = "INVALID_ID"
	ErrCodeMissingField    = "MISSING_FIELD"
	ErrCodeInvalidName     = "INVALID_NAME"
	ErrCodeInvalidKind     = "INVALID_KIND"
	ErrCodeInvalidQuantity = "INVALID_QUANTITY"
	ErrCodeInvalidProduct  = "INVALID_PRODUCT"
	ErrCodeProductNotFound = "PRODUCT_NOT_FOUND"
	ErrCodeInternalError   = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// IsNotFound reports whether the error code denotes a missing resource.
func (e *DomainError) IsNotFound() bool {
	return e.Code == ErrCodeProductNotFound
}

// Common domain errors
var (
	ErrMissingName     = NewDomainError(ErrCodeMissingField, "name is required")
	ErrMissingKind     = NewDomainError(ErrCodeMissingField, "kind is required")
	ErrEmptyName       = NewDomainError(ErrCodeInvalidName, "name must not be empty")
	ErrInvalidKind     = NewDomainError(ErrCodeInvalidKind, `kind must be either "congelada" or "fresca"`)
	ErrInvalidQuantity = NewDomainError(ErrCodeInvalidQuantity, "quantity must be between 0 and 2147483647")
	ErrInvalidProduct  = NewDomainError(ErrCodeInvalidProduct, "product violates a storage constraint")
	ErrProductNotFound = NewDomainError(ErrCodeProductNotFound, "Product not found")
)
