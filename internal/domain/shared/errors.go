package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
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

// Common domain errors
var (
	ErrNotFound        = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists   = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput    = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrInvalidState    = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrDuplicateSKU    = NewDomainError("DUPLICATE_SKU", "A product with this SKU already exists")
	ErrCategoryCycle   = NewDomainError("CATEGORY_CYCLE", "Category cannot be its own ancestor")
	ErrLocationInUse   = NewDomainError("LOCATION_IN_USE", "Location still holds stock or transaction history")
	ErrProductInUse    = NewDomainError("PRODUCT_IN_USE", "Product still holds stock or transaction history")
	ErrCategoryInUse   = NewDomainError("CATEGORY_IN_USE", "Category still has children or products")
	ErrTaxInUse        = NewDomainError("TAX_IN_USE", "Tax is referenced by one or more invoices")
	ErrInvoicePaid     = NewDomainError("INVOICE_PAID", "Paid invoices cannot be deleted")
	ErrNotSupplier     = NewDomainError("NOT_SUPPLIER", "Contact is not a supplier")
	ErrEmptyCart       = NewDomainError("EMPTY_CART", "At least one line item is required")
	ErrPaymentTooSmall = NewDomainError("PAYMENT_TOO_SMALL", "Payment amount does not cover the total")
	ErrInvalidStatus   = NewDomainError("INVALID_STATUS", "Unsupported status value")
)
