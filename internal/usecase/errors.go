package usecase

// Error codes carried by DomainError and TechnicalError. Handlers map them
// to HTTP statuses.
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeAuth       = "AUTH_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeUpstream   = "UPSTREAM_ERROR"
	CodeDatabase   = "DATABASE_ERROR"
)

// DomainError is a business-rule failure the caller can act on. The message
// is safe to return to the client.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// TechnicalError is an unexpected infrastructure failure. The original cause
// is logged server-side; Message is the generic text shown to the caller.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}
