// Package errors defines the domain error values exchanged between services
// and handlers. Handlers map these to HTTP statuses; anything else collapses
// to a generic 500.
package errors

// DomainError carries a stable machine code next to a human message.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}
