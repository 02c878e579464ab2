package errors

var (
	ErrFormNotFound = &DomainError{
		Code:    "FORM_NOT_FOUND",
		Message: "form not found",
	}
	ErrFormAlreadyDecided = &DomainError{
		Code:    "FORM_ALREADY_DECIDED",
		Message: "form has already been approved or rejected",
	}
	ErrUserNotFound = &DomainError{
		Code:    "USER_NOT_FOUND",
		Message: "user not found",
	}
	ErrConnectionNotFound = &DomainError{
		Code:    "CONNECTION_NOT_FOUND",
		Message: "connection not found",
	}
	ErrConnectionDecided = &DomainError{
		Code:    "CONNECTION_ALREADY_DECIDED",
		Message: "connection has already been approved or rejected",
	}
	ErrSelfConnection = &DomainError{
		Code:    "SELF_CONNECTION",
		Message: "cannot send a connection request to yourself",
	}
	ErrConnectionExists = &DomainError{
		Code:    "CONNECTION_EXISTS",
		Message: "a connection request between these users already exists",
	}
)
