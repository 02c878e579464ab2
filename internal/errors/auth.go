package errors

var (
	ErrEmailTaken = &DomainError{
		Code:    "EMAIL_TAKEN",
		Message: "email already registered",
	}
	ErrInvalidCredentials = &DomainError{
		Code:    "INVALID_CREDENTIALS",
		Message: "invalid email or password",
	}
	ErrRoleMismatch = &DomainError{
		Code:    "ROLE_MISMATCH",
		Message: "account role does not match this login",
	}
)
