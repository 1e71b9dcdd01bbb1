package domain

// Error taxonomy shared by services and adapters. Wrap with fmt.Errorf("%w")
// and test with errors.Is; the HTTP adapter maps each to one status code.
var (
	ErrValidation         = errString("validation failed")
	ErrDuplicateEmail     = errString("email already registered")
	ErrInvalidCredentials = errString("invalid email or password")
	ErrNotFound           = errString("not found")
	ErrStorage            = errString("storage failure")
	ErrUnauthorized       = errString("unauthorized")
)

type errString string

func (e errString) Error() string { return string(e) }
