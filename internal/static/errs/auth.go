package errs

import "errors"

var InvalidCredentials = errors.New("invalid credentials")

var (
	InternalError      = errors.New("internal error")
	GeneratingToken    = errors.New("error generating token")
	EmailRequired      = errors.New("email is required")
	FailedToCreateUser = errors.New("failed to create user")
	UserNameTaken      = errors.New("user name already taken")
	Unauthenticated    = errors.New("unauthenticated")
)

var (
	EmailDomainNotAllowed = errors.New("email domain is not allowed")
	InvalidRegistration   = errors.New("user name and password are required")
)
