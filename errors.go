package taskhub

import "errors"

var (
	// ErrFirstNameEmpty rejects a first name that is empty after trimming.
	ErrFirstNameEmpty = errors.New("first name cannot be empty")
	// ErrLastNameEmpty rejects a last name that is empty after trimming.
	ErrLastNameEmpty = errors.New("last name cannot be empty")
	// ErrEmailInvalid rejects an email that does not match the accepted shape.
	ErrEmailInvalid = errors.New("invalid email format")
	// ErrPasswordLength rejects a password outside the 6..12 character policy.
	ErrPasswordLength = errors.New("password must be between 6 and 12 characters")
	// ErrPasswordMismatch rejects a confirmation that differs from the password.
	ErrPasswordMismatch = errors.New("passwords do not match")
	// ErrPasswordReuse rejects a password change where nothing would change.
	ErrPasswordReuse = errors.New("new password must be different from current password")

	// ErrEmailTaken reports a uniqueness conflict on the email column.
	ErrEmailTaken = errors.New("email already in use")

	// ErrTodoNotFound reports that no todo matches the given id.
	ErrTodoNotFound = errors.New("todo not found")
	// ErrUserNotFound reports that no user matches the given id.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials is returned for every authentication failure.
	// The message is deliberately identical for an unknown email and a wrong
	// password so callers cannot probe which factor failed.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrLoginRateLimited reports that the login limiter refused the attempt.
	ErrLoginRateLimited = errors.New("login rate limited")
	// ErrLoginUnavailable reports that the login limiter backend is down.
	ErrLoginUnavailable = errors.New("login rate limit backend unavailable")
)
