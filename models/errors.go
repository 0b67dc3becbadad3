package models

import "errors"

// Error taxonomy for the API. Handlers translate these into HTTP statuses via
// helper.StatusFromError; anything outside this set is reported as an internal
// failure.

var (
	// 401s. Unknown email and wrong password share one error so callers
	// cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrSuspended          = errors.New("Account is suspended. Please contact administrator.")
	ErrInvalidToken       = errors.New("Invalid or expired token")

	// 403. Credentials were fine but the role may not enter the admin panel.
	ErrAccessDenied = errors.New("Access denied. Admin or Editor role required.")
)

// ValidationError reports a malformed or out-of-bounds request field (400).
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string { return e.Message }

// NotFoundError reports a missing resource (404).
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string { return e.Resource + " not found" }

// ForbiddenError reports a resource-level authorization denial (403), such as
// the self-action restrictions on role and status updates.
type ForbiddenError struct {
	Message string
}

func (e ForbiddenError) Error() string { return e.Message }

// ConflictError reports a uniqueness collision, naming the colliding field (409).
type ConflictError struct {
	Field string
}

func (e ConflictError) Error() string { return e.Field + " already exists" }
