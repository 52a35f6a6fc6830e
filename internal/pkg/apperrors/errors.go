package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrAccountDisabled    = errors.New("account is disabled")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Drive errors
var (
	ErrDriveNotFound      = errors.New("drive not found")
	ErrDriveAlreadyExists = errors.New("drive with this name already exists for the college")
	ErrRoundNotConfigured = errors.New("round is not configured for the drive")
)

// College errors
var (
	ErrCollegeNotFound      = errors.New("college not found")
	ErrCollegeAlreadyExists = errors.New("college with this name already exists")
	ErrCollegeHasDrives     = errors.New("college has associated drives and cannot be deleted")
)

// Student errors
var (
	ErrStudentNotFound           = errors.New("student not found")
	ErrRegistrationNoAlreadyUsed = errors.New("registration number already used in this drive")
	ErrStudentNotInDrive         = errors.New("student does not belong to the drive")
)

// Panel errors
var (
	ErrPanelNotFound      = errors.New("panel not found")
	ErrPanelMemberExists  = errors.New("user is already a member of the panel")
	ErrPanelMemberMissing = errors.New("user is not a member of the panel")
)

// Evaluation job errors
var (
	ErrJobNotFound       = errors.New("evaluation job not found")
	ErrJobAlreadyRunning = errors.New("an evaluation job is already running for the drive")
	ErrNoScreeningRound  = errors.New("drive has no pre-screening round configured")
)

// Persistence errors
var (
	// ErrPersistFailure marks a failed write behind an optimistic board
	// update; callers revert to the pre-transition snapshot on this signal.
	ErrPersistFailure = errors.New("failed to persist round transition")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
