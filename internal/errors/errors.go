package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in organization"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors, including
// requests that arrive without their required parameters
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// SourceUnavailableError represents the failure of a single calendar
// source's fetch. The aggregator records it under the source's key and
// continues with the remaining sources.
type SourceUnavailableError struct {
	Source string
	Err    error
}

func (e *SourceUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("source %s unavailable: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("source %s unavailable", e.Source)
}

// Unwrap exposes the underlying fetch error
func (e *SourceUnavailableError) Unwrap() error {
	return e.Err
}

// MalformedRecordError represents a single native record that could not be
// normalized into an event. Such records are skipped and counted, never
// aborting the batch they arrived in.
type MalformedRecordError struct {
	Source string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed %s record: %s", e.Source, e.Reason)
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound   = &NotFoundError{Entity: "organization"}
	ErrWorkerNotFound         = &NotFoundError{Entity: "worker"}
	ErrTeamNotFound           = &NotFoundError{Entity: "team"}
	ErrTeamMembershipNotFound = &NotFoundError{Entity: "team membership"}
	ErrExternalTeamNotFound   = &NotFoundError{Entity: "external team"}
	ErrCalendarBlockNotFound  = &NotFoundError{Entity: "calendar block"}
	ErrLeaveRequestNotFound   = &NotFoundError{Entity: "leave request"}
	ErrPublicHolidayNotFound  = &NotFoundError{Entity: "public holiday"}
	ErrWorkItemNotFound       = &NotFoundError{Entity: "work item"}
)

// Already Exists Errors
var (
	ErrOrganizationExists   = &AlreadyExistsError{Entity: "organization", Context: "with this name or domain"}
	ErrWorkerExists         = &AlreadyExistsError{Entity: "worker", Context: "with this email"}
	ErrTeamExists           = &AlreadyExistsError{Entity: "team", Context: "with this name in the organization"}
	ErrTeamMembershipExists = &AlreadyExistsError{Entity: "team membership", Context: "for this worker"}
	ErrExternalTeamExists   = &AlreadyExistsError{Entity: "external team", Context: "with this external id"}
	ErrPublicHolidayExists  = &AlreadyExistsError{Entity: "public holiday", Context: "on this date"}
	ErrAdminMappingTaken    = &AlreadyExistsError{Entity: "external admin mapping", Context: "on another worker"}
)

// Business Logic Errors
var (
	ErrInvalidStatus           = errors.New("invalid status")
	ErrInvalidTimeRange        = errors.New("invalid time range")
	ErrInvalidDateFormat       = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrNoMembersInTeam         = errors.New("team has no members")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrLeaveAlreadyDecided     = errors.New("leave request has already been decided")
)

// Configuration Errors
var (
	ErrDateRangeRequired      = &ConfigurationError{Message: "start_date and end_date are required"}
	ErrDurationRequired       = &ConfigurationError{Message: "duration is required and must be positive"}
	ErrFieldServiceConfig     = &ConfigurationError{Message: "field service configuration missing: FIELD_SERVICE_BASE_URL, FIELD_SERVICE_CLIENT_ID or FIELD_SERVICE_CLIENT_SECRET"}
	ErrLDAPConfigMissing      = &ConfigurationError{Message: "ldap configuration missing: LDAP_HOST or LDAP_BASE_DN"}
	ErrWorkingHoursInvalid    = &ConfigurationError{Message: "working hours must be HH:MM with start before end"}
	ErrFieldServiceAPIFailure = errors.New("field service API request failed")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.Is(err, &NotFoundError{}) || errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.Is(err, &AlreadyExistsError{}) || errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.Is(err, &ValidationError{}) || errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.Is(err, &AuthenticationError{}) || errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.Is(err, &AuthorizationError{}) || errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.Is(err, &ConfigurationError{}) || errors.As(err, &configErr)
}

// IsSourceUnavailable checks if an error is a SourceUnavailableError
func IsSourceUnavailable(err error) bool {
	var sourceErr *SourceUnavailableError
	return errors.As(err, &sourceErr)
}

// IsMalformedRecord checks if an error is a MalformedRecordError
func IsMalformedRecord(err error) bool {
	var recordErr *MalformedRecordError
	return errors.As(err, &recordErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewSourceUnavailableError wraps a fetch failure for one calendar source
func NewSourceUnavailableError(source string, err error) error {
	return &SourceUnavailableError{Source: source, Err: err}
}

// NewMalformedRecordError creates a MalformedRecordError for one record
func NewMalformedRecordError(source, reason string) error {
	return &MalformedRecordError{Source: source, Reason: reason}
}
