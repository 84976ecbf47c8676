package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "team"}
		assert.Equal(t, "team not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "team"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "worker"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrTeamNotFound, ErrTeamNotFound))
		assert.False(t, errors.Is(ErrTeamNotFound, ErrWorkerNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrTeamNotFound))
		assert.False(t, IsNotFound(ErrInvalidStatus))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "team", Context: "in the organization"}
		assert.Equal(t, "team already exists in the organization", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "team"}
		assert.Equal(t, "team already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "team", Context: "in org"}
		err2 := &AlreadyExistsError{Entity: "team", Context: "in org"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrTeamExists))
		assert.False(t, IsAlreadyExists(ErrTeamNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid format"}
		assert.Equal(t, "validation error: email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("email", "invalid")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrTeamNotFound))
	})
}

func TestSourceUnavailableError(t *testing.T) {
	t.Run("Error message wraps cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := NewSourceUnavailableError("external_task", cause)
		assert.Equal(t, "source external_task unavailable: connection refused", err.Error())
	})

	t.Run("Error message without cause", func(t *testing.T) {
		err := &SourceUnavailableError{Source: "leave"}
		assert.Equal(t, "source leave unavailable", err.Error())
	})

	t.Run("Unwrap exposes the cause", func(t *testing.T) {
		cause := errors.New("boom")
		err := NewSourceUnavailableError("block", cause)
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("IsSourceUnavailable helper", func(t *testing.T) {
		err := NewSourceUnavailableError("work_item", errors.New("db down"))
		assert.True(t, IsSourceUnavailable(err))
		assert.False(t, IsSourceUnavailable(ErrTeamNotFound))
	})

	t.Run("detected through wrapping", func(t *testing.T) {
		err := fmt.Errorf("fetch failed: %w", NewSourceUnavailableError("external_task", errors.New("timeout")))
		assert.True(t, IsSourceUnavailable(err))
	})
}

func TestMalformedRecordError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := NewMalformedRecordError("external_task", "missing scheduled start")
		assert.Equal(t, "malformed external_task record: missing scheduled start", err.Error())
	})

	t.Run("IsMalformedRecord helper", func(t *testing.T) {
		err := NewMalformedRecordError("leave", "end before start")
		assert.True(t, IsMalformedRecord(err))
		assert.False(t, IsMalformedRecord(ErrInvalidTimeRange))
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("custom entity")
		assert.Equal(t, "custom entity not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("custom", "in scope")
		assert.Equal(t, "custom already exists in scope", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("NewValidationError", func(t *testing.T) {
		err := NewValidationError("field", "message")
		assert.Equal(t, "validation error: field - message", err.Error())
		assert.True(t, IsValidation(err))
	})

	t.Run("NewConfigurationError", func(t *testing.T) {
		err := NewConfigurationError("missing range")
		assert.Equal(t, "missing range", err.Error())
		assert.True(t, IsConfiguration(err))
	})
}

func TestBusinessLogicErrors(t *testing.T) {
	t.Run("Business logic errors", func(t *testing.T) {
		assert.Error(t, ErrInvalidStatus)
		assert.Error(t, ErrInvalidTimeRange)
		assert.Error(t, ErrInvalidDateFormat)
		assert.Error(t, ErrNoMembersInTeam)
		assert.Error(t, ErrLeaveAlreadyDecided)
	})

	t.Run("Configuration errors", func(t *testing.T) {
		assert.True(t, IsConfiguration(ErrDateRangeRequired))
		assert.True(t, IsConfiguration(ErrDurationRequired))
		assert.True(t, IsConfiguration(ErrWorkingHoursInvalid))
	})
}
