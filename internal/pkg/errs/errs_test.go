package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"pharmadmin/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", int64(101))

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, int64(101), err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 101", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("evicted by sync")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", 101, cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 101 (cause: evicted by sync)",
			err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("bad layout")
		err := errs.NewValueIsInvalidErrorWithCause("from", cause)

		assert.Equal(t, "value is invalid: from (cause: bad layout)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("older_than", -1, 0, 3650)

		assert.Equal(t, -1, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 3650, err.Max)
		assert.Equal(t, "value is invalid: -1 is older_than, min value is 0, max value is 3650", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("quantity", 0, 1, 1000, cause)

		assert.Equal(t,
			"value is invalid: 0 is quantity, min value is 1, max value is 1000 (cause: validation failed)",
			err.Error())
	})

	t.Run("should collapse newlines in string values", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("BACKEND_BASE_URL")

	assert.Equal(t, "value is required: BACKEND_BASE_URL", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())

	withCause := errs.NewValueIsRequiredErrorWithCause("id", errors.New("empty path segment"))
	assert.Equal(t, "value is required: id (cause: empty path segment)", withCause.Error())
}

func TestStatusIsTerminalError(t *testing.T) {
	t.Run("NewStatusIsTerminalError", func(t *testing.T) {
		err := errs.NewStatusIsTerminalError(int64(7), "Delivered")

		assert.Equal(t, "status is terminal: ID is: 7, status is: Delivered", err.Error())
		assert.Equal(t, errs.ErrStatusIsTerminal, err.Unwrap())
	})

	t.Run("NewStatusIsTerminalErrorWithCause", func(t *testing.T) {
		err := errs.NewStatusIsTerminalErrorWithCause(7, "Received", errors.New("guarded"))

		assert.Equal(t, "status is terminal: ID is: 7, status is: Received (cause: guarded)", err.Error())
	})
}

func TestPayloadIsMalformedError(t *testing.T) {
	err := errs.NewPayloadIsMalformedError("content")
	assert.Equal(t, "payload is malformed: content", err.Error())

	withCause := errs.NewPayloadIsMalformedErrorWithCause("product_details", errors.New("unexpected EOF"))
	assert.Equal(t, "payload is malformed: product_details (cause: unexpected EOF)", withCause.Error())
	assert.Equal(t, errs.ErrPayloadIsMalformed, withCause.Unwrap())
}

func TestUpstreamUnavailableError(t *testing.T) {
	t.Run("with status code", func(t *testing.T) {
		err := errs.NewUpstreamUnavailableError("GET /orders", 503)
		assert.Equal(t, "upstream is unavailable: GET /orders, status code is 503", err.Error())
	})

	t.Run("with transport cause", func(t *testing.T) {
		err := errs.NewUpstreamUnavailableErrorWithCause("GET /orders", errors.New("connection refused"))
		assert.Equal(t, "upstream is unavailable: GET /orders (cause: connection refused)", err.Error())
		assert.Equal(t, errs.ErrUpstreamUnavailable, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "status is terminal", errs.ErrStatusIsTerminal.Error())
	assert.Equal(t, "payload is malformed", errs.ErrPayloadIsMalformed.Error())
	assert.Equal(t, "upstream is unavailable", errs.ErrUpstreamUnavailable.Error())
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want errs.Kind
	}{
		{"nil", nil, errs.KindUnknown},
		{"plain", errors.New("boom"), errs.KindUnknown},
		{"not found", errs.NewObjectNotFoundError("id", 1), errs.KindNotFound},
		{"terminal", errs.NewStatusIsTerminalError(1, "Delivered"), errs.KindAlreadyTerminal},
		{"malformed", errs.NewPayloadIsMalformedError("content"), errs.KindParseError},
		{"upstream", errs.NewUpstreamUnavailableError("GET /", 500), errs.KindNetworkError},
		{"invalid", errs.NewValueIsInvalidError("status"), errs.KindInvalidInput},
		{"out of range", errs.NewValueIsOutOfRangeError("days", -1, 0, 10), errs.KindInvalidInput},
		{"required", errs.NewValueIsRequiredError("id"), errs.KindInvalidInput},
		{"wrapped", fmt.Errorf("sync: %w", errs.NewUpstreamUnavailableError("GET /", 502)), errs.KindNetworkError},
		{"joined", errors.Join(errors.New("a"), errs.NewObjectNotFoundError("id", 2)), errs.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errs.KindOf(tt.err))
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "NotFound", errs.KindNotFound.String())
	assert.Equal(t, "AlreadyTerminal", errs.KindAlreadyTerminal.String())
	assert.Equal(t, "ParseError", errs.KindParseError.String())
	assert.Equal(t, "NetworkError", errs.KindNetworkError.String())
	assert.Equal(t, "InvalidInput", errs.KindInvalidInput.String())
	assert.Equal(t, "Unknown", errs.Kind(99).String())
}
