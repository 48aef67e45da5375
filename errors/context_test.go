package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithContext(t *testing.T) {
	err := WithContext(Parse(stderrors.New("bad json")), "endpoint", "/v1/orders")

	ctx := err.Context()
	require.NotNil(t, ctx)
	require.Equal(t, "/v1/orders", ctx["endpoint"])
	require.Equal(t, KindParse, err.Kind())
}

func TestWithContext_Chaining(t *testing.T) {
	var err AppError = HTTPStatus(503)
	err = WithContext(err, "endpoint", "/v1/orders")
	err = WithContext(err, "attempt", 2)

	ctx := err.Context()
	require.Len(t, ctx, 2)
	require.Equal(t, "/v1/orders", ctx["endpoint"])
	require.Equal(t, 2, ctx["attempt"])
	require.Equal(t, 503, err.Code())
}

func TestWithContext_StandardError(t *testing.T) {
	stdErr := stderrors.New("standard error")
	err := WithContext(stdErr, "key", "value")

	require.Equal(t, KindRuntime, err.Kind())
	require.Equal(t, ClassificationPermanent, err.Classification())
	require.Equal(t, stdErr, err.Unwrap())
	require.Equal(t, "value", err.Context()["key"])
}

func TestWithContext_NilError(t *testing.T) {
	require.Nil(t, WithContext(nil, "key", "value"))
	require.Nil(t, WithContextMap(nil, map[string]interface{}{"key": "value"}))
	require.Nil(t, WithClassification(nil, ClassificationRetryable))
}

func TestWithContext_Immutability(t *testing.T) {
	original := Server(stderrors.New("maintenance"))
	modified := WithContext(original, "key", "value")

	require.Nil(t, original.Context())
	require.NotNil(t, modified.Context())

	// Mutating the returned map does not leak into the error.
	ctx := modified.Context()
	ctx["key"] = "changed"
	require.Equal(t, "value", modified.Context()["key"])
}

func TestWithContextMap(t *testing.T) {
	err := WithContext(Socket(stderrors.New("reset")), "host", "a.example")
	err = WithContextMap(err, map[string]interface{}{
		"host": "b.example",
		"port": 443,
	})

	ctx := err.Context()
	require.Len(t, ctx, 2)
	require.Equal(t, "b.example", ctx["host"])
	require.Equal(t, 443, ctx["port"])
}

func TestWithClassification(t *testing.T) {
	original := HTTPStatus(404)
	require.False(t, original.Classification().IsRetryable())

	err := WithClassification(original, ClassificationRetryable)

	require.True(t, err.Classification().IsRetryable())
	require.Equal(t, KindHTTPStatus, err.Kind())
	require.Equal(t, 404, err.Code())
	require.False(t, original.Classification().IsRetryable())
}
