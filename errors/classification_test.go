package errors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorClassification_IsRetryable(t *testing.T) {
	tests := []struct {
		name           string
		classification ErrorClassification
		want           bool
	}{
		{
			name:           "retryable classification",
			classification: ClassificationRetryable,
			want:           true,
		},
		{
			name:           "permanent classification",
			classification: ClassificationPermanent,
			want:           false,
		},
		{
			name:           "unknown classification",
			classification: ErrorClassification("UNKNOWN"),
			want:           false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.classification.IsRetryable())
		})
	}
}

func TestClassify_Kinds(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		want ErrorClassification
	}{
		{"network is retryable", KindNetwork, ClassificationRetryable},
		{"socket is retryable", KindSocket, ClassificationRetryable},
		{"http error is retryable", KindHTTPError, ClassificationRetryable},
		{"server is retryable", KindServer, ClassificationRetryable},
		{"parse is permanent", KindParse, ClassificationPermanent},
		{"io is permanent", KindIO, ClassificationPermanent},
		{"runtime is permanent", KindRuntime, ClassificationPermanent},
		{"unknown kind is permanent", Kind(0x7f), ClassificationPermanent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, classify(tt.kind, 0))
		})
	}
}

func TestClassify_HTTPStatus(t *testing.T) {
	tests := []struct {
		code int
		want ErrorClassification
	}{
		{400, ClassificationPermanent},
		{401, ClassificationPermanent},
		{404, ClassificationPermanent},
		{408, ClassificationRetryable},
		{429, ClassificationRetryable},
		{500, ClassificationRetryable},
		{503, ClassificationRetryable},
		{599, ClassificationRetryable},
		{302, ClassificationPermanent},
		{0, ClassificationPermanent},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, classify(KindHTTPStatus, tt.code), "status %d", tt.code)
		require.Equal(t, tt.want, HTTPStatus(tt.code).Classification(), "status %d", tt.code)
	}
}
