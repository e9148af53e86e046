package storage

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockAPIError struct {
	code    string
	message string
}

func (e *mockAPIError) ErrorCode() string             { return e.code }
func (e *mockAPIError) ErrorMessage() string          { return e.message }
func (e *mockAPIError) ErrorFault() smithy.ErrorFault { return smithy.FaultUnknown }
func (e *mockAPIError) Error() string                 { return fmt.Sprintf("%s: %s", e.code, e.message) }

func TestWrapS3Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"no such key", &mockAPIError{code: "NoSuchKey"}, ErrNotFound},
		{"no such bucket", &mockAPIError{code: "NoSuchBucket"}, ErrNotFound},
		{"access denied", &mockAPIError{code: "AccessDenied"}, ErrAccessDenied},
		{"bad signature", &mockAPIError{code: "SignatureDoesNotMatch"}, ErrAccessDenied},
		{"typed no such key", &types.NoSuchKey{}, ErrNotFound},
		{"typed no such bucket", &types.NoSuchBucket{}, ErrNotFound},
		{"other api error", &mockAPIError{code: "SlowDown"}, ErrUploadFailed},
		{"plain error", errors.New("connection reset"), ErrUploadFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := wrapS3Error(tt.err, ErrUploadFailed)
			require.ErrorIs(t, got, tt.want)
			assert.Contains(t, got.Error(), tt.err.Error())
		})
	}
}

func TestWrapS3Error_HidesAWSTypes(t *testing.T) {
	t.Parallel()

	got := wrapS3Error(&types.NoSuchKey{}, ErrDeleteFailed)
	var noKey *types.NoSuchKey
	assert.False(t, errors.As(got, &noKey))
}

func TestCheckKey(t *testing.T) {
	t.Parallel()

	for _, key := range []string{"index.html", "en/blog/index.html", "site/es/index.html"} {
		assert.NoError(t, checkKey(key), key)
	}
	for _, key := range []string{"", "/index.html", "en//index.html", "en/../secret", "./index.html", "en/"} {
		assert.ErrorIs(t, checkKey(key), ErrInvalidKey, key)
	}
}
