package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithContext(t *testing.T) {
	t.Run("username wins over user id", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), UsernameKey, "admin.rw01") //nolint:staticcheck
		ctx = context.WithValue(ctx, UserIDKey, "8f1c")                           //nolint:staticcheck

		l := WithContext(ctx)
		assert.Equal(t, "admin.rw01", l.Data["user"])
	})

	t.Run("falls back to user id", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), UserIDKey, "8f1c") //nolint:staticcheck

		l := WithContext(ctx)
		assert.Equal(t, "8f1c", l.Data["user"])
	})

	t.Run("request id is attached", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), RequestIDKey, "req-1") //nolint:staticcheck

		l := WithContext(ctx)
		assert.Equal(t, "unknown", l.Data["user"])
		assert.Equal(t, "req-1", l.Data["request_id"])
	})

	t.Run("nil context", func(t *testing.T) {
		//nolint:staticcheck
		l := WithContext(nil)
		assert.Equal(t, "unknown", l.Data["user"])
	})
}

func TestWithFieldsKeepsExisting(t *testing.T) {
	l := New().WithField("month", "2025-01").WithFields(map[string]interface{}{"force": true})

	assert.Equal(t, "2025-01", l.Data["month"])
	assert.Equal(t, true, l.Data["force"])
}
