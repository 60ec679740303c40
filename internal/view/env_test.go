package view

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"content_studio/internal/backend"
)

func TestDescribe(t *testing.T) {
	withDetail := fmt.Errorf("update post: %w", &backend.APIError{StatusCode: 400, Detail: "Content too long"})
	assert.Equal(t, "Content too long", describe(withDetail, "fallback"))

	withoutDetail := &backend.APIError{StatusCode: 500}
	assert.Equal(t, "fallback", describe(withoutDetail, "fallback"))

	assert.Equal(t, "fallback", describe(errors.New("dial tcp: refused"), "fallback"))
}

func TestToast_MillisLeft(t *testing.T) {
	env := newTestEnv()
	toast := env.toast("保存しました！")

	assert.Equal(t, fixedNow.Add(3*time.Second), toast.ExpiresAt)
	assert.Equal(t, int64(3000), toast.MillisLeft(fixedNow))
	assert.Equal(t, int64(1000), toast.MillisLeft(fixedNow.Add(2*time.Second)))
	assert.Equal(t, int64(0), toast.MillisLeft(fixedNow.Add(time.Minute)))
}
