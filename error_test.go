package askdocs_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ryderstorm/askdocs"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("returns code for application error", func(t *testing.T) {
		t.Parallel()

		err := askdocs.Errorf(askdocs.EINVALID, "bad input")

		assert.Equal(t, askdocs.EINVALID, askdocs.ErrorCode(err))
	})

	t.Run("returns code for wrapped application error", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("context: %w", askdocs.Errorf(askdocs.ENOTFOUND, "missing"))

		assert.Equal(t, askdocs.ENOTFOUND, askdocs.ErrorCode(err))
	})

	t.Run("returns EINTERNAL for plain error", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, askdocs.EINTERNAL, askdocs.ErrorCode(errors.New("boom")))
	})

	t.Run("returns empty string for nil", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", askdocs.ErrorCode(nil))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("returns message for application error", func(t *testing.T) {
		t.Parallel()

		err := askdocs.Errorf(askdocs.EINVALID, "query must not be empty")

		assert.Equal(t, "query must not be empty", askdocs.ErrorMessage(err))
	})

	t.Run("masks plain errors", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Internal error.", askdocs.ErrorMessage(errors.New("secret detail")))
	})

	t.Run("returns empty string for nil", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", askdocs.ErrorMessage(nil))
	})
}

func TestError_Error(t *testing.T) {
	t.Parallel()

	err := askdocs.Errorf(askdocs.EINTERNAL, "it broke")

	assert.Equal(t, "askdocs error: code=internal message=it broke", err.Error())
}
