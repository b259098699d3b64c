package errdefer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClose(t *testing.T) {
	t.Parallel()

	t.Run("no errors", func(t *testing.T) {
		t.Parallel()

		var err error
		Close(&err, stubCloser{})
		assert.NoError(t, err)
	})

	t.Run("close fails", func(t *testing.T) {
		t.Parallel()

		give := errors.New("great sadness")

		var err error
		Close(&err, stubCloser{err: give})
		assert.ErrorIs(t, err, give)
	})

	t.Run("both fail", func(t *testing.T) {
		t.Parallel()

		errRun := errors.New("run failed")
		errClose := errors.New("close failed")

		err := errRun
		Close(&err, stubCloser{err: errClose})
		assert.ErrorIs(t, err, errRun)
		assert.ErrorIs(t, err, errClose)
	})
}

type stubCloser struct {
	err error
}

func (s stubCloser) Close() error {
	return s.err
}
