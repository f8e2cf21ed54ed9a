package icons

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	r := NewRegistry()

	t.Run("empty token resolves to absent", func(t *testing.T) {
		f, err := r.Resolve(SlotTop, "")
		require.NoError(t, err)
		assert.True(t, f.Empty())
	})

	t.Run("registered token resolves to fragment", func(t *testing.T) {
		f, err := r.Resolve(SlotSide, "bolt")
		require.NoError(t, err)
		assert.False(t, f.Empty())
	})

	t.Run("unknown token is an UnknownTokenError", func(t *testing.T) {
		_, err := r.Resolve(SlotTop, "bogus")
		require.Error(t, err)

		var unknownErr *UnknownTokenError
		require.True(t, errors.As(err, &unknownErr))
		assert.Equal(t, SlotTop, unknownErr.Slot)
		assert.Equal(t, "bogus", unknownErr.Token)
		assert.Contains(t, err.Error(), "bogus")
	})

	t.Run("lookup is case-sensitive", func(t *testing.T) {
		_, err := r.Resolve(SlotTop, "HEX")
		var unknownErr *UnknownTokenError
		assert.True(t, errors.As(err, &unknownErr))
	})
}
