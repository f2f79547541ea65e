package order

import (
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/require"
)

func TestNewReference_UniqueWithinOneTick(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		ref := newReference()
		require.False(t, seen[ref], "duplicate reference %s", ref)
		seen[ref] = true

		_, err := ulid.Parse(ref)
		require.NoError(t, err)
	}
}
