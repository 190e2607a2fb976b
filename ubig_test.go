package gobig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bigFromDecimal(t *testing.T, s string) *UBig {
	t.Helper()
	v, err := ParseUBig(s)
	require.NoError(t, err)
	return v
}

func TestNewUBigCanonicalizesToInlineForm(t *testing.T) {
	u := NewUBig(42)
	assert.True(t, u.isSmall())
	assert.Equal(t, uint64(42), mustUint64(t, u))
}

func TestFromWordsCollapsesToInlineForm(t *testing.T) {
	u := fromWords([]Word{7, 0, 0})
	assert.True(t, u.isSmall())
	assert.Equal(t, uint64(7), mustUint64(t, u))

	zero := fromWords(nil)
	assert.True(t, zero.IsZero())
}

func TestCmpAndEqual(t *testing.T) {
	a := bigFromDecimal(t, "123456789012345678901234567890")
	b := bigFromDecimal(t, "123456789012345678901234567891")
	assert.Equal(t, -1, a.Cmp(b))
	assert.Equal(t, 1, b.Cmp(a))
	assert.Equal(t, 0, a.Cmp(a))
	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(b))
}

func TestBitLen(t *testing.T) {
	assert.Equal(t, 0, NewUBig(0).BitLen())
	assert.Equal(t, 1, NewUBig(1).BitLen())
	assert.Equal(t, 8, NewUBig(255).BitLen())
	assert.Equal(t, 9, NewUBig(256).BitLen())
	big := NewUBig(1).Lsh(200)
	assert.Equal(t, 201, big.BitLen())
}

func TestAddSubRoundTrip(t *testing.T) {
	a := bigFromDecimal(t, "999999999999999999999999999999999999")
	b := bigFromDecimal(t, "1")
	sum := a.Add(b)
	assert.Equal(t, "1000000000000000000000000000000000000", sum.InRadix(10).String())
	back := sum.Sub(b)
	assert.True(t, back.Equal(a))
}

func TestSubPanicsOnNegativeResult(t *testing.T) {
	assert.Panics(t, func() {
		NewUBig(1).Sub(NewUBig(2))
	})
}

func mustUint64(t *testing.T, u *UBig) uint64 {
	t.Helper()
	v, err := u.Uint64()
	require.NoError(t, err)
	return v
}
