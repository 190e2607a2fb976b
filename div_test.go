package gobig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoRemSmall(t *testing.T) {
	q, r := NewUBig(17).QuoRem(NewUBig(5))
	assert.Equal(t, uint64(3), mustUint64(t, q))
	assert.Equal(t, uint64(2), mustUint64(t, r))
}

func TestQuoRemDivisionByZeroPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewUBig(1).QuoRem(NewUBig(0))
	})
}

func TestQuoRemLargeBySingleWord(t *testing.T) {
	a := bigFromDecimal(t, "123456789012345678901234567890123456789")
	d := NewUBig(999999937)
	q, r := a.QuoRem(d)
	assert.True(t, q.Mul(d).Add(r).Equal(a))
	assert.True(t, r.Cmp(d) < 0)
}

func TestQuoRemLargeByLarge(t *testing.T) {
	a := bigFromDecimal(t, "899999999999999999999999999999999999999999999999999999999999999999999")
	b := bigFromDecimal(t, "7000000000000000000000000001234567891011")
	q, r := a.QuoRem(b)
	assert.True(t, q.Mul(b).Add(r).Equal(a))
	assert.True(t, r.Cmp(b) < 0)
}

func TestModWord(t *testing.T) {
	a := bigFromDecimal(t, "123456789012345678901234567890")
	assert.Equal(t, uint64(a.ModWord(7)), mustUint64(t, a.Rem(NewUBig(7))))
}

func TestSqrt(t *testing.T) {
	a := NewUBig(0)
	assert.True(t, a.Sqrt().IsZero())

	b := bigFromDecimal(t, "152415787532388367501905199875019052100") // 12345678901234567890^2
	root := b.Sqrt()
	want := bigFromDecimal(t, "12345678901234567890")
	require.True(t, root.Equal(want))

	c := NewUBig(10)
	root = c.Sqrt()
	assert.Equal(t, uint64(3), mustUint64(t, root))
}
