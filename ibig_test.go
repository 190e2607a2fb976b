package gobig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIBigNoNegativeZero(t *testing.T) {
	zero := NewIBig(0).Neg()
	assert.Equal(t, Positive, zero.Sign())
	assert.True(t, zero.IsZero())

	diff := NewIBig(5).Sub(NewIBig(5))
	assert.Equal(t, Positive, diff.Sign())
}

func TestIBigAddSignRules(t *testing.T) {
	assert.Equal(t, int64(8), mustInt64(t, NewIBig(3).Add(NewIBig(5))))
	assert.Equal(t, int64(-8), mustInt64(t, NewIBig(-3).Add(NewIBig(-5))))
	assert.Equal(t, int64(2), mustInt64(t, NewIBig(5).Add(NewIBig(-3))))
	assert.Equal(t, int64(-2), mustInt64(t, NewIBig(3).Add(NewIBig(-5))))
}

func TestIBigMulSign(t *testing.T) {
	assert.Equal(t, int64(-15), mustInt64(t, NewIBig(3).Mul(NewIBig(-5))))
	assert.Equal(t, int64(15), mustInt64(t, NewIBig(-3).Mul(NewIBig(-5))))
}

func TestIBigQuoRemSign(t *testing.T) {
	// Truncated toward zero; remainder takes the dividend's sign.
	q, r := NewIBig(-7).QuoRem(NewIBig(2))
	assert.Equal(t, int64(-3), mustInt64(t, q))
	assert.Equal(t, int64(-1), mustInt64(t, r))

	q, r = NewIBig(7).QuoRem(NewIBig(-2))
	assert.Equal(t, int64(-3), mustInt64(t, q))
	assert.Equal(t, int64(1), mustInt64(t, r))
}

func TestIBigCmp(t *testing.T) {
	assert.Equal(t, -1, NewIBig(-1).Cmp(NewIBig(1)))
	assert.Equal(t, 1, NewIBig(1).Cmp(NewIBig(-1)))
	assert.Equal(t, 0, NewIBig(0).Cmp(NewIBig(0).Neg()))
	assert.Equal(t, -1, NewIBig(-5).Cmp(NewIBig(-3)))
}

func TestIBigAbs(t *testing.T) {
	x := NewIBig(-42)
	assert.Equal(t, uint64(42), mustUint64(t, x.Abs()))
}
