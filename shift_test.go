package gobig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLshRsh(t *testing.T) {
	a := bigFromDecimal(t, "123456789012345678901234567890")
	shifted := a.Lsh(77)
	assert.True(t, shifted.Rsh(77).Equal(a))
}

func TestLshIsMultiplyByPowerOfTwo(t *testing.T) {
	a := NewUBig(1)
	twoToTen := a.Lsh(10)
	assert.Equal(t, uint64(1024), mustUint64(t, twoToTen))
}

func TestRshBeyondBitLengthYieldsZero(t *testing.T) {
	a := NewUBig(5)
	assert.True(t, a.Rsh(1000).IsZero())
}

func TestBit(t *testing.T) {
	a := NewUBig(0b1010)
	assert.Equal(t, uint(0), a.Bit(0))
	assert.Equal(t, uint(1), a.Bit(1))
	assert.Equal(t, uint(0), a.Bit(2))
	assert.Equal(t, uint(1), a.Bit(3))
	assert.Equal(t, uint(0), a.Bit(100))
}

func TestTrailingZeroBits(t *testing.T) {
	assert.Equal(t, uint(0), NewUBig(0).TrailingZeroBits())
	assert.Equal(t, uint(0), NewUBig(1).TrailingZeroBits())
	assert.Equal(t, uint(4), NewUBig(16).TrailingZeroBits())
	big := NewUBig(1).Lsh(130)
	assert.Equal(t, uint(130), big.TrailingZeroBits())
}

func TestIBigRshIsMagnitudeShiftNotArithmetic(t *testing.T) {
	neg3 := NewIBig(-3)
	// A sign-extending arithmetic shift would give -2; this is a magnitude
	// shift, so it gives -1 (floor(3/2) = 1, sign kept).
	assert.Equal(t, int64(-1), mustInt64(t, neg3.Rsh(1)))
}

func mustInt64(t *testing.T, x *IBig) int64 {
	t.Helper()
	v, err := x.Int64()
	if err != nil {
		t.Fatalf("Int64: %v", err)
	}
	return v
}
