package gobig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckRadixValid(t *testing.T) {
	assert.NotPanics(t, func() { checkRadixValid(2) })
	assert.NotPanics(t, func() { checkRadixValid(36) })
	assert.Panics(t, func() { checkRadixValid(1) })
	assert.Panics(t, func() { checkRadixValid(37) })
}

func TestDigitValueAndChar(t *testing.T) {
	v, ok := digitValue('9', 10)
	assert.True(t, ok)
	assert.Equal(t, uint32(9), v)

	_, ok = digitValue('a', 10)
	assert.False(t, ok)

	v, ok = digitValue('z', 36)
	assert.True(t, ok)
	assert.Equal(t, uint32(35), v)

	assert.Equal(t, byte('z'), digitChar(35, LowerCase))
	assert.Equal(t, byte('Z'), digitChar(35, UpperCase))
}

func TestRadixTablesNeverOverflow(t *testing.T) {
	for radix := minRadix; radix <= maxRadix; radix++ {
		assert.Greater(t, digitsPerWord[radix], 0, "radix %d", radix)
		assert.NotZero(t, radixPowerWord[radix], "radix %d", radix)
	}
}
