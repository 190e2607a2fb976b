package gobig

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDecimalVerbs(t *testing.T) {
	u := NewUBig(255)
	assert.Equal(t, "255", fmt.Sprintf("%v", u))
	assert.Equal(t, "255", fmt.Sprintf("%d", u))
}

func TestFormatRadixVerbs(t *testing.T) {
	u := NewUBig(255)
	assert.Equal(t, "11111111", fmt.Sprintf("%b", u))
	assert.Equal(t, "377", fmt.Sprintf("%o", u))
	assert.Equal(t, "ff", fmt.Sprintf("%x", u))
	assert.Equal(t, "FF", fmt.Sprintf("%X", u))
}

func TestFormatAlternatePrefix(t *testing.T) {
	u := NewUBig(255)
	assert.Equal(t, "0xff", fmt.Sprintf("%#x", u))
	assert.Equal(t, "0b11111111", fmt.Sprintf("%#b", u))
	assert.Equal(t, "0o377", fmt.Sprintf("%#o", u))
}

func TestFormatWidthAndAlignment(t *testing.T) {
	u := NewUBig(7)
	assert.Equal(t, "    7", fmt.Sprintf("%5d", u))
	assert.Equal(t, "7    ", fmt.Sprintf("%-5d", u))
	assert.Equal(t, "00007", fmt.Sprintf("%05d", u))
}

func TestFormatIBigSign(t *testing.T) {
	neg := NewIBig(-42)
	pos := NewIBig(42)
	assert.Equal(t, "-42", fmt.Sprintf("%d", neg))
	assert.Equal(t, "42", fmt.Sprintf("%d", pos))
	assert.Equal(t, "+42", fmt.Sprintf("%+d", pos))
	assert.Equal(t, "  -42", fmt.Sprintf("%5d", neg))
	assert.Equal(t, "-0042", fmt.Sprintf("%05d", neg))
}

func TestInRadixUpperCase(t *testing.T) {
	u := NewUBig(255)
	assert.Equal(t, "ff", u.InRadix(16).String())
	assert.Equal(t, "FF", u.InRadix(16).WithUpperCase().String())
}

func TestFormatZero(t *testing.T) {
	assert.Equal(t, "0", fmt.Sprintf("%d", NewUBig(0)))
	assert.Equal(t, "0", NewUBig(0).InRadix(2).String())
}

func TestFormatLargeValueNonPow2Radix(t *testing.T) {
	u := bigFromDecimal(t, "123456789012345678901234567890123456789")
	assert.Equal(t, "123456789012345678901234567890123456789", fmt.Sprintf("%d", u))
}
