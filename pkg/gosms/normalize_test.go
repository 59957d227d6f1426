package gosms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanNumberStripsNonDigits(t *testing.T) {
	assert.Equal(t, "8801712345678", CleanNumber("+880 1712-345678"))
	assert.Equal(t, "", CleanNumber("abc"))
}

func TestNormalizeLocalNumber(t *testing.T) {
	assert.Equal(t, "8801712345678", NormalizeNumber("01712345678"))
}

func TestNormalizeKeepsInternationalForm(t *testing.T) {
	assert.Equal(t, "8801712345678", NormalizeNumber("8801712345678"))
}

func TestNormalizePrefixesBareNumber(t *testing.T) {
	assert.Equal(t, "881712345678", NormalizeNumber("1712345678"))
}

func TestNormalizeIsIdempotent(t *testing.T) {
	for _, raw := range []string{"01712345678", "8801712345678", "+8801712345678", "1712345678"} {
		once := NormalizeNumber(raw)
		assert.Equal(t, once, NormalizeNumber(once), "re-normalizing %q must be a no-op", raw)
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	assert.Equal(t, "", NormalizeNumber(""))
	assert.Equal(t, "", NormalizeNumber("---"))
}

func TestBulkNormalizeRejectsShortNumbers(t *testing.T) {
	_, ok := NormalizeBulkNumber("12345")
	assert.False(t, ok)

	_, ok = NormalizeBulkNumber("")
	assert.False(t, ok)
}

func TestBulkNormalizeAcceptsValidNumbers(t *testing.T) {
	n, ok := NormalizeBulkNumber("01712345678")
	assert.True(t, ok)
	assert.Equal(t, "8801712345678", n)
}

// The single-send path deliberately skips the 10-digit floor the bulk path
// enforces; this pins the asymmetry so nobody "fixes" it by accident.
func TestLenientPathHasNoMinimumLength(t *testing.T) {
	assert.Equal(t, "8812345", NormalizeNumber("12345"))

	_, ok := NormalizeBulkNumber("12345")
	assert.False(t, ok)
}
