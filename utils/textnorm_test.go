package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeFoldsTurkishLetters(t *testing.T) {
	assert.Equal(t, "isbank", Normalize("İSBANK"))
	assert.Equal(t, "sirket is", Normalize("ŞİRKET İŞ"))
	assert.Equal(t, "odeme dekontu", Normalize("ÖDEME DEKONTU"))
	assert.Equal(t, "gucluyuz cunku", Normalize("güçlüyüz çünkü"))
	assert.Equal(t, "kisitli", Normalize("kısıtlı"))
}

func TestNormalizeStripsCombiningDotAbove(t *testing.T) {
	// Some extractors emit dotted-i as "i" + U+0307.
	decomposed := "i\u0307sbank"
	assert.Equal(t, "isbank", Normalize(decomposed))
}

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", Normalize("  a\t\tb\n\nc  "))
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize(" \n\t "))
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"İSTANBUL  ŞUBESİ\nZİRAAT BANKASI",
		"denizbank a.ş",
		"  www . isbank . com . tr  ",
		"FAST Sorgu Numarası: 123",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "not a fixed point for %q", in)
	}
}

func TestStripWhitespace(t *testing.T) {
	assert.Equal(t, "isbank.com.tr", StripWhitespace("isbank .com. tr"))
	assert.Equal(t, "", StripWhitespace(" \n "))
}
