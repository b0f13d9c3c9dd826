package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasDomainExact(t *testing.T) {
	text := Normalize("Bu dekont isbank.com.tr adresinden dogrulanabilir")
	assert.True(t, HasDomain(text, "isbank.com.tr"))
	assert.False(t, HasDomain(text, "akbank.com"))
}

func TestHasDomainSurvivesLineWrapSplit(t *testing.T) {
	// The text layer split the token across a line wrap.
	assert.True(t, HasDomain(Normalize("... isbank .com. tr ..."), "isbank.com.tr"))
	assert.True(t, HasDomain(Normalize("ziraatbank.com. tr"), "ziraatbank.com.tr"))
	assert.True(t, HasDomain(Normalize("denizba\nnk.com.tr"), "denizbank.com.tr"))
}

func TestHasDomainToleratesWWWPrefix(t *testing.T) {
	assert.True(t, HasDomain(Normalize("www . teb . com . tr"), "teb.com.tr"))
	assert.True(t, HasDomain(Normalize("www.teb.com.tr"), "www.teb.com.tr"))
}

func TestHasDomainEmptyInputs(t *testing.T) {
	assert.False(t, HasDomain("", "isbank.com.tr"))
	assert.False(t, HasDomain("isbank.com.tr", ""))
	assert.False(t, HasDomain("", ""))
}

func TestHasDomainOCRDelegatesToStandardMatcher(t *testing.T) {
	assert.True(t, HasDomainOCR("dekont denizbank.com.tr", "denizbank.com.tr"))
	assert.False(t, HasDomainOCR("dekont", "denizbank.com.tr"))
}

func TestHasDomainOCRZiraatKatilimCorruptions(t *testing.T) {
	// Inter-character whitespace plus a->e confusion.
	assert.True(t, HasDomainOCR("z i r a e t k a t i l i m c o m t r", "ziraatkatilim.com.tr"))
	// Known corrupted literal renderings, any punctuation noise stripped.
	assert.True(t, HasDomainOCR("xx ziraetkatiimcomtr yy", "ziraatkatilim.com.tr"))
	assert.True(t, HasDomainOCR("ziraatkatilim,com,tr", "ziraatkatilim.com.tr"))
}

func TestHasDomainOCRNoCorrectorForOtherDomains(t *testing.T) {
	// The fuzzy escape hatch is per-domain; corrupted renderings of a
	// domain without a registered corrector must not match.
	assert.False(t, HasDomainOCR("a k b a n k c o m", "akbank.com"))
	assert.False(t, HasDomainOCR("denizbenk.com.tr", "denizbank.com.tr"))
}
