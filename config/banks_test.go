package config

import (
	"testing"

	"github.com/ByPro8/PDF-SORTER/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRulesAreValid(t *testing.T) {
	rules := DefaultRules()
	require.NoError(t, ValidateRules(rules))
	assert.Len(t, rules.Banks, 21)
}

func TestValidateRulesRejectsDomainCollision(t *testing.T) {
	rules := dto.DetectionRules{
		Banks: []dto.BankDomainEntry{
			{Key: "A", Bank: "Bank A", Domains: []string{"shared.com.tr"}},
			{Key: "B", Bank: "Bank B", Domains: []string{"shared.com.tr"}},
		},
	}
	err := ValidateRules(rules)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shared.com.tr")
}

func TestValidateRulesRejectsDuplicateKey(t *testing.T) {
	rules := dto.DetectionRules{
		Banks: []dto.BankDomainEntry{
			{Key: "A", Bank: "Bank A", Domains: []string{"a.com.tr"}},
			{Key: "A", Bank: "Bank A again", Domains: []string{"a2.com.tr"}},
		},
	}
	assert.Error(t, ValidateRules(rules))
}

func TestValidateRulesRejectsUnknownAllowlistKey(t *testing.T) {
	rules := dto.DetectionRules{
		Banks: []dto.BankDomainEntry{
			{Key: "A", Bank: "Bank A", Domains: []string{"a.com.tr"}},
		},
		OCRAllowlist: []string{"MISSING"},
	}
	assert.Error(t, ValidateRules(rules))
}

func TestOCRBanksKeepPriorityOrder(t *testing.T) {
	banks := DefaultRules().OCRBanks()
	require.Len(t, banks, 3)
	assert.Equal(t, "DENIZBANK", banks[0].Key)
	assert.Equal(t, "ZIRAATKATILIM", banks[1].Key)
	assert.Equal(t, "ALBARAKA", banks[2].Key)
}

func TestVariantRules(t *testing.T) {
	rules := DefaultRules()

	key, variant := rules.VariantRules["DENIZBANK"]("odeme fast ile gonderildi")
	assert.Equal(t, "DENIZBANK", key)
	assert.Equal(t, "FAST", variant)

	key, variant = rules.VariantRules["DENIZBANK"]("havale dekontu")
	assert.Equal(t, "DENIZBANK", key)
	assert.Equal(t, dto.VariantUnknown, variant)

	// "fastfood" must not trigger the whole-word FAST marker.
	_, variant = rules.VariantRules["DENIZBANK"]("fastfood odemesi")
	assert.Equal(t, dto.VariantUnknown, variant)

	key, variant = rules.VariantRules["ALBARAKA"]("fast sorgu numarasi: 42")
	assert.Equal(t, "ALBARAKA", key)
	assert.Equal(t, "FAST", variant)
}
