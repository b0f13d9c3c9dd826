package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ByPro8/PDF-SORTER/dto"
)

// bankTable is the detection priority list: the first entry whose domain
// appears in a document's text wins. Keep the order deliberate when adding
// banks; it is the only tie-break between overlapping evidence.
var bankTable = []dto.BankDomainEntry{
	{Key: "PTTBANK", Bank: "PttBank", Domains: []string{"pttbank.ptt.gov.tr"}},
	{Key: "HALKBANK", Bank: "Halkbank", Domains: []string{"halkbank.com.tr"}},
	{Key: "TOMBANK", Bank: "TOM Bank", Domains: []string{"tombank.com.tr"}},
	{Key: "ISBANK", Bank: "Isbank", Domains: []string{"isbank.com.tr"}},
	{Key: "TURKIYE_FINANS", Bank: "TurkiyeFinans", Domains: []string{"turkiyefinans.com.tr"}},
	{Key: "ING", Bank: "ING", Domains: []string{"ing.com.tr"}},
	{Key: "TEB", Bank: "TEB", Domains: []string{"teb.com.tr"}},
	{Key: "VAKIF_KATILIM", Bank: "VakifKatilim", Domains: []string{"vakifkatilim.com.tr"}},
	{Key: "VAKIFBANK", Bank: "VakifBank", Domains: []string{"vakifbank.com.tr"}},
	{Key: "QNB", Bank: "QNB", Domains: []string{"qnb.com.tr"}},
	{Key: "ZIRAAT", Bank: "Ziraat", Domains: []string{"ziraatbank.com.tr"}},
	{Key: "KUVEYT_TURK", Bank: "KuveytTurk", Domains: []string{"kuveytturk.com.tr"}},
	{Key: "GARANTI", Bank: "Garanti", Domains: []string{"garantibbva.com.tr"}},
	{Key: "ENPARA", Bank: "Enpara", Domains: []string{"enpara.com"}},
	{Key: "AKBANK", Bank: "Akbank", Domains: []string{"akbank.com"}},
	{Key: "YAPIKREDI", Bank: "YapiKredi", Domains: []string{"yapikredi.com.tr"}},
	{Key: "DENIZBANK", Bank: "DenizBank", Domains: []string{"denizbank.com.tr", "denizbank.com"}},
	{Key: "FIBABANKA", Bank: "Fibabanka", Domains: []string{"fibabanka.com.tr"}},
	{Key: "UPT", Bank: "UPT", Domains: []string{"upt.com.tr", "uption.com.tr"}},
	{Key: "ZIRAATKATILIM", Bank: "ZiraatKatilim", Domains: []string{"ziraatkatilim.com.tr"}},
	{Key: "ALBARAKA", Bank: "Albaraka", Domains: []string{"albaraka.com.tr"}},
}

// ocrAllowlist restricts which banks may ever be confirmed from OCR output.
// OCR is the noisiest evidence source; only banks with corroborating
// fuzzy-match support belong here.
var ocrAllowlist = []string{"DENIZBANK", "ZIRAATKATILIM", "ALBARAKA"}

// nameMarkers are the per-bank legal-name/brand fallbacks, tried only when no
// domain matched anywhere in the text layer. Some real DenizBank receipts
// omit any website string in their first two pages.
var nameMarkers = map[string][]string{
	"DENIZBANK": {
		"denizbank a.s",
		"denizbank a.ş",
		"denizbank",
		"mobildeniz",
	},
}

var fastWordRegex = regexp.MustCompile(`\bfast\b`)

func variantDeniz(textNorm string) (string, string) {
	if fastWordRegex.MatchString(textNorm) {
		return "DENIZBANK", "FAST"
	}
	return "DENIZBANK", dto.VariantUnknown
}

func variantAlbaraka(textNorm string) (string, string) {
	if fastWordRegex.MatchString(textNorm) || strings.Contains(textNorm, "fast sorgu numarasi") {
		return "ALBARAKA", "FAST"
	}
	return "ALBARAKA", dto.VariantUnknown
}

// DefaultRules returns the shipped detection configuration.
func DefaultRules() dto.DetectionRules {
	return dto.DetectionRules{
		Banks:        bankTable,
		OCRAllowlist: ocrAllowlist,
		NameMarkers:  nameMarkers,
		VariantRules: map[string]dto.VariantRule{
			"DENIZBANK": variantDeniz,
			"ALBARAKA":  variantAlbaraka,
		},
	}
}

// ValidateRules rejects configurations that would make first-match-wins
// detection ambiguous: duplicate bank keys, the same domain registered under
// two banks, or allowlist/marker/rule keys missing from the bank table.
func ValidateRules(rules dto.DetectionRules) error {
	keys := make(map[string]bool, len(rules.Banks))
	domains := make(map[string]string)

	for _, entry := range rules.Banks {
		if entry.Key == "" || entry.Bank == "" {
			return fmt.Errorf("bank entry with empty key or name: %+v", entry)
		}
		if keys[entry.Key] {
			return fmt.Errorf("duplicate bank key %q", entry.Key)
		}
		keys[entry.Key] = true

		for _, dom := range entry.Domains {
			dom = strings.ToLower(strings.TrimSpace(dom))
			if dom == "" {
				return fmt.Errorf("bank %q registers an empty domain", entry.Key)
			}
			if owner, ok := domains[dom]; ok {
				return fmt.Errorf("domain %q registered under both %q and %q", dom, owner, entry.Key)
			}
			domains[dom] = entry.Key
		}
	}

	for _, key := range rules.OCRAllowlist {
		if !keys[key] {
			return fmt.Errorf("OCR allowlist key %q not in bank table", key)
		}
	}
	for key := range rules.NameMarkers {
		if !keys[key] {
			return fmt.Errorf("name-marker key %q not in bank table", key)
		}
	}
	for key := range rules.VariantRules {
		if !keys[key] {
			return fmt.Errorf("variant-rule key %q not in bank table", key)
		}
	}
	return nil
}
