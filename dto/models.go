package dto

// DetectionMethod identifies which evidence tier resolved a document.
type DetectionMethod string

const (
	MethodTextDomain DetectionMethod = "text-domain"
	MethodTextName   DetectionMethod = "text-name"
	MethodOCRDomain  DetectionMethod = "ocr-domain"
	MethodNone       DetectionMethod = "none"
)

const (
	UnknownKey  = "UNKNOWN"
	UnknownBank = "Unknown"

	// VariantUnknown means the bank has a variant rule but no marker matched.
	// Distinct from a nil Variant, which means the bank has no rule at all.
	VariantUnknown = "UNKNOWN"
)

// BankDomainEntry registers one bank and the website domains that identify it.
type BankDomainEntry struct {
	Key     string
	Bank    string
	Domains []string
}

// VariantRule inspects normalized text-layer text and returns a bank key and
// a variant label (VariantUnknown when no marker matched). The returned key
// is normally the rule's own bank key, but a rule may remap it.
type VariantRule func(textNorm string) (key string, variant string)

// DetectionRules is the full static configuration a detector runs against.
// The Banks slice order is the match priority: the first entry whose domain
// appears in the text wins.
type DetectionRules struct {
	Banks        []BankDomainEntry
	OCRAllowlist []string
	NameMarkers  map[string][]string
	VariantRules map[string]VariantRule
}

// OCRBanks returns the allowlisted subset of Banks, in priority order.
func (r DetectionRules) OCRBanks() []BankDomainEntry {
	allowed := make(map[string]bool, len(r.OCRAllowlist))
	for _, key := range r.OCRAllowlist {
		allowed[key] = true
	}

	var banks []BankDomainEntry
	for _, entry := range r.Banks {
		if allowed[entry.Key] {
			banks = append(banks, entry)
		}
	}
	return banks
}
