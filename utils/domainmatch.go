package utils

import (
	"regexp"
	"strings"
)

// HasDomain reports whether normalized text contains a website domain,
// tolerating the ways PDF text layers mangle one:
//  1. plain substring,
//  2. substring after stripping all whitespace (line-wrap split mid-token),
//  3. a regex over the dot-separated labels allowing whitespace around each
//     dot, with an optional "www" prefix tolerated the same way.
func HasDomain(textNorm, domain string) bool {
	dom := strings.TrimSpace(strings.ToLower(domain))
	if dom == "" {
		return false
	}

	if strings.Contains(textNorm, dom) || strings.Contains(StripWhitespace(textNorm), dom) {
		return true
	}

	labels := strings.Split(strings.TrimPrefix(dom, "www."), ".")
	parts := make([]string, 0, len(labels))
	for _, label := range labels {
		if label != "" {
			parts = append(parts, regexp.QuoteMeta(label))
		}
	}
	if len(parts) == 0 {
		return false
	}

	pat := `(?i)(?:www\s*\.\s*)?` + strings.Join(parts, `\s*\.\s*`)
	re, err := regexp.Compile(pat)
	if err != nil {
		return false
	}
	return re.MatchString(textNorm)
}

// ocrCorrector recognizes known OCR corruptions of one specific domain.
type ocrCorrector func(textNorm string) bool

// ocrCorrectors is deliberately narrow: a corrector is added only for a
// domain with observed, predictable OCR corruption. Do not generalize to
// arbitrary domains; low-quality scans would start matching falsely.
var ocrCorrectors = map[string]ocrCorrector{
	"ziraatkatilim.com.tr": matchZiraatKatilimOCR,
}

// ziraatKatilimOCRRegex tolerates inter-character whitespace plus the a/e and
// l/i confusions tesseract produces on this domain's small receipt font.
var ziraatKatilimOCRRegex = regexp.MustCompile(
	`(?i)(?:www\s*)?` +
		`z\s*i\s*r\s*a\s*(?:a|e)\s*t\s*` +
		`k\s*a\s*t\s*i\s*(?:l\s*)?(?:i|l)?\s*m\s*` +
		`(?:\s*\.?\s*)?` +
		`c\s*o\s*m\s*\.?\s*t\s*r`,
)

var nonAlnumRegex = regexp.MustCompile(`[^a-z0-9]`)

func matchZiraatKatilimOCR(textNorm string) bool {
	if ziraatKatilimOCRRegex.MatchString(textNorm) {
		return true
	}
	core := nonAlnumRegex.ReplaceAllString(textNorm, "")
	return strings.Contains(core, "ziraatkatilimcomtr") ||
		strings.Contains(core, "ziraetkatiimcomtr")
}

// HasDomainOCR is the OCR-tolerant variant of HasDomain. It first runs the
// standard matcher, then consults the per-domain corrector registry.
func HasDomainOCR(textNorm, domain string) bool {
	if textNorm == "" || domain == "" {
		return false
	}

	if HasDomain(textNorm, domain) {
		return true
	}

	if corrector, ok := ocrCorrectors[strings.TrimSpace(strings.ToLower(domain))]; ok {
		return corrector(textNorm)
	}
	return false
}
