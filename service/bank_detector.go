package service

import (
	"image"
	"log"
	"os"
	"strings"

	"github.com/ByPro8/PDF-SORTER/dto"
	"github.com/ByPro8/PDF-SORTER/utils"
)

// OCRClient recognizes text in a rasterized page image.
type OCRClient interface {
	OCRImage(img image.Image) (string, error)
}

// BankDetector resolves a receipt's issuing bank through three ordered
// attempts, cheapest and most reliable first:
//
//  1. website domain in the text layer of the first pages,
//  2. per-bank name markers in the same text (only if no domain matched),
//  3. OCR of the first page, matched against the allowlisted banks only.
//
// All failures along the way collapse to empty evidence; exhaustion yields
// the UNKNOWN sentinel, never an error.
type BankDetector struct {
	pdfProcessor PDFProcessor
	ocrClient    OCRClient
	rules        dto.DetectionRules
	maxTextPages int
}

func NewBankDetector(
	pdfProcessor PDFProcessor,
	ocrClient OCRClient,
	rules dto.DetectionRules,
	maxTextPages int,
) *BankDetector {
	if maxTextPages <= 0 {
		maxTextPages = 2
	}
	return &BankDetector{
		pdfProcessor: pdfProcessor,
		ocrClient:    ocrClient,
		rules:        rules,
		maxTextPages: maxTextPages,
	}
}

// DetectFile classifies the PDF at path. An unreadable path is treated the
// same as an unreadable document: empty evidence, UNKNOWN result.
func (d *BankDetector) DetectFile(path string) dto.DetectionResult {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Could not read %s: %v", path, err)
		return dto.UnknownResult()
	}
	return d.Detect(data)
}

// Detect classifies a PDF given its raw bytes.
func (d *BankDetector) Detect(pdfData []byte) dto.DetectionResult {
	textNorm := utils.Normalize(d.pdfProcessor.ExtractTextLayer(pdfData, d.maxTextPages))

	result, ok := d.detectByTextDomains(textNorm)
	if !ok {
		result, ok = d.detectByNameMarkers(textNorm)
	}
	if !ok {
		result, ok = d.detectByOCRDomains(pdfData)
	}
	if !ok {
		return dto.UnknownResult()
	}

	// Variant rules read the text-layer text even when the bank itself was
	// confirmed via OCR.
	result.Key, result.Variant = d.applyVariant(result.Key, textNorm)
	return result
}

func (d *BankDetector) detectByTextDomains(textNorm string) (dto.DetectionResult, bool) {
	for _, entry := range d.rules.Banks {
		for _, dom := range entry.Domains {
			if utils.HasDomain(textNorm, dom) {
				return dto.DetectionResult{
					Key:    entry.Key,
					Bank:   entry.Bank,
					Method: dto.MethodTextDomain,
				}, true
			}
		}
	}
	return dto.DetectionResult{}, false
}

func (d *BankDetector) detectByNameMarkers(textNorm string) (dto.DetectionResult, bool) {
	if textNorm == "" {
		return dto.DetectionResult{}, false
	}
	for _, entry := range d.rules.Banks {
		for _, marker := range d.rules.NameMarkers[entry.Key] {
			if strings.Contains(textNorm, marker) {
				return dto.DetectionResult{
					Key:    entry.Key,
					Bank:   entry.Bank,
					Method: dto.MethodTextName,
				}, true
			}
		}
	}
	return dto.DetectionResult{}, false
}

func (d *BankDetector) detectByOCRDomains(pdfData []byte) (dto.DetectionResult, bool) {
	ocrNorm := utils.Normalize(d.ocrFirstPage(pdfData))
	if ocrNorm == "" {
		return dto.DetectionResult{}, false
	}

	for _, entry := range d.rules.OCRBanks() {
		for _, dom := range entry.Domains {
			if utils.HasDomainOCR(ocrNorm, dom) {
				return dto.DetectionResult{
					Key:    entry.Key,
					Bank:   entry.Bank,
					Method: dto.MethodOCRDomain,
				}, true
			}
		}
	}
	return dto.DetectionResult{}, false
}

// ocrFirstPage runs the slow path: page-1 images through tesseract. Every
// failure mode, including a missing tesseract runtime, degrades to "".
func (d *BankDetector) ocrFirstPage(pdfData []byte) string {
	if d.ocrClient == nil {
		return ""
	}

	images, err := d.pdfProcessor.ExtractFirstPageImages(pdfData)
	if err != nil || len(images) == 0 {
		return ""
	}

	var combined strings.Builder
	for _, img := range images {
		pageText, err := d.ocrClient.OCRImage(img)
		if err != nil {
			log.Printf("OCR failed for a page image: %v", err)
			continue
		}
		combined.WriteString(pageText)
		combined.WriteString("\n")
	}
	return combined.String()
}

func (d *BankDetector) applyVariant(bankKey, textNorm string) (string, *string) {
	rule, ok := d.rules.VariantRules[bankKey]
	if !ok {
		return bankKey, nil
	}
	proposedKey, variant := rule(textNorm)
	return proposedKey, &variant
}
