package dto

// DetectionResult is the classification produced for one document.
// Variant is nil for banks without a variant rule; VariantUnknown when the
// bank has a rule but no marker matched.
type DetectionResult struct {
	Key     string          `json:"key"`
	Bank    string          `json:"bank"`
	Variant *string         `json:"variant"`
	Method  DetectionMethod `json:"method"`
}

// UnknownResult is the terminal value when no evidence tier matched.
// Not an error: downstream consumers file these under an Unknown bucket.
func UnknownResult() DetectionResult {
	return DetectionResult{
		Key:    UnknownKey,
		Bank:   UnknownBank,
		Method: MethodNone,
	}
}

// ClassifyResponse wraps a single classified upload.
type ClassifyResponse struct {
	Filename string          `json:"filename"`
	Result   DetectionResult `json:"result"`
}

// PipelineResponse reports per-step counts for one pipeline run.
type PipelineResponse struct {
	Moved             int    `json:"moved"`
	DuplicatesRemoved int    `json:"duplicates_removed"`
	Sorted            int    `json:"sorted"`
	CompletedAt       string `json:"completed_at"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
