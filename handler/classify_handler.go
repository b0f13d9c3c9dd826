package handler

import (
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/ByPro8/PDF-SORTER/dto"
	"github.com/ByPro8/PDF-SORTER/service"

	"github.com/gin-gonic/gin"
)

type ClassifyHandler struct {
	detector *service.BankDetector
}

func NewClassifyHandler(detector *service.BankDetector) *ClassifyHandler {
	return &ClassifyHandler{
		detector: detector,
	}
}

// ClassifyReceipt handles the POST /receipts/classify endpoint
func (h *ClassifyHandler) ClassifyReceipt(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "No file provided", err)
		return
	}

	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		h.sendError(c, http.StatusBadRequest, "Only PDF files are accepted", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Failed to open uploaded file", err)
		return
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to read uploaded file", err)
		return
	}

	log.Printf("Classifying %s (%d bytes)", fileHeader.Filename, len(fileBytes))

	// Detect never fails; unreadable documents come back as UNKNOWN.
	result := h.detector.Detect(fileBytes)

	log.Printf("Classified %s: BANK=%s KEY=%s METHOD=%s",
		fileHeader.Filename, result.Bank, result.Key, result.Method)

	c.JSON(http.StatusOK, dto.ClassifyResponse{
		Filename: fileHeader.Filename,
		Result:   result,
	})
}

// sendError sends a structured error response
func (h *ClassifyHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "CLASSIFICATION_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
