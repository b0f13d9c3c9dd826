package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ByPro8/PDF-SORTER/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClassifier classifies by filename prefix, so the sorter can be tested
// without real PDFs or a tesseract runtime.
type fakeClassifier struct{}

func (fakeClassifier) DetectFile(path string) dto.DetectionResult {
	name := filepath.Base(path)
	switch {
	case strings.HasPrefix(name, "halk"):
		return dto.DetectionResult{Key: "HALKBANK", Bank: "Halkbank", Method: dto.MethodTextDomain}
	case strings.HasPrefix(name, "deniz"):
		return dto.DetectionResult{Key: "DENIZBANK", Bank: "DenizBank", Method: dto.MethodTextName}
	default:
		return dto.UnknownResult()
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestSortPDFs(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "sorted")

	writeFile(t, filepath.Join(inputDir, "halk-1.pdf"), "a")
	writeFile(t, filepath.Join(inputDir, "halk-2.pdf"), "b")
	writeFile(t, filepath.Join(inputDir, "nested", "deniz-1.pdf"), "c")
	writeFile(t, filepath.Join(inputDir, "mystery.pdf"), "d")
	writeFile(t, filepath.Join(inputDir, "notes.txt"), "ignored")

	sorter := NewSorterService(fakeClassifier{})
	processed, err := sorter.SortPDFs(inputDir, outputDir)

	require.NoError(t, err)
	assert.Equal(t, 4, processed)
	assert.True(t, fileExists(filepath.Join(outputDir, "Halkbank", "1.pdf")))
	assert.True(t, fileExists(filepath.Join(outputDir, "Halkbank", "2.pdf")))
	assert.True(t, fileExists(filepath.Join(outputDir, "DenizBank", "1.pdf")))
	assert.True(t, fileExists(filepath.Join(outputDir, "Unknown", "1.pdf")))
}

func TestSortPDFsRebuildsOutput(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "sorted")

	// Leftovers from a previous run must not survive.
	writeFile(t, filepath.Join(outputDir, "Halkbank", "9.pdf"), "stale")
	writeFile(t, filepath.Join(inputDir, "halk-1.pdf"), "fresh")

	sorter := NewSorterService(fakeClassifier{})
	processed, err := sorter.SortPDFs(inputDir, outputDir)

	require.NoError(t, err)
	assert.Equal(t, 1, processed)
	assert.False(t, fileExists(filepath.Join(outputDir, "Halkbank", "9.pdf")))
	assert.True(t, fileExists(filepath.Join(outputDir, "Halkbank", "1.pdf")))
}

func TestSortPDFsEmptyInput(t *testing.T) {
	sorter := NewSorterService(fakeClassifier{})
	processed, err := sorter.SortPDFs(t.TempDir(), filepath.Join(t.TempDir(), "sorted"))

	require.NoError(t, err)
	assert.Equal(t, 0, processed)
}

func TestSortPDFsSourceFilesKept(t *testing.T) {
	inputDir := t.TempDir()
	src := filepath.Join(inputDir, "halk-1.pdf")
	writeFile(t, src, "content")

	sorter := NewSorterService(fakeClassifier{})
	_, err := sorter.SortPDFs(inputDir, filepath.Join(t.TempDir(), "sorted"))

	require.NoError(t, err)
	// The sorter copies; the archive keeps its files.
	assert.True(t, fileExists(src))
}
