package service

import (
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ByPro8/PDF-SORTER/dto"
)

// BankClassifier is the slice of BankDetector the sorter needs; the seam
// keeps the file-shuffling logic testable without real PDFs.
type BankClassifier interface {
	DetectFile(path string) dto.DetectionResult
}

// SorterService files PDFs from an input tree into per-bank folders,
// renaming each copy to a sequence number (1.pdf, 2.pdf, ...).
type SorterService struct {
	classifier BankClassifier
}

func NewSorterService(classifier BankClassifier) *SorterService {
	return &SorterService{classifier: classifier}
}

func targetFolderFor(det dto.DetectionResult) string {
	if det.Key == dto.UnknownKey || det.Bank == "" {
		return dto.UnknownBank
	}
	return det.Bank
}

func rebuildDir(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("failed to clear %s: %w", path, err)
	}
	return os.MkdirAll(path, 0o755)
}

// SortPDFs classifies every PDF under inputDir and copies it into
// outputDir/<Bank>/<n>.pdf. The output tree is rebuilt from scratch each run
// so repeated runs never accumulate duplicates. Returns the processed count.
func (s *SorterService) SortPDFs(inputDir, outputDir string) (int, error) {
	if err := rebuildDir(outputDir); err != nil {
		return 0, err
	}

	pdfs, err := listPDFs(inputDir, true)
	if err != nil {
		return 0, fmt.Errorf("failed to scan %s: %w", inputDir, err)
	}
	if len(pdfs) == 0 {
		log.Printf("No PDFs found in %s.", inputDir)
		return 0, nil
	}

	sort.Slice(pdfs, func(i, j int) bool {
		return strings.ToLower(pdfs[i]) < strings.ToLower(pdfs[j])
	})

	counters := make(map[string]int)
	processed := 0

	for idx, pdfPath := range pdfs {
		det := s.classifier.DetectFile(pdfPath)
		folder := targetFolderFor(det)
		outDir := filepath.Join(outputDir, folder)
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return processed, fmt.Errorf("failed to create %s: %w", outDir, err)
		}

		counters[folder]++
		dst := filepath.Join(outDir, fmt.Sprintf("%d.pdf", counters[folder]))
		// Safety: if something exists, find the next free number.
		for fileExists(dst) {
			counters[folder]++
			dst = filepath.Join(outDir, fmt.Sprintf("%d.pdf", counters[folder]))
		}

		if err := copyFile(pdfPath, dst); err != nil {
			return processed, fmt.Errorf("failed to copy %s: %w", pdfPath, err)
		}
		processed++

		log.Printf("%d/%d  BANK=%s  KEY=%s  METHOD=%s  -> %s/%s",
			idx+1, len(pdfs), det.Bank, det.Key, det.Method,
			folder, filepath.Base(dst))
	}

	return processed, nil
}

func listPDFs(dir string, recursive bool) ([]string, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}

	var pdfs []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if !recursive && path != dir {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".pdf") {
			pdfs = append(pdfs, path)
		}
		return nil
	})
	return pdfs, err
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
