package service

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
)

// DupFolderName holds duplicates when deletion is disabled.
const DupFolderName = "_DUPLICATES"

// DedupService removes exact byte-for-byte duplicate PDFs from a directory.
// Files are grouped by size first, then confirmed by SHA-256; one copy per
// digest survives (the oldest by mtime, then by name).
type DedupService struct {
	deleteDuplicates bool
}

// NewDedupService constructs the deduplicator. When deleteDuplicates is
// false, duplicates are moved into a _DUPLICATES folder instead of removed.
func NewDedupService(deleteDuplicates bool) *DedupService {
	return &DedupService{deleteDuplicates: deleteDuplicates}
}

func sha256File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// uniqueDestPath returns <dir>/<name>, or "<stem> (2).pdf", "(3)", ... if
// the name is taken.
func uniqueDestPath(dstDir, filename string) string {
	dst := filepath.Join(dstDir, filename)
	if !fileExists(dst) {
		return dst
	}

	ext := filepath.Ext(filename)
	stem := filename[:len(filename)-len(ext)]
	for i := 2; ; i++ {
		cand := filepath.Join(dstDir, fmt.Sprintf("%s (%d)%s", stem, i, ext))
		if !fileExists(cand) {
			return cand
		}
	}
}

func safeMove(src, dstDir string) error {
	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return err
	}
	dst := uniqueDestPath(dstDir, filepath.Base(src))
	if err := os.Rename(src, dst); err != nil {
		// Cross-device fallback.
		if err := copyFile(src, dst); err != nil {
			return err
		}
		return os.Remove(src)
	}
	return nil
}

// RemoveDuplicates scans dir (non-recursively when recursive is false) and
// removes or quarantines exact duplicates. Returns how many were removed.
func (s *DedupService) RemoveDuplicates(dir string, recursive bool) (int, error) {
	pdfs, err := listPDFs(dir, recursive)
	if err != nil {
		return 0, fmt.Errorf("failed to scan %s: %w", dir, err)
	}

	bySize := make(map[int64][]string)
	for _, p := range pdfs {
		info, err := os.Stat(p)
		if err != nil {
			continue
		}
		bySize[info.Size()] = append(bySize[info.Size()], p)
	}

	removed := 0
	failed := 0
	dupDir := filepath.Join(dir, DupFolderName)

	for _, group := range bySize {
		if len(group) == 1 {
			continue
		}

		// Same-size files: hash to confirm true duplicates.
		byHash := make(map[string][]string)
		for _, p := range group {
			digest, err := sha256File(p)
			if err != nil {
				// Safer to keep a file we could not hash.
				log.Printf("[WARN] Could not hash %s: %v", filepath.Base(p), err)
				continue
			}
			byHash[digest] = append(byHash[digest], p)
		}

		for _, hgroup := range byHash {
			if len(hgroup) == 1 {
				continue
			}

			// Keep the oldest.
			sort.Slice(hgroup, func(i, j int) bool {
				ii, ei := os.Stat(hgroup[i])
				ij, ej := os.Stat(hgroup[j])
				if ei != nil || ej != nil {
					return hgroup[i] < hgroup[j]
				}
				if !ii.ModTime().Equal(ij.ModTime()) {
					return ii.ModTime().Before(ij.ModTime())
				}
				return hgroup[i] < hgroup[j]
			})
			keeper := hgroup[0]

			for _, dup := range hgroup[1:] {
				if !fileExists(dup) {
					continue
				}
				if s.deleteDuplicates {
					if err := os.Remove(dup); err != nil {
						failed++
						log.Printf("[FAIL] Could not remove %s: %v", filepath.Base(dup), err)
						continue
					}
					removed++
					log.Printf("[DUP] deleted: %s  == kept: %s", filepath.Base(dup), filepath.Base(keeper))
				} else {
					if err := safeMove(dup, dupDir); err != nil {
						failed++
						log.Printf("[FAIL] Could not move %s: %v", filepath.Base(dup), err)
						continue
					}
					removed++
					log.Printf("[DUP] moved: %s -> %s/ (kept %s)", filepath.Base(dup), DupFolderName, filepath.Base(keeper))
				}
			}
		}
	}

	log.Printf("Dedup summary: scanned=%d removed=%d failed=%d", len(pdfs), removed, failed)
	return removed, nil
}
