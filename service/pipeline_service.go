package service

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/ByPro8/PDF-SORTER/dto"
)

// PipelineService is the one-shot driver: move incoming PDFs into the
// archive, strip exact duplicates, then rebuild the sorted tree.
type PipelineService struct {
	sorter   *SorterService
	dedup    *DedupService
	inboxDir string
	archive  string
	sorted   string
}

func NewPipelineService(sorter *SorterService, dedup *DedupService, inboxDir, archiveDir, sortedDir string) *PipelineService {
	return &PipelineService{
		sorter:   sorter,
		dedup:    dedup,
		inboxDir: inboxDir,
		archive:  archiveDir,
		sorted:   sortedDir,
	}
}

func (p *PipelineService) ensureDirs() error {
	for _, dir := range []string{p.inboxDir, p.archive, p.sorted} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return nil
}

// moveInboxToArchive moves every PDF under the inbox into the archive,
// renaming on name collisions. Only PDFs are taken; anything else stays.
func (p *PipelineService) moveInboxToArchive() (int, error) {
	pdfs, err := listPDFs(p.inboxDir, true)
	if err != nil {
		return 0, fmt.Errorf("failed to scan %s: %w", p.inboxDir, err)
	}
	if len(pdfs) == 0 {
		log.Printf("No PDFs found in %s.", p.inboxDir)
		return 0, nil
	}

	moved := 0
	for _, src := range pdfs {
		dst := uniqueDestPath(p.archive, filepath.Base(src))
		if err := os.Rename(src, dst); err != nil {
			// Cross-device fallback.
			if err := copyFile(src, dst); err != nil {
				return moved, fmt.Errorf("failed to move %s: %w", src, err)
			}
			if err := os.Remove(src); err != nil {
				return moved, fmt.Errorf("failed to remove %s after copy: %w", src, err)
			}
		}
		moved++
		log.Printf("MOVED: %s -> %s", filepath.Base(src), dst)
	}
	return moved, nil
}

// Run executes the three pipeline steps and reports per-step counts.
func (p *PipelineService) Run() (*dto.PipelineResponse, error) {
	if err := p.ensureDirs(); err != nil {
		return nil, err
	}

	log.Println("=== STEP 1: Move inbox PDFs into archive ===")
	moved, err := p.moveInboxToArchive()
	if err != nil {
		return nil, err
	}
	log.Printf("Moved %d PDFs.", moved)

	log.Println("=== STEP 2: Remove duplicates inside archive ===")
	removed, err := p.dedup.RemoveDuplicates(p.archive, false)
	if err != nil {
		return nil, err
	}
	log.Printf("Duplicates removed: %d", removed)

	log.Println("=== STEP 3: Sort archive into sorted tree ===")
	sorted, err := p.sorter.SortPDFs(p.archive, p.sorted)
	if err != nil {
		return nil, err
	}
	log.Printf("Sorted PDFs processed: %d", sorted)

	return &dto.PipelineResponse{
		Moved:             moved,
		DuplicatesRemoved: removed,
		Sorted:            sorted,
		CompletedAt:       time.Now().Format(time.RFC3339),
	}, nil
}
