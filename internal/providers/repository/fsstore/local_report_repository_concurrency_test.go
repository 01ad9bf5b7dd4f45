package fsstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/crmarques/heckler-report/report"
)

func TestLocalReportRepositoryConcurrentWritersNeverExposePartialFiles(t *testing.T) {
	t.Parallel()

	const writers = 8
	const rounds = 20

	root := t.TempDir()
	repo := NewLocalReportRepository(root)
	target := filepath.Join(root, "web01", "heckler_abc123.yaml")

	reports := make([]*report.Report, writers)
	encodings := make([][]byte, writers)
	for idx := range reports {
		payload := fmt.Sprintf("configuration_version: abc123\nwriter: %d\npadding: %s\n", idx, bytes.Repeat([]byte("x"), 64*1024))
		reports[idx] = decodeReport(t, payload)

		encoded, err := reports[idx].Encode()
		if err != nil {
			t.Fatalf("Encode returned error: %v", err)
		}
		encodings[idx] = encoded
	}

	var done atomic.Bool
	readerErr := make(chan error, 1)
	go func() {
		defer close(readerErr)
		for !done.Load() {
			data, err := os.ReadFile(target)
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					continue
				}
				readerErr <- err
				return
			}
			if !matchesAny(data, encodings) {
				readerErr <- fmt.Errorf("observed partial report of %d bytes", len(data))
				return
			}
		}
	}()

	var wg sync.WaitGroup
	saveErrs := make(chan error, writers*rounds)
	for idx := 0; idx < writers; idx++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			for round := 0; round < rounds; round++ {
				if _, err := repo.Save(context.Background(), "web01", reports[idx]); err != nil {
					saveErrs <- err
				}
			}
		}(idx)
	}
	wg.Wait()
	done.Store(true)
	close(saveErrs)

	for err := range saveErrs {
		t.Fatalf("Save returned error: %v", err)
	}
	if err := <-readerErr; err != nil {
		t.Fatal(err)
	}

	final, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("failed to read final report: %v", err)
	}
	if !matchesAny(final, encodings) {
		t.Fatal("final report is not one of the complete writes")
	}
}

func matchesAny(data []byte, candidates [][]byte) bool {
	for _, candidate := range candidates {
		if bytes.Equal(data, candidate) {
			return true
		}
	}
	return false
}
