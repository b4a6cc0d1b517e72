package log

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestFileLoggerCreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.tslog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	defer logger.Close()

	// File should exist
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("trace file was not created")
	}
}

func TestFileLoggerWritesCBOR(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.tslog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}

	event := Event{
		Timestamp: time.Now(),
		ReaderID:  "reader-123",
		Source:    "amp.s2p",
		Stage:     StageData,
		Category:  CategoryPair,
		Line:      4,
		Pair: &PairEvent{
			Frequency: 1.0,
			Ports:     2,
			Layout:    "SOURCE_MAJOR",
		},
	}

	logger.Log(event)
	logger.Close()

	// Read the file and decode
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read trace file: %v", err)
	}

	if len(data) == 0 {
		t.Fatal("trace file is empty")
	}

	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("failed to decode event: %v", err)
	}

	if decoded.ReaderID != event.ReaderID {
		t.Errorf("ReaderID: got %q, want %q", decoded.ReaderID, event.ReaderID)
	}
	if decoded.Pair == nil {
		t.Error("Pair is nil")
	} else if decoded.Pair.Ports != event.Pair.Ports {
		t.Errorf("Pair.Ports: got %d, want %d", decoded.Pair.Ports, event.Pair.Ports)
	}
}

func TestFileLoggerAppends(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.tslog")

	// Write first event
	logger1, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}

	logger1.Log(Event{
		Timestamp: time.Now(),
		ReaderID:  "reader-1",
		Stage:     StageHeader,
		Category:  CategoryOptions,
	})
	logger1.Close()

	// Get file size after first write
	info1, _ := os.Stat(path)
	size1 := info1.Size()

	// Open again and write second event
	logger2, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}

	logger2.Log(Event{
		Timestamp: time.Now(),
		ReaderID:  "reader-2",
		Stage:     StageHeader,
		Category:  CategoryOptions,
	})
	logger2.Close()

	info2, _ := os.Stat(path)
	if info2.Size() <= size1 {
		t.Errorf("file did not grow on append: %d -> %d", size1, info2.Size())
	}
}

func TestFileLoggerCloseIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.tslog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}

	if err := logger.Close(); err != nil {
		t.Errorf("first Close failed: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}

	// Log after close is silently ignored
	logger.Log(Event{ReaderID: "late"})
}

func TestFileLoggerConcurrent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.tslog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}

	const writers = 10
	const perWriter = 20

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				logger.Log(Event{
					Timestamp: time.Now(),
					ReaderID:  "reader-concurrent",
					Stage:     StageData,
					Category:  CategoryPair,
					Line:      id*perWriter + i,
					Pair:      &PairEvent{Frequency: float64(i), Ports: 2},
				})
			}
		}(w)
	}
	wg.Wait()
	logger.Close()

	// Every event should decode cleanly from the shared file
	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	count := 0
	for {
		_, err := reader.Next()
		if err != nil {
			break
		}
		count++
	}
	if count != writers*perWriter {
		t.Errorf("event count: got %d, want %d", count, writers*perWriter)
	}
}
