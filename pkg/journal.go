// Package pkg is a package that provides utilities for modlift.
package pkg

import (
	"encoding/gob"
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// Journal is a generic append-only record log backed by a gob file. modlift
// uses it to keep an audit trail of the actions a run performed, since the
// tool itself never rolls anything back.
type Journal[T any] interface {
	Len() uint64
	Path() string
	Append(record T) error
	AppendBatch(records []T) error
	Range(f func(index uint64, record T) error) error
	Close() error
}

type journalImpl[T any] struct {
	path    string
	file    *os.File
	encoder *gob.Encoder
	mu      sync.Mutex
	length  uint64
}

// Append implements Journal.
func (j *journalImpl[T]) Append(record T) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if err := j.encoder.Encode(record); err != nil {
		slog.Error("failed to encode record", "path", j.path, "index", j.length, "error", err)
		return fmt.Errorf("failed to encode record: %w", err)
	}

	j.length++
	slog.Debug("appended record", "path", j.path, "index", j.length-1)

	return nil
}

// AppendBatch implements Journal.
func (j *journalImpl[T]) AppendBatch(records []T) error {
	for _, record := range records {
		if err := j.Append(record); err != nil {
			return err
		}
	}

	return nil
}

// Path implements Journal.
func (j *journalImpl[T]) Path() string {
	return j.path
}

// Len implements Journal.
func (j *journalImpl[T]) Len() uint64 {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.length
}

// Range implements Journal. It replays every record already flushed to disk,
// in append order.
func (j *journalImpl[T]) Range(fn func(index uint64, record T) error) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	file, err := os.Open(j.path)
	if err != nil {
		slog.Error("failed to open journal for range", "path", j.path, "error", err)
		return fmt.Errorf("failed to open journal: %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("failed to close journal", "path", j.path, "error", err)
		}
	}()

	decoder := gob.NewDecoder(file)

	var record T

	for i := range j.length {
		if err := decoder.Decode(&record); err != nil {
			slog.Error("failed to decode record during range", "path", j.path, "index", i, "error", err)
			return fmt.Errorf("failed to decode record at index %d: %w", i, err)
		}

		if err := fn(i, record); err != nil {
			slog.Warn("range callback error", "path", j.path, "index", i, "error", err)
			return err
		}
	}

	slog.Debug("range completed", "path", j.path, "count", j.length)

	return nil
}

// Close implements Journal.
func (j *journalImpl[T]) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.file != nil {
		if err := j.file.Close(); err != nil {
			slog.Error("failed to close journal", "path", j.path, "error", err)
			return err
		}

		slog.Debug("closed journal", "path", j.path, "length", j.length)
	}

	return nil
}

// NewJournal creates a journal at path for records of type T. Each run gets
// a fresh journal; a gob stream cannot be appended to across encoders, so an
// existing file is truncated.
func NewJournal[T any](path string) (Journal[T], error) {
	// #nosec G304 - path comes from the tool's own configuration
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		slog.Error("failed to open journal file", "path", path, "error", err)
		return nil, fmt.Errorf("failed to open journal file: %w", err)
	}

	slog.Debug("opened journal", "path", path)

	return &journalImpl[T]{
		path:    path,
		file:    file,
		encoder: gob.NewEncoder(file),
		length:  0,
	}, nil
}
