package dataset

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
)

// Parser materializes an uploaded spreadsheet into a Table.
type Parser interface {
	Parse(r io.Reader) (*Table, error)
}

// ParserFactory creates a Parser for one file format.
type ParserFactory func() Parser

// Registry manages parser factories keyed by file format ("csv", "xlsx").
type Registry interface {
	// Create instantiates a parser for the given format
	Create(format string) (Parser, error)
	// Formats returns the registered format names
	Formats() []string
}

type registry struct {
	mu        sync.RWMutex
	factories map[string]ParserFactory
}

// NewRegistry creates a parser registry from a format -> factory map.
func NewRegistry(factories map[string]ParserFactory) Registry {
	r := &registry{factories: make(map[string]ParserFactory)}
	for format, factory := range factories {
		r.factories[strings.ToLower(format)] = factory
	}
	return r
}

func (r *registry) Create(format string) (Parser, error) {
	r.mu.RLock()
	factory, exists := r.factories[strings.ToLower(format)]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("unsupported dataset format: %q", format)
	}
	return factory(), nil
}

func (r *registry) Formats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	formats := make([]string, 0, len(r.factories))
	for format := range r.factories {
		formats = append(formats, format)
	}
	return formats
}

// FormatFromPath derives the dataset format from a file name extension.
func FormatFromPath(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}
