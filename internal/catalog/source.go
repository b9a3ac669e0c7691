package catalog

import (
	"context"
	"fmt"
)

// Source produces a fresh snapshot on demand
type Source interface {
	Name() string
	Load(ctx context.Context) (*Snapshot, error)
}

// EmbeddedSource serves the bundled reference catalog
type EmbeddedSource struct{}

// Name returns the source name
func (EmbeddedSource) Name() string { return "embedded" }

// Load parses the bundled document
func (EmbeddedSource) Load(ctx context.Context) (*Snapshot, error) {
	return Reference()
}

// FileSource reads a YAML catalog from disk on every load
type FileSource struct {
	Path string
}

// Name returns the source name
func (f FileSource) Name() string { return "file" }

// Load re-reads and validates the file
func (f FileSource) Load(ctx context.Context) (*Snapshot, error) {
	if f.Path == "" {
		return nil, fmt.Errorf("file source: path is empty")
	}
	return LoadYAML(f.Path)
}

// Fetcher downloads a document by URL
type Fetcher interface {
	GetBytes(ctx context.Context, url string) ([]byte, error)
}

// HTTPSource downloads a YAML catalog on every load
type HTTPSource struct {
	URL     string
	Fetcher Fetcher
}

// Name returns the source name
func (h HTTPSource) Name() string { return "http" }

// Load fetches and validates the remote document
func (h HTTPSource) Load(ctx context.Context) (*Snapshot, error) {
	if h.URL == "" {
		return nil, fmt.Errorf("http source: url is empty")
	}
	if h.Fetcher == nil {
		return nil, fmt.Errorf("http source: no fetcher")
	}

	data, err := h.Fetcher.GetBytes(ctx, h.URL)
	if err != nil {
		return nil, fmt.Errorf("http source: %w", err)
	}
	return ParseYAML(data)
}
