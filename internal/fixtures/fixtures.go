// Package fixtures serves the static documents returned by the complaint, loan
// enquiry and cheque-book tracking endpoints.
package fixtures

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Name identifies a fixture document.
type Name string

const (
	Complaint Name = "complaint"
	Loan      Name = "loan"
	Cheque    Name = "cheque"
)

// Names lists every fixture the API serves.
var Names = []Name{Complaint, Loan, Cheque}

// ErrNotFound is returned by a Source that has no document for a name.
var ErrNotFound = errors.New("fixture not found")

//go:embed data/*.json
var embedded embed.FS

// Source reads raw fixture documents.
type Source interface {
	// Read returns the document for name, or an error wrapping ErrNotFound.
	Read(ctx context.Context, name Name) ([]byte, error)
}

// EmbeddedSource serves the documents compiled into the binary.
type EmbeddedSource struct{}

// Read implements Source.
func (EmbeddedSource) Read(ctx context.Context, name Name) ([]byte, error) {
	data, err := embedded.ReadFile("data/" + fileName(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("embedded %s: %w", name, ErrNotFound)
	}
	return data, err
}

// DirSource reads <dir>/<name>.json from the local filesystem.
type DirSource struct {
	Dir string
}

// Read implements Source.
func (s DirSource) Read(ctx context.Context, name Name) ([]byte, error) {
	path := filepath.Join(s.Dir, fileName(name))
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	return data, nil
}

// Store holds validated fixture documents.
type Store struct {
	docs map[Name][]byte
}

// Load reads every fixture from override, falling back to the embedded documents
// when override is nil or has no document for a name.
func Load(ctx context.Context, override Source) (*Store, error) {
	store := &Store{docs: make(map[Name][]byte, len(Names))}

	for _, name := range Names {
		data, err := read(ctx, override, name)
		if err != nil {
			return nil, err
		}
		if !json.Valid(data) {
			return nil, fmt.Errorf("fixture %s: invalid JSON", name)
		}
		store.docs[name] = data
	}

	return store, nil
}

func read(ctx context.Context, override Source, name Name) ([]byte, error) {
	if override != nil {
		data, err := override.Read(ctx, name)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("load fixture %s: %w", name, err)
		}
	}
	data, err := EmbeddedSource{}.Read(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("load fixture %s: %w", name, err)
	}
	return data, nil
}

// Get returns the document for name.
func (s *Store) Get(name Name) ([]byte, bool) {
	data, ok := s.docs[name]
	return data, ok
}

func fileName(name Name) string {
	return string(name) + ".json"
}

// OpenOverride returns the override Source selected by dir or gcsURI, or nil when
// both are empty. The returned close function is never nil.
func OpenOverride(ctx context.Context, dir, gcsURI, gcsEndpoint string) (Source, func() error, error) {
	noop := func() error { return nil }
	switch {
	case dir != "" && gcsURI != "":
		return nil, noop, fmt.Errorf("fixture directory and GCS URI are mutually exclusive")
	case dir != "":
		return DirSource{Dir: dir}, noop, nil
	case gcsURI != "":
		src, err := NewGCSSource(ctx, gcsURI, gcsEndpoint)
		if err != nil {
			return nil, noop, err
		}
		return src, src.Close, nil
	default:
		return nil, noop, nil
	}
}
