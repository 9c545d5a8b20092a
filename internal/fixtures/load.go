// Package fixtures loads the static dashboard dataset. The dataset ships
// embedded in the binary and may be replaced by a file on disk.
package fixtures

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

//go:embed data/fixtures.yaml
var embedded []byte

var ErrInvalidDataset = errors.New("invalid fixture dataset")

// Default decodes the embedded dataset.
func Default() (*Dataset, error) {
	return Load(bytes.NewReader(embedded))
}

// LoadFile decodes the dataset at path. An empty path selects the embedded
// dataset.
func LoadFile(path string) (*Dataset, error) {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixtures %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Load decodes, defaults and validates a dataset. Unknown keys are rejected
// so typos in hand-edited files fail at startup.
func Load(r io.Reader) (*Dataset, error) {
	var d Dataset
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDataset)
		}
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidDataset, err)
	}

	if err := defaults.Set(&d); err != nil {
		return nil, fmt.Errorf("apply fixture defaults: %w", err)
	}

	if err := Validate(&d); err != nil {
		return nil, err
	}
	return &d, nil
}
