package dataset

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/samirrijal/tunimap/internal/core/domain"
)

//go:embed data/tunisia.json
var embeddedJSON []byte

// EmbeddedJSON returns the dataset snapshot compiled into the binary.
func EmbeddedJSON() []byte {
	return embeddedJSON
}

// Decode parses the JSON dataset format.
func Decode(data []byte) ([]domain.Governorate, error) {
	var govs []domain.Governorate
	if err := json.Unmarshal(data, &govs); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	return govs, nil
}

// EmbeddedSource loads the compiled-in snapshot.
type EmbeddedSource struct{}

// Load implements ports.DatasetSource.
func (EmbeddedSource) Load(ctx context.Context) ([]domain.Governorate, error) {
	return Decode(embeddedJSON)
}

// FileSource loads a JSON snapshot from disk.
type FileSource struct {
	Path string
}

// Load implements ports.DatasetSource.
func (s FileSource) Load(ctx context.Context) ([]domain.Governorate, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", s.Path, err)
	}
	return Decode(data)
}
