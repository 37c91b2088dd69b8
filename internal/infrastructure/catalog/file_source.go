package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"moving_pricing/internal/domain/entities"
	"moving_pricing/internal/usecase/interfaces"
)

//go:embed default_catalog.yaml
var defaultCatalogYAML []byte

// DefaultCatalog returns the catalog compiled into the binary.
func DefaultCatalog() (entities.RuleCatalog, error) {
	return Decode(defaultCatalogYAML, ".yaml")
}

// Decode parses a catalog document. ".json" files are read as JSON, anything
// else as YAML.
func Decode(data []byte, ext string) (entities.RuleCatalog, error) {
	var c entities.RuleCatalog
	var err error
	switch strings.ToLower(ext) {
	case ".json":
		err = json.Unmarshal(data, &c)
	default:
		err = yaml.Unmarshal(data, &c)
	}
	if err != nil {
		return entities.RuleCatalog{}, fmt.Errorf("decode catalog: %w", err)
	}
	return c, nil
}

// FileSource loads the catalog from a YAML or JSON file. An empty path
// serves the embedded default catalog.
type FileSource struct {
	path string
}

var _ interfaces.ICatalogSource = (*FileSource)(nil)

func NewFileSource(path string) *FileSource {
	return &FileSource{path: strings.TrimSpace(path)}
}

func (s *FileSource) Load(_ context.Context) (entities.RuleCatalog, error) {
	if s.path == "" {
		return DefaultCatalog()
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return entities.RuleCatalog{}, fmt.Errorf("read catalog file: %w", err)
	}
	return Decode(data, filepath.Ext(s.path))
}
