package ingest

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/interviewprep/internal/domain"
)

//go:embed curated.yaml
var curatedYAML []byte

// Source is a reference text before embedding.
type Source struct {
	ID   string `yaml:"id"`
	Text string `yaml:"text"`
}

type sourceFile struct {
	Documents []Source `yaml:"documents"`
}

// Curated returns the built-in interview preparation knowledge base.
func Curated() []Source {
	docs, err := Parse(curatedYAML)
	if err != nil {
		panic(fmt.Sprintf("curated documents: %v", err))
	}
	return docs
}

// LoadFile reads a YAML document list from path.
func LoadFile(path string) ([]Source, error) {
	data, err := os.ReadFile(path) //nolint:gosec // operator-supplied path
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	docs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return docs, nil
}

// Parse decodes a YAML document list. IDs must be unique and texts non-empty.
func Parse(data []byte) ([]Source, error) {
	var f sourceFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}

	seen := make(map[string]struct{}, len(f.Documents))
	docs := make([]Source, 0, len(f.Documents))
	for i, d := range f.Documents {
		d.ID = strings.TrimSpace(d.ID)
		d.Text = strings.TrimSpace(d.Text)
		if d.ID == "" || d.Text == "" {
			return nil, fmt.Errorf("document %d: id and text are required: %w", i, domain.ErrInvalidRequest)
		}
		if _, dup := seen[d.ID]; dup {
			return nil, fmt.Errorf("document %q: duplicate id: %w", d.ID, domain.ErrInvalidRequest)
		}
		seen[d.ID] = struct{}{}
		docs = append(docs, d)
	}
	return docs, nil
}
