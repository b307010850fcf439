// Package expdesc writes experiment descriptors: one JSON file per feature
// extractor configuration plus a manifest that references all of them.
package expdesc

import (
	"encoding/json"
	"fmt"
	"iter"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/DjordjeVuckovic/irprep/internal/apperr"
)

const DefaultExperSubdir = "feat_exper"

// Descriptor is one manifest entry. TestOnly is encoded as 0 or 1.
type Descriptor struct {
	ExperSubdir string
	ExtrType    string
	TestOnly    bool
}

type descriptorJSON struct {
	ExperSubdir string          `json:"experSubdir"`
	ExtrType    string          `json:"extrType"`
	TestOnly    json.RawMessage `json:"testOnly"`
}

func (d Descriptor) MarshalJSON() ([]byte, error) {
	flag := json.RawMessage("0")
	if d.TestOnly {
		flag = json.RawMessage("1")
	}
	return json.Marshal(descriptorJSON{ExperSubdir: d.ExperSubdir, ExtrType: d.ExtrType, TestOnly: flag})
}

func (d *Descriptor) UnmarshalJSON(data []byte) error {
	var raw descriptorJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	d.ExperSubdir = raw.ExperSubdir
	d.ExtrType = raw.ExtrType

	switch flag := strings.TrimSpace(string(raw.TestOnly)); flag {
	case "", "null", "0", "false":
		d.TestOnly = false
	case "1", "true":
		d.TestOnly = true
	default:
		return fmt.Errorf("invalid testOnly value %s", flag)
	}
	return nil
}

// Extractor is one configuration to write. Config must be JSON-serialisable.
type Extractor struct {
	ID       string
	Config   any
	TestOnly bool
}

type Config struct {
	OutDir string
	// RelDescPath prefixes the extractor file paths stored in the manifest.
	RelDescPath string
	ExperSubdir string
	DescName    string
	SubDir      string
}

func (c Config) validate() error {
	if c.OutDir == "" {
		return apperr.NewValidation("output directory is required")
	}
	if c.DescName == "" {
		return apperr.NewValidation("descriptor file name is required")
	}
	return nil
}

// Generate writes every extractor configuration to <OutDir>/<SubDir>/<ID>.json
// and, once the sequence is exhausted, the manifest to <OutDir>/<DescName>.
// Files written before a failure are left in place and no manifest is written.
func Generate(cfg Config, extractors iter.Seq[Extractor]) ([]Descriptor, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.ExperSubdir == "" {
		cfg.ExperSubdir = DefaultExperSubdir
	}

	subDir := filepath.Join(cfg.OutDir, cfg.SubDir)
	if err := os.MkdirAll(subDir, 0o755); err != nil {
		return nil, fmt.Errorf("create descriptor directory: %w", err)
	}

	descs := make([]Descriptor, 0)
	seen := make(map[string]struct{})
	for ex := range extractors {
		if err := validateID(ex.ID); err != nil {
			return nil, err
		}
		if _, dup := seen[ex.ID]; dup {
			return nil, apperr.NewValidation(fmt.Sprintf("duplicate extractor id %q", ex.ID))
		}
		seen[ex.ID] = struct{}{}

		fileName := ex.ID + ".json"
		if err := writeJSON(filepath.Join(subDir, fileName), ex.Config); err != nil {
			return nil, fmt.Errorf("write extractor %s: %w", ex.ID, err)
		}
		descs = append(descs, Descriptor{
			ExperSubdir: path.Join(cfg.ExperSubdir, cfg.SubDir, ex.ID),
			ExtrType:    path.Join(cfg.RelDescPath, cfg.SubDir, fileName),
			TestOnly:    ex.TestOnly,
		})
		slog.Debug("Extractor descriptor written", "id", ex.ID, "testOnly", ex.TestOnly)
	}

	manifest := filepath.Join(cfg.OutDir, cfg.DescName)
	if err := writeJSON(manifest, descs); err != nil {
		return nil, fmt.Errorf("write manifest: %w", err)
	}

	slog.Info("Experiment descriptors generated", "manifest", manifest, "descriptors", len(descs))
	return descs, nil
}

// ReadManifest loads the descriptors of a manifest written by Generate.
func ReadManifest(manifestPath string) ([]Descriptor, error) {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var descs []Descriptor
	if err := json.Unmarshal(data, &descs); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", manifestPath, err)
	}
	return descs, nil
}

func validateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return apperr.NewValidation("extractor id must not be empty")
	}
	if strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return apperr.NewValidation(fmt.Sprintf("extractor id %q must be a plain file name", id))
	}
	return nil
}

func writeJSON(p string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, append(data, '\n'), 0o644)
}
