package expdesc

import (
	"fmt"
	"iter"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/DjordjeVuckovic/irprep/internal/apperr"
)

const (
	DefaultPlanDescName = "exper_desc.json"
	DefaultPlanSubDir   = "exper_desc"
)

// Plan lists arbitrary extractor configurations to generate descriptors for.
type Plan struct {
	DescName   string          `yaml:"desc_name"`
	SubDir     string          `yaml:"sub_dir"`
	Extractors []PlanExtractor `yaml:"extractors"`
}

type PlanExtractor struct {
	ID       string         `yaml:"id"`
	TestOnly bool           `yaml:"test_only"`
	Config   map[string]any `yaml:"config"`
}

func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan file: %w", err)
	}
	return ParsePlan(data)
}

func ParsePlan(data []byte) (*Plan, error) {
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse plan YAML: %w", err)
	}
	if err := validatePlan(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func validatePlan(p *Plan) error {
	if len(p.Extractors) == 0 {
		return apperr.NewValidation("plan has no extractors")
	}
	ids := make(map[string]struct{}, len(p.Extractors))
	for i, ex := range p.Extractors {
		if ex.ID == "" {
			return apperr.NewValidation(fmt.Sprintf("extractor at index %d has no id", i))
		}
		if _, dup := ids[ex.ID]; dup {
			return apperr.NewValidation(fmt.Sprintf("extractor id %q is not unique", ex.ID))
		}
		ids[ex.ID] = struct{}{}
		if len(ex.Config) == 0 {
			return apperr.NewValidation(fmt.Sprintf("extractor %q has no config", ex.ID))
		}
	}
	if p.DescName == "" {
		p.DescName = DefaultPlanDescName
	}
	if p.SubDir == "" {
		p.SubDir = DefaultPlanSubDir
	}
	return nil
}

func (p *Plan) All() iter.Seq[Extractor] {
	return func(yield func(Extractor) bool) {
		for _, ex := range p.Extractors {
			if !yield(Extractor{ID: ex.ID, Config: ex.Config, TestOnly: ex.TestOnly}) {
				return
			}
		}
	}
}
