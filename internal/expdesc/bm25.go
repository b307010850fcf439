package expdesc

import (
	"fmt"
	"iter"
	"strconv"

	"github.com/DjordjeVuckovic/irprep/internal/apperr"
)

const (
	BM25DescName = "bm25tune.json"
	BM25SubDir   = "bm25tune"
)

// FeatureExtractor is one entry of an extractor configuration file.
type FeatureExtractor struct {
	Type   string            `json:"type"`
	Params map[string]string `json:"params"`
}

// ExtractorFile is the content of a per-extractor JSON file.
type ExtractorFile struct {
	Extractors []FeatureExtractor `json:"extractors"`
}

type BM25Params struct {
	K1     float64
	B      float64
	Fields []string
}

func (p BM25Params) Validate() error {
	if p.K1 < 0 {
		return apperr.NewValidation(fmt.Sprintf("k1 must not be negative, got %g", p.K1))
	}
	if p.B < 0 || p.B > 1 {
		return apperr.NewValidation(fmt.Sprintf("b must be within [0, 1], got %g", p.B))
	}
	if len(p.Fields) == 0 {
		return apperr.NewValidation("at least one index field is required")
	}
	return nil
}

// BM25Extractors yields one single-feature BM25 configuration per index field.
// BM25 runs need no trained model, so every descriptor is test-only.
func BM25Extractors(p BM25Params) iter.Seq[Extractor] {
	k1 := formatFloat(p.K1)
	b := formatFloat(p.B)
	return func(yield func(Extractor) bool) {
		for _, field := range p.Fields {
			ex := Extractor{
				ID: fmt.Sprintf("bm25=%s+k1=%s+b=%s", field, k1, b),
				Config: ExtractorFile{Extractors: []FeatureExtractor{{
					Type: "TFIDFSimilarity",
					Params: map[string]string{
						"indexFieldName": field,
						"similType":      "bm25",
						"k1":             k1,
						"b":              b,
					},
				}}},
				TestOnly: true,
			}
			if !yield(ex) {
				return
			}
		}
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
