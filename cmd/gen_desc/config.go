package main

import (
	"github.com/DjordjeVuckovic/irprep/internal/expdesc"
)

type descConfig struct {
	OutDir      string
	RelDescPath string
	ExperSubdir string
}

func (c descConfig) generatorConfig(descName, subDir string) expdesc.Config {
	return expdesc.Config{
		OutDir:      c.OutDir,
		RelDescPath: c.RelDescPath,
		ExperSubdir: c.ExperSubdir,
		DescName:    descName,
		SubDir:      subDir,
	}
}

type bm25Config struct {
	K1       float64
	B        float64
	Fields   []string
	DescName string
	SubDir   string
}
