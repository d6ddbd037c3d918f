package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/membench/membench/bench"
)

// PresetFile is the YAML schema for named benchmark presets:
//
//	presets:
//	  dram-triad:
//	    kernel: triad
//	    iters: 200
//	    warmup: 20
//	    prefault: true
type PresetFile struct {
	Presets map[string]Preset `yaml:"presets"`
}

// Preset overrides a subset of the run configuration. Pointer fields
// distinguish "not set" from explicit zero values.
type Preset struct {
	Kernel   string `yaml:"kernel"`
	Size     string `yaml:"size"`
	Iters    *int   `yaml:"iters"`
	Warmup   *int   `yaml:"warmup"`
	Seed     *int64 `yaml:"seed"`
	Prefault *bool  `yaml:"prefault"`
	Aligned  *bool  `yaml:"aligned"`
}

// ApplyPreset loads the named preset from a YAML file and overlays it on
// cfg. Fields the preset leaves unset keep their flag values.
func ApplyPreset(path, name string, cfg *bench.Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading preset file: %w", err)
	}

	var file PresetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing preset file %s: %w", path, err)
	}

	p, ok := file.Presets[name]
	if !ok {
		return fmt.Errorf("preset %q not found in %s", name, path)
	}
	logrus.Infof("Using preset %q from %s", name, path)

	if p.Kernel != "" {
		cfg.Kernel = p.Kernel
	}
	if p.Size != "" {
		cfg.Size = p.Size
	}
	if p.Iters != nil {
		cfg.Iters = *p.Iters
	}
	if p.Warmup != nil {
		cfg.Warmup = *p.Warmup
	}
	if p.Seed != nil {
		cfg.Seed = *p.Seed
	}
	if p.Prefault != nil {
		cfg.Prefault = *p.Prefault
	}
	if p.Aligned != nil {
		cfg.Aligned = *p.Aligned
	}
	return nil
}
