package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the optional YAML overlay for the tuning flags, loaded
// with --config and applied after flags are parsed, so a value set in
// the file overrides the corresponding flag.
type fileConfig struct {
	CutoffFrequency           *float64  `yaml:"cutoff_frequency"`
	PeriodRangeSeconds        []float64 `yaml:"period_range_seconds"`
	SegmentLengthSeconds      *float64  `yaml:"segment_length_seconds"`
	SegmentStepSeconds        *float64  `yaml:"segment_step_seconds"`
	FilterOrder               *int      `yaml:"filter_order"`
	SimilarityThreshold       *float64  `yaml:"similarity_threshold"`
	SimilarityDistanceSeconds *float64  `yaml:"similarity_distance_seconds"`
	SimilarityNumber          *int      `yaml:"similarity_number"`
	BufferLengthSeconds       *float64  `yaml:"buffer_length_seconds"`
}

func loadFileConfig(path string) (*fileConfig, error) {
	if path == "" {
		return &fileConfig{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
