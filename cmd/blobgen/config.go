package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// fileConfig is the YAML configuration surface. It mirrors the flags and adds
// suite mode: a list of dataset shapes generated in one invocation.
//
//	outputDir: ./bench
//	seed: 42
//	noiseStdDev: 1.0
//	datasets:
//	  - { samples: 10000, dimensions: 2, centroids: 4 }
//	  - { samples: 100000, dimensions: 3, centroids: 4 }
//	  - { samples: 1000000, dimensions: 5, centroids: 4 }
//	kmeans:
//	  enabled: true
//	  maxIterations: 20
//	  convergenceThreshold: 0.001
type fileConfig struct {
	OutputDir   string          `yaml:"outputDir"`
	Seed        int64           `yaml:"seed"`
	NoiseStdDev float64         `yaml:"noiseStdDev"`
	Datasets    []datasetConfig `yaml:"datasets"`
	KMeans      kmeansConfig    `yaml:"kmeans"`
}

type datasetConfig struct {
	Samples    int `yaml:"samples"`
	Dimensions int `yaml:"dimensions"`
	Centroids  int `yaml:"centroids"`
}

type kmeansConfig struct {
	Enabled              bool    `yaml:"enabled"`
	MaxIterations        int     `yaml:"maxIterations"`
	ConvergenceThreshold float64 `yaml:"convergenceThreshold"`
}

func loadConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := &fileConfig{}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if len(cfg.Datasets) == 0 {
		return nil, fmt.Errorf("config %s: no datasets defined", path)
	}
	return cfg, nil
}
