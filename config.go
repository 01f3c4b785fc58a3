package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"saturation_calc/saturation"
)

// 計算条件
type Config struct {
	// 流体定数CSVファイルへのパス、空の場合は組み込みの表を使う
	Fluids string `yaml:"fluids"`

	Solver SolverConfig `yaml:"solver"`
	Batch  BatchConfig  `yaml:"batch"`

	Verbose bool `yaml:"verbose"`
}

// 飽和点探索の設定
type SolverConfig struct {
	Tolerance     float64 `yaml:"tolerance" validate:"gt=0,lt=1"`
	MaxIterations int     `yaml:"max_iterations" validate:"min=1,max=100000"`
}

// 一括計算の設定
type BatchConfig struct {
	Workers     int    `yaml:"workers" validate:"min=1,max=1024"`
	MetricsFile string `yaml:"metrics_file"`
}

var configValidate = validator.New()

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Solver: SolverConfig{
			Tolerance:     saturation.DefaultTolerance,
			MaxIterations: saturation.DefaultMaxIterations,
		},
		Batch: BatchConfig{
			Workers: 4,
		},
	}
}

/*
設定ファイルを読み込む。

	Args:
		path: YAMLファイルへのパス、空の場合は既定値のみ

	Returns:
		既定値にファイルの値を上書きした設定

	Notes:
		未知のキーはエラーとする。
*/
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := decodeConfig(bytes.NewReader(data), &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func decodeConfig(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate checks the value ranges of the configuration.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
