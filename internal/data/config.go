package data

import "fmt"

const (
	defaultSplit = 50000
	defaultTable = "ocr_pairs"
)

// Config holds data source parameters
type Config struct {
	Source string `mapstructure:"source"` // file or mysql
	Truth  string `mapstructure:"truth"`
	OCR    string `mapstructure:"ocr"`
	DSN    string `mapstructure:"dsn"`
	Table  string `mapstructure:"table"`
	Split  int    `mapstructure:"split"` // pairs used for estimation, the rest is held out
}

// DefaultConfig returns file source defaults
func DefaultConfig() Config {
	return Config{Source: "file", Split: defaultSplit, Table: defaultTable}
}

// Merge applies non-zero values from source into c
func (c *Config) Merge(source *Config) {
	if source.Source != "" {
		c.Source = source.Source
	}
	if source.Truth != "" {
		c.Truth = source.Truth
	}
	if source.OCR != "" {
		c.OCR = source.OCR
	}
	if source.DSN != "" {
		c.DSN = source.DSN
	}
	if source.Table != "" {
		c.Table = source.Table
	}
	if source.Split > 0 {
		c.Split = source.Split
	}
}

// NewSource creates a Source from configuration
func NewSource(cfg *Config) (Source, error) {
	switch cfg.Source {
	case "file", "":
		if cfg.Truth == "" || cfg.OCR == "" {
			return nil, fmt.Errorf("no truth or ocr file")
		}
		return &FileSource{TruthPath: cfg.Truth, OCRPath: cfg.OCR}, nil
	case "mysql":
		res, err := NewMySQLSource(cfg.DSN, cfg.Table)
		if err != nil {
			return nil, err
		}
		return res, nil
	}
	return nil, fmt.Errorf("unknown source '%s'", cfg.Source)
}
