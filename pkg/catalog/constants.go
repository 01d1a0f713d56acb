package catalog

import (
	"fmt"
	"os"

	validator "github.com/go-playground/validator/v10"
	yaml "gopkg.in/yaml.v3"
)

type StorageKind string

const (
	FileStorage StorageKind = "file"
	BoltStorage StorageKind = "bolt"
)

type Constants struct {
	MinRating   int         `yaml:"min_rating" validate:"min=1"`
	MaxRating   int         `yaml:"max_rating" validate:"gtefield=MinRating"`
	Storage     StorageKind `yaml:"storage" validate:"oneof=file bolt"`
	StoragePath string      `yaml:"storage_path" validate:"required"` // directory for file, database file for bolt
	Bucket      string      `yaml:"bucket" validate:"required_if=Storage bolt"`
	LogLevel    string      `yaml:"log_level" validate:"oneof=debug info warn error fatal"`
}

func GetDefaultConstants() *Constants {
	return &Constants{
		MinRating:   1,
		MaxRating:   5,
		Storage:     FileStorage,
		StoragePath: "./",
		Bucket:      "catalog-snapshots",
		LogLevel:    "warn",
	}
}

var validate = validator.New()

func (c *Constants) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("catalog: invalid constants: %w", err)
	}
	return nil
}

// LoadConstants reads a YAML file on top of the defaults. Keys absent from
// the file keep their default values.
func LoadConstants(path string) (*Constants, error) {
	cs := GetDefaultConstants()
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err = yaml.Unmarshal(buf, cs); err != nil {
		return nil, fmt.Errorf("catalog: parsing %s: %w", path, err)
	}
	if err = cs.Validate(); err != nil {
		return nil, err
	}
	return cs, nil
}
