package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/racelens/racelens/internal/analytics"
)

type categoryOrderFile struct {
	Categories []string `yaml:"categories"`
}

// LoadCategoryOrder reads the beginner-to-advanced category progression
// from a YAML file of the form:
//
//	categories:
//	  - Freshman Girls
//	  - Freshman Boys
//	  ...
//
// An empty path returns the built-in default order.
func LoadCategoryOrder(path string) ([]string, error) {
	if path == "" {
		return analytics.DefaultCategoryOrder, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read category order file: %w", err)
	}

	var f categoryOrderFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse category order file: %w", err)
	}
	if len(f.Categories) == 0 {
		return nil, fmt.Errorf("category order file %s lists no categories", path)
	}
	return f.Categories, nil
}
