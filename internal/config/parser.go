package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	apperrors "github.com/alexisbeaulieu97/formsmith/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseCatalog loads a catalog file from disk, validates it, and returns the resulting model.
func ParseCatalog(path string) (*CatalogFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewParseError(path, 0, err)
	}
	return DecodeCatalog(data, path)
}

// DecodeCatalog decodes and validates a catalog document. source names the
// document in errors.
func DecodeCatalog(data []byte, source string) (*CatalogFile, error) {
	var doc CatalogFile
	if err := decodeStrict(data, &doc); err != nil {
		return nil, apperrors.NewParseError(source, extractLine(err), err)
	}
	if err := ValidateCatalog(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ParseRecipe loads a recipe file from disk, validates it, and returns the resulting model.
func ParseRecipe(path string) (*RecipeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewParseError(path, 0, err)
	}
	return DecodeRecipe(data, path)
}

// DecodeRecipe decodes and validates a recipe document.
func DecodeRecipe(data []byte, source string) (*RecipeFile, error) {
	var doc RecipeFile
	if err := decodeStrict(data, &doc); err != nil {
		return nil, apperrors.NewParseError(source, extractLine(err), err)
	}
	if err := ValidateRecipe(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// decodeStrict rejects unknown keys so typos in style names surface as errors.
func decodeStrict(data []byte, out interface{}) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("document is empty")
		}
		return err
	}
	return nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
