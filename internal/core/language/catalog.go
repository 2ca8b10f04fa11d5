package language

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	langtag "golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

var (
	// ErrEmptyCatalog is returned when a catalog file lists no languages.
	ErrEmptyCatalog = errors.New("catalog has no languages")
	// ErrMissingTranslation is returned when a language has no translation entry.
	ErrMissingTranslation = errors.New("missing translation")
)

// catalogFile is the on-disk YAML shape.
type catalogFile struct {
	Languages    []Language        `yaml:"languages"`
	Translations map[string]string `yaml:"translations"`
}

// Default returns the built-in six-language catalog.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic("language: embedded catalog is invalid: " + err.Error())
	}
	return c
}

// LoadFile reads a catalog from a YAML file. An empty path yields [Default].
func LoadFile(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates YAML catalog data.
//
// Codes must be unique, well-formed BCP 47 tags, and each must have a
// non-empty translation. Translations for codes outside the list are rejected.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	return New(file.Languages, file.Translations)
}

// New builds a validated Catalog from its parts.
func New(languages []Language, translations map[string]string) (*Catalog, error) {
	if len(languages) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		languages:    make([]Language, 0, len(languages)),
		translations: make(map[string]string, len(languages)),
		index:        make(map[string]int, len(languages)),
	}

	for _, l := range languages {
		l.Code = strings.TrimSpace(l.Code)
		if _, err := langtag.Parse(l.Code); err != nil {
			return nil, fmt.Errorf("language %q: invalid tag: %w", l.Code, err)
		}
		if _, dup := c.index[l.Code]; dup {
			return nil, fmt.Errorf("language %q: duplicate code", l.Code)
		}
		if strings.TrimSpace(l.Name) == "" {
			return nil, fmt.Errorf("language %q: name is required", l.Code)
		}

		text := translations[l.Code]
		if strings.TrimSpace(text) == "" {
			return nil, fmt.Errorf("language %q: %w", l.Code, ErrMissingTranslation)
		}

		c.index[l.Code] = len(c.languages)
		c.languages = append(c.languages, l)
		c.translations[l.Code] = text
	}

	for code := range translations {
		if _, ok := c.index[code]; !ok {
			return nil, fmt.Errorf("translation %q: no such language", code)
		}
	}

	return c, nil
}
