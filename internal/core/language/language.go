package language

import "slices"

// Language represents a selectable display language.
type Language struct {
	Code string `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
	Flag string `json:"flag" yaml:"flag"`
}

// Entry pairs a language with its translated welcome string.
type Entry struct {
	Language
	Translation string `json:"translation"`
}

// Catalog is the ordered, immutable set of languages and their translations.
// Every language in a Catalog has a translation; Load refuses anything else.
type Catalog struct {
	languages    []Language
	translations map[string]string
	index        map[string]int
}

// Languages returns the catalog in display order. The slice is a copy.
func (c *Catalog) Languages() []Language {
	return slices.Clone(c.languages)
}

// Codes returns the language codes in display order.
func (c *Catalog) Codes() []string {
	codes := make([]string, len(c.languages))
	for i, l := range c.languages {
		codes[i] = l.Code
	}
	return codes
}

// Lookup finds a language by code.
func (c *Catalog) Lookup(code string) (Language, bool) {
	i, ok := c.index[code]
	if !ok {
		return Language{}, false
	}
	return c.languages[i], true
}

// Translation returns the welcome string for code.
func (c *Catalog) Translation(code string) (string, bool) {
	s, ok := c.translations[code]
	return s, ok
}

// Len returns the number of languages.
func (c *Catalog) Len() int { return len(c.languages) }
