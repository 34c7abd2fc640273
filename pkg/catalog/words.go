package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Category is a mail word category. Scroll is the cursor travel needed to
// open it from the category menu.
type Category struct {
	Name   string `yaml:"name"`
	Scroll int    `yaml:"scroll"`
}

// Word is a mail dictionary word. Index is the value the game writes when
// the word is chosen.
type Word struct {
	Index    uint16
	Text     string
	Category Category
}

func (w Word) String() string {
	return fmt.Sprintf("%s (%s, %04X)", w.Text, w.Category.Name, w.Index)
}

// Dictionary is the immutable set of mail words, iterated in a fixed order.
type Dictionary struct {
	words   []Word
	byIndex map[uint16]int
}

type wordsFile struct {
	Categories []struct {
		Category `yaml:",inline"`
		Words    []struct {
			Index uint16 `yaml:"index"`
			Text  string `yaml:"text"`
		} `yaml:"words"`
	} `yaml:"categories"`
}

// NewDictionary builds a dictionary iterated in the order words are given.
func NewDictionary(words []Word) (*Dictionary, error) {
	d := &Dictionary{
		words:   make([]Word, len(words)),
		byIndex: make(map[uint16]int, len(words)),
	}
	copy(d.words, words)
	for i, w := range d.words {
		if prev, ok := d.byIndex[w.Index]; ok {
			return nil, fmt.Errorf("%w: %04X is both %q and %q", ErrDuplicateIndex, w.Index, d.words[prev].Text, w.Text)
		}
		d.byIndex[w.Index] = i
	}
	return d, nil
}

// ParseDictionary decodes a YAML dictionary document of the form
//
//	categories:
//	  - name: FEELINGS
//	    scroll: 9
//	    words:
//	      - {index: 0x1200, text: MEET}
func ParseDictionary(data []byte) (*Dictionary, error) {
	var f wordsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse dictionary: %w", err)
	}

	var words []Word
	for _, c := range f.Categories {
		for _, w := range c.Words {
			words = append(words, Word{Index: w.Index, Text: w.Text, Category: c.Category})
		}
	}
	return NewDictionary(words)
}

// LoadDictionary reads a YAML dictionary file.
func LoadDictionary(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary file: %w", err)
	}
	return ParseDictionary(data)
}

// ByIndex returns the word with the given index.
func (d *Dictionary) ByIndex(i uint16) (Word, bool) {
	at, ok := d.byIndex[i]
	if !ok {
		return Word{}, false
	}
	return d.words[at], true
}

// Words returns every word in iteration order.
func (d *Dictionary) Words() []Word {
	out := make([]Word, len(d.words))
	copy(out, d.words)
	return out
}

// Find resolves a word by category name and text, ignoring case.
func (d *Dictionary) Find(category, text string) (Word, bool) {
	for _, w := range d.words {
		if strings.EqualFold(w.Category.Name, category) && strings.EqualFold(w.Text, text) {
			return w, true
		}
	}
	return Word{}, false
}

// Len is the number of words.
func (d *Dictionary) Len() int {
	return len(d.words)
}
