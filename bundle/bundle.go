// Package bundle provides locale-aware message lookup backed by YAML files.
// A bundle is loaded from a filesystem containing one flat key-to-message
// YAML file per locale, named after its BCP 47 tag (en.yaml, fr.yaml,
// fr-CA.yaml). Lookups match the requested locale against the available ones
// and fall back to the bundle's default locale, then to the key itself, so a
// lookup always renders something.
package bundle

import (
	"fmt"
	"io/fs"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/Ninja-Squad/ninja-core-sub000/errors"
)

// Bundle holds the messages of every loaded locale. It is immutable after
// Load and safe for concurrent use.
type Bundle struct {
	fallback language.Tag
	tags     []language.Tag
	matcher  language.Matcher
	messages map[language.Tag]map[string]string
}

// Load reads every *.yaml file at the root of fsys into a Bundle. Each file
// name (without extension) must parse as a BCP 47 language tag, and each
// file must contain a flat mapping of message keys to strings.
//
// fallback is the locale served when a request matches nothing better; a
// file for it must be present. Errors from individual files are collected
// and reported together.
func Load(fsys fs.FS, fallback language.Tag) (*Bundle, error) {
	names, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, fmt.Errorf("bundle: listing message files: %w", err)
	}

	b := &Bundle{
		fallback: fallback,
		messages: make(map[language.Tag]map[string]string, len(names)),
	}

	var errs errors.Collection

	for _, name := range names {
		tag, messages, err := loadFile(fsys, name)
		if err != nil {
			errs.Add(err)

			continue
		}

		b.messages[tag] = messages
		b.tags = append(b.tags, tag)
	}

	if errs.HasError() {
		return nil, errs.GetError()
	}

	if _, ok := b.messages[fallback]; !ok {
		return nil, fmt.Errorf("bundle: no message file for fallback locale %v", fallback) //nolint:err113
	}

	// The matcher prefers earlier tags on ties, so the fallback goes first.
	ordered := append([]language.Tag{fallback}, b.tags...)
	b.matcher = language.NewMatcher(ordered)

	return b, nil
}

func loadFile(fsys fs.FS, name string) (language.Tag, map[string]string, error) {
	base := strings.TrimSuffix(name, ".yaml")

	tag, err := language.Parse(base)
	if err != nil {
		return language.Und, nil, fmt.Errorf("bundle: %s is not named after a language tag: %w", name, err)
	}

	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return language.Und, nil, fmt.Errorf("bundle: reading %s: %w", name, err)
	}

	var messages map[string]string
	if err := yaml.Unmarshal(data, &messages); err != nil {
		return language.Und, nil, fmt.Errorf("bundle: parsing %s: %w", name, err)
	}

	return tag, messages, nil
}

// Lookup returns the message for key in the locale best matching the
// requested tag, falling back to the bundle's default locale. The boolean
// reports whether any message was found.
func (b *Bundle) Lookup(tag language.Tag, key string) (string, bool) {
	_, index, _ := b.matcher.Match(tag)

	// Index 0 is the fallback itself; others are offset by its insertion.
	matched := b.fallback
	if index > 0 {
		matched = b.tags[index-1]
	}

	if msg, ok := b.messages[matched][key]; ok {
		return msg, true
	}

	msg, ok := b.messages[b.fallback][key]

	return msg, ok
}

// Message returns the message for key in the best-matching locale, or the
// key itself when no locale defines it. Use Lookup to distinguish a missing
// message from one that equals its key.
func (b *Bundle) Message(tag language.Tag, key string) string {
	if msg, ok := b.Lookup(tag, key); ok {
		return msg
	}

	return key
}

// Locales returns the tags of every loaded message file, in load order.
func (b *Bundle) Locales() []language.Tag {
	out := make([]language.Tag, len(b.tags))
	copy(out, b.tags)

	return out
}
