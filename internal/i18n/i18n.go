// Package i18n holds the console's user-facing messages.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Localizer formats message keys in one language.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

var (
	supported = []language.Tag{language.Japanese, language.English}
	cat       = buildCatalog()
)

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.Japanese))
	for tag, messages := range map[language.Tag]map[string]string{
		language.Japanese: japanese,
		language.English:  english,
	} {
		for key, msg := range messages {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(fmt.Sprintf("i18n: set %s %q: %v", tag, key, err))
			}
		}
	}
	return b
}

// New returns a localizer for "ja" or "en".
func New(lang string) (*Localizer, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("parse language: %w", err)
	}

	_, index, confidence := language.NewMatcher(supported).Match(tag)
	if confidence == language.No {
		return nil, fmt.Errorf("unsupported language %q", lang)
	}
	matched := supported[index]

	return &Localizer{
		tag:     matched,
		printer: message.NewPrinter(matched, message.Catalog(cat)),
	}, nil
}

// MustNew is New for static configuration.
func MustNew(lang string) *Localizer {
	l, err := New(lang)
	if err != nil {
		panic(err)
	}
	return l
}

// T formats the message stored under key.
func (l *Localizer) T(key string, args ...any) string {
	return l.printer.Sprintf(key, args...)
}

// Lang is the BCP 47 tag, for the html lang attribute.
func (l *Localizer) Lang() string {
	base, _ := l.tag.Base()
	return base.String()
}
