// Package i18n loads the embedded message catalogs and translates UI strings.
package i18n

import (
	"embed"
	"fmt"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

// Translator resolves message IDs for one language, falling back to English.
type Translator struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	tag       language.Tag
}

// New creates a translator for the given BCP 47 language code.
// An empty code selects English.
func New(code string) (*Translator, error) {
	tag := language.English
	if code != "" {
		parsed, err := language.Parse(code)
		if err != nil {
			return nil, fmt.Errorf("i18n: invalid language %q: %w", code, err)
		}
		tag = parsed
	}

	bundle, err := loadBundle()
	if err != nil {
		return nil, err
	}

	return &Translator{
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, tag.String(), language.English.String()),
		tag:       tag,
	}, nil
}

// MustNew is like New but panics on error.
func MustNew(code string) *Translator {
	t, err := New(code)
	if err != nil {
		panic(err)
	}
	return t
}

func loadBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("i18n: cannot list locales: %w", err)
	}
	for _, entry := range entries {
		name := path.Join("locales", entry.Name())
		data, err := localeFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("i18n: cannot read %s: %w", name, err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, entry.Name()); err != nil {
			return nil, fmt.Errorf("i18n: cannot parse %s: %w", name, err)
		}
	}
	return bundle, nil
}

// Tag returns the requested language.
func (t *Translator) Tag() language.Tag {
	return t.tag
}

// Translate returns the message for id, or fallback if no language has it.
func (t *Translator) Translate(id, fallback string) string {
	return t.TranslateWith(id, fallback, nil)
}

// TranslateWith is Translate with template data for {{.Field}} placeholders.
func (t *Translator) TranslateWith(id, fallback string, data map[string]any) string {
	cfg := &i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	}
	if fallback != "" {
		cfg.DefaultMessage = &i18n.Message{ID: id, Other: fallback}
	}

	msg, err := t.localizer.Localize(cfg)
	if err != nil && msg == "" {
		return fallback
	}
	return msg
}

// T translates id with no fallback text; missing IDs come back unchanged.
func (t *Translator) T(id string) string {
	if msg := t.Translate(id, ""); msg != "" {
		return msg
	}
	return id
}

// Languages lists the language tags that have an embedded message file.
func (t *Translator) Languages() []language.Tag {
	return t.bundle.LanguageTags()
}

// Available returns the codes of the embedded locales, e.g. "en", "es".
func Available() []string {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		out = append(out, strings.TrimSuffix(entry.Name(), path.Ext(entry.Name())))
	}
	return out
}
