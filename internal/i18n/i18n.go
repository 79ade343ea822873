// Package i18n provides message catalogs and per-request translator
// resolution for user-facing bot text.
//
// Catalogs are TOML files embedded at build time, one per supported
// language. Resolution never fails: an unknown language code falls back to
// the configured default catalog, and a key missing from every catalog
// renders as the key itself.
package i18n

import (
	"embed"
	"fmt"
	"log/slog"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed catalogs/*.toml
var catalogsFS embed.FS

// Resolver maps a language code to a Translator over the preloaded
// catalogs. It is read-only after construction and safe for concurrent use.
type Resolver struct {
	bundle      *goi18n.Bundle
	defaultCode string
}

// NewResolver loads every embedded catalog into a bundle. defaultCode is
// the catalog used when a chat has no stored preference or an unknown code
// is requested; it must be one of the supported languages.
func NewResolver(defaultCode string) (*Resolver, error) {
	if !IsSupported(defaultCode) {
		return nil, fmt.Errorf("unsupported default language %q", defaultCode)
	}

	bundle := goi18n.NewBundle(language.AmericanEnglish)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, lang := range languages {
		path := fmt.Sprintf("catalogs/messages.%s.toml", lang.Code)
		if _, err := bundle.LoadMessageFileFS(catalogsFS, path); err != nil {
			return nil, fmt.Errorf("failed to load catalog %s: %w", path, err)
		}
	}

	return &Resolver{bundle: bundle, defaultCode: defaultCode}, nil
}

// Resolve returns the Translator for code. Unknown or empty codes resolve
// to the default-language translator, so the result is always usable.
func (r *Resolver) Resolve(code string) *Translator {
	if !IsSupported(code) {
		code = r.defaultCode
	}
	return &Translator{
		localizer: goi18n.NewLocalizer(r.bundle, code, r.defaultCode),
		code:      code,
	}
}

// DefaultLanguage returns the configured fallback language code.
func (r *Resolver) DefaultLanguage() string {
	return r.defaultCode
}

// Translator renders message keys in one resolved language. It is a
// request-scoped value: handlers receive it explicitly instead of sharing
// mutable translation state.
type Translator struct {
	localizer *goi18n.Localizer
	code      string
}

// Code returns the language code this translator resolved to.
func (t *Translator) Code() string {
	return t.code
}

// T renders the message identified by key.
func (t *Translator) T(key string) string {
	return t.Tf(key, nil)
}

// Tf renders the message identified by key with template data. A key
// missing from every catalog is returned verbatim.
func (t *Translator) Tf(key string, data map[string]any) string {
	msg, err := t.localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		slog.Debug("missing translation", "key", key, "language", t.code)
		return key
	}
	return msg
}
