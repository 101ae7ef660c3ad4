// Package i18n resolves user-visible message IDs to localized text.
package i18n

import (
	"embed"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

//go:embed active.*.toml
var localeFS embed.FS

// DefaultLocale is the locale the original app shipped with.
const DefaultLocale = "pt-BR"

// localeFiles are the embedded bundles, loaded in order.
var localeFiles = []string{"active.pt-BR.toml", "active.en.toml"}

// Option configures NewTranslator.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger reports bundles that fail to load and unknown locales to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Translator is a thin wrapper around go-i18n's Bundle/Localizer, bound to
// one locale for the lifetime of the client.
type Translator struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	locale    language.Tag
}

// NewTranslator builds a Translator for locale (e.g. "en"), falling back to
// DefaultLocale for unknown tags and missing messages.
func NewTranslator(locale string, opts ...Option) *Translator {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	def := language.MustParse(DefaultLocale)
	bundle := i18n.NewBundle(def)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range localeFiles {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			o.logger.Warn("load message file", zap.String("file", file), zap.Error(err))
		}
	}

	tag, err := language.Parse(locale)
	if err != nil {
		o.logger.Warn("unknown locale", zap.String("locale", locale), zap.String("fallback", DefaultLocale))
		tag = def
	}

	return &Translator{
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, tag.String(), def.String()),
		locale:    tag,
	}
}

// Locale returns the tag the translator was built for.
func (t *Translator) Locale() language.Tag {
	return t.locale
}

// T renders the message identified by key.
// If the key is not found in the locale it falls back to the default locale,
// then finally to the key itself.
func (t *Translator) T(key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	if t == nil {
		return key
	}
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		return key
	}
	return msg
}
