// Package navlocale reports the user's preferred language as exposed by the
// host environment.
//
// The detector is a pass-through: it never parses, validates or normalizes
// the value it returns. When the environment exposes no signal at all the
// result is the empty string. Whether an empty result means "fall back to a
// default language" or "fail" is left to the caller; this package does not
// pick a default.
package navlocale

import (
	"io"
	"log/slog"
)

// Environment exposes the language preferences of the host runtime.
// Implementations return "" (or an empty slice) for signals they do not have.
type Environment interface {
	// Languages returns the user's preferred languages, most preferred first.
	Languages() []string
	// Language returns the single preferred language.
	Language() string
	// UserLanguage returns the legacy user language field.
	UserLanguage() string
}

// Source identifies which environment signal produced a detected locale.
type Source int

const (
	// SourceNone means the environment exposed no signal.
	SourceNone Source = iota
	// SourceLanguages is the first entry of the ordered language list.
	SourceLanguages
	// SourceLanguage is the single preferred language.
	SourceLanguage
	// SourceUserLanguage is the legacy user language field.
	SourceUserLanguage
)

func (s Source) String() string {
	switch s {
	case SourceLanguages:
		return "languages"
	case SourceLanguage:
		return "language"
	case SourceUserLanguage:
		return "userLanguage"
	default:
		return "none"
	}
}

// Option configures a Detector.
type Option func(*Detector)

// WithLogger sets the logger used to report which signal won.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Detector) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// discardLogger is shared by every Detector created without WithLogger.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Detector reads the preferred locale from an Environment. It keeps no state
// between calls and is safe for concurrent use.
type Detector struct {
	env    Environment
	logger *slog.Logger
}

// New creates a Detector over env.
func New(env Environment, opts ...Option) *Detector {
	d := &Detector{
		env:    env,
		logger: discardLogger,
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// DetectLocale returns the best available locale signal, or "" if there is none.
func (d *Detector) DetectLocale() string {
	locale, _ := d.Detect()
	return locale
}

// Detect is DetectLocale that also reports the signal the value came from.
//
// Precedence: the first entry of a non-empty Languages list, then a non-empty
// Language, then UserLanguage. UserLanguage is returned as-is, so an empty
// value there yields "" with SourceNone.
func (d *Detector) Detect() (string, Source) {
	if d == nil || d.env == nil {
		return "", SourceNone
	}

	locale, source := "", SourceNone
	if langs := d.env.Languages(); len(langs) > 0 {
		locale, source = langs[0], SourceLanguages
	} else if lang := d.env.Language(); lang != "" {
		locale, source = lang, SourceLanguage
	} else if lang := d.env.UserLanguage(); lang != "" {
		locale, source = lang, SourceUserLanguage
	}

	d.logger.Debug("locale detected", "locale", locale, "source", source.String())

	return locale, source
}

// DetectLocale is a shorthand for New(env).DetectLocale().
func DetectLocale(env Environment) string {
	return New(env).DetectLocale()
}
