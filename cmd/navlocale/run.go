package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"al.essio.dev/pkg/shellescape"
	"github.com/google/shlex"
	"github.com/iancoleman/strcase"
	"github.com/napalu/goopt/v2"
	"github.com/tidwall/sjson"

	"github.com/napalu/navlocale"
	"github.com/napalu/navlocale/env"
	"github.com/napalu/navlocale/host"
)

var errNoAssignment = errors.New("expected KEY=VALUE")

// run parses args, detects the locale and writes it to stdout. It returns the
// process exit code. An empty result is not an error.
func run(args []string, resolver env.Resolver, stdout, stderr io.Writer, isTerminal func() bool) int {
	opts := &Options{}

	parser, err := goopt.NewParserFromStruct(opts, goopt.WithVersion(version))
	if err != nil {
		fmt.Fprintf(stderr, "Error creating parser: %v\n", err)
		return 1
	}

	if !parser.Parse(args) {
		for _, err := range parser.GetErrors() {
			fmt.Fprintln(stderr, err)
		}
		parser.PrintUsage(stderr)
		return 1
	}
	if parser.WasHelpShown() {
		return 0
	}

	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	environment, err := buildEnvironment(opts, resolver)
	if err != nil {
		logger.Error("invalid options", "error", err)
		return 1
	}

	locale, source := navlocale.New(environment, navlocale.WithLogger(logger)).Detect()

	switch opts.Format {
	case formatText:
		fmt.Fprintln(stdout, locale)
		if locale == "" && isTerminal != nil && isTerminal() {
			fmt.Fprintln(stderr, "no locale signal found")
		}
	case formatJSON:
		out, err := renderJSON(environment, locale, source)
		if err != nil {
			logger.Error("render json", "error", err)
			return 1
		}
		fmt.Fprintln(stdout, out)
	case formatShell:
		fmt.Fprint(stdout, renderShell(environment, locale, source))
	default:
		logger.Error("invalid options", "error", fmt.Errorf("unknown format %q", opts.Format))
		return 1
	}

	return 0
}

func buildEnvironment(opts *Options, resolver env.Resolver) (navlocale.Environment, error) {
	switch opts.Source {
	case sourceHost:
		if opts.Env == "" {
			return host.NewProcess(resolver), nil
		}
		overrides, err := parseAssignments(opts.Env)
		if err != nil {
			return nil, fmt.Errorf("--env: %w", err)
		}
		return host.NewProcess(env.Overlay(resolver, overrides)), nil
	case sourceStatic:
		return navlocale.Static{List: opts.List, Preferred: opts.Preferred, Legacy: opts.Legacy}, nil
	default:
		return nil, fmt.Errorf("unknown source %q", opts.Source)
	}
}

// parseAssignments splits s like a shell would and reads each word as KEY=VALUE.
func parseAssignments(s string) (map[string]string, error) {
	words, err := shlex.Split(s)
	if err != nil {
		return nil, err
	}

	vars := make(map[string]string, len(words))
	for _, word := range words {
		key, value, ok := strings.Cut(word, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%q: %w", word, errNoAssignment)
		}
		vars[key] = value
	}

	return vars, nil
}

func renderJSON(environment navlocale.Environment, locale string, source navlocale.Source) (string, error) {
	langs := environment.Languages()
	if langs == nil {
		langs = []string{}
	}

	out, err := sjson.Set("", "locale", locale)
	if err != nil {
		return "", err
	}
	for _, field := range []struct {
		path  string
		value interface{}
	}{
		{"source", source.String()},
		{"signals.languages", langs},
		{"signals.language", environment.Language()},
		{"signals.userLanguage", environment.UserLanguage()},
	} {
		if out, err = sjson.Set(out, field.path, field.value); err != nil {
			return "", err
		}
	}

	return out, nil
}

func renderShell(environment navlocale.Environment, locale string, source navlocale.Source) string {
	var b strings.Builder
	write := func(name, value string) {
		fmt.Fprintf(&b, "%s=%s\n", strcase.ToScreamingSnake("navlocale "+name), shellescape.Quote(value))
	}

	write("locale", locale)
	write("source", source.String())
	write(navlocale.SourceLanguages.String(), strings.Join(environment.Languages(), ":"))
	write(navlocale.SourceLanguage.String(), environment.Language())
	write(navlocale.SourceUserLanguage.String(), environment.UserLanguage())

	return b.String()
}
