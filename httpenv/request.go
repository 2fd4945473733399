// Package httpenv adapts an incoming HTTP request to a navlocale.Environment,
// for servers that pick a translation bundle per request.
package httpenv

import (
	"net/http"
	"sort"
	"strings"

	"golang.org/x/text/language"

	"github.com/napalu/navlocale"
)

// Request exposes the language signals of one HTTP request:
//
//   - Languages: the Accept-Language header, highest quality first
//   - Language: the cookie named by Config.Cookie
//   - UserLanguage: the header named by Config.Header
type Request struct {
	r   *http.Request
	cfg Config
}

// FromRequest wraps r. Signals whose name is empty in cfg are never read.
func FromRequest(r *http.Request, cfg Config) *Request {
	return &Request{r: r, cfg: cfg}
}

// Languages returns the Accept-Language tags in preference order, each
// exactly as the client wrote it. Entries with a zero weight and the "*"
// wildcard are left out. A header with a malformed weight yields nil.
func (req *Request) Languages() []string {
	if req.r == nil {
		return nil
	}
	header := req.r.Header.Get("Accept-Language")
	if header == "" {
		return nil
	}

	type entry struct {
		tag    string
		weight float32
	}
	var entries []entry
	for _, field := range strings.Split(header, ",") {
		tag, params, _ := strings.Cut(field, ";")
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		weight, err := acceptWeight(params)
		if err != nil {
			return nil
		}
		if weight <= 0 || tag == "*" {
			continue
		}
		entries = append(entries, entry{tag: tag, weight: weight})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].weight > entries[j].weight
	})

	var langs []string
	for _, e := range entries {
		langs = append(langs, e.tag)
	}

	return langs
}

// acceptWeight reads the q parameter of one Accept-Language entry. The tag
// itself is never handed to x/text, so it cannot be rewritten or rejected.
func acceptWeight(params string) (float32, error) {
	params = strings.TrimSpace(params)
	if params == "" {
		return 1, nil
	}
	_, weights, err := language.ParseAcceptLanguage("und;" + params)
	if err != nil {
		return 0, err
	}
	if len(weights) == 0 {
		// x/text drops q=0 entries
		return 0, nil
	}

	return weights[0], nil
}

func (req *Request) Language() string {
	if req.r == nil || req.cfg.Cookie == "" {
		return ""
	}
	c, err := req.r.Cookie(req.cfg.Cookie)
	if err != nil {
		return ""
	}

	return c.Value
}

func (req *Request) UserLanguage() string {
	if req.r == nil || req.cfg.Header == "" {
		return ""
	}
	return req.r.Header.Get(req.cfg.Header)
}

var _ navlocale.Environment = (*Request)(nil)
