package env

import "os"

// Resolver defines an interface for environment resolution.
type Resolver interface {
	// Get returns the value of the environment variable named by the key.
	// It returns an empty string if the variable is not present.
	Get(key string) string
}

// OSResolver is the default implementation of the Resolver interface
// that reads the process environment using the os package.
type OSResolver struct{}

// Get returns the value of the environment variable associated with the given key.
func (OSResolver) Get(key string) string {
	return os.Getenv(key)
}

// MapResolver resolves variables from a fixed map. Missing keys resolve to "".
type MapResolver map[string]string

func (m MapResolver) Get(key string) string {
	return m[key]
}

type overlay struct {
	base      Resolver
	overrides map[string]string
}

// Overlay returns a Resolver that answers from overrides first and falls back
// to base for every other key. A key present in overrides with an empty value
// hides the base value.
func Overlay(base Resolver, overrides map[string]string) Resolver {
	if base == nil {
		base = OSResolver{}
	}
	return &overlay{base: base, overrides: overrides}
}

func (o *overlay) Get(key string) string {
	if v, ok := o.overrides[key]; ok {
		return v
	}
	return o.base.Get(key)
}
