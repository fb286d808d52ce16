//go:build unit || e2e

package testutil

import (
	"net/url"
)

// URL builds path?query from a base set of parameters and optional mutations.
func URL(path string, base map[string]string, muts ...func(url.Values)) string {
	v := url.Values{}
	for k, val := range base {
		v.Set(k, val)
	}
	for _, f := range muts {
		f(v)
	}
	if len(v) == 0 {
		return path
	}
	return path + "?" + v.Encode()
}

// Param sets a query parameter. An empty value removes it.
func Param(key, value string) func(url.Values) {
	return func(v url.Values) {
		if value == "" {
			v.Del(key)
		} else {
			v.Set(key, value)
		}
	}
}
