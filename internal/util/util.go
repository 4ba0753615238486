package util

import (
	"os"
)

// Lookup reports the value of key and whether it was present.
type Lookup func(key string) (string, bool)

// OSLookup reads the process environment.
var OSLookup Lookup = os.LookupEnv

func MapLookup(m map[string]string) Lookup {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

// Chain returns a Lookup that asks each lookup in order and stops at the first
// one that has the key. A present but empty value still wins.
func Chain(lookups ...Lookup) Lookup {
	return func(key string) (string, bool) {
		for _, l := range lookups {
			if l == nil {
				continue
			}
			if v, ok := l(key); ok {
				return v, true
			}
		}
		return "", false
	}
}

func Getenv[T StringParsable](key string, def T) T {
	return GetenvFrom(OSLookup, key, def)
}

func GetenvFrom[T StringParsable](lookup Lookup, key string, def T) T {
	v, ok := lookup(key)
	if !ok {
		return def
	}
	return ParseStringAs(v, def)
}
