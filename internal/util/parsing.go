package util

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

type StringParsable interface {
	string | []string | int | []int | bool | time.Duration | []time.Duration
}

var ErrNotBool = errors.New("not a canonical boolean")

// ParseBool accepts only "true" and "false", ignoring ASCII case.
// Surrounding whitespace, "1", "t", "yes" and friends are rejected.
func ParseBool(s string) (bool, error) {
	switch {
	case strings.EqualFold(s, "true"):
		return true, nil
	case strings.EqualFold(s, "false"):
		return false, nil
	}
	return false, fmt.Errorf("%q: %w", s, ErrNotBool)
}

func envVarStringSplitter(s string) []string {
	parts := strings.Split(s, ",")
	v := make([]string, 0, len(parts))
	for _, p := range parts {
		v = append(v, strings.TrimSpace(p))
	}
	return v
}

func envSliceTypeParser[T StringParsable](s string, f func(string) (T, error)) ([]T, error) {
	parts := envVarStringSplitter(s)
	v := make([]T, 0, len(parts))
	for _, p := range parts {
		v2, err := f(p)
		if err != nil {
			return v, err
		}
		v = append(v, v2)
	}
	return v, nil
}

// TryParseStringAs parses v as the type of def. The value is used verbatim:
// no trimming and no unquoting, except that slice elements are trimmed
// after splitting on commas.
func TryParseStringAs[T StringParsable](v string, def T) (T, error) {
	var parser func(string) (any, error)
	switch any(def).(type) {
	case string:
		parser = func(s string) (any, error) { return s, nil }
	case []string:
		parser = func(s string) (any, error) {
			return envSliceTypeParser(s, func(s string) (string, error) { return s, nil })
		}
	case int:
		parser = func(s string) (any, error) { return strconv.Atoi(s) }
	case []int:
		parser = func(s string) (any, error) {
			return envSliceTypeParser(s, strconv.Atoi)
		}
	case bool:
		parser = func(s string) (any, error) { return ParseBool(s) }
	case time.Duration:
		parser = func(s string) (any, error) { return time.ParseDuration(s) }
	case []time.Duration:
		parser = func(s string) (any, error) {
			return envSliceTypeParser(s, time.ParseDuration)
		}
	default:
		panic("ParseStringAs got a type we can't handle")
	}

	val, err := parser(v)
	if err != nil {
		return def, err
	}
	return val.(T), nil
}

// ParseStringAs parses the input string as a StringParsable type, returning the default
// if an error occurs. It will panic if the type from StringParsable is not implemented.
func ParseStringAs[T StringParsable](v string, def T) T {
	val, err := TryParseStringAs(v, def)
	if err != nil {
		return def
	}
	return val
}
