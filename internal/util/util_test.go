package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetenv(t *testing.T) {
	t.Setenv("UTIL_TEST_INT", "42")
	t.Setenv("UTIL_TEST_BAD_INT", "forty-two")
	t.Setenv("UTIL_TEST_DURATION", "80ms")

	assert.Equal(t, 42, Getenv("UTIL_TEST_INT", 7))
	assert.Equal(t, 7, Getenv("UTIL_TEST_BAD_INT", 7))
	assert.Equal(t, 7, Getenv("UTIL_TEST_UNSET_INT", 7))
	assert.Equal(t, 80*time.Millisecond, Getenv("UTIL_TEST_DURATION", time.Second))
}

func TestGetenvFrom(t *testing.T) {
	lookup := MapLookup(map[string]string{
		"TEXT":  "  Ana ",
		"EMPTY": "",
		"BOOL":  "TRUE",
		"LIST":  "a, b,c",
	})

	assert.Equal(t, "  Ana ", GetenvFrom(lookup, "TEXT", "none"))
	assert.Equal(t, "", GetenvFrom(lookup, "EMPTY", "none"))
	assert.Equal(t, "none", GetenvFrom(lookup, "MISSING", "none"))
	assert.True(t, GetenvFrom(lookup, "BOOL", false))
	assert.Equal(t, []string{"a", "b", "c"}, GetenvFrom(lookup, "LIST", []string(nil)))
}

func TestChain(t *testing.T) {
	first := MapLookup(map[string]string{"A": "first", "EMPTY": ""})
	second := MapLookup(map[string]string{"A": "second", "B": "second", "EMPTY": "second"})

	tests := []struct {
		name   string
		key    string
		want   string
		wantOk bool
	}{
		{name: "first wins", key: "A", want: "first", wantOk: true},
		{name: "falls through", key: "B", want: "second", wantOk: true},
		{name: "empty value still wins", key: "EMPTY", want: "", wantOk: true},
		{name: "missing everywhere", key: "C", want: "", wantOk: false},
	}
	chain := Chain(first, nil, second)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := chain(tt.key)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOk, ok)
		})
	}
}

func TestChainEmpty(t *testing.T) {
	_, ok := Chain()("ANYTHING")
	assert.False(t, ok)
}
