// Package resolver maps environment variable names to typed values. Lookups never
// fail: an unset variable and a value that cannot be parsed both resolve to the
// default for the requested kind.
package resolver

import (
	"strconv"

	"github.com/scheerer/hello-formula/internal/util"
)

// DefaultText is returned for unset text and list variables.
const DefaultText = "none"

type Kind int

const (
	Text Kind = iota
	Boolean
	List
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Boolean:
		return "boolean"
	case List:
		return "list"
	default:
		return "unknown"
	}
}

// Ref names a variable and the kind it should resolve to.
type Ref struct {
	Name string
	Kind Kind
}

type Status int

const (
	Set Status = iota
	Unset
	Invalid
)

func (s Status) String() string {
	switch s {
	case Set:
		return "set"
	case Unset:
		return "unset"
	case Invalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Resolution is the outcome of resolving a Ref. Value holds the resolved value
// rendered as a string.
type Resolution struct {
	Ref    Ref
	Value  string
	Status Status
}

// Defaulted reports whether the default was substituted.
func (r Resolution) Defaulted() bool {
	return r.Status != Set
}

type Resolver struct {
	lookup util.Lookup
}

// New returns a Resolver reading from lookup. A nil lookup resolves every
// name to its default.
func New(lookup util.Lookup) *Resolver {
	if lookup == nil {
		lookup = util.MapLookup(nil)
	}
	return &Resolver{lookup: lookup}
}

func (r *Resolver) Text(name string) string {
	return util.GetenvFrom(r.lookup, name, DefaultText)
}

func (r *Resolver) Boolean(name string) bool {
	return util.GetenvFrom(r.lookup, name, false)
}

// List returns the raw delimited string; it is not split.
func (r *Resolver) List(name string) string {
	return util.GetenvFrom(r.lookup, name, DefaultText)
}

// Describe resolves ref like the typed accessors do, and also reports whether
// the variable was set, unset, or set to something unparsable.
func (r *Resolver) Describe(ref Ref) Resolution {
	res := Resolution{Ref: ref, Status: Set}
	raw, ok := r.lookup(ref.Name)
	if !ok {
		res.Status = Unset
	}

	switch ref.Kind {
	case Boolean:
		b := false
		if ok {
			var err error
			if b, err = util.TryParseStringAs(raw, false); err != nil {
				res.Status = Invalid
			}
		}
		res.Value = strconv.FormatBool(b)
	default:
		res.Value = DefaultText
		if ok {
			res.Value = raw
		}
	}
	return res
}
