package feature

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Vector is a fixed-schema mapping from feature names to non-negative values.
// Every schema key is present in every vector; a feature absent from the source
// yields 0, never an absent key. Keys keep schema order so vectors from different
// documents are directly comparable.
type Vector struct {
	keys   []string
	values map[string]int
}

// Get returns the value for name, or 0 when the key is absent. Missing keys read
// as zero so extended or partial schemas stay usable downstream.
func (v Vector) Get(name string) int {
	return v.values[name]
}

// Has reports whether name is part of this vector's schema.
func (v Vector) Has(name string) bool {
	_, ok := v.values[name]
	return ok
}

// Keys returns the feature names in schema order. The caller must not mutate
// the returned slice.
func (v Vector) Keys() []string { return v.keys }

// Len returns the number of features in the vector.
func (v Vector) Len() int { return len(v.keys) }

// MarshalJSON emits the vector as a JSON object in schema order.
func (v Vector) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range v.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		fmt.Fprintf(&buf, ":%d", v.values[k])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON restores a vector from a JSON object. Known keys keep default
// schema order; unknown keys follow in sorted order.
func (v *Vector) UnmarshalJSON(data []byte) error {
	var values map[string]int
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	*v = VectorOf(values)
	return nil
}

// Align reorders v's keys to follow defs: schema keys first in definition
// order, remaining keys sorted after. Values are unchanged. Restores canonical
// order for vectors reassembled from stored JSON under a non-default schema.
func (v Vector) Align(defs []Definition) Vector {
	keys := make([]string, 0, len(v.keys))
	seen := make(map[string]bool, len(v.keys))
	for _, def := range defs {
		if _, ok := v.values[def.Name]; ok {
			keys = append(keys, def.Name)
			seen[def.Name] = true
		}
	}
	var extra []string
	for k := range v.values {
		if !seen[k] {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	keys = append(keys, extra...)
	return Vector{keys: keys, values: v.values}
}

// VectorOf builds a vector over the given values, ordering known keys by the
// default schema and appending any extra keys sorted by name. Intended for
// callers reassembling vectors from stored or extended schemas.
func VectorOf(values map[string]int) Vector {
	m := make(map[string]int, len(values))
	for k, val := range values {
		m[k] = val
	}
	keys := make([]string, 0, len(m))
	seen := make(map[string]bool, len(m))
	for _, def := range Schema(DefaultKeywords) {
		if _, ok := m[def.Name]; ok {
			keys = append(keys, def.Name)
			seen[def.Name] = true
		}
	}
	var extra []string
	for k := range m {
		if !seen[k] {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	keys = append(keys, extra...)
	return Vector{keys: keys, values: m}
}
