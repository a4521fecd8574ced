// Package vars defines the ordered variable context that drives template
// rendering and the resolver that loads it from JSON or YAML sources.
package vars

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Pair is a single context entry. Values are whatever the source document
// declared: strings, numbers, booleans, nested maps or sequences.
type Pair struct {
	Key   string
	Value any
}

// Context is an ordered mapping from variable names to values. Iteration
// order is the insertion order of the source document; an unordered map is
// never used as the backing store so prompt and render order stay
// deterministic across runs.
type Context struct {
	pairs []Pair
	index map[string]int
}

// New returns an empty Context.
func New() *Context {
	return &Context{index: make(map[string]int)}
}

// FromPairs builds a Context from pairs in order. Later duplicates replace
// earlier values while keeping the original position.
func FromPairs(pairs []Pair) *Context {
	c := New()
	for _, p := range pairs {
		c.Set(p.Key, p.Value)
	}
	return c
}

// Set inserts or replaces the value for key. A replaced key keeps its
// original position; a new key appends.
func (c *Context) Set(key string, value any) {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	if i, ok := c.index[key]; ok {
		c.pairs[i].Value = value
		return
	}
	c.index[key] = len(c.pairs)
	c.pairs = append(c.pairs, Pair{Key: key, Value: value})
}

// Get returns the value for key and whether it exists.
func (c *Context) Get(key string) (any, bool) {
	if c == nil || c.index == nil {
		return nil, false
	}
	i, ok := c.index[key]
	if !ok {
		return nil, false
	}
	return c.pairs[i].Value, true
}

// Has reports whether key is present.
func (c *Context) Has(key string) bool {
	_, ok := c.Get(key)
	return ok
}

// Len returns the number of entries.
func (c *Context) Len() int {
	if c == nil {
		return 0
	}
	return len(c.pairs)
}

// Keys returns the keys in insertion order.
func (c *Context) Keys() []string {
	if c == nil {
		return nil
	}
	keys := make([]string, len(c.pairs))
	for i, p := range c.pairs {
		keys[i] = p.Key
	}
	return keys
}

// Pairs returns a copy of the entries in insertion order.
func (c *Context) Pairs() []Pair {
	if c == nil {
		return nil
	}
	out := make([]Pair, len(c.pairs))
	copy(out, c.pairs)
	return out
}

// Overlay applies a shallow per-key overwrite on top of c. Nested structures
// are replaced wholesale, never merged. Keys new to c are appended in the
// order the overlay yields them.
func (c *Context) Overlay(overlay *Context) {
	if overlay == nil {
		return
	}
	for _, p := range overlay.pairs {
		c.Set(p.Key, p.Value)
	}
}

// Map flattens the context into a plain map for handoff to the render
// engine. Ordering is irrelevant at that boundary; the engine looks
// variables up by name.
func (c *Context) Map() map[string]any {
	out := make(map[string]any, c.Len())
	for _, p := range c.Pairs() {
		out[p.Key] = p.Value
	}
	return out
}

// MarshalJSON encodes the context as a JSON object preserving key order,
// so previews round-trip the authored layout.
func (c *Context) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range c.pairs {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(p.Key)
		if err != nil {
			return nil, fmt.Errorf("vars: marshal key %q: %w", p.Key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(p.Value)
		if err != nil {
			return nil, fmt.Errorf("vars: marshal value for %q: %w", p.Key, err)
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
