package dsl

import (
	"fmt"

	godec "github.com/reoring/godec"
)

type field struct {
	name    string
	jsonKey string // non-empty when the field reads a differently named source key
	dec     AnyDecoder
}

// ObjectBuilder accumulates the field configuration of an object decoder.
// Fields are held in declaration order; the decoder iterates them in that
// order, never in the input's own key order, so failure messages are
// deterministic.
type ObjectBuilder struct {
	name   string
	strict bool
	fields []field
	index  map[string]int
}

// Object creates a builder for an object decoder with the given name. The
// name appears only in error text. Unknown input keys are silently dropped.
func Object(name string) *ObjectBuilder {
	return &ObjectBuilder{name: name, index: map[string]int{}}
}

// ObjectStrict creates a builder for a strict object decoder: any input key
// that is not a configured field fails the decode before any field is
// attempted. Strict builders do not support key mapping.
func ObjectStrict(name string) *ObjectBuilder {
	return &ObjectBuilder{name: name, strict: true, index: map[string]int{}}
}

// Field registers a field decoded from the source key of the same name.
// Redeclaring a field overwrites it in place, keeping its original position.
func (b *ObjectBuilder) Field(name string, d AnyDecoder) *ObjectBuilder {
	return b.add(field{name: name, dec: d})
}

// FieldFrom registers a field decoded from a differently named source key.
// Failures for such a field carry both the target field name and the source
// key in their message.
func (b *ObjectBuilder) FieldFrom(name, jsonKey string, d AnyDecoder) *ObjectBuilder {
	return b.add(field{name: name, jsonKey: jsonKey, dec: d})
}

func (b *ObjectBuilder) add(f field) *ObjectBuilder {
	if i, ok := b.index[f.name]; ok {
		b.fields[i] = f
		return b
	}
	b.index[f.name] = len(b.fields)
	b.fields = append(b.fields, f)
	return b
}

// Build validates the configuration and returns the object decoder. The
// decoder snapshots the field list, so the builder may be reused or extended
// afterwards without affecting decoders already built.
func (b *ObjectBuilder) Build() (godec.Decoder[map[string]any], error) {
	if b.strict {
		for _, f := range b.fields {
			if f.jsonKey != "" {
				return godec.Decoder[map[string]any]{}, fmt.Errorf(
					"dsl: strict object %q cannot map field %q from JSON key %q", b.name, f.name, f.jsonKey)
			}
		}
	}
	name := b.name
	strict := b.strict
	fields := make([]field, len(b.fields))
	copy(fields, b.fields)
	known := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		known[f.name] = struct{}{}
	}
	return godec.NewDecoder(func(v godec.Value) godec.Result[map[string]any] {
		if v.Kind() != godec.KindObject {
			return godec.Err[map[string]any](godec.PrimitiveError(v, name))
		}
		if strict {
			for _, e := range v.Entries() {
				if _, ok := known[e.Key]; !ok {
					return godec.Err[map[string]any](godec.ObjectStrictUnknownKeyError(name, e.Key))
				}
			}
		}
		out := make(map[string]any, len(fields))
		for _, f := range fields {
			src := f.name
			if f.jsonKey != "" {
				src = f.jsonKey
			}
			r := f.dec.decode(v.Get(src))
			if !r.IsOk() {
				if f.jsonKey != "" {
					return godec.Err[map[string]any](godec.ObjectJSONKeyError(name, f.name, f.jsonKey, r.Message()))
				}
				return godec.Err[map[string]any](godec.ObjectError(name, f.name, r.Message()))
			}
			out[f.name] = r.Value()
		}
		return godec.Ok(out)
	}), nil
}

// MustBuild is like Build but panics on configuration errors.
func (b *ObjectBuilder) MustBuild() godec.Decoder[map[string]any] {
	d, err := b.Build()
	if err != nil {
		panic(err)
	}
	return d
}
