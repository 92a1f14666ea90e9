package dsl

import (
	godec "github.com/reoring/godec"
)

// AnyDecoder adapts a strongly typed Decoder[T] to an any-typed wrapper so
// object builders can hold fields of differing target types in one ordered
// collection. It keeps the original decoder for advanced integrations.
type AnyDecoder struct {
	decode func(godec.Value) godec.Result[any]
	orig   any
}

// Of wraps a Decoder[T] as an AnyDecoder for Field builders.
func Of[T any](d godec.Decoder[T]) AnyDecoder {
	return AnyDecoder{
		decode: func(v godec.Value) godec.Result[any] {
			return godec.MapResult(d.Decode(v), func(t T) any { return t })
		},
		orig: d,
	}
}

// Orig returns the original Decoder[T] wrapped by this adapter.
func (ad AnyDecoder) Orig() any { return ad.orig }

// StringOf is shorthand for Of(String()).
func StringOf() AnyDecoder { return Of(String()) }

// NumberOf is shorthand for Of(Number()).
func NumberOf() AnyDecoder { return Of(Number()) }

// BooleanOf is shorthand for Of(Boolean()).
func BooleanOf() AnyDecoder { return Of(Boolean()) }

// ArrayOf is shorthand for Of(Array(name, elem)).
func ArrayOf[T any](name string, elem godec.Decoder[T]) AnyDecoder {
	return Of(Array(name, elem))
}

// DictionaryOf is shorthand for Of(Dictionary(name, val)).
func DictionaryOf[T any](name string, val godec.Decoder[T]) AnyDecoder {
	return Of(Dictionary(name, val))
}
