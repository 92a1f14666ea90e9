package dsl

import (
	godec "github.com/reoring/godec"
)

// Array returns a decoder for arrays whose elements all decode with elem.
// Elements are decoded in index order and the first failure short-circuits
// the whole decode; later elements are never evaluated. name appears only in
// error text.
func Array[T any](name string, elem godec.Decoder[T]) godec.Decoder[[]T] {
	return godec.NewDecoder(func(v godec.Value) godec.Result[[]T] {
		if v.Kind() != godec.KindArray {
			return godec.Err[[]T](godec.PrimitiveError(v, "array"))
		}
		out := make([]T, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			r := elem.Decode(v.Index(i))
			if !r.IsOk() {
				return godec.Err[[]T](godec.ArrayError(name, i, r.Message()))
			}
			out = append(out, r.Value())
		}
		return godec.Ok(out)
	})
}

// Dictionary returns a decoder for objects whose values all decode with val:
// a map with arbitrary keys. Heterogeneous value types need a OneOf as the
// value decoder. Entries are decoded in input insertion order and the first
// failure short-circuits.
func Dictionary[T any](name string, val godec.Decoder[T]) godec.Decoder[map[string]T] {
	return godec.NewDecoder(func(v godec.Value) godec.Result[map[string]T] {
		if v.Kind() != godec.KindObject {
			return godec.Err[map[string]T](godec.PrimitiveError(v, "dictionary"))
		}
		out := make(map[string]T, v.Len())
		for _, e := range v.Entries() {
			r := val.Decode(e.Value)
			if !r.IsOk() {
				return godec.Err[map[string]T](godec.DictionaryError(name, e.Key, r.Message()))
			}
			out[e.Key] = r.Value()
		}
		return godec.Ok(out)
	})
}
