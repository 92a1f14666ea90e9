package dsl

import (
	godec "github.com/reoring/godec"
)

// OneOf tries each candidate decoder in order against the same input and
// returns the first success. Order the candidates from most to least
// specific; it is the only disambiguator. When every candidate fails the
// individual messages are discarded in favor of one generic message naming
// the decoder and the offending input.
func OneOf[T any](name string, candidates ...godec.Decoder[T]) godec.Decoder[T] {
	return godec.NewDecoder(func(v godec.Value) godec.Result[T] {
		for _, c := range candidates {
			if r := c.Decode(v); r.IsOk() {
				return r
			}
		}
		return godec.Err[T](godec.OneOfError(name, v))
	})
}

// AllOf pipes two decoders: the raw input feeds first, and first's success
// value re-enters as the input of second. A stage failure propagates
// verbatim, with no extra wrapping. Longer pipelines nest:
// AllOf(AllOf(a, b), c).
func AllOf[A, B any](first godec.Decoder[A], second godec.Decoder[B]) godec.Decoder[B] {
	return godec.NewDecoder(func(v godec.Value) godec.Result[B] {
		r := first.Decode(v)
		if !r.IsOk() {
			return godec.Err[B](r.Message())
		}
		return second.Decode(godec.FromGo(r.Value()))
	})
}

// AllOfSame is the homogeneous pipeline: each decoder's success value feeds
// the next decoder of the same target type.
func AllOfSame[T any](first godec.Decoder[T], rest ...godec.Decoder[T]) godec.Decoder[T] {
	return godec.NewDecoder(func(v godec.Value) godec.Result[T] {
		r := first.Decode(v)
		for _, d := range rest {
			if !r.IsOk() {
				return r
			}
			r = d.Decode(godec.FromGo(r.Value()))
		}
		return r
	})
}
