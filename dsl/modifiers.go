package dsl

import (
	godec "github.com/reoring/godec"
)

// Map transforms a decoder's success value through f. Failures propagate
// unchanged; Map never fails on its own account.
func Map[A, B any](d godec.Decoder[A], f func(A) B) godec.Decoder[B] {
	return godec.NewDecoder(func(v godec.Value) godec.Result[B] {
		return godec.MapResult(d.Decode(v), f)
	})
}

// Then chains decoding decisions: on success, f picks the next decoder from
// the decoded value, and that decoder is applied to the original raw input,
// not to the intermediate value. This is the two-phase pattern for
// discriminated unions: decode the tag field first, then dispatch on it.
func Then[A, B any](d godec.Decoder[A], f func(A) godec.Decoder[B]) godec.Decoder[B] {
	return godec.NewDecoder(func(v godec.Value) godec.Result[B] {
		r := d.Decode(v)
		if !r.IsOk() {
			return godec.Err[B](r.Message())
		}
		return f(r.Value()).Decode(v)
	})
}

// Failover runs d and replaces any failure with defaultValue. It never fails;
// the inner message is discarded entirely.
func Failover[T any](defaultValue T, d godec.Decoder[T]) godec.Decoder[T] {
	return godec.NewDecoder(func(v godec.Value) godec.Result[T] {
		if r := d.Decode(v); r.IsOk() {
			return r
		}
		return godec.Ok(defaultValue)
	})
}

// Optional succeeds with nil when the input is null or absent, without
// invoking d; otherwise it delegates to d and propagates its result
// unchanged. Unlike Failover, a present-but-malformed value still fails, so
// "intentionally missing" stays distinguishable from "broken".
func Optional[T any](d godec.Decoder[T]) godec.Decoder[*T] {
	return godec.NewDecoder(func(v godec.Value) godec.Result[*T] {
		switch v.Kind() {
		case godec.KindNull, godec.KindUndefined:
			return godec.Ok[*T](nil)
		}
		return godec.MapResult(d.Decode(v), func(t T) *T { return &t })
	})
}

// Lazy defers decoder construction to decode time: build runs on every
// decode call instead of once at definition time. This breaks the
// definition-order cycle of self-referential shapes, e.g. a tree node whose
// children are tree nodes.
func Lazy[T any](build func() godec.Decoder[T]) godec.Decoder[T] {
	return godec.NewDecoder(func(v godec.Value) godec.Result[T] {
		return build().Decode(v)
	})
}

// IsNull succeeds with defaultValue only when the input is an explicit null.
func IsNull[T any](defaultValue T) godec.Decoder[T] {
	return godec.NewDecoder(func(v godec.Value) godec.Result[T] {
		if v.Kind() != godec.KindNull {
			return godec.Err[T](godec.NullError(v))
		}
		return godec.Ok(defaultValue)
	})
}

// IsUndefined succeeds with defaultValue only when the input is the absent
// sentinel.
func IsUndefined[T any](defaultValue T) godec.Decoder[T] {
	return godec.NewDecoder(func(v godec.Value) godec.Result[T] {
		if v.Kind() != godec.KindUndefined {
			return godec.Err[T](godec.UndefinedError(v))
		}
		return godec.Ok(defaultValue)
	})
}

// IsExactly succeeds with want only when the input is strictly identical to
// it: primitive identity, not structural equality.
func IsExactly[T comparable](want T) godec.Decoder[T] {
	expected := godec.FromGo(want)
	return godec.NewDecoder(func(v godec.Value) godec.Result[T] {
		if !v.StrictEqual(expected) {
			return godec.Err[T](godec.ExactlyError(v, expected))
		}
		return godec.Ok(want)
	})
}

// Constant unconditionally succeeds with value, ignoring the input.
func Constant[T any](value T) godec.Decoder[T] {
	return godec.NewDecoder(func(godec.Value) godec.Result[T] {
		return godec.Ok(value)
	})
}

// Succeed unconditionally succeeds with the input unchanged: the identity
// decoder, an escape hatch for "accept anything and pass it through".
func Succeed() godec.Decoder[godec.Value] {
	return godec.NewDecoder(func(v godec.Value) godec.Result[godec.Value] {
		return godec.Ok(v)
	})
}

// Fail unconditionally fails with msg, ignoring the input.
func Fail[T any](msg string) godec.Decoder[T] {
	return godec.NewDecoder(func(godec.Value) godec.Result[T] {
		return godec.Err[T](msg)
	})
}
