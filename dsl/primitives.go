package dsl

import (
	"encoding/json"

	godec "github.com/reoring/godec"
)

// String returns the string primitive decoder. Any other kind, including null
// and the absent sentinel, fails with a primitive error.
func String() godec.Decoder[string] {
	return godec.NewDecoder(func(v godec.Value) godec.Result[string] {
		if v.Kind() != godec.KindString {
			return godec.Err[string](godec.PrimitiveError(v, "string"))
		}
		return godec.Ok(v.Str())
	})
}

// Number returns the float64 primitive decoder.
func Number() godec.Decoder[float64] {
	return godec.NewDecoder(func(v godec.Value) godec.Result[float64] {
		if v.Kind() != godec.KindNumber {
			return godec.Err[float64](godec.PrimitiveError(v, "number"))
		}
		return godec.Ok(v.Float64())
	})
}

// NumberJSON returns a number decoder that preserves the source literal as a
// json.Number instead of converting to float64.
func NumberJSON() godec.Decoder[json.Number] {
	return godec.NewDecoder(func(v godec.Value) godec.Result[json.Number] {
		if v.Kind() != godec.KindNumber {
			return godec.Err[json.Number](godec.PrimitiveError(v, "number"))
		}
		return godec.Ok(v.Number())
	})
}

// Boolean returns the boolean primitive decoder.
func Boolean() godec.Decoder[bool] {
	return godec.NewDecoder(func(v godec.Value) godec.Result[bool] {
		if v.Kind() != godec.KindBool {
			return godec.Err[bool](godec.PrimitiveError(v, "boolean"))
		}
		return godec.Ok(v.Bool())
	})
}
