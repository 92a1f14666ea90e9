package godec

// Package godec decodes loosely-typed JSON-like values into strongly typed Go
// values through composable decoders, and reports failures as finished,
// human-readable messages that pinpoint where in the input the decode broke.
//
// godec provides:
//
// - Result[T], the success/failure outcome of a decode evaluation
// - Value, a closed union over decoded-but-untyped JSON data (objects keep key order)
// - Decoder[T], an immutable evaluation capability built once and reused freely
// - A pluggable input Driver SPI (go-json by default, YAML under source/yaml)
//
// Design policy:
// - Keep only public APIs in the root package; combinators live under dsl/.
// - Decoders are pure values: build the tree ahead of time, share it across
//   goroutines, apply it to many inputs.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	user := dsl.Object("User").
//		Field("firstname", dsl.StringOf()).
//		Field("lastname", dsl.StringOf()).
//		MustBuild()
//	v, err := godec.ParseBytes(data)
//	res := user.Decode(v)
