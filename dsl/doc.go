// Package dsl provides the decoder combinators: primitives, the object
// builder, arrays and dictionaries, unions and pipelines, and the modifier
// set (Map, Then, Failover, Optional, Lazy, exact-match decoders).
//
// Combinators are constructors returning godec.Decoder values; they hold no
// mutable state, so a decoder tree is built once and applied to any number of
// inputs, concurrently if desired.
package dsl
