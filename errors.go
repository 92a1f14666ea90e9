package godec

import (
	"fmt"
	"strconv"
)

// Failure message taxonomy. Every combinator builds its message through one of
// these constructors so the literal text stays stable: existing callers match
// on it. Offending values are embedded via Value.String, the literal-JSON
// rendering rule.

// PrimitiveError reports a value whose dynamic kind did not match the single
// kind a decoder expected. kind is the expected kind name ("string",
// "number", "boolean", "array", "dictionary", or an object decoder's name).
func PrimitiveError(input Value, kind string) string {
	return fmt.Sprintf("%v is not a valid %v", input, kind)
}

// ExactlyError reports a value that was not strictly identical to the
// expected one.
func ExactlyError(input, expected Value) string {
	return fmt.Sprintf("%v is not exactly %v", input, expected)
}

// UndefinedError reports a value that was required to be the absent sentinel.
func UndefinedError(input Value) string {
	return fmt.Sprintf("%v is not undefined", input)
}

// NullError reports a value that was required to be an explicit null.
func NullError(input Value) string {
	return fmt.Sprintf("%v is not null", input)
}

// ObjectError wraps a field failure with the object decoder's name and the
// failing key.
func ObjectError(decoderName, key, nested string) string {
	return fmt.Sprintf(`<%v> decoder failed at key "%v" with error: %v`, decoderName, key, nested)
}

// ObjectJSONKeyError is ObjectError for a field read through a key-map; it
// names both the target field and the source key it was read from.
func ObjectJSONKeyError(decoderName, key, jsonKey, nested string) string {
	return fmt.Sprintf(
		`<%v> decoder failed at key "%v" (mapped from the JSON key "%v") with error: %v`,
		decoderName, key, jsonKey, nested,
	)
}

// ObjectStrictUnknownKeyError reports an input key that the strict object
// decoder was not configured with.
func ObjectStrictUnknownKeyError(decoderName, key string) string {
	return fmt.Sprintf(`<%v> decoder failed because of unexpected key "%v"`, decoderName, key)
}

// ArrayError wraps an element failure with the array decoder's name and the
// zero-based index.
func ArrayError(decoderName string, index int, nested string) string {
	return fmt.Sprintf(`<%v> decoder failed at index "%v" with error: %v`, decoderName, strconv.Itoa(index), nested)
}

// DictionaryError wraps an entry failure with the dictionary decoder's name
// and the failing key.
func DictionaryError(decoderName, key, nested string) string {
	return fmt.Sprintf(`<%v> dictionary decoder failed at key "%v" with error: %v`, decoderName, key, nested)
}

// OneOfError reports an input no union candidate accepted. Candidate messages
// are deliberately discarded; only the offending input survives.
func OneOfError(decoderName string, input Value) string {
	return fmt.Sprintf(
		"<%v> decoder failed because %v can't be decoded with any of the provided oneOf decoders",
		decoderName, input,
	)
}
