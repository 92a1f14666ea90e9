package godec

// Result is the outcome of one decode evaluation: either a value of type T or
// a finished, human-readable failure message. Exactly one variant is
// populated; a Result is never mutated after construction.
type Result[T any] struct {
	value T
	msg   string
	ok    bool
}

// Ok constructs a success Result carrying v.
func Ok[T any](v T) Result[T] { return Result[T]{value: v, ok: true} }

// Err constructs a failure Result carrying msg.
func Err[T any](msg string) Result[T] { return Result[T]{msg: msg} }

// IsOk reports whether the Result is the success variant.
func (r Result[T]) IsOk() bool { return r.ok }

// Value returns the success payload, or the zero value on failure.
func (r Result[T]) Value() T { return r.value }

// Message returns the failure message, or "" on success.
func (r Result[T]) Message() string { return r.msg }

// Unwrap projects the Result onto Go's (value, error) convention. The error
// is an Error wrapping the failure message.
func (r Result[T]) Unwrap() (T, error) {
	if r.ok {
		return r.value, nil
	}
	var zero T
	return zero, Error(r.msg)
}

// MapResult transforms the success payload through f and propagates a failure
// unchanged. Free function because Go methods cannot introduce type
// parameters.
func MapResult[A, B any](r Result[A], f func(A) B) Result[B] {
	if !r.ok {
		return Err[B](r.msg)
	}
	return Ok(f(r.value))
}

// Error is the string-backed error type surfaced by the (value, error) entry
// points. The text is the exact decoder failure message.
type Error string

func (e Error) Error() string { return string(e) }
