package godec

// Decoder is an immutable evaluation capability: given an untyped input
// Value, produce a Result[T]. A Decoder owns nothing but its evaluation
// function; build it once, share it across goroutines, apply it to many
// inputs. Evaluation is pure, synchronous and retains no state between calls.
type Decoder[T any] struct {
	fn func(Value) Result[T]
}

// NewDecoder wraps an evaluation function as a Decoder. Combinator packages
// build on this; application code rarely needs it directly.
func NewDecoder[T any](fn func(Value) Result[T]) Decoder[T] {
	if fn == nil {
		panic("godec: NewDecoder requires a non-nil evaluation function")
	}
	return Decoder[T]{fn: fn}
}

// Decode evaluates the decoder against input and returns the Result.
func (d Decoder[T]) Decode(input Value) Result[T] {
	return d.fn(input)
}

// DecodeValue evaluates the decoder and projects the Result onto Go's
// (value, error) convention.
func (d Decoder[T]) DecodeValue(input Value) (T, error) {
	return d.fn(input).Unwrap()
}

// DecodeCh evaluates the decoder on its own goroutine and delivers the Result
// on the returned channel, then closes it. The computation itself stays fully
// synchronous; this is only a completion-style bridge for select-based
// callers.
func (d Decoder[T]) DecodeCh(input Value) <-chan Result[T] {
	ch := make(chan Result[T], 1)
	go func() {
		defer close(ch)
		ch <- d.fn(input)
	}()
	return ch
}

// OnDecode evaluates the decoder and dispatches to exactly one of the two
// continuations, returning whatever that continuation returns. A synchronous
// fold over the Result; free function because the fold's return type is a
// type parameter of its own.
func OnDecode[T, R any](d Decoder[T], input Value, onOk func(T) R, onErr func(string) R) R {
	r := d.Decode(input)
	if r.IsOk() {
		return onOk(r.Value())
	}
	return onErr(r.Message())
}

// Unmarshal parses data with the registered input driver and decodes the
// resulting tree with d.
func Unmarshal[T any](data []byte, d Decoder[T]) (T, error) {
	v, err := ParseBytes(data)
	if err != nil {
		var zero T
		return zero, err
	}
	return d.DecodeValue(v)
}
