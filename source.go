package godec

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	gojson "github.com/goccy/go-json"
)

// Driver converts raw input bytes into a Value tree via a pluggable SPI.
// Producing the tree from bytes is the driver's whole job; decoders only ever
// see the finished tree. The default implementation is backed by
// goccy/go-json and may be swapped with SetDriver (source/yaml provides a
// YAML driver).
type Driver interface {
	Parse(data []byte) (Value, error)
	Name() string
}

var (
	driverMu      sync.RWMutex
	currentDriver Driver = goJSONDriver{}
)

// SetDriver replaces the global input driver; nil values are ignored.
func SetDriver(d Driver) {
	if d == nil {
		return
	}
	driverMu.Lock()
	currentDriver = d
	driverMu.Unlock()
}

// UseDefaultDriver restores the default go-json-backed driver.
func UseDefaultDriver() {
	driverMu.Lock()
	currentDriver = goJSONDriver{}
	driverMu.Unlock()
}

func getDriver() Driver {
	driverMu.RLock()
	d := currentDriver
	driverMu.RUnlock()
	return d
}

// ParseBytes parses data with the registered driver.
func ParseBytes(data []byte) (Value, error) { return getDriver().Parse(data) }

// ParseReader reads r fully and parses it with the registered driver. The
// input contract is a complete document; there is no incremental mode.
func ParseReader(r io.Reader) (Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Undefined(), fmt.Errorf("godec: read input: %w", err)
	}
	return getDriver().Parse(data)
}

// goJSONDriver materializes ordered Value trees from the go-json token
// stream. UseNumber keeps numeric literals as written so error text renders
// the source spelling.
type goJSONDriver struct{}

func (goJSONDriver) Name() string { return "go-json" }

func (goJSONDriver) Parse(data []byte) (Value, error) { return parseJSONBytes(data) }

func parseJSONBytes(data []byte) (Value, error) {
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := parseTokenValue(dec)
	if err != nil {
		return Undefined(), fmt.Errorf("godec: parse json: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return Undefined(), fmt.Errorf("godec: parse json: unexpected trailing data")
	}
	return v, nil
}

func parseTokenValue(dec *gojson.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Undefined(), err
	}
	return parseToken(dec, tok)
}

func parseToken(dec *gojson.Decoder, tok gojson.Token) (Value, error) {
	switch t := tok.(type) {
	case gojson.Delim:
		switch t {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		}
		return Undefined(), fmt.Errorf("unexpected delimiter %q", t.String())
	case string:
		return String(t), nil
	case gojson.Number:
		return NumberLiteral(string(t)), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null(), nil
	}
	return Undefined(), fmt.Errorf("unexpected token %v", tok)
}

func parseObject(dec *gojson.Decoder) (Value, error) {
	var entries []Entry
	for {
		tok, err := dec.Token()
		if err != nil {
			return Undefined(), err
		}
		if d, ok := tok.(gojson.Delim); ok && d == '}' {
			return Object(entries...), nil
		}
		key, ok := tok.(string)
		if !ok {
			return Undefined(), fmt.Errorf("unexpected object key token %v", tok)
		}
		val, err := parseTokenValue(dec)
		if err != nil {
			return Undefined(), err
		}
		entries = append(entries, Entry{Key: key, Value: val})
	}
}

func parseArray(dec *gojson.Decoder) (Value, error) {
	var elems []Value
	for {
		tok, err := dec.Token()
		if err != nil {
			return Undefined(), err
		}
		if d, ok := tok.(gojson.Delim); ok && d == ']' {
			return Array(elems...), nil
		}
		v, err := parseToken(dec, tok)
		if err != nil {
			return Undefined(), err
		}
		elems = append(elems, v)
	}
}
