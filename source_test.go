package godec_test

import (
	"strings"
	"testing"

	godec "github.com/reoring/godec"
)

func TestParseBytes_Basic(t *testing.T) {
	v, err := godec.ParseBytes([]byte(`{"b":1,"a":{"x":[true,null,"s"]},"c":2.10}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	// key order is the document's order, not sorted
	got := v.Keys()
	want := []string{"b", "a", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("key order: got %v want %v", got, want)
		}
	}
	if v.Get("a").Get("x").Len() != 3 {
		t.Fatalf("nested array length: %v", v.Get("a").Get("x"))
	}
	// numeric literals keep their source spelling
	if lit := v.Get("c").Number().String(); lit != "2.10" {
		t.Fatalf("number literal: got %q", lit)
	}
}

func TestParseBytes_Scalars(t *testing.T) {
	for in, kind := range map[string]godec.Kind{
		`null`:   godec.KindNull,
		`true`:   godec.KindBool,
		`1e3`:    godec.KindNumber,
		`"hola"`: godec.KindString,
		`[]`:     godec.KindArray,
		`{}`:     godec.KindObject,
	} {
		v, err := godec.ParseBytes([]byte(in))
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		if v.Kind() != kind {
			t.Fatalf("parse %q: got kind %v want %v", in, v.Kind(), kind)
		}
	}
}

func TestParseBytes_Errors(t *testing.T) {
	if _, err := godec.ParseBytes([]byte(`{"a":`)); err == nil {
		t.Fatalf("expected error for truncated input")
	}
	if _, err := godec.ParseBytes([]byte(`1 2`)); err == nil {
		t.Fatalf("expected error for trailing data")
	}
}

func TestParseReader(t *testing.T) {
	v, err := godec.ParseReader(strings.NewReader(`[1,2,3]`))
	if err != nil {
		t.Fatalf("parse reader: %v", err)
	}
	if v.Len() != 3 {
		t.Fatalf("unexpected value: %v", v)
	}
}

type upperDriver struct{}

func (upperDriver) Name() string { return "upper" }
func (upperDriver) Parse(data []byte) (godec.Value, error) {
	return godec.String(strings.ToUpper(string(data))), nil
}

func TestSetDriver(t *testing.T) {
	godec.SetDriver(upperDriver{})
	defer godec.UseDefaultDriver()

	v, err := godec.ParseBytes([]byte("abc"))
	if err != nil || v.Str() != "ABC" {
		t.Fatalf("driver swap: v=%v err=%v", v, err)
	}

	// SetDriver(nil) keeps the current driver
	godec.SetDriver(nil)
	v, err = godec.ParseBytes([]byte("x"))
	if err != nil || v.Str() != "X" {
		t.Fatalf("driver changed after SetDriver(nil): v=%v err=%v", v, err)
	}
}
