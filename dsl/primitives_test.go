package dsl_test

import (
	"encoding/json"
	"testing"

	godec "github.com/reoring/godec"
	g "github.com/reoring/godec/dsl"
)

func TestString_Basic(t *testing.T) {
	d := g.String()

	r := d.Decode(mustParse(t, `"hola"`))
	if !r.IsOk() || r.Value() != "hola" {
		t.Fatalf("decode ok expected, got %+v", r)
	}

	for in, want := range map[string]string{
		`true`:  "true is not a valid string",
		`null`:  "null is not a valid string",
		`1`:     "1 is not a valid string",
		`[1,2]`: "[1,2] is not a valid string",
	} {
		if r := d.Decode(mustParse(t, in)); r.IsOk() || r.Message() != want {
			t.Fatalf("decode %s: got %+v want %q", in, r, want)
		}
	}

	// the absent sentinel is rejected like any other wrong kind
	if r := d.Decode(godec.Undefined()); r.IsOk() || r.Message() != "undefined is not a valid string" {
		t.Fatalf("decode undefined: %+v", r)
	}
}

func TestNumber_Basic(t *testing.T) {
	d := g.Number()

	if r := d.Decode(mustParse(t, `2.1`)); !r.IsOk() || r.Value() != 2.1 {
		t.Fatalf("decode ok expected, got %+v", r)
	}
	if r := d.Decode(mustParse(t, `"hola"`)); r.IsOk() || r.Message() != `"hola" is not a valid number` {
		t.Fatalf("decode err: %+v", r)
	}
	if r := d.Decode(mustParse(t, `null`)); r.IsOk() || r.Message() != "null is not a valid number" {
		t.Fatalf("decode null: %+v", r)
	}
}

func TestNumberJSON_PreservesLiteral(t *testing.T) {
	d := g.NumberJSON()

	r := d.Decode(mustParse(t, `123.450`))
	if !r.IsOk() || r.Value() != json.Number("123.450") {
		t.Fatalf("expected literal round-trip, got %+v", r)
	}
	if r := d.Decode(mustParse(t, `"1.0"`)); r.IsOk() || r.Message() != `"1.0" is not a valid number` {
		t.Fatalf("decode err: %+v", r)
	}
}

func TestBoolean_Basic(t *testing.T) {
	d := g.Boolean()

	if r := d.Decode(mustParse(t, `true`)); !r.IsOk() || r.Value() != true {
		t.Fatalf("decode ok expected, got %+v", r)
	}
	if r := d.Decode(mustParse(t, `0`)); r.IsOk() || r.Message() != "0 is not a valid boolean" {
		t.Fatalf("decode err: %+v", r)
	}
}

func TestPrimitives_DoNotMutateInput(t *testing.T) {
	v := mustParse(t, `{"a":1}`)
	_ = g.String().Decode(v)
	_ = g.Number().Decode(v)
	if v.String() != `{"a":1}` {
		t.Fatalf("input mutated: %v", v)
	}
}
