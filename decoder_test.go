package godec_test

import (
	"testing"
	"time"

	godec "github.com/reoring/godec"
)

// stringDec is a minimal decoder used to exercise the evaluation entry
// points without depending on the dsl package.
func stringDec() godec.Decoder[string] {
	return godec.NewDecoder(func(v godec.Value) godec.Result[string] {
		if v.Kind() != godec.KindString {
			return godec.Err[string](godec.PrimitiveError(v, "string"))
		}
		return godec.Ok(v.Str())
	})
}

func TestDecoder_Decode(t *testing.T) {
	d := stringDec()

	r := d.Decode(godec.String("hola"))
	if !r.IsOk() || r.Value() != "hola" {
		t.Fatalf("decode ok: %+v", r)
	}

	r = d.Decode(godec.Bool(true))
	if r.IsOk() || r.Message() != "true is not a valid string" {
		t.Fatalf("decode err: %+v", r)
	}
}

func TestDecoder_DecodeValue(t *testing.T) {
	d := stringDec()
	v, err := d.DecodeValue(godec.String("x"))
	if err != nil || v != "x" {
		t.Fatalf("decode value: v=%v err=%v", v, err)
	}
	_, err = d.DecodeValue(godec.Null())
	if err == nil || err.Error() != "null is not a valid string" {
		t.Fatalf("decode value err: %v", err)
	}
}

func TestOnDecode(t *testing.T) {
	d := stringDec()

	got := godec.OnDecode(d, godec.String("ok"),
		func(s string) string { return "ok:" + s },
		func(msg string) string { return "err:" + msg },
	)
	if got != "ok:ok" {
		t.Fatalf("fold ok: %v", got)
	}

	got = godec.OnDecode(d, godec.Number(1),
		func(s string) string { return "ok:" + s },
		func(msg string) string { return "err:" + msg },
	)
	if got != "err:1 is not a valid string" {
		t.Fatalf("fold err: %v", got)
	}
}

func TestDecodeCh(t *testing.T) {
	d := stringDec()
	select {
	case r := <-d.DecodeCh(godec.String("async")):
		if !r.IsOk() || r.Value() != "async" {
			t.Fatalf("channel result: %+v", r)
		}
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for decode result")
	}

	// channel closes after delivering exactly one result
	ch := d.DecodeCh(godec.Null())
	if r := <-ch; r.IsOk() {
		t.Fatalf("expected failure, got %+v", r)
	}
	if _, open := <-ch; open {
		t.Fatalf("channel should be closed")
	}
}

func TestUnmarshal(t *testing.T) {
	v, err := godec.Unmarshal([]byte(`"hola"`), stringDec())
	if err != nil || v != "hola" {
		t.Fatalf("unmarshal: v=%v err=%v", v, err)
	}

	if _, err := godec.Unmarshal([]byte(`true`), stringDec()); err == nil {
		t.Fatalf("expected decode failure")
	}
	if _, err := godec.Unmarshal([]byte(`{`), stringDec()); err == nil {
		t.Fatalf("expected parse failure")
	}
}

func TestDecoder_SharedAcrossGoroutines(t *testing.T) {
	d := stringDec()
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				if r := d.Decode(godec.String("p")); !r.IsOk() {
					t.Errorf("unexpected failure: %v", r.Message())
					return
				}
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
