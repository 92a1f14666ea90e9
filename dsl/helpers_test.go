package dsl_test

import (
	"testing"

	godec "github.com/reoring/godec"
)

func mustParse(t *testing.T, src string) godec.Value {
	t.Helper()
	v, err := godec.ParseBytes([]byte(src))
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return v
}
