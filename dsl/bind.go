package dsl

import (
	"fmt"
	"reflect"
	"strings"

	godec "github.com/reoring/godec"
)

// Bind builds the object decoder and projects its map result onto struct T.
// Struct fields are matched to configured field names through the
// `godec:"name=..."` tag, then the json tag, then the Go field name; "-"
// disables a field. Free function because Go methods cannot introduce type
// parameters.
func Bind[T any](b *ObjectBuilder) (godec.Decoder[T], error) {
	var zero godec.Decoder[T]
	inner, err := b.Build()
	if err != nil {
		return zero, err
	}
	rt := reflect.TypeOf((*T)(nil)).Elem()
	if rt.Kind() != reflect.Struct {
		return zero, fmt.Errorf("dsl: Bind[T] requires a struct type, got %s", rt.Kind())
	}
	idxByKey := make(map[string]int)
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := resolveStructKey(sf)
		if name == "-" || name == "" {
			continue
		}
		idxByKey[name] = i
	}
	return godec.NewDecoder(func(v godec.Value) godec.Result[T] {
		r := inner.Decode(v)
		if !r.IsOk() {
			return godec.Err[T](r.Message())
		}
		rv := reflect.New(rt).Elem()
		for key, val := range r.Value() {
			i, ok := idxByKey[key]
			if !ok || val == nil {
				continue
			}
			fv := rv.Field(i)
			xv := reflect.ValueOf(val)
			switch {
			case xv.Type().AssignableTo(fv.Type()):
				fv.Set(xv)
			case xv.Type().ConvertibleTo(fv.Type()):
				fv.Set(xv.Convert(fv.Type()))
			default:
				return godec.Err[T](fmt.Sprintf(
					"cannot bind field %q: %s is not assignable to %s", key, xv.Type(), fv.Type()))
			}
		}
		return godec.Ok(rv.Interface().(T))
	}), nil
}

// MustBind is like Bind but panics on configuration errors.
func MustBind[T any](b *ObjectBuilder) godec.Decoder[T] {
	d, err := Bind[T](b)
	if err != nil {
		panic(err)
	}
	return d
}

// resolveStructKey resolves a struct field's external key.
// Priority: godec:"name=..." > json tag name > field name; "-" disables.
func resolveStructKey(sf reflect.StructField) string {
	if gt := sf.Tag.Get("godec"); gt != "" {
		for _, p := range strings.Split(gt, ",") {
			p = strings.TrimSpace(p)
			if strings.HasPrefix(p, "name=") {
				return strings.TrimPrefix(p, "name=")
			}
		}
	}
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		if i := strings.IndexByte(jt, ','); i >= 0 {
			return jt[:i]
		}
		return jt
	}
	return sf.Name
}
