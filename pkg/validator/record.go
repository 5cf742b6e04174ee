package validator

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Record is the model a field validator reads from and writes derived values to.
type Record interface {
	Value(field string) (any, bool)
	SetValue(field string, value any) error
}

// ErrorSink receives validation failures for a record field.
type ErrorSink interface {
	AddError(rec Record, field string, err ValidationError)
}

// Map is a Record backed by a plain map.
type Map map[string]any

func (m Map) Value(field string) (any, bool) {
	v, ok := m[field]
	return v, ok
}

func (m Map) SetValue(field string, value any) error {
	m[field] = value
	return nil
}

// Struct exposes the exported fields of a struct as a Record. A field is
// addressed by the name in its json tag, or by its Go name when untagged.
// Fields tagged "-" are hidden.
func Struct(ptr any) (Record, error) {
	rv := reflect.ValueOf(ptr)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w, got %T", ErrInvalidRecord, ptr)
	}

	rv = rv.Elem()
	rt := rv.Type()
	fields := make(map[string]int, rt.NumField())
	for i := range rt.NumField() {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name, skip := parseFieldTag(sf)
		if skip {
			continue
		}
		fields[name] = i
	}

	return &structRecord{v: rv, fields: fields}, nil
}

type structRecord struct {
	v      reflect.Value
	fields map[string]int
}

func (r *structRecord) Value(field string) (any, bool) {
	i, ok := r.fields[field]
	if !ok {
		return nil, false
	}
	return r.v.Field(i).Interface(), true
}

func (r *structRecord) SetValue(field string, value any) error {
	i, ok := r.fields[field]
	if !ok {
		return fmt.Errorf("%w: %s", ErrFieldNotFound, field)
	}
	if err := assign(r.v.Field(i), value); err != nil {
		return fmt.Errorf("field %s: %w", field, err)
	}
	return nil
}

func parseFieldTag(field reflect.StructField) (name string, skip bool) {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", true
	}
	if name, _, _ = strings.Cut(tag, ","); name != "" {
		return name, false
	}
	return field.Name, false
}

var timeType = reflect.TypeOf(time.Time{})

// assign stores value in field. Values assignable to the field are stored as
// is; an int64 timestamp is additionally converted to numeric, string and
// time.Time fields.
func assign(field reflect.Value, value any) error {
	if field.Kind() == reflect.Pointer {
		if field.IsNil() {
			field.Set(reflect.New(field.Type().Elem()))
		}
		return assign(field.Elem(), value)
	}

	rv := reflect.ValueOf(value)
	if !rv.IsValid() {
		field.Set(reflect.Zero(field.Type()))
		return nil
	}
	if rv.Type().AssignableTo(field.Type()) {
		field.Set(rv)
		return nil
	}

	ts, ok := value.(int64)
	if !ok {
		return fmt.Errorf("%w: cannot store %T in %s", ErrUnsupportedTarget, value, field.Type())
	}

	if field.Type() == timeType {
		field.Set(reflect.ValueOf(time.Unix(ts, 0).UTC()))
		return nil
	}

	switch field.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if field.OverflowInt(ts) {
			return fmt.Errorf("%w: %d overflows %s", ErrUnsupportedTarget, ts, field.Type())
		}
		field.SetInt(ts)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if ts < 0 || field.OverflowUint(uint64(ts)) {
			return fmt.Errorf("%w: %d overflows %s", ErrUnsupportedTarget, ts, field.Type())
		}
		field.SetUint(uint64(ts))
	case reflect.Float32, reflect.Float64:
		if field.Kind() == reflect.Float32 && math.Abs(float64(ts)) > math.MaxFloat32 {
			return fmt.Errorf("%w: %d overflows %s", ErrUnsupportedTarget, ts, field.Type())
		}
		field.SetFloat(float64(ts))
	case reflect.String:
		field.SetString(strconv.FormatInt(ts, 10))
	default:
		return fmt.Errorf("%w: cannot store %T in %s", ErrUnsupportedTarget, value, field.Type())
	}
	return nil
}
