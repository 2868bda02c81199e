package schema

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// timeLayouts are tried in order when reading a time column stored as text.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// Assign parses text with the canonical conversion for the field's kind and
// stores it in dst, which must be the settable field value.
func (f Field) Assign(dst reflect.Value, text string) error {
	if f.Nullable {
		elem := reflect.New(f.Type.Elem())
		if err := assignKind(f.Kind, elem.Elem(), text); err != nil {
			return err
		}
		dst.Set(elem)
		return nil
	}
	return assignKind(f.Kind, dst, text)
}

// Clear stores the absent value: nil for pointer fields, the zero value otherwise.
func (f Field) Clear(dst reflect.Value) {
	dst.SetZero()
}

func assignKind(k Kind, dst reflect.Value, text string) error {
	switch k {
	case KindString:
		dst.SetString(text)
	case KindBool:
		b, err := strconv.ParseBool(strings.TrimSpace(text))
		if err != nil {
			return err
		}
		dst.SetBool(b)
	case KindInt, KindUint, KindFloat:
		return setNumeric(dst, text)
	case KindTime:
		t, err := ParseTime(text)
		if err != nil {
			return err
		}
		dst.Set(reflect.ValueOf(t))
	case KindEnum:
		v, err := ParseEnum(dst.Type(), text)
		if err != nil {
			return err
		}
		dst.Set(v)
	case KindText:
		u, ok := dst.Addr().Interface().(encoding.TextUnmarshaler)
		if !ok {
			return fmt.Errorf("%s does not implement encoding.TextUnmarshaler", dst.Type())
		}
		return u.UnmarshalText([]byte(text))
	default:
		return fmt.Errorf("unsupported field type %s", dst.Type())
	}
	return nil
}

// setNumeric parses text into an int, uint or float value. Integral values
// written with a fraction or exponent ("3.0", "1e3") are accepted.
func setNumeric(dst reflect.Value, text string) error {
	text = strings.TrimSpace(text)
	switch dst.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(text, 10, dst.Type().Bits())
		if err != nil {
			d, derr := integral(text)
			if derr != nil || !d.IsInteger() {
				return err
			}
			bi := d.BigInt()
			if !bi.IsInt64() || dst.OverflowInt(bi.Int64()) {
				return err
			}
			n = bi.Int64()
		}
		dst.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(text, 10, dst.Type().Bits())
		if err != nil {
			d, derr := integral(text)
			if derr != nil || !d.IsInteger() {
				return err
			}
			bi := d.BigInt()
			if !bi.IsUint64() || dst.OverflowUint(bi.Uint64()) {
				return err
			}
			n = bi.Uint64()
		}
		dst.SetUint(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(text, dst.Type().Bits())
		if err != nil {
			return err
		}
		dst.SetFloat(n)
	default:
		return fmt.Errorf("%s is not numeric", dst.Type())
	}
	return nil
}

func integral(text string) (decimal.Decimal, error) {
	return decimal.NewFromString(text)
}

// ParseTime reads a time stored as text by any of the supported drivers.
func ParseTime(text string) (time.Time, error) {
	text = strings.TrimSpace(text)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as a time", text)
}
