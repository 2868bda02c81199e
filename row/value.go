package row

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Type is the tag of a Value.
type Type int

const (
	Absent Type = iota
	Text
	Number
	Boolean
)

func (t Type) String() string {
	switch t {
	case Text:
		return "text"
	case Number:
		return "number"
	case Boolean:
		return "boolean"
	default:
		return "absent"
	}
}

// Value is a single column value.
type Value struct {
	typ  Type
	text string
	num  decimal.Decimal
	b    bool
}

// Null returns the absent value.
func Null() Value { return Value{} }

// TextValue returns a text value.
func TextValue(s string) Value { return Value{typ: Text, text: s} }

// NumberValue returns a numeric value.
func NumberValue(d decimal.Decimal) Value { return Value{typ: Number, num: d} }

// BoolValue returns a boolean value.
func BoolValue(b bool) Value { return Value{typ: Boolean, b: b} }

// Type returns the tag of v.
func (v Value) Type() Type { return v.typ }

// IsAbsent reports whether v holds no value.
func (v Value) IsAbsent() bool { return v.typ == Absent }

// Decimal returns the number held by v.
func (v Value) Decimal() (decimal.Decimal, bool) {
	return v.num, v.typ == Number
}

// String returns the textual form every coercion starts from.
func (v Value) String() string {
	switch v.typ {
	case Text:
		return v.text
	case Number:
		return v.num.String()
	case Boolean:
		return strconv.FormatBool(v.b)
	default:
		return ""
	}
}

// Interface returns v as a database/sql argument: nil, string, bool,
// int64 for integral numbers that fit, float64 otherwise.
func (v Value) Interface() any {
	switch v.typ {
	case Text:
		return v.text
	case Boolean:
		return v.b
	case Number:
		if n := v.num.IntPart(); v.num.Equal(decimal.NewFromInt(n)) {
			return n
		}
		f, _ := v.num.Float64()
		return f
	default:
		return nil
	}
}

// FromSQLServerGUID converts the 16 raw bytes go-mssqldb returns for a
// uniqueidentifier column into the canonical GUID text. SQL Server stores
// the first three groups little-endian.
func FromSQLServerGUID(b []byte) (Value, error) {
	if len(b) != 16 {
		return Value{}, fmt.Errorf("row: uniqueidentifier has %d bytes, want 16", len(b))
	}
	var u uuid.UUID
	copy(u[:], b)
	u[0], u[1], u[2], u[3] = b[3], b[2], b[1], b[0]
	u[4], u[5] = b[5], b[4]
	u[6], u[7] = b[7], b[6]
	return TextValue(strings.ToUpper(u.String())), nil
}

// FromDriver converts a value produced by a database/sql driver. Byte
// slices become text; Scan routes SQL Server uniqueidentifier columns
// through FromSQLServerGUID instead.
func FromDriver(src any) (Value, error) {
	switch s := src.(type) {
	case nil:
		return Null(), nil
	case string:
		return TextValue(s), nil
	case []byte:
		return TextValue(string(s)), nil
	case bool:
		return BoolValue(s), nil
	case int64:
		return NumberValue(decimal.NewFromInt(s)), nil
	case int32:
		return NumberValue(decimal.NewFromInt32(s)), nil
	case int:
		return NumberValue(decimal.NewFromInt(int64(s))), nil
	case uint64:
		return NumberValue(decimal.NewFromBigInt(new(big.Int).SetUint64(s), 0)), nil
	case float64:
		return NumberValue(decimal.NewFromFloat(s)), nil
	case float32:
		return NumberValue(decimal.NewFromFloat32(s)), nil
	case decimal.Decimal:
		return NumberValue(s), nil
	case time.Time:
		return TextValue(s.Format(time.RFC3339Nano)), nil
	case fmt.Stringer:
		return TextValue(s.String()), nil
	default:
		return Value{}, fmt.Errorf("row: unsupported driver value %T", src)
	}
}
