package sqlgen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TimeLayout is the layout of inlined time literals.
const TimeLayout = "2006-01-02 15:04:05.999"

// plainNumber matches decimal text without exponent notation.
var plainNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)$`)

// Literal renders v as an inline SQL literal: NULL for nil, 1 or 0 for
// booleans, a quoted TimeLayout string for times, plain decimal text bare
// and anything else as a single-quoted string with embedded quotes doubled.
// Text in exponent notation ("12E4") is quoted.
func Literal(v any) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case bool:
		if x {
			return "1"
		}
		return "0"
	case time.Time:
		return quoteText(x.Format(TimeLayout))
	case *time.Time:
		if x == nil {
			return "NULL"
		}
		return quoteText(x.Format(TimeLayout))
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case decimal.Decimal:
		return x.String()
	}
	text := fmt.Sprint(v)
	if isPlainNumber(text) {
		return text
	}
	return quoteText(text)
}

func isPlainNumber(text string) bool {
	if !plainNumber.MatchString(text) {
		return false
	}
	_, err := decimal.NewFromString(text)
	return err == nil
}

func quoteText(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
