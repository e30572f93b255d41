package monolog

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	mlerrors "github.com/livp123/monolog/pkg/errors"
)

// MaxAlignment bounds the absolute alignment of a placeholder.
const MaxAlignment = 1000000

// Format interpolates args into template. Placeholders take the form
// {index[,alignment][:format]} where index selects an argument, alignment pads
// the result (negative values left-align) and format is one of the numeric
// specifiers D, X, F, E, G, N or P with an optional precision. "{{" and "}}"
// produce literal braces.
//
// Format 将参数插入模板。占位符格式为 {index[,alignment][:format]}。
func Format(template string, args ...any) (string, error) {
	var b strings.Builder
	b.Grow(len(template))

	for i := 0; i < len(template); {
		c := template[i]
		switch c {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				b.WriteByte('{')
				i += 2
				continue
			}
			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				return "", mlerrors.NewFormatError(template, -1, "unclosed placeholder")
			}
			s, err := formatItem(template, template[i+1:i+1+end], args)
			if err != nil {
				return "", err
			}
			b.WriteString(s)
			i += end + 2
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				b.WriteByte('}')
				i += 2
				continue
			}
			return "", mlerrors.NewFormatError(template, -1, "unmatched closing brace")
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String(), nil
}

func formatItem(template, item string, args []any) (string, error) {
	head, format, _ := strings.Cut(item, ":")
	indexPart, alignPart, hasAlign := strings.Cut(head, ",")

	index, err := strconv.Atoi(strings.TrimSpace(indexPart))
	if err != nil || index < 0 {
		return "", mlerrors.NewFormatError(template, -1, fmt.Sprintf("invalid placeholder %q", "{"+item+"}"))
	}
	if index >= len(args) {
		return "", mlerrors.NewFormatError(template, index,
			fmt.Sprintf("index out of range, %d argument(s) supplied", len(args)))
	}

	align := 0
	if hasAlign {
		align, err = strconv.Atoi(strings.TrimSpace(alignPart))
		if err != nil {
			return "", mlerrors.NewFormatError(template, index, fmt.Sprintf("invalid alignment %q", alignPart))
		}
		if align >= MaxAlignment || align <= -MaxAlignment {
			return "", mlerrors.NewFormatError(template, index, fmt.Sprintf("alignment too large: %d", align))
		}
	}

	s, reason := formatValue(args[index], format)
	if reason != "" {
		return "", mlerrors.NewFormatError(template, index, reason)
	}
	return pad(s, align), nil
}

func pad(s string, align int) string {
	width := align
	if width < 0 {
		width = -width
	}
	n := len([]rune(s))
	if n >= width {
		return s
	}
	fill := strings.Repeat(" ", width-n)
	if align < 0 {
		return s + fill
	}
	return fill + s
}

// formatValue renders v under the format specifier. A non-empty reason means
// the value could not be rendered.
func formatValue(v any, format string) (string, string) {
	if format == "" {
		if v == nil {
			return "", ""
		}
		return fmt.Sprint(v), ""
	}

	letter := format[0]
	precision := -1
	if len(format) > 1 {
		p, err := strconv.Atoi(format[1:])
		if err != nil || p < 0 {
			return "", fmt.Sprintf("unknown format specifier %q", format)
		}
		precision = p
	}
	mismatch := fmt.Sprintf("format mismatch: %T cannot be formatted as %q", v, format)

	switch letter {
	case 'D', 'd':
		neg, digits, ok := integerDigits(v)
		if !ok {
			return "", mismatch
		}
		digits = zeroPad(digits, precision)
		if neg {
			return "-" + digits, ""
		}
		return digits, ""

	case 'X', 'x':
		u, ok := integerBits(v)
		if !ok {
			return "", mismatch
		}
		s := strconv.FormatUint(u, 16)
		if letter == 'X' {
			s = strings.ToUpper(s)
		}
		return zeroPad(s, precision), ""

	case 'F', 'f':
		f, ok := floatValue(v)
		if !ok {
			return "", mismatch
		}
		return strconv.FormatFloat(f, 'f', defaultPrecision(precision, 2), 64), ""

	case 'N', 'n':
		f, ok := floatValue(v)
		if !ok {
			return "", mismatch
		}
		s := strconv.FormatFloat(f, 'f', defaultPrecision(precision, 2), 64)
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return s, ""
		}
		return groupThousands(s), ""

	case 'P', 'p':
		f, ok := floatValue(v)
		if !ok {
			return "", mismatch
		}
		return strconv.FormatFloat(f*100, 'f', defaultPrecision(precision, 2), 64) + "%", ""

	case 'E', 'e':
		f, ok := floatValue(v)
		if !ok {
			return "", mismatch
		}
		return scientific(f, defaultPrecision(precision, 6), letter), ""

	case 'G', 'g':
		if precision < 0 {
			if neg, digits, ok := integerDigits(v); ok {
				if neg {
					return "-" + digits, ""
				}
				return digits, ""
			}
		}
		f, ok := floatValue(v)
		if !ok {
			return "", mismatch
		}
		return strconv.FormatFloat(f, letter, precision, 64), ""

	default:
		return "", fmt.Sprintf("unknown format specifier %q", format)
	}
}

func defaultPrecision(p, def int) int {
	if p < 0 {
		return def
	}
	return p
}

func zeroPad(digits string, width int) string {
	if width > len(digits) {
		return strings.Repeat("0", width-len(digits)) + digits
	}
	return digits
}

// integerDigits returns the sign and decimal magnitude of an integer value.
func integerDigits(v any) (bool, string, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n < 0 {
			// -n overflows for MinInt64, so format via the unsigned magnitude.
			return true, strconv.FormatUint(uint64(-(n+1))+1, 10), true
		}
		return false, strconv.FormatInt(n, 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return false, strconv.FormatUint(rv.Uint(), 10), true
	default:
		return false, "", false
	}
}

// integerBits returns the two's complement bits of an integer value at its own width.
func integerBits(v any) (uint64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		bits := rv.Type().Bits()
		u := uint64(rv.Int())
		if bits < 64 {
			u &= (1 << uint(bits)) - 1
		}
		return u, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint(), true
	default:
		return 0, false
	}
}

func floatValue(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	default:
		return 0, false
	}
}

// scientific renders f with a three digit exponent, e.g. 1.234500E+003.
func scientific(f float64, precision int, letter byte) string {
	s := strconv.FormatFloat(f, 'e', precision, 64)
	mantissa, exp, found := strings.Cut(s, "e")
	if !found {
		// NaN and Inf have no exponent.
		return s
	}
	sign, digits := exp[:1], exp[1:]
	return mantissa + string(letter) + sign + zeroPad(digits, 3)
}

func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := b.String()
	if hasFrac {
		out += "." + frac
	}
	if neg {
		out = "-" + out
	}
	return out
}
