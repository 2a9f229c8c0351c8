package exam

import (
	"fmt"
	"strconv"
	"strings"
)

// Blank is the canonical symbol for an unanswered question. All sentinel
// empty tokens normalize to it.
const Blank = ""

// emptyTokens are the raw values treated as "no answer" after trimming.
// The trim already collapses " " to "", but the dash and star markers
// survive trimming and must be matched explicitly.
var emptyTokens = map[string]bool{
	"": true, "-": true, "*": true,
}

// Normalize coerces a loosely-typed cell value (string, number, nil) to a
// canonical option string: uppercased, whitespace-trimmed, with sentinel
// empty tokens mapped to Blank.
func Normalize(v any) string {
	var s string
	switch t := v.(type) {
	case nil:
		return Blank
	case string:
		s = t
	case float64:
		s = strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		s = strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		s = strconv.Itoa(t)
	case int64:
		s = strconv.FormatInt(t, 10)
	case bool:
		s = strconv.FormatBool(t)
	default:
		s = fmt.Sprintf("%v", t)
	}

	s = strings.ToUpper(strings.TrimSpace(s))
	if emptyTokens[s] {
		return Blank
	}
	return s
}

// IsBlank reports whether a normalized cell holds no answer.
func IsBlank(s string) bool {
	return s == Blank
}
