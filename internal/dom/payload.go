package dom

import (
	"strings"
	"unicode"

	"github.com/tidwall/sjson"
)

// escapePath escapes an expression so gjson and sjson treat it as a single
// object key. Every character that is not a letter or digit is escaped.
func escapePath(expression string) string {
	var b strings.Builder
	b.Grow(len(expression) * 2)
	for _, r := range expression {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// setPayload stores an evaluated expression in a JSON payload.
func setPayload(payload, expression string, value any) (string, error) {
	return sjson.Set(payload, escapePath(expression), value)
}
