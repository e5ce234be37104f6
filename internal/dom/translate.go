package dom

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedExpression is returned when an expression uses syntax the
// remote context does not understand.
var ErrUnsupportedExpression = errors.New("unsupported expression")

// methodRewrites maps JavaScript string methods to Lua method calls.
var methodRewrites = map[string]string{
	"toLowerCase()": ":lower()",
	"toUpperCase()": ":upper()",
}

// luaKeywords are Lua reserved words that are valid JavaScript identifiers.
var luaKeywords = map[string]bool{
	"and": true, "break": true, "do": true, "else": true, "elseif": true,
	"end": true, "false": true, "for": true, "function": true, "goto": true,
	"if": true, "in": true, "local": true, "nil": true, "not": true,
	"or": true, "repeat": true, "return": true, "then": true, "true": true,
	"until": true, "while": true,
}

// translate rewrites a JavaScript-style expression into a Lua expression.
//
// Supported: string literals, identifiers and member access, calls,
// &&, ||, !, ==, ===, !=, !==, null, undefined, true, false, numbers,
// parentheses and the toLowerCase/toUpperCase string methods.
func translate(expr string) (string, error) {
	var b strings.Builder
	b.Grow(len(expr) + 16)

	for i := 0; i < len(expr); {
		c := expr[i]
		switch {
		case c == '\'' || c == '"':
			end, err := scanString(expr, i)
			if err != nil {
				return "", err
			}
			b.WriteString(expr[i:end])
			i = end

		case strings.HasPrefix(expr[i:], "&&"):
			i += 2
			writeKeyword(&b, "and", expr, i)

		case strings.HasPrefix(expr[i:], "||"):
			i += 2
			writeKeyword(&b, "or", expr, i)

		case strings.HasPrefix(expr[i:], "!=="):
			b.WriteString("~=")
			i += 3

		case strings.HasPrefix(expr[i:], "!="):
			b.WriteString("~=")
			i += 2

		case strings.HasPrefix(expr[i:], "==="):
			b.WriteString("==")
			i += 3

		case strings.HasPrefix(expr[i:], "=="):
			b.WriteString("==")
			i += 2

		case c == '!':
			i++
			writeKeyword(&b, "not", expr, i)

		case c == '.':
			rewritten := false
			for js, lua := range methodRewrites {
				if strings.HasPrefix(expr[i+1:], js) {
					b.WriteString(lua)
					i += 1 + len(js)
					rewritten = true
					break
				}
			}
			if rewritten {
				break
			}
			// Lua keywords cannot follow a dot: event.repeat -> event["repeat"]
			j := i + 1
			for j < len(expr) && isIdentPart(expr[j]) {
				j++
			}
			if word := expr[i+1 : j]; luaKeywords[word] {
				b.WriteString(`["` + word + `"]`)
				i = j
				break
			}
			b.WriteByte('.')
			i++

		case isIdentStart(c):
			j := i + 1
			for j < len(expr) && isIdentPart(expr[j]) {
				j++
			}
			switch word := expr[i:j]; word {
			case "null", "undefined":
				b.WriteString("nil")
			case "true", "false":
				b.WriteString(word)
			default:
				if luaKeywords[word] {
					return "", fmt.Errorf("%w: reserved word %q", ErrUnsupportedExpression, word)
				}
				b.WriteString(word)
			}
			i = j

		case c == '=' || c == ';' || c == '{' || c == '}' || c == '[' || c == ']' || c == '?' || c == '&' || c == '|' || c == '`':
			return "", fmt.Errorf("%w: unexpected %q at %d", ErrUnsupportedExpression, c, i)

		default:
			b.WriteByte(c)
			i++
		}
	}

	return b.String(), nil
}

// scanString returns the index just past the string literal starting at i.
func scanString(expr string, i int) (int, error) {
	quote := expr[i]
	for j := i + 1; j < len(expr); j++ {
		switch expr[j] {
		case '\\':
			j++
		case quote:
			return j + 1, nil
		case '\n':
			return 0, fmt.Errorf("%w: newline in string literal", ErrUnsupportedExpression)
		}
	}
	return 0, fmt.Errorf("%w: unterminated string literal", ErrUnsupportedExpression)
}

// writeKeyword writes a Lua operator keyword, adding the spaces needed to
// separate it from neighbouring tokens. next is the index after the operator.
func writeKeyword(b *strings.Builder, word, expr string, next int) {
	if written := b.String(); written != "" {
		if last := written[len(written)-1]; last != ' ' && last != '(' {
			b.WriteByte(' ')
		}
	}
	b.WriteString(word)
	if next < len(expr) && expr[next] != ' ' && expr[next] != ')' {
		b.WriteByte(' ')
	}
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
