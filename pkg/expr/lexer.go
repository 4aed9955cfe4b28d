package expr

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"refinebench/pkg/core"
)

type tokenKind int

const (
	tokIdent tokenKind = iota
	tokNumber
	tokString
	tokOp
	tokAnd
	tokOr
	tokNot
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
	num  float64
	pos  int
}

// tokenize splits an expression into tokens. Anything outside the closed
// grammar is rejected here, before parsing.
func tokenize(input string) ([]token, error) {
	var tokens []token
	runes := []rune(input)
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r == '(':
			tokens = append(tokens, token{kind: tokLParen, text: "(", pos: i})
			i++
		case r == ')':
			tokens = append(tokens, token{kind: tokRParen, text: ")", pos: i})
			i++
		case r == '\'' || r == '"':
			value, next, err := scanString(runes, i)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, token{kind: tokString, text: value, pos: i})
			i = next
		case r == '=' || r == '!' || r == '<' || r == '>':
			op, next, err := scanOperator(runes, i)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, token{kind: tokOp, text: op, pos: i})
			i = next
		case unicode.IsDigit(r) || (r == '-' && i+1 < len(runes) && unicode.IsDigit(runes[i+1])):
			text, next := scanNumber(runes, i)
			value, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: bad number %q at position %d", core.ErrMalformedExpression, text, i)
			}
			tokens = append(tokens, token{kind: tokNumber, text: text, num: value, pos: i})
			i = next
		case unicode.IsLetter(r) || r == '_':
			text, next := scanIdent(runes, i)
			kind := tokIdent
			switch text {
			case "and":
				kind = tokAnd
			case "or":
				kind = tokOr
			case "not":
				kind = tokNot
			}
			tokens = append(tokens, token{kind: kind, text: text, pos: i})
			i = next
		default:
			return nil, fmt.Errorf("%w: disallowed character %q at position %d", core.ErrMalformedExpression, string(r), i)
		}
	}
	return tokens, nil
}

func scanString(runes []rune, start int) (string, int, error) {
	quote := runes[start]
	var sb strings.Builder
	for i := start + 1; i < len(runes); i++ {
		if runes[i] == quote {
			return sb.String(), i + 1, nil
		}
		sb.WriteRune(runes[i])
	}
	return "", 0, fmt.Errorf("%w: unterminated string starting at position %d", core.ErrMalformedExpression, start)
}

func scanOperator(runes []rune, start int) (string, int, error) {
	r := runes[start]
	hasEquals := start+1 < len(runes) && runes[start+1] == '='
	switch r {
	case '=':
		if !hasEquals {
			return "", 0, fmt.Errorf("%w: single %q at position %d, assignment is not allowed", core.ErrMalformedExpression, "=", start)
		}
		return "==", start + 2, nil
	case '!':
		if !hasEquals {
			return "", 0, fmt.Errorf("%w: disallowed token %q at position %d", core.ErrMalformedExpression, "!", start)
		}
		return "!=", start + 2, nil
	case '<':
		if hasEquals {
			return "<=", start + 2, nil
		}
		return "<", start + 1, nil
	default: // '>'
		if hasEquals {
			return ">=", start + 2, nil
		}
		return ">", start + 1, nil
	}
}

func scanNumber(runes []rune, start int) (string, int) {
	i := start
	if runes[i] == '-' {
		i++
	}
	for i < len(runes) && (unicode.IsDigit(runes[i]) || runes[i] == '.') {
		i++
	}
	return string(runes[start:i]), i
}

func scanIdent(runes []rune, start int) (string, int) {
	i := start
	for i < len(runes) && (unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i]) || runes[i] == '_') {
		i++
	}
	return string(runes[start:i]), i
}
