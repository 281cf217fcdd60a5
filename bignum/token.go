package bignum

import (
	"fmt"
	"strings"

	"github.com/joeycumines/go-rational"
)

// tokenize splits line on whitespace, keeping each parenthesized group,
// like "(3 / 4)", as a single token. Nesting is not supported.
func tokenize(line string) ([]string, error) {
	var tokens []string
	for i := 0; i < len(line); {
		switch c := line[i]; {
		case isSpace(c):
			i++
		case c == '(':
			j := strings.IndexByte(line[i:], ')')
			if j < 0 || strings.IndexByte(line[i+1:i+j], '(') >= 0 {
				return nil, fmt.Errorf(`%w: unbalanced parenthesis at offset %d`, rational.ErrSyntax, i)
			}
			tokens = append(tokens, line[i:i+j+1])
			i += j + 1
		case c == ')':
			return nil, fmt.Errorf(`%w: unbalanced parenthesis at offset %d`, rational.ErrSyntax, i)
		default:
			j := i + 1
			for j < len(line) && !isSpace(line[j]) && line[j] != '(' && line[j] != ')' {
				j++
			}
			tokens = append(tokens, line[i:j])
			i = j
		}
	}
	return tokens, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
