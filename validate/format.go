// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package validate

import (
	"fmt"
	"strings"
)

const (
	placeholder = "{}"
	escapeChar  = '\\'
)

// Format substitutes each "{}" in template, from left to right, with the
// corresponding parameter rendered using the %v verb.
//
// A placeholder preceded by a backslash, `\{}`, is written as a literal "{}"
// and consumes no parameter. A double backslash, `\\{}`, is written as a
// single backslash followed by the substituted parameter. Once params are
// exhausted the rest of the template is copied verbatim, escapes included,
// and surplus params are ignored.
func Format(template string, params ...any) string {
	msg, _ := format(template, params)
	return msg
}

// format returns the formatted message along with the last parameter if
// it is an error which was not consumed by a placeholder.
func format(template string, params []any) (string, error) {
	var sb strings.Builder
	sb.Grow(len(template))

	i := 0
	used := 0
	for used < len(params) {
		j := strings.Index(template[i:], placeholder)
		if j < 0 {
			break
		}
		j += i

		switch {
		case isEscaped(template, j) && !isEscaped(template, j-1):
			sb.WriteString(template[i : j-1])
			sb.WriteString(placeholder)
		case isEscaped(template, j):
			sb.WriteString(template[i : j-1])
			fmt.Fprint(&sb, params[used])
			used++
		default:
			sb.WriteString(template[i:j])
			fmt.Fprint(&sb, params[used])
			used++
		}
		i = j + len(placeholder)
	}
	sb.WriteString(template[i:])

	return sb.String(), trailingCause(params, used)
}

func isEscaped(s string, i int) bool {
	return i > 0 && s[i-1] == escapeChar
}

func trailingCause(params []any, used int) error {
	if used >= len(params) {
		return nil
	}
	err, _ := params[len(params)-1].(error)
	return err
}
