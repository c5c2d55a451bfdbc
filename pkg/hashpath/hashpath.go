// Package hashpath parses and formats browser hash paths of the form
// "#route?name=value&name=value".
//
// Parsing is purely syntactic: no percent-decoding, trimming or validation is
// applied, and every input produces a result.
package hashpath

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Parse splits path into its route and argument mapping.
//
// The route is everything before the first '?' with its leading character
// removed, whatever that character is. A '?' at index 0 does not delimit the
// route (the route is then the whole path minus its first character) but
// still starts the argument segment. Argument tokens are separated by '&' and
// split at their first '='; a token without '=' maps to the empty value.
// Later duplicates overwrite earlier ones.
//
// The returned map is never nil.
func Parse(path string) (route string, args map[string]string) {
	q := strings.IndexByte(path, '?')

	segment := path
	if q > 0 {
		segment = path[:q]
	}
	route = stripLead(segment)

	args = make(map[string]string)
	if q < 0 {
		return route, args
	}

	rest := path[q+1:]
	if rest == "" {
		return route, args
	}

	for _, token := range strings.Split(rest, "&") {
		name, value, _ := strings.Cut(token, "=")
		args[name] = value
	}

	return route, args
}

// Format builds a hash path from a route and arguments. Arguments are written
// in sorted key order; the '?' is omitted when args is empty.
func Format(route string, args map[string]string) string {
	var b strings.Builder
	b.WriteByte('#')
	b.WriteString(route)

	if len(args) == 0 {
		return b.String()
	}

	keys := make([]string, 0, len(args))
	for k := range args {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	b.WriteByte('?')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(args[k])
	}

	return b.String()
}

func stripLead(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return s[size:]
}
