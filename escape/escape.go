// Package escape contains functions to escape strings for safe embedding in
// host languages: HTML text, JavaScript string literals, and SQL LIKE
// patterns.
package escape

import "strings"

// HTML escapes the five characters that are unsafe in HTML text and
// attribute values. Unlike a full sanitizer it performs no stripping; the
// output renders exactly the input.
func HTML(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&#39;")
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// JS escapes s for embedding inside a single- or double-quoted JavaScript
// string literal. Quotes, backslashes and line terminators are
// backslash-escaped; the separator characters U+2028 and U+2029 are escaped
// too because they terminate lines in JavaScript even though JSON allows
// them raw.
func JS(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		switch r {
		case '\'':
			b.WriteString(`\'`)
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\u2028':
			b.WriteString(`\u2028`)
		case '\u2029':
			b.WriteString(`\u2029`)
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Like escapes the SQL LIKE wildcards '%' and '_' in s, as well as the
// escape character itself, using esc as the escape character. The result is
// meant for a LIKE clause declared with ESCAPE esc, so that user input
// matches literally.
func Like(s string, esc rune) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if r == '%' || r == '_' || r == esc {
			b.WriteRune(esc)
		}

		b.WriteRune(r)
	}

	return b.String()
}
