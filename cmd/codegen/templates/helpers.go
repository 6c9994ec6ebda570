package templates

import (
	"go/token"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

func receiver(typeName string) string {
	return lowerFirst(typeName[:1])
}

// paramName prefers the key so the constructor reads like the stored data.
func paramName(f Field) string {
	p := f.Key
	if !token.IsIdentifier(p) {
		p = lowerFirst(f.Name)
	}
	if token.IsKeyword(p) || p == "e" || p == "raw" {
		p += "Value"
	}
	return p
}

// params renders the constructor parameters after the engine, one per field.
func params(fields []Field) string {
	var sb strings.Builder
	for i, f := range fields {
		sb.WriteString(paramName(f))
		sb.WriteByte(' ')
		sb.WriteString(f.Type)
		if i < len(fields)-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

func quote(s string) string {
	return strconv.Quote(s)
}
