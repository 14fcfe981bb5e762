package util

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes the LIKE metacharacters in s using backslash as the escape
// character, so s matches only itself inside a LIKE pattern.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// BuildLikePattern turns a raw search query into a "contains" LIKE pattern.
// The query is matched as given, spaces included; an empty query matches
// everything.
func BuildLikePattern(query string) string {
	return "%" + EscapeLike(query) + "%"
}
