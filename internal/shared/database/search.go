package database

import "strings"

// likeEscaper escapes the LIKE wildcards with a backslash, matching the ESCAPE clause of LikeContains
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// LikeContains returns a "<column> LIKE ? ESCAPE '\'" condition and the pattern matching q anywhere.
// Wildcards typed by the user are matched literally.
func LikeContains(column, q string) (string, string) {
	return column + ` LIKE ? ESCAPE '\'`, "%" + likeEscaper.Replace(q) + "%"
}
