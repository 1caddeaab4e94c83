package persistence

import "regexp"

var reValidKey = regexp.MustCompile(`^[0-9A-Za-z][0-9A-Za-z_]*$`)

// ValidateKey validates an identifier before it is interpolated into DDL
// text (CQL has no placeholders for identifiers)
func ValidateKey(key string) bool {
	return reValidKey.MatchString(key)
}
