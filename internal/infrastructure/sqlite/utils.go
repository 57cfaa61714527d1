package sqlite

import (
	"errors"
	"strings"

	sqlite3 "modernc.org/sqlite"
)

// Códigos extendidos de SQLite para violaciones de constraint.
const (
	codeConstraint           = 19
	codeConstraintPrimaryKey = 1555
	codeConstraintUnique     = 2067
)

// isUniqueViolation verifica si un error es una violación de constraint único.
func isUniqueViolation(err error) bool {
	var serr *sqlite3.Error
	if errors.As(err, &serr) {
		switch serr.Code() {
		case codeConstraint, codeConstraintPrimaryKey, codeConstraintUnique:
			return true
		}
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
