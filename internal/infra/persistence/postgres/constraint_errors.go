package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking.

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// Not every driver path translates to gorm.ErrDuplicatedKey, so also
	// match PostgreSQL's unique_violation wording and SQLSTATE.
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "23505")
}

// violatedConstraintMentions reports whether the violated constraint involves
// the given column. Only the quoted constraint name PostgreSQL embeds in the
// error message is inspected (e.g. "users_username_key"), never the rest of
// the message: the duplicate value itself may contain a column name, like the
// email username@example.com.
func violatedConstraintMentions(err error, column string) bool {
	constraint, ok := violatedConstraintName(err)
	if !ok {
		return false
	}

	return strings.Contains(strings.ToLower(constraint), strings.ToLower(column))
}

// violatedConstraintName extracts the constraint name quoted after
// `constraint "` in a PostgreSQL error message.
func violatedConstraintName(err error) (string, bool) {
	const marker = `constraint "`

	msg := err.Error()
	start := strings.Index(msg, marker)
	if start < 0 {
		return "", false
	}

	rest := msg[start+len(marker):]
	end := strings.IndexByte(rest, '"')
	if end < 0 {
		return "", false
	}

	return rest[:end], true
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "foreign key") ||
		strings.Contains(errMsg, "23503")
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502")
}
