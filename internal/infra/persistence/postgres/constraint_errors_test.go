package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.New(
		`ERROR: duplicate key value violates unique constraint "users_username_key" (SQLSTATE 23505)`)))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection refused")))
}

func TestViolatedConstraintMentions_UsesConstraintNameOnly(t *testing.T) {
	usernameErr := errors.New(
		`ERROR: duplicate key value violates unique constraint "users_username_key" (SQLSTATE 23505)`)
	assert.True(t, violatedConstraintMentions(usernameErr, "username"))
	assert.False(t, violatedConstraintMentions(usernameErr, "email"))

	// The duplicate value contains the word "username", but the violated
	// constraint is the email one.
	emailErr := errors.New(
		`ERROR: duplicate key value violates unique constraint "users_email_key", ` +
			`Detail: Key (email)=(username@example.com) already exists (SQLSTATE 23505)`)
	assert.True(t, violatedConstraintMentions(emailErr, "email"))
	assert.False(t, violatedConstraintMentions(emailErr, "username"))
}

func TestViolatedConstraintMentions_NoConstraintName(t *testing.T) {
	assert.False(t, violatedConstraintMentions(gorm.ErrDuplicatedKey, "username"))
	assert.False(t, violatedConstraintMentions(errors.New("duplicate key username"), "username"))
}
