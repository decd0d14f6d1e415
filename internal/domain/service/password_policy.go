package service

import (
	"strings"
	"unicode"
	"unicode/utf8"

	domainerrors "voltstore/internal/domain/errors"
)

// passwordSymbols is the set of characters that count as a special character.
const passwordSymbols = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

// defaultMinPasswordLength is the minimum accepted password length.
const defaultMinPasswordLength = 8

// PasswordPolicy is a pure validator enforcing the minimum-strength gate for
// passwords. Checks run in a fixed order and the first failure wins; there is
// no maximum length and no dictionary check.
type PasswordPolicy struct {
	minLength        int
	requireUppercase bool
	requireLowercase bool
	requireDigit     bool
	requireSymbol    bool
}

// PasswordPolicyOptions tunes the policy. Zero values fall back to the
// defaults, which require all four character classes and length >= 8.
type PasswordPolicyOptions struct {
	MinLength        int
	RequireUppercase *bool
	RequireLowercase *bool
	RequireDigit     *bool
	RequireSymbol    *bool
}

// NewPasswordPolicy builds a policy with the default requirements.
func NewPasswordPolicy() *PasswordPolicy {
	return NewPasswordPolicyWithOptions(PasswordPolicyOptions{})
}

// NewPasswordPolicyWithOptions builds a policy from the given options.
func NewPasswordPolicyWithOptions(opts PasswordPolicyOptions) *PasswordPolicy {
	policy := &PasswordPolicy{
		minLength:        defaultMinPasswordLength,
		requireUppercase: true,
		requireLowercase: true,
		requireDigit:     true,
		requireSymbol:    true,
	}
	if opts.MinLength > 0 {
		policy.minLength = opts.MinLength
	}
	if opts.RequireUppercase != nil {
		policy.requireUppercase = *opts.RequireUppercase
	}
	if opts.RequireLowercase != nil {
		policy.requireLowercase = *opts.RequireLowercase
	}
	if opts.RequireDigit != nil {
		policy.requireDigit = *opts.RequireDigit
	}
	if opts.RequireSymbol != nil {
		policy.requireSymbol = *opts.RequireSymbol
	}

	return policy
}

// Validate checks a candidate plaintext password against the policy.
// It is fail-fast: the first violated rule is reported and later rules are
// not evaluated. The returned errors are the password violations declared in
// the domain errors package.
func (p *PasswordPolicy) Validate(password string) error {
	// Length counts characters, not bytes; multibyte runes count once.
	if utf8.RuneCountInString(password) < p.minLength {
		return domainerrors.ErrPasswordTooShort
	}
	if p.requireUppercase && !strings.ContainsFunc(password, unicode.IsUpper) {
		return domainerrors.ErrPasswordMissingUppercase
	}
	if p.requireLowercase && !strings.ContainsFunc(password, unicode.IsLower) {
		return domainerrors.ErrPasswordMissingLowercase
	}
	if p.requireDigit && !strings.ContainsFunc(password, unicode.IsDigit) {
		return domainerrors.ErrPasswordMissingDigit
	}
	if p.requireSymbol && !strings.ContainsAny(password, passwordSymbols) {
		return domainerrors.ErrPasswordMissingSymbol
	}

	return nil
}
