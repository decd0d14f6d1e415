package service

import (
	"testing"

	domainerrors "voltstore/internal/domain/errors"

	"github.com/stretchr/testify/assert"
)

func TestPasswordPolicy_Validate(t *testing.T) {
	policy := NewPasswordPolicy()

	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "valid", password: "Str0ng!pass", wantErr: nil},
		{name: "too short", password: "S0r!t", wantErr: domainerrors.ErrPasswordTooShort},
		{name: "missing uppercase", password: "weak0!pass", wantErr: domainerrors.ErrPasswordMissingUppercase},
		{name: "missing lowercase", password: "WEAK0!PASS", wantErr: domainerrors.ErrPasswordMissingLowercase},
		{name: "missing digit", password: "Weakk!pass", wantErr: domainerrors.ErrPasswordMissingDigit},
		{name: "missing symbol", password: "Weak0ppass", wantErr: domainerrors.ErrPasswordMissingSymbol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := policy.Validate(tt.password)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

// The checks run in a fixed order; a password violating several rules reports
// only the first one.
func TestPasswordPolicy_FirstFailureWins(t *testing.T) {
	policy := NewPasswordPolicy()

	// Too short AND missing every class.
	assert.ErrorIs(t, policy.Validate("aa"), domainerrors.ErrPasswordTooShort)

	// Long enough, missing upper + digit + symbol: uppercase reported first.
	assert.ErrorIs(t, policy.Validate("aaaaaaaaaa"), domainerrors.ErrPasswordMissingUppercase)

	// Missing digit + symbol: digit reported first.
	assert.ErrorIs(t, policy.Validate("Aaaaaaaaaa"), domainerrors.ErrPasswordMissingDigit)
}

func TestPasswordPolicy_SymbolSet(t *testing.T) {
	policy := NewPasswordPolicy()

	for _, symbol := range passwordSymbols {
		assert.NoError(t, policy.Validate("Passw0rd"+string(symbol)))
	}

	// A space is not a symbol.
	assert.ErrorIs(t, policy.Validate("Passw0rd "), domainerrors.ErrPasswordMissingSymbol)
}

func TestPasswordPolicy_Options(t *testing.T) {
	relaxed := false
	policy := NewPasswordPolicyWithOptions(PasswordPolicyOptions{
		MinLength:     4,
		RequireSymbol: &relaxed,
		RequireDigit:  &relaxed,
	})

	assert.NoError(t, policy.Validate("Abcd"))
	assert.ErrorIs(t, policy.Validate("Abc"), domainerrors.ErrPasswordTooShort)
	assert.ErrorIs(t, policy.Validate("abcd"), domainerrors.ErrPasswordMissingUppercase)
}

func TestPasswordPolicy_LengthCountsRunes(t *testing.T) {
	policy := NewPasswordPolicy()

	// Exactly 8 characters passes the length gate.
	assert.NoError(t, policy.Validate("Abcdef1!"))
	assert.ErrorIs(t, policy.Validate("Abcde1!"), domainerrors.ErrPasswordTooShort)

	// 7 characters is too short even when the byte count reaches 8.
	assert.ErrorIs(t, policy.Validate("Päss0w!"), domainerrors.ErrPasswordTooShort)

	// 8 characters with a multibyte rune passes.
	assert.NoError(t, policy.Validate("Päss0wd!"))
}
