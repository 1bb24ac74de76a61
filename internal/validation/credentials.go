package validation

import (
	"net/mail"
	"strings"
)

const (
	maxNameLength  = 100
	maxEmailLength = 254
	// bcrypt ignores everything past 72 bytes.
	maxPasswordLength = 72
)

type CredentialsValidator struct {
	minPasswordLength int
}

func NewCredentialsValidator(minPasswordLength int) *CredentialsValidator {
	return &CredentialsValidator{minPasswordLength: max(1, minPasswordLength)}
}

func (v *CredentialsValidator) ValidateRegistration(name, email, password string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > maxNameLength {
		return ErrNameTooLong
	}
	if err := v.validateEmail(email); err != nil {
		return err
	}
	if err := v.validatePassword(password); err != nil {
		return err
	}
	if len(password) < v.minPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

// ValidateLogin only checks shape; the length policy applies at registration
// so that users created under an older policy can still log in.
func (v *CredentialsValidator) ValidateLogin(email, password string) error {
	if err := v.validateEmail(email); err != nil {
		return err
	}
	return v.validatePassword(password)
}

func (v *CredentialsValidator) validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmptyEmail
	}
	if len(email) > maxEmailLength {
		return ErrEmailTooLong
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}

func (v *CredentialsValidator) validatePassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if len(password) > maxPasswordLength {
		return ErrPasswordTooLong
	}
	return nil
}
