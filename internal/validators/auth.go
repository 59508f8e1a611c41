package validators

import "regexp"

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

	// Account passwords: at least 10 characters drawn from letters, digits
	// and $*&@#, with at least one digit, one lowercase, one uppercase and
	// one special character. Go's regexp has no lookahead, so the four
	// class requirements are checked separately.
	passwordAlphabet  = regexp.MustCompile(`^[0-9a-zA-Z$*&@#]{10,}$`)
	passwordHasDigit  = regexp.MustCompile(`[0-9]`)
	passwordHasLower  = regexp.MustCompile(`[a-z]`)
	passwordHasUpper  = regexp.MustCompile(`[A-Z]`)
	passwordHasSymbol = regexp.MustCompile(`[$*&@#]`)
)

const (
	msgInvalidEmail    = "Email must be a valid email address"
	msgInvalidPassword = "Password must contain at least 10 characters, 1 uppercase letter, 1 lowercase letter, 1 number and 1 special character"
)

// authValidator checks sign-up and sign-in bodies.
type authValidator struct{}

func (v *authValidator) Validate(body []byte) ([]string, error) {
	var request struct {
		Email    *string `json:"email"`
		Password *string `json:"password"`
	}
	if err := decode(body, &request); err != nil {
		return nil, err
	}

	var violations []string

	if email, ok := requiredString(&violations, "Email", request.Email); ok {
		if !emailPattern.MatchString(email) {
			violations = append(violations, msgInvalidEmail)
		}
	}

	if password, ok := requiredString(&violations, "Password", request.Password); ok {
		if !validAccountPassword(password) {
			violations = append(violations, msgInvalidPassword)
		}
	}

	return violations, nil
}

func validAccountPassword(password string) bool {
	return passwordAlphabet.MatchString(password) &&
		passwordHasDigit.MatchString(password) &&
		passwordHasLower.MatchString(password) &&
		passwordHasUpper.MatchString(password) &&
		passwordHasSymbol.MatchString(password)
}
