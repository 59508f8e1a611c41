package validators

import (
	"regexp"

	"github.com/MKhiriev/go-secret-vault/models"
)

var (
	printedNamePattern    = regexp.MustCompile(`^[A-Z\s]+$`)
	digitsOnlyPattern     = regexp.MustCompile(`^[0-9]+$`)
	expirationDatePattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/?[0-9]{2}$`)
)

// cardValidator checks card bodies. Cards carry the strictest shape of the
// four kinds: bounded names, digit-only number/cvv/password fields, an
// MM/YY expiration date and a closed type enumeration.
type cardValidator struct{}

func (v *cardValidator) Validate(body []byte) ([]string, error) {
	var request struct {
		Nickname       *string `json:"nickname"`
		PrintedName    *string `json:"printedName"`
		Number         *string `json:"number"`
		CVV            *string `json:"cvv"`
		ExpirationDate *string `json:"expirationDate"`
		Password       *string `json:"password"`
		Virtual        *bool   `json:"virtual"`
		Type           *string `json:"type"`
	}
	if err := decode(body, &request); err != nil {
		return nil, err
	}

	var violations []string

	if nickname, ok := requiredString(&violations, "Nickname", request.Nickname); ok {
		if len(nickname) > 20 {
			violations = append(violations, "Nickname must be less than 20 characters")
		}
	}

	if printedName, ok := requiredString(&violations, "Printed name", request.PrintedName); ok {
		if len(printedName) > 50 {
			violations = append(violations, "Printed name must be less than 50 characters")
		}
		if !printedNamePattern.MatchString(printedName) {
			violations = append(violations, "Printed name must contain only uppercase letters and spaces")
		}
	}

	if number, ok := requiredString(&violations, "Number", request.Number); ok {
		if len(number) < 16 {
			violations = append(violations, "Number must contain at least 16 digits")
		}
		if !digitsOnlyPattern.MatchString(number) {
			violations = append(violations, "Number must contain only digits")
		}
	}

	if cvv, ok := requiredString(&violations, "CVV", request.CVV); ok {
		if len(cvv) != 3 || !digitsOnlyPattern.MatchString(cvv) {
			violations = append(violations, "CVV must be exactly 3 digits")
		}
	}

	if expirationDate, ok := requiredString(&violations, "Expiration date", request.ExpirationDate); ok {
		if !expirationDatePattern.MatchString(expirationDate) {
			violations = append(violations, "Expiration date must be in MM/YY format")
		}
	}

	if password, ok := requiredString(&violations, "Password", request.Password); ok {
		if len(password) < 4 || len(password) > 6 || !digitsOnlyPattern.MatchString(password) {
			violations = append(violations, "Password must be 4 to 6 digits")
		}
	}

	if request.Virtual == nil {
		violations = append(violations, "Virtual is required")
	}

	if cardType, ok := requiredString(&violations, "Type", request.Type); ok {
		switch cardType {
		case models.CardTypeCredit, models.CardTypeDebit, models.CardTypeBoth:
		default:
			violations = append(violations, "Type must be one of: credit, debit, both")
		}
	}

	return violations, nil
}
