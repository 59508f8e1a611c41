package validators

// credentialValidator checks credential bodies: all four fields are
// required non-empty strings, with no further shape constraints.
type credentialValidator struct{}

func (v *credentialValidator) Validate(body []byte) ([]string, error) {
	var request struct {
		Title    *string `json:"title"`
		URL      *string `json:"url"`
		Username *string `json:"username"`
		Password *string `json:"password"`
	}
	if err := decode(body, &request); err != nil {
		return nil, err
	}

	var violations []string

	requiredString(&violations, "Title", request.Title)
	requiredString(&violations, "Url", request.URL)
	requiredString(&violations, "Username", request.Username)
	requiredString(&violations, "Password", request.Password)

	return violations, nil
}
