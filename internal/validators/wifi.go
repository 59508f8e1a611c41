package validators

// wifiValidator checks wifi network bodies.
type wifiValidator struct{}

func (v *wifiValidator) Validate(body []byte) ([]string, error) {
	var request struct {
		Title    *string `json:"title"`
		WifiName *string `json:"wifiName"`
		Password *string `json:"password"`
	}
	if err := decode(body, &request); err != nil {
		return nil, err
	}

	var violations []string

	if title, ok := requiredString(&violations, "Title", request.Title); ok {
		if len(title) > 50 {
			violations = append(violations, "Title must be less than 50 characters")
		}
	}

	if wifiName, ok := requiredString(&violations, "Wifi name", request.WifiName); ok {
		if len(wifiName) > 50 {
			violations = append(violations, "Wifi name must be less than 50 characters")
		}
	}

	if password, ok := requiredString(&violations, "Password", request.Password); ok {
		if len(password) < 8 {
			violations = append(violations, "Password must contain at least 8 characters")
		}
	}

	return violations, nil
}
