package validators

import "strings"

// noteValidator checks note bodies.
type noteValidator struct{}

func (v *noteValidator) Validate(body []byte) ([]string, error) {
	var request struct {
		Title *string `json:"title"`
		Text  *string `json:"text"`
	}
	if err := decode(body, &request); err != nil {
		return nil, err
	}

	var violations []string

	switch {
	case request.Title == nil:
		violations = append(violations, "Title is required")
	case strings.TrimSpace(*request.Title) == "":
		violations = append(violations, "Title can not be empty")
	case len(strings.TrimSpace(*request.Title)) > 50:
		violations = append(violations, "Title must be less than 50 characters")
	}

	switch {
	case request.Text == nil:
		violations = append(violations, "Text is required")
	case strings.TrimSpace(*request.Text) == "":
		violations = append(violations, "Text can not be empty")
	case len(strings.TrimSpace(*request.Text)) > 1000:
		violations = append(violations, "Text must be less than 1000 characters")
	}

	return violations, nil
}
