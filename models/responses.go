package models

// MessageResponse is the uniform JSON body for mutation successes and for
// every error the API returns: {"message": "<text>"}.
type MessageResponse struct {
	Message string `json:"message"`
}

// SignInResponse is returned by POST /sign-in on successful authentication.
type SignInResponse struct {
	// Token is the compact JWS string the client must send back in the
	// "Authorization: Bearer <token>" header.
	Token string `json:"token"`

	// Message is a human-readable confirmation.
	Message string `json:"message"`
}
