package domain

type Provider string

const (
	ProviderGoogle Provider = "google"
	ProviderLocal  Provider = "local"
)

// AuthPayload is the identity carried inside a bearer token. The grading
// path receives it already verified by the middleware.
type AuthPayload struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
}

type LoginResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}
