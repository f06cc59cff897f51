package model

// Scope identifies the authenticated caller of a request.
type Scope struct {
	UserID    string
	Username  string
	SessionID string
}

// IsAuthenticated reports whether the scope belongs to a signed-in user.
func (s Scope) IsAuthenticated() bool {
	return s.UserID != ""
}

// Environment names the deployment stage.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
