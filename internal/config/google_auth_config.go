package config

import "os"

type GGAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	// AllowedDomain restricts Google sign-in to one e-mail domain when set
	AllowedDomain string
}

func NewGGAuthConfig() *GGAuthConfig {
	return &GGAuthConfig{
		ClientID:      os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret:  os.Getenv("GOOGLE_CLIENT_SECRET"),
		RedirectURL:   getEnv("GOOGLE_REDIRECT_URL", "http://localhost:8082/auth/callback"),
		AllowedDomain: os.Getenv("GOOGLE_ALLOWED_DOMAIN"),
	}
}

// Enabled reports whether Google sign-in is configured
func (c *GGAuthConfig) Enabled() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}
