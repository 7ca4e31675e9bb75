package metadomain

import "time"

const (
	DefaultBaseURL = "https://graph.facebook.com/v20.0"
	DefaultTimeout = 30 * time.Second
)

// Credentials são os dados necessários para falar com a Graph API em nome de uma conta
type Credentials struct {
	AccessToken string
	AppID       string
	AppSecret   string
	AdAccountID string
	BaseURL     string
	Timeout     time.Duration
}

// WithDefaults preenche URL base e timeout quando ausentes
func (c Credentials) WithDefaults() Credentials {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}

func (c Credentials) IsConfigured() bool {
	return c.AccessToken != ""
}
