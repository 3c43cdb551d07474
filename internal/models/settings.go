package models

import "strings"

// RedditSettings holds the platform credentials the user configures before
// discovery may run. The secret never leaves the process unredacted.
type RedditSettings struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	UserAgent    string `json:"user_agent"`
}

// Configured reports whether the credential pair is present.
func (s RedditSettings) Configured() bool {
	return strings.TrimSpace(s.ClientID) != "" && strings.TrimSpace(s.ClientSecret) != ""
}

// Redacted returns a copy safe to hand to the UI.
func (s RedditSettings) Redacted() RedditSettings {
	if s.ClientSecret != "" {
		s.ClientSecret = "••••••••"
	}
	return s
}
