// Package config loads server configuration from defaults overlaid with
// environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config is the flattened server configuration.
type Config struct {
	AppEnv string
	Port   int

	// Hosted data service
	DataServiceURL string
	DataServiceKey string

	// Secret for document share links
	ShareLinkSecret string

	// Role resolution: anyone signing in with an email outside these lists
	// must match a client record.
	AdminEmails   []string
	LimitedEmails []string
}

// Load builds the config from defaults plus BACKOFFICE_* env vars, e.g.
// BACKOFFICE_DATASERVICE_URL overrides dataservice.url.
func Load() (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"app.env":          "development",
		"port":             8080,
		"dataservice.url":  "http://localhost:54321",
		"dataservice.key":  "",
		"sharelink.secret": "dev-only-secret",
		"roles.admins":     "",
		"roles.limited":    "",
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load default config: %w", err)
	}

	err := k.Load(env.Provider("BACKOFFICE_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "BACKOFFICE_")), "_", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env config: %w", err)
	}

	cfg := &Config{
		AppEnv:          k.String("app.env"),
		Port:            k.Int("port"),
		DataServiceURL:  k.String("dataservice.url"),
		DataServiceKey:  k.String("dataservice.key"),
		ShareLinkSecret: k.String("sharelink.secret"),
		AdminEmails:     splitEmails(k.String("roles.admins")),
		LimitedEmails:   splitEmails(k.String("roles.limited")),
	}

	return cfg, nil
}

func splitEmails(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(strings.ToLower(p)); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// IsAdmin reports whether the email belongs to a back-office admin.
func (c *Config) IsAdmin(email string) bool {
	return containsFold(c.AdminEmails, email)
}

// IsLimited reports whether the email belongs to a limited-access user.
func (c *Config) IsLimited(email string) bool {
	return containsFold(c.LimitedEmails, email)
}

func containsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}
