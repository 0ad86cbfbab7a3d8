package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackerServiceConfig_Defaults(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := NewTrackerServiceConfig()
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, 0, cfg.GRPCHealthPort)
	assert.Equal(t, 168*time.Hour, cfg.Token.ExpiresIn)
	assert.Equal(t, "opportunity_tracker", cfg.Mongo.Database)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Empty(t, cfg.Consul.Address)
	assert.Empty(t, cfg.Google.ClientID)
}

func TestNewTrackerServiceConfig_Overrides(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("MONGO_DATABASE", "tracker")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("JWT_EXPIRES_IN", "1h")
	t.Setenv("PORT", "8080")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,https://app.example.com")
	t.Setenv("CONSUL_ADDRESS", "consul:8500")

	cfg, err := NewTrackerServiceConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "tracker", cfg.Mongo.Database)
	assert.Equal(t, time.Hour, cfg.Token.ExpiresIn)
	assert.Equal(t, []string{"http://localhost:3000", "https://app.example.com"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "consul:8500", cfg.Consul.Address)
}

func TestNewTrackerServiceConfig_Missing(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "mongo uri",
			env:     map[string]string{"MONGO_URI": "", "JWT_SECRET": "secret"},
			wantErr: "missing MONGO_URI environment variable",
		},
		{
			name:    "jwt secret",
			env:     map[string]string{"MONGO_URI": "mongodb://localhost", "JWT_SECRET": ""},
			wantErr: "missing JWT_SECRET environment variable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := NewTrackerServiceConfig()
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
