package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"env": map[string]any{
			"serviceName": "beacon",
			"log": map[string]any{
				"level": "info",
			},
		},
		"postgres": map[string]any{
			"sslMode": "disable",
		},
		"pubsub": map[string]any{
			"natsUrl": "nats://localhost:4222",
		},
	}

	tests := []struct {
		name string
		key  string
		want string
	}{
		{
			name: "aligns camelCase segments with yaml keys",
			key:  "POSTGRES_SSLMODE",
			want: "postgres.sslMode",
		},
		{
			name: "nested path",
			key:  "ENV_LOG_LEVEL",
			want: "env.log.level",
		},
		{
			name: "camelCase leaf in pubsub block",
			key:  "PUBSUB_NATSURL",
			want: "pubsub.natsUrl",
		},
		{
			name: "unknown segments fall back to lowercase",
			key:  "HTTP_PORT",
			want: "http.port",
		},
		{
			name: "compound leaf matched through separator stripping",
			key:  "ENV_SERVICENAME",
			want: "env.serviceName",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.key, existing))
		})
	}
}

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, "sslmode", normalizeToken("sslMode"))
	assert.Equal(t, "sslmode", normalizeToken("SSL_MODE"))
	assert.Equal(t, "natsurl", normalizeToken("nats-url"))
}
