package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"directory": map[string]any{
			"baseUrl": "http://localhost:8000/api/auth",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"rateLimit": map[string]any{
			"rps": 10,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "DIRECTORY_BASEURL", want: "directory.baseUrl"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "RATELIMIT_RPS", want: "rateLimit.rps"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
