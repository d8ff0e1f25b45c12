package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolver_ImageURL(t *testing.T) {
	base := Config{
		LocalHost:     "http://127.0.0.1:4943",
		Canister:      "bkyz2-fmaaa-aaaaa-qaaaq-cai",
		HostedDomain:  "raw.icp0.io",
		PublicBaseURL: "https://cdn.example.com/",
		Bucket:        "metabuild",
		MediaPrefix:   "media",
		Fallback:      DefaultFallback,
	}

	tests := []struct {
		name string
		env  string
		ref  string
		want string
	}{
		{"Local", EnvironmentLocal, "Expo_A_1700", "http://127.0.0.1:4943/?canisterId=bkyz2-fmaaa-aaaaa-qaaaq-cai&imgid=Expo_A_1700"},
		{"Hosted", EnvironmentHosted, "Expo_A_1700", "https://bkyz2-fmaaa-aaaaa-qaaaq-cai.raw.icp0.io/?imgid=Expo_A_1700"},
		{"HostedEscapes", EnvironmentHosted, "a&b", "https://bkyz2-fmaaa-aaaaa-qaaaq-cai.raw.icp0.io/?imgid=a%26b"},
		{"Storage", EnvironmentStorage, "Expo_A_1700", "https://cdn.example.com/metabuild/media/Expo_A_1700"},
		{"Empty", EnvironmentHosted, "", DefaultFallback},
		{"Undefined", EnvironmentLocal, "undefined", DefaultFallback},
		{"Null", EnvironmentStorage, "null", DefaultFallback},
		{"UnknownEnvironment", "staging", "Expo_A_1700", DefaultFallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			cfg.Environment = tt.env
			assert.Equal(t, tt.want, NewResolver(cfg).ImageURL(tt.ref))
		})
	}
}

func TestNewResolver_Defaults(t *testing.T) {
	r := NewResolver(Config{Environment: EnvironmentHosted})
	assert.Equal(t, DefaultFallback, r.Fallback())
	// No canister configured means there is nothing to resolve against.
	assert.Equal(t, DefaultFallback, r.ImageURL("img"))
}
