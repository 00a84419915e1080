package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestResolveAPIKey(t *testing.T) {
	names := []string{"API_KEY", "GEMINI_API_KEY", "GOOGLE_API_KEY"}

	tests := []struct {
		name     string
		env      map[string]string
		fallback string
		wantKey  string
		wantSrc  string
		wantErr  error
	}{
		{
			name:    "first name wins",
			env:     map[string]string{"API_KEY": "AIzaFirst", "GEMINI_API_KEY": "AIzaSecond"},
			wantKey: "AIzaFirst",
			wantSrc: "API_KEY",
		},
		{
			name:    "empty value skipped",
			env:     map[string]string{"API_KEY": "", "GOOGLE_API_KEY": "AIzaThird"},
			wantKey: "AIzaThird",
			wantSrc: "GOOGLE_API_KEY",
		},
		{
			name:    "quotes and whitespace stripped",
			env:     map[string]string{"GEMINI_API_KEY": "  \"AIza Key\"\n"},
			wantKey: "AIzaKey",
			wantSrc: "GEMINI_API_KEY",
		},
		{
			name:     "config fallback",
			fallback: "'AIzaConfig'",
			wantKey:  "AIzaConfig",
			wantSrc:  "config",
		},
		{
			name:    "missing",
			wantErr: ErrMissingAPIKey,
		},
		{
			name:    "placeholder",
			env:     map[string]string{"API_KEY": "YOUR_API_KEY_HERE"},
			wantErr: ErrInvalidAPIKey,
		},
		{
			name:    "only quotes",
			env:     map[string]string{"API_KEY": "\"\""},
			wantErr: ErrInvalidAPIKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cred, err := ResolveAPIKey(names, tt.fallback, envOf(tt.env))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, cred.Key)
			assert.Equal(t, tt.wantSrc, cred.Source)
		})
	}
}

func TestCredential_Masked(t *testing.T) {
	assert.Equal(t, "AIza... (len=10)", Credential{Key: "AIzaSecret"}.Masked())
	assert.Equal(t, "ab... (len=2)", Credential{Key: "ab"}.Masked())
}
