package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSessionName(t *testing.T) {
	tests := []struct {
		name        string
		sessionName string
		wantErr     bool
		errMsg      string
	}{
		{
			name:        "valid name - latin",
			sessionName: "Warehouse A, August",
			wantErr:     false,
		},
		{
			name:        "valid name - cyrillic",
			sessionName: "Склад А, август",
			wantErr:     false,
		},
		{
			name:        "valid name - max length in runes",
			sessionName: strings.Repeat("ы", 64), // 64 символа, 128 байт
			wantErr:     false,
		},
		{
			name:        "invalid - empty",
			sessionName: "",
			wantErr:     true,
			errMsg:      "session name cannot be empty",
		},
		{
			name:        "invalid - whitespace only",
			sessionName: "   ",
			wantErr:     true,
			errMsg:      "session name cannot be empty",
		},
		{
			name:        "invalid - too long (65 runes)",
			sessionName: strings.Repeat("a", 65),
			wantErr:     true,
			errMsg:      "must not exceed 64 characters",
		},
		{
			name:        "invalid - with newline",
			sessionName: "Склад\nА",
			wantErr:     true,
			errMsg:      "cannot contain control characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSessionName(tt.sessionName)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateDisplayName(t *testing.T) {
	tests := []struct {
		name        string
		displayName string
		wantErr     bool
		errMsg      string
	}{
		{
			name:        "valid name - short",
			displayName: "Анна",
			wantErr:     false,
		},
		{
			name:        "valid name - with dot",
			displayName: "Борис Н.",
			wantErr:     false,
		},
		{
			name:        "invalid - empty",
			displayName: "",
			wantErr:     true,
			errMsg:      "display name cannot be empty",
		},
		{
			name:        "invalid - whitespace only",
			displayName: " \t ",
			wantErr:     true,
			errMsg:      "display name cannot be empty",
		},
		{
			name:        "invalid - too long (33 runes)",
			displayName: strings.Repeat("n", 33),
			wantErr:     true,
			errMsg:      "must not exceed 32 characters",
		},
		{
			name:        "invalid - with control character",
			displayName: "Анна\x07",
			wantErr:     true,
			errMsg:      "cannot contain control characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDisplayName(tt.displayName)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
