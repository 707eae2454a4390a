package assets

import (
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestCheckName - Style and template name rules
// ---------------------------------------------------------------------------

func TestCheckName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		wantErr bool
	}{
		{"default", false},
		{"page", false},
		{"dark-theme", false},
		{"report_v2", false},
		{"Github", false},
		{"", true},
		{"../secret", true},
		{`..\secret`, true},
		{"styles/default", true},
		{"default.css", true},
		{"with space", true},
		{"nul\x00", true},
		{"café", true},
		{strings.Repeat("a", maxNameLen), false},
		{strings.Repeat("a", maxNameLen+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			err := checkName(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAssetName) {
					t.Errorf("checkName(%q) = %v, want ErrInvalidAssetName", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Errorf("checkName(%q) unexpected error: %v", tt.input, err)
			}
		})
	}
}
