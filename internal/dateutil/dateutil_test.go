package dateutil

import (
	"errors"
	"strings"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// TestParseLayout - Token conversion
// ---------------------------------------------------------------------------

func TestParseLayout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		layout  string
		want    string
		wantErr error
	}{
		{name: "year", layout: "YYYY", want: "2006"},
		{name: "short year", layout: "YY", want: "06"},
		{name: "full month", layout: "MMMM", want: "January"},
		{name: "short month", layout: "MMM", want: "Jan"},
		{name: "padded month", layout: "MM", want: "01"},
		{name: "month", layout: "M", want: "1"},
		{name: "padded day", layout: "DD", want: "02"},
		{name: "day", layout: "D", want: "2"},
		{name: "hours", layout: "HH", want: "15"},
		{name: "minutes are lowercase", layout: "mm", want: "04"},
		{name: "seconds", layout: "ss", want: "05"},
		{name: "report timestamp", layout: "YYYY-MM-DD HH:mm:ss", want: "2006-01-02 15:04:05"},
		{name: "european", layout: "DD/MM/YYYY", want: "02/01/2006"},
		{name: "brackets keep literals", layout: "[Date]: YYYY", want: "Date: 2006"},
		{name: "brackets keep tokens", layout: "[YYYY]", want: "YYYY"},
		{name: "empty brackets", layout: "[]YYYY", want: "2006"},
		{name: "unclosed bracket", layout: "[YYYY", wantErr: ErrInvalidLayout},
		{name: "empty layout", layout: "", wantErr: ErrInvalidLayout},
		{name: "too long", layout: strings.Repeat("-", MaxLayoutLength+1), wantErr: ErrInvalidLayout},
		{name: "at max length", layout: strings.Repeat("-", MaxLayoutLength), want: strings.Repeat("-", MaxLayoutLength)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseLayout(tt.layout)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseLayout(%q) = %q, want %q", tt.layout, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestFormat - Rendering with a fixed clock
// ---------------------------------------------------------------------------

var fixed = time.Date(2025, time.March, 7, 9, 5, 3, 0, time.UTC)

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		layout string
		want   string
	}{
		{"YYYY-MM-DD HH:mm:ss", "2025-03-07 09:05:03"},
		{"datetime", "2025-03-07 09:05:03"},
		{"ISO", "2025-03-07"},
		{"long", "March 7, 2025"},
	}

	for _, tt := range tests {
		t.Run(tt.layout, func(t *testing.T) {
			t.Parallel()

			got, err := Format(fixed, tt.layout)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.layout, got, tt.want)
			}
		})
	}
}
