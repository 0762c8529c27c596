package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestNewTitle(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"plain", "Hello", "Hello", false},
		{"trims whitespace", "  Hello  ", "Hello", false},
		{"empty", "", "", true},
		{"only spaces", "   ", "", true},
		{"max length", strings.Repeat("a", MaxTitleLength), strings.Repeat("a", MaxTitleLength), false},
		{"too long", strings.Repeat("a", MaxTitleLength+1), "", true},
		{"multibyte within limit", strings.Repeat("あ", MaxTitleLength), strings.Repeat("あ", MaxTitleLength), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTitle(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrValidation) {
					t.Fatalf("NewTitle(%q) error = %v, want ErrValidation", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewTitle(%q) unexpected error = %v", tt.raw, err)
			}
			if got.String() != tt.want {
				t.Errorf("NewTitle(%q) = %q, want %q", tt.raw, got.String(), tt.want)
			}
		})
	}
}

func TestNewContent(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"plain", "Body", false},
		{"empty", "", true},
		{"whitespace", "\n\t ", true},
		{"max length", strings.Repeat("b", MaxContentLength), false},
		{"too long", strings.Repeat("b", MaxContentLength+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewContent(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewContent() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseIDs(t *testing.T) {
	if _, err := ParseArticleID("not-a-uuid"); !errors.Is(err, ErrValidation) {
		t.Errorf("ParseArticleID() error = %v, want ErrValidation", err)
	}
	if _, err := ParseAuthorID(""); !errors.Is(err, ErrValidation) {
		t.Errorf("ParseAuthorID() error = %v, want ErrValidation", err)
	}

	id := NewArticleID()
	parsed, err := ParseArticleID(id.String())
	if err != nil {
		t.Fatalf("ParseArticleID() error = %v", err)
	}
	if parsed != id {
		t.Errorf("ParseArticleID() = %v, want %v", parsed, id)
	}
}

func TestIsValidStatus(t *testing.T) {
	tests := []struct {
		status string
		valid  bool
	}{
		{"draft", true},
		{"published", true},
		{"archived", true},
		{"deleted", false},
		{"", false},
		{"DRAFT", false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			if got := IsValidStatus(tt.status); got != tt.valid {
				t.Errorf("IsValidStatus(%q) = %v, want %v", tt.status, got, tt.valid)
			}
		})
	}
}

func TestIsValidEventType(t *testing.T) {
	for _, et := range EventTypes {
		if !IsValidEventType(string(et)) {
			t.Errorf("IsValidEventType(%q) = false, want true", et)
		}
	}
	if IsValidEventType("UNPUBLISH") {
		t.Error("IsValidEventType(UNPUBLISH) = true, want false")
	}
}
