package model

import "testing"

func TestParseFieldType(t *testing.T) {
	tests := []struct {
		in   string
		want FieldType
	}{
		{"username", TypeUsername},
		{"email", TypeEmail},
		{"card-expiration-mmyy", TypeCardExpirationMMYY},
		{"other", TypeOther},
		{"telephone", TypeOther},
		{"", TypeOther},
	}
	for _, tt := range tests {
		if got := ParseFieldType(tt.in); got != tt.want {
			t.Errorf("ParseFieldType(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestFieldIsUsername(t *testing.T) {
	if !(Field{Type: TypeUsername}).IsUsername() {
		t.Error("username field should count as identifier")
	}
	if !(Field{Type: TypeEmail}).IsUsername() {
		t.Error("email field should count as identifier")
	}
	if (Field{Type: TypePassword}).IsUsername() {
		t.Error("password field should not count as identifier")
	}
}
