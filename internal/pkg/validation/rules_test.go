package validation

import "testing"

func TestRegistrationNoPattern(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{in: "CS202100042", want: true},
		{in: "EE123456", want: true},
		{in: "AB1234567890", want: true},
		{in: "cs202100042", want: false}, // lowercase prefix
		{in: "C202100042", want: false},  // single letter
		{in: "CS12345", want: false},     // too few digits
		{in: "CS12345678901", want: false},
		{in: "", want: false},
	}
	for _, tt := range tests {
		if got := CompiledPatterns.RegistrationNo.MatchString(tt.in); got != tt.want {
			t.Errorf("RegistrationNo.MatchString(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestStringValidation(t *testing.T) {
	if NewStringValidation("").Validate() {
		t.Error("required empty value should fail")
	}
	if !NewStringValidation("").WithRequired(false).Validate() {
		t.Error("optional empty value should pass")
	}
	if NewStringValidation("ab").WithMinLength(3).Validate() {
		t.Error("value below minimum length should fail")
	}
	if NewStringValidation("abcdef").WithMaxLength(3).Validate() {
		t.Error("value above maximum length should fail")
	}
	if !NewStringValidation("user@example.com").WithPattern(CompiledPatterns.Email).Validate() {
		t.Error("valid email should pass the pattern")
	}
	if NewStringValidation("not-an-email").WithPattern(CompiledPatterns.Email).Validate() {
		t.Error("invalid email should fail the pattern")
	}
}
