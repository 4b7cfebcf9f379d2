package taskhub

import (
	"errors"
	"testing"
)

func TestIsNotEmpty(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"   ", false},
		{"\t\n", false},
		{"a", true},
		{"  a  ", true},
	}
	for _, tc := range cases {
		if got := IsNotEmpty(tc.in); got != tc.want {
			t.Errorf("IsNotEmpty(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestIsEmailValid(t *testing.T) {
	valid := []string{
		"alice@example.com",
		"a.b+tag@sub.domain.org",
		"user_99%x@host.io",
	}
	for _, s := range valid {
		if !IsEmailValid(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}

	invalid := []string{
		"",
		"alice",
		"alice@",
		"@example.com",
		"Alice@example.com",
		"alice@example.c",
		"alice@example.toolong",
		"alice@example.COM",
	}
	for _, s := range invalid {
		if IsEmailValid(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestCheckPasswordPolicy(t *testing.T) {
	if err := CheckPasswordPolicy("abc", "abc"); !errors.Is(err, ErrPasswordLength) {
		t.Fatalf("3-char password: got %v, want ErrPasswordLength", err)
	}
	if err := CheckPasswordPolicy("abcdefghijklm", "abcdefghijklm"); !errors.Is(err, ErrPasswordLength) {
		t.Fatalf("13-char password: got %v, want ErrPasswordLength", err)
	}
	if err := CheckPasswordPolicy("abcdef", "abcdez"); !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("mismatched confirmation: got %v, want ErrPasswordMismatch", err)
	}
	if err := CheckPasswordPolicy("abcdef", "abcdef"); err != nil {
		t.Fatalf("valid password rejected: %v", err)
	}
	// boundaries are inclusive
	if err := CheckPasswordPolicy("abcdefghijkl", "abcdefghijkl"); err != nil {
		t.Fatalf("12-char password rejected: %v", err)
	}
}
