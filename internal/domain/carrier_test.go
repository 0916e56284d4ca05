package domain

import (
	"errors"
	"testing"
)

func TestNormalizeMCNumber(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "bare digits", in: "123456", want: "123456"},
		{name: "mc prefix", in: "MC123456", want: "123456"},
		{name: "lowercase prefix", in: "mc123456", want: "123456"},
		{name: "prefix with space", in: "MC 123456", want: "123456"},
		{name: "surrounding whitespace", in: "  123456  ", want: "123456"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeMCNumber(tc.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("NormalizeMCNumber(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeMCNumberRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{name: "empty", in: ""},
		{name: "whitespace only", in: "   "},
		{name: "prefix only", in: "MC"},
		{name: "alphabetic", in: "ABCDEF"},
		{name: "mixed", in: "MC12A456"},
		{name: "negative", in: "-123456"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NormalizeMCNumber(tc.in)
			if !errors.Is(err, ErrInvalidMCNumber) {
				t.Fatalf("NormalizeMCNumber(%q) err = %v, want ErrInvalidMCNumber", tc.in, err)
			}
		})
	}
}
