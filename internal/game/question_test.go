package game

import (
	"testing"
)

func TestIsQuestion(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"Is it alive?", true},
		{"Is it alive", false},
		{"/status?", false},
		{"   trailing?   ", true},
		{"", false},
		{"   ", false},
		{"?", true},
		{"  /endgame?  ", false},
	}
	for _, c := range cases {
		if got := IsQuestion(c.text); got != c.want {
			t.Fatalf("IsQuestion(%q) = %v, want %v", c.text, got, c.want)
		}
	}
}
