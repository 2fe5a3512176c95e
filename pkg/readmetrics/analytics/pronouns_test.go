package analytics

import "testing"

func TestCountPersonalPronouns(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"I love this. We hate that.", 2},
		{"The US economy is large.", 0},
		{"They gave it to Us ", 1},
		{"Give it to us.", 1},
		{"Send us UN aid", 0},
		{"We NASA engineers", 0},
		{"We\n  NA", 0},
		{"ourselves and yourselves", 0},
		{"Mine is ours, not theirs.", 1},
		{"my_var is not a pronoun", 0},
		{"We're here; my dog and I.", 3},
		{"bus trust music", 0},
		{"", 0},
	}
	for _, tc := range cases {
		if got := CountPersonalPronouns(tc.text); got != tc.want {
			t.Errorf("CountPersonalPronouns(%q) = %d, want %d", tc.text, got, tc.want)
		}
	}
}
