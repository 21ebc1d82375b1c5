package services

import "testing"

func TestCountWords(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    int
	}{
		{"empty", "", 0},
		{"whitespace only", "  \n\t  ", 0},
		{"single word", "hello", 1},
		{"collapses runs of whitespace", "one  two\tthree\n\nfour", 4},
		{"leading and trailing space", "  the essay  ", 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CountWords(tc.content); got != tc.want {
				t.Fatalf("CountWords(%q) = %d, want %d", tc.content, got, tc.want)
			}
		})
	}
}
