package caption

import (
	"reflect"
	"testing"
)

func TestIsDiscarded(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"vtt header", "WEBVTT", true},
		{"vtt header padded", "  WEBVTT  ", true},
		{"vtt header lowercase", "webvtt", false},
		{"vtt header with title", "WEBVTT - Lecture 1", false},
		{"note block", "NOTE this is a comment", true},
		{"style block", "STYLE", true},
		{"vtt timing", "00:00:01.000 --> 00:00:02.000", true},
		{"vtt timing with settings", "00:00:01.000 --> 00:00:02.000 align:start position:0%", true},
		{"srt timing", "00:00:01,000 --> 00:00:02,500", true},
		{"one digit hour", "1:02:03.000 --> 1:02:04.000", true},
		{"timing without arrow", "00:00:01.000", false},
		{"cue index", "42", true},
		{"empty", "", true},
		{"whitespace", " \t ", true},
		{"kind metadata", "Kind: captions", true},
		{"language metadata", "Language: en", true},
		{"sound effect", "[music]", true},
		{"bracketed applause", "[ APPLAUSE ]", true},
		{"partial bracket", "[music] and then", false},
		{"markup line", "<b>text</b>", true},
		{"voice tag", "<v Speaker>", true},
		{"markup inside text", "say <i>hello</i> now", false},
		{"spoken text", "Hello and welcome.", false},
		{"number inside text", "Chapter 3 begins", false},
		{"lowercase note", "Note that this matters", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDiscarded(tt.line); got != tt.want {
				t.Errorf("IsDiscarded(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{
			name: "vtt",
			lines: []string{
				"WEBVTT",
				"Kind: captions",
				"Language: en",
				"",
				"00:00:01.000 --> 00:00:02.000",
				"  Hello and welcome.  ",
				"",
				"00:00:02.000 --> 00:00:04.000",
				"[music]",
				"Let's begin.",
			},
			want: []string{"Hello and welcome.", "Let's begin."},
		},
		{
			name: "srt",
			lines: []string{
				"1",
				"00:00:01,000 --> 00:00:02,000",
				"First line",
				"second part",
				"",
				"2",
				"00:00:03,000 --> 00:00:04,000",
				"<i>italic line</i>",
				"Third line\r",
			},
			want: []string{"First line", "second part", "Third line"},
		},
		{
			name:  "only noise",
			lines: []string{"[music]", "<b>text</b>", "", "12"},
			want:  []string{},
		},
		{
			name:  "casing and punctuation kept",
			lines: []string{"WHY?!  ", "...ok"},
			want:  []string{"WHY?!", "...ok"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(tt.lines)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Filter() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFilterIdempotent(t *testing.T) {
	input := []string{
		"WEBVTT", "", "1", "00:00:01.000 --> 00:00:02.000", "Hello", "[laughs]",
		"<c>tag</c>", "NOTE skip", "world  ", "Kind: captions", "a [b] c",
	}

	once := Filter(input)
	twice := Filter(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Filter(Filter(x)) = %q, want %q", twice, once)
	}
}

func TestIsDiscardedPure(t *testing.T) {
	line := "00:00:01.000 --> 00:00:02.000"
	first := IsDiscarded(line)
	for i := 0; i < 3; i++ {
		IsDiscarded("Hello")
		if IsDiscarded(line) != first {
			t.Fatal("IsDiscarded() changed its answer for the same input")
		}
	}
}
