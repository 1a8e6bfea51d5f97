package grapheme

import "testing"

const family = "\U0001F468\u200d\U0001F469\u200d\U0001F467"

func TestSplitAndCount_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "e\u0301" + family + "b"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len=%d, want %d", len(got), 4)
	}
	if got[1] != "e\u0301" {
		t.Fatalf("split[1]=%q, want %q", got[1], "e\u0301")
	}
	if got[2] != family {
		t.Fatalf("split[2]=%q, want family emoji", got[2])
	}
	if c := Count(text); c != 4 {
		t.Fatalf("count=%d, want %d", c, 4)
	}
	if Count("") != 0 {
		t.Fatalf("count of empty string must be 0")
	}
}

func TestSlice_GraphemeSafe(t *testing.T) {
	text := "a" + "e\u0301" + family + "b"
	if got, want := Slice(text, 1, 3), "e\u0301"+family; got != want {
		t.Fatalf("slice=%q, want %q", got, want)
	}
	if got := Slice(text, 5, 6); got != "" {
		t.Fatalf("slice past end=%q, want empty", got)
	}
	if got, want := Slice(text, 3, 99), "b"; got != want {
		t.Fatalf("slice clamp=%q, want %q", got, want)
	}
	if got, want := Slice(text, -1, 1), "a"; got != want {
		t.Fatalf("slice negative start=%q, want %q", got, want)
	}
}

func TestSplice(t *testing.T) {
	cases := []struct {
		text       string
		start, end int
		ins        string
		want       string
	}{
		{text: "hello", start: 0, end: 0, ins: ">", want: ">hello"},
		{text: "hello", start: 5, end: 5, ins: "!", want: "hello!"},
		{text: "hello", start: 1, end: 4, ins: "", want: "ho"},
		{text: "e\u0301x", start: 1, end: 1, ins: "y", want: "e\u0301yx"},
		{text: "", start: 0, end: 0, ins: "a", want: "a"},
	}
	for _, tc := range cases {
		if got := Splice(tc.text, tc.start, tc.end, tc.ins); got != tc.want {
			t.Fatalf("Splice(%q, %d, %d, %q)=%q, want %q", tc.text, tc.start, tc.end, tc.ins, got, tc.want)
		}
	}
}

func TestClassifiers(t *testing.T) {
	if !IsSpace("\t") {
		t.Fatalf("tab should be space")
	}
	if IsSpace("a") {
		t.Fatalf("letter should not be space")
	}
	if !IsPunct("!") {
		t.Fatalf("exclamation should be punct")
	}
	if IsPunct("a") {
		t.Fatalf("letter should not be punct")
	}
	if !IsInvisible("\u200b\u2009") {
		t.Fatalf("placeholders should be invisible")
	}
	if IsInvisible("a\u200b") || IsInvisible("") {
		t.Fatalf("visible or empty text must not be invisible")
	}
}
