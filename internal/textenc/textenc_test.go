package textenc

import "testing"

func TestDecodeValid(t *testing.T) {
	if got := Decode([]byte("héllo world")); got != "héllo world" {
		t.Errorf("got %q", got)
	}
}

func TestDecodeDropsInvalidBytes(t *testing.T) {
	in := []byte{'g', 'o', 0xff, 'o', 'd', 0xc3}
	if got := Decode(in); got != "good" {
		t.Errorf("Decode = %q, want %q", got, "good")
	}
}

func TestDecodeEmpty(t *testing.T) {
	if got := Decode(nil); got != "" {
		t.Errorf("got %q", got)
	}
}

func TestDecodeKeepsReplacementCharacter(t *testing.T) {
	in := []byte("a\uFFFDb\xffc")
	if got := Decode(in); got != "a\uFFFDbc" {
		t.Errorf("Decode = %q, want %q", got, "a\uFFFDbc")
	}
}

func TestDecodeTruncatedSequenceAtEnd(t *testing.T) {
	// first two bytes of a three-byte rune
	in := []byte{'o', 'k', 0xe2, 0x82}
	if got := Decode(in); got != "ok" {
		t.Errorf("Decode = %q, want %q", got, "ok")
	}
}
