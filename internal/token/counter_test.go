package token

import (
	"errors"
	"strings"
	"testing"
)

// runeCodec treats every rune as one token, making truncation math exact in
// tests without loading real BPE data.
type runeCodec struct{}

func (runeCodec) Encode(text string) []int {
	rs := []rune(text)
	tokens := make([]int, len(rs))
	for i, r := range rs {
		tokens[i] = int(r)
	}
	return tokens
}

func (runeCodec) Decode(tokens []int) string {
	rs := make([]rune, len(tokens))
	for i, t := range tokens {
		rs[i] = rune(t)
	}
	return string(rs)
}

func newTestCounter() *Counter {
	return &Counter{
		cache: make(map[string]codec),
		load:  func(string) (codec, error) { return runeCodec{}, nil },
	}
}

func newFailingCounter() *Counter {
	return &Counter{
		cache: make(map[string]codec),
		load:  func(string) (codec, error) { return nil, errors.New("encoding unavailable") },
	}
}

func TestCountEmptyText(t *testing.T) {
	counters := map[string]*Counter{
		"encoder":  newTestCounter(),
		"fallback": newFailingCounter(),
	}
	for name, c := range counters {
		for _, model := range []string{"gpt-4o", "o3-mini", "totally-unknown", ""} {
			if got := c.Count("", model); got != 0 {
				t.Errorf("%s: Count(\"\", %q) = %d, want 0", name, model, got)
			}
		}
	}
}

func TestCountWithEncoder(t *testing.T) {
	c := newTestCounter()
	if got := c.Count("hello", "gpt-4o"); got != 5 {
		t.Fatalf("Count = %d, want 5", got)
	}
}

func TestCountFallbackHeuristic(t *testing.T) {
	c := newFailingCounter()
	text := strings.Repeat("a", 40)
	want := 10 // one token per four characters
	for i := 0; i < 3; i++ {
		if got := c.Count(text, "gpt-4o"); got != want {
			t.Fatalf("call %d: Count = %d, want %d", i, got, want)
		}
	}
}

func TestCountFallbackCountsRunesNotBytes(t *testing.T) {
	c := newFailingCounter()
	// 40 characters, 120 bytes; the heuristic must see 40.
	text := strings.Repeat("€", 40)
	if got := c.Count(text, "gpt-4o"); got != 10 {
		t.Fatalf("Count = %d, want 10", got)
	}
}

func TestEncodingFor(t *testing.T) {
	for _, model := range []string{"gpt-4o", "gpt-4.1", "gpt-5-chat", "o3", "o3-mini", "o1-mini"} {
		if got := EncodingFor(model); got != "cl100k_base" {
			t.Errorf("EncodingFor(%q) = %q, want cl100k_base", model, got)
		}
	}
	if got := EncodingFor("some-future-model"); got != DefaultEncoding {
		t.Errorf("EncodingFor(unknown) = %q, want %q", got, DefaultEncoding)
	}
}

func TestCodecCached(t *testing.T) {
	loads := 0
	c := &Counter{
		cache: make(map[string]codec),
		load: func(string) (codec, error) {
			loads++
			return runeCodec{}, nil
		},
	}
	c.Count("abc", "gpt-4o")
	c.Count("def", "gpt-4.1") // same encoding, must reuse the cached codec
	if loads != 1 {
		t.Fatalf("loader invoked %d times, want 1", loads)
	}
}
