// Package token implements the token-budget layer of the agent pipeline:
// counting tokens per model, deriving safe context/response budgets, reducing
// oversized task outputs with head/tail retention, and storing per-task
// outputs so they can be forwarded as context to later tasks without
// exceeding a provider's request-size limit.
package token

import (
	"sync"
	"unicode/utf8"

	"github.com/pkoukk/tiktoken-go"
)

// DefaultEncoding is used for models not present in the encoding table.
const DefaultEncoding = "cl100k_base"

// modelEncodings maps model identifiers to tiktoken encoding names.
// The mapping is many-to-one: all currently supported models share cl100k_base.
var modelEncodings = map[string]string{
	"gpt-4o":     "cl100k_base",
	"gpt-4.1":    "cl100k_base",
	"gpt-5-chat": "cl100k_base",
	"o3":         "cl100k_base",
	"o3-mini":    "cl100k_base",
	"o1-mini":    "cl100k_base",
}

// EncodingFor returns the encoding name for a model, falling back to
// DefaultEncoding for unrecognized models.
func EncodingFor(model string) string {
	if enc, ok := modelEncodings[model]; ok {
		return enc
	}
	return DefaultEncoding
}

// codec encodes text into a token sequence and back. Satisfied by the
// tiktoken encoder; tests substitute deterministic fakes.
type codec interface {
	Encode(text string) []int
	Decode(tokens []int) string
}

type tiktokenCodec struct {
	enc *tiktoken.Tiktoken
}

func (c tiktokenCodec) Encode(text string) []int   { return c.enc.Encode(text, nil, nil) }
func (c tiktokenCodec) Decode(tokens []int) string { return c.enc.Decode(tokens) }

func loadTiktoken(encoding string) (codec, error) {
	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, err
	}
	return tiktokenCodec{enc: enc}, nil
}

// Counter counts tokens under model-specific encodings. Encoders are cached
// per encoding name. When an encoder cannot be loaded, Count falls back to
// the ~4-characters-per-token heuristic instead of returning an error, so a
// missing encoding resource can never abort a pipeline run.
type Counter struct {
	mu    sync.Mutex
	cache map[string]codec
	load  func(encoding string) (codec, error)
}

// NewCounter creates a Counter backed by tiktoken encodings.
func NewCounter() *Counter {
	return &Counter{
		cache: make(map[string]codec),
		load:  loadTiktoken,
	}
}

// Count returns the number of tokens in text under the model's encoding.
// Empty text counts as 0 for every model. Unknown models use the default
// encoding; encoder failures fall back to one token per four characters.
func (c *Counter) Count(text, model string) int {
	if text == "" {
		return 0
	}
	cd, err := c.codecFor(model)
	if err != nil {
		return utf8.RuneCountInString(text) / 4
	}
	return len(cd.Encode(text))
}

// codecFor returns the cached encoder for the model's encoding, loading it
// on first use.
func (c *Counter) codecFor(model string) (codec, error) {
	encoding := EncodingFor(model)

	c.mu.Lock()
	defer c.mu.Unlock()
	if cd, ok := c.cache[encoding]; ok {
		return cd, nil
	}
	cd, err := c.load(encoding)
	if err != nil {
		return nil, err
	}
	c.cache[encoding] = cd
	return cd, nil
}
