package token

import (
	"fmt"
	"strings"
)

// Truncator reduces oversized text to a token budget using head/tail
// retention: the beginning and end of an LLM-generated report tend to carry
// the most salient information, so the middle is dropped and replaced with
// an explicit elision marker. All paths degrade instead of failing; callers
// never see an error from truncation.
type Truncator struct {
	counter *Counter

	// HeadRatio and TailRatio split the token budget between the retained
	// head and tail slices. Defaults 0.6/0.4.
	HeadRatio float64
	TailRatio float64

	// LineKeepRatio is the fraction of lines kept at each end by the
	// line-granular summarization pass. Default 0.4 (drop the middle 20%).
	LineKeepRatio float64
}

// NewTruncator creates a Truncator with the default split ratios.
func NewTruncator(counter *Counter) *Truncator {
	return &Truncator{
		counter:       counter,
		HeadRatio:     0.6,
		TailRatio:     0.4,
		LineKeepRatio: 0.4,
	}
}

// TruncateToTokenLimit returns text unchanged when it already fits within
// maxTokens. Otherwise it keeps the first HeadRatio and last TailRatio of
// the token budget and inserts an elision marker stating how much was
// dropped. A non-positive maxTokens retains nothing but the marker.
//
// The marker is inserted at the character midpoint of the reassembled
// head+tail text rather than exactly at the token boundary; downstream
// consumers rely only on the marker's presence, not its position.
func (t *Truncator) TruncateToTokenLimit(text string, maxTokens int, model string) string {
	if maxTokens < 0 {
		maxTokens = 0
	}

	current := t.counter.Count(text, model)
	if current <= maxTokens {
		return text
	}

	keepHead := int(float64(maxTokens) * t.HeadRatio)
	keepTail := int(float64(maxTokens) * t.TailRatio)

	cd, err := t.counter.codecFor(model)
	if err != nil {
		return t.truncateByChars(text, current, maxTokens)
	}

	tokens := cd.Encode(text)
	if keepHead+keepTail > len(tokens) {
		// Custom ratios can over-allocate relative to short token streams.
		keepHead = len(tokens) * 6 / 10
		keepTail = len(tokens) - keepHead
	}
	head := cd.Decode(tokens[:keepHead])
	tail := cd.Decode(tokens[len(tokens)-keepTail:])

	// Split on runes, not bytes: a byte midpoint can land inside a
	// multi-byte character and emit invalid UTF-8.
	joined := []rune(head + tail)
	marker := fmt.Sprintf("\n\n[... Content truncated: %d tokens → %d tokens ...]\n\n", current, maxTokens)

	mid := len(joined) / 2
	return string(joined[:mid]) + marker + string(joined[mid:])
}

// truncateByChars is the fallback when no encoder is available: it converts
// the token budget to a character budget using the observed chars-per-token
// ratio and applies the same head/tail split. The resulting size is
// approximate but the operation can never fail.
func (t *Truncator) truncateByChars(text string, currentTokens, maxTokens int) string {
	if currentTokens <= 0 {
		currentTokens = 1
	}
	runes := []rune(text)
	charsPerToken := float64(len(runes)) / float64(currentTokens)
	maxChars := int(float64(maxTokens) * charsPerToken)

	keepStart := int(float64(maxChars) * t.HeadRatio)
	keepEnd := int(float64(maxChars) * t.TailRatio)
	if keepStart > len(runes) {
		keepStart = len(runes)
	}
	if keepEnd > len(runes)-keepStart {
		keepEnd = len(runes) - keepStart
	}

	marker := fmt.Sprintf("\n\n[... Content truncated: ~%d tokens → ~%d tokens ...]\n\n", currentTokens, maxTokens)
	return string(runes[:keepStart]) + marker + string(runes[len(runes)-keepEnd:])
}

// SummarizeTaskOutput reduces a task output to maxTokens, preferring line
// granularity: markdown-like reports keep more meaning when whole lines
// (headings, bullets) survive than when raw token spans do. It keeps the
// first and last LineKeepRatio of lines with a marker line in between, then
// re-measures and applies TruncateToTokenLimit as a finer second pass if the
// result is still over budget.
func (t *Truncator) SummarizeTaskOutput(output string, maxTokens int, model string) string {
	if maxTokens < 0 {
		maxTokens = 0
	}
	if t.counter.Count(output, model) <= maxTokens {
		return output
	}

	lines := strings.Split(output, "\n")
	keep := int(float64(len(lines)) * t.LineKeepRatio)
	marker := fmt.Sprintf("\n[... Middle section truncated to fit %d token limit ...]\n", maxTokens)

	summaryLines := make([]string, 0, 2*keep+1)
	summaryLines = append(summaryLines, lines[:keep]...)
	summaryLines = append(summaryLines, marker)
	summaryLines = append(summaryLines, lines[len(lines)-keep:]...)
	summary := strings.Join(summaryLines, "\n")

	if t.counter.Count(summary, model) > maxTokens {
		summary = t.TruncateToTokenLimit(summary, maxTokens, model)
	}
	return summary
}
