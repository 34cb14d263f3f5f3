package note

import (
	"math"
	"regexp"
)

// Word characters are letters, digits, and underscore in any script;
// Go's \w is ASCII-only, so the classes are spelled out.
var (
	tagRe  = regexp.MustCompile(`#([\p{L}\p{N}_]+)`)
	wordRe = regexp.MustCompile(`[\p{L}\p{N}_]+`)
)

// ExtractTags returns every #word token in content, in order of
// appearance. Repeats are kept; a "#" not followed by a word character
// yields nothing.
func ExtractTags(content string) []string {
	matches := tagRe.FindAllStringSubmatch(content, -1)
	tags := []string{}
	for _, m := range matches {
		tags = append(tags, m[1])
	}
	return tags
}

// WordCount counts word tokens in text.
func WordCount(text string) int {
	return len(wordRe.FindAllString(text, -1))
}

// ReadingTime estimates minutes to read at 200 words per minute,
// never less than one minute. Halves round to even, so an exactly
// 500-word note reads as 2 minutes, not 3.
func ReadingTime(text string) int {
	minutes := int(math.RoundToEven(float64(WordCount(text)) / 200))
	if minutes < 1 {
		return 1
	}
	return minutes
}
