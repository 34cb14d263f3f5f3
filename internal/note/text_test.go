package note

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTags(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"two tags", "Met #alice and #bob today", []string{"alice", "bob"}},
		{"no tags", "plain text without any marks", []string{}},
		{"repeat kept", "#fun #work #fun", []string{"fun", "work", "fun"}},
		{"hash alone", "price is # 100 and #!bang", []string{}},
		{"underscore and digits", "see #issue_42 now", []string{"issue_42"}},
		{"tag stops at punctuation", "done #work, next #play.", []string{"work", "play"}},
		{"adjacent text", "release#notes", []string{"notes"}},
		{"accented tag", "meet at the #café", []string{"café"}},
		{"non-latin tag", "заметка про #работу сегодня", []string{"работу"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractTags(tt.content))
		})
	}
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, WordCount(""))
	assert.Equal(t, 3, WordCount("one two three"))
	assert.Equal(t, 5, WordCount("Met #alice and #bob today"))
	assert.Equal(t, 2, WordCount("  spaced   out  "))
	assert.Equal(t, 4, WordCount("un café très fort"), "accented words count once")
}

func TestReadingTime(t *testing.T) {
	words := func(n int) string {
		return strings.TrimSpace(strings.Repeat("word ", n))
	}

	assert.Equal(t, 1, ReadingTime(words(50)), "short notes round up to a minute")
	assert.Equal(t, 2, ReadingTime(words(400)))
	assert.Equal(t, 1, ReadingTime(""), "never zero")
	assert.Equal(t, 5, ReadingTime(words(1000)))
	assert.Equal(t, 2, ReadingTime(words(500)), "halves round to even")
	assert.Equal(t, 2, ReadingTime(words(300)))
}
