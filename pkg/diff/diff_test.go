package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnifiedIdentical(t *testing.T) {
	out, stats := Unified("a\nb\n", "a\nb\n", "before", "after")
	assert.Empty(t, out)
	assert.Equal(t, Stats{}, stats)
}

func TestUnifiedSingleLineChange(t *testing.T) {
	before := "Section: About you\n  1. What is your name?\n  2. How old are you?\n"
	after := "Section: About you\n  1. What is your full name?\n  2. How old are you?\n"

	out, stats := Unified(before, after, "a.yaml", "b.yaml")

	require.NotEmpty(t, out)
	assert.True(t, strings.HasPrefix(out, "--- a.yaml\n+++ b.yaml\n@@ -1,3 +1,3 @@\n"))
	assert.Contains(t, out, "-  1. What is your name?\n")
	assert.Contains(t, out, "+  1. What is your full name?\n")
	assert.Contains(t, out, " Section: About you\n")
	assert.Equal(t, Stats{Added: 1, Removed: 1}, stats)
}

func TestUnifiedAppendedLines(t *testing.T) {
	out, stats := Unified("one\n", "one\ntwo\nthree\n", "x", "y")

	assert.Contains(t, out, "+two\n+three\n")
	assert.Equal(t, 2, stats.Added)
	assert.Equal(t, 0, stats.Removed)
}

func TestUnifiedTruncatesHugeDiffs(t *testing.T) {
	var before, after strings.Builder
	for i := 0; i < maxDiffLines; i++ {
		before.WriteString("old line\n")
		after.WriteString("new line\n")
	}

	out, _ := Unified(before.String(), after.String(), "x", "y")

	assert.True(t, strings.HasSuffix(out, truncateMessage+"\n"))
}
