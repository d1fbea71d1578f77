package aoc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswersPath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"2024/1.input", "2024/1.answers.toml"},
		{"mine.txt", "mine.txt.answers.toml"},
	}
	for _, tt := range tests {
		if got := answersPath(tt.in); got != tt.want {
			t.Errorf("answersPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAnswersRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "2024", "2.answers.toml")
	input := []byte("7 6 4 2 1\n")

	a, err := LoadAnswers(path, input)
	require.NoError(t, err)
	_, changed := a.Record("1", "2")
	assert.False(t, changed)
	require.NoError(t, a.Save())

	a, err = LoadAnswers(path, input)
	require.NoError(t, err)
	got, ok := a.Get("1")
	require.True(t, ok)
	assert.Equal(t, "2", got)

	_, changed = a.Record("1", "2")
	assert.False(t, changed, "same answer")

	prev, changed := a.Record("1", "3")
	assert.True(t, changed)
	assert.Equal(t, "2", prev)
	got, _ = a.Get("1")
	assert.Equal(t, "2", got, "known answer is kept")
}

func TestAnswersInputChanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "1.answers.toml")
	a, err := LoadAnswers(path, []byte("3   4\n"))
	require.NoError(t, err)
	a.Record("1", "1")
	require.NoError(t, a.Save())

	a, err = LoadAnswers(path, []byte("3   5\n"))
	require.NoError(t, err)
	_, ok := a.Get("1")
	assert.False(t, ok, "answers for another input are dropped")
	_, changed := a.Record("1", "2")
	assert.False(t, changed)
}

func TestAnswersBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "1.answers.toml")
	require.NoError(t, os.WriteFile(path, []byte("input = [unterminated"), 0644))
	_, err := LoadAnswers(path, nil)
	assert.Error(t, err)
}

func TestFingerprint(t *testing.T) {
	a := fingerprint([]byte("1 2 3\n"))
	assert.Equal(t, a, fingerprint([]byte("1 2 3\n")))
	assert.NotEqual(t, a, fingerprint([]byte("1 2 4\n")))
}
