package aoc

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

type answerFile struct {
	// Input is the fingerprint of the input the answers were computed from.
	Input   string            `toml:"input"`
	Answers map[string]string `toml:"answers"`
}

// Answers remembers the answers produced for one puzzle input, so that a
// refactor which changes an answer is noticed.
type Answers struct {
	path string
	file answerFile
}

func fingerprint(input []byte) string {
	sum := sha256.Sum256(input)
	return hex.EncodeToString(sum[:])
}

// answersPath returns the answers file kept next to an input file.
func answersPath(inputPath string) string {
	return strings.TrimSuffix(inputPath, ".input") + ".answers.toml"
}

// LoadAnswers reads the answers stored at path. Answers recorded for a
// different input are discarded. A missing file is not an error.
func LoadAnswers(path string, input []byte) (*Answers, error) {
	a := &Answers{path: path}
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &a.file); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}
	if sum := fingerprint(input); a.file.Input != sum {
		a.file = answerFile{Input: sum}
	}
	if a.file.Answers == nil {
		a.file.Answers = make(map[string]string)
	}
	return a, nil
}

// Record stores answer for part. If a different answer was already stored
// it is kept, and Record returns it with changed set.
func (a *Answers) Record(part, answer string) (prev string, changed bool) {
	prev, ok := a.file.Answers[part]
	if ok && prev != answer {
		return prev, true
	}
	a.file.Answers[part] = answer
	return prev, false
}

// Get returns the answer stored for part.
func (a *Answers) Get(part string) (string, bool) {
	v, ok := a.file.Answers[part]
	return v, ok
}

func (a *Answers) Save() error {
	if err := os.MkdirAll(filepath.Dir(a.path), 0700); err != nil {
		return err
	}
	f, err := os.Create(a.path)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(a.file); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
