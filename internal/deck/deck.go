// Package deck loads flashcard prompts from a line-oriented text file and
// hands them out in random order without immediate repeats.
package deck

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Deck is an ordered list of flashcard prompts. It is loaded once and never
// mutated afterwards.
type Deck []string

// Load reads prompts from the file at path, one per line. Blank lines and
// lines whose first character is '#' are skipped; the remaining lines keep
// their original order with line terminators stripped.
func Load(path string) (Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	defer f.Close()

	d, err := read(f)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	return d, nil
}

func read(r io.Reader) (Deck, error) {
	var d Deck
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if line == "" || line[0] == '#' {
			continue
		}
		d = append(d, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return d, nil
}
