// Package scores keeps the high score list in a flat text file, one
// "score,unix-time" pair per line, appended as games end.
package scores

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Entry is one finished game
type Entry struct {
	Score int
	Time  time.Time
}

// Store is an append-only score file
type Store struct {
	path string
}

// NewStore returns a store backed by the file at path. The file is created
// on the first Append.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path
func (s *Store) Path() string { return s.path }

// ReadAll returns every entry in file order. A missing file reads as empty.
func (s *Store) ReadAll() ([]Entry, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open scores %s: %w", s.path, err)
	}
	defer f.Close()

	var out []Entry
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		e, err := parseLine(text)
		if err != nil {
			return nil, fmt.Errorf("scores %s line %d: %w", s.path, line, err)
		}
		out = append(out, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read scores %s: %w", s.path, err)
	}
	return out, nil
}

func parseLine(text string) (Entry, error) {
	scoreText, timeText, ok := strings.Cut(text, ",")
	if !ok {
		return Entry{}, fmt.Errorf("malformed entry %q", text)
	}
	score, err := strconv.Atoi(strings.TrimSpace(scoreText))
	if err != nil {
		return Entry{}, fmt.Errorf("score %q: %w", scoreText, err)
	}
	unix, err := strconv.ParseInt(strings.TrimSpace(timeText), 10, 64)
	if err != nil {
		return Entry{}, fmt.Errorf("timestamp %q: %w", timeText, err)
	}
	return Entry{Score: score, Time: time.Unix(unix, 0)}, nil
}

// Append adds one entry at the end of the file
func (s *Store) Append(score int, at time.Time) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open scores %s: %w", s.path, err)
	}
	if _, err := fmt.Fprintf(f, "%d,%d\n", score, at.Unix()); err != nil {
		f.Close()
		return fmt.Errorf("append score to %s: %w", s.path, err)
	}
	return f.Close()
}

// Clear removes every entry. Clearing a missing file is not an error.
func (s *Store) Clear() error {
	err := os.Truncate(s.path, 0)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clear scores %s: %w", s.path, err)
	}
	return nil
}

// Top returns up to n entries, best first. Ties go to the earlier game.
func Top(entries []Entry, n int) []Entry {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score > sorted[j].Score
		}
		return sorted[i].Time.Before(sorted[j].Time)
	})
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// Best returns the highest score, or 0 with no entries
func Best(entries []Entry) int {
	best := 0
	for _, e := range entries {
		if e.Score > best {
			best = e.Score
		}
	}
	return best
}
