package style

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// CommentMarker disqualifies any style line that contains it
const CommentMarker = "#"

// Stats tracks what a load kept and dropped
type Stats struct {
	Total    int
	Kept     int
	Empty    int
	Comments int
}

// Loader reads custom style files
type Loader struct {
	stats Stats
}

// NewLoader creates a new loader
func NewLoader() *Loader {
	return &Loader{}
}

// Stats returns statistics for the last load
func (l *Loader) Stats() Stats {
	return l.stats
}

// Load reads the style file at path
func (l *Loader) Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open style file: %w", err)
	}
	defer f.Close()

	lines, err := l.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("read style file %s: %w", path, err)
	}
	return lines, nil
}

// Parse returns the trimmed style lines from r. Empty lines and any line
// containing a comment marker are dropped.
func (l *Loader) Parse(r io.Reader) ([]string, error) {
	l.stats = Stats{}

	var lines []string
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := scanner.Text()
		l.stats.Total++

		if strings.Contains(line, CommentMarker) {
			l.stats.Comments++
			continue
		}

		line = strings.TrimSpace(line)
		if line == "" {
			l.stats.Empty++
			continue
		}

		l.stats.Kept++
		lines = append(lines, line)
	}

	return lines, scanner.Err()
}

// Load reads the style file at path with a fresh loader
func Load(path string) ([]string, error) {
	return NewLoader().Load(path)
}
