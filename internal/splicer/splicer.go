package splicer

import (
	"strings"
)

// Block markers. Existing user filters contain these exact lines, so they
// must not change.
const (
	StartMarker = "# Chaos Recipe START - Filter Manipulation by Chaos Recipe Enhancer"
	EndMarker   = "# Chaos Recipe END - Filter Manipulation by Chaos Recipe Enhancer"
)

const newline = "\n"

// Block builds the delimited block holding sections
func Block(sections []string) string {
	var sb strings.Builder

	sb.WriteString(StartMarker + newline + newline)
	for _, s := range sections {
		sb.WriteString(s)
		sb.WriteString(newline)
	}
	sb.WriteString(EndMarker + newline)

	return sb.String()
}

// Merge replaces the generated block in old with one holding sections.
//
// Without an end marker line the block is appended to old. With one, the
// text between the first start marker before it and the marker line itself
// is replaced. An end marker with no start marker ahead of it puts the block
// in front of the whole document.
func Merge(old string, sections []string) string {
	block := Block(sections)

	head, tail, found := strings.Cut(old, EndMarker+newline)
	if !found {
		return old + block
	}

	before, _, found := strings.Cut(head, StartMarker)
	if !found {
		return block + old
	}

	return before + block + tail
}

// Extract returns the text between the markers of the first well-formed block
func Extract(doc string) (string, bool) {
	head, _, found := strings.Cut(doc, EndMarker+newline)
	if !found {
		return "", false
	}

	_, inner, found := strings.Cut(head, StartMarker+newline)
	if !found {
		return "", false
	}
	return inner, true
}
