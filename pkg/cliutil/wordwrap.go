// Copyright (C) 2021  Ambassador Labs
// Copyright (C) 2026  The piii-release Authors
//
// SPDX-License-Identifier: Apache-2.0

package cliutil

import (
	"strings"
	"unicode/utf8"
)

// Wrap the string `s` to a maximum width `w`.  Pass `w` == 0 to do no wrapping.
//
// In order to have some room for slop to avoid things like a short word being on a line by itself,
// most lines are actually wrapped to `w - 5`.
func Wrap(w int, s string) string {
	return wrap(0, w, s)
}

// Wrap the string `s` to a maximum width `w` with leading indent `i`.  The first line is not
// indented (this is assumed to be done by caller).  Pass `w` == 0 to do no wrapping
//
// In order to have some room for slop to avoid things like a short word being on a line by itself,
// most lines are actually wrapped to `w - 5`.
func WrapIndent(i, w int, s string) string {
	return wrap(i, w, s)
}

// WrapExample wraps each line of `s` to a maximum width `w`, the same way as Wrap.  The
// continuation of a broken line is indented two spaces past the start of that line, so that
// indented command lines stay readable.  Pass `w` == 0 to do no wrapping.
func WrapExample(w int, s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		text := strings.TrimLeft(line, " ")
		lead := len(line) - len(text)
		lines[i] = line[:lead] + wrapFrom(lead, lead+2, w, text)
	}
	return strings.Join(lines, "\n")
}

// word is a word along with the whitespace that precedes it.
type word struct {
	space string
	text  string
}

func splitWords(line string) []word {
	var words []word
	for line != "" {
		textStart := len(line) - len(strings.TrimLeft(line, " "))
		textEnd := strings.IndexByte(line[textStart:], ' ')
		if textEnd < 0 {
			textEnd = len(line)
		} else {
			textEnd += textStart
		}
		words = append(words, word{space: line[:textStart], text: line[textStart:textEnd]})
		line = line[textEnd:]
	}
	return words
}

func width(s string) int {
	return utf8.RuneCountInString(s)
}

func wrap(indent, w int, s string) string {
	return wrapFrom(indent, indent, w, s)
}

// wrapFrom is wrap for text whose first line starts at column `start` rather than `indent`.
func wrapFrom(start, indent, w int, s string) string {
	prefix := strings.Repeat(" ", indent)
	if w <= 0 {
		return strings.ReplaceAll(s, "\n", "\n"+prefix)
	}
	limit := w - 5

	var ret strings.Builder
	for lineNum, line := range strings.Split(s, "\n") {
		if lineNum > 0 {
			ret.WriteString("\n")
			ret.WriteString(prefix)
		}
		words := splitWords(line)
		col := indent
		if lineNum == 0 {
			col = start
		}
		for j, wd := range words {
			if j == 0 {
				ret.WriteString(wd.space)
				ret.WriteString(wd.text)
				col += width(wd.space) + width(wd.text)
				continue
			}
			next := col + width(wd.space) + width(wd.text)
			if next < limit || col+width(joinWords(words[j:])) <= w {
				ret.WriteString(wd.space)
				ret.WriteString(wd.text)
				col = next
				continue
			}
			ret.WriteString("\n")
			ret.WriteString(prefix)
			ret.WriteString(wd.text)
			col = indent + width(wd.text)
		}
	}
	return ret.String()
}

func joinWords(words []word) string {
	var ret strings.Builder
	for _, wd := range words {
		ret.WriteString(wd.space)
		ret.WriteString(wd.text)
	}
	return ret.String()
}
