// SPDX-License-Identifier: MPL-2.0

package moddsl

import "strings"

// scanner tracks double-quoted string state across the characters of one line.
// A quote toggles the string state unless it is escaped by a preceding backslash;
// the escape flag only survives a single character.
type scanner struct {
	inString bool
	escaped  bool
}

// quote reports whether ch is an unescaped double quote and toggles the string
// state if so.
func (s *scanner) quote(ch byte) bool {
	if ch == '"' && !s.escaped {
		s.inString = !s.inString
		s.escaped = false
		return true
	}
	return false
}

// advance updates the escape flag after ch has been consumed.
func (s *scanner) advance(ch byte) {
	s.escaped = ch == '\\' && !s.escaped
}

// StripComments removes a trailing "#" or "//" comment from line. Comment markers
// inside double-quoted strings are kept, and the quoting itself is left intact.
func StripComments(line string) string {
	var s scanner
	for i := 0; i < len(line); i++ {
		ch := line[i]
		if s.quote(ch) {
			continue
		}
		if !s.inString {
			if ch == '#' {
				return line[:i]
			}
			if ch == '/' && i+1 < len(line) && line[i+1] == '/' {
				return line[:i]
			}
		}
		s.advance(ch)
	}
	return line
}

// BraceDelta returns the number of "{" minus the number of "}" in line, ignoring
// braces that appear inside double-quoted strings.
func BraceDelta(line string) int {
	var (
		s     scanner
		delta int
	)
	for i := 0; i < len(line); i++ {
		ch := line[i]
		if s.quote(ch) {
			continue
		}
		if s.inString {
			s.advance(ch)
			continue
		}
		switch ch {
		case '{':
			delta++
		case '}':
			delta--
		}
		s.escaped = false
	}
	return delta
}

// ParseMixinLine recognizes a mixin declaration of the form "mixin a b c" or
// "mixins { a, b, c }". The second return value is false when line is not a mixin
// declaration at all. A recognized declaration may still yield zero references,
// which callers report as a parse error.
func ParseMixinLine(line string) ([]string, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "mixin ") && !strings.HasPrefix(trimmed, "mixins ") {
		return nil, false
	}
	_, tail, _ := strings.Cut(trimmed, " ")
	tail = mixinSeparators.Replace(tail)

	refs := []string{}
	for _, field := range strings.Fields(tail) {
		if ref := strings.Trim(field, ";"); ref != "" {
			refs = append(refs, ref)
		}
	}
	return refs, true
}

var mixinSeparators = strings.NewReplacer(",", " ", "{", " ", "}", " ")
