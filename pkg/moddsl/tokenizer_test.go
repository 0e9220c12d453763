// SPDX-License-Identifier: MPL-2.0

package moddsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripComments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want string
	}{
		{"no comment", `joker a "A" {`, `joker a "A" {`},
		{"hash comment", `mixin a b # trailing`, `mixin a b `},
		{"slash comment", `mixin a // trailing`, `mixin a `},
		{"whole line comment", `# only a comment`, ``},
		{"hash inside string", `joker a "Card #1" {`, `joker a "Card #1" {`},
		{"slashes inside string", `joker a "http://x" { // real`, `joker a "http://x" { `},
		{"escaped quote keeps string open", `joker a "say \"#hi\"" # c`, `joker a "say \"#hi\"" `},
		{"single slash is not a comment", `a / b`, `a / b`},
		{"escaped backslash closes string", `x "a\\" # c`, `x "a\\" `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, StripComments(tt.line))
		})
	}
}

func TestBraceDelta(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want int
	}{
		{"empty", ``, 0},
		{"open", `joker a "A" {`, 1},
		{"close", `}`, -1},
		{"balanced one-liner", `tag demo "Demo" { mixin a, b }`, 0},
		{"braces inside string ignored", `joker a "{{weird}" {`, 1},
		{"escaped quote inside string", `name "a\"{" }`, -1},
		{"nested", `{ { }`, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, BraceDelta(tt.line))
		})
	}
}

func TestParseMixinLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		line   string
		want   []string
		wantOK bool
	}{
		{"single", `mixin a`, []string{"a"}, true},
		{"space separated", `  mixin a b c`, []string{"a", "b", "c"}, true},
		{"comma separated", `mixin a, b`, []string{"a", "b"}, true},
		{"braced plural", `mixins { a, b, c };`, []string{"a", "b", "c"}, true},
		{"trailing semicolons", `mixin a; b;`, []string{"a", "b"}, true},
		{"empty braces", `mixins { }`, []string{}, true},
		{"bare keyword is not a declaration", `mixin`, nil, false},
		{"other statement", `on played { add_mult 4 }`, nil, false},
		{"prefix only match", `mixinx a`, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseMixinLine(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
