// SPDX-License-Identifier: MPL-2.0

package moddsl

import (
	"bufio"
	"fmt"
	"strings"
)

type (
	// Block is one named definition found in a DSL file.
	Block struct {
		// ID is the second token of the block header.
		ID string
		// Line is the 1-based line number of the header.
		Line int
		// Mixins lists every mixin reference declared in the block, in order.
		// Multiple declaration lines accumulate.
		Mixins []string
		// Closed is false when the file ended before the block's braces balanced.
		Closed bool
	}

	// ParseError is a line-scoped problem found while scanning a DSL file.
	ParseError struct {
		Line    int
		Message string
	}

	// Blocks is the result of scanning one DSL file.
	Blocks struct {
		// Order lists block ids in first-appearance order.
		Order []string
		// ByID maps each block id to its definition. A repeated header for the
		// same id appends to the existing entry.
		ByID map[string]*Block
		// Errors lists parse anomalies in the order they were found.
		Errors []ParseError
	}

	// blockParser is the line-by-line state of ParseBlocks.
	blockParser struct {
		keyword string
		out     *Blocks
		// current is the open block, nil between blocks.
		current *Block
		// depth is the running brace depth of the open block.
		depth int
		// opened records whether the open block has seen its first "{".
		opened bool
		// openLine is the header line of the open block.
		openLine int
	}
)

func (e ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// Refs returns the mixin references of every block keyed by block id.
func (b *Blocks) Refs() map[string][]string {
	refs := make(map[string][]string, len(b.ByID))
	for id, block := range b.ByID {
		refs[id] = block.Mixins
	}
	return refs
}

// ParseBlocks scans src for blocks introduced by keyword (for example
// `joker greedy "Greedy Joker" { ... }`) and collects the mixin references
// declared inside each one.
//
// Outside a block only lines starting with "<keyword> " are considered. A header
// without an id is reported and skipped. Text following the header's first "{" is
// scanned for an inline mixin declaration. A block closes when its brace depth
// returns to zero; a block still open at end of input is kept and reported.
func ParseBlocks(src, keyword string) *Blocks {
	p := &blockParser{
		keyword: keyword,
		out:     &Blocks{ByID: make(map[string]*Block)},
	}

	sc := bufio.NewScanner(strings.NewReader(src))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineno := 0
	for sc.Scan() {
		lineno++
		p.line(lineno, strings.TrimSpace(StripComments(sc.Text())))
	}
	if err := sc.Err(); err != nil {
		p.fail(lineno+1, fmt.Sprintf("read error: %v", err))
	}

	if p.current != nil {
		p.fail(p.openLine, fmt.Sprintf("%s '%s' block is never closed", keyword, p.current.ID))
	}
	return p.out
}

func (p *blockParser) line(lineno int, trimmed string) {
	if trimmed == "" {
		return
	}
	if p.current == nil {
		p.header(lineno, trimmed)
		return
	}

	p.mixins(lineno, trimmed)
	if strings.Contains(trimmed, "{") {
		p.opened = true
	}
	p.depth += BraceDelta(trimmed)
	if p.opened && p.depth <= 0 {
		p.close()
	}
}

func (p *blockParser) header(lineno int, trimmed string) {
	if !strings.HasPrefix(trimmed, p.keyword+" ") {
		return
	}
	head, body, hasBrace := strings.Cut(trimmed, "{")
	parts := strings.Fields(head)
	if len(parts) < 2 {
		p.fail(lineno, fmt.Sprintf("%s id is missing", p.keyword))
		return
	}

	id := parts[1]
	block, ok := p.out.ByID[id]
	if !ok {
		block = &Block{ID: id, Line: lineno, Mixins: []string{}}
		p.out.ByID[id] = block
		p.out.Order = append(p.out.Order, id)
	}
	block.Closed = false
	p.current = block
	p.openLine = lineno
	p.depth = 0
	p.opened = false

	if !hasBrace {
		return
	}
	p.opened = true
	p.depth = BraceDelta(trimmed)
	p.mixins(lineno, body)
	if p.depth <= 0 {
		p.close()
	}
}

func (p *blockParser) mixins(lineno int, text string) {
	refs, ok := ParseMixinLine(text)
	if !ok {
		return
	}
	if len(refs) == 0 {
		p.fail(lineno, "mixin line missing id")
		return
	}
	p.current.Mixins = append(p.current.Mixins, refs...)
}

func (p *blockParser) close() {
	p.current.Closed = true
	p.current = nil
	p.depth = 0
	p.opened = false
}

func (p *blockParser) fail(lineno int, msg string) {
	p.out.Errors = append(p.out.Errors, ParseError{Line: lineno, Message: msg})
}
