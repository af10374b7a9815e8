// scanner.go implements the one-pass markdown scanner behind Parse.
package md

import (
	"fmt"
	"iter"
	"log"
	"strings"
	"unicode"
)

// mode is the construct the scanner is currently accumulating. Exactly one
// mode is active at a time.
type mode int

const (
	modeNone       mode = iota // between constructs
	modeParagraph              // bare text
	modeHeader                 // title after a # run
	modeBold                   // inside *...*
	modeItalic                 // inside _..._
	modeLinkText               // inside [...] or ![...]
	modeLinkURL                // inside the (...) after a link text
	modeInlineCode             // inside `...`
	modeCodeBlock              // inside a ``` fence
	modeQuote                  // after a leading >
	modeListItem               // after a leading "- "
)

var spanNames = map[mode]string{
	modeBold:       "bold span",
	modeItalic:     "italic span",
	modeInlineCode: "code span",
	modeLinkText:   "link",
	modeLinkURL:    "link",
}

type linkKind int

const (
	linkAnchor linkKind = iota
	linkImage
)

// linkCapture carries a link or image across its [text] and (url) halves.
type linkCapture struct {
	kind linkKind
	text string
}

func (c linkCapture) opener() string {
	if c.kind == linkImage {
		return "!["
	}
	return "["
}

const (
	maxHeaderLevel = 6
	minRuleDashes  = 3
	minFenceLength = 3
)

// Document is a parse result together with warnings about constructs
// that were degraded to plain text.
type Document struct {
	Elements []Element
	Warnings []string
}

// AddWarning logs a warning and stores it in the document.
func (d *Document) AddWarning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	d.Warnings = append(d.Warnings, msg)
	log.Printf("WARN: %s", msg)
}

// Parse converts markdown source into a flat sequence of elements. It never
// fails: malformed constructs degrade to Paragraph text.
func Parse(source string) []Element {
	var elements []Element
	for e := range Elements(source) {
		elements = append(elements, e)
	}
	return elements
}

// ParseDocument parses source like Parse and also records a warning for
// every unclosed span, link, or code fence.
func ParseDocument(source string) *Document {
	doc := &Document{}
	s := newScanner(source, func(e Element) bool {
		doc.Elements = append(doc.Elements, e)
		return true
	}, doc.AddWarning)
	s.run()
	return doc
}

// Elements yields the elements of source in document order as they are
// scanned. Breaking out of the loop stops the scan.
func Elements(source string) iter.Seq[Element] {
	return func(yield func(Element) bool) {
		newScanner(source, yield, nil).run()
	}
}

type scanner struct {
	src  []rune
	pos  int
	line int

	mode  mode
	buf   strings.Builder
	level int // header level
	delim int // length of the backtick run that opened a code span or fence
	link  linkCapture

	items    []string
	listOpen bool

	// lineStart is true until the first non-blank rune of a line is consumed.
	lineStart bool

	yield   func(Element) bool
	stopped bool
	warn    func(format string, args ...interface{})
}

func newScanner(source string, yield func(Element) bool, warn func(string, ...interface{})) *scanner {
	if warn == nil {
		warn = func(string, ...interface{}) {}
	}
	return &scanner{
		src:       []rune(source),
		line:      1,
		lineStart: true,
		yield:     yield,
		warn:      warn,
	}
}

func (s *scanner) run() {
	for s.pos < len(s.src) && !s.stopped {
		switch r := s.src[s.pos]; r {
		case '\r':
			s.pos++
		case '\n':
			s.endLine()
			s.line++
			s.pos++
		default:
			s.step(r)
		}
	}
	if !s.stopped {
		s.finish()
	}
}

// step consumes at least one rune starting at s.pos.
func (s *scanner) step(r rune) {
	switch s.mode {
	case modeCodeBlock:
		s.stepCodeBlock(r)
	case modeInlineCode:
		s.stepInlineCode(r)
	case modeLinkText:
		s.stepLinkText(r)
	case modeLinkURL:
		s.stepLinkURL(r)
	case modeBold:
		s.stepEmphasis(r, '*', ElementBold)
	case modeItalic:
		s.stepEmphasis(r, '_', ElementItalic)
	case modeHeader, modeQuote, modeListItem:
		s.stepLine(r)
	case modeParagraph:
		if !s.openInline(r) {
			s.appendRune(r)
		}
	default:
		s.stepNone(r)
	}
}

func (s *scanner) stepNone(r rune) {
	if isBlank(r) {
		s.pos++
		return
	}
	if s.lineStart {
		s.lineStart = false
		if s.openBlock(r) {
			return
		}
	}
	if s.openInline(r) {
		return
	}
	s.mode = modeParagraph
	s.appendRune(r)
}

// openBlock handles markers that only count at the start of a line.
func (s *scanner) openBlock(r rune) bool {
	switch r {
	case '#':
		n := s.runLength('#')
		s.pos += n
		s.level = min(n, maxHeaderLevel)
		s.mode = modeHeader
		return true
	case '>':
		s.pos++
		s.mode = modeQuote
		return true
	case '-':
		if s.isRuleLine() {
			s.emit(HorizontalRule())
			s.skipLine()
			return true
		}
		if isBlank(s.peek(1)) {
			s.pos += 2
			s.mode = modeListItem
			s.listOpen = true
			return true
		}
	case '`':
		if n := s.runLength('`'); n >= minFenceLength && !s.closesOnLine(n) {
			s.pos += n
			s.delim = n
			s.mode = modeCodeBlock
			// The rest of the fence line is an info string; it is not kept.
			s.skipLine()
			if s.peek(0) == '\n' {
				s.pos++
				s.line++
			}
			s.lineStart = true
			return true
		}
	case '|':
		if _, ok := parseSeparatorRow(s.restOfLine()); ok {
			s.skipLine()
			return true
		}
	}
	return false
}

// openInline handles span markers, flushing any pending paragraph first.
func (s *scanner) openInline(r rune) bool {
	switch r {
	case '*':
		s.flushParagraph()
		s.pos += s.runLength('*')
		s.mode = modeBold
	case '_':
		if s.intraword('_') {
			return false
		}
		s.flushParagraph()
		s.pos += s.runLength('_')
		s.mode = modeItalic
	case '`':
		n := s.runLength('`')
		s.flushParagraph()
		s.pos += n
		s.delim = n
		s.mode = modeInlineCode
	case '[':
		s.flushParagraph()
		s.pos++
		s.link = linkCapture{kind: linkAnchor}
		s.mode = modeLinkText
	case '!':
		if s.peek(1) != '[' {
			return false
		}
		s.flushParagraph()
		s.pos += 2
		s.link = linkCapture{kind: linkImage}
		s.mode = modeLinkText
	default:
		return false
	}
	return true
}

func (s *scanner) stepEmphasis(r, delim rune, t ElementType) {
	if r != delim || s.intraword(delim) {
		s.appendRune(r)
		return
	}
	s.pos += s.runLength(delim)
	s.emit(Element{Type: t, Text: s.buf.String()})
	s.reset()
}

func (s *scanner) stepInlineCode(r rune) {
	if r != '`' {
		s.appendRune(r)
		return
	}
	n := s.runLength('`')
	s.pos += n
	if n != s.delim {
		s.buf.WriteString(strings.Repeat("`", n))
		return
	}
	s.emit(Code(s.buf.String()))
	s.reset()
}

func (s *scanner) stepCodeBlock(r rune) {
	if s.lineStart && r == '`' && s.runLength('`') >= s.delim {
		s.emit(CodeBlock(strings.TrimSuffix(s.buf.String(), "\n")))
		s.reset()
		s.skipLine()
		return
	}
	s.lineStart = false
	s.appendRune(r)
}

func (s *scanner) stepLinkText(r rune) {
	if r != ']' {
		s.appendRune(r)
		return
	}
	if s.peek(1) == '(' {
		s.link.text = s.buf.String()
		s.buf.Reset()
		s.mode = modeLinkURL
		s.pos += 2
		return
	}
	// Not a link after all: keep the brackets as paragraph text.
	literal := s.link.opener() + s.buf.String() + "]"
	s.buf.Reset()
	s.buf.WriteString(literal)
	s.mode = modeParagraph
	s.pos++
}

func (s *scanner) stepLinkURL(r rune) {
	if r != ')' {
		s.appendRune(r)
		return
	}
	s.pos++
	if s.link.kind == linkImage {
		s.emit(Image(s.link.text, s.buf.String()))
	} else {
		s.emit(Link(s.link.text, s.buf.String()))
	}
	s.reset()
}

// stepLine accumulates header, quote, and list item text. Inline markers
// are literal here and leading blanks are dropped.
func (s *scanner) stepLine(r rune) {
	if isBlank(r) && s.buf.Len() == 0 {
		s.pos++
		return
	}
	s.appendRune(r)
}

// endLine flushes the open construct at a newline.
func (s *scanner) endLine() {
	switch s.mode {
	case modeCodeBlock:
		s.buf.WriteByte('\n')
		s.lineStart = true
		return
	case modeHeader:
		s.emit(Header(s.level, strings.TrimRight(s.buf.String(), " \t")))
	case modeQuote:
		s.emit(Quote(s.buf.String()))
	case modeListItem:
		s.items = append(s.items, s.buf.String())
	case modeParagraph:
		s.emitText(s.buf.String())
	case modeBold, modeItalic, modeInlineCode:
		s.warn("line %d: unclosed %s", s.line, spanNames[s.mode])
		s.emitText(s.buf.String())
	case modeLinkText:
		s.warn("line %d: unclosed %s", s.line, spanNames[s.mode])
		s.emitText(s.link.opener() + s.buf.String())
	case modeLinkURL:
		s.warn("line %d: unclosed %s", s.line, spanNames[s.mode])
		s.emitText(s.link.opener() + s.link.text + "](" + s.buf.String())
	}
	s.reset()
	s.lineStart = true
}

func (s *scanner) finish() {
	if s.mode == modeCodeBlock {
		s.warn("line %d: unclosed code fence", s.line)
		s.emit(CodeBlock(strings.TrimSuffix(s.buf.String(), "\n")))
		s.reset()
	} else {
		s.endLine()
	}
	s.flushList()
}

func (s *scanner) flushParagraph() {
	if s.mode != modeParagraph {
		return
	}
	s.emitText(s.buf.String())
	s.reset()
}

func (s *scanner) flushList() {
	if !s.listOpen {
		return
	}
	items := s.items
	s.items = nil
	s.listOpen = false
	s.send(List(items...))
}

func (s *scanner) emitText(text string) {
	if text != "" {
		s.emit(Paragraph(text))
	}
}

// emit sends e, first closing any pending list since e ends it.
func (s *scanner) emit(e Element) {
	s.flushList()
	s.send(e)
}

func (s *scanner) send(e Element) {
	if s.stopped {
		return
	}
	if !s.yield(e) {
		s.stopped = true
	}
}

func (s *scanner) reset() {
	s.mode = modeNone
	s.buf.Reset()
	s.level = 0
	s.delim = 0
	s.link = linkCapture{}
}

func (s *scanner) appendRune(r rune) {
	s.buf.WriteRune(r)
	s.pos++
}

// peek returns the rune at s.pos+offset, or 0 outside the input.
func (s *scanner) peek(offset int) rune {
	i := s.pos + offset
	if i < 0 || i >= len(s.src) {
		return 0
	}
	return s.src[i]
}

func (s *scanner) runLength(r rune) int {
	n := 0
	for s.pos+n < len(s.src) && s.src[s.pos+n] == r {
		n++
	}
	return n
}

// intraword reports whether the delimiter run at s.pos sits between two
// word characters, as in snake_case.
func (s *scanner) intraword(delim rune) bool {
	if delim != '_' {
		return false
	}
	return isWordRune(s.peek(-1)) && isWordRune(s.peek(s.runLength(delim)))
}

func (s *scanner) restOfLine() []rune {
	end := s.pos
	for end < len(s.src) && s.src[end] != '\n' {
		end++
	}
	return s.src[s.pos:end]
}

// closesOnLine reports whether the backtick run of length n at s.pos is
// matched by a run of the same length later on the line, which makes it a
// code span rather than a fence.
func (s *scanner) closesOnLine(n int) bool {
	rest := s.restOfLine()[n:]
	for i := 0; i < len(rest); {
		if rest[i] != '`' {
			i++
			continue
		}
		run := 0
		for i < len(rest) && rest[i] == '`' {
			run++
			i++
		}
		if run == n {
			return true
		}
	}
	return false
}

// skipLine advances to the next newline without consuming it.
func (s *scanner) skipLine() {
	s.pos += len(s.restOfLine())
}

func (s *scanner) isRuleLine() bool {
	dashes := 0
	for _, r := range s.restOfLine() {
		switch {
		case r == '-':
			dashes++
		case isBlank(r), r == '\r':
		default:
			return false
		}
	}
	return dashes >= minRuleDashes
}

func isBlank(r rune) bool {
	return r == ' ' || r == '\t'
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
