// element.go defines the flat element model produced by the parser.
package md

// ElementType identifies which markdown construct an Element holds.
type ElementType int

const (
	ElementHeader         ElementType = iota // # Title
	ElementList                              // - item lines
	ElementParagraph                         // bare text
	ElementBold                              // *text*
	ElementItalic                            // _text_
	ElementLink                              // [text](url)
	ElementImage                             // ![alt](url)
	ElementCode                              // `code`
	ElementCodeBlock                         // ``` fenced block ```
	ElementQuote                             // > text
	ElementHorizontalRule                    // ---
)

var elementTypeNames = map[ElementType]string{
	ElementHeader:         "header",
	ElementList:           "list",
	ElementParagraph:      "paragraph",
	ElementBold:           "bold",
	ElementItalic:         "italic",
	ElementLink:           "link",
	ElementImage:          "image",
	ElementCode:           "code",
	ElementCodeBlock:      "code_block",
	ElementQuote:          "quote",
	ElementHorizontalRule: "horizontal_rule",
}

func (t ElementType) String() string {
	if name, ok := elementTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// MarshalText lets element types appear by name in JSON output.
func (t ElementType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Element is one parsed markdown construct. Elements never nest; which
// payload fields are meaningful depends on Type.
type Element struct {
	Type  ElementType `json:"type"`
	Level int         `json:"level,omitempty"` // set for ElementHeader
	Text  string      `json:"text,omitempty"`  // body, link text, or image alt text
	URL   string      `json:"url,omitempty"`   // set for ElementLink, ElementImage
	Items []string    `json:"items,omitempty"` // set for ElementList
}

// Header returns a header element of the given level.
func Header(level int, text string) Element {
	return Element{Type: ElementHeader, Level: level, Text: text}
}

// List returns a list element holding items in order.
func List(items ...string) Element {
	return Element{Type: ElementList, Items: items}
}

// Paragraph returns a paragraph element.
func Paragraph(text string) Element {
	return Element{Type: ElementParagraph, Text: text}
}

// Bold returns a bold span element.
func Bold(text string) Element {
	return Element{Type: ElementBold, Text: text}
}

// Italic returns an italic span element.
func Italic(text string) Element {
	return Element{Type: ElementItalic, Text: text}
}

// Link returns a hyperlink element.
func Link(text, url string) Element {
	return Element{Type: ElementLink, Text: text, URL: url}
}

// Image returns an image element.
func Image(alt, url string) Element {
	return Element{Type: ElementImage, Text: alt, URL: url}
}

// Code returns an inline code span element.
func Code(text string) Element {
	return Element{Type: ElementCode, Text: text}
}

// CodeBlock returns a fenced code block element.
func CodeBlock(text string) Element {
	return Element{Type: ElementCodeBlock, Text: text}
}

// Quote returns a block quote element.
func Quote(text string) Element {
	return Element{Type: ElementQuote, Text: text}
}

// HorizontalRule returns a thematic break element.
func HorizontalRule() Element {
	return Element{Type: ElementHorizontalRule}
}
