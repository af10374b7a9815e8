// table.go recognises table separator rows such as |---|:---:|---:|.
// Tables are not rendered; separator rows are consumed and other rows stay
// paragraph text.
package md

// Alignment is the column alignment a separator cell declares.
type Alignment int

const (
	AlignDefault Alignment = iota // ---
	AlignLeft                     // :---
	AlignCenter                   // :---:
	AlignRight                    // ---:
)

// separatorState tracks progress through one separator cell.
type separatorState int

const (
	sepStart      separatorState = iota // nothing but blanks yet
	sepLeftColon                        // leading ':' seen
	sepDashes                           // inside the dash run
	sepRightColon                       // trailing ':' seen
)

type separatorCell struct {
	state separatorState
	left  bool
}

func (c separatorCell) alignment() Alignment {
	right := c.state == sepRightColon
	switch {
	case c.left && right:
		return AlignCenter
	case c.left:
		return AlignLeft
	case right:
		return AlignRight
	}
	return AlignDefault
}

// parseSeparatorRow reports whether line is a table separator row and
// returns the alignment of each column.
func parseSeparatorRow(line []rune) ([]Alignment, bool) {
	if len(line) == 0 || line[0] != '|' {
		return nil, false
	}

	var aligns []Alignment
	var cell separatorCell

	closeCell := func() bool {
		switch cell.state {
		case sepStart:
			// Empty cell, e.g. a trailing pipe.
		case sepDashes, sepRightColon:
			aligns = append(aligns, cell.alignment())
		default:
			return false
		}
		cell = separatorCell{}
		return true
	}

	for _, r := range line[1:] {
		switch {
		case r == '|':
			if !closeCell() {
				return nil, false
			}
		case r == ':':
			switch cell.state {
			case sepStart:
				cell.state = sepLeftColon
				cell.left = true
			case sepDashes:
				cell.state = sepRightColon
			default:
				return nil, false
			}
		case r == '-':
			if cell.state == sepRightColon {
				return nil, false
			}
			cell.state = sepDashes
		case isBlank(r), r == '\r':
		default:
			return nil, false
		}
	}
	if !closeCell() || len(aligns) == 0 {
		return nil, false
	}
	return aligns, true
}
