package sheetcache

import (
	"fmt"
	"strings"
	"unicode"
)

// Range identifies a rectangular region of a spreadsheet: a sheet name and an
// optional A1 cell range. A Range without cells refers to the whole sheet.
type Range struct {
	Sheet string
	Cells string
}

// NewRange returns a Range for the given sheet and cells.
func NewRange(sheet, cells string) Range {
	return Range{Sheet: sheet, Cells: cells}
}

// String renders the range in A1 notation. Sheet names that contain anything
// but letters, digits and underscores are quoted, e.g. 'Team Stats'!A1:C.
func (r Range) String() string {
	sheet := r.Sheet
	if needsQuoting(sheet) {
		sheet = "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
	}
	if r.Cells == "" {
		return sheet
	}
	return sheet + "!" + r.Cells
}

func needsQuoting(sheet string) bool {
	for _, r := range sheet {
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// ParseRange parses a range descriptor in A1 notation.
func ParseRange(s string) (Range, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Range{}, fmt.Errorf("%w: empty descriptor", ErrInvalidRange)
	}

	if !strings.HasPrefix(s, "'") {
		sheet, cells, _ := strings.Cut(s, "!")
		if sheet == "" {
			return Range{}, fmt.Errorf("%w: %q has no sheet name", ErrInvalidRange, s)
		}
		return Range{Sheet: sheet, Cells: cells}, nil
	}

	// Quoted sheet name. Two consecutive quotes are an escaped quote.
	var sb strings.Builder
	for i := 1; i < len(s); i++ {
		if s[i] != '\'' {
			sb.WriteByte(s[i])
			continue
		}
		if i+1 < len(s) && s[i+1] == '\'' {
			sb.WriteByte('\'')
			i++
			continue
		}

		rest := s[i+1:]
		if sb.Len() == 0 {
			return Range{}, fmt.Errorf("%w: %q has no sheet name", ErrInvalidRange, s)
		}
		if rest == "" {
			return Range{Sheet: sb.String()}, nil
		}
		if !strings.HasPrefix(rest, "!") {
			return Range{}, fmt.Errorf("%w: unexpected %q after sheet name", ErrInvalidRange, rest)
		}
		return Range{Sheet: sb.String(), Cells: rest[1:]}, nil
	}
	return Range{}, fmt.Errorf("%w: unterminated sheet name in %q", ErrInvalidRange, s)
}
