package league

import (
	"math"
	"strconv"
	"strings"

	"github.com/creativecreature/sheetcache"
)

// Cells are typed in by hand, so anything that doesn't parse counts as zero.

func cellString(rows sheetcache.Rows, row, col int) string {
	return strings.TrimSpace(rows.Cell(row, col))
}

func cellInt(rows sheetcache.Rows, row, col int) int {
	s := strings.ReplaceAll(cellString(rows, row, col), ",", "")
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	// NaN fails both comparisons.
	if f, err := strconv.ParseFloat(s, 64); err == nil && f > math.MinInt64 && f < math.MaxInt64 {
		return int(f)
	}
	return 0
}

func cellBool(rows sheetcache.Rows, row, col int) bool {
	switch strings.ToLower(cellString(rows, row, col)) {
	case "y", "yes", "true", "x", "1", "c":
		return true
	default:
		return false
	}
}

// cellOuts parses innings pitched in box score notation, where the digit
// after the dot counts outs: "6.2" is six innings and two outs.
func cellOuts(rows sheetcache.Rows, row, col int) int {
	s := cellString(rows, row, col)
	if strings.HasPrefix(s, "-") {
		return 0
	}
	whole, frac, _ := strings.Cut(s, ".")
	innings, err := strconv.Atoi(whole)
	if err != nil {
		if whole != "" {
			return 0
		}
		innings = 0
	}
	if innings > math.MaxInt/3-2 {
		return 0
	}
	outs := 0
	if frac != "" {
		outs, err = strconv.Atoi(frac)
		if err != nil || outs < 0 || outs > 2 {
			return 0
		}
	}
	return innings*3 + outs
}

func sameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
