package league

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when a player or team isn't on any sheet.
	ErrNotFound = errors.New("league: not found")
	// ErrUnknownStat is returned by Leaders for a stat it can't rank.
	ErrUnknownStat = errors.New("league: unknown stat")
)

const (
	MessageUnavailable = "Couldn't load league data right now. Please try again later."
	MessageNotFound    = "Couldn't find that player or team in the league sheets."
)

// UserMessage converts an error into the text shown to fans. Failures to
// reach the spreadsheet all look the same: there's nothing a fan can do
// about quota, auth or network problems besides trying again later.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return MessageNotFound
	case errors.Is(err, ErrUnknownStat):
		return fmt.Sprintf("Unknown stat. Try one of: %s.", strings.Join(LeaderStats(), ", "))
	default:
		return MessageUnavailable
	}
}
