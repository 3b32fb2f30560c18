package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/creativecreature/sheetcache"
	"github.com/creativecreature/sheetcache/league"
)

// standingsCmd prints the standings
var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Print the league standings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return oneShot(cmd, func(ctx context.Context, a *app) error {
			return printStandings(ctx, cmd.OutOrStdout(), a.league, jsonOutput)
		})
	},
}

// playerCmd prints a player profile
var playerCmd = &cobra.Command{
	Use:   "player [name]",
	Short: "Print everything the sheets know about a player",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")
		return oneShot(cmd, func(ctx context.Context, a *app) error {
			return printPlayer(ctx, cmd.OutOrStdout(), a.league, name, jsonOutput)
		})
	},
}

// rangeCmd prints a raw range
var rangeCmd = &cobra.Command{
	Use:   "range [descriptor]",
	Short: "Print the raw rows of a range",
	Long: `Prints the rows of a range in A1 notation, for example:

  leaguebot range 'Standings!A2:G'
  leaguebot range "'Team Stats'!A1:C"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rng, err := sheetcache.ParseRange(args[0])
		if err != nil {
			return err
		}
		return oneShot(cmd, func(ctx context.Context, a *app) error {
			return printRange(ctx, cmd.OutOrStdout(), a.cache, rng, jsonOutput)
		})
	},
}

func oneShot(cmd *cobra.Command, fn func(ctx context.Context, a *app) error) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Warn("closing app", zap.Error(err))
		}
	}()
	return fn(ctx, a)
}

// userError logs err and replaces it with the message a fan would see.
func userError(err error) error {
	if logger != nil {
		logger.Debug("command failed", zap.Error(err))
	}
	return errors.New(league.UserMessage(err))
}

func printStandings(ctx context.Context, w io.Writer, svc *league.Service, asJSON bool) error {
	standings, err := svc.Standings(ctx)
	if err != nil {
		return userError(err)
	}
	if asJSON {
		return writeJSON(w, standings)
	}

	rows := make([][]string, 0, len(standings))
	for _, s := range standings {
		gb := "-"
		if s.GamesBehind > 0 {
			gb = strconv.FormatFloat(s.GamesBehind, 'f', 1, 64)
		}
		rows = append(rows, []string{
			s.Team,
			strconv.Itoa(s.Wins),
			strconv.Itoa(s.Losses),
			strconv.Itoa(s.Ties),
			rate(s.WinPct),
			gb,
			fmt.Sprintf("%+d", s.RunDiff()),
			s.Streak,
		})
	}
	_, err = fmt.Fprintln(w, renderTable([]string{"Team", "W", "L", "T", "PCT", "GB", "DIFF", "STRK"}, rows))
	return err
}

func printPlayer(ctx context.Context, w io.Writer, svc *league.Service, name string, asJSON bool) error {
	p, err := svc.Player(ctx, name)
	if err != nil {
		return userError(err)
	}
	if asJSON {
		return writeJSON(w, p)
	}

	rows := [][]string{{"Team", p.Team}}
	if p.Position != "" {
		rows = append(rows, []string{"Position", p.Position})
	}
	if p.Captain {
		rows = append(rows, []string{"Captain", "yes"})
	}
	if h := p.Hitting; h != nil {
		rows = append(rows,
			[]string{"AVG/OBP/SLG", fmt.Sprintf("%s/%s/%s", rate(h.Avg()), rate(h.OBP()), rate(h.SLG()))},
			[]string{"HR / RBI / SB", fmt.Sprintf("%d / %d / %d", h.HomeRuns, h.RBI, h.StolenBases)},
		)
	}
	if pi := p.Pitching; pi != nil {
		rows = append(rows,
			[]string{"IP", pi.InningsPitched()},
			[]string{"ERA / WHIP", fmt.Sprintf("%.2f / %.2f", pi.ERA(), pi.WHIP())},
			[]string{"W-L / SV", fmt.Sprintf("%d-%d / %d", pi.Wins, pi.Losses, pi.Saves)},
		)
	}
	if f := p.Fielding; f != nil {
		rows = append(rows, []string{"Fielding", rate(f.FieldingPct())})
	}
	if at := p.Attributes; at != nil {
		rows = append(rows, []string{"Overall", strconv.Itoa(at.Overall())})
	}
	if len(p.Friends) > 0 {
		rows = append(rows, []string{"Good chemistry", strings.Join(p.Friends, ", ")})
	}
	if len(p.Rivals) > 0 {
		rows = append(rows, []string{"Bad chemistry", strings.Join(p.Rivals, ", ")})
	}
	_, err = fmt.Fprintln(w, renderTable([]string{p.Name, ""}, rows))
	return err
}

func printRange(ctx context.Context, w io.Writer, cache *sheetcache.Client, rng sheetcache.Range, asJSON bool) error {
	rows, err := cache.GetRange(ctx, rng)
	if err != nil {
		return userError(err)
	}
	cache.MarkRefreshed()
	if asJSON {
		return writeJSON(w, rows)
	}
	if len(rows) == 0 {
		_, err = fmt.Fprintf(w, "%s is empty\n", rng)
		return err
	}
	_, err = fmt.Fprintln(w, renderTable(nil, rows))
	return err
}

func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		Rows(rows...)
	if len(headers) > 0 {
		t = t.Headers(headers...).BorderHeader(false)
	}
	return t.String()
}

// rate formats a rate stat the way box scores do: .312 rather than 0.312.
func rate(f float64) string {
	s := strconv.FormatFloat(f, 'f', 3, 64)
	return strings.TrimPrefix(s, "0")
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
