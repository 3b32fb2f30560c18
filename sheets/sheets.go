// Package sheets implements a sheetcache.Fetcher backed by the Google
// Sheets API, authenticated with a service account.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/creativecreature/sheetcache"
)

var (
	ErrMissingSpreadsheetID = errors.New("sheets: missing spreadsheet id")
	ErrMissingCredentials   = errors.New("sheets: missing service account email or private key")
)

// Config holds what's needed to read from a single spreadsheet.
type Config struct {
	SpreadsheetID string
	// ClientEmail and PrivateKey identify the service account. The private
	// key is a PEM block, and may have its newlines escaped as "\n".
	ClientEmail string
	PrivateKey  string
}

// Client reads ranges from one spreadsheet.
type Client struct {
	spreadsheetID string
	values        *sheetsapi.SpreadsheetsValuesService
}

// New creates a Client. The context is used for fetching access tokens and
// should outlive the client. Any options are applied after the service
// account credentials; when the credentials are left empty, the options
// have to provide a way to authenticate.
func New(ctx context.Context, cfg Config, opts ...option.ClientOption) (*Client, error) {
	if cfg.SpreadsheetID == "" {
		return nil, ErrMissingSpreadsheetID
	}

	clientOpts := make([]option.ClientOption, 0, len(opts)+1)
	switch {
	case cfg.ClientEmail != "" && cfg.PrivateKey != "":
		conf := &jwt.Config{
			Email:      cfg.ClientEmail,
			PrivateKey: []byte(normalizePrivateKey(cfg.PrivateKey)),
			Scopes:     []string{sheetsapi.SpreadsheetsReadonlyScope},
			TokenURL:   google.JWTTokenURL,
		}
		clientOpts = append(clientOpts, option.WithTokenSource(conf.TokenSource(ctx)))
	case len(opts) == 0:
		return nil, ErrMissingCredentials
	}
	clientOpts = append(clientOpts, opts...)

	svc, err := sheetsapi.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("sheets: creating service: %w", err)
	}
	return &Client{spreadsheetID: cfg.SpreadsheetID, values: svc.Spreadsheets.Values}, nil
}

// FetchRange reads the formatted values of a range, row by row.
func (c *Client) FetchRange(ctx context.Context, rangeDescriptor string) (sheetcache.Rows, error) {
	resp, err := c.values.Get(c.spreadsheetID, rangeDescriptor).
		ValueRenderOption("FORMATTED_VALUE").
		MajorDimension("ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("sheets: fetching %s: %w", rangeDescriptor, err)
	}

	rows := make(sheetcache.Rows, 0, len(resp.Values))
	for _, values := range resp.Values {
		row := make([]string, len(values))
		for i, v := range values {
			row[i] = formatCell(v)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// formatCell turns a decoded JSON cell into a string. With FORMATTED_VALUE
// rendering the API sends strings, but numbers and booleans are handled in
// case the render option is ever changed.
func formatCell(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// normalizePrivateKey expands escaped newlines. Keys copied from a service
// account JSON file into an env file usually arrive on a single line.
func normalizePrivateKey(key string) string {
	key = strings.Trim(strings.TrimSpace(key), `"`)
	return strings.TrimSpace(strings.ReplaceAll(key, `\n`, "\n"))
}
