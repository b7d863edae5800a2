package main

import (
	"io"
	"os"
	"strings"

	"github.com/seoscan/seoscan"
	"github.com/seoscan/seoscan/goquery"
	seoslog "github.com/seoscan/seoscan/slog"
)

// NewScanner loads HTML from a source and builds a Scanner over it.
// When Verbose is set the element searcher is wrapped with logging.
func NewScanner(deps *Dependencies, source string) (*seoscan.Scanner, error) {
	raw, err := LoadSource(deps, source)
	if err != nil {
		return nil, err
	}

	nav, err := goquery.NewNavigator(raw)
	if err != nil {
		return nil, err
	}

	var searcher seoscan.ElementSearcher = nav
	if deps.Verbose {
		searcher = seoslog.NewLoggingNavigator(nav, deps.Logger)
	}

	return seoscan.NewScanner(searcher), nil
}

// LoadSource resolves a source argument to raw HTML: "-" reads stdin,
// http(s) URLs are fetched, anything else is read as a file path.
func LoadSource(deps *Dependencies, source string) (string, error) {
	switch {
	case source == "-":
		b, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return "", seoscan.Errorf(seoscan.EINTERNAL, "failed to read stdin: %v", err)
		}
		return string(b), nil

	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return deps.Fetcher.Fetch(deps.Ctx, source)

	default:
		b, err := os.ReadFile(source)
		if err != nil {
			return "", seoscan.Errorf(seoscan.EINVALID, "failed to read file %q: %v", source, err)
		}
		return string(b), nil
	}
}
