package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/seoscan/seoscan"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Fetcher seoscan.Fetcher
	Logger  *slog.Logger
	Verbose bool
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Timeout time.Duration `short:"t" default:"10s" help:"Fetch timeout for URL sources"`
	Verbose bool          `short:"v" help:"Log element searches to stderr"`

	Title     TitleCmd     `cmd:"" help:"Print the page title"`
	Meta      MetaCmd      `cmd:"" help:"Print a meta tag's content"`
	Robots    RobotsCmd    `cmd:"" help:"Print the robots meta directive"`
	Canonical CanonicalCmd `cmd:"" help:"Print the canonical URL"`
	Content   ContentCmd   `cmd:"" help:"Print heading text by level"`
	Query     QueryCmd     `cmd:"" help:"Search for an element by arbitrary attribute constraints"`
}

// TitleCmd is the "title" subcommand.
type TitleCmd struct {
	Source string `arg:"" help:"URL, file path, or - for stdin"`
}

// MetaCmd is the "meta" subcommand.
type MetaCmd struct {
	Attr    string `short:"a" default:"name:description" help:"attribute:value pair identifying the meta tag"`
	Extract string `short:"e" default:"content" help:"Attribute to extract the value from"`
	Source  string `arg:"" help:"URL, file path, or - for stdin"`
}

// RobotsCmd is the "robots" subcommand.
type RobotsCmd struct {
	Source string `arg:"" help:"URL, file path, or - for stdin"`
}

// CanonicalCmd is the "canonical" subcommand.
type CanonicalCmd struct {
	Source string `arg:"" help:"URL, file path, or - for stdin"`
}

// ContentCmd is the "content" subcommand.
type ContentCmd struct {
	Heading string `short:"H" default:"h1" help:"Heading level to print (h1-h6)"`
	Source  string `arg:"" help:"URL, file path, or - for stdin"`
}

// QueryCmd is the "query" subcommand.
type QueryCmd struct {
	Tag     string   `arg:"" help:"Element tag name to search for"`
	Source  string   `arg:"" help:"URL, file path, or - for stdin"`
	Filter  []string `short:"F" name:"filter" help:"attribute=value exact filter (repeatable, all must match)"`
	Value   string   `help:"Match if any attribute holds this exact value"`
	Extract string   `short:"e" help:"Attribute to extract instead of node text"`
}

// reportError renders err on stderr and returns it for the exit status.
func reportError(deps *Dependencies, err error) error {
	fmt.Fprintf(deps.Stderr, "error: %s\n", seoscan.ErrorMessage(err))
	return err
}
