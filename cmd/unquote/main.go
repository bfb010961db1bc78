// Command unquote is the terminal client for playing a day's cryptoquip
// puzzle against an Unquote server.
package main

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/unquote/unquote/internal/client/api"
	"github.com/unquote/unquote/internal/client/app"
	"github.com/unquote/unquote/internal/client/termio"
	"github.com/unquote/unquote/internal/gameid"
	"github.com/unquote/unquote/internal/rng"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts := app.Options{}
	var insecure, random bool

	for _, a := range args {
		switch a {
		case "--insecure":
			insecure = true
		case "--random":
			random = true
		case "version":
			fmt.Printf("unquote %s\n", version)
			return 0
		default:
			fmt.Fprintf(os.Stderr, "unquote: unrecognized argument %q\n", a)
			return 1
		}
	}
	opts.Insecure = insecure

	if random {
		d, err := randomDate()
		if err != nil {
			fmt.Fprintf(os.Stderr, "unquote: choosing a random date: %v\n", err)
			return 1
		}
		opts.Date = d.Format("2006-01-02")
	}

	baseURL := os.Getenv("UNQUOTE_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}
	if err := validateBaseURL(baseURL, insecure); err != nil {
		fmt.Fprintf(os.Stderr, "unquote: %v\n", err)
		return 1
	}

	if err := termio.RequireInteractive(); err != nil {
		fmt.Fprintf(os.Stderr, "unquote: %v\n", err)
		return 1
	}

	zone.NewGlobal()
	client := api.New(baseURL)
	model := app.New(client, opts)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "unquote: %v\n", err)
		return 1
	}
	return 0
}

// validateBaseURL rejects plain HTTP to a non-localhost host unless
// --insecure was passed.
func validateBaseURL(raw string, insecure bool) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid UNQUOTE_API_URL %q: %w", raw, err)
	}
	if u.Scheme == "https" || insecure {
		return nil
	}
	host := u.Hostname()
	if host == "localhost" || strings.HasPrefix(host, "127.") || host == "::1" {
		return nil
	}
	return fmt.Errorf("refusing plain HTTP to non-localhost host %q; pass --insecure to override", host)
}

// randomDate picks a calendar date within the game-id codec's supported
// range, seeded from the wall clock.
func randomDate() (time.Time, error) {
	years := gameid.MaxYear - gameid.MinYear
	seed := fmt.Sprintf("random-%d", time.Now().UnixNano())
	offset := rng.New(seed).Intn(years * 365)
	return time.Date(gameid.MinYear, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset), nil
}
