package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/unquote/unquote/internal/client/api"
	"github.com/unquote/unquote/internal/client/clientconfig"
	"github.com/unquote/unquote/internal/client/grid"
	"github.com/unquote/unquote/internal/client/session"
	"github.com/unquote/unquote/internal/model"
)

func fetchPuzzleCmd(client *api.Client, date string) tea.Cmd {
	return func() tea.Msg {
		var (
			p   model.Puzzle
			err error
		)
		if date != "" {
			p, err = client.FetchByDate(context.Background(), date)
		} else {
			p, err = client.FetchToday(context.Background())
		}
		if err != nil {
			return errMsg{err: err}
		}
		return puzzleFetchedMsg{puzzle: &p}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func checkSolutionCmd(client *api.Client, gameID, solution, claimCode string, completionSeconds int) tea.Cmd {
	return func() tea.Msg {
		result, err := client.CheckSolution(context.Background(), gameID, solution, claimCode, completionSeconds)
		if err != nil {
			return errMsg{err: err}
		}
		return solutionCheckedMsg{result: result}
	}
}

func registerPlayerCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		code, err := client.RegisterPlayer(context.Background())
		if err != nil {
			return errMsg{err: err}
		}
		return playerRegisteredMsg{claimCode: code}
	}
}

func fetchStatsCmd(client *api.Client, claimCode string) tea.Cmd {
	return func() tea.Msg {
		stats, err := client.FetchStats(context.Background(), claimCode)
		if err != nil {
			return errMsg{err: err}
		}
		return statsFetchedMsg{stats: stats}
	}
}

func loadConfigCmd() tea.Cmd {
	return func() tea.Msg {
		cfg, found, err := clientconfig.Load()
		if err != nil || !found {
			return configLoadedMsg{config: nil}
		}
		return configLoadedMsg{config: &cfg}
	}
}

func saveConfigCmd(cfg clientconfig.Config) tea.Cmd {
	return func() tea.Msg {
		_ = clientconfig.Save(cfg)
		return configSavedMsg{}
	}
}

func loadSessionCmd(gameID string) tea.Cmd {
	return func() tea.Msg {
		s, found, err := session.Load(gameID)
		if err != nil || !found {
			return sessionLoadedMsg{session: nil}
		}
		return sessionLoadedMsg{session: &s}
	}
}

func saveSessionCmd(writer *session.Writer, gameID string, cells []grid.Cell, elapsed time.Duration) tea.Cmd {
	return func() tea.Msg {
		writer.Request(session.FromCells(gameID, cells, elapsed, false, 0))
		return nil
	}
}

func saveSolvedSessionCmd(writer *session.Writer, gameID string, cells []grid.Cell, completionTime time.Duration) tea.Cmd {
	return func() tea.Msg {
		writer.Request(session.FromCells(gameID, cells, completionTime, true, completionTime))
		writer.Flush()
		return nil
	}
}
