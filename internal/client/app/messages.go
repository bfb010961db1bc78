package app

import (
	"time"

	"github.com/unquote/unquote/internal/client/api"
	"github.com/unquote/unquote/internal/client/clientconfig"
	"github.com/unquote/unquote/internal/client/session"
	"github.com/unquote/unquote/internal/model"
)

type puzzleFetchedMsg struct {
	puzzle *model.Puzzle
}

type solutionCheckedMsg struct {
	result api.CheckResult
}

type errMsg struct {
	err error
}

type tickMsg time.Time

type sessionLoadedMsg struct {
	session *session.GameSession
}

type configLoadedMsg struct {
	config *clientconfig.Config
}

type configSavedMsg struct{}

type playerRegisteredMsg struct {
	claimCode string
}

type statsFetchedMsg struct {
	stats api.Stats
}
