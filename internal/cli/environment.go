package cli

import (
	"errors"
	"os"

	"github.com/jbmorley/changes/internal/config"
	clierrors "github.com/jbmorley/changes/internal/errors"
	"github.com/jbmorley/changes/internal/gitrepo"
	"github.com/jbmorley/changes/internal/history"
	"github.com/jbmorley/changes/internal/report"
)

// environment holds the per-invocation dependencies shared by the
// commands: configuration, the opened repository and the reporter.
type environment struct {
	cfg  *config.Configuration
	repo *gitrepo.Repository
	rep  *report.Reporter
}

// setup loads configuration and opens the repository containing the
// working directory.
func setup() (*environment, error) {
	rep := report.Stderr(verboseFlag)
	if verboseFlag {
		gitrepo.SetDebugLogger(rep.Debugf)
	}

	cfg, err := config.Load("")
	if err != nil {
		return nil, clierrors.ConfigParseError(config.ProjectConfigName, err)
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, clierrors.Wrap(err, clierrors.Environment)
	}
	repo, err := gitrepo.Open(wd)
	if err != nil {
		return nil, clierrors.NotARepository(wd)
	}

	return &environment{cfg: cfg, repo: repo, rep: rep}, nil
}

// scope resolves the active scope: the flag wins over configuration.
func (e *environment) scope() string {
	if scopeFlag != "" {
		return scopeFlag
	}
	return e.cfg.Scope
}

// history reads the commit feed and the optional ledger and builds the
// release history. ledgerPath falls back to the configured history file.
func (e *environment) history(opts history.Options, ledgerPath string) (*history.History, error) {
	commits, err := e.repo.Commits(opts.Scope)
	if err != nil {
		if errors.Is(err, gitrepo.ErrShallowClone) {
			return nil, clierrors.ShallowClone()
		}
		return nil, clierrors.Wrap(err, clierrors.Environment)
	}

	if ledgerPath == "" {
		ledgerPath = e.cfg.History
	}
	var ledger map[string]*history.Release
	if ledgerPath != "" {
		ledger, err = history.LoadLedger(ledgerPath, opts.Scope, e.rep)
		if err != nil {
			return nil, clierrors.LedgerParseError(ledgerPath, err)
		}
	}

	return history.Build(commits, ledger, opts, e.rep), nil
}
