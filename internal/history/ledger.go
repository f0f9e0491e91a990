package history

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jbmorley/changes/internal/conventional"
	"github.com/jbmorley/changes/internal/report"
	"github.com/jbmorley/changes/internal/semver"
)

// LoadLedger reads an externally authored ledger file: a YAML mapping
// from version tag to an ordered list of commit-subject-style strings,
// covering releases that predate tag-based history. Entries whose scope
// prefix does not match the requested scope are skipped with a warning;
// anything else malformed (wrong shape, unparseable version key) is a
// hard configuration error.
//
// The declared change order is the order the notes should render in, so
// the list is reversed into the newest-first storage convention shared
// with derived releases.
func LoadLedger(path, scope string, rep *report.Reporter) (map[string]*Release, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading history file: %w", err)
	}

	var entries map[string][]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing history file %s: %w", path, err)
	}

	ledger := make(map[string]*Release, len(entries))
	for tag, lines := range entries {
		version, err := semver.Parse(tag, scope)
		if err != nil {
			if errors.Is(err, semver.ErrScopeMismatch) {
				rep.Warnf("Ignoring version '%s'...", tag)
				continue
			}
			return nil, fmt.Errorf("history file %s: %w", path, err)
		}

		changes := make([]Change, 0, len(lines))
		for i := len(lines) - 1; i >= 0; i-- {
			changes = append(changes, Change{Message: conventional.ParseMessage(lines[i])})
		}

		ledger[version.Qualified()] = &Release{
			Version:    &version,
			Changes:    changes,
			IsReleased: true,
		}
	}
	return ledger, nil
}
