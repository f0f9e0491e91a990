package history

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbmorley/changes/internal/conventional"
)

func writeLedger(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "history.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadLedger(t *testing.T) {
	path := writeLedger(t, `
"1.0.0": []
"2.0.0":
- "feat: New feature"
`)
	ledger, err := LoadLedger(path, "", nil)
	require.NoError(t, err)
	require.Len(t, ledger, 2)

	release := ledger["2.0.0"]
	require.NotNil(t, release)
	assert.True(t, release.IsReleased)
	require.Len(t, release.Changes, 1)
	assert.True(t, release.Changes[0].Equal(Change{Message: conventional.Message{
		Type:        conventional.TypeFeature,
		Description: "New feature",
	}}))

	empty := ledger["1.0.0"]
	require.NotNil(t, empty)
	assert.Empty(t, empty.Changes)
	assert.True(t, empty.IsEmpty())
}

func TestLoadLedgerDeclaredOrderStoredNewestFirst(t *testing.T) {
	path := writeLedger(t, `
"2.0.0":
- "feat: Baz"
- "fix: Foo"
- "feat: Bar"
`)
	ledger, err := LoadLedger(path, "", nil)
	require.NoError(t, err)

	var descriptions []string
	for _, c := range ledger["2.0.0"].Changes {
		descriptions = append(descriptions, c.Message.Description)
	}
	assert.Equal(t, []string{"Bar", "Foo", "Baz"}, descriptions)
}

func TestLoadLedgerInvalidShape(t *testing.T) {
	// Unparseable version key.
	path := writeLedger(t, `
"key":
- "string"
`)
	_, err := LoadLedger(path, "", nil)
	assert.Error(t, err)

	// Value is not a list.
	path = writeLedger(t, `
"2.4.5": "string"
`)
	_, err = LoadLedger(path, "", nil)
	assert.Error(t, err)

	// Top level is not a mapping.
	path = writeLedger(t, `
- "2.4.5"
`)
	_, err = LoadLedger(path, "", nil)
	assert.Error(t, err)

	_, err = LoadLedger(filepath.Join(t.TempDir(), "missing.yaml"), "", nil)
	assert.Error(t, err)
}

func TestLoadLedgerScopeFiltering(t *testing.T) {
	contents := `
"macOS_1.4.0":
- "feat: Foo"
- "feat: Bar"
- "feat: Baz"
"macOS_1.3.4":
- "fix: Minor"
"1.0.4":
- "fix: Cheese"
`
	path := writeLedger(t, contents)

	ledger, err := LoadLedger(path, "macOS", nil)
	require.NoError(t, err)
	assert.Len(t, ledger, 2)
	assert.Contains(t, ledger, "macOS_1.4.0")
	assert.Contains(t, ledger, "macOS_1.3.4")

	ledger, err = LoadLedger(path, "", nil)
	require.NoError(t, err)
	assert.Len(t, ledger, 1)
	assert.Contains(t, ledger, "1.0.4")

	ledger, err = LoadLedger(path, "cheese", nil)
	require.NoError(t, err)
	assert.Empty(t, ledger)
}

func TestBuildMergesLedger(t *testing.T) {
	feed := []Change{
		commit(t, "feat: New and exciting"),
		commit(t, "initial commit", "1.10.1"),
	}
	path := writeLedger(t, `
"1.11.0":
- "feat: Baz"
- "fix: Foo"
- "feat: Bar"
`)
	ledger, err := LoadLedger(path, "", nil)
	require.NoError(t, err)

	h := Build(feed, ledger, Options{PreReleasePrefix: "rc"}, nil)
	require.Len(t, h.Releases, 2)

	// The derived unreleased head (1.11.0) collides with the ledger entry
	// and absorbs its changes after its own.
	head := h.Releases[0]
	assert.Equal(t, "1.11.0", head.Version.String())
	assert.False(t, head.IsReleased)
	var descriptions []string
	for _, c := range head.Changes {
		descriptions = append(descriptions, c.Message.Description)
	}
	assert.Equal(t, []string{"New and exciting", "Bar", "Foo", "Baz"}, descriptions)

	assert.Equal(t, "1.10.1", h.Releases[1].Version.String())
}

func TestBuildInsertsLedgerReleases(t *testing.T) {
	feed := []Change{
		commit(t, "initial commit", "21.0.0"),
	}
	path := writeLedger(t, `
"1.0.0": []
"2.0.0":
- "feat: New feature"
`)
	ledger, err := LoadLedger(path, "", nil)
	require.NoError(t, err)

	h := Build(feed, ledger, Options{PreReleasePrefix: "rc"}, nil)
	require.Len(t, h.Releases, 3)
	var versions []string
	for _, r := range h.Releases {
		versions = append(versions, r.Version.String())
	}
	assert.Equal(t, []string{"21.0.0", "2.0.0", "1.0.0"}, versions)
}
