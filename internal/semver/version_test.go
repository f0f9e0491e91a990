package semver

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionString(t *testing.T) {
	tests := []struct {
		name    string
		version Version
		want    string
	}{
		{"zero value", Version{}, "0.0.0"},
		{"plain", New(0, 1, 1), "0.1.1"},
		{"multi digit", New(2, 10, 5), "2.10.5"},
		{"pre-release without number", Version{Major: 1, Pre: &PreRelease{Prefix: "rc"}}, "1.0.0-rc"},
		{"pre-release number zero omitted", Version{Major: 1, Pre: &PreRelease{Prefix: "rc", Number: 0}}, "1.0.0-rc"},
		{"pre-release with number", Version{Major: 1, Pre: &PreRelease{Prefix: "rc", Number: 3}}, "1.0.0-rc.3"},
		{"scope is not part of plain form", Version{Major: 0, Minor: 1, Patch: 1, Prefix: "iOS"}, "0.1.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.version.String())
		})
	}
}

func TestVersionQualified(t *testing.T) {
	v := Version{Major: 2, Minor: 3, Patch: 4, Prefix: "macOS", Pre: &PreRelease{Prefix: "candidate", Number: 100}}
	assert.Equal(t, "2.3.4-candidate.100", v.String())
	assert.Equal(t, "macOS_2.3.4-candidate.100", v.Qualified())

	assert.Equal(t, "iOS_0.1.1", Version{Minor: 1, Patch: 1, Prefix: "iOS"}.Qualified())
	assert.Equal(t, "0.1.1", Version{Minor: 1, Patch: 1}.Qualified())
}

func TestVersionEquality(t *testing.T) {
	assert.True(t, Version{}.Equal(Version{}))
	assert.True(t, New(1, 10, 5).Equal(New(1, 10, 5)))
	assert.False(t, New(1, 10, 5).Equal(New(2, 10, 5)))
	assert.False(t, New(1, 10, 5).Equal(New(1, 11, 5)))
	assert.False(t, New(1, 10, 5).Equal(New(1, 10, 10)))

	rc := func(n int) *PreRelease { return &PreRelease{Prefix: "rc", Number: n} }
	assert.True(t, Version{Pre: rc(0)}.Equal(Version{Pre: rc(0)}))
	assert.False(t, Version{Pre: rc(0)}.Equal(Version{Pre: &PreRelease{Prefix: "alpha"}}))
	assert.False(t, Version{Pre: rc(0)}.Equal(Version{Pre: rc(10)}))
	assert.False(t, Version{}.Equal(Version{Pre: rc(0)}))

	assert.True(t, Version{Major: 20, Minor: 2, Patch: 10, Prefix: "fromage"}.Equal(Version{Major: 20, Minor: 2, Patch: 10, Prefix: "fromage"}))
	assert.False(t, Version{Major: 20, Minor: 2, Patch: 10, Prefix: "fromage"}.Equal(Version{Major: 20, Minor: 2, Patch: 10, Prefix: "cheese"}))
}

func mustParse(t *testing.T, tag, scope string) Version {
	t.Helper()
	v, err := Parse(tag, scope)
	require.NoError(t, err)
	return v
}

func TestVersionOrdering(t *testing.T) {
	less := []struct{ a, b string }{
		{"0.0.0", "0.1.4"},
		{"1.0.0", "2.0.0"},
		{"1.0.0", "1.1.0"},
		{"1.0.0", "1.0.1"},
		{"0.1.0", "1.0.0"},
		{"1.0.0-alpha", "1.0.0"},
		{"1.0.0-alpha", "1.0.0-beta"},
		{"1.0.0-rc", "1.0.0-rc.3"},
		{"1.0.0-rc.2", "1.0.0-rc.3"},
		{"0.2.2", "0.2.3-rc"},
	}
	for _, tt := range less {
		a, err := Parse(tt.a, "")
		require.NoError(t, err)
		b, err := Parse(tt.b, "")
		require.NoError(t, err)
		assert.True(t, a.Less(b), "%s < %s", tt.a, tt.b)
		assert.False(t, b.Less(a), "!(%s < %s)", tt.b, tt.a)
	}

	// Scope prefixes order lexicographically ahead of the numbers.
	assert.True(t, mustParse(t, "alpha_1.0.0", "alpha").Less(mustParse(t, "beta_1.0.0", "beta")))
	assert.True(t, mustParse(t, "beta_1.0.0", "beta").Less(mustParse(t, "gamma_1.0.0", "gamma")))

	// Total order: exactly one of <, ==, > holds.
	pairs := []struct{ a, b Version }{
		{New(1, 0, 0), New(1, 0, 0)},
		{New(1, 0, 0), New(1, 0, 1)},
		{Version{Major: 1, Pre: &PreRelease{Prefix: "rc"}}, New(1, 0, 0)},
	}
	for _, tt := range pairs {
		states := 0
		if tt.a.Less(tt.b) {
			states++
		}
		if tt.b.Less(tt.a) {
			states++
		}
		if tt.a.Equal(tt.b) {
			states++
		}
		assert.Equal(t, 1, states)
	}
}

func TestVersionSorting(t *testing.T) {
	versions := []Version{
		New(1, 2, 3),
		New(0, 0, 0),
		New(12, 0, 6),
		New(0, 1, 0),
		New(0, 0, 0),
	}
	sort.Slice(versions, func(i, j int) bool { return versions[i].Less(versions[j]) })
	var got []string
	for _, v := range versions {
		got = append(got, v.Qualified())
	}
	assert.Equal(t, []string{"0.0.0", "0.0.0", "0.1.0", "1.2.3", "12.0.6"}, got)

	scoped := []Version{
		{Major: 1, Minor: 2, Patch: 3, Prefix: "a"},
		{Prefix: "b"},
		{Major: 12, Patch: 6, Prefix: "a"},
		{Minor: 1, Prefix: "b"},
		{Prefix: "a"},
	}
	sort.Slice(scoped, func(i, j int) bool { return scoped[i].Less(scoped[j]) })
	got = nil
	for _, v := range scoped {
		got = append(got, v.Qualified())
	}
	assert.Equal(t, []string{"a_0.0.0", "a_1.2.3", "a_12.0.6", "b_0.0.0", "b_0.1.0"}, got)
}

func TestIsInitialDevelopment(t *testing.T) {
	assert.True(t, Version{}.IsInitialDevelopment())
	assert.True(t, New(0, 1, 4).IsInitialDevelopment())
	assert.True(t, New(0, 20, 0).IsInitialDevelopment())
	assert.False(t, New(1, 0, 0).IsInitialDevelopment())
	assert.False(t, New(200, 1, 0).IsInitialDevelopment())
}

func TestIsPreRelease(t *testing.T) {
	assert.False(t, Version{}.IsPreRelease())
	assert.False(t, New(2, 0, 10).IsPreRelease())
	assert.True(t, Version{Major: 1, Pre: &PreRelease{Prefix: "rc"}}.IsPreRelease())
	assert.True(t, Version{Major: 1, Pre: &PreRelease{Prefix: "rc", Number: 3}}.IsPreRelease())
}
