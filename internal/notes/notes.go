// Package notes renders release histories as markdown release notes.
package notes

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/jbmorley/changes/internal/conventional"
	"github.com/jbmorley/changes/internal/history"
)

// Section is a titled group of change descriptions within a release.
type Section struct {
	Title   string
	Changes []string
}

// Sections groups a release's changes for presentation. Changes are
// listed oldest first, Changes before Fixes; types that don't map to a
// section are omitted. A section only appears when it has entries.
func Sections(release *history.Release) []Section {
	byTitle := make(map[conventional.Section][]string)
	for i := len(release.Changes) - 1; i >= 0; i-- {
		message := release.Changes[i].Message
		section := message.Type.Section()
		if section == conventional.SectionIgnore {
			continue
		}
		byTitle[section] = append(byTitle[section], message.Description)
	}

	var sections []Section
	for _, s := range []conventional.Section{conventional.SectionChanges, conventional.SectionFixes} {
		if changes := byTitle[s]; len(changes) > 0 {
			sections = append(sections, Section{Title: string(s), Changes: changes})
		}
	}
	return sections
}

// RenderSingle renders the notes for one release: its sections only, no
// version header.
func RenderSingle(release *history.Release) string {
	var b strings.Builder
	writeSections(&b, release)
	return finish(b.String())
}

// RenderMultiple renders the notes for a whole history, newest release
// first, each under a version header. Unreleased versions are marked.
func RenderMultiple(releases []*history.Release) string {
	var b strings.Builder
	for _, release := range releases {
		header := release.Version.String()
		if !release.IsReleased {
			header += " (Unreleased)"
		}
		fmt.Fprintf(&b, "# %s\n\n", header)
		writeSections(&b, release)
	}
	return finish(b.String())
}

func writeSections(b *strings.Builder, release *history.Release) {
	for _, section := range Sections(release) {
		fmt.Fprintf(b, "**%s**\n\n", section.Title)
		for _, change := range section.Changes {
			fmt.Fprintf(b, "- %s\n", change)
		}
		b.WriteString("\n")
	}
}

// finish normalises rendered output to end with exactly one newline.
func finish(s string) string {
	return strings.TrimRight(s, " \t\n") + "\n"
}

// templateRelease is the shape a release takes inside a custom template.
type templateRelease struct {
	Version    string
	IsReleased bool
	Sections   []Section
}

// templateData is the root object available to custom templates.
type templateData struct {
	Releases []templateRelease
}

// RenderTemplate renders releases through a user-supplied Go template
// file. Each release exposes Version, IsReleased and Sections.
func RenderTemplate(path string, releases []*history.Release) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	source, err := os.ReadFile(abs)
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", path, err)
	}
	tmpl, err := template.New(filepath.Base(abs)).Parse(string(source))
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", path, err)
	}

	data := templateData{Releases: make([]templateRelease, 0, len(releases))}
	for _, release := range releases {
		data.Releases = append(data.Releases, templateRelease{
			Version:    release.Version.String(),
			IsReleased: release.IsReleased,
			Sections:   Sections(release),
		})
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("rendering template %s: %w", path, err)
	}
	return finish(b.String()), nil
}
