// Package conventional parses Conventional Commit subject lines into
// typed change descriptors. Parsing never fails: anything that does not
// match the grammar, or uses an unrecognised type, degrades to an unknown
// message carrying the raw line.
package conventional

import (
	"regexp"
	"strings"
)

// Type classifies a commit message. Unknown is the fallback for messages
// outside the recognised set.
type Type string

const (
	TypeCI      Type = "ci"
	TypeDocs    Type = "docs"
	TypeFeature Type = "feat"
	TypeFix     Type = "fix"
	TypeUnknown Type = "unknown"
)

// Section identifies the release-notes section a change belongs to.
type Section string

const (
	SectionIgnore  Section = ""
	SectionChanges Section = "Changes"
	SectionFixes   Section = "Fixes"
)

// Section returns the release-notes section for the type. CI, docs and
// unknown changes do not appear in notes.
func (t Type) Section() Section {
	switch t {
	case TypeFeature:
		return SectionChanges
	case TypeFix:
		return SectionFixes
	default:
		return SectionIgnore
	}
}

// Message is a parsed commit subject line.
type Message struct {
	Type Type

	// Scope is the parenthesized commit-message scope, informational only.
	// It is unrelated to the release-scope prefix used in version tags.
	Scope string

	// Breaking is set when a single "!" immediately precedes the colon.
	Breaking bool

	Description string
}

// String returns the message description.
func (m Message) String() string {
	return m.Description
}

// grammar: type(scope)!: description
var messagePattern = regexp.MustCompile(`^(.+?)(?:\((.+?)\))?(!)?:(.+)$`)

// ParseMessage parses one commit subject line. Lines that do not match the
// grammar, or whose type token is not a recognised Type, come back as
// TypeUnknown with the trimmed line as the description.
func ParseMessage(line string) Message {
	if m := messagePattern.FindStringSubmatch(line); m != nil {
		if t, ok := knownType(m[1]); ok {
			return Message{
				Type:        t,
				Scope:       m[2],
				Breaking:    m[3] == "!",
				Description: strings.TrimSpace(m[4]),
			}
		}
	}
	return Message{
		Type:        TypeUnknown,
		Description: strings.TrimSpace(line),
	}
}

func knownType(token string) (Type, bool) {
	switch Type(token) {
	case TypeCI, TypeDocs, TypeFeature, TypeFix:
		return Type(token), true
	}
	return TypeUnknown, false
}
