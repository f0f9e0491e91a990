package conventional

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMessage(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Message
	}{
		{
			name: "feature",
			line: "feat: New feature",
			want: Message{Type: TypeFeature, Description: "New feature"},
		},
		{
			name: "fix",
			line: "fix: Doesn't crash",
			want: Message{Type: TypeFix, Description: "Doesn't crash"},
		},
		{
			name: "ci",
			line: "ci: Speed up builds",
			want: Message{Type: TypeCI, Description: "Speed up builds"},
		},
		{
			name: "docs",
			line: "docs: Update README",
			want: Message{Type: TypeDocs, Description: "Update README"},
		},
		{
			name: "scoped feature",
			line: "feat(cheese): feature",
			want: Message{Type: TypeFeature, Scope: "cheese", Description: "feature"},
		},
		{
			name: "breaking feature",
			line: "feat!: Breaking feature",
			want: Message{Type: TypeFeature, Breaking: true, Description: "Breaking feature"},
		},
		{
			name: "breaking fix",
			line: "fix!: Breaking fix",
			want: Message{Type: TypeFix, Breaking: true, Description: "Breaking fix"},
		},
		{
			name: "breaking scoped",
			line: "feat(macOS)!: Breaking scoped feature",
			want: Message{Type: TypeFeature, Scope: "macOS", Breaking: true, Description: "Breaking scoped feature"},
		},
		{
			name: "description whitespace trimmed",
			line: "feat:    padded   ",
			want: Message{Type: TypeFeature, Description: "padded"},
		},
		{
			name: "no colon degrades to unknown",
			line: "initial commit",
			want: Message{Type: TypeUnknown, Description: "initial commit"},
		},
		{
			name: "unrecognised type degrades to unknown",
			line: "wibble: something",
			want: Message{Type: TypeUnknown, Description: "wibble: something"},
		},
		{
			name: "unknown breaking type keeps raw line and no breaking flag",
			line: "wibble!: something",
			want: Message{Type: TypeUnknown, Description: "wibble!: something"},
		},
		{
			name: "empty line",
			line: "",
			want: Message{Type: TypeUnknown, Description: ""},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseMessage(tt.line))
		})
	}
}

func TestTypeSection(t *testing.T) {
	assert.Equal(t, SectionChanges, TypeFeature.Section())
	assert.Equal(t, SectionFixes, TypeFix.Section())
	assert.Equal(t, SectionIgnore, TypeCI.Section())
	assert.Equal(t, SectionIgnore, TypeDocs.Section())
	assert.Equal(t, SectionIgnore, TypeUnknown.Section())
}
