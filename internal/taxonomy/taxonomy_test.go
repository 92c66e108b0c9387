package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neerajdhurandher/autofill-engine/internal/model"
)

func TestDefault_ClosedEnumeration(t *testing.T) {
	tax := Default()

	assert.GreaterOrEqual(t, tax.Len(), 25)

	seen := make(map[model.Category]bool)
	for _, entry := range tax.All() {
		assert.False(t, seen[entry.Category], "duplicate category %s", entry.Category)
		seen[entry.Category] = true

		assert.NotEmpty(t, entry.Keywords, "category %s has no keywords", entry.Category)
		assert.GreaterOrEqual(t, entry.Priority, 1)
		assert.LessOrEqual(t, entry.Priority, 12)
	}
}

func TestDefault_LookupAndPriority(t *testing.T) {
	tax := Default()

	entry := tax.Lookup(model.CategoryEmail)
	require.NotNil(t, entry)
	assert.Contains(t, entry.Keywords, "email")
	assert.Equal(t, entry.Priority, tax.Priority(model.CategoryEmail))

	assert.Nil(t, tax.Lookup(model.Category("nonexistent")))
	assert.Zero(t, tax.Priority(model.Category("nonexistent")))
}

func TestNew_RejectsInvalidTables(t *testing.T) {
	tests := []struct {
		name    string
		entries []FieldCategory
	}{
		{
			name: "duplicate category",
			entries: []FieldCategory{
				{Category: model.CategoryEmail, Keywords: []string{"email"}, Priority: 5},
				{Category: model.CategoryEmail, Keywords: []string{"mail"}, Priority: 5},
			},
		},
		{
			name: "priority too high",
			entries: []FieldCategory{
				{Category: model.CategoryEmail, Keywords: []string{"email"}, Priority: 13},
			},
		},
		{
			name: "priority too low",
			entries: []FieldCategory{
				{Category: model.CategoryEmail, Keywords: []string{"email"}, Priority: 0},
			},
		},
		{
			name: "reserved unknown identifier",
			entries: []FieldCategory{
				{Category: model.CategoryUnknown, Keywords: []string{"x"}, Priority: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.entries)
			assert.Error(t, err)
		})
	}
}

func TestDefault_ResumeHasFileSelectors(t *testing.T) {
	entry := Default().Lookup(model.CategoryResume)
	require.NotNil(t, entry)
	assert.Equal(t, 12, entry.Priority)
	assert.NotEmpty(t, entry.SiteSelectors["greenhouse"])
}
