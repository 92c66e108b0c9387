package experience

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neerajdhurandher/autofill-engine/internal/dom"
	"github.com/neerajdhurandher/autofill-engine/internal/model"
)

// parsePage returns the document root plus one unclassified DetectedField per
// form control, mirroring what the classifier hands to card detection.
func parsePage(t *testing.T, page string) (*goquery.Selection, []*model.DetectedField) {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)

	var fields []*model.DetectedField
	for _, c := range dom.FindControls(doc.Selection) {
		fields = append(fields, &model.DetectedField{
			Control:  c,
			Category: model.CategoryUnknown,
		})
	}
	return doc.Selection, fields
}

func TestDetectCardsStructural(t *testing.T) {
	root, fields := parsePage(t, `
		<div class="experience-section">
			<div class="experience-entry">
				<input type="text" name="job_title">
				<input type="text" name="company">
				<input type="date" name="start_date">
			</div>
			<div class="experience-entry">
				<input type="text" name="job_title">
				<input type="text" name="company">
				<input type="date" name="end_date">
			</div>
		</div>`)

	cards := DetectCards(root, fields)
	require.Len(t, cards, 2)

	assert.Equal(t, 1, cards[0].Index)
	assert.Equal(t, 2, cards[1].Index)
	assert.Equal(t, 3, cards[0].FilledSlots())
	assert.Equal(t, 45, cards[0].Confidence)

	require.NotNil(t, cards[0].Fields[model.SlotJobTitle])
	require.NotNil(t, cards[0].Fields[model.SlotStartDate])
	require.NotNil(t, cards[1].Fields[model.SlotEndDate])
}

func TestDetectCardsOverridesSlotFields(t *testing.T) {
	// Slot assignment wins over the general classification pass: the slot's
	// category replaces whatever the field carried, the card index is set,
	// and weak confidence is lifted to the card's own score.
	root, fields := parsePage(t, `
		<div id="work-experience">
			<div class="experience-entry">
				<input type="text" name="job_title">
				<input type="text" name="company">
				<input type="date" name="start_date">
			</div>
			<div class="experience-entry">
				<input type="text" name="job_title">
				<input type="text" name="company">
				<input type="date" name="start_date">
			</div>
		</div>`)

	cards := DetectCards(root, fields)
	require.Len(t, cards, 2)

	for _, card := range cards {
		for _, slot := range model.ExperienceSlots {
			f := card.Fields[slot]
			if f == nil {
				continue
			}
			assert.Equal(t, model.SlotCategory(slot), f.Category)
			assert.Equal(t, card.Index, f.CardIndex)
			assert.InDelta(t, float64(card.Confidence)/100, f.Confidence, 1e-9)
		}
	}
}

func TestDetectCardsContainerCoversEveryField(t *testing.T) {
	// Each card entry's class matches the first container selector and holds
	// enough controls to clear the minimum on its own, while the wrapper is
	// only reachable through a later selector. Discovery must still settle
	// on the wrapper covering all cards, not the first entry.
	root, fields := parsePage(t, `
		<div id="job-history-block">
			<div class="experience-entry">
				<input type="text" name="job_title">
				<input type="text" name="company">
				<input type="date" name="start_date">
			</div>
			<div class="experience-entry">
				<input type="text" name="job_title">
				<input type="text" name="company">
				<input type="date" name="start_date">
			</div>
		</div>`)

	cards := DetectCards(root, fields)
	require.Len(t, cards, 2)
	assert.Equal(t, 3, cards[0].FilledSlots())
	assert.Equal(t, 3, cards[1].FilledSlots())
}

func TestDetectCardsNumericSuffixGrouping(t *testing.T) {
	root, fields := parsePage(t, `
		<div id="experience-block">
			<input type="text" name="jobTitle_1">
			<input type="text" name="company_1">
			<input type="date" name="start_date_1">
			<input type="text" name="jobTitle_2">
			<input type="text" name="company_2">
			<input type="date" name="start_date_2">
		</div>`)

	cards := DetectCards(root, fields)
	require.Len(t, cards, 2)

	first := cards[0].Fields[model.SlotJobTitle]
	require.NotNil(t, first)
	assert.Equal(t, "jobTitle_1", first.Control.Attrs.Name)

	second := cards[1].Fields[model.SlotJobTitle]
	require.NotNil(t, second)
	assert.Equal(t, "jobTitle_2", second.Control.Attrs.Name)
}

func TestDetectCardsWholeContainerFallback(t *testing.T) {
	root, fields := parsePage(t, `
		<div class="employment-details">
			<input type="text" name="job_title">
			<input type="text" name="employer">
			<textarea name="job_description"></textarea>
		</div>`)

	cards := DetectCards(root, fields)
	require.Len(t, cards, 1)
	assert.Equal(t, 3, cards[0].FilledSlots())
	require.NotNil(t, cards[0].Fields[model.SlotCompany])
	require.NotNil(t, cards[0].Fields[model.SlotJobDescription])
}

func TestDetectCardsDropsSparseCards(t *testing.T) {
	// A segment with only one recognizable slot is noise and is dropped;
	// the survivors are renumbered contiguously from 1.
	root, fields := parsePage(t, `
		<div class="experience-section">
			<div class="experience-entry">
				<input type="text" name="job_title">
				<input type="text" name="company">
			</div>
			<div class="experience-entry">
				<input type="text" name="company">
			</div>
		</div>`)

	cards := DetectCards(root, fields)
	require.Len(t, cards, 1)
	assert.Equal(t, 1, cards[0].Index)
	assert.Equal(t, 2, cards[0].FilledSlots())
}

func TestDetectCardsRequiresTwoExperienceFields(t *testing.T) {
	root, fields := parsePage(t, `
		<form>
			<input type="text" name="first_name">
			<input type="text" name="job_title">
		</form>`)

	assert.Nil(t, DetectCards(root, fields))
}

func TestClassifySlotDateAmbiguity(t *testing.T) {
	tests := []struct {
		name string
		html string
		want model.ExperienceSlot
	}{
		{
			name: "explicit end marker",
			html: `<input type="date" name="end_date">`,
			want: model.SlotEndDate,
		},
		{
			name: "until marker",
			html: `<input type="month" name="employed_until">`,
			want: model.SlotEndDate,
		},
		{
			name: "ambiguous date defaults to start",
			html: `<input type="date" name="employment_date">`,
			want: model.SlotStartDate,
		},
		{
			name: "explicit start",
			html: `<input type="date" name="start_date">`,
			want: model.SlotStartDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := goquery.NewDocumentFromReader(strings.NewReader(tt.html))
			require.NoError(t, err)
			controls := dom.FindControls(doc.Selection)
			require.Len(t, controls, 1)

			slot, ok := classifySlot(controls[0])
			require.True(t, ok)
			assert.Equal(t, tt.want, slot)
		})
	}
}

func TestClassifySlotCheckbox(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<input type="checkbox" name="currently_working">`))
	require.NoError(t, err)
	controls := dom.FindControls(doc.Selection)
	require.Len(t, controls, 1)

	slot, ok := classifySlot(controls[0])
	require.True(t, ok)
	assert.Equal(t, model.SlotCurrentlyWorking, slot)
}
