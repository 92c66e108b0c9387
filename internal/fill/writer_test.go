package fill

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neerajdhurandher/autofill-engine/internal/dom"
	"github.com/neerajdhurandher/autofill-engine/internal/model"
)

func controlFrom(t *testing.T, html string) *model.Control {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	controls := dom.FindControls(doc.Selection)
	require.NotEmpty(t, controls, "no controls in fixture")
	return controls[0]
}

func eventNames(sink *RecordingSink) []string {
	names := make([]string, len(sink.Events))
	for i, e := range sink.Events {
		names[i] = e.Name
	}
	return names
}

func TestWriteTextInput(t *testing.T) {
	sink := &RecordingSink{}
	w := NewWriter(sink)
	c := controlFrom(t, `<input type="text" name="city">`)

	out := w.Write(c, "Bengaluru")
	require.True(t, out.Success)
	assert.Equal(t, "Bengaluru", out.ActualValue)

	val, _ := c.Sel.Attr("value")
	assert.Equal(t, "Bengaluru", val)
	assert.Equal(t, StandardEvents, eventNames(sink))
}

func TestWriteTextarea(t *testing.T) {
	w := NewWriter(nil)
	c := controlFrom(t, `<textarea name="cover_letter"></textarea>`)

	out := w.Write(c, "Dear hiring team,")
	require.True(t, out.Success)
	assert.Equal(t, "Dear hiring team,", c.Sel.Text())
}

func TestWriteIsIdempotent(t *testing.T) {
	sink := &RecordingSink{}
	w := NewWriter(sink)
	c := controlFrom(t, `<input type="text" name="city">`)

	first := w.Write(c, "Pune")
	sink.Reset()
	second := w.Write(c, "Pune")

	assert.Equal(t, first.ActualValue, second.ActualValue)
	val, _ := c.Sel.Attr("value")
	assert.Equal(t, "Pune", val)
	assert.Equal(t, StandardEvents, eventNames(sink))
}

func TestWriteSelectTiers(t *testing.T) {
	const selectHTML = `
		<select name="country">
			<option value="IN">India</option>
			<option value="US">United States</option>
			<option value="gb">United Kingdom</option>
		</select>`

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"exact option value", "IN", "India"},
		{"exact visible text", "United States", "United States"},
		{"case-insensitive value", "GB", "United Kingdom"},
		{"case-insensitive text", "india", "India"},
		{"value contains option text", "United Kingdom of Great Britain", "United Kingdom"},
		{"option text contains value", "Kingdom", "United Kingdom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter(nil)
			c := controlFrom(t, selectHTML)

			out := w.Write(c, tt.value)
			require.True(t, out.Success, "reason: %s", out.Reason)
			assert.Equal(t, tt.want, out.ActualValue)

			selected := c.Sel.Find("option[selected]")
			require.Equal(t, 1, selected.Length())
			assert.Equal(t, tt.want, strings.TrimSpace(selected.Text()))
		})
	}
}

func TestWriteSelectExactValueBeatsLooserTiers(t *testing.T) {
	// "IN" is also a substring of "India" and "United Kingdom"; the exact
	// value tier must win before substring matching gets a chance.
	w := NewWriter(nil)
	c := controlFrom(t, `
		<select name="country">
			<option value="find">Find me</option>
			<option value="IN">India</option>
		</select>`)

	out := w.Write(c, "IN")
	require.True(t, out.Success)
	assert.Equal(t, "India", out.ActualValue)
}

func TestWriteSelectMissCarriesOptions(t *testing.T) {
	w := NewWriter(nil)
	c := controlFrom(t, `
		<select name="notice">
			<option value="15">15 days</option>
			<option value="30">30 days</option>
		</select>`)

	out := w.Write(c, "Immediately")
	require.False(t, out.Success)
	assert.Contains(t, out.Reason, "Immediately")
	assert.Equal(t, []string{"15 days", "30 days"}, out.Options)
}

func TestWriteSelectReplacesPriorSelection(t *testing.T) {
	w := NewWriter(nil)
	c := controlFrom(t, `
		<select name="state">
			<option value="KA" selected>Karnataka</option>
			<option value="MH">Maharashtra</option>
		</select>`)

	out := w.Write(c, "MH")
	require.True(t, out.Success)
	selected := c.Sel.Find("option[selected]")
	require.Equal(t, 1, selected.Length())
	assert.Equal(t, "Maharashtra", strings.TrimSpace(selected.Text()))
}

func TestWriteCheckboxCoercion(t *testing.T) {
	tests := []struct {
		value   string
		checked bool
	}{
		{"true", true},
		{"1", true},
		{"yes", true},
		{"on", true},
		{"checked", true},
		{" YES ", true},
		{"false", false},
		{"0", false},
		{"no", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run("value "+tt.value, func(t *testing.T) {
			w := NewWriter(nil)
			c := controlFrom(t, `<input type="checkbox" name="relocate">`)

			out := w.Write(c, tt.value)
			require.True(t, out.Success)
			_, has := c.Sel.Attr("checked")
			assert.Equal(t, tt.checked, has)
		})
	}
}

func TestWriteUnchecksOnFalsy(t *testing.T) {
	w := NewWriter(nil)
	c := controlFrom(t, `<input type="checkbox" name="relocate" checked>`)

	out := w.Write(c, "false")
	require.True(t, out.Success)
	_, has := c.Sel.Attr("checked")
	assert.False(t, has)
}

func TestWriteRejectsUnfillableControls(t *testing.T) {
	tests := []struct {
		name   string
		html   string
		reason string
	}{
		{"file input", `<input type="file" name="resume">`, "never auto-filled"},
		{"disabled", `<input type="text" name="city" disabled>`, "disabled"},
		{"readonly", `<input type="text" name="city" readonly>`, "read-only"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &RecordingSink{}
			w := NewWriter(sink)
			c := controlFrom(t, tt.html)

			out := w.Write(c, "anything")
			require.False(t, out.Success)
			assert.Contains(t, out.Reason, tt.reason)
			assert.Empty(t, sink.Events, "rejected writes must not dispatch events")
		})
	}
}

func TestWriteRichEventSequence(t *testing.T) {
	sink := &RecordingSink{}
	w := NewWriter(sink).WithSequence(RichEvents)
	c := controlFrom(t, `<input type="text" name="email">`)

	out := w.Write(c, "a@b.example")
	require.True(t, out.Success)
	assert.Equal(t, RichEvents, eventNames(sink))
}

type recordingShim struct {
	calls []string
}

func (s *recordingShim) PrepareNativeValue(_ *model.Control, value string) {
	s.calls = append(s.calls, value)
}

func TestWriteShimRunsBeforeInputEvent(t *testing.T) {
	sink := &RecordingSink{}
	shim := &recordingShim{}
	w := NewWriter(sink).WithShim(shim)
	c := controlFrom(t, `<input type="text" name="email">`)

	out := w.Write(c, "a@b.example")
	require.True(t, out.Success)
	assert.Equal(t, []string{"a@b.example"}, shim.calls)
	require.NotEmpty(t, sink.Events)
	assert.Equal(t, "input", sink.Events[0].Name)
}
