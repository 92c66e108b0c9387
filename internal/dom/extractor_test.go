package dom

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neerajdhurandher/autofill-engine/internal/model"
)

func parsePage(t *testing.T, html string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc.Selection
}

func TestFindControls_KindTagging(t *testing.T) {
	root := parsePage(t, `
		<form>
			<input type="text" name="a">
			<input name="b">
			<input type="email" name="c">
			<textarea name="d"></textarea>
			<select name="e"><option>x</option></select>
			<input type="checkbox" name="f">
			<input type="radio" name="g">
			<input type="file" name="h">
			<input type="hidden" name="skip1">
			<input type="submit" value="skip2">
			<button>skip3</button>
		</form>`)

	controls := FindControls(root)
	require.Len(t, controls, 8)

	kinds := make([]model.ControlKind, len(controls))
	for i, c := range controls {
		kinds[i] = c.Kind
	}
	assert.Equal(t, []model.ControlKind{
		model.KindText, model.KindText, model.KindText,
		model.KindTextarea, model.KindSelect,
		model.KindCheckbox, model.KindRadio, model.KindFile,
	}, kinds)
}

func TestFindControls_DocumentOrder(t *testing.T) {
	root := parsePage(t, `
		<div><input name="first"></div>
		<div><input name="second"></div>
		<div><input name="third"></div>`)

	controls := FindControls(root)
	require.Len(t, controls, 3)
	for i, c := range controls {
		assert.Equal(t, i, c.DocOrder)
	}
	assert.Equal(t, "first", controls[0].Attrs.Name)
	assert.Equal(t, "third", controls[2].Attrs.Name)
}

func TestExtractAttributes_MissingAttributesAreEmpty(t *testing.T) {
	root := parsePage(t, `<input>`)
	sel := root.Find("input")

	bag := ExtractAttributes(sel, root)
	assert.Empty(t, bag.Name)
	assert.Empty(t, bag.ID)
	assert.Empty(t, bag.Placeholder)
	assert.Empty(t, bag.LabelText)
}

func TestExtractAttributes_ExplicitLabel(t *testing.T) {
	root := parsePage(t, `
		<label for="em">Email Address</label>
		<input id="em" name="email">`)
	sel := root.Find("input")

	bag := ExtractAttributes(sel, root)
	assert.Equal(t, "Email Address", bag.LabelText)
}

func TestExtractAttributes_AncestorLabelStripsOwnValue(t *testing.T) {
	root := parsePage(t, `
		<label>Phone Number <input name="phone" value="555-1234"></label>`)
	sel := root.Find("input")

	bag := ExtractAttributes(sel, root)
	assert.Equal(t, "Phone Number", bag.LabelText)
	assert.NotContains(t, bag.LabelText, "555")
}

func TestExtractAttributes_PrecedingSiblingFallback(t *testing.T) {
	root := parsePage(t, `
		<div>
			<span>Current Company</span>
			<input name="xyz">
		</div>`)
	sel := root.Find("input")

	bag := ExtractAttributes(sel, root)
	assert.Equal(t, "Current Company", bag.LabelText)
}

func TestExtractAttributes_ExplicitLabelWinsOverSibling(t *testing.T) {
	root := parsePage(t, `
		<label for="x">From The Label</label>
		<div><span>From The Sibling</span><input id="x"></div>`)
	sel := root.Find("input")

	bag := ExtractAttributes(sel, root)
	assert.Equal(t, "From The Label", bag.LabelText)
}

func TestFingerprint(t *testing.T) {
	tests := []struct {
		name string
		bag  model.AttributeBag
		want string
	}{
		{
			name: "full tuple",
			bag:  model.AttributeBag{Name: "First_Name", ID: "fn", Class: "Field"},
			want: "first_name|fn|field",
		},
		{
			name: "partial tuple",
			bag:  model.AttributeBag{Name: "email"},
			want: "email||",
		},
		{
			name: "no identity",
			bag:  model.AttributeBag{Placeholder: "whatever"},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.bag.Fingerprint())
		})
	}
}
