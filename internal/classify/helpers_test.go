package classify

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/neerajdhurandher/autofill-engine/internal/dom"
	"github.com/neerajdhurandher/autofill-engine/internal/model"
)

// controlFrom parses a fragment of HTML and returns its first form control.
func controlFrom(t *testing.T, html string) *model.Control {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	controls := dom.FindControls(doc.Selection)
	require.NotEmpty(t, controls, "no controls in fixture")
	return controls[0]
}
