package fill

import (
	"strconv"

	"github.com/PuerkitoBio/goquery"

	"github.com/neerajdhurandher/autofill-engine/internal/model"
)

// Highlight markers are purely cosmetic: an outline class plus a
// confidence-percentage badge attribute the UI layer renders and removes
// after a few seconds.
const (
	HighlightClass = "autofill-highlight"
	ConfidenceAttr = "data-autofill-confidence"
)

// Highlight marks a successfully written control.
func Highlight(control *model.Control, confidence float64) {
	if control.Sel == nil || control.Sel.Length() == 0 {
		return
	}
	pct := int(confidence * 100)
	control.Sel.AddClass(HighlightClass)
	control.Sel.SetAttr(ConfidenceAttr, strconv.Itoa(pct)+"%")
}

// ClearHighlights removes every highlight artifact under root. It is safe
// to call after the tree has mutated; missing markers are simply skipped.
func ClearHighlights(root *goquery.Selection) {
	root.Find("." + HighlightClass).Each(func(_ int, sel *goquery.Selection) {
		sel.RemoveClass(HighlightClass)
		sel.RemoveAttr(ConfidenceAttr)
	})
}
