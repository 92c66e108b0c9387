// Package dom locates form controls in a parsed HTML document and extracts
// normalized attribute bags from them.
package dom

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/neerajdhurandher/autofill-engine/internal/model"
)

// nonFillableTypes are input types that are never candidates for detection.
var nonFillableTypes = map[string]bool{
	"hidden": true,
	"submit": true,
	"button": true,
	"reset":  true,
	"image":  true,
}

// FindControls returns every eligible form control under root in document
// order. DocOrder indexes are assigned sequentially; they determine the
// deterministic processing order later stages rely on.
func FindControls(root *goquery.Selection) []*model.Control {
	var controls []*model.Control
	order := 0
	root.Find("input, select, textarea").Each(func(_ int, sel *goquery.Selection) {
		kind, ok := controlKind(sel)
		if !ok {
			return
		}
		controls = append(controls, &model.Control{
			Sel:      sel,
			Kind:     kind,
			Attrs:    ExtractAttributes(sel, root),
			DocOrder: order,
		})
		order++
	})
	return controls
}

// controlKind tags the concrete input type once, so the writer can dispatch
// exhaustively instead of re-checking tag names.
func controlKind(sel *goquery.Selection) (model.ControlKind, bool) {
	switch goquery.NodeName(sel) {
	case "select":
		return model.KindSelect, true
	case "textarea":
		return model.KindTextarea, true
	case "input":
		typ, _ := sel.Attr("type")
		switch typ {
		case "checkbox":
			return model.KindCheckbox, true
		case "radio":
			return model.KindRadio, true
		case "file":
			return model.KindFile, true
		default:
			if nonFillableTypes[typ] {
				return "", false
			}
			return model.KindText, true
		}
	default:
		return "", false
	}
}
