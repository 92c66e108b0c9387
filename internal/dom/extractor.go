package dom

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/neerajdhurandher/autofill-engine/internal/model"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// ExtractAttributes builds the attribute bag for one control. Missing
// attributes become empty strings; extraction never fails. The root
// selection scopes explicit label[for] lookups.
func ExtractAttributes(sel *goquery.Selection, root *goquery.Selection) model.AttributeBag {
	attr := func(name string) string {
		v, _ := sel.Attr(name)
		return strings.TrimSpace(v)
	}
	return model.AttributeBag{
		Name:        attr("name"),
		ID:          attr("id"),
		Class:       attr("class"),
		Placeholder: attr("placeholder"),
		AriaLabel:   attr("aria-label"),
		Title:       attr("title"),
		Type:        attr("type"),
		LabelText:   labelText(sel, root),
	}
}

// labelText resolves the human-readable label for a control, in order:
// explicit for-linked label, ancestor label element, nearest preceding
// sibling with non-empty text.
func labelText(sel *goquery.Selection, root *goquery.Selection) string {
	if id, ok := sel.Attr("id"); ok && id != "" {
		label := root.Find(`label[for="` + id + `"]`).First()
		if text := collapse(label.Text()); text != "" {
			return text
		}
	}

	if wrapper := sel.Closest("label"); wrapper.Length() > 0 {
		// Strip the control's own current value so a prefilled input does
		// not echo into its label.
		text := wrapper.Text()
		if own, ok := sel.Attr("value"); ok && own != "" {
			text = strings.ReplaceAll(text, own, "")
		}
		if text = collapse(text); text != "" {
			return text
		}
	}

	for prev := sel.Prev(); prev.Length() > 0; prev = prev.Prev() {
		if text := collapse(prev.Text()); text != "" {
			return text
		}
	}
	return ""
}

// collapse trims and squeezes internal whitespace.
func collapse(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}
