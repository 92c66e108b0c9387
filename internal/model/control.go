package model

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ControlKind tags a form control with its concrete input type so that the
// writer can dispatch exhaustively instead of re-inspecting tag names.
type ControlKind string

// Control kind constants.
const (
	KindText     ControlKind = "text"
	KindTextarea ControlKind = "textarea"
	KindSelect   ControlKind = "select"
	KindCheckbox ControlKind = "checkbox"
	KindRadio    ControlKind = "radio"
	KindFile     ControlKind = "file"
)

// AttributeBag is the normalized attribute snapshot of one form control.
// Absent attributes are empty strings, never errors.
type AttributeBag struct {
	Name        string
	ID          string
	Class       string
	Placeholder string
	AriaLabel   string
	Title       string
	Type        string
	LabelText   string
}

// Values returns the attribute values in a fixed order, keyed by attribute
// name. Label text is not included; strategies that want it read it directly.
func (b AttributeBag) Values() map[string]string {
	return map[string]string{
		"name":        b.Name,
		"id":          b.ID,
		"class":       b.Class,
		"placeholder": b.Placeholder,
		"aria-label":  b.AriaLabel,
		"title":       b.Title,
		"type":        b.Type,
	}
}

// SearchText concatenates every attribute plus the label text, lowercased,
// for phrase-level matching.
func (b AttributeBag) SearchText() string {
	parts := []string{b.Name, b.ID, b.Class, b.Placeholder, b.AriaLabel, b.Title, b.Type, b.LabelText}
	return strings.ToLower(strings.Join(parts, " "))
}

// Fingerprint derives the structural cache key for a control: the normalized
// name/id/class tuple. Controls with no distinguishing attributes produce an
// empty fingerprint and are never cached.
func (b AttributeBag) Fingerprint() string {
	name := strings.ToLower(strings.TrimSpace(b.Name))
	id := strings.ToLower(strings.TrimSpace(b.ID))
	class := strings.ToLower(strings.TrimSpace(b.Class))
	if name == "" && id == "" && class == "" {
		return ""
	}
	return name + "|" + id + "|" + class
}

// Control is one interactive form element located during a detection pass.
// The selection is a non-owning reference into the parsed document.
type Control struct {
	Sel      *goquery.Selection
	Kind     ControlKind
	Attrs    AttributeBag
	DocOrder int
}

// Disabled reports whether the control carries the disabled attribute.
func (c *Control) Disabled() bool {
	_, ok := c.Sel.Attr("disabled")
	return ok
}

// ReadOnly reports whether the control carries the readonly attribute.
func (c *Control) ReadOnly() bool {
	_, ok := c.Sel.Attr("readonly")
	return ok
}
