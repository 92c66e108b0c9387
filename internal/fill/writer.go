package fill

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/neerajdhurandher/autofill-engine/internal/model"
)

// truthyTokens coerce a resolved value into a checkbox/radio state.
var truthyTokens = map[string]bool{
	"true":    true,
	"1":       true,
	"yes":     true,
	"on":      true,
	"checked": true,
}

// WriteOutcome reports what one write attempt did.
type WriteOutcome struct {
	ActualValue string
	Reason      string
	Options     []string
	Success     bool
}

// Writer applies resolved values to controls and emits the synthetic event
// sequence through its sink.
type Writer struct {
	sink     EventSink
	shim     CompatShim
	sequence []string
}

// NewWriter creates a writer dispatching the standard event sequence.
func NewWriter(sink EventSink) *Writer {
	return &Writer{sink: sink, sequence: StandardEvents}
}

// WithSequence overrides the dispatched event sequence.
func (w *Writer) WithSequence(sequence []string) *Writer {
	w.sequence = sequence
	return w
}

// WithShim attaches a framework-compatibility shim.
func (w *Writer) WithShim(shim CompatShim) *Writer {
	w.shim = shim
	return w
}

// Write applies value to the control. It declines read-only, disabled and
// file controls; file inputs are never auto-filled regardless of
// classification. Writing the same value twice yields the same final state
// and the same fixed event set.
func (w *Writer) Write(control *model.Control, value string) WriteOutcome {
	switch {
	case control.Sel == nil || control.Sel.Length() == 0:
		return WriteOutcome{Reason: "element no longer present"}
	case control.Kind == model.KindFile:
		return WriteOutcome{Reason: "file inputs are never auto-filled"}
	case control.Disabled():
		return WriteOutcome{Reason: "control is disabled"}
	case control.ReadOnly():
		return WriteOutcome{Reason: "control is read-only"}
	}

	var outcome WriteOutcome
	switch control.Kind {
	case model.KindSelect:
		outcome = w.writeSelect(control, value)
	case model.KindCheckbox, model.KindRadio:
		outcome = w.writeChecked(control, value)
	case model.KindTextarea:
		control.Sel.SetText(value)
		outcome = WriteOutcome{Success: true, ActualValue: value}
	case model.KindText:
		control.Sel.SetAttr("value", value)
		outcome = WriteOutcome{Success: true, ActualValue: value}
	case model.KindFile:
		// Unreachable; rejected above.
		return WriteOutcome{Reason: "file inputs are never auto-filled"}
	}

	if outcome.Success {
		w.dispatchEvents(control, outcome.ActualValue)
	}
	return outcome
}

// writeSelect matches value against the options in four tiers: exact value,
// exact visible text, case-insensitive, then substring in either direction.
// The first tier with a hit wins. A miss carries the available options for
// diagnostics.
func (w *Writer) writeSelect(control *model.Control, value string) WriteOutcome {
	type option struct {
		sel   *goquery.Selection
		value string
		text  string
	}
	var options []option
	control.Sel.Find("option").Each(func(_ int, sel *goquery.Selection) {
		val, ok := sel.Attr("value")
		text := strings.TrimSpace(sel.Text())
		if !ok {
			val = text
		}
		options = append(options, option{sel: sel, value: val, text: text})
	})

	match := -1
	lower := strings.ToLower(value)
	tiers := []func(o option) bool{
		func(o option) bool { return o.value == value },
		func(o option) bool { return o.text == value },
		func(o option) bool {
			return strings.EqualFold(o.value, value) || strings.EqualFold(o.text, value)
		},
		func(o option) bool {
			t := strings.ToLower(o.text)
			return t != "" && (strings.Contains(t, lower) || strings.Contains(lower, t))
		},
	}
	for _, tier := range tiers {
		for i, o := range options {
			if tier(o) {
				match = i
				break
			}
		}
		if match >= 0 {
			break
		}
	}

	if match < 0 {
		available := make([]string, len(options))
		for i, o := range options {
			available[i] = o.text
		}
		return WriteOutcome{
			Reason:  fmt.Sprintf("no option matches %q", value),
			Options: available,
		}
	}

	for i, o := range options {
		if i == match {
			o.sel.SetAttr("selected", "selected")
		} else {
			o.sel.RemoveAttr("selected")
		}
	}
	return WriteOutcome{Success: true, ActualValue: options[match].text}
}

func (w *Writer) writeChecked(control *model.Control, value string) WriteOutcome {
	checked := truthyTokens[strings.ToLower(strings.TrimSpace(value))]
	if checked {
		control.Sel.SetAttr("checked", "checked")
	} else {
		control.Sel.RemoveAttr("checked")
	}
	return WriteOutcome{Success: true, ActualValue: fmt.Sprintf("%t", checked)}
}

func (w *Writer) dispatchEvents(control *model.Control, value string) {
	if w.sink == nil {
		return
	}
	for _, event := range w.sequence {
		if event == "input" && w.shim != nil {
			w.shim.PrepareNativeValue(control, value)
		}
		w.sink.Dispatch(control, event)
	}
}
