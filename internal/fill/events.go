// Package fill writes resolved values into concrete form controls with
// type-appropriate matching and reports the synthetic DOM events a live
// embedding must replay so host-page frameworks observe the change.
package fill

import "github.com/neerajdhurandher/autofill-engine/internal/model"

// StandardEvents is the fixed event sequence dispatched after every write.
var StandardEvents = []string{"input", "change", "keyup", "blur"}

// RichEvents is the extended sequence for pages whose frameworks also listen
// for key and focus events.
var RichEvents = []string{"focus", "keydown", "keypress", "input", "keyup", "change", "blur"}

// DispatchedEvent records one synthetic event emitted for a control.
type DispatchedEvent struct {
	Control *model.Control
	Name    string
}

// EventSink receives the synthetic events in order. A live embedding
// forwards them to the page; tests and the CLI record them.
type EventSink interface {
	Dispatch(control *model.Control, event string)
}

// CompatShim is the framework-compatibility hook: frameworks that track
// values through an internal value tracker or fiber-marked properties need
// the native property setter invoked before the input event fires. The shim
// isolates that per-framework behavior from the matching logic.
type CompatShim interface {
	PrepareNativeValue(control *model.Control, value string)
}

// RecordingSink collects dispatched events in order.
type RecordingSink struct {
	Events []DispatchedEvent
}

// Dispatch implements EventSink.
func (s *RecordingSink) Dispatch(control *model.Control, event string) {
	s.Events = append(s.Events, DispatchedEvent{Control: control, Name: event})
}

// Reset drops all recorded events.
func (s *RecordingSink) Reset() {
	s.Events = nil
}
