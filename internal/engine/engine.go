// Package engine wires classification, experience-card detection, value
// resolution and field writing into the two boundary operations the caller
// sees: Detect and Fill.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/PuerkitoBio/goquery"

	"github.com/neerajdhurandher/autofill-engine/internal/classify"
	"github.com/neerajdhurandher/autofill-engine/internal/common"
	"github.com/neerajdhurandher/autofill-engine/internal/experience"
	"github.com/neerajdhurandher/autofill-engine/internal/fill"
	"github.com/neerajdhurandher/autofill-engine/internal/model"
	"github.com/neerajdhurandher/autofill-engine/internal/resolve"
	"github.com/neerajdhurandher/autofill-engine/internal/sites"
	"github.com/neerajdhurandher/autofill-engine/internal/taxonomy"
)

// Engine orchestrates one detect/fill cycle over a parsed page.
type Engine struct {
	detector *classify.Detector
	writer   *fill.Writer
	state    *classify.State
	cfg      Config
}

// New creates an engine. store may be nil for a purely in-memory
// learned-pattern cache; sink may be nil when no event replay is needed.
func New(tax *taxonomy.Taxonomy, store classify.LearnedStore, sink fill.EventSink, cfg Config) *Engine {
	state := classify.NewState(cfg.CacheCap, store)
	writer := fill.NewWriter(sink)
	if cfg.RichEvents {
		writer.WithSequence(fill.RichEvents)
	}
	return &Engine{
		detector: classify.NewDetector(tax, state, cfg.AggregationFloor, cfg.FuzzyFloor),
		writer:   writer,
		state:    state,
		cfg:      cfg,
	}
}

// Hydrate loads persisted learned patterns into the classifier state.
func (e *Engine) Hydrate(ctx context.Context) error {
	return e.state.Hydrate(ctx)
}

// Writer exposes the configured field writer, for callers that attach a
// compatibility shim.
func (e *Engine) Writer() *fill.Writer {
	return e.writer
}

// Detection is the durable result of one detection pass. It is wholesale
// replaced on the next pass, never merged.
type Detection struct {
	Fields []*model.DetectedField
	Cards  []*model.ExperienceCard
	Site   sites.Context
}

// ClassifiedCount counts the fields that resolved to a real category.
func (d *Detection) ClassifiedCount() int {
	n := 0
	for _, f := range d.Fields {
		if f.Classified() {
			n++
		}
	}
	return n
}

// UnknownCount counts the fields left unclassified.
func (d *Detection) UnknownCount() int {
	return len(d.Fields) - d.ClassifiedCount()
}

// MethodCounts tallies how many classified fields each method contributed
// to.
func (d *Detection) MethodCounts() map[model.Method]int {
	counts := make(map[model.Method]int)
	for _, f := range d.Fields {
		for _, m := range f.Methods {
			counts[m]++
		}
	}
	return counts
}

// Detect scans every eligible control under root, classifies each one, and
// locates experience cards. Controls are processed in document order; for a
// fixed document, taxonomy and cache the result is identical on repeated
// runs.
func (e *Engine) Detect(ctx context.Context, root *goquery.Selection, host string) (*Detection, error) {
	if err := common.ValidateContext(ctx); err != nil {
		return nil, err
	}

	site := sites.Resolve(host)
	fields := e.detector.DetectAll(ctx, root, site)
	cards := experience.DetectCards(root, fields)

	det := &Detection{Fields: fields, Cards: cards, Site: site}
	slog.Info("detection pass complete",
		"controls", len(fields),
		"classified", det.ClassifiedCount(),
		"unknown", det.UnknownCount(),
		"cards", len(cards),
		"site", site.ID)
	return det, nil
}

// Fill resolves and writes a value for every detected field, in
// confidence-then-priority order. Per-field failures are collected, never
// raised: the result is always structured. Only total absence of usable
// input (no fields, no profile) yields an overall failure.
func (e *Engine) Fill(ctx context.Context, det *Detection, profile model.Profile) model.FillResult {
	return e.FillWithProgress(ctx, det, profile, nil)
}

// FillWithProgress is Fill with a per-field callback, invoked after each
// field's outcome is decided. onField may be nil.
func (e *Engine) FillWithProgress(ctx context.Context, det *Detection, profile model.Profile, onField func(model.FieldOutcome)) model.FillResult {
	result := model.FillResult{TotalFields: len(det.Fields)}

	if profile.Empty() {
		result.Message = common.ErrProfileUnavailable.Error()
		return result
	}
	if len(det.Fields) == 0 {
		result.Message = common.ErrNoFieldsDetected.Error()
		return result
	}

	ordered := make([]*model.DetectedField, len(det.Fields))
	copy(ordered, det.Fields)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Confidence != ordered[j].Confidence {
			return ordered[i].Confidence > ordered[j].Confidence
		}
		if ordered[i].Priority != ordered[j].Priority {
			return ordered[i].Priority > ordered[j].Priority
		}
		return ordered[i].Control.DocOrder < ordered[j].Control.DocOrder
	})

	for _, field := range ordered {
		select {
		case <-ctx.Done():
			result.Errors = append(result.Errors, ctx.Err().Error())
			result.Success = result.FilledCount > 0
			return result
		default:
		}

		outcome := e.fillOne(field, profile)
		result.Results = append(result.Results, outcome)
		if onField != nil {
			onField(outcome)
		}
		switch outcome.Status {
		case model.StatusFilled:
			result.FilledCount++
		case model.StatusError:
			result.Errors = append(result.Errors, outcome.Reason)
		}
	}

	result.Success = result.FilledCount > 0
	if !result.Success {
		result.Message = "no fields could be filled"
	}
	return result
}

// fillOne handles a single field. Unexpected panics during DOM manipulation
// are converted into an error outcome so the batch continues.
func (e *Engine) fillOne(field *model.DetectedField, profile model.Profile) (outcome model.FieldOutcome) {
	outcome = model.FieldOutcome{Field: field, Confidence: field.Confidence}

	defer func() {
		if r := recover(); r != nil {
			outcome.Status = model.StatusError
			outcome.Reason = fmt.Sprintf("write failed for %s: %v", field.Category, r)
		}
	}()

	switch {
	case !field.Classified():
		outcome.Status = model.StatusSkipped
		outcome.Reason = "unclassified control"
		return outcome
	case field.Control.Sel == nil || field.Control.Sel.Length() == 0:
		outcome.Status = model.StatusSkipped
		outcome.Reason = "element no longer present"
		return outcome
	case field.Control.Kind == model.KindFile:
		// Rejected before resolution: a file input is never auto-filled,
		// whether or not the profile carries a document for it.
		outcome.Status = model.StatusRejected
		outcome.Reason = "file inputs are never auto-filled"
		return outcome
	case field.Confidence < e.cfg.FillFloor:
		outcome.Status = model.StatusSkipped
		outcome.Reason = fmt.Sprintf("confidence %.2f below safety floor", field.Confidence)
		return outcome
	}

	value, ok := resolve.ResolveField(field, profile)
	if !ok {
		outcome.Status = model.StatusNoData
		outcome.Reason = "no matching profile data"
		return outcome
	}

	wr := e.writer.Write(field.Control, value)
	if !wr.Success {
		outcome.Status = model.StatusRejected
		outcome.Reason = wr.Reason
		if len(wr.Options) > 0 {
			outcome.Reason = fmt.Sprintf("%s (options: %v)", wr.Reason, wr.Options)
		}
		return outcome
	}

	fill.Highlight(field.Control, field.Confidence)
	outcome.Status = model.StatusFilled
	outcome.Value = wr.ActualValue
	return outcome
}
