package classify

import (
	"context"
	"log/slog"

	"github.com/PuerkitoBio/goquery"

	"github.com/neerajdhurandher/autofill-engine/internal/dom"
	"github.com/neerajdhurandher/autofill-engine/internal/model"
	"github.com/neerajdhurandher/autofill-engine/internal/sites"
	"github.com/neerajdhurandher/autofill-engine/internal/taxonomy"
)

// Detector runs the strategy set over controls and aggregates their votes.
type Detector struct {
	taxonomy   *taxonomy.Taxonomy
	state      *State
	strategies []Strategy
	floor      float64
}

// NewDetector creates a detector with the default strategy set.
func NewDetector(tax *taxonomy.Taxonomy, state *State, aggregationFloor, fuzzyFloor float64) *Detector {
	return &Detector{
		taxonomy:   tax,
		state:      state,
		strategies: DefaultStrategies(fuzzyFloor),
		floor:      aggregationFloor,
	}
}

// Classify runs every strategy over one control and merges the votes. A
// control no category claims comes back tagged unknown with confidence zero;
// a winning classification is recorded in the learned-pattern cache.
func (d *Detector) Classify(ctx context.Context, control *model.Control, site sites.Context) *model.DetectedField {
	in := Input{
		Control:  control,
		Taxonomy: d.taxonomy,
		Site:     site,
		Learned:  d.state.Lookup,
	}

	var votes []model.Vote
	for _, s := range d.strategies {
		votes = append(votes, s.Votes(in)...)
	}

	field := Aggregate(control, votes, d.floor)
	if field == nil {
		return &model.DetectedField{
			Control:  control,
			Category: model.CategoryUnknown,
		}
	}

	d.state.Record(ctx, control.Attrs.Fingerprint(), field.Category, field.Confidence, site.ID)
	return field
}

// DetectAll scans every eligible control under root in document order and
// classifies each one. Processing is a sequential loop: one control is fully
// classified before the next, which keeps learned-cache updates and
// ambiguous tie-breaks deterministic.
func (d *Detector) DetectAll(ctx context.Context, root *goquery.Selection, site sites.Context) []*model.DetectedField {
	controls := dom.FindControls(root)
	fields := make([]*model.DetectedField, 0, len(controls))
	for _, c := range controls {
		select {
		case <-ctx.Done():
			return fields
		default:
		}
		fields = append(fields, d.Classify(ctx, c, site))
	}

	slog.Debug("classification pass complete",
		"controls", len(controls),
		"site", site.ID,
		"cached_patterns", d.state.Size())
	return fields
}
