package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/neerajdhurandher/autofill-engine/internal/engine"
	"github.com/neerajdhurandher/autofill-engine/internal/model"
)

// RenderDetection formats a detection pass for the terminal.
func RenderDetection(det *engine.Detection) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Detected fields"))
	b.WriteString("\n")

	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tCONFIDENCE\tMETHODS\tCARD\tNAME/ID")
	for _, f := range det.Fields {
		card := "-"
		if f.CardIndex > 0 {
			card = fmt.Sprintf("%d", f.CardIndex)
		}
		name := f.Control.Attrs.Name
		if name == "" {
			name = f.Control.Attrs.ID
		}
		fmt.Fprintf(tw, "%s\t%.0f%%\t%s\t%s\t%s\n",
			f.Category, f.Confidence*100, joinMethods(f.Methods), card, name)
	}
	_ = tw.Flush()

	b.WriteString("\n")
	b.WriteString(SubtleStyle.Render(fmt.Sprintf(
		"%d controls, %d classified, %d unknown, %d experience cards",
		len(det.Fields), det.ClassifiedCount(), det.UnknownCount(), len(det.Cards))))
	b.WriteString("\n")
	return b.String()
}

// RenderFillResult formats a fill pass for the terminal.
func RenderFillResult(res model.FillResult) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Fill results"))
	b.WriteString("\n")

	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tSTATUS\tVALUE\tNOTE")
	for _, r := range res.Results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Field.Category, styleStatus(r.Status), truncate(r.Value, 40), r.Reason)
	}
	_ = tw.Flush()

	b.WriteString("\n")
	summary := fmt.Sprintf("filled %d of %d fields", res.FilledCount, res.TotalFields)
	if res.Success {
		b.WriteString(SuccessStyle.Render("✓ " + summary))
	} else {
		msg := res.Message
		if msg == "" {
			msg = summary
		}
		b.WriteString(ErrorStyle.Render("✗ " + msg))
	}
	b.WriteString("\n")
	for _, e := range res.Errors {
		b.WriteString(ErrorStyle.Render("  error: " + e))
		b.WriteString("\n")
	}
	return b.String()
}

func styleStatus(s model.FillStatus) string {
	switch s {
	case model.StatusFilled:
		return SuccessStyle.Render(string(s))
	case model.StatusError, model.StatusRejected:
		return ErrorStyle.Render(string(s))
	case model.StatusNoData, model.StatusSkipped:
		return WarningStyle.Render(string(s))
	default:
		return string(s)
	}
}

// truncate shortens a value for table display, cutting on rune boundaries so
// multi-byte profile values never render as broken UTF-8.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

func joinMethods(methods []model.Method) string {
	if len(methods) == 0 {
		return "-"
	}
	parts := make([]string, len(methods))
	for i, m := range methods {
		parts[i] = string(m)
	}
	return strings.Join(parts, ",")
}
