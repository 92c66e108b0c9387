// Package experience locates repeated job-experience card structures in a
// form and classifies the controls inside each card into a fixed set of
// seven slots, so multiple job-history entries fill independently.
package experience

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/neerajdhurandher/autofill-engine/internal/model"
)

// containerSelectors are tried in order during container discovery. Each
// candidate must additionally contain at least three experience-family
// controls before it is accepted.
var containerSelectors = []string{
	"[class*='experience']", "[id*='experience']",
	"[class*='work-history']", "[id*='work-history']",
	"[class*='employment']", "[id*='employment']",
	"[class*='job-history']", "[id*='job-history']",
}

// cardSelectors segment a container into repeated card structures.
var cardSelectors = []string{
	".experience-entry", ".experience-item", ".job-entry", ".work-entry",
	".card", ".entry", ".item", "fieldset",
}

const minContainerControls = 3

// experienceFamily matches attributes that mark a control as belonging to
// the job-experience keyword family.
var experienceFamily = regexp.MustCompile(`(?i)(job|company|employer|work|position|title|role|designation|start|end|from|to|until|current|present|experience|responsibilit|duties|description)`)

// cardNumber extracts the trailing numeric suffix used by forms that name
// repeated fields jobTitle_1, company_1, jobTitle_2, ...
var cardNumber = regexp.MustCompile(`(\d+)\s*$`)

// DetectCards finds the experience container, segments it into cards, and
// assigns each card's controls to the seven fixed slots. Returned cards are
// renumbered 1..n so card i maps to the profile's experience entry i-1.
func DetectCards(root *goquery.Selection, fields []*model.DetectedField) []*model.ExperienceCard {
	expFields := experienceFields(fields)
	if len(expFields) < 2 {
		return nil
	}

	container := findContainer(root, expFields)
	if container == nil {
		return nil
	}

	cards := segment(container, expFields)

	kept := make([]*model.ExperienceCard, 0, len(cards))
	for _, card := range cards {
		if card.FilledSlots() < 2 {
			continue
		}
		card.Index = len(kept) + 1
		card.Score()
		for _, slot := range model.ExperienceSlots {
			f := card.Fields[slot]
			if f == nil {
				continue
			}
			f.CardIndex = card.Index
			f.Category = model.SlotCategory(slot)
			// Slot assignment is more specific than the general pass; lift
			// the confidence of weakly classified controls to the card's
			// own score so they clear the fill safety floor.
			if cardConf := float64(card.Confidence) / 100; f.Confidence < cardConf {
				f.Confidence = cardConf
			}
		}
		kept = append(kept, card)
	}
	return kept
}

// experienceFields filters the detected fields down to those whose
// attributes match the experience keyword family.
func experienceFields(fields []*model.DetectedField) []*model.DetectedField {
	var out []*model.DetectedField
	for _, f := range fields {
		if experienceFamily.MatchString(f.Control.Attrs.SearchText()) {
			out = append(out, f)
		}
	}
	return out
}

// findContainer picks the experience container: the first candidate element
// holding enough experience-family controls, falling back to the shallowest
// ancestor covering the largest subset of them.
func findContainer(root *goquery.Selection, expFields []*model.DetectedField) *goquery.Selection {
	for _, selector := range containerSelectors {
		var found *goquery.Selection
		root.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			if countContained(sel, expFields) >= minContainerControls {
				found = sel
				return false
			}
			return true
		})
		if found != nil {
			return found
		}
	}
	return commonAncestor(expFields)
}

// countContained scores a container candidate. A candidate must cover every
// experience field: a single card entry whose class happens to match a
// container selector holds only its own slice of the controls, and locking
// onto it would drop the sibling cards. Partial coverage counts as zero.
func countContained(sel *goquery.Selection, fields []*model.DetectedField) int {
	n := len(fieldsWithin(sel, fields))
	if n < len(fields) {
		return 0
	}
	return n
}

// commonAncestor finds the deepest node containing the most experience
// controls, preferring coverage over depth.
func commonAncestor(expFields []*model.DetectedField) *goquery.Selection {
	counts := make(map[*html.Node]int)
	depths := make(map[*html.Node]int)
	for _, f := range expFields {
		if len(f.Control.Sel.Nodes) == 0 {
			continue
		}
		depth := 0
		for n := f.Control.Sel.Nodes[0].Parent; n != nil; n = n.Parent {
			counts[n]++
			if _, seen := depths[n]; !seen {
				depths[n] = depth
			}
			depth++
		}
	}

	var best *html.Node
	bestCount, bestDepth := 0, -1
	for n, count := range counts {
		if n.Type != html.ElementNode {
			continue
		}
		// Higher coverage wins; at equal coverage prefer the deeper
		// (tighter) node, which has the smaller recorded distance.
		d := depths[n]
		if count > bestCount || (count == bestCount && (bestDepth == -1 || d < bestDepth)) {
			best = n
			bestCount = count
			bestDepth = d
		}
	}
	if best == nil || bestCount < 2 {
		return nil
	}
	return goquery.NewDocumentFromNode(best).Selection
}

// segment splits the container into cards: structural card selectors first,
// then numeric-suffix grouping, then the whole container as a single card.
func segment(container *goquery.Selection, expFields []*model.DetectedField) []*model.ExperienceCard {
	contained := fieldsWithin(container, expFields)
	if len(contained) == 0 {
		return nil
	}

	for _, selector := range cardSelectors {
		matches := container.Find(selector)
		if matches.Length() < 1 {
			continue
		}
		var cards []*model.ExperienceCard
		matches.Each(func(_ int, sel *goquery.Selection) {
			inCard := fieldsWithin(sel, contained)
			if len(inCard) == 0 {
				return
			}
			card := model.NewExperienceCard(len(cards)+1, sel)
			assignSlots(card, inCard)
			cards = append(cards, card)
		})
		if len(cards) > 0 {
			return cards
		}
	}

	if cards := segmentByNumber(container, contained); len(cards) > 0 {
		return cards
	}

	card := model.NewExperienceCard(1, container)
	assignSlots(card, contained)
	return []*model.ExperienceCard{card}
}

// segmentByNumber groups controls by a shared numeric suffix in their
// name/id (jobTitle_1, company_1 -> card 1).
func segmentByNumber(container *goquery.Selection, fields []*model.DetectedField) []*model.ExperienceCard {
	groups := make(map[int][]*model.DetectedField)
	var numbers []int
	for _, f := range fields {
		n, ok := suffixNumber(f.Control.Attrs)
		if !ok {
			continue
		}
		if _, seen := groups[n]; !seen {
			numbers = append(numbers, n)
		}
		groups[n] = append(groups[n], f)
	}
	if len(numbers) < 2 {
		return nil
	}
	sort.Ints(numbers)

	cards := make([]*model.ExperienceCard, 0, len(numbers))
	for i, n := range numbers {
		card := model.NewExperienceCard(i+1, container)
		assignSlots(card, groups[n])
		cards = append(cards, card)
	}
	return cards
}

func suffixNumber(attrs model.AttributeBag) (int, bool) {
	for _, v := range []string{attrs.Name, attrs.ID} {
		if m := cardNumber.FindStringSubmatch(v); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				return n, true
			}
		}
	}
	return 0, false
}

// fieldsWithin returns the fields whose control sits under sel, in document
// order.
func fieldsWithin(sel *goquery.Selection, fields []*model.DetectedField) []*model.DetectedField {
	if len(sel.Nodes) == 0 {
		return nil
	}
	root := sel.Nodes[0]
	var out []*model.DetectedField
	for _, f := range fields {
		if len(f.Control.Sel.Nodes) == 0 {
			continue
		}
		for n := f.Control.Sel.Nodes[0]; n != nil; n = n.Parent {
			if n == root {
				out = append(out, f)
				break
			}
		}
	}
	return out
}

// assignSlots classifies a card's controls into the seven fixed slots by
// keyword matching. The first match per slot wins; later matches for an
// already-filled slot are ignored.
func assignSlots(card *model.ExperienceCard, fields []*model.DetectedField) {
	for _, f := range fields {
		if slot, ok := classifySlot(f.Control); ok {
			card.SetSlot(slot, f)
		}
	}
}

var descriptionKeywords = []string{"description", "duties", "responsibilit", "summary", "achievements"}

var slotKeywords = []struct {
	slot     model.ExperienceSlot
	keywords []string
}{
	{model.SlotJobTitle, []string{"jobtitle", "title", "position", "role", "designation"}},
	{model.SlotCompany, []string{"company", "employer", "organization", "organisation"}},
	{model.SlotJobLocation, []string{"location", "worksite", "city"}},
	{model.SlotJobDescription, descriptionKeywords},
}

var endMarkers = regexp.MustCompile(`(?i)(end|to|until|finish)`)

// classifySlot maps a control to its experience slot. Checkboxes belong to
// the currently-working slot; date-typed controls with ambiguous naming
// default to start unless an end marker appears in their attributes.
func classifySlot(c *model.Control) (model.ExperienceSlot, bool) {
	text := c.Attrs.SearchText()
	norm := strings.ReplaceAll(text, " ", "")

	if c.Kind == model.KindCheckbox {
		if strings.Contains(norm, "current") || strings.Contains(norm, "present") || strings.Contains(norm, "stillwork") {
			return model.SlotCurrentlyWorking, true
		}
		return "", false
	}

	if isDateControl(c, norm) {
		if endMarkers.MatchString(c.Attrs.Name + " " + c.Attrs.ID + " " + c.Attrs.LabelText) {
			return model.SlotEndDate, true
		}
		return model.SlotStartDate, true
	}

	if c.Kind == model.KindTextarea {
		for _, kw := range descriptionKeywords {
			if strings.Contains(norm, kw) {
				return model.SlotJobDescription, true
			}
		}
	}

	for _, sk := range slotKeywords {
		for _, kw := range sk.keywords {
			if strings.Contains(norm, kw) {
				return sk.slot, true
			}
		}
	}
	return "", false
}

func isDateControl(c *model.Control, norm string) bool {
	switch c.Attrs.Type {
	case "date", "month":
		return true
	}
	return strings.Contains(norm, "date") ||
		strings.Contains(norm, "startdate") ||
		strings.Contains(norm, "enddate")
}
