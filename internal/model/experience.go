package model

import "github.com/PuerkitoBio/goquery"

// ExperienceSlot names one of the seven fixed positions in a job-experience
// card.
type ExperienceSlot string

// Experience slot constants.
const (
	SlotJobTitle         ExperienceSlot = "jobTitle"
	SlotCompany          ExperienceSlot = "company"
	SlotJobLocation      ExperienceSlot = "jobLocation"
	SlotStartDate        ExperienceSlot = "startDate"
	SlotEndDate          ExperienceSlot = "endDate"
	SlotCurrentlyWorking ExperienceSlot = "currentlyWorking"
	SlotJobDescription   ExperienceSlot = "jobDescription"
)

// ExperienceSlots orders the slots for deterministic iteration.
var ExperienceSlots = []ExperienceSlot{
	SlotJobTitle,
	SlotCompany,
	SlotJobLocation,
	SlotStartDate,
	SlotEndDate,
	SlotCurrentlyWorking,
	SlotJobDescription,
}

// SlotCategory maps a slot to the taxonomy category it fills from.
func SlotCategory(s ExperienceSlot) Category {
	return Category(s)
}

// ExperienceCard groups the detected fields of one repeated job-experience
// block. Card indexes are 1-based and stable only within a detection pass.
type ExperienceCard struct {
	Container *goquery.Selection
	Fields    map[ExperienceSlot]*DetectedField
	Index     int
	// Confidence is min(filledSlots*15, 100).
	Confidence int
}

// NewExperienceCard creates an empty card for the given container.
func NewExperienceCard(index int, container *goquery.Selection) *ExperienceCard {
	return &ExperienceCard{
		Index:     index,
		Container: container,
		Fields:    make(map[ExperienceSlot]*DetectedField, len(ExperienceSlots)),
	}
}

// SetSlot fills a slot if it is still empty. The first match for a slot
// wins; later matches are ignored and reported by the false return.
func (c *ExperienceCard) SetSlot(slot ExperienceSlot, field *DetectedField) bool {
	if _, taken := c.Fields[slot]; taken {
		return false
	}
	field.CardIndex = c.Index
	c.Fields[slot] = field
	return true
}

// FilledSlots counts the non-nil slots.
func (c *ExperienceCard) FilledSlots() int {
	n := 0
	for _, s := range ExperienceSlots {
		if c.Fields[s] != nil {
			n++
		}
	}
	return n
}

// Score recomputes the card confidence from its filled slot count.
func (c *ExperienceCard) Score() {
	conf := c.FilledSlots() * 15
	if conf > 100 {
		conf = 100
	}
	c.Confidence = conf
}
