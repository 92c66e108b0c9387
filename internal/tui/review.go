// Package tui implements the interactive review flow: stepping through
// detected fields, confirming or re-labeling each classification before a
// fill pass.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/neerajdhurandher/autofill-engine/internal/model"
	"github.com/neerajdhurandher/autofill-engine/internal/taxonomy"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C6FEF"))
	categoryStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ECDC4"))
	subtleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
)

// Model is the bubbletea model for the review session.
type Model struct {
	taxonomy *taxonomy.Taxonomy
	input    textinput.Model
	fields   []*model.DetectedField
	errMsg   string
	index    int
	editing  bool
	done     bool
	aborted  bool
}

// NewModel creates a review session over the given fields.
func NewModel(fields []*model.DetectedField, tax *taxonomy.Taxonomy) Model {
	ti := textinput.New()
	ti.Placeholder = "category identifier"
	ti.CharLimit = 64
	return Model{fields: fields, taxonomy: tax, input: ti}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.editing {
		return m.updateEditing(keyMsg)
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		m.aborted = true
		return m, tea.Quit
	case "y", "enter":
		return m.advance(), nil
	case "n":
		m.fields[m.index].Category = model.CategoryUnknown
		m.fields[m.index].Confidence = 0
		return m.advance(), nil
	case "e":
		m.editing = true
		m.errMsg = ""
		m.input.SetValue(string(m.fields[m.index].Category))
		m.input.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.errMsg = ""
		return m, nil
	case "enter":
		name := strings.TrimSpace(m.input.Value())
		if m.taxonomy.Lookup(model.Category(name)) == nil {
			m.errMsg = fmt.Sprintf("unknown category %q", name)
			return m, nil
		}
		field := m.fields[m.index]
		field.Category = model.Category(name)
		field.Priority = m.taxonomy.Priority(field.Category)
		m.editing = false
		m.errMsg = ""
		return m.advance(), nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) advance() Model {
	m.index++
	if m.index >= len(m.fields) {
		m.done = true
	}
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	if m.done || m.aborted {
		return ""
	}
	field := m.fields[m.index]

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Review field %d/%d", m.index+1, len(m.fields))))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  category:   %s\n", categoryStyle.Render(string(field.Category))))
	b.WriteString(fmt.Sprintf("  confidence: %.0f%%\n", field.Confidence*100))
	b.WriteString(fmt.Sprintf("  name:       %s\n", field.Control.Attrs.Name))
	b.WriteString(fmt.Sprintf("  id:         %s\n", field.Control.Attrs.ID))
	b.WriteString(fmt.Sprintf("  label:      %s\n", field.Control.Attrs.LabelText))
	if field.CardIndex > 0 {
		b.WriteString(fmt.Sprintf("  card:       %d\n", field.CardIndex))
	}
	b.WriteString("\n")

	if m.editing {
		b.WriteString("  new category: " + m.input.View() + "\n")
		if m.errMsg != "" {
			b.WriteString("  " + errorStyle.Render(m.errMsg) + "\n")
		}
		b.WriteString(subtleStyle.Render("  enter: save • esc: cancel"))
	} else {
		b.WriteString(subtleStyle.Render("  y: accept • n: reject • e: edit • q: quit"))
	}
	b.WriteString("\n")
	return b.String()
}

// Run executes the review session and reports whether the user completed it.
func Run(fields []*model.DetectedField, tax *taxonomy.Taxonomy) (bool, error) {
	if len(fields) == 0 {
		return true, nil
	}
	final, err := tea.NewProgram(NewModel(fields, tax)).Run()
	if err != nil {
		return false, fmt.Errorf("review session failed: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return false, fmt.Errorf("unexpected model type %T", final)
	}
	return !m.aborted, nil
}
