package models

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/metaclub/clubos-pitch/cli/tui/styles"
	"github.com/metaclub/clubos-pitch/pkg/notify"
)

// Decision values offered on the application form.
const (
	DecisionAccept    = "accept"
	DecisionQuestions = "questions"
	DecisionDecline   = "decline"
)

// ApplyFormData holds the application form data
type ApplyFormData struct {
	Name     string
	Timezone string
	Decision string
	Message  string
}

// ApplySubmittedMsg is emitted after a completed form is handed to the
// notifier.
type ApplySubmittedMsg struct {
	Decision string
}

// ApplyModel wraps the decision form. Submissions go out through the
// notifier, which coalesces rapid repeats and no-ops without a webhook.
type ApplyModel struct {
	form      *huh.Form
	data      *ApplyFormData
	notifier  *notify.Notifier
	submitted bool
}

// NewApplyModel creates the application form model.
func NewApplyModel(notifier *notify.Notifier) *ApplyModel {
	data := &ApplyFormData{Decision: DecisionQuestions}
	return &ApplyModel{
		form:     newApplyForm(data),
		data:     data,
		notifier: notifier,
	}
}

func newApplyForm(data *ApplyFormData) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Your Name").
			Description("Display name or SL username").
			Value(&data.Name).
			Validate(validateApplicantName),
		huh.NewInput().
			Title("Timezone").
			Description("So we schedule the walkthrough at a sane hour").
			Value(&data.Timezone),
		huh.NewSelect[string]().
			Title("Decision").
			Options(
				huh.NewOption("Reserve my launch spot", DecisionAccept),
				huh.NewOption("I have questions first", DecisionQuestions),
				huh.NewOption("Not right now", DecisionDecline),
			).
			Value(&data.Decision),
		huh.NewText().
			Title("Anything else?").
			CharLimit(400).
			Value(&data.Message),
	))
}

func validateApplicantName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

// PreselectAccept flips the decision to accept, used by the claim
// follow-up jump.
func (m *ApplyModel) PreselectAccept() {
	m.data.Decision = DecisionAccept
}

// Submitted reports whether the form was completed this session.
func (m *ApplyModel) Submitted() bool {
	return m.submitted
}

// Init starts the form.
func (m *ApplyModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update runs the form and submits on completion.
func (m *ApplyModel) Update(msg tea.Msg) tea.Cmd {
	if m.submitted {
		return nil
	}
	model, cmd := m.form.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		m.form = form
	}
	if m.form.State == huh.StateCompleted {
		m.submitted = true
		m.notifier.Submit(notify.Submission{
			Name:     m.data.Name,
			Timezone: m.data.Timezone,
			Decision: m.data.Decision,
			Message:  m.data.Message,
		})
		decision := m.data.Decision
		return tea.Batch(cmd, func() tea.Msg {
			return ApplySubmittedMsg{Decision: decision}
		})
	}
	return cmd
}

// View renders the form, or the confirmation once submitted.
func (m *ApplyModel) View() string {
	if m.submitted {
		body := styles.Title.Render("Application received") + "\n\n" +
			fmt.Sprintf("Thanks %s — we'll be in touch within 24 hours.", m.data.Name)
		if m.data.Decision == DecisionAccept {
			body += "\n" + styles.Price.Render("Your launch price is locked in.")
		}
		return styles.Panel.BorderForeground(styles.NeonGreen).Render(body)
	}
	return m.form.View()
}
