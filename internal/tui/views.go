package tui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sialabs/recruiting-agent/internal/models"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).MarginBottom(1)
	subtleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	cardStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			MarginBottom(1)
	matchStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	noMatchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	userStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	siaStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	switch m.page {
	case pageGoal:
		b.WriteString(m.viewGoal())
	case pageRoleBrief:
		b.WriteString(m.viewRoleBrief())
	case pageQuestionsLoading:
		b.WriteString(m.viewLoader("Drafting screening questions"))
	case pageQuestions:
		b.WriteString(m.viewQuestions())
	case pageCandidatesLoading:
		b.WriteString(m.viewLoader("Reviewing your role and sourcing candidates"))
	case pageReview:
		b.WriteString(m.viewReview())
	case pageOutreach:
		b.WriteString(m.viewOutreach())
	}

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg))
		b.WriteString(subtleStyle.Render("  (retry with the page's action key)"))
	}
	return b.String()
}

func (m Model) viewGoal() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Hi, I'm Sia. What brings you here today?"))
	b.WriteString("\n")
	for i, option := range goalOptions {
		cursor := "  "
		line := option
		if i == m.goalIndex {
			cursor = "> "
			line = selectedStyle.Render(option)
		}
		b.WriteString(cursor + line + "\n")
	}
	b.WriteString("\n" + subtleStyle.Render("↑/↓ select · enter continue · ctrl+c quit"))
	return b.String()
}

func (m Model) viewRoleBrief() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Tell me about the role"))
	b.WriteString("\n" + m.brief.View() + "\n")
	b.WriteString("\n" + subtleStyle.Render("ctrl+d continue · esc back · ctrl+c quit"))
	return b.String()
}

func (m Model) viewLoader(caption string) string {
	return fmt.Sprintf("\n  %s %s...\n", m.spin.View(), caption)
}

func (m Model) viewQuestions() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Screening questions I'll ask candidates"))
	b.WriteString("\n")
	for _, q := range m.questions {
		b.WriteString(fmt.Sprintf("  %d. %s\n", q.ID, q.Question))
	}
	b.WriteString("\n" + subtleStyle.Render("enter find candidates · r regenerate · esc back"))
	return b.String()
}

func (m Model) viewReview() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Candidates"))
	b.WriteString("\n")

	if m.regenerating {
		b.WriteString(fmt.Sprintf("  %s Updating the list...\n\n", m.spin.View()))
	}

	if len(m.candidates) == 0 && m.rawText != "" {
		b.WriteString(cardStyle.Render(truncate(m.rawText, 600)) + "\n")
	}

	for _, record := range m.candidates {
		b.WriteString(cardStyle.Render(renderCandidate(record)) + "\n")
	}

	b.WriteString(m.renderChat())
	b.WriteString("\n" + m.chatInput.View() + "\n")

	help := "enter send · ctrl+e outreach email · ctrl+n restart · ctrl+c quit"
	if len(m.turns) >= 2 {
		help = "enter send · ctrl+r regenerate list · " + help[len("enter send · "):]
	}
	if m.store.CanUndo(m.sessionID) {
		help = "ctrl+u undo · " + help
	}
	b.WriteString(subtleStyle.Render(help))
	return b.String()
}

func (m Model) renderChat() string {
	if len(m.turns) == 0 {
		return subtleStyle.Render("Ask Sia anything about the list, e.g. \"Sarah seems too senior?\"") + "\n"
	}

	var b strings.Builder
	start := 0
	if len(m.turns) > 6 {
		start = len(m.turns) - 6
	}
	for _, turn := range m.turns[start:] {
		label := userStyle.Render("You")
		if turn.Role == models.RoleAssistant {
			label = siaStyle.Render("Sia")
		}
		b.WriteString(fmt.Sprintf("%s  %s\n", label, turn.Content))
	}
	if m.chatWaiting {
		b.WriteString(fmt.Sprintf("%s  %s\n", siaStyle.Render("Sia"), m.spin.View()))
	}
	return b.String()
}

func renderCandidate(record models.CandidateRecord) string {
	var b strings.Builder

	name := record.DisplayName()
	if name == "" {
		name = "Unknown Candidate"
	}
	header := name
	if record.Match != nil && record.Match.TopMatch {
		header += "  " + matchStyle.Render("★ top match")
	}
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(header) + "\n")

	title := record.Candidate.Title
	company := record.Candidate.Company
	tenure := ""
	if pos := record.Candidate.CurrentPosition; pos != nil {
		if pos.Title != "" {
			title = pos.Title
		}
		if pos.Company != "" {
			company = pos.Company
		}
		if pos.TenureYears > 0 {
			tenure = fmt.Sprintf(" (%.0f year tenure)", pos.TenureYears)
		}
	}
	b.WriteString(fmt.Sprintf("%s · %s%s\n", title, company, tenure))

	if record.Candidate.AvatarURL != "" {
		b.WriteString(subtleStyle.Render(record.Candidate.AvatarURL) + "\n")
	}

	if record.Match != nil {
		if len(record.Match.FacetPills) > 0 {
			var pills []string
			for _, pill := range record.Match.FacetPills {
				if pill.State == models.FacetMatch {
					pills = append(pills, matchStyle.Render("✓ "+pill.Label))
				} else {
					pills = append(pills, noMatchStyle.Render("✗ "+pill.Label))
				}
			}
			b.WriteString(strings.Join(pills, "  ") + "\n")
		}

		why := record.Match.WhySummary
		if record.Match.WhyRich != nil && record.Match.WhyRich.Text != "" {
			why = record.Match.WhyRich.Text
		}
		if why != "" {
			b.WriteString(truncate(why, 240))
		}
	}

	return b.String()
}

func (m Model) viewOutreach() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Outreach email"))
	b.WriteString("\nSubject: " + m.outreachSubject + "\n\n")
	b.WriteString(stripParagraphTags(m.outreachBody) + "\n")
	b.WriteString("\n" + subtleStyle.Render("esc back"))
	return b.String()
}

// stripParagraphTags renders the <p>-only HTML body as plain terminal text.
func stripParagraphTags(body string) string {
	body = strings.ReplaceAll(body, "</p>", "\n\n")
	body = strings.ReplaceAll(body, "<p>", "")
	return strings.TrimSpace(body)
}

func truncate(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	return text[:limit] + "…"
}

func marshalCandidates(candidates []models.CandidateRecord) json.RawMessage {
	if len(candidates) == 0 {
		return nil
	}
	raw, err := json.Marshal(candidates)
	if err != nil {
		return nil
	}
	return raw
}
