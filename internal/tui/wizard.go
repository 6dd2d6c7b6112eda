// Package tui is the terminal wizard: a linear page sequence that gathers
// the role brief and screening questions, shows generated candidates, and
// hosts the chat refinement loop. It follows The Elm Architecture: state in
// the model, transitions in Update, rendering in View.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"sialabs/recruiting-agent/internal/client"
	"sialabs/recruiting-agent/internal/models"
	"sialabs/recruiting-agent/internal/session"
)

// pageState identifies which wizard page is showing.
type pageState int

const (
	pageGoal pageState = iota
	pageRoleBrief
	pageQuestionsLoading
	pageQuestions
	pageCandidatesLoading
	pageReview
	pageOutreach
)

// The loader stays on screen at least this long even when the API answers
// faster, so the transition does not flash.
const minLoaderDuration = 2 * time.Second

var goalOptions = []string{
	"Fill an open role",
	"Build a talent pipeline",
	"Replace a departing teammate",
}

// canned message sent by the explicit regenerate action, matching the demo
// front-end.
const regenerateMessage = "Based on our conversation, please show me updated candidates."

type questionsMsg struct {
	questions []string
	err       error
}

type candidatesMsg struct {
	candidates []models.CandidateRecord
	rawText    string
	err        error
}

type chatMsg struct {
	reply         string
	newCandidates *models.RegeneratedCandidates
	err           error
}

type outreachMsg struct {
	subject string
	body    string
	err     error
}

type loaderDoneMsg struct {
	page pageState
}

// Model is the wizard's state.
type Model struct {
	api       *client.Client
	store     *session.Store
	sessionID uuid.UUID

	page      pageState
	goalIndex int
	brief     textarea.Model
	chatInput textinput.Model
	spin      spinner.Model

	questions  []models.ScreeningQuestion
	candidates []models.CandidateRecord
	rawText    string
	feedback   string
	turns      []models.ConversationTurn

	// loader join: the page advances only when both the API reply and the
	// minimum display timer have landed
	loaderTimerDone bool
	loaderCallDone  bool

	outreachSubject string
	outreachBody    string
	regenerating    bool
	chatWaiting     bool
	errMsg          string
	width           int
	height          int
}

// NewModel builds the wizard against an API client and a session store.
func NewModel(api *client.Client, store *session.Store) Model {
	brief := textarea.New()
	brief.Placeholder = "Paste or type the job description..."
	brief.SetWidth(72)
	brief.SetHeight(10)
	brief.CharLimit = 0

	chatInput := textinput.New()
	chatInput.Placeholder = "Ask Sia to refine the list..."
	chatInput.CharLimit = 0
	chatInput.Width = 64

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	state := store.Create()

	return Model{
		api:       api,
		store:     store,
		sessionID: state.ID,
		page:      pageGoal,
		brief:     brief,
		chatInput: chatInput,
		spin:      spin,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.spin.Tick
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m.updateKey(msg)

	case loaderDoneMsg:
		if m.page == msg.page {
			m.loaderTimerDone = true
			return m.maybeFinishLoader()
		}
		return m, nil

	case questionsMsg:
		return m.onQuestions(msg)

	case candidatesMsg:
		return m.onCandidates(msg)

	case chatMsg:
		return m.onChat(msg)

	case outreachMsg:
		return m.onOutreach(msg)
	}

	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.page {
	case pageGoal:
		return m.updateGoal(msg)
	case pageRoleBrief:
		return m.updateRoleBrief(msg)
	case pageQuestions:
		return m.updateQuestions(msg)
	case pageReview:
		return m.updateReview(msg)
	case pageOutreach:
		if msg.Type == tea.KeyEsc {
			m.page = pageReview
		}
		return m, nil
	}
	return m, nil
}

func (m Model) updateGoal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.goalIndex > 0 {
			m.goalIndex--
		}
	case "down", "j":
		if m.goalIndex < len(goalOptions)-1 {
			m.goalIndex++
		}
	case "enter":
		goal := goalOptions[m.goalIndex]
		m.saveState(func(s *session.State) { s.Goal = goal })
		m.page = pageRoleBrief
		m.brief.Focus()
		return m, textarea.Blink
	}
	return m, nil
}

func (m Model) updateRoleBrief(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.page = pageGoal
		return m, nil
	case tea.KeyCtrlD:
		brief := strings.TrimSpace(m.brief.Value())
		if brief == "" {
			return m, nil
		}
		m.saveState(func(s *session.State) { s.RoleBrief = brief })
		return m.startLoader(pageQuestionsLoading, m.fetchQuestions(brief))
	}

	var cmd tea.Cmd
	m.brief, cmd = m.brief.Update(msg)
	return m, cmd
}

func (m Model) updateQuestions(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "r":
		return m.startLoader(pageQuestionsLoading, m.fetchQuestions(m.roleBrief()))
	case "enter":
		return m.startLoader(pageCandidatesLoading, m.fetchCandidates())
	case "esc":
		m.page = pageRoleBrief
		m.brief.Focus()
		return m, textarea.Blink
	}
	return m, nil
}

func (m Model) updateReview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		text := strings.TrimSpace(m.chatInput.Value())
		if text == "" || m.chatWaiting {
			return m, nil
		}
		m.chatInput.SetValue("")
		return m.sendChat(text, false)

	case tea.KeyCtrlR:
		if !m.chatWaiting && len(m.turns) >= 2 {
			return m.sendChat(regenerateMessage, true)
		}
		return m, nil

	case tea.KeyCtrlU:
		if m.store.CanUndo(m.sessionID) {
			if err := m.store.Undo(m.sessionID); err == nil {
				state, _ := m.store.Get(m.sessionID)
				m.candidates = state.Candidates
				m.feedback = state.AppendedFeedback
			}
		}
		return m, nil

	case tea.KeyCtrlE:
		return m.fetchOutreach()

	case tea.KeyCtrlN:
		return m.restart()
	}

	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}

// startLoader enters a loading page and races the API call against the
// minimum display timer; maybeFinishLoader advances once both settle.
func (m Model) startLoader(page pageState, call tea.Cmd) (tea.Model, tea.Cmd) {
	m.page = page
	m.errMsg = ""
	m.loaderTimerDone = false
	m.loaderCallDone = false

	timer := tea.Tick(minLoaderDuration, func(time.Time) tea.Msg {
		return loaderDoneMsg{page: page}
	})
	return m, tea.Batch(call, timer, m.spin.Tick)
}

func (m Model) maybeFinishLoader() (tea.Model, tea.Cmd) {
	if !m.loaderTimerDone || !m.loaderCallDone {
		return m, nil
	}

	switch m.page {
	case pageQuestionsLoading:
		m.page = pageQuestions
	case pageCandidatesLoading:
		m.page = pageReview
		m.chatInput.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m Model) fetchQuestions(brief string) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		questions, err := api.GenerateScreeningQuestions(context.Background(), brief)
		return questionsMsg{questions: questions, err: err}
	}
}

func (m Model) onQuestions(msg questionsMsg) (tea.Model, tea.Cmd) {
	m.loaderCallDone = true
	if msg.err != nil {
		m.errMsg = msg.err.Error()
		m.page = pageRoleBrief
		return m, nil
	}

	m.questions = make([]models.ScreeningQuestion, 0, len(msg.questions))
	for i, q := range msg.questions {
		m.questions = append(m.questions, models.ScreeningQuestion{ID: i + 1, Question: q})
	}
	questions := m.questions
	m.saveState(func(s *session.State) { s.ScreeningQuestions = questions })
	return m.maybeFinishLoader()
}

func (m Model) fetchCandidates() tea.Cmd {
	api := m.api
	req := models.AnalyzeJobDescriptionRequest{
		RoleBrief:        m.roleBrief(),
		AppendedFeedback: m.feedback,
	}
	return func() tea.Msg {
		resp, err := api.AnalyzeJobDescription(context.Background(), req)
		if err != nil {
			return candidatesMsg{err: err}
		}
		records, raw, err := client.DecodeCandidates(resp.Response)
		if err != nil {
			return candidatesMsg{err: err}
		}
		return candidatesMsg{candidates: records, rawText: raw}
	}
}

func (m Model) onCandidates(msg candidatesMsg) (tea.Model, tea.Cmd) {
	m.loaderCallDone = true
	if msg.err != nil {
		m.errMsg = msg.err.Error()
		m.page = pageQuestions
		return m, nil
	}

	m.candidates = msg.candidates
	m.rawText = msg.rawText
	candidates := msg.candidates
	m.saveState(func(s *session.State) { s.Candidates = candidates })
	return m.maybeFinishLoader()
}

func (m Model) sendChat(text string, regenerate bool) (tea.Model, tea.Cmd) {
	m.turns = append(m.turns, models.ConversationTurn{Role: models.RoleUser, Content: text})
	turns := m.turns
	m.saveState(func(s *session.State) { s.Turns = turns })
	m.chatWaiting = true
	m.regenerating = regenerate
	m.errMsg = ""

	api := m.api
	req := models.RecruiterChatRequest{
		Messages:                   m.turns,
		Candidates:                 marshalCandidates(m.candidates),
		ShouldRegenerateCandidates: regenerate,
		RoleBrief:                  m.roleBrief(),
		AppendedFeedback:           m.feedback,
	}
	call := func() tea.Msg {
		resp, err := api.RecruiterChat(context.Background(), req)
		if err != nil {
			return chatMsg{err: err}
		}
		return chatMsg{reply: resp.Response, newCandidates: resp.NewCandidates}
	}
	return m, tea.Batch(call, m.spin.Tick)
}

func (m Model) onChat(msg chatMsg) (tea.Model, tea.Cmd) {
	m.chatWaiting = false
	m.regenerating = false
	if msg.err != nil {
		m.errMsg = msg.err.Error()
		m.turns = append(m.turns, models.ConversationTurn{
			Role:    models.RoleAssistant,
			Content: "Sorry, I encountered an error. Please try again.",
		})
		return m, nil
	}

	m.turns = append(m.turns, models.ConversationTurn{Role: models.RoleAssistant, Content: msg.reply})
	turns := m.turns
	m.saveState(func(s *session.State) { s.Turns = turns })

	if msg.newCandidates != nil {
		records, raw, err := client.DecodeCandidates(msg.newCandidates.Candidates)
		if err == nil && len(records) > 0 {
			// Prior list and memo stay recoverable through a single undo.
			_ = m.store.CommitRegeneration(m.sessionID, records, msg.newCandidates.AppendedFeedback)
			m.candidates = records
			m.rawText = ""
			m.feedback = msg.newCandidates.AppendedFeedback
		} else if raw != "" {
			m.rawText = raw
		}
	}
	return m, nil
}

func (m Model) fetchOutreach() (tea.Model, tea.Cmd) {
	api := m.api
	req := models.OutreachEmailRequest{
		RoleBrief:          m.roleBrief(),
		ScreeningQuestions: m.questions,
	}
	call := func() tea.Msg {
		resp, err := api.GenerateOutreachEmail(context.Background(), req)
		if err != nil {
			return outreachMsg{err: err}
		}
		return outreachMsg{subject: resp.Subject, body: resp.EmailBody}
	}
	return m, tea.Batch(call, m.spin.Tick)
}

func (m Model) onOutreach(msg outreachMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errMsg = msg.err.Error()
		return m, nil
	}
	m.outreachSubject = msg.subject
	m.outreachBody = msg.body
	m.page = pageOutreach
	return m, nil
}

// restart destroys all accumulated wizard state and returns to the first
// page.
func (m Model) restart() (tea.Model, tea.Cmd) {
	_ = m.store.Reset(m.sessionID)
	m.page = pageGoal
	m.goalIndex = 0
	m.brief.SetValue("")
	m.chatInput.SetValue("")
	m.questions = nil
	m.candidates = nil
	m.rawText = ""
	m.feedback = ""
	m.turns = nil
	m.outreachSubject = ""
	m.outreachBody = ""
	m.errMsg = ""
	return m, nil
}

func (m *Model) saveState(fn func(*session.State)) {
	_ = m.store.Update(m.sessionID, fn)
}

func (m Model) roleBrief() string {
	state, err := m.store.Get(m.sessionID)
	if err != nil {
		return strings.TrimSpace(m.brief.Value())
	}
	return state.RoleBrief
}
