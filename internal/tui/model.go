package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"careerpro/internal/config"
	"careerpro/internal/errors"
	"careerpro/internal/session"
)

// editMode tracks what the keyboard is currently driving.
type editMode int

const (
	// modeForm edits the fields of the basics step or of one section entry.
	modeForm editMode = iota
	// modeList browses the entries of a section step.
	modeList
	// modeConfirmReset shows the reset confirmation prompt.
	modeConfirmReset
)

// Key constants.
const (
	keyEnter = "enter"
	keyDown  = "down"
)

// SavedMsg reports a completed autosave. Sent into the program from the
// autosaver's OnSave callback.
type SavedMsg struct {
	At time.Time
}

// Model is the resume editing view following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type Model struct {
	ctx    context.Context
	cfg    *config.Config
	logger *errors.Logger
	sess   *session.Session
	styles *Styles

	mode editMode

	// Form state. The focus order is inputs first, then the body textarea
	// when the step has one (summary, experience and project descriptions).
	labels     []string
	inputs     []textinput.Model
	body       textarea.Model
	bodyLabel  string
	hasBody    bool
	focusIndex int

	// editID is the entry under edit, empty on the basics step.
	editID string

	// current mirrors the experience entry's current-position flag while
	// its form is open.
	current bool

	// cursor is the selected entry in list mode.
	cursor int

	// Enrichment state. One in-flight request per target.
	summaryBusy bool
	bulletBusy  string
	scoreBusy   bool

	status  string
	err     error
	savedAt time.Time

	width  int
	height int
	ready  bool
}

// Ensure Model implements tea.Model.
var _ tea.Model = (*Model)(nil)

// New creates the editing view around an existing session.
func New(ctx context.Context, cfg *config.Config, logger *errors.Logger, sess *session.Session) *Model {
	m := &Model{
		ctx:    ctx,
		cfg:    cfg,
		logger: logger,
		sess:   sess,
		styles: DefaultStyles(),
	}
	m.enterStep()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("careerpro - Resume Builder"),
		textinput.Blink,
	)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.body.SetWidth(min(msg.Width-4, 78))
		return m, nil

	case SavedMsg:
		m.savedAt = msg.At
		return m, nil

	case summaryRewrittenMsg:
		return m.handleSummaryRewritten(msg)

	case bulletOptimizedMsg:
		return m.handleBulletOptimized(msg)

	case scoreCompletedMsg:
		return m.handleScoreCompleted(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// handleKeyMsg routes key presses: global chords first, then the active mode.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == modeConfirmReset {
		return m.handleConfirmReset(msg)
	}

	switch msg.String() {
	case "ctrl+c", "ctrl+q":
		m.commitForm()
		return m, tea.Quit
	case "ctrl+n":
		m.commitForm()
		m.sess.NextStep()
		m.enterStep()
		return m, m.focusCmd()
	case "ctrl+p":
		m.commitForm()
		m.sess.PrevStep()
		m.enterStep()
		return m, m.focusCmd()
	case "ctrl+g":
		return m.startSummaryRewrite()
	case "ctrl+o":
		return m.startBulletRewrite()
	case "ctrl+r":
		return m.startScore()
	case "ctrl+x":
		m.mode = modeConfirmReset
		return m, nil
	}

	switch m.mode {
	case modeForm:
		return m.handleFormKey(msg)
	case modeList:
		return m.handleListKey(msg)
	}
	return m, nil
}

func (m *Model) handleConfirmReset(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if err := m.sess.Reset(true); err != nil {
			m.err = err
		} else {
			m.status = "Resume reset"
			m.err = nil
		}
		m.sess.GoToStep(0)
		m.enterStep()
		return m, m.focusCmd()
	case "n", "N", "esc":
		m.mode = m.modeForStep()
		return m, m.focusCmd()
	}
	return m, nil
}

// modeForStep returns the resting mode of the current step: the basics step
// is a permanent form, section steps start in the entry list.
func (m *Model) modeForStep() editMode {
	if m.sess.Step() == 0 {
		return modeForm
	}
	return modeList
}
