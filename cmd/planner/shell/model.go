// Package shell provides the interactive menu interface for the planner.
// The shell functionality is split across two files:
//   - model.go: Types, Init, Update loop (this file)
//   - view.go: Rendering functions
package shell

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"courseplanner/cmd/planner/ui"
	"courseplanner/internal/catalog"
	"courseplanner/internal/config"
	"courseplanner/internal/loader"
	"courseplanner/internal/report"
)

// Mode is the current input handling state. A single state machine keeps
// the menu, the file prompt and the course prompt from stepping on each
// other in Update().
type Mode int

const (
	ModeMenu         Mode = iota // Awaiting a menu choice
	ModeFilePrompt               // Awaiting a course data file name
	ModeCoursePrompt             // Awaiting a course number
)

// Entry is a single line item in the shell transcript.
type Entry struct {
	Role    string // "user" or "planner"
	Content string
	Time    time.Time
}

// Model is the bubbletea model for the interactive shell.
type Model struct {
	// UI components
	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model
	styles   ui.Styles
	renderer *glamour.TermRenderer

	// Collaborators
	cfg    *config.Config
	logger *zap.Logger
	tree   *catalog.Tree
	loader *loader.Loader

	// State
	mode      Mode
	loaded    bool
	isLoading bool
	history   []Entry
	width     int
	height    int
	ready     bool
	quitting  bool
}

// loadResultMsg carries the outcome of a load started from the file prompt.
type loadResultMsg struct {
	path string
	res  *loader.Result
	err  error
}

// New builds a shell model around the given configuration.
// A nil logger disables logging.
func New(cfg *config.Config, logger *zap.Logger) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	styles := ui.NewStyles(ui.DetectTheme(cfg.UI.DarkMode))

	in := textinput.New()
	in.Placeholder = "Please enter your choice"
	in.Focus()
	in.CharLimit = 256
	in.Prompt = "> "
	in.PromptStyle = styles.Prompt

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	return Model{
		input:   in,
		spinner: sp,
		styles:  styles,
		cfg:     cfg,
		logger:  logger,
		tree:    catalog.New(),
		loader:  loader.New(logger),
		mode:    ModeMenu,
	}
}

// Run starts the interactive shell and blocks until the user exits.
func Run(cfg *config.Config, logger *zap.Logger) error {
	p := tea.NewProgram(New(cfg, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("shell: %w", err)
	}
	return nil
}

// Init starts the cursor blink and the spinner tick.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		inCmd tea.Cmd
		vpCmd tea.Cmd
		spCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEsc:
			// Esc backs out of a prompt; from the menu it exits.
			if m.mode != ModeMenu {
				m.mode = ModeMenu
				m.resetInput()
				return m, nil
			}
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			if !m.isLoading {
				return m.handleSubmit()
			}
		}

		if !m.isLoading {
			m.input, inCmd = m.input.Update(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4
		menuHeight := 7
		inputHeight := 3
		footerHeight := 2

		contentWidth := msg.Width - 4
		if contentWidth < 1 {
			contentWidth = 1
		}
		contentHeight := msg.Height - headerHeight - menuHeight - inputHeight - footerHeight
		if contentHeight < 1 {
			contentHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(contentWidth, contentHeight)
			m.ready = true
		} else {
			m.viewport.Width = contentWidth
			m.viewport.Height = contentHeight
		}
		m.input.Width = contentWidth - 4

		m.renderer, _ = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(contentWidth-2),
		)
		m.viewport.SetContent(m.renderHistory())
		m.viewport.GotoBottom()

	case spinner.TickMsg:
		if m.isLoading {
			m.spinner, spCmd = m.spinner.Update(msg)
			return m, spCmd
		}

	case loadResultMsg:
		m.isLoading = false
		m.loaded = msg.err == nil
		m.say(m.renderLoadOutcome(msg))
		m.mode = ModeMenu
		m.resetInput()
	}

	m.viewport, vpCmd = m.viewport.Update(msg)

	return m, tea.Batch(inCmd, vpCmd, spCmd)
}

// handleSubmit dispatches the Enter key according to the current mode.
func (m Model) handleSubmit() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())

	switch m.mode {
	case ModeFilePrompt:
		return m.submitFileName(input)
	case ModeCoursePrompt:
		return m.submitCourseNumber(input)
	default:
		return m.submitMenuChoice(input)
	}
}

func (m Model) submitMenuChoice(choice string) (tea.Model, tea.Cmd) {
	if choice == "" {
		return m, nil
	}
	m.hear(choice)

	switch choice {
	case "1":
		m.mode = ModeFilePrompt
		m.input.Reset()
		m.input.Placeholder = "Enter course data file name"
		if m.cfg.DataFile != "" {
			m.input.Placeholder = fmt.Sprintf("Enter course data file name (default: %s)", m.cfg.DataFile)
		}

	case "2":
		if !m.loaded {
			m.say("Please load the data structure first (option 1).")
		} else {
			m.say(fmt.Sprintf("**Here is the list of courses:**\n\n```\n%s\n```", report.Listing(m.tree)))
		}
		m.resetInput()

	case "3":
		if !m.loaded {
			m.say("Please load the data structure first (option 1).")
			m.resetInput()
		} else {
			m.mode = ModeCoursePrompt
			m.input.Reset()
			m.input.Placeholder = "Please enter the course number (for example, CS200)"
		}

	case "9":
		m.say("Thank you for using the ABCU Course Planner. Goodbye!")
		m.quitting = true
		return m, tea.Quit

	default:
		m.say("Invalid choice. Please enter 1, 2, 3, or 9.")
		m.resetInput()
	}

	return m, nil
}

func (m Model) submitFileName(path string) (tea.Model, tea.Cmd) {
	if path == "" {
		path = m.cfg.DataFile
	}
	if path == "" {
		m.say("File name cannot be empty.")
		return m, nil
	}
	m.hear(path)

	m.isLoading = true
	m.input.Reset()

	tree, ld := m.tree, m.loader
	return m, tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			res, err := ld.Load(path, tree)
			return loadResultMsg{path: path, res: res, err: err}
		},
	)
}

func (m Model) submitCourseNumber(number string) (tea.Model, tea.Cmd) {
	if number == "" {
		m.say("Course number cannot be empty.")
		return m, nil
	}
	m.hear(number)

	m.say(fmt.Sprintf("```\n%s\n```", report.Describe(m.tree, number)))
	m.mode = ModeMenu
	m.resetInput()
	return m, nil
}

// renderLoadOutcome formats a load result (or failure) as transcript markdown.
func (m Model) renderLoadOutcome(msg loadResultMsg) string {
	if msg.err != nil {
		return fmt.Sprintf("**Error opening file:** %s", msg.path)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Courses successfully loaded from file: %s\n\n", msg.path)
	fmt.Fprintf(&sb, "%d courses loaded, %d lines skipped.", msg.res.Loaded, msg.res.Skipped)
	for _, d := range msg.res.Diagnostics {
		fmt.Fprintf(&sb, "\n- line %d (%s): `%s`", d.Line, d.Message, d.Raw)
	}
	return sb.String()
}

// say appends a planner entry to the transcript and refreshes the viewport.
func (m *Model) say(content string) {
	m.history = append(m.history, Entry{Role: "planner", Content: content, Time: time.Now()})
	m.refresh()
}

// hear appends a user entry to the transcript and refreshes the viewport.
func (m *Model) hear(content string) {
	m.history = append(m.history, Entry{Role: "user", Content: content, Time: time.Now()})
	m.refresh()
}

func (m *Model) refresh() {
	if m.ready {
		m.viewport.SetContent(m.renderHistory())
		m.viewport.GotoBottom()
	}
}

func (m *Model) resetInput() {
	m.input.Reset()
	m.input.Placeholder = "Please enter your choice"
}

// Loaded reports whether a successful load has occurred.
func (m Model) Loaded() bool { return m.loaded }

// Transcript returns the current history.
func (m Model) Transcript() []Entry { return m.history }
