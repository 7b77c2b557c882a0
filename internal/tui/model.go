package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/treegen/foundation/core/log"
	"github.com/msto63/treegen/foundation/utils/filex"
	"github.com/msto63/treegen/internal/tree/ast"
	"github.com/msto63/treegen/internal/tree/executor"
	"github.com/msto63/treegen/internal/tree/parser"
)

// View represents different views in the TUI
type View int

const (
	ViewInput View = iota
	ViewTarget
	ViewPreview
	ViewResults
)

// Options configures the TUI session
type Options struct {
	Logger *log.Logger

	// TargetDir pre-fills the target directory prompt
	TargetDir string

	// DirMode and FileMode are passed through to the executor
	DirMode  os.FileMode
	FileMode os.FileMode

	// FailExisting makes existing paths count as failures
	FailExisting bool

	// ASCII renders the preview with ASCII connectors
	ASCII bool

	// StrictKinds disables directory inference in the parser
	StrictKinds bool
}

// Model is the main TUI model
type Model struct {
	// State
	view      View
	width     int
	height    int
	ready     bool
	executing bool
	err       error

	// Components
	textarea    textarea.Model
	targetInput textinput.Model
	viewport    viewport.Model
	spinner     spinner.Model

	// Parsed structure
	forest []*ast.Node
	stats  ast.Stats

	// Last run
	report *executor.Report
	dryRun bool

	parser  *parser.Parser
	logger  *log.Logger
	options Options
}

// NewModel creates a new TUI model
func NewModel(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}
	if opts.TargetDir == "" {
		opts.TargetDir = "."
	}

	ta := textarea.New()
	ta.Placeholder = "Paste a tree diagram here..."
	ta.Focus()
	ta.CharLimit = 0
	ta.SetWidth(80)
	ta.SetHeight(14)
	ta.ShowLineNumbers = true

	ti := textinput.New()
	ti.Placeholder = "Target directory"
	ti.SetValue(opts.TargetDir)
	ti.CharLimit = 512

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	return Model{
		view:        ViewInput,
		textarea:    ta,
		targetInput: ti,
		spinner:     sp,
		parser: parser.New(parser.Options{
			Logger:      opts.Logger,
			StrictKinds: opts.StrictKinds,
		}),
		logger:  opts.Logger.WithField("component", "tui"),
		options: opts,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.spinner.Tick,
	)
}

// Message types for async operations
type executeDoneMsg struct {
	report *executor.Report
	err    error
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			return m.goBack()

		case "ctrl+d":
			if m.view == ViewInput {
				return m.parseInput()
			}

		case "enter":
			switch m.view {
			case ViewTarget:
				return m.enterPreview()
			case ViewResults:
				if !m.executing {
					return m.reset()
				}
			}

		case "c":
			if m.view == ViewPreview && !m.executing {
				return m.startExecution(false)
			}

		case "d":
			if m.view == ViewPreview && !m.executing {
				return m.startExecution(true)
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		if !m.ready {
			m.viewport = viewport.New(msg.Width-6, msg.Height-12)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 6
			m.viewport.Height = msg.Height - 12
		}
		m.textarea.SetWidth(msg.Width - 6)
		m.targetInput.Width = msg.Width - 10

	case executeDoneMsg:
		m.executing = false
		m.err = msg.err
		m.report = msg.report
		m.view = ViewResults
		m.viewport.SetContent(m.renderReport())
		m.viewport.GotoTop()
		return m, nil

	case spinner.TickMsg:
		if m.executing {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	// Update the component the current view owns
	switch m.view {
	case ViewInput:
		m.textarea, cmd = m.textarea.Update(msg)
		cmds = append(cmds, cmd)
	case ViewTarget:
		m.targetInput, cmd = m.targetInput.Update(msg)
		cmds = append(cmds, cmd)
	case ViewPreview, ViewResults:
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// parseInput parses the textarea content and advances to the target view
func (m Model) parseInput() (tea.Model, tea.Cmd) {
	text := m.textarea.Value()
	if strings.TrimSpace(text) == "" {
		m.err = fmt.Errorf("nothing to parse")
		return m, nil
	}

	forest, err := m.parser.Parse(text)
	if err != nil {
		m.err = err
		return m, nil
	}
	if len(forest) == 0 {
		m.err = fmt.Errorf("no entries found in input")
		return m, nil
	}

	m.err = nil
	m.forest = forest
	m.stats = ast.Count(forest)
	m.view = ViewTarget
	m.textarea.Blur()
	m.targetInput.Focus()
	return m, textinput.Blink
}

// enterPreview resolves the target and fills the preview viewport
func (m Model) enterPreview() (tea.Model, tea.Cmd) {
	target := strings.TrimSpace(m.targetInput.Value())
	if target == "" {
		m.err = fmt.Errorf("target directory is required")
		return m, nil
	}

	expanded, err := filex.ExpandPath(target)
	if err != nil {
		m.err = err
		return m, nil
	}
	if filex.Exists(expanded) && !filex.IsDir(expanded) {
		m.err = fmt.Errorf("%s exists but is not a directory", expanded)
		return m, nil
	}

	m.err = nil
	m.targetInput.SetValue(expanded)
	m.targetInput.Blur()
	m.view = ViewPreview
	m.viewport.SetContent(ast.RenderWithOptions(m.forest, ast.RenderOptions{ASCII: m.options.ASCII}))
	m.viewport.GotoTop()
	return m, nil
}

// startExecution runs the executor in the background
func (m Model) startExecution(dryRun bool) (tea.Model, tea.Cmd) {
	m.executing = true
	m.dryRun = dryRun
	m.err = nil

	forest := m.forest
	opts := executor.Options{
		Logger:       m.logger,
		TargetDir:    m.targetInput.Value(),
		DryRun:       dryRun,
		DirMode:      m.options.DirMode,
		FileMode:     m.options.FileMode,
		FailExisting: m.options.FailExisting,
	}

	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		engine, err := executor.New(opts)
		if err != nil {
			return executeDoneMsg{err: err}
		}
		report, err := engine.Execute(context.Background(), forest)
		return executeDoneMsg{report: report, err: err}
	})
}

// goBack steps one view backwards
func (m Model) goBack() (tea.Model, tea.Cmd) {
	m.err = nil
	switch m.view {
	case ViewTarget:
		m.view = ViewInput
		m.targetInput.Blur()
		m.textarea.Focus()
		return m, textarea.Blink
	case ViewPreview:
		m.view = ViewTarget
		m.targetInput.Focus()
		return m, textinput.Blink
	case ViewResults:
		m.view = ViewPreview
		m.viewport.SetContent(ast.RenderWithOptions(m.forest, ast.RenderOptions{ASCII: m.options.ASCII}))
		m.viewport.GotoTop()
	}
	return m, nil
}

// reset returns to a fresh input view after a completed run
func (m Model) reset() (tea.Model, tea.Cmd) {
	m.view = ViewInput
	m.err = nil
	m.forest = nil
	m.report = nil
	m.textarea.Reset()
	m.textarea.Focus()
	return m, textarea.Blink
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var s strings.Builder

	s.WriteString(m.renderHeader())
	s.WriteString("\n")

	switch m.view {
	case ViewInput:
		s.WriteString(m.renderInputView())
	case ViewTarget:
		s.WriteString(m.renderTargetView())
	case ViewPreview:
		s.WriteString(m.renderPreviewView())
	case ViewResults:
		s.WriteString(m.renderResultsView())
	}

	if m.err != nil {
		s.WriteString("\n")
		s.WriteString(RenderError(m.err.Error()))
	}

	s.WriteString("\n")
	s.WriteString(m.renderFooter())

	return s.String()
}

func (m *Model) renderHeader() string {
	tabs := []string{"Input", "Target", "Preview", "Results"}
	var renderedTabs []string

	for i, tab := range tabs {
		if View(i) == m.view {
			renderedTabs = append(renderedTabs, ActiveTabStyle.Render(tab))
		} else {
			renderedTabs = append(renderedTabs, TabStyle.Render(tab))
		}
	}

	title := TitleStyle.Render("treegen")
	tabLine := lipgloss.JoinHorizontal(lipgloss.Top, renderedTabs...)

	return lipgloss.JoinVertical(lipgloss.Left, title, tabLine)
}

func (m *Model) renderInputView() string {
	var s strings.Builder

	s.WriteString(SubtitleStyle.Render("Paste the tree diagram to materialize"))
	s.WriteString("\n\n")
	s.WriteString(FocusedInputStyle.Render(m.textarea.View()))

	return s.String()
}

func (m *Model) renderTargetView() string {
	var s strings.Builder

	s.WriteString(SubtitleStyle.Render("Where should the structure be created?"))
	s.WriteString("\n\n")
	s.WriteString(fmt.Sprintf("Parsed: %s\n\n", m.stats.String()))
	s.WriteString(FocusedInputStyle.Render(m.targetInput.View()))

	return BoxStyle.Render(s.String())
}

func (m *Model) renderPreviewView() string {
	var s strings.Builder

	s.WriteString(SubtitleStyle.Render(fmt.Sprintf("Preview — %s under %s",
		m.stats.String(), m.targetInput.Value())))
	s.WriteString("\n\n")
	s.WriteString(m.viewport.View())
	s.WriteString("\n")

	if m.executing {
		s.WriteString(m.spinner.View())
		s.WriteString(" Creating structure...\n")
	}

	return BoxStyle.Render(s.String())
}

func (m *Model) renderResultsView() string {
	var s strings.Builder

	mode := "Run"
	if m.dryRun {
		mode = "Dry run"
	}
	s.WriteString(SubtitleStyle.Render(fmt.Sprintf("%s finished", mode)))
	s.WriteString("\n\n")
	s.WriteString(m.viewport.View())

	return BoxStyle.Render(s.String())
}

// renderReport formats the last execution report for the viewport
func (m *Model) renderReport() string {
	if m.report == nil {
		return "No report available."
	}

	var s strings.Builder
	s.WriteString(m.report.Summary())
	s.WriteString("\n\n")

	writeBucket := func(label string, style lipgloss.Style, actions []executor.Action) {
		if len(actions) == 0 {
			return
		}
		s.WriteString(style.Render(label))
		s.WriteString("\n")
		for _, action := range actions {
			if action.Reason != "" {
				s.WriteString(fmt.Sprintf("  %s (%s)\n", action.Path, action.Reason))
			} else {
				s.WriteString(fmt.Sprintf("  %s\n", action.Path))
			}
		}
		s.WriteString("\n")
	}

	writeBucket("Created:", CreatedStyle, m.report.Created)
	writeBucket("Skipped:", SkippedStyle, m.report.Skipped)
	writeBucket("Failed:", FailedStyle, m.report.Failed)

	return s.String()
}

func (m *Model) renderFooter() string {
	var help string
	switch m.view {
	case ViewInput:
		help = "Ctrl+D: Parse • Ctrl+C: Quit"
	case ViewTarget:
		help = "Enter: Preview • Esc: Back • Ctrl+C: Quit"
	case ViewPreview:
		help = "c: Create • d: Dry run • Esc: Back • Ctrl+C: Quit"
	case ViewResults:
		help = "Enter: New input • Esc: Back to preview • Ctrl+C: Quit"
	}

	return StatusBarStyle.Width(m.width).Render(help)
}

// Run starts the interactive session and blocks until it ends
func Run(opts Options) error {
	program := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
