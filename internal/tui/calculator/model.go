// ============================================================================
// pCalc - Arbitrary-Precision Pi Engine
// ============================================================================
//
// Package:     calculator
// Description: Main Bubbletea model for the interactive pi calculator
// Author:      Mike Stoffels
// Created:     2026-08-29
// License:     MIT
// ============================================================================

package calculator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/pCalc/foundation/core/log"
	"github.com/msto63/pCalc/internal/history"
	"github.com/msto63/pCalc/internal/pi"
)

// Version is set during build
var Version = "0.1.0"

// state is the current screen of the calculator
type state int

const (
	stateMethodSelect state = iota
	statePrecisionSelect
	stateComputing
	stateResult
)

// Precision step sizes for the selector keys
const (
	stepSmall  = 1
	stepMedium = 5
	stepLarge  = 10
)

// Model is the main Bubbletea model for the calculator
type Model struct {
	// State
	width  int
	height int
	ready  bool
	state  state
	err    error

	// Components
	viewport viewport.Model
	spinner  spinner.Model

	// Selection state
	methods   []pi.Method
	cursor    int
	precision int

	// Result state
	digits        string
	reportLines   []string
	mismatchIndex int
	elapsed       time.Duration

	// Persistence
	store history.Store
}

// Config holds calculator configuration
type Config struct {
	DefaultMethod    pi.Method
	DefaultPrecision int
	Store            history.Store
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		DefaultMethod:    pi.Chudnovsky,
		DefaultPrecision: 50,
	}
}

// New creates a new calculator model
func New(cfg Config) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorPrimary)

	methods := pi.Methods()
	cursor := 0
	for i, method := range methods {
		if method == cfg.DefaultMethod {
			cursor = i
		}
	}

	precision := cfg.DefaultPrecision
	if precision < 1 || precision > pi.MaxPrecision {
		precision = 50
	}

	return Model{
		state:     stateMethodSelect,
		spinner:   sp,
		methods:   methods,
		cursor:    cursor,
		precision: precision,
		store:     cfg.Store,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		tea.EnterAltScreen,
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4
		footerHeight := 3
		viewportHeight := msg.Height - headerHeight - footerHeight

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		if m.state == stateResult {
			m.updateViewportContent()
		}

	case spinner.TickMsg:
		if m.state == stateComputing {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case computeDoneMsg:
		m.state = stateResult
		m.err = msg.err
		m.digits = msg.digits
		m.reportLines = msg.reportLines
		m.mismatchIndex = msg.mismatchIndex
		m.elapsed = msg.elapsed
		m.updateViewportContent()
		m.viewport.GotoTop()
	}

	if m.state == stateResult {
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.state {
	case stateMethodSelect:
		return m.handleMethodKeys(msg)
	case statePrecisionSelect:
		return m.handlePrecisionKeys(msg)
	case stateComputing:
		return m, nil
	case stateResult:
		return m.handleResultKeys(msg)
	}

	return m, nil
}

func (m Model) handleMethodKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.methods)-1 {
			m.cursor++
		}
	case "enter":
		m.state = statePrecisionSelect
	}
	return m, nil
}

func (m Model) handlePrecisionKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = stateMethodSelect
	case "up", "k":
		m.precision = clampPrecision(m.precision + stepSmall)
	case "down", "j":
		m.precision = clampPrecision(m.precision - stepSmall)
	case "right", "l":
		m.precision = clampPrecision(m.precision + stepMedium)
	case "left", "h":
		m.precision = clampPrecision(m.precision - stepMedium)
	case "pgup":
		m.precision = clampPrecision(m.precision + stepLarge)
	case "pgdown":
		m.precision = clampPrecision(m.precision - stepLarge)
	case "enter":
		m.state = stateComputing
		return m, tea.Batch(m.spinner.Tick, m.compute())
	}
	return m, nil
}

func (m Model) handleResultKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "enter", "esc":
		m.state = stateMethodSelect
		m.err = nil
	case "up", "k":
		m.viewport.LineUp(1)
	case "down", "j":
		m.viewport.LineDown(1)
	case "pgup":
		m.viewport.ViewUp()
	case "pgdown":
		m.viewport.ViewDown()
	case "g":
		m.viewport.GotoTop()
	case "G":
		m.viewport.GotoBottom()
	}
	return m, nil
}

func clampPrecision(p int) int {
	if p < 1 {
		return 1
	}
	if p > pi.MaxPrecision {
		return pi.MaxPrecision
	}
	return p
}

// compute runs the selected algorithm and builds the result message
func (m Model) compute() tea.Cmd {
	method := m.methods[m.cursor]
	precision := m.precision
	store := m.store

	return func() tea.Msg {
		started := time.Now()

		value, err := pi.Compute(method, precision)
		if err != nil {
			return computeDoneMsg{err: err}
		}
		elapsed := time.Since(started)

		digits, err := pi.Format(value, precision)
		if err != nil {
			return computeDoneMsg{err: err}
		}

		report, err := pi.Check(value, precision)
		if err != nil {
			return computeDoneMsg{err: err}
		}

		if store != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			recErr := store.Record(ctx, &history.Entry{
				Method:        method.String(),
				Precision:     precision,
				ElapsedMS:     elapsed.Milliseconds(),
				Digits:        digits,
				MismatchIndex: report.MismatchIndex(),
			})
			if recErr != nil {
				// Recording failures never block the result screen
				log.GetDefault().WarnWithErr("could not record computation", recErr)
			}
		}

		return computeDoneMsg{
			digits:        digits,
			reportLines:   report.Lines(),
			mismatchIndex: report.MismatchIndex(),
			elapsed:       elapsed,
		}
	}
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Lade Rechner..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	switch m.state {
	case stateMethodSelect:
		b.WriteString(m.renderMethodMenu())
	case statePrecisionSelect:
		b.WriteString(m.renderPrecisionSelector())
	case stateComputing:
		b.WriteString(m.renderComputing())
	case stateResult:
		b.WriteString(m.renderResult())
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())

	return b.String()
}

// renderHeader renders the title panel
func (m Model) renderHeader() string {
	logo := LogoStyle.Render(Logo)
	subtitle := SubHeaderStyle.Render(fmt.Sprintf("Pi mit bis zu %d Nachkommastellen", pi.MaxPrecision))
	header := lipgloss.JoinHorizontal(lipgloss.Center, logo, strings.Repeat(" ", 3), subtitle)
	return TitlePanelStyle.Width(m.width - 4).Render(header)
}

// renderMethodMenu renders the algorithm selection list
func (m Model) renderMethodMenu() string {
	var b strings.Builder
	b.WriteString(MenuHintStyle.Render("Verfahren wählen:"))
	b.WriteString("\n\n")

	for i, method := range m.methods {
		line := fmt.Sprintf("%d. %s", i+1, method.DisplayName())
		if i == m.cursor {
			b.WriteString(MenuSelectedStyle.Render("> " + line))
		} else {
			b.WriteString(MenuItemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// renderPrecisionSelector renders the precision picker
func (m Model) renderPrecisionSelector() string {
	method := m.methods[m.cursor]

	var b strings.Builder
	b.WriteString(MenuHintStyle.Render("Verfahren: " + method.DisplayName()))
	b.WriteString("\n\n")
	b.WriteString(MenuItemStyle.Render("Nachkommastellen: "))
	b.WriteString(PrecisionValueStyle.Render(fmt.Sprintf("%d", m.precision)))
	b.WriteString("  ")
	b.WriteString(PrecisionRangeStyle.Render(fmt.Sprintf("(1-%d)", pi.MaxPrecision)))
	b.WriteString("\n")

	return b.String()
}

// renderComputing renders the spinner screen
func (m Model) renderComputing() string {
	method := m.methods[m.cursor]
	return fmt.Sprintf("\n  %s Berechne Pi mit %s (%d Nachkommastellen)...\n",
		m.spinner.View(), method.DisplayName(), m.precision)
}

// renderResult renders the result viewport
func (m Model) renderResult() string {
	if m.err != nil {
		return "\n" + ErrorStyle.Render("Fehler: "+m.err.Error()) + "\n"
	}
	style := ResultPanelStyle.Width(m.width - 2)
	return style.Render(m.viewport.View())
}

// renderHelpBar renders the shortcuts for the current screen
func (m Model) renderHelpBar() string {
	var items []string

	switch m.state {
	case stateMethodSelect:
		items = []string{
			RenderKeyHint("↑/↓", "Auswahl"),
			RenderKeyHint("Enter", "Weiter"),
			RenderKeyHint("q", "Beenden"),
		}
	case statePrecisionSelect:
		items = []string{
			RenderKeyHint("↑/↓", "±1"),
			RenderKeyHint("←/→", "±5"),
			RenderKeyHint("PgUp/PgDn", "±10"),
			RenderKeyHint("Enter", "Berechnen"),
			RenderKeyHint("Esc", "Zurück"),
		}
	case stateComputing:
		items = []string{
			RenderKeyHint("Ctrl+C", "Beenden"),
		}
	case stateResult:
		items = []string{
			RenderKeyHint("↑/↓", "Scrollen"),
			RenderKeyHint("g/G", "Anfang/Ende"),
			RenderKeyHint("Enter", "Neue Berechnung"),
			RenderKeyHint("q", "Beenden"),
		}
	}

	return HelpStyle.Render(strings.Join(items, "  "))
}

// updateViewportContent fills the viewport with the result and report
func (m *Model) updateViewportContent() {
	if m.err != nil {
		m.viewport.SetContent(ErrorStyle.Render("Fehler: " + m.err.Error()))
		return
	}

	var b strings.Builder

	method := m.methods[m.cursor]
	b.WriteString(ResultMetaStyle.Render(fmt.Sprintf("Verfahren: %s", method.DisplayName())))
	b.WriteString("\n")
	b.WriteString(ResultMetaStyle.Render(fmt.Sprintf("Dauer:     %s", log.FormatDuration(m.elapsed))))
	b.WriteString("\n\n")

	b.WriteString(ResultDigitsStyle.Render(m.digits))
	b.WriteString("\n\n")

	for _, line := range m.reportLines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.mismatchIndex == pi.NoMismatch {
		b.WriteString(ResultCorrectStyle.Render("✓ Alle Stellen korrekt"))
	} else {
		b.WriteString(ResultMismatchStyle.Render("✗ Abweichung gefunden"))
	}

	m.viewport.SetContent(b.String())
}

// Run starts the calculator TUI
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
