//go:build !nopanel

package tui

import (
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/guillerpsanchez/HashSafe/internal/fsutil"
	"github.com/guillerpsanchez/HashSafe/internal/hash"
	"github.com/guillerpsanchez/HashSafe/internal/report"
)

// phase tracks which screen the panel is showing.
type phase int

const (
	// phasePick: the file picker is active.
	phasePick phase = iota
	// phaseReady: a file is selected, waiting for the compute key.
	phaseReady
	// phaseHashing: a computation is running in the background.
	phaseHashing
	// phaseDone: a result (or error) is on screen.
	phaseDone
)

// hashResultMsg is the one-shot completion signal from the background
// computation. The generation number identifies which request produced
// it; results from a cancelled generation are discarded on arrival.
type hashResultMsg struct {
	generation int
	digest     string
	elapsed    time.Duration
	err        error
}

// copyFadeMsg clears the "copied" notice after a short delay.
type copyFadeMsg struct{}

// copyNoticeDelay is how long the "copied to clipboard" notice stays
// visible.
const copyNoticeDelay = 2 * time.Second

// Model is the bubbletea model for the panel.
type Model struct {
	cfg    Config
	theme  Theme
	keys   KeyMap
	picker filepicker.Model
	spin   spinner.Model

	phase    phase
	file     string
	fileSize int64

	// generation is bumped on every compute start and every cancel. A
	// hashResultMsg carrying an older generation is stale and ignored:
	// cancellation discards the eventual result, it does not interrupt
	// the read loop.
	generation int

	result  *report.Result
	hashErr error
	copied  bool

	width  int
	height int
}

// NewModel builds the panel model. The file picker opens at
// cfg.StartDir and the theme follows cfg.Theme.
func NewModel(cfg Config) Model {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	picker := filepicker.New()
	picker.CurrentDirectory = cfg.StartDir

	theme := ThemeFor(cfg.Theme)

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(theme.Accent)

	return Model{
		cfg:    cfg,
		theme:  theme,
		keys:   DefaultKeyMap,
		picker: picker,
		spin:   spin,
		phase:  phasePick,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.picker.Init()
}

// computeDigest runs the hash computation off the render loop and
// delivers the outcome as a hashResultMsg.
func computeDigest(path string, generation int) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		digest, err := hash.FileSHA256(path)
		return hashResultMsg{
			generation: generation,
			digest:     digest,
			elapsed:    time.Since(start),
			err:        err,
		}
	}
}

// copyDigest writes text to the system clipboard via the OSC 52 escape
// sequence (termenv handles tmux/screen passthrough), then schedules
// the notice fade.
func copyDigest(text string) tea.Cmd {
	return tea.Batch(
		func() tea.Msg {
			termenv.DefaultOutput().Copy(text)
			return nil
		},
		tea.Tick(copyNoticeDelay, func(time.Time) tea.Msg {
			return copyFadeMsg{}
		}),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// The picker sizes itself from the window when AutoHeight is set.
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Theme):
			m.theme = m.theme.Toggle()
			m.spin.Style = lipgloss.NewStyle().Foreground(m.theme.Accent)
			return m, nil
		}
		switch m.phase {
		case phaseReady:
			return m.updateReady(msg)
		case phaseHashing:
			return m.updateHashing(msg)
		case phaseDone:
			return m.updateDone(msg)
		}
		// phasePick: the picker handles the key below.

	case spinner.TickMsg:
		if m.phase != phaseHashing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case hashResultMsg:
		if msg.generation != m.generation {
			// Cancelled before completion: discard, never display.
			m.cfg.Logger.Debug("discarding stale hash result", "path", m.file)
			return m, nil
		}
		m.phase = phaseDone
		if msg.err != nil {
			m.hashErr = msg.err
			m.cfg.Logger.Debug("hash failed", "path", m.file, "error", msg.err)
			return m, nil
		}
		r := report.New(m.file, msg.digest, m.fileSize, msg.elapsed)
		m.result = &r
		m.cfg.Logger.Debug("hash complete", "path", m.file, "elapsed", msg.elapsed)
		return m, nil

	case copyFadeMsg:
		m.copied = false
		return m, nil
	}

	if m.phase == phasePick {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		if didSelect, path := m.picker.DidSelectFile(msg); didSelect {
			m.selectFile(path)
		}
		return m, cmd
	}
	return m, nil
}

// selectFile records the picked file and moves to the ready screen.
func (m *Model) selectFile(path string) {
	m.file = path
	m.fileSize = 0
	if info, err := fsutil.CheckInput(path); err == nil {
		m.fileSize = info.Size()
	}
	m.result = nil
	m.hashErr = nil
	m.phase = phaseReady
}

func (m Model) updateReady(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Compute):
		return m.startHashing()
	case key.Matches(msg, m.keys.PickNew):
		m.phase = phasePick
		return m, nil
	}
	return m, nil
}

func (m Model) updateHashing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Cancel) {
		// Cooperative cancel: the worker cannot be interrupted mid-read,
		// so bump the generation and let its result arrive stale.
		m.generation++
		m.phase = phaseReady
		return m, nil
	}
	return m, nil
}

func (m Model) updateDone(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Copy):
		if m.result != nil {
			m.copied = true
			return m, copyDigest(m.result.Digest)
		}
	case key.Matches(msg, m.keys.Compute):
		return m.startHashing()
	case key.Matches(msg, m.keys.PickNew):
		m.result = nil
		m.hashErr = nil
		m.phase = phasePick
		return m, nil
	}
	return m, nil
}

func (m Model) startHashing() (tea.Model, tea.Cmd) {
	m.phase = phaseHashing
	m.generation++
	m.copied = false
	m.result = nil
	m.hashErr = nil
	m.cfg.Logger.Debug("hashing file", "path", m.file)
	return m, tea.Batch(m.spin.Tick, computeDigest(m.file, m.generation))
}
