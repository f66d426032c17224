package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/tasbihapp/tasbih/internal/constants"
	"github.com/tasbihapp/tasbih/internal/counter"
	"github.com/tasbihapp/tasbih/internal/feedback"
	"github.com/tasbihapp/tasbih/internal/models"
	"github.com/tasbihapp/tasbih/internal/stats"
	"github.com/tasbihapp/tasbih/internal/storage"
)

type AddFormModel struct {
	Name            string
	Target          string
	Arabic          string
	Transliteration string
}

type Model struct {
	store    storage.Provider
	counters *counter.Store
	engine   *stats.Engine
	feedback *feedback.Adapter

	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model
	progress      progress.Model

	tasbihs  []models.Tasbih
	activeID string
	cursor   int

	form         *huh.Form
	addForm      *AddFormModel
	deleteTarget *models.Tasbih

	streak   int
	totals   stats.Totals
	averages stats.Averages

	flashing  bool
	statusMsg string
	quitting  bool
	width     int
	height    int
}

func NewModel(store storage.Provider, counters *counter.Store, engine *stats.Engine, fb *feedback.Adapter) Model {
	m := Model{
		store:    store,
		counters: counters,
		engine:   engine,
		feedback: fb,
		state:    constants.StateCounting,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient()),
	}
	m.refresh()
	return m
}

// refresh reloads the counter collection and the active pointer.
func (m *Model) refresh() {
	tasbihs, err := m.counters.List()
	if err != nil {
		m.statusMsg = "Failed to load counters: " + err.Error()
		return
	}
	m.tasbihs = tasbihs

	activeID, err := m.store.GetActiveTasbihID()
	if err != nil {
		m.statusMsg = "Failed to load active counter: " + err.Error()
		return
	}
	m.activeID = activeID

	if m.cursor >= len(m.tasbihs) {
		m.cursor = len(m.tasbihs) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// refreshStats recomputes the statistics shown on the stats screen.
func (m *Model) refreshStats() {
	if streak, err := m.engine.CurrentStreak(); err == nil {
		m.streak = streak
	}
	if totals, err := m.engine.Totals(); err == nil {
		m.totals = totals
	}
	if averages, err := m.engine.Averages(); err == nil {
		m.averages = averages
	}
}

// activeTasbih returns the counter the active pointer refers to, or nil.
func (m *Model) activeTasbih() *models.Tasbih {
	for i := range m.tasbihs {
		if m.tasbihs[i].ID == m.activeID {
			return &m.tasbihs[i]
		}
	}
	return nil
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case constants.StateCounting:
		keys = append(keys, m.keys.Count, m.keys.Undo, m.keys.Reset)
	case constants.StateCounters:
		keys = append(keys, m.keys.Enter, m.keys.Add, m.keys.Delete)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	switch m.state {
	case constants.StateCounting:
		actions = []key.Binding{m.keys.Count, m.keys.Undo, m.keys.Reset, m.keys.Add}
	case constants.StateCounters:
		actions = []key.Binding{m.keys.Add, m.keys.Delete}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}
