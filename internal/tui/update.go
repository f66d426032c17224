package tui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/tasbihapp/tasbih/internal/constants"
)

// flashClearMsg ends the one-frame count flash.
type flashClearMsg struct{}

func flashCmd() tea.Cmd {
	return tea.Tick(150*time.Millisecond, func(time.Time) tea.Msg {
		return flashClearMsg{}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		barWidth := msg.Width - 10
		if barWidth > 50 {
			barWidth = 50
		}
		if barWidth > 0 {
			m.progress.Width = barWidth
		}
		return m, nil
	case flashClearMsg:
		m.flashing = false
		return m, nil
	}

	// The add-counter form owns all input while it is open.
	if m.state == constants.StateAddCounter {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = m.previousState
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			target, err := strconv.Atoi(m.addForm.Target)
			if err != nil || target < 1 {
				target = constants.DefaultTargetCount
			}
			if _, err := m.counters.Create(m.addForm.Name, target, m.addForm.Arabic, m.addForm.Transliteration); err != nil {
				m.statusMsg = "Failed to add counter: " + err.Error()
			} else {
				m.statusMsg = ""
			}
			m.refresh()
			m.state = constants.StateCounting
		case huh.StateAborted:
			m.state = m.previousState
		}
		return m, tea.Batch(cmds...)
	}

	if m.state == constants.StateConfirmDelete {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y":
				if m.deleteTarget != nil {
					if err := m.counters.Delete(m.deleteTarget.ID); err != nil {
						m.statusMsg = "Failed to delete counter: " + err.Error()
					}
					m.deleteTarget = nil
					m.refresh()
				}
				m.state = constants.StateCounters
			case "n", "esc":
				m.deleteTarget = nil
				m.state = constants.StateCounters
			}
		}
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			m.state = nextState(m.state)
			if m.state == constants.StateStats {
				m.refreshStats()
			}
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = previousViewState(m.state)
			if m.state == constants.StateStats {
				m.refreshStats()
			}
			return m, nil
		case key.Matches(msg, m.keys.Add):
			return m.openAddForm()
		}

		switch m.state {
		case constants.StateCounting:
			return m.updateCounting(msg)
		case constants.StateCounters:
			return m.updateCounters(msg)
		}
	}

	return m, tea.Batch(cmds...)
}

func nextState(s constants.SessionState) constants.SessionState {
	switch s {
	case constants.StateCounting:
		return constants.StateCounters
	case constants.StateCounters:
		return constants.StateStats
	default:
		return constants.StateCounting
	}
}

func previousViewState(s constants.SessionState) constants.SessionState {
	switch s {
	case constants.StateCounting:
		return constants.StateStats
	case constants.StateStats:
		return constants.StateCounters
	default:
		return constants.StateCounting
	}
}

func (m Model) updateCounting(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tasbih := m.activeTasbih()

	switch {
	case key.Matches(msg, m.keys.Count):
		if tasbih == nil {
			m.statusMsg = "No counter yet. Press 'n' to add one."
			return m, nil
		}
		reachedBefore := tasbih.TargetReached()
		if err := m.counters.Increment(tasbih.ID); err != nil {
			m.statusMsg = "Failed to count: " + err.Error()
			return m, nil
		}
		m.refresh()

		if updated := m.activeTasbih(); updated != nil && updated.TargetReached() && !reachedBefore {
			m.feedback.TargetReached()
			m.statusMsg = constants.TargetReachedTitle
		} else {
			m.feedback.CountTick()
			m.statusMsg = ""
		}

		if m.feedback.FlashEnabled() {
			m.flashing = true
			return m, flashCmd()
		}
		return m, nil

	case key.Matches(msg, m.keys.Undo):
		if tasbih == nil {
			return m, nil
		}
		if err := m.counters.Decrement(tasbih.ID); err != nil {
			m.statusMsg = "Failed to undo: " + err.Error()
			return m, nil
		}
		m.refresh()
		m.statusMsg = ""
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		if tasbih == nil || tasbih.CurrentCount == 0 {
			return m, nil
		}
		completed := tasbih.TargetReached()
		if err := m.counters.Reset(tasbih.ID); err != nil {
			m.statusMsg = "Failed to reset: " + err.Error()
			return m, nil
		}
		m.refresh()
		if completed {
			m.statusMsg = "Completed session recorded."
		} else {
			m.statusMsg = "Session recorded."
		}
		return m, nil
	}

	return m, nil
}

func (m Model) updateCounters(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.tasbihs)-1 {
			m.cursor++
		}
		return m, nil
	case key.Matches(msg, m.keys.Enter):
		if m.cursor < len(m.tasbihs) {
			if err := m.counters.SetActive(m.tasbihs[m.cursor].ID); err != nil {
				m.statusMsg = "Failed to switch counter: " + err.Error()
				return m, nil
			}
			m.refresh()
			m.state = constants.StateCounting
			m.statusMsg = ""
		}
		return m, nil
	case key.Matches(msg, m.keys.Delete):
		if m.cursor < len(m.tasbihs) {
			t := m.tasbihs[m.cursor]
			m.deleteTarget = &t
			m.state = constants.StateConfirmDelete
		}
		return m, nil
	}

	return m, nil
}

func (m Model) openAddForm() (tea.Model, tea.Cmd) {
	m.addForm = &AddFormModel{Target: strconv.Itoa(constants.DefaultTargetCount)}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&m.addForm.Name),
			huh.NewInput().Title("Target count").Value(&m.addForm.Target),
			huh.NewInput().Title("Arabic (optional)").Value(&m.addForm.Arabic),
			huh.NewInput().Title("Transliteration (optional)").Value(&m.addForm.Transliteration),
		),
	)
	m.previousState = m.state
	m.state = constants.StateAddCounter
	return m, m.form.Init()
}
