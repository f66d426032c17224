package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tasbihapp/tasbih/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateCounting:
		content = m.viewCounting()
	case constants.StateCounters:
		content = m.viewCounters()
	case constants.StateStats:
		content = m.viewStats()
	case constants.StateAddCounter:
		content = m.form.View()
	case constants.StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	tabTitles := []string{"Count", "Counters", "Stats"}
	states := []constants.SessionState{constants.StateCounting, constants.StateCounters, constants.StateStats}
	for i, title := range tabTitles {
		if m.state == states[i] {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewCounting() string {
	tasbih := m.activeTasbih()
	if tasbih == nil {
		return docStyle.Render("No counters yet.\n\nPress 'n' to add one, or run 'tasbih template add after-salah'.")
	}

	var lines []string
	if tasbih.Arabic != "" {
		lines = append(lines, arabicStyle.Render(tasbih.Arabic))
	}
	if tasbih.Transliteration != "" {
		lines = append(lines, translitStyle.Render(tasbih.Transliteration))
	}
	lines = append(lines, tasbih.Name, "")

	countText := fmt.Sprintf("%d / %d", tasbih.CurrentCount, tasbih.TargetCount)
	if m.flashing {
		lines = append(lines, flashCountStyle.Render(countText))
	} else if tasbih.TargetReached() {
		lines = append(lines, completedStyle.Render(countText))
	} else {
		lines = append(lines, countStyle.Render(countText))
	}

	percent := float64(tasbih.CurrentCount) / float64(tasbih.TargetCount)
	if percent > 1 {
		percent = 1
	}
	lines = append(lines, "", m.progress.ViewAs(percent))

	if m.statusMsg != "" {
		lines = append(lines, "", m.statusMsg)
	}

	block := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if m.width > 0 && m.height > 4 {
		return lipgloss.Place(m.width, m.height-4, lipgloss.Center, lipgloss.Center, block)
	}
	return docStyle.Render(block)
}

func (m Model) viewCounters() string {
	if len(m.tasbihs) == 0 {
		return docStyle.Render("No counters yet. Press 'n' to add one.")
	}

	var b strings.Builder
	for i, t := range m.tasbihs {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		marker := " "
		if t.ID == m.activeID {
			marker = "*"
		}
		line := fmt.Sprintf("%s%s %-30s %4d/%-4d  %d sessions", cursor, marker, t.Name, t.CurrentCount, t.TargetCount, len(t.History))
		if i == m.cursor {
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("enter: count with selected   n: new   d: delete"))
	if m.statusMsg != "" {
		b.WriteString("\n\n" + m.statusMsg)
	}
	return docStyle.Render(b.String())
}

func (m Model) viewStats() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Current streak:      %d day(s)\n", m.streak)
	fmt.Fprintf(&b, "Lifetime count:      %d\n", m.totals.TotalLifetimeCount)
	fmt.Fprintf(&b, "Completed sessions:  %d\n", m.totals.TotalCompletedSessions)
	fmt.Fprintf(&b, "Estimated time:      ~%d min\n", m.totals.EstimatedTimeMinutes)
	if m.totals.MostUsedTasbih != "" {
		fmt.Fprintf(&b, "Most used:           %s (%d)\n", m.totals.MostUsedTasbih, m.totals.MostUsedCount)
	}
	b.WriteString("\nRolling averages:\n")
	fmt.Fprintf(&b, "  Today:             %d\n", m.averages.Daily)
	fmt.Fprintf(&b, "  Per day (7d):      %d\n", m.averages.Weekly)
	fmt.Fprintf(&b, "  Per day (30d):     %d\n", m.averages.Monthly)
	return docStyle.Render(b.String())
}

func (m Model) viewConfirmDelete() string {
	name := ""
	if m.deleteTarget != nil {
		name = m.deleteTarget.Name
	}
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete counter %q and its history?", name)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
