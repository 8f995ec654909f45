package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/jaskraffle/internal/raffle"
)

const (
	defaultWidth  = 80
	minPanelWidth = 20
	// rows used by the tab bar, panel chrome, help and status lines
	chromeRows = 12
)

func (a *App) View() string {
	if !a.state.Running() {
		return ""
	}
	width := a.width
	if width <= 0 {
		width = defaultWidth
	}

	var body string
	switch tab := a.state.ActiveTab(); tab {
	case raffle.TabHome:
		body = a.renderHome(width)
	case raffle.TabRoster:
		body = a.renderRoster(width)
	case raffle.TabSpin:
		body = a.renderSpin(width)
	default:
		body = panelStyle.Render("unknown tab " + tab.String())
	}

	status := statusStyle.Render(a.status)
	if a.statusErr {
		status = errorStyle.Render(a.status)
	}
	return lipgloss.JoinVertical(lipgloss.Left, a.renderTabs(), "", body, a.help.View(a.keys), status)
}

func (a *App) renderTabs() string {
	set := a.state.Tabs()
	parts := make([]string, 0, len(set.Tabs())*2)
	for i, t := range set.Tabs() {
		if i > 0 {
			parts = append(parts, tabGapStyle.Render("│"))
		}
		if i == set.Index() {
			parts = append(parts, activeTabStyle.Render(t.String()))
			continue
		}
		parts = append(parts, tabStyle.Render(t.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (a *App) renderHome(width int) string {
	lines := []string{
		bannerStyle.Render("R.A.F.F.L.E."),
		"",
		subtitleStyle.Render("( Rapidly Assembled Faulty Fortune Locator Engine )"),
		"",
		"",
	}
	if a.source != "" {
		lines = append(lines, fmt.Sprintf("Roster: %s", valueStyle.Render(a.source)))
	}
	lines = append(lines, fmt.Sprintf("%s participants", valueStyle.Render(fmt.Sprint(a.state.RosterLen()))))
	if len(a.warnings) > 0 {
		lines = append(lines, "")
		for _, w := range a.warnings {
			lines = append(lines, warningStyle.Render("⚠ "+w))
		}
	}
	lines = append(lines,
		"",
		"",
		"Press "+keyStyle.Render("Ctrl-C")+" or "+keyStyle.Render("q")+" to exit.",
	)
	return panelStyle.Width(panelWidth(width)).Align(lipgloss.Center).Render(strings.Join(lines, "\n"))
}

func (a *App) renderRoster(width int) string {
	inner := panelWidth(width)
	listWidth := max(inner*30/100, minPanelWidth)
	detailWidth := max(inner-listWidth-2, minPanelWidth)

	roster := a.state.Roster()
	selected, selIdx, hasSel := a.state.Selected()

	start, end := visibleWindow(len(roster), selIdx, hasSel, a.visibleRows())
	rows := []string{titleStyle.Render("All participants"), ""}
	if len(roster) == 0 {
		rows = append(rows, statusStyle.Render("(no participants)"))
	}
	labelWidth := max(listWidth-8, 4)
	for i := start; i < end; i++ {
		p := roster[i]
		label := ansi.Truncate(p.String(), labelWidth, "…")
		switch {
		case hasSel && i == selIdx:
			rows = append(rows, selectedStyle.Render("▶ "+label))
		case p.IsWinner:
			rows = append(rows, winnerStyle.Render("  "+label))
		default:
			rows = append(rows, itemStyle.Render("  "+label))
		}
	}
	list := panelStyle.Width(listWidth).Render(strings.Join(rows, "\n"))

	details := []string{
		titleStyle.Render("Details"),
		"",
		fmt.Sprintf("%s participants", valueStyle.Render(fmt.Sprint(len(roster)))),
	}
	if hasSel {
		details = append(details, "", "Selected participant: "+valueStyle.Render(ansi.Truncate(selected.Name, max(detailWidth-30, 4), "…")))
	}
	details = append(details,
		"",
		"",
		"Use "+keyStyle.Render("⬇")+" / "+keyStyle.Render("⬆")+" to select.",
		"",
		"Use "+keyStyle.Render("Backspace")+" to remove.",
	)
	detail := panelStyle.Width(detailWidth).Align(lipgloss.Center).Render(strings.Join(details, "\n"))

	return lipgloss.JoinHorizontal(lipgloss.Top, list, detail)
}

func (a *App) renderSpin(width int) string {
	inner := panelWidth(width)
	logWidth := max(inner*30/100, minPanelWidth)
	mainWidth := max(inner-logWidth-2, minPanelWidth)

	var main string
	if winner, ok := a.state.Winner(); ok {
		modal := modalStyle.Render(strings.Join([]string{
			titleStyle.Render("The winner is"),
			"",
			winner.String(),
			"",
			"🎉🎉🎉",
		}, "\n"))
		main = panelStyle.Width(mainWidth).Render(lipgloss.PlaceHorizontal(mainWidth-4, lipgloss.Center, modal))
	} else {
		lines := []string{titleStyle.Render("Spin the wheel"), ""}
		switch {
		case a.state.Spinning():
			name := "…"
			if p, _, ok := a.state.Highlighted(); ok {
				name = p.Name
			}
			lines = append(lines,
				spinStyle.Render("*spinning wheel noises*"),
				"",
				fmt.Sprintf("%s 🎲 %d", a.spinner.View(), a.state.RoundsRemaining()),
				"",
				"Will it be",
				valueStyle.Render(ansi.Truncate(name, max(mainWidth-8, 4), "…")),
				"?",
			)
		case a.state.RosterLen() == 0:
			lines = append(lines, "Nobody left to draw.")
		default:
			lines = append(lines,
				"Ready to roll.",
				"",
				"Press "+keyStyle.Render("s")+" to start the spin.",
			)
		}
		main = panelStyle.Width(mainWidth).Align(lipgloss.Center).Render(strings.Join(lines, "\n"))
	}

	winners := a.state.Winners()
	rows := []string{titleStyle.Render("Winners"), ""}
	if len(winners) == 0 {
		rows = append(rows, statusStyle.Render("(none yet)"))
	}
	labelWidth := max(logWidth-10, 4)
	for i, w := range winners {
		rows = append(rows, winnerStyle.Render(fmt.Sprintf("%d. %s", i+1, ansi.Truncate(w.Name, labelWidth, "…"))))
	}
	log := panelStyle.Width(logWidth).Render(strings.Join(rows, "\n"))

	return lipgloss.JoinHorizontal(lipgloss.Top, main, log)
}

func (a *App) visibleRows() int {
	if a.height <= 0 {
		return 0
	}
	return max(a.height-chromeRows, 1)
}

// visibleWindow returns the [start, end) slice of n rows that fits in
// rows lines and keeps the selection in view. rows <= 0 shows everything.
func visibleWindow(n, selected int, hasSelection bool, rows int) (int, int) {
	if rows <= 0 || n <= rows {
		return 0, n
	}
	start := 0
	if hasSelection && selected >= rows {
		start = selected - rows + 1
	}
	return start, start + rows
}

func panelWidth(width int) int {
	// border takes one column each side
	return max(width-2, minPanelWidth)
}
