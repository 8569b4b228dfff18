package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"

	"list-root/casc/centry"
	"list-root/report"
)

const (
	headerLines       = 4
	defaultPageHeight = 20
)

// browseModes are cycled through with tab.
var browseModes = []report.Mode{report.ModeAll, report.ModeKnown, report.ModeUnknown}

type TableBrowser struct {
	entries  []centry.Entry
	visible  []centry.Entry
	modeIdx  int
	cursor   int
	offset   int
	height   int
	quitting bool
}

func CreateTableBrowser(entries []centry.Entry) TableBrowser {
	return TableBrowser{
		entries: entries,
		visible: entries,
		height:  defaultPageHeight,
	}
}

func (s TableBrowser) Mode() report.Mode {
	return browseModes[s.modeIdx]
}

func (s TableBrowser) Cursor() int {
	return s.cursor
}

func (s TableBrowser) Visible() []centry.Entry {
	return s.visible
}

func (s TableBrowser) moveCursor(delta int) TableBrowser {
	if len(s.visible) == 0 {
		s.cursor, s.offset = 0, 0
		return s
	}
	s.cursor = lo.Max([]int{lo.Min([]int{s.cursor + delta, len(s.visible) - 1}), 0})
	if s.cursor < s.offset {
		s.offset = s.cursor
	}
	if s.cursor >= s.offset+s.height {
		s.offset = s.cursor - s.height + 1
	}
	return s
}

func (s TableBrowser) cycleMode() TableBrowser {
	s.modeIdx = (s.modeIdx + 1) % len(browseModes)
	s.visible = report.Filter(s.entries, s.Mode())
	s.cursor, s.offset = 0, 0
	return s
}

func (s TableBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.height = lo.Max([]int{msg.Height - headerLines, 1})
		return s.moveCursor(0), nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			s.quitting = true
			return s, tea.Quit
		case "up", "k":
			return s.moveCursor(-1), nil
		case "down", "j":
			return s.moveCursor(1), nil
		case "pgup":
			return s.moveCursor(-s.height), nil
		case "pgdown", " ":
			return s.moveCursor(s.height), nil
		case "home", "g":
			return s.moveCursor(-len(s.visible)), nil
		case "end", "G":
			return s.moveCursor(len(s.visible)), nil
		case "tab":
			return s.cycleMode(), nil
		}
	}
	return s, nil
}

func (s TableBrowser) Init() tea.Cmd {
	return nil
}

func (s TableBrowser) View() string {
	if s.quitting {
		return ""
	}
	builder := strings.Builder{}
	builder.WriteString("LIST ROOT\n")
	builder.WriteString(
		fmt.Sprintf(
			"Showing %s: %d of %d entries (tab: filter, q: quit)\n\n",
			s.Mode(), len(s.visible), len(s.entries),
		),
	)
	end := lo.Min([]int{s.offset + s.height, len(s.visible)})
	for i := s.offset; i < end; i++ {
		marker := "  "
		if i == s.cursor {
			marker = "> "
		}
		builder.WriteString(marker + report.FormatLine(s.visible[i]) + "\n")
	}
	return builder.String()
}
