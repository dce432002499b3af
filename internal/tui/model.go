package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskroll/internal/taskstore"
	"taskroll/internal/ui"
)

const (
	focusDescription = iota
	focusDue
	focusDifficulty
	focusList
	focusCount
)

type boardModel struct {
	store *taskstore.Store
	keys  keyMap
	now   func() time.Time

	width  int
	height int

	inputs []textinput.Model
	focus  int

	rows   []taskstore.Row
	cursor int

	// nextFire reports the armed midnight; nil when no scheduler runs.
	nextFire func() (time.Time, bool)
	lastLog  string
}

// rolloverMsg is sent by the midnight scheduler after it has rolled the
// store over.
type rolloverMsg struct {
	at          time.Time
	decremented int
}

func newBoardModel(store *taskstore.Store) boardModel {
	placeholders := []string{"Task", "Due (days)", "Difficulty (1-5)"}
	widths := []int{28, 10, 16}
	inputs := make([]textinput.Model, len(placeholders))
	for i, p := range placeholders {
		in := textinput.New()
		in.Placeholder = p
		in.Prompt = ""
		in.Width = widths[i]
		if i > 0 {
			in.CharLimit = 6
		}
		inputs[i] = in
	}
	inputs[focusDescription].Focus()

	m := boardModel{
		store:   store,
		keys:    defaultKeyMap(),
		now:     time.Now,
		inputs:  inputs,
		focus:   focusDescription,
		lastLog: "Ready.",
	}
	m.refresh()
	return m
}

func (m boardModel) Init() tea.Cmd {
	return textinput.Blink
}

// refresh re-pulls the projection after every store call.
func (m *boardModel) refresh() {
	m.rows = m.store.Project()
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *boardModel) setFocus(f int) tea.Cmd {
	m.focus = (f + focusCount) % focusCount
	var cmd tea.Cmd
	for i := range m.inputs {
		if i == m.focus {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return cmd
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case rolloverMsg:
		m.refresh()
		m.lastLog = fmt.Sprintf("Midnight rollover at %s: %d due dates moved.", msg.at.Format("2006-01-02 15:04"), msg.decremented)
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		switch {
		case key.Matches(msg, m.keys.Next):
			return m, m.setFocus(m.focus + 1)
		case key.Matches(msg, m.keys.Prev):
			return m, m.setFocus(m.focus - 1)
		}
		if m.focus == focusList {
			return m.updateList(msg)
		}
		return m.updateForm(msg)
	}

	if m.focus != focusList {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m boardModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m, m.setFocus(focusList)
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// submit hands the raw field text to the store. Rejected input leaves the
// list and the fields as they were.
func (m boardModel) submit() (tea.Model, tea.Cmd) {
	t, err := m.store.Add(
		m.inputs[focusDescription].Value(),
		m.inputs[focusDue].Value(),
		m.inputs[focusDifficulty].Value(),
	)
	if err != nil {
		var verr *taskstore.ValidationError
		if errors.As(err, &verr) {
			m.lastLog = fmt.Sprintf("Not added: %s %s.", verr.Field, verr.Reason)
		} else {
			m.lastLog = "Not added: " + err.Error()
		}
		return m, nil
	}

	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.refresh()
	m.lastLog = fmt.Sprintf("Added %q (prio %.2f).", t.Description, t.Priority)
	return m, m.setFocus(focusDescription)
}

func (m boardModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		return m, nil
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		if !m.store.Select(m.cursor) {
			m.lastLog = "Nothing to select."
			return m, nil
		}
		m.refresh()
		if idx, ok := m.store.Selected(); ok {
			m.lastLog = fmt.Sprintf("Selected #%d.", idx+1)
		} else {
			m.lastLog = "Selection cleared."
		}
	case key.Matches(msg, m.keys.Remove):
		if !m.store.Remove() {
			m.lastLog = "Select a task to remove first."
			return m, nil
		}
		m.refresh()
		m.lastLog = ui.IconRemove + " Removed."
	case key.Matches(msg, m.keys.Sort):
		m.store.Sort()
		m.refresh()
		m.cursor = 0
		m.lastLog = "Sorted by priority."
	case key.Matches(msg, m.keys.Rollover):
		n := m.store.Rollover()
		m.refresh()
		m.lastLog = fmt.Sprintf("Rolled over one day: %d due dates moved.", n)
	}
	return m, nil
}

func (m boardModel) View() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderForm())
	b.WriteString("\n")
	b.WriteString(m.renderList())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m boardModel) renderHeader() string {
	head := ui.Heading(ui.IconList, "taskroll") + ui.Muted.Render(fmt.Sprintf("  %d tasks", len(m.rows)))
	if m.nextFire == nil {
		return head
	}
	next, ok := m.nextFire()
	if !ok {
		return head
	}
	wait := next.Sub(m.now()).Round(time.Minute)
	if wait < 0 {
		wait = 0
	}
	return head + ui.Muted.Render(fmt.Sprintf("  %s next rollover %s (in %s)", ui.IconClock, next.Format("Mon 15:04"), wait))
}

func (m boardModel) renderForm() string {
	labels := []string{"Task", "Due", "Diff"}
	fields := make([]string, len(m.inputs))
	for i := range m.inputs {
		label := ui.Muted.Render(labels[i] + " ")
		if i == m.focus {
			label = ui.Key.Render(labels[i] + " ")
		}
		fields[i] = label + m.inputs[i].View()
	}
	style := ui.Panel
	if m.focus != focusList {
		style = ui.PanelFocus
	}
	return style.Render(strings.Join(fields, "   "))
}

func (m boardModel) renderList() string {
	lines := []string{ui.H2.Render("Tasks")}
	if len(m.rows) == 0 {
		lines = append(lines, ui.Muted.Render("(no tasks; fill the form and press enter)"))
	}
	for i, row := range m.rows {
		cursor := "  "
		if m.focus == focusList && i == m.cursor {
			cursor = ui.IconPointer + " "
		}
		dot := ui.PriorityStyle(row.Priority).Render("●")
		lines = append(lines, cursor+dot+" "+ui.RowText(row.Label, row.Selected))
	}
	style := ui.Panel
	if m.focus == focusList {
		style = ui.PanelFocus
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (m boardModel) renderFooter() string {
	bindings := m.keys.formHelp()
	if m.focus == focusList {
		bindings = m.keys.listHelp()
	}
	var help []string
	for _, b := range bindings {
		h := b.Help()
		help = append(help, ui.Key.Render(h.Key)+" "+ui.Muted.Render(h.Desc))
	}
	return strings.Join(help, "  ") + "\n" + m.lastLog
}
