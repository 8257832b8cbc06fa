package components

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/metaclub/clubos-pitch/cli/tui/styles"
	"github.com/metaclub/clubos-pitch/engine/club"
)

// StaffSelectedMsg is emitted when a roster row is chosen.
type StaffSelectedMsg struct {
	Member club.StaffMember
}

// StaffTableComponent is the interactive staff roster table.
type StaffTableComponent struct {
	table   table.Model
	members []club.StaffMember
	rows    []table.Row

	sortColumn    string
	sortAscending bool
	filterInput   textinput.Model
	filtering     bool

	width  int
	height int
	keyMap StaffTableKeyMap
}

// StaffTableKeyMap defines key bindings for the staff table
type StaffTableKeyMap struct {
	SortByName  key.Binding
	SortByRole  key.Binding
	SortByTips  key.Binding
	SortByHours key.Binding
	Filter      key.Binding
	ClearFilter key.Binding
	Select      key.Binding
}

// DefaultStaffTableKeyMap returns the default key bindings
func DefaultStaffTableKeyMap() StaffTableKeyMap {
	return StaffTableKeyMap{
		SortByName:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "sort by name")),
		SortByRole:  key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "sort by role")),
		SortByTips:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "sort by tips")),
		SortByHours: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "sort by hours")),
		Filter:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		ClearFilter: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear filter")),
		Select:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
	}
}

// NewStaffTableComponent creates a roster table over members.
func NewStaffTableComponent(members []club.StaffMember) StaffTableComponent {
	t := table.New(
		table.WithColumns(staffTableColumns()),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	t.SetStyles(staffTableStyles())
	input := textinput.New()
	input.Placeholder = "name or role"
	input.Prompt = "/"
	input.CharLimit = 24
	component := StaffTableComponent{
		table:         t,
		members:       members,
		sortColumn:    "name",
		sortAscending: true,
		filterInput:   input,
		keyMap:        DefaultStaffTableKeyMap(),
	}
	component.rebuildRows()
	return component
}

func staffTableColumns() []table.Column {
	return []table.Column{
		{Title: "Name", Width: 14},
		{Title: "Role", Width: 16},
		{Title: "Status", Width: 8},
		{Title: "Hours", Width: 6},
		{Title: "Tips L$", Width: 8},
		{Title: "Rating", Width: 6},
	}
}

func staffTableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.TextDim).
		BorderBottom(true).
		Bold(true).
		Foreground(styles.NeonCyan)
	s.Selected = s.Selected.
		Foreground(styles.NeonGreen).
		Bold(true)
	return s
}

// SetSize sets the table size
func (st *StaffTableComponent) SetSize(width, height int) {
	st.width = width
	st.height = height
	if h := height - 4; h > 1 {
		st.table.SetHeight(h)
	}
}

// Filtering reports whether the filter input is capturing keys.
func (st *StaffTableComponent) Filtering() bool {
	return st.filtering
}

// Selected returns the member under the cursor.
func (st *StaffTableComponent) Selected() *club.StaffMember {
	cursor := st.table.Cursor()
	if cursor < 0 || cursor >= len(st.rows) {
		return nil
	}
	name := st.rows[cursor][0]
	for i := range st.members {
		if st.members[i].DisplayName == name {
			return &st.members[i]
		}
	}
	return nil
}

// Update handles sorting, filtering and row selection.
func (st *StaffTableComponent) Update(msg tea.Msg) (StaffTableComponent, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if st.filtering {
			return st.updateFilterInput(keyMsg)
		}
		switch {
		case key.Matches(keyMsg, st.keyMap.SortByName):
			st.setSortColumn("name")
		case key.Matches(keyMsg, st.keyMap.SortByRole):
			st.setSortColumn("role")
		case key.Matches(keyMsg, st.keyMap.SortByTips):
			st.setSortColumn("tips")
		case key.Matches(keyMsg, st.keyMap.SortByHours):
			st.setSortColumn("hours")
		case key.Matches(keyMsg, st.keyMap.Filter):
			st.filtering = true
			return *st, st.filterInput.Focus()
		case key.Matches(keyMsg, st.keyMap.ClearFilter):
			st.filterInput.Reset()
			st.rebuildRows()
		case key.Matches(keyMsg, st.keyMap.Select):
			if selected := st.Selected(); selected != nil {
				member := *selected
				return *st, func() tea.Msg {
					return StaffSelectedMsg{Member: member}
				}
			}
		}
	}
	var cmd tea.Cmd
	st.table, cmd = st.table.Update(msg)
	return *st, cmd
}

func (st *StaffTableComponent) updateFilterInput(msg tea.KeyMsg) (StaffTableComponent, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		st.filtering = false
		st.filterInput.Blur()
		if msg.Type == tea.KeyEsc {
			st.filterInput.Reset()
		}
		st.rebuildRows()
		return *st, nil
	}
	var cmd tea.Cmd
	st.filterInput, cmd = st.filterInput.Update(msg)
	st.rebuildRows()
	return *st, cmd
}

func (st *StaffTableComponent) setSortColumn(column string) {
	if st.sortColumn == column {
		st.sortAscending = !st.sortAscending
	} else {
		st.sortColumn = column
		st.sortAscending = true
	}
	st.rebuildRows()
}

func (st *StaffTableComponent) rebuildRows() {
	members := make([]club.StaffMember, 0, len(st.members))
	term := strings.ToLower(st.filterInput.Value())
	for _, m := range st.members {
		if term == "" ||
			strings.Contains(strings.ToLower(m.DisplayName), term) ||
			strings.Contains(strings.ToLower(string(m.Role)), term) {
			members = append(members, m)
		}
	}
	sort.SliceStable(members, func(i, j int) bool {
		a, b := members[i], members[j]
		if !st.sortAscending {
			a, b = b, a
		}
		switch st.sortColumn {
		case "role":
			return a.Role.Rank() < b.Role.Rank()
		case "tips":
			return a.TipsThisWeek < b.TipsThisWeek
		case "hours":
			return a.HoursThisWeek < b.HoursThisWeek
		default:
			return a.DisplayName < b.DisplayName
		}
	})

	rows := make([]table.Row, 0, len(members))
	for _, m := range members {
		rating := "—"
		if m.Rating > 0 {
			rating = fmt.Sprintf("%.1f", m.Rating)
		}
		rows = append(rows, table.Row{
			m.DisplayName,
			m.Role.Label(),
			string(m.OnlineStatus),
			fmt.Sprintf("%d", m.HoursThisWeek),
			fmt.Sprintf("%d", m.TipsThisWeek),
			rating,
		})
	}
	st.rows = rows
	st.table.SetRows(rows)
}

// View renders the roster table with its key hints.
func (st *StaffTableComponent) View() string {
	header := styles.Title.Render("Staff Roster") + "  " +
		styles.Help.Render(fmt.Sprintf("%d members", len(st.rows)))
	if st.filterInput.Value() != "" || st.filtering {
		header += "  " + st.filterInput.View()
	}
	hints := styles.Help.Render("n/o/t/u sort  / filter  enter details")
	return header + "\n" + st.table.View() + "\n" + hints
}
