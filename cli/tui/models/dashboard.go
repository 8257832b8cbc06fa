package models

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/metaclub/clubos-pitch/cli/tui/components"
	"github.com/metaclub/clubos-pitch/cli/tui/styles"
	"github.com/metaclub/clubos-pitch/cli/tui/views"
	"github.com/metaclub/clubos-pitch/engine/club"
	"github.com/metaclub/clubos-pitch/engine/rbac"
	"github.com/metaclub/clubos-pitch/engine/wheel"
	"github.com/metaclub/clubos-pitch/pkg/config"
	"github.com/metaclub/clubos-pitch/pkg/logger"
	"github.com/metaclub/clubos-pitch/pkg/notify"
)

// DashboardModel is the role-gated demo dashboard: a tab bar driven by
// the shared role store, with every pane rendered from the club
// fixtures. Switching roles live re-gates the tabs; losing access to
// the open tab falls back to the first visible one, and signing out
// locks the whole screen.
type DashboardModel struct {
	BaseModel
	cfg   *config.Config
	log   logger.Logger
	store *rbac.Store

	active    club.TabID
	toggle    components.RoleToggle
	statusBar components.StatusBarComponent
	shortcuts components.KeyboardShortcuts

	staffTable   components.StaffTableComponent
	staffDetail  *club.StaffMember
	picker       components.DateRangePicker
	editingShift bool
	apply        *ApplyModel
	tipFlash     string

	now func() time.Time
}

// tipFlashClearMsg removes the simulated tip confirmation after its flash
// window.
type tipFlashClearMsg struct{}

// NewDashboardModel creates the dashboard for the configured default role.
func NewDashboardModel(ctx context.Context, cfg *config.Config, notifier *notify.Notifier) *DashboardModel {
	role, _ := rbac.Parse(cfg.Demo.DefaultRole)
	store := rbac.NewStore(role)
	m := &DashboardModel{
		BaseModel:  NewBaseModel(ctx),
		cfg:        cfg,
		log:        logger.FromContext(ctx),
		store:      store,
		toggle:     components.NewRoleToggle(store),
		statusBar:  components.NewStatusBar(80),
		shortcuts:  components.NewKeyboardShortcuts(),
		staffTable: components.NewStaffTableComponent(club.Staff()),
		apply:      NewApplyModel(notifier),
		now:        time.Now,
	}
	if tab, ok := club.FallbackTab(store); ok {
		m.active = tab
	}
	return m
}

// Store exposes the role store, for tests and the tour handoff.
func (m *DashboardModel) Store() *rbac.Store {
	return m.store
}

// ActiveTab returns the open tab ID, empty when locked out.
func (m *DashboardModel) ActiveTab() club.TabID {
	return m.active
}

// Init implements tea.Model.
func (m *DashboardModel) Init() tea.Cmd {
	return m.apply.Init()
}

// Update implements tea.Model.
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd := m.BaseModel.Update(msg); cmd != nil {
		return m, cmd
	}
	if m.shortcuts.Visible {
		return m, m.shortcuts.Update(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.shortcuts.SetSize(msg.Width, msg.Height)
		m.staffTable.SetSize(msg.Width, msg.Height-8)
		var cmd tea.Cmd
		m.statusBar, cmd = m.statusBar.Update(msg)
		return m, cmd

	case components.StaffSelectedMsg:
		member := msg.Member
		m.staffDetail = &member
		return m, nil

	case tipFlashClearMsg:
		m.tipFlash = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, m.routeToTab(msg)
}

func (m *DashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The shift editor owns the keyboard while open.
	if m.editingShift && m.active == club.TabSchedule {
		if msg.String() == "esc" {
			m.editingShift = false
			m.picker = m.picker.Deactivate()
			return m, nil
		}
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}

	// Free-text surfaces (the form, the roster filter) own the letters.
	typing := (m.active == club.TabApply && !m.apply.Submitted()) ||
		(m.active == club.TabStaff && m.staffTable.Filtering())

	switch msg.String() {
	case "q":
		if typing {
			break
		}
		m.Quit()
		return m, tea.Quit
	case "?":
		m.shortcuts.Toggle()
		return m, nil
	case "r":
		if !typing {
			m.toggle.Next()
			return m, m.afterRoleChange()
		}
	case "R":
		if !typing {
			m.toggle.Prev()
			return m, m.afterRoleChange()
		}
	case "g":
		if !typing {
			m.toggle.SignOut()
			return m, m.afterRoleChange()
		}
	case "tab":
		if m.active != club.TabApply {
			m.cycleTab(1)
			return m, nil
		}
	case "shift+tab":
		if m.active != club.TabApply {
			m.cycleTab(-1)
			return m, nil
		}
	case "1", "2", "3", "4", "5", "6", "7", "8":
		if !typing {
			idx := int(msg.String()[0] - '1')
			if idx < len(club.NavItems) {
				m.openTab(club.NavItems[idx].ID)
			}
			return m, nil
		}
	case "e":
		if m.active == club.TabSchedule && !m.editingShift {
			m.openShiftEditor()
			return m, nil
		}
	case "t":
		if m.active == club.TabDashboard && !typing {
			return m, m.sendTip()
		}
	case "esc":
		if m.staffDetail != nil {
			m.staffDetail = nil
			return m, nil
		}
	}
	return m, m.routeToTab(msg)
}

// afterRoleChange re-gates the open tab against the new role.
func (m *DashboardModel) afterRoleChange() tea.Cmd {
	if m.store.IsGuest() {
		m.active = ""
		m.log.Info("signed out, dashboard locked")
		return nil
	}
	if m.active == "" || !club.CanOpen(m.store, m.active) {
		if tab, ok := club.FallbackTab(m.store); ok {
			role, _ := m.store.CurrentRole()
			m.log.Debug("tab access lost, falling back", "tab", m.active, "fallback", tab, "role", role)
			m.active = tab
		}
	}
	return nil
}

// openTab switches to the tab when the current role allows it.
func (m *DashboardModel) openTab(id club.TabID) {
	if !club.CanOpen(m.store, id) {
		return
	}
	if m.active == club.TabSchedule && id != club.TabSchedule {
		m.editingShift = false
	}
	m.active = id
}

func (m *DashboardModel) cycleTab(delta int) {
	visible := club.VisibleTabs(m.store)
	if len(visible) == 0 {
		return
	}
	current := 0
	for i, item := range visible {
		if item.ID == m.active {
			current = i
			break
		}
	}
	m.openTab(visible[(current+delta+len(visible))%len(visible)].ID)
}

// sendTip simulates a tip from the overview: no money moves, the demo
// just flashes a confirmation for two seconds.
func (m *DashboardModel) sendTip() tea.Cmd {
	m.tipFlash = "Tip sent ✓ L$100 to the club jar"
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return tipFlashClearMsg{}
	})
}

// openShiftEditor seeds the wheel picker from tonight's first shift.
func (m *DashboardModel) openShiftEditor() {
	now := m.now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 20, 0, 0, 0, now.Location())
	end := start.Add(4 * time.Hour)
	timings := wheel.Timings{
		SettleDebounce:       m.cfg.Wheel.SettleDebounce,
		SnapDuration:         m.cfg.Wheel.SnapDuration,
		ProgrammaticDuration: m.cfg.Wheel.ProgrammaticDuration,
	}
	m.picker = components.NewDateRangePicker(start, end, 7, m.cfg.Wheel.ItemHeight, timings, now.Location()).
		Activate()
	m.editingShift = true
}

// routeToTab forwards a message to the component owning the open tab.
func (m *DashboardModel) routeToTab(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.active {
	case club.TabStaff:
		m.staffTable, cmd = m.staffTable.Update(msg)
	case club.TabApply:
		cmd = m.apply.Update(msg)
	case club.TabSchedule:
		if m.editingShift {
			m.picker, cmd = m.picker.Update(msg)
		}
	}
	return cmd
}

// View implements tea.Model.
func (m *DashboardModel) View() string {
	if m.IsQuitting() {
		return ""
	}
	width, height := m.Size()
	if !m.IsReady() {
		width, height = 100, 40
	}
	if m.shortcuts.Visible {
		return m.shortcuts.View()
	}
	if m.store.IsGuest() {
		return m.lockoutView(width, height)
	}

	role, _ := m.store.CurrentRole()
	bar := m.statusBar.SetRole(role, false).
		SetCenter(m.cfg.Demo.ClubName).
		View()

	return lipgloss.JoinVertical(lipgloss.Left,
		m.tabBar(),
		m.toggle.View(),
		m.tabContent(width, height),
		bar,
	)
}

func (m *DashboardModel) tabBar() string {
	var out string
	for i, item := range club.NavItems {
		label := item.Label
		switch {
		case !club.CanOpen(m.store, item.ID):
			continue
		case item.ID == m.active:
			label = styles.Selected.Render("[" + label + "]")
		default:
			label = styles.Help.Render(label)
		}
		out += styles.Help.Render(string(rune('1'+i))) + label + "  "
	}
	return out
}

func (m *DashboardModel) tabContent(width, height int) string {
	now := m.now()
	switch m.active {
	case club.TabDashboard:
		content := views.Overview(m.store, now, width)
		footer := styles.Help.Render("t: send a tip (simulated)")
		if m.tipFlash != "" {
			footer = styles.Selected.Render(m.tipFlash)
		}
		return lipgloss.JoinVertical(lipgloss.Left, content, footer)
	case club.TabSchedule:
		content := views.Schedule(m.store, now)
		if m.editingShift {
			editor := styles.Title.Render("Edit Shift") + "\n" + m.picker.View() +
				"\n" + styles.Help.Render("←/→ wheel  ↑/↓ scroll  esc done")
			return lipgloss.JoinVertical(lipgloss.Left, content, editor)
		}
		return lipgloss.JoinVertical(lipgloss.Left, content,
			styles.Help.Render("e: edit tonight's shift"))
	case club.TabStaff:
		if m.staffDetail != nil {
			return m.staffDetailView()
		}
		return m.staffTable.View()
	case club.TabAnalytics:
		return views.Analytics(width)
	case club.TabEvents:
		return views.Events(now)
	case club.TabSettings:
		return views.Settings(m.cfg, m.store)
	case club.TabLogs:
		return lipgloss.JoinVertical(lipgloss.Left, views.Logs(now), views.Expenses())
	case club.TabApply:
		return m.apply.View()
	}
	return ""
}

func (m *DashboardModel) staffDetailView() string {
	d := m.staffDetail
	body := styles.Title.Render(d.DisplayName) + "  " + styles.RoleBadge(d.Role) + "\n" +
		styles.Subtitle.Render(d.SLName) + "\n\n" +
		d.Bio + "\n\n" +
		styles.Help.Render("joined "+d.JoinedDate) + "\n" +
		styles.Help.Render("esc: back to roster")
	return styles.Panel.BorderForeground(styles.RoleColor(d.Role)).Render(body)
}

func (m *DashboardModel) lockoutView(width, height int) string {
	card := styles.Panel.BorderForeground(styles.NeonRed).Render(
		styles.Alert.Render("Signed out") + "\n\n" +
			"The dashboard is role-gated — guests see nothing.\n" +
			styles.Help.Render("r: sign in as a role  q: quit"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
