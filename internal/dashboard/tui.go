package dashboard

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/haamee/haamee-api/internal/domain"
)

type screen int

const (
	screenLogin screen = iota
	screenMenu
	screenPersons
	screenOrganizations
	screenEvents
	screenApplications
	screenPayments
)

var menuEntries = []struct {
	label  string
	target screen
}{
	{"Persons", screenPersons},
	{"Organizations", screenOrganizations},
	{"Events", screenEvents},
	{"Applications", screenApplications},
	{"Payments", screenPayments},
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
)

type loginDoneMsg struct {
	admin domain.Admin
}

type refreshDoneMsg struct{}

type exportDoneMsg struct {
	path string
}

type errMsg struct {
	err error
}

// Model is the root bubbletea model. It owns the screen router and one
// table per entity screen, all fed from the shared Store.
type Model struct {
	client *Client
	store  *Store

	current screen
	cursor  int
	status  string
	errText string

	username textinput.Model
	password textinput.Model
	focused  int

	filter    textinput.Model
	filtering bool

	tables map[screen]*table.Model
	rows   map[screen][]table.Row
}

func NewModel(client *Client) Model {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 50
	username.Width = 30
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 50
	password.Width = 30
	password.EchoMode = textinput.EchoPassword

	filter := textinput.New()
	filter.Placeholder = "filter"
	filter.CharLimit = 50
	filter.Width = 30

	tables := map[screen]*table.Model{
		screenPersons:       newTable("ID", "First Name", "Last Name", "Mobile", "City"),
		screenOrganizations: newTable("ID", "Name", "Type", "City", "Phone"),
		screenEvents:        newTable("ID", "Title", "Type", "Start", "Location"),
		screenApplications:  newTable("ID", "Applicant", "Type", "Status", "Amount"),
		screenPayments:      newTable("ID", "Title", "Category", "Amount", "Status"),
	}

	return Model{
		client:   client,
		store:    NewStore(client),
		current:  screenLogin,
		username: username,
		password: password,
		filter:   filter,
		tables:   tables,
		rows:     make(map[screen][]table.Row),
	}
}

func newTable(columns ...string) *table.Model {
	cols := make([]table.Column, len(columns))
	for i, title := range columns {
		width := 20
		if title == "ID" {
			width = 6
		}
		cols[i] = table.Column{Title: title, Width: width}
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	return &t
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginDoneMsg:
		m.status = fmt.Sprintf("Signed in as %v", msg.admin.Username)
		m.errText = ""
		m.current = screenMenu
		return m, m.refreshCmd()

	case refreshDoneMsg:
		m.errText = ""
		m.reloadTables()
		return m, nil

	case exportDoneMsg:
		m.status = fmt.Sprintf("Exported to %v", msg.path)
		m.errText = ""
		return m, nil

	case errMsg:
		m.errText = msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		switch m.current {
		case screenLogin:
			return m.updateLogin(msg)
		case screenMenu:
			return m.updateMenu(msg)
		default:
			return m.updateList(msg)
		}
	}

	return m, nil
}

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab", "shift+tab":
		m.focused = (m.focused + 1) % 2
		if m.focused == 0 {
			m.username.Focus()
			m.password.Blur()
		} else {
			m.username.Blur()
			m.password.Focus()
		}
		return m, nil
	case "enter":
		username := m.username.Value()
		password := m.password.Value()
		return m, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			admin, err := m.client.Login(ctx, username, password)
			if err != nil {
				return errMsg{err}
			}
			return loginDoneMsg{admin}
		}
	}

	var cmd tea.Cmd
	if m.focused == 0 {
		m.username, cmd = m.username.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}

	return m, cmd
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(menuEntries)-1 {
			m.cursor++
		}
	case "r":
		return m, m.refreshCmd()
	case "enter":
		m.current = menuEntries[m.cursor].target
		m.errText = ""
	}

	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filtering {
		switch msg.String() {
		case "esc":
			m.filtering = false
			m.filter.Blur()
			m.filter.SetValue("")
			m.applyFilter(m.current)
			return m, nil
		case "enter":
			m.filtering = false
			m.filter.Blur()
			return m, nil
		}

		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.applyFilter(m.current)

		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.filter.SetValue("")
		m.applyFilter(m.current)
		// Back always lands on the menu, regardless of history.
		m.current = screenMenu
		return m, nil
	case "/":
		m.filtering = true
		m.filter.Focus()
		return m, textinput.Blink
	case "r":
		return m, m.refreshCmd()
	case "d":
		return m, m.deleteSelectedCmd()
	case "e":
		if m.current == screenApplications {
			return m, m.exportCmd()
		}
	}

	t := m.tables[m.current]
	updated, cmd := t.Update(msg)
	*t = updated

	return m, cmd
}

func (m Model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := m.store.Refresh(ctx); err != nil {
			return errMsg{err}
		}
		return refreshDoneMsg{}
	}
}

func (m Model) deleteSelectedCmd() tea.Cmd {
	t := m.tables[m.current]
	row := t.SelectedRow()
	if row == nil {
		return nil
	}

	id, err := strconv.ParseUint(row[0], 10, 64)
	if err != nil {
		return nil
	}

	current := m.current
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		var deleteErr error
		switch current {
		case screenPersons:
			deleteErr = m.store.DeletePerson(ctx, uint(id))
		case screenOrganizations:
			deleteErr = m.store.DeleteOrganization(ctx, uint(id))
		case screenEvents:
			deleteErr = m.store.DeleteEvent(ctx, uint(id))
		case screenApplications:
			deleteErr = m.store.DeleteApplication(ctx, uint(id))
		case screenPayments:
			deleteErr = m.store.DeletePayment(ctx, uint(id))
		}
		if deleteErr != nil {
			return errMsg{deleteErr}
		}
		return refreshDoneMsg{}
	}
}

func (m Model) exportCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		data, err := m.client.ExportApplicationsCSV(ctx, "", "", "")
		if err != nil {
			return errMsg{err}
		}

		path := fmt.Sprintf("applications-%v.csv", time.Now().Format("20060102-150405"))
		if err = os.WriteFile(path, data, 0o644); err != nil {
			return errMsg{err}
		}
		return exportDoneMsg{path}
	}
}

func (m *Model) reloadTables() {
	personRows := make([]table.Row, 0, len(m.store.Persons()))
	for _, p := range m.store.Persons() {
		personRows = append(personRows, table.Row{
			strconv.FormatUint(uint64(p.ID), 10), p.FirstName, p.LastName, p.Mobile, p.City,
		})
	}
	m.rows[screenPersons] = personRows

	orgRows := make([]table.Row, 0, len(m.store.Organizations()))
	for _, o := range m.store.Organizations() {
		orgRows = append(orgRows, table.Row{
			strconv.FormatUint(uint64(o.ID), 10), o.Name, o.Type, o.City, o.Phone,
		})
	}
	m.rows[screenOrganizations] = orgRows

	eventRows := make([]table.Row, 0, len(m.store.Events()))
	for _, e := range m.store.Events() {
		eventRows = append(eventRows, table.Row{
			strconv.FormatUint(uint64(e.ID), 10), e.Title, e.Type, e.StartDate, e.Location,
		})
	}
	m.rows[screenEvents] = eventRows

	applicationRows := make([]table.Row, 0, len(m.store.Applications()))
	for _, a := range m.store.Applications() {
		applicationRows = append(applicationRows, table.Row{
			strconv.FormatUint(uint64(a.ID), 10), a.ApplicantName, a.RequestType, a.Status, a.ApprovedAmount,
		})
	}
	m.rows[screenApplications] = applicationRows

	paymentRows := make([]table.Row, 0, len(m.store.Payments()))
	for _, p := range m.store.Payments() {
		paymentRows = append(paymentRows, table.Row{
			strconv.FormatUint(uint64(p.ID), 10), p.Title, p.PaymentCategory, p.Amount, p.Status,
		})
	}
	m.rows[screenPayments] = paymentRows

	for s := range m.tables {
		m.applyFilter(s)
	}
}

// applyFilter narrows a screen's table to rows containing the filter text
// in any cell, case-insensitively. An empty filter shows everything.
func (m *Model) applyFilter(s screen) {
	t, ok := m.tables[s]
	if !ok {
		return
	}

	needle := strings.ToLower(m.filter.Value())
	if needle == "" {
		t.SetRows(m.rows[s])
		return
	}

	filtered := make([]table.Row, 0, len(m.rows[s]))
	for _, row := range m.rows[s] {
		for _, cell := range row {
			if strings.Contains(strings.ToLower(cell), needle) {
				filtered = append(filtered, row)
				break
			}
		}
	}
	t.SetRows(filtered)
}

func (m Model) View() string {
	switch m.current {
	case screenLogin:
		return m.viewLogin()
	case screenMenu:
		return m.viewMenu()
	default:
		return m.viewList()
	}
}

func (m Model) viewLogin() string {
	view := titleStyle.Render("Haamee Dashboard") + "\n\n"
	view += m.username.View() + "\n"
	view += m.password.View() + "\n"
	if m.errText != "" {
		view += "\n" + errorStyle.Render(m.errText)
	}
	view += helpStyle.Render("\ntab: switch field • enter: sign in • ctrl+c: quit")

	return view
}

func (m Model) viewMenu() string {
	view := titleStyle.Render("Haamee Dashboard") + "\n\n"
	for i, entry := range menuEntries {
		cursor := "  "
		line := entry.label
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
			line = cursorStyle.Render(line)
		}
		view += cursor + line + "\n"
	}
	if m.status != "" {
		view += "\n" + statusStyle.Render(m.status)
	}
	if m.errText != "" {
		view += "\n" + errorStyle.Render(m.errText)
	}
	view += helpStyle.Render("\nenter: open • r: reload • q: quit")

	return view
}

func (m Model) viewList() string {
	title := ""
	for _, entry := range menuEntries {
		if entry.target == m.current {
			title = entry.label
		}
	}

	view := titleStyle.Render(title) + "\n\n"
	if m.filtering || m.filter.Value() != "" {
		view += m.filter.View() + "\n\n"
	}
	view += m.tables[m.current].View() + "\n"
	if m.status != "" {
		view += "\n" + statusStyle.Render(m.status)
	}
	if m.errText != "" {
		view += "\n" + errorStyle.Render(m.errText)
	}

	help := "esc: menu • /: filter • r: reload • d: delete selected"
	if m.current == screenApplications {
		help += " • e: export CSV"
	}
	view += helpStyle.Render("\n" + help)

	return view
}
