package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/dispatch/internal/tour"
)

type tourState int

const (
	tourStateBrowse tourState = iota
	tourStateComplete
)

type routeFields struct {
	distance string
	fuel     string
	duration string
	notes    string
}

type TourModel struct {
	CommonModel
	tourService *tour.Service

	state  tourState
	table  table.Model
	tours  []*tour.Tour
	form   *huh.Form
	fields *routeFields

	statusFilterIdx int

	loading bool
	err     error
	status  string
}

var tourStatusFilters = []*tour.Status{
	nil,
	new(tour.StatusPlanned),
	new(tour.StatusInProgress),
	new(tour.StatusCompleted),
	new(tour.StatusCancelled),
}

func NewTourModel(tourSvc *tour.Service) TourModel {
	columns := []table.Column{
		{Title: "Number", Width: 16},
		{Title: "Date", Width: 12},
		{Title: "Status", Width: 12},
		{Title: "Stops", Width: 8},
		{Title: "Distance", Width: 10},
		{Title: "Hours", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	t.SetStyles(newTableStyles())

	return TourModel{
		tourService: tourSvc,
		table:       t,
		loading:     true,
	}
}

func (m TourModel) Title() string { return "Delivery Tours" }
func (m TourModel) ShortHelp() string {
	if m.state == tourStateComplete {
		return "Navigate form | Esc: cancel"
	}
	return "Esc: back | s: start | c: complete | x: cancel | f: status filter | r: refresh"
}

func (m TourModel) Init() tea.Cmd {
	return m.loadToursCmd()
}

func (m TourModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadToursMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.tours = msg.tours
		m.refreshTable()
		return m, nil

	case tourActionMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("Tour %s is now %s", msg.tour.Number, msg.tour.Status)
		}
		m.state = tourStateBrowse
		m.form = nil
		m.table.Focus()
		return m, m.loadToursCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case tourStateBrowse:
		return m.updateBrowse(msg)
	case tourStateComplete:
		return m.updateComplete(msg)
	}

	return m, nil
}

func (m TourModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadToursCmd()
		case "f":
			m.statusFilterIdx = (m.statusFilterIdx + 1) % len(tourStatusFilters)
			return m, m.loadToursCmd()
		case "s":
			if t := m.selected(); t != nil {
				return m, m.actionCmd(func(sc tour.Scope) (*tour.Tour, error) {
					ctx, cancel := DbCtx()
					defer cancel()
					return m.tourService.Start(ctx, sc, t.ID)
				})
			}
		case "x":
			if t := m.selected(); t != nil {
				return m, m.actionCmd(func(sc tour.Scope) (*tour.Tour, error) {
					ctx, cancel := DbCtx()
					defer cancel()
					return m.tourService.Cancel(ctx, sc, t.ID)
				})
			}
		case "c":
			return m.enterCompleteMode()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m TourModel) enterCompleteMode() (tea.Model, tea.Cmd) {
	if m.selected() == nil {
		return m, nil
	}

	m.fields = &routeFields{}

	optional := func(s string) error {
		if strings.TrimSpace(s) == "" {
			return nil
		}
		return validNonNegative(s)
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Distance (km)").
				Value(&m.fields.distance).
				Validate(optional),

			huh.NewInput().
				Title("Fuel consumed (L)").
				Value(&m.fields.fuel).
				Validate(optional),

			huh.NewInput().
				Title("Duration (hours)").
				Value(&m.fields.duration).
				Validate(optional),

			huh.NewText().
				Title("Notes").
				Value(&m.fields.notes),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = tourStateComplete
	m.status = ""
	m.table.Blur()
	return m, m.form.Init()
}

func (m TourModel) updateComplete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = tourStateBrowse
			m.form = nil
			m.table.Focus()
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	t := m.selected()
	if t == nil {
		return m, nil
	}

	route, err := m.fields.route()
	if err != nil {
		return m, func() tea.Msg { return tourActionMsg{err: err} }
	}

	return m, m.actionCmd(func(sc tour.Scope) (*tour.Tour, error) {
		ctx, cancel := DbCtx()
		defer cancel()
		return m.tourService.Complete(ctx, sc, t.ID, route)
	})
}

func (f *routeFields) route() (tour.RouteData, error) {
	var rd tour.RouteData

	for _, field := range []struct {
		name string
		in   string
		out  *decimal.Decimal
	}{
		{"distance", f.distance, &rd.DistanceKm},
		{"fuel", f.fuel, &rd.FuelConsumed},
		{"duration", f.duration, &rd.DurationHours},
	} {
		if strings.TrimSpace(field.in) == "" {
			continue
		}

		d, err := parseDecimal(field.in)
		if err != nil {
			return rd, fmt.Errorf("%s: %w", field.name, err)
		}
		*field.out = d
	}

	rd.Notes = strings.TrimSpace(f.notes)

	return rd, nil
}

func (m TourModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading tours...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	filterLabel := "All"
	if s := tourStatusFilters[m.statusFilterIdx]; s != nil {
		filterLabel = string(*s)
	}

	header := fmt.Sprintf("Filter: [f] Status: %s", activeStyle(filterLabel))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.state == tourStateComplete && m.form != nil {
		number := ""
		if t := m.selected(); t != nil {
			number = t.Number
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(fmt.Sprintf("Complete Tour\n\nTour: %s\n\n%s", number, m.form.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m TourModel) selected() *tour.Tour {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.tours) {
		return nil
	}

	return m.tours[idx]
}

func (m *TourModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.tours))
	for _, t := range m.tours {
		delivered := 0
		for _, s := range t.Stops {
			if s.Delivered {
				delivered++
			}
		}

		rows = append(rows, table.Row{
			t.Number,
			FormatDate(t.Date),
			string(t.Status),
			fmt.Sprintf("%d/%d", delivered, len(t.Stops)),
			t.DistanceKm.String(),
			t.DurationHours.String(),
		})
	}
	m.table.SetRows(rows)
}

// Messages

type loadToursMsg struct {
	tours []*tour.Tour
	err   error
}

func (m TourModel) loadToursCmd() tea.Cmd {
	filter := tour.ListFilter{Status: tourStatusFilters[m.statusFilterIdx]}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		tours, err := m.tourService.List(ctx, tour.Scope{}, filter)
		return loadToursMsg{tours: tours, err: err}
	}
}

type tourActionMsg struct {
	tour *tour.Tour
	err  error
}

// actionCmd runs fn with the unrestricted office scope.
func (m TourModel) actionCmd(fn func(tour.Scope) (*tour.Tour, error)) tea.Cmd {
	return func() tea.Msg {
		t, err := fn(tour.Scope{})
		return tourActionMsg{tour: t, err: err}
	}
}
