package view

import (
	"fmt"
	"slices"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/dispatch/internal/catalog"
	"github.com/MrJamesThe3rd/dispatch/internal/pricing"
)

// quoteFields is shared by the form and the model copies bubbletea makes.
type quoteFields struct {
	destinationID string
	serviceTypeID string
	weight        string
	volume        string
}

type QuoteModel struct {
	CommonModel
	catalogService *catalog.Service

	destinations map[string]*catalog.Destination
	serviceTypes map[string]*catalog.ServiceType

	form   *huh.Form
	fields *quoteFields
	quote  *pricing.Quote

	loading bool
	err     error
}

func NewQuoteModel(catalogSvc *catalog.Service) QuoteModel {
	return QuoteModel{
		catalogService: catalogSvc,
		fields:         &quoteFields{},
		loading:        true,
	}
}

func (m QuoteModel) Title() string { return "Price Quote" }
func (m QuoteModel) ShortHelp() string {
	if m.quote != nil {
		return "n: new quote | Esc: back"
	}
	return "Navigate form | Esc: back"
}

func (m QuoteModel) Init() tea.Cmd {
	return m.loadCatalogCmd()
}

func (m QuoteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadCatalogMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.destinations = msg.destinations
		m.serviceTypes = msg.serviceTypes
		return m.newForm()

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "n":
			if m.quote != nil || m.err != nil {
				return m.newForm()
			}
		}
	}

	if m.form == nil {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.quote, m.err = m.price()
	m.form = nil

	return m, nil
}

func (m QuoteModel) newForm() (tea.Model, tea.Cmd) {
	m.quote = nil
	m.err = nil
	m.fields = &quoteFields{weight: "0", volume: "0"}

	if len(m.destinations) == 0 || len(m.serviceTypes) == 0 {
		m.err = fmt.Errorf("the catalog needs at least one active destination and service type")
		return m, nil
	}

	destOpts := make([]huh.Option[string], 0, len(m.destinations))
	for id, d := range m.destinations {
		destOpts = append(destOpts, huh.NewOption(fmt.Sprintf("%s %s (%s)", d.Code, d.City, d.Zone), id))
	}

	svcOpts := make([]huh.Option[string], 0, len(m.serviceTypes))
	for id, st := range m.serviceTypes {
		svcOpts = append(svcOpts, huh.NewOption(fmt.Sprintf("%s %s (%d days)", st.Code, st.Name, st.DeliveryTimeDays), id))
	}

	byKey := func(a, b huh.Option[string]) int { return strings.Compare(a.Key, b.Key) }
	slices.SortFunc(destOpts, byKey)
	slices.SortFunc(svcOpts, byKey)

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Destination").
				Options(destOpts...).
				Value(&m.fields.destinationID),

			huh.NewSelect[string]().
				Title("Service type").
				Options(svcOpts...).
				Value(&m.fields.serviceTypeID),

			huh.NewInput().
				Title("Weight (kg)").
				Value(&m.fields.weight).
				Validate(validNonNegative),

			huh.NewInput().
				Title("Volume (m³)").
				Value(&m.fields.volume).
				Validate(validNonNegative),
		),
	).WithWidth(60).WithShowHelp(false)

	return m, m.form.Init()
}

func (m QuoteModel) price() (*pricing.Quote, error) {
	weight, err := parseDecimal(m.fields.weight)
	if err != nil {
		return nil, fmt.Errorf("weight: %w", err)
	}

	volume, err := parseDecimal(m.fields.volume)
	if err != nil {
		return nil, fmt.Errorf("volume: %w", err)
	}

	dest := m.destinations[m.fields.destinationID]
	svc := m.serviceTypes[m.fields.serviceTypeID]

	return pricing.QuoteShipment(dest, svc, weight, volume, time.Now())
}

func (m QuoteModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading catalog...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v\n\n(n: new quote, Esc: back)", m.err))
	}

	if m.quote != nil {
		dest := m.destinations[m.fields.destinationID]
		svc := m.serviceTypes[m.fields.serviceTypeID]

		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf(
			"Quote\n\nDestination: %s %s\nService: %s\nWeight: %s kg\nVolume: %s m³\n\nPrice: %s\nEstimated delivery: %s\n\n(n: new quote, Esc: back)",
			dest.Code, dest.City, svc.Name, m.fields.weight, m.fields.volume,
			activeStyle(FormatAmount(m.quote.Amount)),
			FormatDate(m.quote.EstimatedDelivery),
		))
	}

	if m.form == nil {
		return ""
	}

	return lipgloss.NewStyle().Padding(1).Render("New Quote\n\n" + m.form.View())
}

func validNonNegative(s string) error {
	d, err := parseDecimal(s)
	if err != nil {
		return fmt.Errorf("not a number")
	}

	if d.IsNegative() {
		return fmt.Errorf("must be >= 0")
	}

	return nil
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

// Messages

type loadCatalogMsg struct {
	destinations map[string]*catalog.Destination
	serviceTypes map[string]*catalog.ServiceType
	err          error
}

func (m QuoteModel) loadCatalogCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		dests, err := m.catalogService.ListDestinations(ctx)
		if err != nil {
			return loadCatalogMsg{err: err}
		}

		svcs, err := m.catalogService.ListServiceTypes(ctx)
		if err != nil {
			return loadCatalogMsg{err: err}
		}

		msg := loadCatalogMsg{
			destinations: make(map[string]*catalog.Destination),
			serviceTypes: make(map[string]*catalog.ServiceType),
		}

		for _, d := range dests {
			if d.IsActive {
				msg.destinations[d.ID.String()] = d
			}
		}

		for _, st := range svcs {
			if st.IsActive {
				msg.serviceTypes[st.ID.String()] = st
			}
		}

		return msg
	}
}
