package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/dispatch/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/dispatch/internal/billing"
	billingStore "github.com/MrJamesThe3rd/dispatch/internal/billing/store"
	"github.com/MrJamesThe3rd/dispatch/internal/catalog"
	catalogStore "github.com/MrJamesThe3rd/dispatch/internal/catalog/store"
	"github.com/MrJamesThe3rd/dispatch/internal/config"
	"github.com/MrJamesThe3rd/dispatch/internal/database"
	"github.com/MrJamesThe3rd/dispatch/internal/tour"
	tourStore "github.com/MrJamesThe3rd/dispatch/internal/tour/store"
)

type model struct {
	appName string

	catalogService *catalog.Service
	billingService *billing.Service
	tourService    *tour.Service

	currentView View

	quoteView   view.QuoteModel
	invoiceView view.InvoiceModel
	tourView    view.TourModel
}

type View int

const (
	ViewMenu    View = 0
	ViewQuote   View = 1
	ViewInvoice View = 2
	ViewTour    View = 3
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	catalogSvc := catalog.NewService(catalogStore.New(db))
	billingSvc := billing.NewService(billingStore.New(db), billing.Config{
		DefaultTVARate: cfg.Billing.DefaultTVARate,
		PaymentRetries: cfg.Billing.PaymentRetries,
	})
	tourSvc := tour.NewService(tourStore.New(db))

	return model{
		appName:        cfg.App.Name,
		catalogService: catalogSvc,
		billingService: billingSvc,
		tourService:    tourSvc,
		currentView:    ViewMenu,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewQuote
				m.quoteView = view.NewQuoteModel(m.catalogService)

				return m, m.quoteView.Init()
			case "2":
				m.currentView = ViewInvoice
				m.invoiceView = view.NewInvoiceModel(m.billingService)

				return m, m.invoiceView.Init()
			case "3":
				m.currentView = ViewTour
				m.tourView = view.NewTourModel(m.tourService)

				return m, m.tourView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewQuote:
		var newModel tea.Model
		newModel, cmd = m.quoteView.Update(msg)
		m.quoteView = newModel.(view.QuoteModel)
	case ViewInvoice:
		var newModel tea.Model
		newModel, cmd = m.invoiceView.Update(msg)
		m.invoiceView = newModel.(view.InvoiceModel)
	case ViewTour:
		var newModel tea.Model
		newModel, cmd = m.tourView.Update(msg)
		m.tourView = newModel.(view.TourModel)
	}

	return m, cmd
}

func (m model) View() string {
	var current view.View

	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			m.appName + " TUI\n\n" +
				"1. Price Quote\n" +
				"2. Outstanding Invoices\n" +
				"3. Delivery Tours\n\n" +
				"q. Quit",
		)
	case ViewQuote:
		current = m.quoteView
	case ViewInvoice:
		current = m.invoiceView
	case ViewTour:
		current = m.tourView
	default:
		return "Unknown View"
	}

	help := lipgloss.NewStyle().Faint(true).PaddingLeft(1).Render(current.ShortHelp())

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Padding(1, 1, 0).Render(current.Title()),
		current.View(),
		help,
	)
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
