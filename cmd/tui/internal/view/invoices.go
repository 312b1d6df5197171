package view

import (
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/dispatch/internal/billing"
	"github.com/MrJamesThe3rd/dispatch/internal/money"
)

var outstanding = []billing.Status{
	billing.StatusIssued,
	billing.StatusPartiallyPaid,
	billing.StatusOverdue,
}

type invoiceState int

const (
	invoiceStateBrowse invoiceState = iota
	invoiceStatePay
)

type paymentFields struct {
	amount    string
	method    billing.Method
	reference string
}

type InvoiceModel struct {
	CommonModel
	billingService *billing.Service

	state    invoiceState
	table    table.Model
	invoices []*billing.Invoice
	form     *huh.Form
	fields   *paymentFields

	loading bool
	err     error
	status  string
}

func NewInvoiceModel(billingSvc *billing.Service) InvoiceModel {
	columns := []table.Column{
		{Title: "Number", Width: 16},
		{Title: "Due", Width: 12},
		{Title: "Status", Width: 15},
		{Title: "TTC", Width: 16},
		{Title: "Paid", Width: 16},
		{Title: "Balance", Width: 16},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	t.SetStyles(newTableStyles())

	return InvoiceModel{
		billingService: billingSvc,
		table:          t,
		loading:        true,
	}
}

func (m InvoiceModel) Title() string { return "Outstanding Invoices" }
func (m InvoiceModel) ShortHelp() string {
	if m.state == invoiceStatePay {
		return "Navigate form | Esc: cancel"
	}
	return "Esc: back | p: record payment | r: refresh"
}

func (m InvoiceModel) Init() tea.Cmd {
	return m.loadInvoicesCmd()
}

func (m InvoiceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadInvoicesMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.invoices = msg.invoices
		m.refreshTable()
		return m, nil

	case paymentSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("Payment %s recorded, invoice %s is now %s",
				msg.result.Payment.Number, msg.result.Invoice.Number, msg.result.Invoice.Status)
		}
		m.state = invoiceStateBrowse
		m.form = nil
		m.table.Focus()
		return m, m.loadInvoicesCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case invoiceStateBrowse:
		return m.updateBrowse(msg)
	case invoiceStatePay:
		return m.updatePay(msg)
	}

	return m, nil
}

func (m InvoiceModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadInvoicesCmd()
		case "p":
			return m.enterPayMode()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m InvoiceModel) enterPayMode() (tea.Model, tea.Cmd) {
	inv := m.selected()
	if inv == nil {
		return m, nil
	}

	m.fields = &paymentFields{
		amount: money.Format(inv.BalanceDue()),
		method: billing.MethodCash,
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Amount").
				Value(&m.fields.amount).
				Validate(func(s string) error {
					d, err := parseDecimal(s)
					if err != nil {
						return fmt.Errorf("not a number")
					}
					if !d.IsPositive() {
						return fmt.Errorf("amount must be > 0")
					}
					return nil
				}),

			huh.NewSelect[billing.Method]().
				Title("Method").
				Options(
					huh.NewOption("Cash", billing.MethodCash),
					huh.NewOption("Card", billing.MethodCard),
					huh.NewOption("Bank transfer", billing.MethodTransfer),
					huh.NewOption("Cheque", billing.MethodCheck),
					huh.NewOption("CCP", billing.MethodCCP),
				).
				Value(&m.fields.method),

			huh.NewInput().
				Title("Reference").
				Placeholder("optional").
				Value(&m.fields.reference),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = invoiceStatePay
	m.status = ""
	m.table.Blur()
	return m, m.form.Init()
}

func (m InvoiceModel) updatePay(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = invoiceStateBrowse
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

	return m, m.savePaymentCmd()
}

func (m InvoiceModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading invoices...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	if len(m.invoices) == 0 {
		return lipgloss.NewStyle().Padding(2).Render("No outstanding invoices.\n\n(Esc to back)")
	}

	content := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	if m.state == invoiceStatePay && m.form != nil {
		number := ""
		if inv := m.selected(); inv != nil {
			number = inv.Number
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(fmt.Sprintf("Record Payment\n\nInvoice: %s\n\n%s", number, m.form.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m InvoiceModel) selected() *billing.Invoice {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.invoices) {
		return nil
	}

	return m.invoices[idx]
}

func (m *InvoiceModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.invoices))
	for _, inv := range m.invoices {
		rows = append(rows, table.Row{
			inv.Number,
			FormatDate(inv.DueDate),
			string(inv.Status),
			FormatAmount(inv.AmountTTC),
			FormatAmount(inv.AmountPaid),
			FormatAmount(inv.BalanceDue()),
		})
	}
	m.table.SetRows(rows)
}

// Messages

type loadInvoicesMsg struct {
	invoices []*billing.Invoice
	err      error
}

func (m InvoiceModel) loadInvoicesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		var all []*billing.Invoice
		for _, status := range outstanding {
			invs, err := m.billingService.List(ctx, billing.ListFilter{Status: &status})
			if err != nil {
				return loadInvoicesMsg{err: err}
			}
			all = append(all, invs...)
		}

		slices.SortFunc(all, func(a, b *billing.Invoice) int {
			return a.DueDate.Compare(b.DueDate)
		})

		return loadInvoicesMsg{invoices: all}
	}
}

type paymentSavedMsg struct {
	result *billing.LedgerResult
	err    error
}

func (m InvoiceModel) savePaymentCmd() tea.Cmd {
	inv := m.selected()
	if inv == nil {
		return nil
	}

	fields := *m.fields

	return func() tea.Msg {
		amount, err := parseDecimal(fields.amount)
		if err != nil {
			return paymentSavedMsg{err: err}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		res, err := m.billingService.RecordPayment(ctx, billing.RecordPaymentParams{
			InvoiceID: inv.ID,
			Amount:    amount,
			Date:      time.Now(),
			Method:    fields.method,
			Reference: fields.reference,
		})

		return paymentSavedMsg{result: res, err: err}
	}
}
