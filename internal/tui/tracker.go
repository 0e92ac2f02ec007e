package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/storelane/storefront-gateway/internal/order"
)

// OrderFetcher is the slice of the order layer the tracker needs.
type OrderFetcher interface {
	GetByNumber(ctx context.Context, number string) (order.Order, error)
	History(ctx context.Context, orderID int64) ([]order.HistoryEntry, error)
}

const fetchTimeout = 10 * time.Second

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).MarginBottom(1)
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	currentStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	amountStyle  = lipgloss.NewStyle().Bold(true)
)

type mode int

const (
	modeInput mode = iota
	modeLoading
	modeResult
)

type fetchedMsg struct {
	order   order.Order
	history []order.HistoryEntry
}

type fetchErrMsg struct{ err error }

// Model is the order tracking console: type an order number, watch its
// status timeline.
type Model struct {
	fetcher OrderFetcher

	mode    mode
	input   textinput.Model
	spinner spinner.Model

	order   order.Order
	history []order.HistoryEntry
	err     error
}

func NewModel(fetcher OrderFetcher) Model {
	input := textinput.New()
	input.Placeholder = "ORD-20260829-00001"
	input.Focus()
	input.CharLimit = 32
	input.Width = 36

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{fetcher: fetcher, mode: modeInput, input: input, spinner: sp}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) fetch(number string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		ord, err := m.fetcher.GetByNumber(ctx, number)
		if err != nil {
			return fetchErrMsg{err: err}
		}
		history, err := m.fetcher.History(ctx, ord.ID)
		if err != nil {
			return fetchErrMsg{err: err}
		}
		return fetchedMsg{order: ord, history: history}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			switch m.mode {
			case modeInput:
				number := strings.TrimSpace(m.input.Value())
				if number == "" {
					return m, nil
				}
				m.mode = modeLoading
				m.err = nil
				return m, tea.Batch(m.spinner.Tick, m.fetch(number))
			case modeResult:
				m.mode = modeInput
				m.input.SetValue("")
				m.input.Focus()
				return m, textinput.Blink
			}
		}

	case fetchedMsg:
		m.mode = modeResult
		m.order = msg.order
		m.history = msg.history
		return m, nil

	case fetchErrMsg:
		m.mode = modeInput
		m.err = msg.err
		return m, nil

	case spinner.TickMsg:
		if m.mode == modeLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.mode == modeInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Order Tracker"))
	b.WriteString("\n")

	switch m.mode {
	case modeInput:
		b.WriteString(promptStyle.Render("Enter an order number:"))
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		if m.err != nil {
			b.WriteString(errorStyle.Render("error: " + m.err.Error()))
			b.WriteString("\n")
		}
		b.WriteString(promptStyle.Render("enter to search, esc to quit"))

	case modeLoading:
		b.WriteString(m.spinner.View())
		b.WriteString(" looking up order...")

	case modeResult:
		b.WriteString(m.renderOrder())
		b.WriteString("\n")
		b.WriteString(promptStyle.Render("enter to track another order, esc to quit"))
	}

	b.WriteString("\n")
	return b.String()
}

func (m Model) renderOrder() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", m.order.OrderNumber, currentStyle.Render(string(m.order.Status)))
	fmt.Fprintf(&b, "%d item(s), total %s\n\n",
		len(m.order.Items), amountStyle.Render(fmt.Sprintf("$%.2f", m.order.TotalAmount)))

	for i, entry := range m.history {
		marker := "✓"
		style := doneStyle
		if i == len(m.history)-1 {
			marker = "●"
			style = currentStyle
		}
		line := fmt.Sprintf("%s %s", marker, entry.NewStatus)
		if entry.ChangedAt != "" {
			line += "  " + entry.ChangedAt
		}
		if entry.Remarks != "" {
			line += "  (" + entry.Remarks + ")"
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
