package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/storelane/storefront-gateway/internal/order"
)

type stubFetcher struct {
	order   order.Order
	history []order.HistoryEntry
	err     error
}

func (s stubFetcher) GetByNumber(context.Context, string) (order.Order, error) {
	return s.order, s.err
}

func (s stubFetcher) History(context.Context, int64) ([]order.HistoryEntry, error) {
	return s.history, nil
}

func sampleFetcher() stubFetcher {
	return stubFetcher{
		order: order.Order{
			ID: 1, OrderNumber: "ORD-20260829-00001", Status: order.StatusShipped,
			Items:       []order.Item{{ProductID: 1, Quantity: 2}},
			TotalAmount: 60.5,
		},
		history: []order.HistoryEntry{
			{NewStatus: order.StatusPending, ChangedAt: "2026-08-27T10:00:00Z"},
			{NewStatus: order.StatusConfirmed, ChangedAt: "2026-08-27T10:05:00Z"},
			{NewStatus: order.StatusShipped, ChangedAt: "2026-08-28T09:00:00Z"},
		},
	}
}

func typeAndEnter(m Model, number string) (Model, tea.Cmd) {
	m.input.SetValue(number)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(Model), cmd
}

func TestEnterStartsFetch(t *testing.T) {
	m := NewModel(sampleFetcher())
	m, cmd := typeAndEnter(m, "ORD-20260829-00001")
	if m.mode != modeLoading {
		t.Fatalf("expected loading mode, got %d", m.mode)
	}
	if cmd == nil {
		t.Fatal("expected a fetch command")
	}
}

func TestEmptyInputDoesNothing(t *testing.T) {
	m := NewModel(sampleFetcher())
	m, cmd := typeAndEnter(m, "   ")
	if m.mode != modeInput || cmd != nil {
		t.Fatal("blank input should not start a fetch")
	}
}

func TestFetchedMsgRendersTimeline(t *testing.T) {
	m := NewModel(sampleFetcher())
	m, _ = typeAndEnter(m, "ORD-20260829-00001")

	fetcher := sampleFetcher()
	next, _ := m.Update(fetchedMsg{order: fetcher.order, history: fetcher.history})
	m = next.(Model)

	view := m.View()
	for _, want := range []string{"ORD-20260829-00001", "SHIPPED", "PENDING", "CONFIRMED", "$60.50"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestFetchErrorReturnsToInput(t *testing.T) {
	m := NewModel(sampleFetcher())
	m, _ = typeAndEnter(m, "ORD-99999999-00000")

	next, _ := m.Update(fetchErrMsg{err: errors.New("order not found")})
	m = next.(Model)

	if m.mode != modeInput {
		t.Fatalf("expected input mode after an error, got %d", m.mode)
	}
	if !strings.Contains(m.View(), "order not found") {
		t.Error("view should show the fetch error")
	}
}
