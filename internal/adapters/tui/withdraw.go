package tui

import (
	"fmt"
	"strings"

	"caribcart-client/internal/constants"
	"caribcart-client/internal/core/domain"
	"caribcart-client/internal/currency"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// withdrawForm collects the bank account details and the amount for a
// withdrawal request. The account rows are fixed; only the amount and the
// typed values vary.
type withdrawForm struct {
	fields []domain.FormField
	inputs []*textinput.Model
	amount *textinput.Model
	focus  int // 0 is the amount row, 1..len(fields) are account rows
}

func newWithdrawForm() *withdrawForm {
	amount := textinput.New()
	amount.Placeholder = "whole amount to withdraw"
	amount.Width = 20
	amount.Focus()

	f := &withdrawForm{amount: &amount}
	for _, field := range constants.WithdrawalAccountFields() {
		in := textinput.New()
		in.Placeholder = field.Name
		in.Width = 38
		f.fields = append(f.fields, field)
		f.inputs = append(f.inputs, &in)
	}
	return f
}

func (f *withdrawForm) setFocus(i int) {
	f.focus = clamp(i, len(f.fields)+1)
	if f.focus == 0 {
		f.amount.Focus()
	} else {
		f.amount.Blur()
	}
	for j, in := range f.inputs {
		if j == f.focus-1 {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

func (f *withdrawForm) collect() []domain.FormField {
	out := make([]domain.FormField, len(f.fields))
	for i, field := range f.fields {
		field.Value = f.inputs[i].Value()
		out[i] = field
	}
	return out
}

func (m Model) handleWithdrawKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.withdraw
	if f == nil {
		m.page = pageMyListings
		return m, nil
	}

	switch key.String() {
	case "esc":
		m.withdraw = nil
		m.page = pageMyListings
		return m, nil

	case "up", "shift+tab":
		f.setFocus(f.focus - 1)
		return m, nil

	case "down", "tab", "enter":
		f.setFocus(f.focus + 1)
		return m, nil

	case "ctrl+s":
		m.busy = true
		return m, m.withdrawCmd(f.collect(), f.amount.Value())
	}

	var in *textinput.Model
	if f.focus == 0 {
		in = f.amount
	} else {
		in = f.inputs[f.focus-1]
	}
	updated, cmd := in.Update(key)
	*in = updated
	return m, cmd
}

func (m Model) withdrawCmd(account []domain.FormField, amount string) tea.Cmd {
	ctx := m.requestCtx()
	uc := m.withdrawUC
	return func() tea.Msg {
		return withdrawDoneMsg{err: uc.Execute(ctx, account, amount)}
	}
}

func (m Model) viewWithdraw() string {
	f := m.withdraw
	if f == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(AdminTitle("Withdraw", "Funds"))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Available: "))
	b.WriteString(valueStyle.Render(currency.Format(m.store.Balance().Available, m.userCountry)))
	b.WriteString("\n\n")

	amountLabel := labelStyle.Render("Amount")
	if f.focus == 0 {
		amountLabel = focusedLabelStyle.Render("Amount")
	}
	b.WriteString(fmt.Sprintf("%-22s %s\n", amountLabel, f.amount.View()))

	for i, field := range f.fields {
		label := labelStyle.Render(field.Name)
		if f.focus == i+1 {
			label = focusedLabelStyle.Render(field.Name)
		}
		b.WriteString(fmt.Sprintf("%-22s %s\n", label, f.inputs[i].View()))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab/up/down move • ctrl+s request withdrawal • esc cancel"))
	return b.String()
}
