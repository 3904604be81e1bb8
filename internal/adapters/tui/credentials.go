package tui

import (
	"fmt"
	"strings"

	"caribcart-client/internal/constants"
	"caribcart-client/internal/core/domain"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// credentialForm collects the account credentials for a listing. It starts
// from the default email/password pair; rows can be added (recovery email,
// 2FA backup codes and the like) and removed freely.
type credentialForm struct {
	listing domain.Listing
	fields  []domain.FormField
	inputs  []*textinput.Model
	adder   *textinput.Model
	focus   int // 0..len(fields)-1 are value rows, len(fields) is the adder
}

func newCredentialForm(listing domain.Listing) *credentialForm {
	adder := textinput.New()
	adder.Placeholder = "new field name, enter to add"
	adder.Width = 30

	f := &credentialForm{listing: listing, adder: &adder}
	for _, field := range constants.DefaultCredentialFields() {
		f.appendField(field)
	}
	f.setFocus(0)
	return f
}

func (f *credentialForm) appendField(field domain.FormField) {
	in := textinput.New()
	in.Placeholder = field.Name
	in.Width = 38
	if field.Type == "password" {
		in.EchoMode = textinput.EchoPassword
	}
	f.fields = append(f.fields, field)
	f.inputs = append(f.inputs, &in)
}

func (f *credentialForm) removeField(i int) {
	if i < 0 || i >= len(f.fields) {
		return
	}
	f.fields = append(f.fields[:i], f.fields[i+1:]...)
	f.inputs = append(f.inputs[:i], f.inputs[i+1:]...)
	f.setFocus(f.focus)
}

func (f *credentialForm) setFocus(i int) {
	f.focus = clamp(i, len(f.fields)+1)
	for j, in := range f.inputs {
		if j == f.focus {
			in.Focus()
		} else {
			in.Blur()
		}
	}
	if f.focus == len(f.fields) {
		f.adder.Focus()
	} else {
		f.adder.Blur()
	}
}

// collect snapshots the typed values into the field list.
func (f *credentialForm) collect() []domain.FormField {
	out := make([]domain.FormField, len(f.fields))
	for i, field := range f.fields {
		field.Value = f.inputs[i].Value()
		out[i] = field
	}
	return out
}

func (m Model) handleCredentialsKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.credentials
	if f == nil {
		m.page = pageMyListings
		return m, nil
	}

	switch key.String() {
	case "esc":
		m.credentials = nil
		m.page = pageMyListings
		return m, nil

	case "up", "shift+tab":
		f.setFocus(f.focus - 1)
		return m, nil

	case "down", "tab":
		f.setFocus(f.focus + 1)
		return m, nil

	case "ctrl+d":
		f.removeField(f.focus)
		return m, nil

	case "ctrl+s":
		m.busy = true
		return m, m.credentialsCmd(f.listing, f.collect())

	case "enter":
		if f.focus == len(f.fields) {
			name := strings.TrimSpace(f.adder.Value())
			if name == "" {
				m.notifier.Error("please enter a field name")
				return m, nil
			}
			f.appendField(domain.FormField{Type: "text", Name: name})
			f.adder.SetValue("")
			f.setFocus(len(f.fields) - 1)
			return m, nil
		}
		f.setFocus(f.focus + 1)
		return m, nil
	}

	var in *textinput.Model
	if f.focus == len(f.fields) {
		in = f.adder
	} else {
		in = f.inputs[f.focus]
	}
	updated, cmd := in.Update(key)
	*in = updated
	return m, cmd
}

func (m Model) credentialsCmd(listing domain.Listing, credential []domain.FormField) tea.Cmd {
	ctx := m.requestCtx()
	uc := m.credentialsUC
	return func() tea.Msg {
		return credentialsDoneMsg{err: uc.Execute(ctx, listing, credential)}
	}
}

func (m Model) viewCredentials() string {
	f := m.credentials
	if f == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(AdminTitle("Account", "Credentials"))
	b.WriteString("\n\n")
	b.WriteString(valueStyle.Render(fmt.Sprintf("@%s on %s", f.listing.Username, f.listing.Platform)))
	b.WriteString("\n\n")

	for i, field := range f.fields {
		label := labelStyle.Render(field.Name)
		if i == f.focus {
			label = focusedLabelStyle.Render(field.Name)
		}
		b.WriteString(fmt.Sprintf("%-18s %s\n", label, f.inputs[i].View()))
	}

	adderLabel := labelStyle.Render("Add Field")
	if f.focus == len(f.fields) {
		adderLabel = focusedLabelStyle.Render("Add Field")
	}
	b.WriteString(fmt.Sprintf("%-18s %s\n", adderLabel, f.adder.View()))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab/up/down move • ctrl+d remove field • ctrl+s submit • esc cancel"))
	return b.String()
}
