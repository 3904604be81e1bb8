package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"caribcart-client/internal/constants"
	"caribcart-client/internal/core/domain"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Editor rows, in focus order. Text rows carry a textinput, select rows
// cycle through a fixed option list and toggle rows flip a bool on the form.
const (
	rowTitle = iota
	rowPlatform
	rowUsername
	rowNiche
	rowFollowers
	rowEngagement
	rowViews
	rowCountry
	rowAgeRange
	rowPrice
	rowDescription
	rowVerified
	rowMonetized
	rowImagePath
	editorRowCount
)

type editorModel struct {
	form   *domain.ListingForm
	inputs map[int]*textinput.Model
	focus  int
}

func (m Model) openEditor(listingID string) (tea.Model, tea.Cmd) {
	var form *domain.ListingForm
	if listingID == "" {
		form = &domain.ListingForm{Country: m.userCountry}
	} else {
		built, err := m.saveUC.FormFor(listingID)
		if err != nil {
			m.notifier.Error(err.Error())
			m.page = pageHome
			return m, nil
		}
		form = built
	}

	m.editor = newEditor(form)
	m.page = pageEditor
	return m, textinput.Blink
}

func newEditor(form *domain.ListingForm) *editorModel {
	mk := func(placeholder, value string) *textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.SetValue(value)
		in.Width = 44
		return &in
	}

	e := &editorModel{
		form: form,
		inputs: map[int]*textinput.Model{
			rowTitle:       mk("e.g. Family Cooking Channel", form.Title),
			rowUsername:    mk("handle without the @", form.Username),
			rowFollowers:   mk("e.g. 12500", form.FollowersCount),
			rowEngagement:  mk("e.g. 4.2", form.EngagementRate),
			rowViews:       mk("e.g. 80000", form.MonthlyViews),
			rowPrice:       mk("price in "+constants.ReferenceCountry+" dollars", form.Price),
			rowDescription: mk("what the buyer gets", form.Description),
			rowImagePath:   mk("path to a screenshot, enter to attach", ""),
		},
	}
	e.inputs[rowTitle].Focus()
	return e
}

// syncForm writes the text inputs back into the form buffer.
func (e *editorModel) syncForm() {
	e.form.Title = e.inputs[rowTitle].Value()
	e.form.Username = e.inputs[rowUsername].Value()
	e.form.FollowersCount = e.inputs[rowFollowers].Value()
	e.form.EngagementRate = e.inputs[rowEngagement].Value()
	e.form.MonthlyViews = e.inputs[rowViews].Value()
	e.form.Price = e.inputs[rowPrice].Value()
	e.form.Description = e.inputs[rowDescription].Value()
}

func (e *editorModel) setFocus(row int) {
	e.focus = clamp(row, editorRowCount)
	for i, in := range e.inputs {
		if i == e.focus {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

// cycle advances through options, wrapping around. An unset value starts
// from the first option.
func cycle(options []string, current string, delta int) string {
	if len(options) == 0 {
		return current
	}
	at := -1
	for i, o := range options {
		if o == current {
			at = i
			break
		}
	}
	if at == -1 {
		return options[0]
	}
	return options[(at+delta+len(options))%len(options)]
}

func (m Model) handleEditorKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	e := m.editor
	if e == nil {
		m.page = pageMyListings
		return m, nil
	}

	switch key.String() {
	case "esc":
		m.editor = nil
		m.page = pageMyListings
		return m, nil

	case "up", "shift+tab":
		e.setFocus(e.focus - 1)
		return m, nil

	case "down", "tab":
		e.setFocus(e.focus + 1)
		return m, nil

	case "ctrl+s":
		e.syncForm()
		m.busy = true
		return m, m.saveCmd(e.form)
	}

	switch e.focus {
	case rowPlatform:
		return m.handleSelectKey(key, constants.Platforms, &e.form.Platform)
	case rowNiche:
		return m.handleSelectKey(key, constants.Niches, &e.form.Niche)
	case rowCountry:
		return m.handleSelectKey(key, constants.CountryNames(), &e.form.Country)
	case rowAgeRange:
		return m.handleSelectKey(key, constants.AgeRanges, &e.form.AgeRange)

	case rowVerified:
		if key.String() == " " || key.String() == "enter" {
			e.form.Verified = !e.form.Verified
		}
		return m, nil
	case rowMonetized:
		if key.String() == " " || key.String() == "enter" {
			e.form.Monetized = !e.form.Monetized
		}
		return m, nil

	case rowImagePath:
		return m.handleImageKey(key)
	}

	if key.String() == "enter" {
		e.setFocus(e.focus + 1)
		return m, nil
	}

	in, ok := e.inputs[e.focus]
	if !ok {
		return m, nil
	}
	updated, cmd := in.Update(key)
	*in = updated
	return m, cmd
}

func (m Model) handleSelectKey(key tea.KeyMsg, options []string, value *string) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "left", "h":
		*value = cycle(options, *value, -1)
	case "right", "l", "enter", " ":
		*value = cycle(options, *value, 1)
	}
	return m, nil
}

func (m Model) handleImageKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	e := m.editor
	in := e.inputs[rowImagePath]

	switch key.String() {
	case "enter":
		path := strings.TrimSpace(in.Value())
		if path == "" {
			return m, nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			m.notifier.Error(fmt.Sprintf("could not read %s", path))
			return m, nil
		}
		if err := e.form.AddImages(domain.ListingImage{Name: filepath.Base(path), Data: data}); err != nil {
			m.notifier.Error(err.Error())
			return m, nil
		}
		in.SetValue("")
		return m, nil

	case "1", "2", "3", "4", "5":
		if in.Value() == "" {
			idx := int(key.String()[0] - '1')
			e.form.RemoveImage(idx)
			return m, nil
		}
	}

	updated, cmd := in.Update(key)
	*in = updated
	return m, cmd
}

func (m Model) saveCmd(form *domain.ListingForm) tea.Cmd {
	ctx := m.requestCtx()
	uc := m.saveUC
	return func() tea.Msg {
		return saveDoneMsg{err: uc.Execute(ctx, form)}
	}
}

// -------------------- VIEW --------------------

func (m Model) viewEditor() string {
	e := m.editor
	if e == nil {
		return ""
	}

	title := AdminTitle("Create", "Listing")
	if e.form.Editing() {
		title = AdminTitle("Edit", "Listing")
	}

	rows := []struct {
		label string
		row   int
		view  string
	}{
		{"Title", rowTitle, e.inputs[rowTitle].View()},
		{"Platform", rowPlatform, selectValue(e.form.Platform)},
		{"Username", rowUsername, e.inputs[rowUsername].View()},
		{"Niche", rowNiche, selectValue(e.form.Niche)},
		{"Followers Count", rowFollowers, e.inputs[rowFollowers].View()},
		{"Engagement Rate", rowEngagement, e.inputs[rowEngagement].View()},
		{"Monthly Views", rowViews, e.inputs[rowViews].View()},
		{"Country", rowCountry, selectValue(e.form.Country)},
		{"Age Range", rowAgeRange, selectValue(e.form.AgeRange)},
		{"Price", rowPrice, e.inputs[rowPrice].View()},
		{"Description", rowDescription, e.inputs[rowDescription].View()},
		{"Verified", rowVerified, toggleValue(e.form.Verified)},
		{"Monetized", rowMonetized, toggleValue(e.form.Monetized)},
		{"Add Image", rowImagePath, e.inputs[rowImagePath].View()},
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	for _, r := range rows {
		label := labelStyle.Render(r.label)
		if r.row == e.focus {
			label = focusedLabelStyle.Render(r.label)
		}
		b.WriteString(fmt.Sprintf("%-18s %s\n", label, r.view))
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render(fmt.Sprintf("Images (%d/%d)", len(e.form.Images), domain.MaxListingImages)))
	b.WriteString("\n")
	for i, img := range e.form.Images {
		name := img.Name
		if img.Stored() {
			name = img.URL
		}
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, name))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab/up/down move • left/right cycle choices • 1-5 on image row remove • ctrl+s save • esc cancel"))
	return b.String()
}

func selectValue(v string) string {
	if v == "" {
		return helpStyle.Render("‹ choose ›")
	}
	return valueStyle.Render("‹ " + v + " ›")
}

func toggleValue(on bool) string {
	if on {
		return successStyle.Render("[x] yes")
	}
	return helpStyle.Render("[ ] no")
}
