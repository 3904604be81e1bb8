package tui

import (
	"fmt"
	"strings"

	"caribcart-client/internal/core/domain"
	"caribcart-client/internal/currency"

	tea "github.com/charmbracelet/bubbletea"
)

// -------------------- HOME (public catalogue) --------------------

func (m Model) handleHomeKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	listings := m.store.Listings()

	switch key.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		m.selectedPublic = clamp(m.selectedPublic-1, len(listings))
	case "down", "j":
		m.selectedPublic = clamp(m.selectedPublic+1, len(listings))
	case "tab":
		m.page = pageMyListings
	case "r":
		return m, m.fetchPublicCmd()
	}
	return m, nil
}

func (m Model) viewHome() string {
	var b strings.Builder
	b.WriteString(AdminTitle("Account", "Marketplace"))
	b.WriteString("\n\n")
	b.WriteString(m.renderListings(m.store.Listings(), m.selectedPublic))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("up/down select • tab my listings • r refresh • q quit"))
	return b.String()
}

// -------------------- MY LISTINGS --------------------

func (m Model) handleMyListingsKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	listings := m.store.UserListings()

	switch key.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		m.selectedOwn = clamp(m.selectedOwn-1, len(listings))
	case "down", "j":
		m.selectedOwn = clamp(m.selectedOwn+1, len(listings))
	case "tab":
		m.page = pageHome
	case "r":
		return m, m.fetchUserCmd()
	case "n":
		return m.openEditor("")
	case "enter":
		if len(listings) == 0 {
			return m, nil
		}
		return m.openEditor(listings[m.selectedOwn].ID)
	case "s":
		if len(listings) == 0 {
			return m, nil
		}
		m.credentials = newCredentialForm(listings[m.selectedOwn])
		m.page = pageCredentials
	case "w":
		m.withdraw = newWithdrawForm()
		m.page = pageWithdraw
	}
	return m, nil
}

func (m Model) viewMyListings() string {
	var b strings.Builder
	b.WriteString(AdminTitle("My", "Listings"))
	b.WriteString("\n\n")
	b.WriteString(m.renderBalance(m.store.Balance()))
	b.WriteString("\n\n")
	b.WriteString(m.renderListings(m.store.UserListings(), m.selectedOwn))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("n new • enter edit • s credentials • w withdraw • tab catalogue • r refresh • q quit"))
	return b.String()
}

func (m Model) renderBalance(balance domain.Balance) string {
	row := fmt.Sprintf("%s %s   %s %s   %s %s",
		labelStyle.Render("Earnings:"),
		valueStyle.Render(currency.Format(balance.Earnings, m.userCountry)),
		labelStyle.Render("Withdrawn:"),
		valueStyle.Render(currency.Format(balance.Withdrawn, m.userCountry)),
		labelStyle.Render("Available:"),
		valueStyle.Render(currency.Format(balance.Available, m.userCountry)),
	)
	return panelStyle.Render(row)
}

func (m Model) renderListings(listings []domain.Listing, selected int) string {
	if len(listings) == 0 {
		return helpStyle.Render("no listings yet")
	}

	var b strings.Builder
	for i, l := range listings {
		badge := ""
		if l.Verified {
			badge = " ✔"
		}
		line := fmt.Sprintf("%-34s %-12s %10s%s",
			truncate(l.Title, 34),
			l.Platform,
			currency.Format(l.Price, l.Country),
			badge,
		)
		if i == selected {
			b.WriteString(selectedRowStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
		if i == selected {
			detail := fmt.Sprintf("  @%s • %d followers • %.1f%% engagement • %d monthly views • %s",
				l.Username, l.FollowersCount, l.EngagementRate, l.MonthlyViews, l.Niche)
			b.WriteString(helpStyle.Render(detail))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
