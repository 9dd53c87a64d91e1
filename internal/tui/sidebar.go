package tui

import (
	list "github.com/charmbracelet/bubbles/list"

	"countrymap/internal/boundaries"
)

type countryItem struct {
	code string
	name string
}

func (c countryItem) Title() string       { return c.name }
func (c countryItem) Description() string { return c.code }
func (c countryItem) FilterValue() string { return c.name }

func newCountryList() list.Model {
	var items []list.Item
	for _, c := range boundaries.All() {
		items = append(items, countryItem{code: c.Code, name: c.Name})
	}
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	l := list.New(items, d, 0, 0)
	l.Title = "Countries"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	return l
}
