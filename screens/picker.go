package screens

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/slidecal/navigation"
	"github.com/jask/slidecal/widgets"
)

// OptionItem is one row of the month or year picker. Value is the month
// number or the year.
type OptionItem struct {
	Label    string
	Value    int
	Active   bool
	Disabled bool
}

func (i OptionItem) Title() string       { return i.Label }
func (i OptionItem) FilterValue() string { return i.Label }

func monthItems(opts []navigation.MonthOption) []OptionItem {
	out := make([]OptionItem, 0, len(opts))
	for _, o := range opts {
		out = append(out, OptionItem{Label: o.Name, Value: o.Month, Active: o.Active, Disabled: o.Disabled})
	}
	return out
}

func yearItems(opts []navigation.YearOption) []OptionItem {
	out := make([]OptionItem, 0, len(opts))
	for _, o := range opts {
		out = append(out, OptionItem{Label: o.Label, Value: o.Year, Active: o.Active, Disabled: o.Disabled})
	}
	return out
}

// optionDelegate draws one line per row: a cursor mark, then the label in
// the active, disabled or plain selector style.
type optionDelegate struct {
	styles widgets.Styles
}

func (optionDelegate) Height() int                             { return 1 }
func (optionDelegate) Spacing() int                            { return 0 }
func (optionDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d optionDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(OptionItem)
	if !ok {
		return
	}
	prefix := "  "
	if index == m.Index() {
		prefix = "> "
	}
	style := d.styles.SelectorItem
	switch {
	case it.Disabled:
		style = d.styles.SelectorDisabled
	case it.Active:
		style = d.styles.SelectorActive
	}
	fmt.Fprint(w, prefix+style.Render(it.Label))
}

// Picker is a paged option list. Keys are routed by the calendar's key
// registry, so the list itself never sees key messages.
type Picker struct {
	list list.Model
}

func NewPicker(styles widgets.Styles, height int) Picker {
	lst := list.New(nil, optionDelegate{styles: styles}, 16, height)
	lst.SetShowTitle(false)
	lst.SetShowStatusBar(false)
	lst.SetShowPagination(false)
	lst.SetFilteringEnabled(false)
	lst.SetShowHelp(false)
	lst.DisableQuitKeybindings()
	return Picker{list: lst}
}

// SetItems replaces the rows and keeps the cursor on the same index.
func (p *Picker) SetItems(items []OptionItem) {
	idx := p.list.Index()
	litems := make([]list.Item, 0, len(items))
	for _, it := range items {
		litems = append(litems, it)
	}
	_ = p.list.SetItems(litems)
	if len(items) > 0 {
		p.list.Select(min(idx, len(items)-1))
	}
}

// SelectActive moves the cursor to the active row, or the first one.
func (p *Picker) SelectActive() {
	for i, it := range p.list.Items() {
		if it.(OptionItem).Active {
			p.list.Select(i)
			return
		}
	}
	p.list.Select(0)
}

// SelectValue moves the cursor to the row holding v.
func (p *Picker) SelectValue(v int) bool {
	for i, it := range p.list.Items() {
		if it.(OptionItem).Value == v {
			p.list.Select(i)
			return true
		}
	}
	return false
}

func (p *Picker) Up()   { p.list.CursorUp() }
func (p *Picker) Down() { p.list.CursorDown() }

func (p *Picker) Index() int { return p.list.Index() }

// Selected returns the row under the cursor. Disabled rows are refused.
func (p *Picker) Selected() (OptionItem, bool) {
	it, ok := p.list.SelectedItem().(OptionItem)
	if !ok || it.Disabled {
		return OptionItem{}, false
	}
	return it, true
}

func (p *Picker) View() string { return p.list.View() }
