package core

import "strings"

// Actions.
const (
	ActionQuit          = "quit"
	ActionFocusNext     = "focus-next"
	ActionOuterPrev     = "outer-prev"
	ActionOuterNext     = "outer-next"
	ActionPrevMonth     = "prev-month"
	ActionNextMonth     = "next-month"
	ActionMonthSelector = "month-selector"
	ActionYearSelector  = "year-selector"
	ActionCursorLeft    = "cursor-left"
	ActionCursorRight   = "cursor-right"
	ActionCursorUp      = "cursor-up"
	ActionCursorDown    = "cursor-down"
	ActionSelect        = "select"
	ActionClose         = "close"
)

var selectorScopes = []string{ScopeMonthSelector, ScopeYearSelector}

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"q", "ctrl+c"}, Action: ActionQuit, Description: "quit", Scopes: []string{ScopeApp}},
		{Keys: []string{"tab"}, Action: ActionFocusNext, Description: "next calendar", Scopes: []string{ScopeApp}},
		{Keys: []string{"["}, Action: ActionOuterPrev, Description: "all prev", Scopes: []string{ScopeApp}},
		{Keys: []string{"]"}, Action: ActionOuterNext, Description: "all next", Scopes: []string{ScopeApp}},
		{Keys: []string{"<", ","}, Action: ActionPrevMonth, Description: "prev month", Scopes: []string{ScopeCalendar}},
		{Keys: []string{">", "."}, Action: ActionNextMonth, Description: "next month", Scopes: []string{ScopeCalendar}},
		{Keys: []string{"m"}, Action: ActionMonthSelector, Description: "months", Scopes: []string{ScopeCalendar, ScopeYearSelector}},
		{Keys: []string{"y"}, Action: ActionYearSelector, Description: "years", Scopes: []string{ScopeCalendar, ScopeYearSelector}},
		{Keys: []string{"left", "h"}, Action: ActionCursorLeft, Description: "day left", Scopes: []string{ScopeCalendar}},
		{Keys: []string{"right", "l"}, Action: ActionCursorRight, Description: "day right", Scopes: []string{ScopeCalendar}},
		{Keys: []string{"up", "k"}, Action: ActionCursorUp, Description: "up", Scopes: []string{ScopeCalendar, ScopeMonthSelector, ScopeYearSelector}},
		{Keys: []string{"down", "j"}, Action: ActionCursorDown, Description: "down", Scopes: []string{ScopeCalendar, ScopeMonthSelector, ScopeYearSelector}},
		{Keys: []string{"enter", "space"}, Action: ActionSelect, Description: "select", Scopes: []string{ScopeCalendar, ScopeMonthSelector, ScopeYearSelector}},
		{Keys: []string{"esc"}, Action: ActionClose, Description: "close", Scopes: selectorScopes},
	}
}

func DefaultKeybindingsByAction(bindings []KeyBinding) map[string][]string {
	out := make(map[string][]string, len(bindings))
	for _, b := range bindings {
		if strings.TrimSpace(b.Action) == "" || len(b.Keys) == 0 {
			continue
		}
		if _, exists := out[b.Action]; exists {
			continue
		}
		out[b.Action] = append([]string(nil), b.Keys...)
	}
	return out
}

// ApplyActionKeybindings replaces the keys of every binding whose action
// appears in actionKeys.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}
