package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestMapKeyBindings(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key  tea.KeyMsg
		want Action
	}{
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, ActionActivate},
		{tea.KeyMsg{Type: tea.KeyUp}, ActionActivate},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, ActionActivate},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}, ActionActivate},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}, ActionPause},
		{tea.KeyMsg{Type: tea.KeyEsc}, ActionPause},
		{tea.KeyMsg{Type: tea.KeyCtrlS}, ActionScreenshot},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, ActionQuit},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, ActionQuit},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}, ActionNone},
		{tea.KeyMsg{Type: tea.KeyTab}, ActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKey(tc.key); got != tc.want {
			t.Errorf("MapKey(%q) = %v, expected %v", tc.key.String(), got, tc.want)
		}
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()

	press := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	if got := km.MapMouse(press); got != ActionActivate {
		t.Errorf("left press = %v, expected activate", got)
	}

	release := tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
	if got := km.MapMouse(release); got != ActionNone {
		t.Errorf("release = %v, expected none", got)
	}

	motion := tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}
	if got := km.MapMouse(motion); got != ActionNone {
		t.Errorf("motion = %v, expected none", got)
	}
}
