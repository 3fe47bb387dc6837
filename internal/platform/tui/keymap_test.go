package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func bindingHasKey(b key.Binding, want string) bool {
	for _, k := range b.Keys() {
		if k == want {
			return true
		}
	}
	return false
}

func TestDefaultKeyMapBindings(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		keys    []string
	}{
		{"left", km.Left, []string{"left", "a"}},
		{"right", km.Right, []string{"right", "d"}},
		{"launch", km.Launch, []string{" "}},
		{"pause", km.Pause, []string{"p"}},
		{"restart", km.Restart, []string{"r"}},
		{"quit", km.Quit, []string{"q", "esc", "ctrl+c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range tt.keys {
				if !bindingHasKey(tt.binding, k) {
					t.Errorf("%s should bind %q", tt.name, k)
				}
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()

	if len(km.ShortHelp()) == 0 {
		t.Error("short help should list bindings")
	}
	for _, b := range km.ShortHelp() {
		if b.Help().Key == "" || b.Help().Desc == "" {
			t.Errorf("binding %v needs help text", b.Keys())
		}
	}

	full := km.FullHelp()
	if len(full) == 0 {
		t.Fatal("full help should have columns")
	}
	total := 0
	for _, col := range full {
		total += len(col)
	}
	if total != 8 {
		t.Errorf("full help lists %d bindings, want all 8", total)
	}
}

func TestNoKeyBoundTwice(t *testing.T) {
	km := DefaultKeyMap()
	all := []key.Binding{
		km.Left, km.Right, km.Launch, km.Pause,
		km.Restart, km.Screenshot, km.Help, km.Quit,
	}

	seen := make(map[string]string)
	names := []string{"left", "right", "launch", "pause", "restart", "screenshot", "help", "quit"}
	for i, b := range all {
		for _, k := range b.Keys() {
			if prev, dup := seen[k]; dup {
				t.Errorf("key %q bound to both %s and %s", k, prev, names[i])
			}
			seen[k] = names[i]
		}
	}
}
