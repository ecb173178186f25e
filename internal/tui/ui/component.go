package ui

// MenuHint describes a keyboard shortcut for display in the menu bar.
type MenuHint struct {
	Key         string
	Description string
	Numeric     bool // 1-3 tab shortcuts, drawn in a different color
}

// Component is implemented by every page the shell can show.
type Component interface {
	Name() string
	Hints() []MenuHint
	ApplyTheme(t *Theme)
}
