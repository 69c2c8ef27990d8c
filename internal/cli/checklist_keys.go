package cli

import "github.com/charmbracelet/bubbles/key"

// checklistKeyMap implements help.KeyMap for the checklist TUI.
type checklistKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Toggle     key.Binding
	Expand     key.Binding
	LevelA     key.Binding
	LevelAA    key.Binding
	LevelAAA   key.Binding
	Design     key.Binding
	Develop    key.Binding
	Content    key.Binding
	Language   key.Binding
	Label      key.Binding
	ExportJSON key.Binding
	ExportPDF  key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func newChecklistKeyMap() checklistKeyMap {
	return checklistKeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:     key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "toggle done")),
		Expand:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		LevelA:     key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "level A")),
		LevelAA:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "level AA")),
		LevelAAA:   key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "level AAA")),
		Design:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "design")),
		Develop:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "develop")),
		Content:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "content")),
		Language:   key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "language")),
		Label:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "label")),
		ExportJSON: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export json")),
		ExportPDF:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "export pdf")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k checklistKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Expand, k.Language, k.Help, k.Quit}
}

func (k checklistKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Expand},
		{k.LevelA, k.LevelAA, k.LevelAAA},
		{k.Design, k.Develop, k.Content},
		{k.Language, k.Label, k.ExportJSON, k.ExportPDF},
		{k.Help, k.Quit},
	}
}
