package quizui

import "github.com/charmbracelet/bubbles/key"

// keyMap binds the quiz gestures. Number keys double as direct choice
// selection.
type keyMap struct {
	PrevQuestion key.Binding
	NextQuestion key.Binding
	PrevChoice   key.Binding
	NextChoice   key.Binding
	Select       key.Binding
	Check        key.Binding
	Retry        key.Binding
	Submit       key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		PrevQuestion: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous question"),
		),
		NextQuestion: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next question"),
		),
		PrevChoice: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous choice"),
		),
		NextChoice: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next choice"),
		),
		Select: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "select choice"),
		),
		Check: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "check answer"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		Submit: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "submit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp lists the bindings for the one-line help footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextQuestion, k.NextChoice, k.Select, k.Check, k.Retry, k.Submit, k.Quit}
}

// FullHelp lists all bindings for the expanded help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevQuestion, k.NextQuestion, k.PrevChoice, k.NextChoice},
		{k.Select, k.Check, k.Retry, k.Submit, k.Quit},
	}
}
