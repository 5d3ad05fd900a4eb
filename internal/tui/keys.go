package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the command-mode bindings. It satisfies help.KeyMap.
type keyMap struct {
	Focus     key.Binding
	Up        key.Binding
	Down      key.Binding
	PrevSub   key.Binding
	NextSub   key.Binding
	Gran      key.Binding
	Toggle    key.Binding
	Select    key.Binding
	Clear     key.Binding
	Close     key.Binding
	Reverse   key.Binding
	ShiftBack key.Binding
	ShiftFwd  key.Binding
	First     key.Binding
	Half      key.Binding
	Hover     key.Binding
	Delete    key.Binding
	AutoFix   key.Binding
	AddPoints key.Binding
	SplitSubs key.Binding
	Pair      key.Binding
	Edit      key.Binding
	Copy      key.Binding
	Save      key.Binding
	MorphFwd  key.Binding
	MorphBack key.Binding
	Diff      key.Binding
	View      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Focus:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "from/to")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PrevSub:   key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev subpath")),
		NextSub:   key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next subpath")),
		Gran:      key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "granularity")),
		Toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Clear:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		Close:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "start/close")),
		Reverse:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reverse")),
		ShiftBack: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "shift back")),
		ShiftFwd:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "shift forward")),
		First:     key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "first position")),
		Half:      key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "split in half")),
		Hover:     key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "preview half")),
		Delete:    key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "delete")),
		AutoFix:   key.NewBinding(key.WithKeys("F"), key.WithHelp("F", "auto fix")),
		AddPoints: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add points")),
		SplitSubs: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "split subpaths")),
		Pair:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pair subpaths")),
		Edit:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit path")),
		Copy:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy path")),
		Save:      key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "save")),
		MorphFwd:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "morph forward")),
		MorphBack: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "morph back")),
		Diff:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "diff")),
		View:      key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "diff view")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Toggle, k.Gran, k.Close, k.Edit, k.Save, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Focus, k.Up, k.Down, k.PrevSub, k.NextSub, k.Gran},
		{k.Toggle, k.Select, k.Clear, k.Close},
		{k.Reverse, k.ShiftBack, k.ShiftFwd, k.First, k.Half, k.Hover, k.Delete, k.AutoFix},
		{k.AddPoints, k.SplitSubs, k.Pair},
		{k.Edit, k.Copy, k.Save, k.MorphFwd, k.MorphBack, k.Diff, k.View, k.Help, k.Quit},
	}
}
