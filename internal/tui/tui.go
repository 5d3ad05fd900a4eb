package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"shapeshifter/internal/actionmode"
	"shapeshifter/internal/config"
	"shapeshifter/internal/logger"
	"shapeshifter/internal/pathdata"
	"shapeshifter/internal/project"
	"shapeshifter/internal/store"
	"shapeshifter/internal/tui/state"
	"shapeshifter/internal/tui/util"
	helpview "shapeshifter/internal/tui/views/help"
	"shapeshifter/internal/tui/views/subpaths"
	"shapeshifter/internal/tui/views/toolbar"
	diffw "shapeshifter/internal/tui/widgets/diff"
	"shapeshifter/internal/tui/widgets/editor"
	"shapeshifter/internal/tui/widgets/statusbar"
)

// Options configures the editor.
type Options struct {
	Project *project.Project
	// Path is where w saves the project. Empty disables saving.
	Path   string
	Config *config.Config
	Log    *logger.Logger
	// Reloads, when set, replaces both shapes whenever the project file
	// changes on disk.
	Reloads <-chan project.Event
}

// Run shows the morph editor until the user quits. The project is updated in
// place with the edited paths whenever it is saved.
func Run(opts Options) error {
	m, err := newModel(opts)
	if err != nil {
		return err
	}
	defer m.close()
	p := tea.NewProgram(&m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// ===== Model =====

// frame is what the toolbar and preview render, recomputed on every change
// of either store.
type frame struct {
	toolbar actionmode.ToolbarData
	preview string
}

type model struct {
	// data
	proj    *project.Project
	path    string
	cfg     *config.Config
	log     *logger.Logger
	reloads <-chan project.Event
	orig    *[2]pathdata.Path // as loaded, for the diff

	// state
	editor *store.Store[actionmode.State]
	ui     *store.Store[state.UIState]
	subs   *store.Subscriptions
	frame  *frame

	// widgets
	input    textinput.Model
	inputErr string
	keys     keyMap
	help     help.Model
	noColor  bool
}

func newModel(opts Options) (model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Log
	if log == nil {
		log = logger.Discard()
	}
	proj := opts.Project
	if proj == nil {
		proj = project.Default()
	}
	from, to, err := proj.Layers()
	if err != nil {
		return model{}, err
	}

	noColor := util.NoColor(cfg.NoColor)
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	in := textinput.New()
	in.Prompt = "> "

	m := model{
		proj:    proj,
		path:    opts.Path,
		cfg:     cfg,
		log:     log.WithPrefix("tui"),
		reloads: opts.Reloads,
		orig:    &[2]pathdata.Path{from.PathData, to.PathData},
		editor:  store.New(actionmode.NewState(from, to)),
		ui:      store.New(state.UIState{MinCol: cfg.MinColumn}),
		subs:    &store.Subscriptions{},
		frame:   &frame{},
		input:   in,
		keys:    defaultKeys(),
		help:    help.New(),
		noColor: noColor,
	}

	f := m.frame
	m.subs.Add(store.CombineLatest(m.editor, m.ui, buildFrame, func(v frame) { *f = v }))
	m.subs.Add(store.Select(m.editor,
		func(s actionmode.State) actionmode.ActionMode { return s.Mode },
		func(a, b actionmode.ActionMode) bool { return a == b },
		func(mode actionmode.ActionMode) { m.log.Info("action mode: %s", mode) }))
	m.subs.Add(store.Select(m.editor,
		func(s actionmode.State) string { return s.Notice },
		func(a, b string) bool { return a == b },
		func(n string) {
			if n != "" {
				m.log.Warn("%s", n)
			}
		}))
	m.log.Debug("editing %q: %d and %d subpaths", proj.Name, from.PathData.SubPathCount(), to.PathData.SubPathCount())
	return m, nil
}

func buildFrame(s actionmode.State, u state.UIState) frame {
	f := frame{toolbar: actionmode.NewToolbarData(s.Toolbar())}
	p, err := pathdata.Interpolate(s.From.PathData, s.To.PathData, u.Fraction)
	if err != nil {
		f.preview = "(not compatible)"
	} else {
		f.preview = p.String()
	}
	return f
}

func (m model) close() { m.subs.Close() }

func (m model) Init() tea.Cmd {
	if m.reloads != nil {
		return waitReload(m.reloads)
	}
	return nil
}

// ===== Update =====

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui.Dispatch(func(s state.UIState) state.UIState { return state.Resize(s, msg.Width) })
		m.help.Width = msg.Width
		return m, nil
	case reloadMsg:
		m.reload(project.Event(msg))
		return m, waitReload(m.reloads)
	case tea.KeyMsg:
		if m.ui.State().Mode == state.INSERT {
			return m.updateInsert(msg)
		}
		return m.updateCmd(msg)
	}
	return m, nil
}

func (m model) updateInsert(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.input.Blur()
		m.inputErr = ""
		m.ui.Dispatch(state.ToggleMode)
		return m, nil
	case "enter":
		p, err := pathdata.Parse(m.input.Value())
		if err == nil && p.SubPathCount() == 0 {
			err = project.ErrEmptyPath
		}
		if err != nil {
			m.inputErr = err.Error()
			return m, nil
		}
		src := m.side()
		m.editor.Dispatch(func(s actionmode.State) actionmode.State { return withPath(s, src, p) })
		m.input.Blur()
		m.inputErr = ""
		m.ui.Dispatch(state.ToggleMode)
		m.notice(fmt.Sprintf("Replaced %s path data", src))
		m.clamp()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) updateCmd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	u := m.ui.State()
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit
	case key.Matches(msg, k.Help):
		m.ui.Dispatch(state.ToggleHelp)
	case key.Matches(msg, k.Focus):
		m.ui.Dispatch(state.ToggleFocus)
	case key.Matches(msg, k.Up), key.Matches(msg, k.Down):
		delta := 1
		if key.Matches(msg, k.Up) {
			delta = -1
		}
		if u.Gran == state.SUBPATH {
			n := m.layer().PathData.SubPathCount()
			m.ui.Dispatch(func(s state.UIState) state.UIState { return state.MoveSubPath(s, delta, n) })
		} else {
			n := m.layer().PathData.PointCount(u.SubIdx)
			m.ui.Dispatch(func(s state.UIState) state.UIState { return state.MoveCursor(s, delta, n) })
		}
	case key.Matches(msg, k.PrevSub), key.Matches(msg, k.NextSub):
		delta := 1
		if key.Matches(msg, k.PrevSub) {
			delta = -1
		}
		n := m.layer().PathData.SubPathCount()
		m.ui.Dispatch(func(s state.UIState) state.UIState { return state.MoveSubPath(s, delta, n) })
	case key.Matches(msg, k.Gran):
		m.ui.Dispatch(state.CycleGranularity)
	case key.Matches(msg, k.Toggle):
		m.click(true)
	case key.Matches(msg, k.Select):
		m.click(false)
	case key.Matches(msg, k.Clear):
		m.editor.Dispatch(actionmode.ClearSelections)
	case key.Matches(msg, k.Close):
		if m.editor.State().Mode == actionmode.ModeNone {
			m.editor.Dispatch(actionmode.StartActionMode)
		} else {
			m.editor.Dispatch(actionmode.CloseActionMode)
		}
	case key.Matches(msg, k.Reverse):
		m.editor.Dispatch(actionmode.ReverseSelectedSubPaths)
	case key.Matches(msg, k.ShiftBack):
		m.editor.Dispatch(actionmode.ShiftBackSelectedSubPaths)
	case key.Matches(msg, k.ShiftFwd):
		m.editor.Dispatch(actionmode.ShiftForwardSelectedSubPaths)
	case key.Matches(msg, k.First):
		m.editor.Dispatch(actionmode.ShiftPointToFront)
	case key.Matches(msg, k.Half):
		m.editor.Dispatch(actionmode.SplitInHalfClick)
	case key.Matches(msg, k.Hover):
		if m.editor.State().Hover == nil {
			m.editor.Dispatch(actionmode.SplitInHalfHover)
		} else {
			m.editor.Dispatch(actionmode.ClearHover)
		}
	case key.Matches(msg, k.Delete):
		m.editor.Dispatch(actionmode.DeleteSelections)
	case key.Matches(msg, k.AutoFix):
		if m.frame.toolbar.ShouldShowAutoFix() {
			m.editor.Dispatch(actionmode.AutoFixClick)
		}
	case key.Matches(msg, k.AddPoints):
		m.toggleMode(actionmode.ToggleSplitCommandsMode)
	case key.Matches(msg, k.SplitSubs):
		m.toggleMode(actionmode.ToggleSplitSubPathsMode)
	case key.Matches(msg, k.Pair):
		m.toggleMode(actionmode.TogglePairSubPathsMode)
	case key.Matches(msg, k.Edit):
		m.input.SetValue(m.layer().PathData.String())
		m.input.CursorEnd()
		m.inputErr = ""
		m.ui.Dispatch(state.ToggleMode)
		return m, m.input.Focus()
	case key.Matches(msg, k.Copy):
		if err := clipboard.WriteAll(m.layer().PathData.String()); err != nil {
			m.log.Warn("copy: %v", err)
			m.notice("Copy failed: " + err.Error())
		} else {
			m.notice(fmt.Sprintf("Copied %s path data", m.side()))
		}
	case key.Matches(msg, k.Save):
		m.save()
	case key.Matches(msg, k.MorphFwd):
		m.ui.Dispatch(func(s state.UIState) state.UIState { return state.StepFraction(s, 0.1) })
	case key.Matches(msg, k.MorphBack):
		m.ui.Dispatch(func(s state.UIState) state.UIState { return state.StepFraction(s, -0.1) })
	case key.Matches(msg, k.Diff):
		m.ui.Dispatch(state.ToggleDiff)
	case key.Matches(msg, k.View):
		m.ui.Dispatch(state.ToggleView)
	default:
		return m, nil
	}
	m.clamp()
	return m, nil
}

// side is the focused column as an action source.
func (m model) side() actionmode.ActionSource {
	if m.ui.State().Focus == state.RIGHT {
		return actionmode.To
	}
	return actionmode.From
}

func (m model) layer() actionmode.MorphableLayer {
	l, _ := m.editor.State().Layer(m.side())
	return l
}

func (m model) notice(n string) {
	m.ui.Dispatch(func(s state.UIState) state.UIState { return state.SetNotice(s, n) })
}

// clamp keeps the cursor on an existing point after the paths changed.
func (m model) clamp() {
	p := m.layer().PathData
	subs := p.SubPathCount()
	m.ui.Dispatch(func(s state.UIState) state.UIState {
		sub := state.Clamp(s, subs, 0).SubIdx
		return state.Clamp(s, subs, p.PointCount(sub))
	})
}

// toggleMode starts the action mode first so mode keys work from the
// inactive toolbar.
func (m model) toggleMode(toggle func(actionmode.State) actionmode.State) {
	m.editor.Dispatch(func(s actionmode.State) actionmode.State {
		return toggle(actionmode.StartActionMode(s))
	})
}

// click acts on the cursor the way a pointer click on the canvas would in
// the current action mode.
func (m model) click(extend bool) {
	u := m.ui.State()
	src := m.side()
	split := m.cfg.SplitFraction
	m.editor.Dispatch(func(s actionmode.State) actionmode.State {
		switch s.Mode {
		case actionmode.ModeSplitCommands:
			return actionmode.SplitCommandClick(s, src, u.SubIdx, u.CmdIdx, split)
		case actionmode.ModeSplitSubPaths:
			return actionmode.SplitSubPathClick(s, src, u.SubIdx, u.CmdIdx)
		case actionmode.ModePairSubPaths:
			return actionmode.PairSubPathClick(s, src, u.SubIdx)
		}
		sel := actionmode.Selection{Source: src, SubIdx: u.SubIdx}
		switch u.Gran {
		case state.SEGMENT:
			sel.Type, sel.CmdIdx = actionmode.SegmentSelection, u.CmdIdx
		case state.POINT:
			sel.Type, sel.CmdIdx = actionmode.PointSelection, u.CmdIdx
		default:
			sel.Type = actionmode.SubPathSelection
		}
		return actionmode.ToggleSelection(s, sel, extend)
	})
}

func withPath(s actionmode.State, src actionmode.ActionSource, p pathdata.Path) actionmode.State {
	from, to := s.From, s.To
	if src == actionmode.To {
		to.PathData = p
	} else {
		from.PathData = p
	}
	return actionmode.SetLayers(s, from, to)
}

func (m model) save() {
	if m.path == "" {
		m.notice("No project file to save to")
		return
	}
	s := m.editor.State()
	m.proj.SetPaths(s.From.PathData, s.To.PathData)
	if err := project.Save(m.path, m.proj); err != nil {
		m.log.Error("save %s: %v", m.path, err)
		m.notice("Save failed: " + err.Error())
		return
	}
	m.log.Info("saved %s", m.path)
	m.notice("Saved " + m.path)
}

// reload replaces both shapes with the project read from disk. Our own saves
// come back as reloads too and are ignored when nothing changed.
func (m model) reload(ev project.Event) {
	if ev.Err != nil {
		m.log.Warn("reload: %v", ev.Err)
		m.notice("Reload failed: " + ev.Err.Error())
		return
	}
	s := m.editor.State()
	if ev.Project.From == s.From.PathData.String() && ev.Project.To == s.To.PathData.String() {
		return
	}
	from, to, err := ev.Project.Layers()
	if err != nil {
		m.notice("Reload failed: " + err.Error())
		return
	}
	*m.proj = *ev.Project
	*m.orig = [2]pathdata.Path{from.PathData, to.PathData}
	m.editor.Dispatch(func(s actionmode.State) actionmode.State { return actionmode.SetLayers(s, from, to) })
	m.clamp()
	m.log.Info("reloaded %s", m.path)
	m.notice("Reloaded from disk")
}

// ===== Views =====

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	itemStyle  = lipgloss.NewStyle()
	selStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "205", Dark: "213"}).Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
	hoverStyle = lipgloss.NewStyle().Underline(true)
)

func toolbarStyle(td actionmode.ToolbarData) lipgloss.Style {
	bg := util.DefaultPalette().ToolbarColor(td.ActiveState())
	return lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color("#FFFFFF")).Padding(0, 1)
}

func (m model) View() string {
	u := m.ui.State()
	s := m.editor.State()
	td := m.frame.toolbar
	if u.ShowHelp {
		return helpview.RenderHelp(u, td.Mode().String()) + "\n" + m.help.FullHelpView(m.keys.FullHelp()) + "\n"
	}

	var b strings.Builder
	b.WriteString(m.viewToolbar(td, u.Width) + "\n\n")
	b.WriteString(m.viewColumns(s, u) + "\n")
	b.WriteString(faintStyle.Render(fmt.Sprintf("morph %.2f: ", u.Fraction)) + m.frame.preview + "\n")

	if u.Mode == state.INSERT {
		b.WriteString("\n" + editor.NewEditor().View(u, m.input.View(), m.inputErr))
	}
	if u.ShowDiff {
		b.WriteString("\n" + m.viewDiff(s, u))
	}

	status := u
	if s.Notice != "" {
		status.Notice = s.Notice
	}
	b.WriteString("\n" + statusbar.NewStatusBar().View(status, td.Mode().String()) + "\n")
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()) + "\n")
	return b.String()
}

func (m model) viewToolbar(td actionmode.ToolbarData, width int) string {
	style := toolbarStyle(td)
	if width > 2 {
		style = style.Width(width)
	}
	lines := []string{titleStyle.Render(td.Title())}
	if sub := td.Subtitle(); sub != "" {
		lines = append(lines, sub)
	}
	var acts []string
	for _, a := range toolbar.RenderActions(td) {
		acts = append(acts, a.Key+": "+a.Label)
	}
	lines = append(lines, strings.Join(acts, "   "))
	return style.Render(strings.Join(lines, "\n"))
}

func (m model) viewColumns(s actionmode.State, u state.UIState) string {
	left := m.viewSide(s, u, actionmode.From)
	right := m.viewSide(s, u, actionmode.To)
	if u.Width > 0 && u.Width < state.Threshold(u) {
		return left + "\n" + right
	}
	colWidth := u.MinCol
	if u.Width > 0 {
		colWidth = (u.Width - 3) / 2
	}
	col := lipgloss.NewStyle().Width(colWidth)
	return lipgloss.JoinHorizontal(lipgloss.Top, col.Render(left), " │ ", col.Render(right))
}

func (m model) viewSide(s actionmode.State, u state.UIState, src actionmode.ActionSource) string {
	l, _ := s.Layer(src)
	other, _ := s.Layer(src.Other())
	focused := m.side() == src

	var b strings.Builder
	head := l.Name
	if focused {
		head = selStyle.Render("▸ " + head)
	} else {
		head = titleStyle.Render("  " + head)
	}
	b.WriteString(head + "\n")
	for i, sp := range l.PathData.SubPaths {
		line := subpaths.RenderHeader(i, sp, other.PathData, m.noColor)
		subSel := actionmode.Selection{Source: src, Type: actionmode.SubPathSelection, SubIdx: i}
		mark := " "
		if s.IsSelected(subSel) {
			mark = "*"
		}
		if s.Unpaired != nil && s.Unpaired.Source == src && s.Unpaired.SubIdx == i {
			mark = "~"
		}
		cur := focused && u.SubIdx == i && u.Gran == state.SUBPATH
		if cur {
			b.WriteString(selStyle.Render(">"+mark) + line + "\n")
		} else {
			b.WriteString(" " + mark + itemStyle.Render(line) + "\n")
		}
		if !focused || u.SubIdx != i {
			continue
		}
		for j, c := range sp.Commands {
			b.WriteString(m.viewCommand(s, u, src, i, j, c) + "\n")
		}
	}
	return b.String()
}

func (m model) viewCommand(s actionmode.State, u state.UIState, src actionmode.ActionSource, sub, cmd int, c pathdata.Command) string {
	pt := actionmode.Selection{Source: src, Type: actionmode.PointSelection, SubIdx: sub, CmdIdx: cmd}
	seg := pt
	seg.Type = actionmode.SegmentSelection

	mark := " "
	switch {
	case s.IsSelected(pt), s.IsSelected(seg):
		mark = "*"
	case s.Pending != nil && *s.Pending == pt:
		mark = "○"
	}
	kind := " "
	switch {
	case c.IsSplitPoint():
		kind = "◆"
	case c.IsSplitSegment():
		kind = "═"
	}
	end := c.End()
	line := fmt.Sprintf("%s%s %2d %s %g,%g", mark, kind, cmd, c.Type, end.X, end.Y)
	if s.Hover != nil && *s.Hover == seg {
		line = hoverStyle.Render(line)
	}
	if u.Gran != state.SUBPATH && u.CmdIdx == cmd {
		return selStyle.Render("  > ") + line
	}
	return "    " + line
}

func (m model) viewDiff(s actionmode.State, u state.UIState) string {
	idx := 0
	if m.side() == actionmode.To {
		idx = 1
	}
	l, _ := s.Layer(m.side())
	before, after := pathLines(m.orig[idx]), pathLines(l.PathData)
	if m.noColor {
		return diffw.NewDiffView().View(u, before, after)
	}
	if u.View == state.SideBySide && u.Width >= state.Threshold(u) {
		return renderSideBySideDiff(before, after, (u.Width-5)/2)
	}
	return renderUnifiedDiff(before, after)
}
