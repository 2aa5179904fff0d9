package viz

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/dsaviz/internal/analysis"
	"github.com/san-kum/dsaviz/internal/config"
	"github.com/san-kum/dsaviz/internal/input"
	"github.com/san-kum/dsaviz/internal/playback"
	"github.com/san-kum/dsaviz/internal/registry"
	"github.com/san-kum/dsaviz/internal/step"
)

const (
	screenCategories = iota
	screenAlgorithms
	screenInput
	screenPlayer
)

const (
	minIntervalMs = 25
	maxIntervalMs = 5000
)

// tickMsg advances autoplay. A tick whose epoch is older than the app's
// was scheduled before a pause, seek or reload and is dropped.
type tickMsg struct{ epoch int }

// App is the interactive visualizer: pick a category, pick an algorithm,
// edit its inputs, then step through the recording.
type App struct {
	reg    *registry.Registry
	log    *slog.Logger
	styles Styles

	screen    int
	catCursor int
	algCursor int
	selection registry.Selection
	entry     registry.Entry

	fields      []string
	raw         input.Raw
	fieldCursor int

	player   *playback.State
	epoch    int
	disorder []float64
	showHelp bool

	width, height int
}

// Options configures NewApp. A non-empty Selection skips the menus and
// opens the player on that algorithm with Raw as its input.
type Options struct {
	Registry  *registry.Registry
	Config    *config.Config
	Logger    *slog.Logger
	Selection registry.Selection
	Raw       input.Raw
}

func NewApp(opts Options) App {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	reg := opts.Registry
	if reg == nil {
		reg = registry.Default()
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	player := playback.NewState()
	if err := player.SetIntervalMs(cfg.IntervalMs); err != nil {
		log.Warn("ignoring configured interval", "interval_ms", cfg.IntervalMs, "error", err)
	}

	a := App{
		reg:    reg,
		log:    log,
		styles: NewStyles(GetTheme(cfg.Theme)),
		player: player,
		width:  100,
		height: 30,
	}
	a.moveTo(cfg.DefaultCategory, cfg.DefaultAlgorithm)
	if opts.Selection.Algorithm != "" {
		if e, ok := reg.Lookup(opts.Selection.Category, opts.Selection.Algorithm); ok {
			a.moveTo(e.Category, e.Algorithm)
			a.selectEntry(e)
			a.raw = opts.Raw
			a.generate()
		}
	}
	return a
}

// moveTo places the menu cursors on the named entry when it exists.
func (a *App) moveTo(category, algorithm string) {
	for i, c := range a.reg.Categories() {
		if c != category {
			continue
		}
		a.catCursor = i
		for j, name := range a.reg.Algorithms(c) {
			if name == algorithm {
				a.algCursor = j
			}
		}
	}
}

func (a App) Init() tea.Cmd { return nil }

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil
	case tickMsg:
		return a.onTick(msg)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		switch a.screen {
		case screenCategories:
			return a.categoryKey(msg)
		case screenAlgorithms:
			return a.algorithmKey(msg)
		case screenInput:
			return a.inputKey(msg)
		case screenPlayer:
			return a.playerKey(msg)
		}
	}
	return a, nil
}

func (a App) categoryKey(msg tea.KeyMsg) (App, tea.Cmd) {
	cats := a.reg.Categories()
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "up", "k":
		a.catCursor = max(a.catCursor-1, 0)
	case "down", "j":
		a.catCursor = min(a.catCursor+1, len(cats)-1)
	case "enter", " ", "right", "l":
		a.screen = screenAlgorithms
		a.algCursor = min(a.algCursor, len(a.reg.Algorithms(cats[a.catCursor]))-1)
	case "t":
		a.styles = NewStyles(NextTheme(a.styles.Theme))
	}
	return a, nil
}

func (a App) algorithmKey(msg tea.KeyMsg) (App, tea.Cmd) {
	cat := a.reg.Categories()[a.catCursor]
	algs := a.reg.Algorithms(cat)
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "esc", "left", "h":
		a.screen = screenCategories
		a.algCursor = 0
	case "up", "k":
		a.algCursor = max(a.algCursor-1, 0)
	case "down", "j":
		a.algCursor = min(a.algCursor+1, len(algs)-1)
	case "enter", " ", "right", "l":
		e, _ := a.reg.Lookup(cat, algs[a.algCursor])
		a.selectEntry(e)
		if ex, ok := config.GetExample(e.Algorithm); ok {
			a.raw = ex
		}
		a.screen = screenInput
	}
	return a, nil
}

func (a *App) selectEntry(e registry.Entry) {
	a.entry = e
	a.selection = registry.Selection{Category: e.Category, Algorithm: e.Algorithm}
	a.fields = e.Family.Fields()
	a.fieldCursor = 0
	a.raw = input.Raw{}
}

func (a App) inputKey(msg tea.KeyMsg) (App, tea.Cmd) {
	key := a.fields[a.fieldCursor]
	val := a.raw.Get(key)
	switch msg.Type {
	case tea.KeyEsc:
		a.screen = screenAlgorithms
		return a, nil
	case tea.KeyEnter:
		a.generate()
		return a, nil
	case tea.KeyTab, tea.KeyDown:
		a.fieldCursor = (a.fieldCursor + 1) % len(a.fields)
		return a, nil
	case tea.KeyShiftTab, tea.KeyUp:
		a.fieldCursor = (a.fieldCursor + len(a.fields) - 1) % len(a.fields)
		return a, nil
	case tea.KeyCtrlE:
		if ex, ok := config.GetExample(a.selection.Algorithm); ok {
			a.raw = ex
		}
		return a, nil
	case tea.KeyCtrlU:
		_ = a.raw.Set(key, "")
		return a, nil
	case tea.KeyBackspace:
		if len(val) > 0 {
			r := []rune(val)
			_ = a.raw.Set(key, string(r[:len(r)-1]))
		}
		return a, nil
	case tea.KeySpace:
		_ = a.raw.Set(key, val+" ")
		return a, nil
	case tea.KeyRunes:
		_ = a.raw.Set(key, val+string(msg.Runes))
	}
	return a, nil
}

// generate runs the selected algorithm and loads the result, paused at 0.
func (a *App) generate() {
	start := time.Now()
	seq, err := a.reg.Apply(a.selection.Category, a.selection.Algorithm, a.raw)
	if err != nil {
		a.log.Error("generation failed", "algorithm", a.selection.Algorithm, "error", err)
		return
	}
	a.log.Debug("generated", "category", a.selection.Category, "algorithm", a.selection.Algorithm,
		"steps", seq.Len(), "elapsed", time.Since(start))
	if seq.Invalid() {
		a.log.Warn("input rejected", "algorithm", a.selection.Algorithm, "reason", seq.Err())
	}
	a.epoch++
	a.player.Load(seq)
	a.disorder = analysis.Disorder(seq)
	a.screen = screenPlayer
}

func (a App) playerKey(msg tea.KeyMsg) (App, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "esc":
		a.epoch++
		a.player.Reset()
		a.screen = screenInput
	case " ", "p":
		if a.player.IsPlaying() {
			a.epoch++
			a.player.Pause()
			return a, nil
		}
		return a, a.play()
	case "right", "l":
		a.epoch++
		a.player.StepForward()
	case "left", "h":
		a.epoch++
		a.player.StepBack()
	case "home", "g", "r":
		a.epoch++
		a.player.Seek(0)
	case "end", "G":
		a.epoch++
		a.player.Seek(a.player.Len() - 1)
	case "+", "=":
		return a, a.setInterval(a.player.IntervalMs() / 2)
	case "-", "_":
		return a, a.setInterval(a.player.IntervalMs() * 2)
	case "t":
		a.styles = NewStyles(NextTheme(a.styles.Theme))
	case "?":
		a.showHelp = !a.showHelp
	}
	return a, nil
}

func (a *App) play() tea.Cmd {
	if !a.player.Play() {
		return nil
	}
	a.epoch++
	return a.tick()
}

func (a *App) setInterval(ms int) tea.Cmd {
	ms = min(max(ms, minIntervalMs), maxIntervalMs)
	if err := a.player.SetIntervalMs(ms); err != nil {
		return nil
	}
	if !a.player.IsPlaying() {
		return nil
	}
	a.epoch++
	return a.tick()
}

func (a App) tick() tea.Cmd {
	epoch := a.epoch
	return tea.Tick(a.player.Interval(), func(time.Time) tea.Msg { return tickMsg{epoch: epoch} })
}

func (a App) onTick(msg tickMsg) (App, tea.Cmd) {
	if msg.epoch != a.epoch || !a.player.Tick() {
		return a, nil
	}
	if a.player.IsPlaying() {
		return a, a.tick()
	}
	return a, nil
}

func (a App) View() string {
	switch a.screen {
	case screenCategories:
		return a.viewCategories()
	case screenAlgorithms:
		return a.viewAlgorithms()
	case screenInput:
		return a.viewInput()
	case screenPlayer:
		return a.viewPlayer()
	}
	return ""
}

func (a App) header(title, sub string) string {
	st := a.styles
	return "\n\n    " + st.Title.Render(title) + "\n    " + st.Subtitle.Render(sub) +
		"\n    " + st.Subtitle.Render("─────────────────────────") + "\n\n"
}

func (a App) menu(items []string, cursor int, note func(string) string) string {
	st := a.styles
	var b strings.Builder
	for i, name := range items {
		n := note(name)
		if i == cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", st.Key.Render("▸"), st.Selected.Render(fmt.Sprintf("%-30s", name)), st.Subtitle.Render(n)))
		} else {
			b.WriteString(fmt.Sprintf("      %s  %s\n", st.Item.Render(fmt.Sprintf("%-30s", name)), st.Item.Render(n)))
		}
	}
	return b.String()
}

func (a App) viewCategories() string {
	cats := a.reg.Categories()
	var b strings.Builder
	b.WriteString(a.header("DSAVIZ", "step-by-step algorithm visualizer"))
	b.WriteString(a.menu(cats, a.catCursor, func(c string) string {
		return fmt.Sprintf("%d algorithms", len(a.reg.Algorithms(c)))
	}))
	b.WriteString("\n    " + a.styles.KeyHints("j/k", "navigate", "enter", "select", "t", "theme", "q", "quit") + "\n")
	return b.String()
}

func (a App) viewAlgorithms() string {
	cat := a.reg.Categories()[a.catCursor]
	var b strings.Builder
	b.WriteString(a.header(strings.ToUpper(cat), "choose an algorithm"))
	b.WriteString(a.menu(a.reg.Algorithms(cat), a.algCursor, func(name string) string {
		e, _ := a.reg.Lookup(cat, name)
		return fmt.Sprintf("%s → %s", e.Family, e.View)
	}))
	b.WriteString("\n    " + a.styles.KeyHints("j/k", "navigate", "enter", "select", "esc", "back", "q", "quit") + "\n")
	return b.String()
}

func (a App) viewInput() string {
	st := a.styles
	var b strings.Builder
	b.WriteString(a.header(strings.ToUpper(a.selection.Algorithm), a.selection.Category))
	for i, f := range a.fields {
		val := a.raw.Get(f)
		if i == a.fieldCursor {
			b.WriteString(fmt.Sprintf("    %s %s %s\n", st.Key.Render("▸"), st.Selected.Render(fmt.Sprintf("%-10s", f)), st.Value.Render(val+"_")))
		} else {
			b.WriteString(fmt.Sprintf("      %s %s\n", st.Item.Render(fmt.Sprintf("%-10s", f)), st.Item.Render(val)))
		}
	}
	b.WriteString("\n    " + st.KeyHints("tab", "next field", "ctrl+e", "example", "ctrl+u", "clear", "enter", "run", "esc", "back") + "\n")
	return b.String()
}

func (a App) viewPlayer() string {
	st := a.styles
	f := a.player.Frame()
	var b strings.Builder

	b.WriteString(st.Title.Render(strings.ToUpper(a.selection.Algorithm)) + st.Subtitle.Render("  "+a.selection.Category) + "\n")
	status := st.Paused.Render("PAUSED")
	if f.Playing {
		status = st.Playing.Render("PLAYING")
	}
	b.WriteString(fmt.Sprintf("%s  %s %s  %s\n\n",
		status,
		st.Label.Render("Step"),
		st.Value.Render(fmt.Sprintf("%d/%d", f.Index+1, f.Total)),
		st.Hint.Render(fmt.Sprintf("%dms", a.player.IntervalMs()))))
	b.WriteString(st.ProgressBar(f.Index, f.Total, min(a.width-8, 60)) + "\n\n")

	if f.Empty() {
		b.WriteString(st.Hint.Render("nothing loaded") + "\n")
		return st.Panel.Render(b.String())
	}

	narr := f.Step.Narration
	if strings.HasPrefix(narr, step.ErrorPrefix) {
		b.WriteString(st.Error.Render(narr) + "\n\n")
	} else {
		b.WriteString(st.Narrate.Render(narr) + "\n\n")
	}
	b.WriteString(RenderStep(f.Step, st) + "\n")

	if f.Step.View.Kind == step.KindArray && len(a.disorder) > 1 {
		b.WriteString("\n" + st.Label.Render("disorder") + st.Sparkline(a.disorder[:f.Index+1], min(a.width-20, 60)) + "\n")
		if chart := ArrayChart(f.Step, min(a.width-16, 60), 6); chart != "" {
			b.WriteString(st.Graph.Render(chart) + "\n")
		}
	}

	b.WriteString("\n" + st.KeyHints("space", "play/pause", "h/l", "step", "g/G", "first/last", "+/-", "speed", "t", "theme", "esc", "back", "?", "help"))
	main := st.Panel.Render(b.String())
	if a.showHelp {
		return lipgloss.JoinVertical(lipgloss.Left, a.viewHelp(), main)
	}
	return main
}

func (a App) viewHelp() string {
	st := a.styles
	rows := [][2]string{
		{"space", "play or pause autoplay"},
		{"l / →", "step forward"},
		{"h / ←", "step back"},
		{"g / r", "jump to the first step"},
		{"G", "jump to the last step"},
		{"+ / -", "faster / slower"},
		{"t", "cycle themes"},
		{"esc", "edit inputs"},
		{"q", "quit"},
	}
	var b strings.Builder
	b.WriteString(st.Title.Render("KEYBOARD SHORTCUTS") + "\n\n")
	for _, r := range rows {
		b.WriteString(st.Key.Width(10).Render(r[0]) + st.Value.Render(r[1]) + "\n")
	}
	return st.Panel.Render(b.String())
}

// Run starts the interactive program on the terminal.
func Run(opts Options) error {
	_, err := tea.NewProgram(NewApp(opts), tea.WithAltScreen()).Run()
	return err
}
