// Copyright
// SPDX-License-Identifier: MIT
// shapeshifter: make two SVG paths morphable, check them, fix them, and preview the morph
package main

import (
    "context"
    "errors"
    "flag"
    "fmt"
    "io"
    "os"
    "os/signal"
    "path/filepath"
    "strings"

    "github.com/mitchellh/go-homedir"

    "shapeshifter/internal/actionmode"
    "shapeshifter/internal/config"
    "shapeshifter/internal/logger"
    "shapeshifter/internal/pathdata"
    "shapeshifter/internal/project"
    appTUI "shapeshifter/internal/tui"
)

const Version = "0.3.0"

const defaultProject = "shape.yaml"

/* ---------- CLI ---------- */

func main() {
    if len(os.Args) < 2 {
        usage()
        return
    }
    switch os.Args[1] {
    case "help", "-h", "--help":
        if len(os.Args) > 2 {
            helpTopic(os.Args[2])
        } else {
            usage()
        }
    case "version", "--version":
        fmt.Println("shapeshifter", Version)
        return
    case "init":
        cmdInit()
    case "check":
        cmdCheck()
    case "fix":
        cmdFix()
    case "morph":
        cmdMorph()
    case "edit":
        cmdEdit()
    default:
        usage()
    }
}

func usage() {
    fmt.Println(`shapeshifter ` + Version + `
Make the "from" and "to" paths of a morph compatible: same sub-paths, same point counts.
USAGE
  shapeshifter <command> [options] [PROJECT]
COMMANDS
  init         Scaffold a project file (default: shape.yaml)
  check        Report whether the two paths can morph and what is missing
  fix          Add the missing points and sub-paths automatically
  morph        Print the path data part way through the morph
  edit         Open the interactive editor
  help         Show help (try: shapeshifter help edit)
  version      Print version
NOTES
  • Settings live in ~/.shapeshifter/config.json (override with -config).
  • -v and -vv raise log verbosity; the editor logs to the configured log file.`)
}

func helpTopic(name string) {
    switch name {
    case "check":
        fmt.Println(`USAGE
  shapeshifter check [-config PATH] [-v | -vv] [PROJECT]
DESCRIPTION
  Compares the sub-paths of both shapes in order and prints the first
  mismatch the way the editor toolbar would. Exits with status 1 when the
  shapes are not compatible.`)
    case "fix":
        fmt.Println(`USAGE
  shapeshifter fix [-w] [-config PATH] [-v | -vv] [PROJECT]
DESCRIPTION
  Adds missing sub-paths as collapsed dots, halves the longest segments of the
  side with fewer points, then rotates and reverses closed sub-paths so the
  morph travels the shortest distance.
OPTIONS
  -w                     Write the result back to PROJECT instead of printing it`)
    case "morph":
        fmt.Println(`USAGE
  shapeshifter morph [-t F | -steps N] [-config PATH] [PROJECT]
DESCRIPTION
  Prints the interpolated path data. The shapes must be compatible.
OPTIONS
  -t F                   Fraction between 0 (from) and 1 (to). Default 0.5
  -steps N               Print N+1 evenly spaced frames instead of one`)
    case "edit":
        fmt.Println(`USAGE
  shapeshifter edit [-watch] [-no-color] [-config PATH] [-v | -vv] [-log-file PATH] [PROJECT]
DESCRIPTION
  Opens the terminal editor. Press ? inside for keys. A missing PROJECT starts
  from the default square and triangle and is created on save (w).
OPTIONS
  -watch                 Reload the project when it changes on disk
  -no-color              Disable colours (NO_COLOR is honoured too)
  -log-file PATH         Append logs here instead of the configured log file`)
    default:
        usage()
    }
}

/* ---------- shared ---------- */

// commonFlags are accepted by every command that reads a project.
type commonFlags struct {
    configPath *string
    verbose    *bool
    debug      *bool
}

func newFlagSet(name string) (*flag.FlagSet, commonFlags) {
    fs := flag.NewFlagSet(name, flag.ExitOnError)
    fs.Usage = func() { helpTopic(name) }
    return fs, commonFlags{
        configPath: fs.String("config", "", "Settings file (default ~/.shapeshifter/config.json)"),
        verbose:    fs.Bool("v", false, "Verbose logs (INFO)"),
        debug:      fs.Bool("vv", false, "Debug logs (DEBUG)"),
    }
}

func (c commonFlags) level(fallback logger.Level) logger.Level {
    switch {
    case *c.debug:
        return logger.LevelDebug
    case *c.verbose:
        return logger.LevelInfo
    }
    return fallback
}

func (c commonFlags) loadConfig() *config.Config {
    path := *c.configPath
    if path == "" {
        p, err := config.DefaultPath()
        if err != nil {
            return config.Default()
        }
        path = p
    }
    cfg, err := config.Load(path)
    if err != nil {
        fmt.Fprintln(os.Stderr, "Could not load settings:", err)
        return config.Default()
    }
    return cfg
}

func projectArg(fs *flag.FlagSet) string {
    if fs.NArg() > 0 {
        return fs.Arg(0)
    }
    return defaultProject
}

func mustLoad(path string, log *logger.Logger) *project.Project {
    p, err := project.Load(path)
    if err != nil {
        log.Error("load %s: %v", path, err)
        fmt.Fprintln(os.Stderr, "Could not load project:", err)
        os.Exit(2)
    }
    log.Debug("loaded %s (%q)", path, p.Name)
    return p
}

/* ---------- commands ---------- */

func cmdInit() {
    fs, _ := newFlagSet("init")
    force := fs.Bool("force", false, "Overwrite an existing project")
    _ = fs.Parse(os.Args[2:])
    path := projectArg(fs)

    if _, err := os.Stat(path); err == nil && !*force {
        fmt.Println(path, "already exists; not overwriting")
        return
    }
    p := project.Default()
    p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
    if err := project.Save(path, p); err != nil {
        fmt.Fprintln(os.Stderr, "Could not write project:", err)
        os.Exit(1)
    }
    fmt.Println("Wrote", path)
}

func cmdCheck() {
    fs, common := newFlagSet("check")
    _ = fs.Parse(os.Args[2:])
    common.loadConfig()
    log := logger.New(os.Stderr, common.level(logger.LevelWarn), "check")
    path := projectArg(fs)
    p := mustLoad(path, log)

    from, to, err := p.Layers()
    if err != nil {
        fmt.Fprintln(os.Stderr, err)
        os.Exit(2)
    }
    block := actionmode.Block{LayerID: p.Name, From: from.PathData, To: to.PathData}
    td := actionmode.NewToolbarData(actionmode.ToolbarState{
        Mode:      actionmode.ModeSelection,
        FromLayer: &from,
        ToLayer:   &to,
        Block:     &block,
    })
    fmt.Printf("%s\n", p.Name)
    printSide("from", from.PathData, to.PathData)
    printSide("to", to.PathData, from.PathData)
    if td.Compatibility().Compatible {
        fmt.Println("✓ compatible")
        return
    }
    c := td.Compatibility()
    log.Info("subpath %d on %s is missing %d points", c.SubIdx, c.ErrorSide, c.PointsMissing)
    fmt.Println("✗ " + td.Subtitle())
    os.Exit(1)
}

func printSide(name string, p, other pathdata.Path) {
    fmt.Printf("  %s: %d subpaths\n", name, p.SubPathCount())
    for i, sp := range p.SubPaths {
        shape := "open"
        if sp.IsClosed() {
            shape = "closed"
        }
        warn := ""
        if n := other.PointCount(i) - sp.PointCount(); n > 0 {
            warn = fmt.Sprintf("  ⚠ missing %d", n)
        }
        fmt.Printf("    [%d] %s, %d points%s\n", i, shape, sp.PointCount(), warn)
    }
}

func cmdFix() {
    fs, common := newFlagSet("fix")
    write := fs.Bool("w", false, "Write the result back to the project")
    _ = fs.Parse(os.Args[2:])
    common.loadConfig()
    log := logger.New(os.Stderr, common.level(logger.LevelWarn), "fix")
    path := projectArg(fs)
    p := mustLoad(path, log)

    from, to, err := p.Paths()
    if err != nil {
        fmt.Fprintln(os.Stderr, err)
        os.Exit(2)
    }
    if actionmode.CheckCompatible(from, to).Compatible {
        log.Info("already compatible; aligning only")
    }
    from, to = actionmode.AutoFix(from, to)
    if c := actionmode.CheckCompatible(from, to); !c.Compatible {
        fmt.Fprintln(os.Stderr, "Auto fix could not make the shapes compatible")
        os.Exit(1)
    }
    p.SetPaths(from, to)
    if !*write {
        fmt.Println("from:", p.From)
        fmt.Println("to:  ", p.To)
        return
    }
    if err := project.Save(path, p); err != nil {
        fmt.Fprintln(os.Stderr, "Could not write project:", err)
        os.Exit(1)
    }
    fmt.Println("Wrote", path)
}

func cmdMorph() {
    fs, common := newFlagSet("morph")
    t := fs.Float64("t", 0.5, "Fraction between 0 (from) and 1 (to)")
    steps := fs.Int("steps", 0, "Print N+1 evenly spaced frames")
    _ = fs.Parse(os.Args[2:])
    common.loadConfig()
    log := logger.New(os.Stderr, common.level(logger.LevelWarn), "morph")
    p := mustLoad(projectArg(fs), log)

    from, to, err := p.Paths()
    if err != nil {
        fmt.Fprintln(os.Stderr, err)
        os.Exit(2)
    }
    fractions := []float64{*t}
    if *steps > 0 {
        fractions = fractions[:0]
        for i := 0; i <= *steps; i++ {
            fractions = append(fractions, float64(i)/float64(*steps))
        }
    }
    for _, f := range fractions {
        frame, err := pathdata.Interpolate(from, to, f)
        if errors.Is(err, pathdata.ErrIncompatible) {
            fmt.Fprintln(os.Stderr, "Shapes are not compatible; run 'shapeshifter check' or 'shapeshifter fix'")
            os.Exit(1)
        }
        if err != nil {
            fmt.Fprintln(os.Stderr, err)
            os.Exit(1)
        }
        if len(fractions) > 1 {
            fmt.Printf("%.3f  %s\n", f, frame)
        } else {
            fmt.Println(frame)
        }
    }
}

func cmdEdit() {
    fs, common := newFlagSet("edit")
    watch := fs.Bool("watch", false, "Reload the project when it changes on disk")
    noColor := fs.Bool("no-color", false, "Disable colours")
    logPath := fs.String("log-file", "", "Append logs to file (created if missing)")
    _ = fs.Parse(os.Args[2:])
    cfg := common.loadConfig()
    if *noColor {
        cfg.NoColor = true
    }
    if *watch {
        cfg.Watch = true
    }
    if *logPath != "" {
        cfg.LogFile = *logPath
    }

    level, err := logger.ParseLevel(cfg.LogLevel)
    if err != nil {
        fmt.Fprintln(os.Stderr, err)
    }
    level = common.level(level)
    log, closer := openLog(cfg.LogFile, level)
    defer closer.Close()

    path := projectArg(fs)
    p, err := project.Load(path)
    switch {
    case errors.Is(err, os.ErrNotExist):
        log.Info("%s does not exist; starting from the default project", path)
        p = project.Default()
        p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
    case err != nil:
        fmt.Fprintln(os.Stderr, "Could not load project:", err)
        os.Exit(2)
    }

    ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
    defer stop()
    var reloads <-chan project.Event
    if cfg.Watch {
        if _, statErr := os.Stat(path); statErr == nil {
            ch, err := project.Watch(ctx, path)
            if err != nil {
                log.Warn("watch %s: %v", path, err)
            } else {
                reloads = ch
            }
        }
    }

    if err := appTUI.Run(appTUI.Options{Project: p, Path: path, Config: cfg, Log: log, Reloads: reloads}); err != nil {
        log.Error("editor: %v", err)
        fmt.Fprintln(os.Stderr, "Editor failed:", err)
        os.Exit(1)
    }
}

// openLog opens the log file, falling back to a discarding logger when it
// cannot be created.
func openLog(path string, level logger.Level) (*logger.Logger, io.Closer) {
    if path == "" || level == logger.LevelOff {
        return logger.Discard(), io.NopCloser(nil)
    }
    path, err := homedir.Expand(path)
    if err == nil {
        var log *logger.Logger
        var c io.Closer
        if log, c, err = logger.OpenFile(path, level); err == nil {
            return log, c
        }
    }
    fmt.Fprintln(os.Stderr, "Could not open log file:", err)
    return logger.Discard(), io.NopCloser(nil)
}
