package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/fontfind"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'fontfind'
func tracer() tracing.Trace {
	return tracing.Select("fontfind")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.fontfind":  "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	cachefile := flag.String("cache", "", "Font corpus cache file to load/save")
	flag.Parse()
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	pterm.Info.Println("Welcome to the font discovery CLI")
	//
	// set up REPL
	repl, err := readline.New("fontfind > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl, cachefile: *cachefile}
	//
	// load or build the font corpus
	if err := intp.loadManager(); err != nil {
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	pterm.Info.Println("Quit with <ctrl>D")
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	manager   *fontfind.FontManager
	repl      *readline.Instance
	cachefile string
}

func (intp *Intp) loadManager() error {
	ctx := context.Background()
	if intp.cachefile != "" {
		m, err := fontfind.LoadOrRebuild(ctx, intp.cachefile, fontfind.Config{})
		if err != nil {
			return err
		}
		intp.manager = m
		return nil
	}
	intp.manager = fontfind.New(fontfind.Config{})
	return intp.manager.Rebuild(ctx)
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		err, quit := intp.execute(line)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

func (intp *Intp) execute(line string) (err error, quit bool) {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "quit":
		return nil, true
	case "help":
		printHelp()
	case "list":
		kind := fontfind.KindScalable
		if len(args) > 0 && args[0] == "afm" {
			kind = fontfind.KindMetric
		}
		printEntries(intp.manager.Entries(kind))
	case "rebuild":
		err = intp.manager.Rebuild(context.Background())
	case "save":
		if intp.cachefile == "" {
			return fmt.Errorf("no cache file given (use -cache)"), false
		}
		err = fontfind.SaveCache(intp.manager, intp.cachefile)
	case "info":
		if len(args) != 1 {
			return fmt.Errorf("usage: info <fontfile>"), false
		}
		err = printFileInfo(args[0])
	case "find":
		err = intp.find(args)
	default:
		return fmt.Errorf("unknown command %q, try help", cmd), false
	}
	return err, false
}

// find resolves a request of the form
//
//	find <family>[,<family>...] [style|weight|stretch|size ...] [afm]
func (intp *Intp) find(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: find <family>[,<family>…] [attributes…]")
	}
	req := fontfind.FontProperties{
		Family: strings.Split(args[0], ","),
	}
	opts := []fontfind.MatchOption{}
	for _, tok := range args[1:] {
		if tok == "afm" {
			opts = append(opts, fontfind.WithKind(fontfind.KindMetric))
			continue
		}
		if err := applyToken(&req, tok); err != nil {
			return err
		}
	}
	path, err := intp.manager.FindFont(context.Background(), req, opts...)
	if err != nil {
		return err
	}
	pterm.Printf("%s\n", path)
	return nil
}

// applyToken guesses which request axis a token belongs to. Numeric
// tokens below 100 are point sizes, from 100 up they are weights.
func applyToken(req *fontfind.FontProperties, tok string) error {
	if style, err := fontfind.ParseStyle(tok); err == nil {
		req.Style = style
		return nil
	}
	if variant, err := fontfind.ParseVariant(tok); err == nil {
		req.Variant = variant
		return nil
	}
	if stretch, err := fontfind.StretchClass(tok); err == nil {
		req.Stretch = stretch
		return nil
	}
	if v, err := strconv.Atoi(tok); err == nil && v < 100 {
		req.Size = fontfind.PointSize(float64(v))
		return nil
	}
	if weight, err := fontfind.ParseWeight(tok); err == nil {
		req.Weight = weight
		return nil
	}
	if size, err := fontfind.ParseSize(tok, 12); err == nil {
		req.Size = size
		return nil
	}
	return fmt.Errorf("cannot interpret attribute %q", tok)
}
