package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	log "chiproll/logger"
)

type mode byte

const (
	demoMode    mode = iota // Built-in demo tune (default command)
	viewMode                // Visualize a raw PCM stream
	analyzeMode             // Offline analysis to JSON
	versionMode             // Show version
)

type (
	CLI struct {
		Demo    Demo    `cmd:"" help:"Play the built-in demo tune. (default command)" default:"true"`
		View    View    `cmd:"" help:"Visualize a raw PCM stream."`
		Analyze Analyze `cmd:"" help:"Analyze a raw PCM stream offline, write note events as JSON."`
		Version Version `cmd:"" help:"Show chiproll version."`

		Log logModMask `help:"${log_help}" placeholder:"mod0,mod1,..."`

		mode mode
	}

	Demo struct {
		Expansion bool   `name:"expansion" help:"Add the VRC6 expansion voices."`
		Mute      bool   `name:"mute" help:"Do not open an audio device."`
		Dump      string `name:"dump" help:"${dump_help}" type:"path"`
	}

	View struct {
		Path string `arg:"" name:"/path/to/pcm" help:"${pcm_help}"`

		Rate  int    `name:"rate" help:"Sample rate of the stream." default:"44100"`
		Block int    `name:"block" help:"Frames per analysis block." default:"1024"`
		Mute  bool   `name:"mute" help:"Analyze and display only, no playback."`
		Dump  string `name:"dump" help:"${dump_help}" type:"path"`
	}

	Analyze struct {
		Path string `arg:"" name:"/path/to/pcm" help:"${pcm_help}"`

		Rate   int    `name:"rate" help:"Sample rate of the stream." default:"44100"`
		Block  int    `name:"block" help:"Frames per analysis block." default:"1024"`
		Output string `name:"output" short:"o" help:"Output file, or - for stdout." default:"-"`
	}

	Version struct{}
)

var vars = kong.Vars{
	"pcm_help":  "Interleaved s16le stereo samples, - for stdin.",
	"dump_help": "On exit, write the note event log as JSON to FILE.",
	"log_help":  "Enable logging for specified modules.",
}

func parseArgs(args []string) CLI {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("chiproll"),
		kong.Description("Chiptune piano-roll visualizer."),
		kong.UsageOnError(),
		kong.Help(printHelp),
		vars)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(args)
	checkf(err, "failed to parse command line")
	checkf(ctx.Error, "failed to parse command line")

	switch {
	case ctx.Command() == "version":
		cli.mode = versionMode
	case strings.HasPrefix(ctx.Command(), "view"):
		cli.mode = viewMode
	case strings.HasPrefix(ctx.Command(), "analyze"):
		cli.mode = analyzeMode
	default:
		cli.mode = demoMode
	}
	return cli
}

func printHelp(options kong.HelpOptions, ctx *kong.Context) error {
	if err := kong.DefaultHelpPrinter(options, ctx); err != nil {
		return err
	}

	loggingHelp := `
Log modules:
  The --log flag accepts a comma-separated list of modules.

  Valid log modules are:
%s

  As a special case, the following values are accepted:
    - no                     Disable all logging.
    - all                    Enable all logs.
`
	var strs []string
	for _, m := range log.ModuleNames() {
		strs = append(strs, "    - "+m)
	}
	fmt.Fprintf(os.Stderr, loggingHelp, strings.Join(strs, "\n"))
	return nil
}

type logModMask log.ModuleMask

// Decode decodes a comma-separated list of module names into a module
// mask.
//
// Implements kong.MapperValue interface.
func (lm *logModMask) Decode(ctx *kong.DecodeContext) error {
	tok := ctx.Scan.Pop()
	for _, v := range strings.Split(tok.Value.(string), ",") {
		switch v {
		case "no":
			*lm = 0
		case "all":
			*lm = logModMask(log.ModuleMaskAll)
		default:
			m, found := log.ModuleByName(v)
			if !found {
				return fmt.Errorf("invalid log module name %q", v)
			}
			*lm |= logModMask(m.Mask())
		}
	}
	return nil
}
