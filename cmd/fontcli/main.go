package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/fontsys"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'fontsys'
func tracer() tracing.Trace {
	return tracing.Select("fontsys")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":      "go",
		"trace.fontsys":        "Info",
		"trace.fontsys.db":     "Info",
		"trace.fontsys.scaler": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "", "Font file to load")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError) // will set the correct level later
	pterm.Info.Println("Welcome to the font system CLI")
	//
	// set up REPL
	repl, err := readline.New("fonts > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl}
	intp.sys = fontsys.New() // scans the system's font directories
	intp.glyphs = fontsys.NewGlyphCache(intp.sys)
	//
	// load font given on the command line
	if *fontname != "" {
		if err := intp.sys.LoadFontFile(*fontname); err != nil {
			tracer().Errorf(err.Error())
			os.Exit(4)
		}
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D")
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
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
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
	sys    *fontsys.FontSystem
	glyphs *fontsys.GlyphCache
	repl   *readline.Instance
}

func (intp *Intp) String() string {
	if intp == nil || intp.sys == nil {
		return "()"
	}
	return fmt.Sprintf("( faces=%d locale=%s )", intp.sys.Len(), intp.sys.Locale())
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := intp.parseCommand(line)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		err, quit := intp.execute(cmd)
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

type Op struct {
	code int
	args []string
}

const NOOP = -1
const (
	QUIT int = iota
	HELP
	LIST
	LOAD
	DIR
	QUERY
	MONO
	NAME
	LOCALE
	RENDER
	OUTLINE
)

var opMap = map[string]int{
	"quit":    QUIT,
	"help":    HELP,
	"list":    LIST,
	"load":    LOAD,
	"dir":     DIR,
	"query":   QUERY,
	"mono":    MONO,
	"name":    NAME,
	"locale":  LOCALE,
	"render":  RENDER,
	"outline": OUTLINE,
}

func (intp *Intp) parseCommand(line string) (*Op, error) {
	words := strings.Fields(line)
	code, ok := opMap[strings.ToLower(words[0])]
	if !ok {
		code = HELP
	}
	tracer().Debugf("parsed command: %v", words)
	return &Op{code: code, args: words[1:]}, nil
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:    quitOp,
	HELP:    helpOp,
	LIST:    listOp,
	LOAD:    loadOp,
	DIR:     dirOp,
	QUERY:   queryOp,
	MONO:    monoOp,
	NAME:    nameOp,
	LOCALE:  localeOp,
	RENDER:  renderOp,
	OUTLINE: outlineOp,
}

func (intp *Intp) execute(op *Op) (err error, stop bool) {
	f, ok := commandFn[op.code]
	if !ok {
		pterm.Error.Printf("unknown command code: %d\n", op.code)
		return nil, false
	}
	err, stop = f(intp, op)
	if err != nil {
		pterm.Error.Println(err)
		err = nil
	}
	return
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	pterm.Println("Goodbye!")
	return nil, true
}

func helpOp(intp *Intp, op *Op) (error, bool) {
	pterm.Info.Println("Commands")
	pterm.Println(`
	list                              list all known font faces
	load <path>                       load a font file (.ttf/.otf/.ttc/.otc)
	dir <path>                        load every font in a directory
	query <families> [attr...]       resolve a family list; attrs: bold, italic,
	                                  oblique, condensed, expanded, monospaced
	mono [attr...]                   find a monospaced face
	name <id>                         display name of a face
	locale                            show the detected text locale
	render <id> <char> <size> <png>   rasterize a glyph and write a PNG file
	outline <id> <char> <size>        print a glyph's outline path commands
	quit                              leave (also <ctrl>D)

	Families are comma-separated; generic names (serif, sans-serif, monospace,
	cursive, fantasy) are substituted with concrete ones.
	`)
	return nil, false
}
