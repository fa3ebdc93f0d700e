// Package repl implements the interactive terminal calculator: a
// tview session with an output pane, an input field with history
// recall, and a handful of meta commands on top of the calc evaluator.
package repl

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/lookbusy1344/bigint/bigint"
	"github.com/lookbusy1344/bigint/calc"
	"github.com/lookbusy1344/bigint/config"
)

// REPL represents the interactive calculator session
type REPL struct {
	App    *tview.Application
	Output *tview.TextView
	Input  *tview.InputField
	Layout *tview.Flex

	Evaluator *calc.Evaluator
	History   *InputHistory
	Config    *config.Config

	base int // current output base
}

// New creates a new interactive session with the given configuration
func New(cfg *config.Config) *REPL {
	ev := calc.NewEvaluator()
	ev.MaxPowExponent = cfg.Limits.MaxPowExponent

	r := &REPL{
		App:       tview.NewApplication(),
		Evaluator: ev,
		History:   NewInputHistory(cfg.Repl.HistorySize),
		Config:    cfg,
		base:      cfg.Output.Base,
	}

	r.initializeViews()
	r.buildLayout()
	r.setupKeyBindings()

	if cfg.Repl.PersistHistory && cfg.Repl.HistoryFile != "" {
		// Best effort; a broken history file must not block startup
		_ = r.History.LoadFile(cfg.Repl.HistoryFile)
	}

	return r
}

// initializeViews creates the panels
func (r *REPL) initializeViews() {
	r.Output = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(true)
	r.Output.SetBorder(true).SetTitle(" bigcalc ")

	r.Input = tview.NewInputField().
		SetLabel("> ").
		SetFieldWidth(0)
	r.Input.SetBorder(true).SetTitle(" Expression ")
	r.Input.SetDoneFunc(r.handleInput)
}

// buildLayout constructs the layout: output above, input below
func (r *REPL) buildLayout() {
	r.Layout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(r.Output, 0, 1, false).
		AddItem(r.Input, 3, 0, true)
}

// setupKeyBindings sets up keyboard shortcuts
func (r *REPL) setupKeyBindings() {
	r.Input.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp:
			if prev := r.History.Previous(); prev != "" {
				r.Input.SetText(prev)
			}
			return nil
		case tcell.KeyDown:
			r.Input.SetText(r.History.Next())
			return nil
		}
		return event
	})

	r.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlC:
			r.stop()
			return nil
		case tcell.KeyCtrlL:
			r.Output.Clear()
			return nil
		}
		return event
	})
}

// handleInput processes a submitted line
func (r *REPL) handleInput(key tcell.Key) {
	if key != tcell.KeyEnter {
		return
	}
	line := strings.TrimSpace(r.Input.GetText())
	if line == "" {
		return
	}
	r.Input.SetText("")
	r.History.Add(line)
	r.printf("[yellow]> %s[-]\n", tview.Escape(line))

	if strings.HasPrefix(line, ":") {
		r.runMeta(line)
		return
	}

	v, err := r.Evaluator.Evaluate(line)
	if err != nil {
		r.printf("[red]error: %v[-]\n", err)
		return
	}
	r.printResult(v)
}

// printResult renders a value in the current base, honouring the
// uppercase option for hex digits
func (r *REPL) printResult(v *bigint.Int) {
	text, err := v.Text(r.base)
	if err != nil {
		r.printf("[red]error: %v[-]\n", err)
		return
	}
	if r.Config.Output.Uppercase && r.base == 16 {
		text = upperHexDigits(text)
	}
	if r.Config.Repl.ShowResultIndex {
		r.printf("[green]$%d = %s[-]\n", r.Evaluator.HistoryLen(), text)
	} else {
		r.printf("[green]%s[-]\n", text)
	}
}

// runMeta executes a :command
func (r *REPL) runMeta(line string) {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":quit", ":q":
		r.stop()
	case ":clear":
		r.Evaluator.ClearVars()
		r.Output.Clear()
	case ":base":
		if len(fields) != 2 {
			r.printf("usage: :base 2|8|10|16\n")
			return
		}
		switch base, err := strconv.Atoi(fields[1]); {
		case err == nil && (base == 2 || base == 8 || base == 10 || base == 16):
			r.base = base
			r.printf("output base is now %d\n", r.base)
		default:
			r.printf("usage: :base 2|8|10|16\n")
		}
	case ":vars":
		vars := r.Evaluator.Vars()
		if len(vars) == 0 {
			r.printf("no variables\n")
			return
		}
		names := make([]string, 0, len(vars))
		for name := range vars {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			r.printf("%s = %s\n", name, vars[name])
		}
	case ":help", ":h":
		r.printf("%s", metaHelp)
	default:
		r.printf("unknown command %s (try :help)\n", fields[0])
	}
}

const metaHelp = `expressions:  + - * / % ** << >> == != < <= > >= ( )
functions:    abs(x) gcd(a,b) pow(b,e) log(x,b) cmp(a,b)
literals:     decimal, 0x hex, 0o octal, 0b binary, 1.5e3 scientific
values:       $1 $2 ... history, ans, name = expr assignment
commands:     :base N  :vars  :clear  :help  :quit
`

func (r *REPL) printf(format string, args ...any) {
	fmt.Fprintf(r.Output, format, args...)
	r.Output.ScrollToEnd()
}

// stop saves persistent state and ends the session
func (r *REPL) stop() {
	if r.Config.Repl.PersistHistory && r.Config.Repl.HistoryFile != "" {
		_ = r.History.SaveFile(r.Config.Repl.HistoryFile)
	}
	r.App.Stop()
}

// Run starts the interactive session and blocks until it exits
func (r *REPL) Run() error {
	r.App.SetRoot(r.Layout, true).SetFocus(r.Input)
	return r.App.Run()
}

// upperHexDigits upper-cases the digits of a hex rendering while
// leaving the 0x prefix and sign alone
func upperHexDigits(s string) string {
	prefix := strings.Index(s, "0x")
	if prefix < 0 {
		return strings.ToUpper(s)
	}
	return s[:prefix+2] + strings.ToUpper(s[prefix+2:])
}
