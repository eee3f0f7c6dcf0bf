package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/mattn/go-shellwords"
)

// ErrUnknownCommand is returned from eval when the first word of a line is
// not a registered command.
var ErrUnknownCommand = errors.New("command not recognized. Type `help` for a list of commands.")

type (
	// REPL is a read-eval-print loop that dispatches each input line to a
	// registered Command.
	REPL struct {
		prompt          string
		commands        map[string]Command
		prefixCompleter *readline.PrefixCompleter
		input           io.Reader
		output          io.Writer
		rl              *readline.Instance
		stopfunc        func()
		stopped         bool
	}

	// Command is a command that can be registered with the REPL. It consists
	// of a name, an action that is run when the name is input to the REPL, a
	// usage string, and optional first-argument completions.
	Command struct {
		Name        string
		Action      ActionFunc
		Usage       string
		Completions []string
	}

	// ActionFunc defines the signature of an action associated with a command.
	// Actions receive the arguments that followed the command name, split
	// shell-style so quoted arguments may contain spaces. Actions return the
	// text to print, or an error if the action fails.
	ActionFunc func([]string) (string, error)
)

// New instantiates a new REPL using the provided `prompt`.
func New(prompt string) *REPL {
	r := &REPL{
		commands: make(map[string]Command),
		prompt:   prompt,
		input:    os.Stdin,
		output:   os.Stdout,
	}

	r.AddCommand(Command{
		Name:  "help",
		Usage: "help: displays available commands and their usage",
		Action: func(args []string) (string, error) {
			return r.Usage(), nil
		},
	})

	r.AddCommand(Command{
		Name:  "exit",
		Usage: "exit: exit the interactive prompt",
		Action: func(args []string) (string, error) {
			return "", r.Stop()
		},
	})

	r.AddCommand(Command{
		Name:  "clear",
		Usage: "clear: clear the terminal",
		Action: func(args []string) (string, error) {
			_, err := readline.ClearScreen(r.output)
			if err != nil {
				return "", err
			}
			return "", nil
		},
	})

	return r
}

// SetIO replaces the REPL's input and output, which default to stdin and
// stdout.
func (r *REPL) SetIO(in io.Reader, out io.Writer) {
	r.input = in
	r.output = out
}

// OnStop registers a function to be called when the REPL stops.
func (r *REPL) OnStop(sf func()) {
	r.stopfunc = sf
}

// Stop ends the loop after the current line and runs the stop function.
func (r *REPL) Stop() error {
	if r.stopped {
		return nil
	}
	r.stopped = true
	if r.stopfunc != nil {
		r.stopfunc()
	}
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}

// Usage returns the usage for every command in the REPL, sorted by name.
func (r *REPL) Usage() string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		b.WriteString(r.commands[name].Usage)
		b.WriteByte('\n')
	}
	return b.String()
}

// AddCommand registers the command provided in `cmd` with the REPL.
func (r *REPL) AddCommand(cmd Command) {
	r.commands[cmd.Name] = cmd

	var completers []readline.PrefixCompleterInterface
	for name, c := range r.commands {
		var children []readline.PrefixCompleterInterface
		for _, arg := range c.Completions {
			children = append(children, readline.PcItem(arg))
		}
		completers = append(completers, readline.PcItem(name, children...))
	}

	r.prefixCompleter = readline.NewPrefixCompleter(completers...)
}

// eval evaluates a line that was input to the REPL.
func (r *REPL) eval(line string) (string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return "", err
	}
	if len(args) == 0 {
		return "", nil
	}

	cmd, exists := r.commands[args[0]]
	if !exists {
		return "", ErrUnknownCommand
	}

	return cmd.Action(args[1:])
}

// Loop starts the Read-Eval-Print loop. It returns when the input ends, the
// user interrupts, or a command calls Stop.
func (r *REPL) Loop() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:       r.prompt,
		AutoComplete: r.prefixCompleter,
		Stdin:        io.NopCloser(r.input),
		Stdout:       r.output,
	})
	if err != nil {
		return err
	}
	defer rl.Close()
	r.rl = rl

	for !r.stopped {
		line, err := r.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				r.Stop()
			}
			break
		}
		res, err := r.eval(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(r.output, err.Error())
			continue
		}
		if res != "" {
			fmt.Fprint(r.output, res)
		}
	}
	return nil
}
