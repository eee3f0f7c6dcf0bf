package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/avahowell/devkit/b64"
	"github.com/avahowell/devkit/numbase"
	"github.com/avahowell/devkit/pwgen"
	"github.com/avahowell/devkit/repl"

	"github.com/fatih/color"
)

var (
	highlight = color.New(color.FgYellow)
	success   = color.New(color.FgGreen)
)

var toolArgs = map[string]tool{
	"base64":   toolBase64,
	"color":    toolColor,
	"date":     toolDate,
	"hash":     toolHash,
	"number":   toolNumber,
	"password": toolPassword,
	"qr":       toolQR,
	"uuid":     toolUUID,
}

var toggleArgs = []string{"uppercase", "lowercase", "numbers", "symbols", "similar", "duplicates", "sequential"}

var (
	genCmd = func(a *app) repl.Command {
		return repl.Command{
			Name:   "gen",
			Action: gen(a),
			Usage:  "gen: generate a password with the current settings",
		}
	}

	genBatchCmd = func(a *app) repl.Command {
		return repl.Command{
			Name:   "genbatch",
			Action: genbatch(a),
			Usage:  "genbatch: generate [quantity] passwords with the current settings",
		}
	}

	toggleCmd = func(a *app) repl.Command {
		return repl.Command{
			Name:        "toggle",
			Action:      toggle(a),
			Usage:       "toggle [uppercase|lowercase|numbers|symbols|similar|duplicates|sequential]: flip a password setting",
			Completions: toggleArgs,
		}
	}

	lengthCmd = func(a *app) repl.Command {
		return repl.Command{
			Name:   "length",
			Action: length(a),
			Usage:  "length [n|+|-]: set, increase or decrease the password length",
		}
	}

	quantityCmd = func(a *app) repl.Command {
		return repl.Command{
			Name:   "quantity",
			Action: quantity(a),
			Usage:  "quantity [n|+|-]: set, increase or decrease the number of passwords genbatch creates",
		}
	}

	settingsCmd = func(a *app) repl.Command {
		return repl.Command{
			Name:   "settings",
			Action: settings(a),
			Usage:  "settings: show the password settings and the last generated passwords",
		}
	}

	clearPwCmd = func(a *app) repl.Command {
		return repl.Command{
			Name:   "clearpw",
			Action: clearpw(a),
			Usage:  "clearpw: forget the last generated passwords",
		}
	}

	copyCmd = func(a *app) repl.Command {
		return repl.Command{
			Name:        "copy",
			Action:      copyOutput(a),
			Usage:       "copy [tool]: copy the output of [tool] to the clipboard, default password. The clipboard is cleared after a timeout.",
			Completions: toolNamesSorted(),
		}
	}

	exportCmd = func(a *app) repl.Command {
		return repl.Command{
			Name:        "export",
			Action:      exportOutput(a),
			Usage:       "export [tool]: write the output of [tool] to the export directory",
			Completions: toolNamesSorted(),
		}
	}

	b64EncCmd = func(a *app) repl.Command {
		return repl.Command{
			Name:   "b64enc",
			Action: b64enc(a),
			Usage:  "b64enc [text]: base64 encode text",
		}
	}

	b64DecCmd = func(a *app) repl.Command {
		return repl.Command{
			Name:   "b64dec",
			Action: b64dec(a),
			Usage:  "b64dec [text]: decode base64 text",
		}
	}

	colorCmd = func(a *app) repl.Command {
		return repl.Command{
			Name:   "color",
			Action: convertTool(a, toolColor),
			Usage:  "color [code]: convert a hex, rgb, cmyk or hsl color code",
		}
	}

	dateCmd = func(a *app) repl.Command {
		return repl.Command{
			Name:   "date",
			Action: convertTool(a, toolDate),
			Usage:  "date [date]: convert a unix timestamp or date to every supported format",
		}
	}

	hashCmd = func(a *app) repl.Command {
		return repl.Command{
			Name:   "hash",
			Action: convertTool(a, toolHash),
			Usage:  "hash [text]: hash text with every supported algorithm",
		}
	}

	qrCmd = func(a *app) repl.Command {
		return repl.Command{
			Name:   "qr",
			Action: convertTool(a, toolQR),
			Usage:  "qr [text]: render text as a QR code",
		}
	}

	baseCmd = func(a *app) repl.Command {
		return repl.Command{
			Name:   "base",
			Action: base(a),
			Usage:  "base [number] [from] [to]: convert a number between bases 2, 10 and 16",
		}
	}

	uuidCmd = func(a *app) repl.Command {
		return repl.Command{
			Name:        "uuid",
			Action:      uuids(a),
			Usage:       "uuid [v4|v7] [count]: generate UUIDs, count optional",
			Completions: []string{"v4", "v7"},
		}
	}
)

func toolNamesSorted() []string {
	return []string{"base64", "color", "date", "hash", "number", "password", "qr", "uuid"}
}

// replCommands returns every command the REPL registers for a.
func replCommands(a *app) []repl.Command {
	return []repl.Command{
		genCmd(a), genBatchCmd(a), toggleCmd(a), lengthCmd(a), quantityCmd(a),
		settingsCmd(a), clearPwCmd(a), copyCmd(a), exportCmd(a),
		b64EncCmd(a), b64DecCmd(a), colorCmd(a), dateCmd(a), hashCmd(a),
		qrCmd(a), baseCmd(a), uuidCmd(a),
	}
}

func gen(a *app) repl.ActionFunc {
	return func(args []string) (string, error) {
		pw, err := a.passwords.GenerateOne()
		if err != nil {
			return "", err
		}
		return highlight.Sprint(pw) + "\n", nil
	}
}

func genbatch(a *app) repl.ActionFunc {
	return func(args []string) (string, error) {
		passwords, err := a.passwords.GenerateBatch()
		if err != nil {
			return "", err
		}
		printstring := ""
		for _, pw := range passwords {
			printstring += highlight.Sprint(pw) + "\n"
		}
		return printstring, nil
	}
}

func toggle(a *app) repl.ActionFunc {
	return func(args []string) (string, error) {
		if len(args) != 1 {
			return "", fmt.Errorf("toggle requires 1 argument. See help for usage.")
		}
		g := a.passwords
		switch args[0] {
		case "uppercase":
			g.ToggleClass(pwgen.Uppercase)
		case "lowercase":
			g.ToggleClass(pwgen.Lowercase)
		case "numbers":
			g.ToggleClass(pwgen.Numbers)
		case "symbols":
			g.ToggleClass(pwgen.Symbols)
		case "similar":
			g.ToggleSimilarExclusion()
		case "duplicates":
			g.ToggleDuplicates()
		case "sequential":
			g.ToggleSequential()
		default:
			return "", fmt.Errorf("unknown setting %q, expected one of %v", args[0], strings.Join(toggleArgs, ", "))
		}
		return strings.Join(passwordSettingsLines(g.Settings()), "\n") + "\n", nil
	}
}

// adjust applies "+", "-" or an absolute value through the given setters.
func adjust(name string, args []string, inc, dec func(), set func(int)) error {
	if len(args) != 1 {
		return fmt.Errorf("%v requires 1 argument. See help for usage.", name)
	}
	switch args[0] {
	case "+":
		inc()
	case "-":
		dec()
	default:
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%v must be a number, + or -: %w", name, err)
		}
		set(n)
	}
	return nil
}

func length(a *app) repl.ActionFunc {
	return func(args []string) (string, error) {
		g := a.passwords
		if err := adjust("length", args, g.IncreaseLength, g.DecreaseLength, g.SetLength); err != nil {
			return "", err
		}
		return fmt.Sprintf("length set to %v\n", g.Settings().Length), nil
	}
}

func quantity(a *app) repl.ActionFunc {
	return func(args []string) (string, error) {
		g := a.passwords
		if err := adjust("quantity", args, g.IncreaseQuantity, g.DecreaseQuantity, g.SetQuantity); err != nil {
			return "", err
		}
		return fmt.Sprintf("quantity set to %v\n", g.Settings().Quantity), nil
	}
}

func settings(a *app) repl.ActionFunc {
	return func(args []string) (string, error) {
		snap := a.passwords.Snapshot()
		printstring := strings.Join(passwordSettingsLines(snap.Settings), "\n") + "\n"
		for _, pw := range snap.Output {
			printstring += highlight.Sprint(pw) + "\n"
		}
		return printstring, nil
	}
}

func clearpw(a *app) repl.ActionFunc {
	return func(args []string) (string, error) {
		a.passwords.Clear()
		return "passwords cleared\n", nil
	}
}

func parseToolArg(args []string) (tool, error) {
	if len(args) == 0 {
		return toolPassword, nil
	}
	t, ok := toolArgs[args[0]]
	if !ok {
		return 0, fmt.Errorf("unknown tool %q, expected one of %v", args[0], strings.Join(toolNamesSorted(), ", "))
	}
	return t, nil
}

func copyOutput(a *app) repl.ActionFunc {
	return func(args []string) (string, error) {
		t, err := parseToolArg(args)
		if err != nil {
			return "", err
		}
		value := a.primaryOutput(t)
		if value == "" {
			return "", fmt.Errorf("%v has no output to copy", t)
		}
		if a.clip == nil {
			return "", fmt.Errorf("clipboard is not available")
		}
		if err := a.clip.Clip(value); err != nil {
			return "", err
		}
		return fmt.Sprintf("%v output copied to clipboard\n", t), nil
	}
}

func exportOutput(a *app) repl.ActionFunc {
	return func(args []string) (string, error) {
		t, err := parseToolArg(args)
		if err != nil {
			return "", err
		}
		path, err := a.exportTool(t)
		if err != nil {
			return "", err
		}
		return success.Sprintf("exported to %v", path) + "\n", nil
	}
}

func b64enc(a *app) repl.ActionFunc {
	return func(args []string) (string, error) {
		if len(args) != 1 {
			return "", fmt.Errorf("b64enc requires 1 argument. See help for usage.")
		}
		a.inputs[toolBase64] = args[0]
		a.b64Output = b64.Encode(args[0])
		return a.b64Output + "\n", nil
	}
}

func b64dec(a *app) repl.ActionFunc {
	return func(args []string) (string, error) {
		if len(args) != 1 {
			return "", fmt.Errorf("b64dec requires 1 argument. See help for usage.")
		}
		decoded, err := b64.Decode(args[0])
		if err != nil {
			return "", err
		}
		a.inputs[toolBase64] = args[0]
		a.b64Output = decoded
		return decoded + "\n", nil
	}
}

// convertTool runs one of the converters that recompute from their input and
// prints the tool panel.
func convertTool(a *app, t tool) repl.ActionFunc {
	return func(args []string) (string, error) {
		if len(args) != 1 {
			return "", fmt.Errorf("%v requires 1 argument. See help for usage.", t)
		}
		a.inputs[t] = args[0]
		a.refresh(t)
		switch t {
		case toolColor:
			if a.colorErr != nil {
				return "", a.colorErr
			}
		case toolDate:
			if a.dateErr != nil {
				return "", a.dateErr
			}
		case toolQR:
			if a.qrErr != nil {
				return "", a.qrErr
			}
			return a.qr.String(), nil
		}
		return panelBody(a, t), nil
	}
}

// panelBody renders the tool panel for t without the input line.
func panelBody(a *app, t tool) string {
	prev := a.current
	a.current = t
	body := a.content()
	a.current = prev
	body = strings.TrimPrefix(body, "Input: "+a.inputs[t]+"\n\n")
	return body + "\n"
}

func parseBase(s string) (int, error) {
	b, err := strconv.Atoi(s)
	if err != nil || (b != numbase.Binary && b != numbase.Decimal && b != numbase.Hexadecimal) {
		return 0, fmt.Errorf("unsupported base %q, expected 2, 10 or 16", s)
	}
	return b, nil
}

func base(a *app) repl.ActionFunc {
	return func(args []string) (string, error) {
		if len(args) != 3 {
			return "", fmt.Errorf("base requires 3 arguments. See help for usage.")
		}
		from, err := parseBase(args[1])
		if err != nil {
			return "", err
		}
		to, err := parseBase(args[2])
		if err != nil {
			return "", err
		}
		a.inputs[toolNumber] = args[0]
		a.numFrom, a.numTo = from, to
		a.refresh(toolNumber)
		return strings.Join(a.number.Lines()[3:], "\n") + "\n", nil
	}
}

func uuids(a *app) repl.ActionFunc {
	return func(args []string) (string, error) {
		if len(args) < 1 || len(args) > 2 {
			return "", fmt.Errorf("uuid requires 1 or 2 arguments. See help for usage.")
		}
		u := a.uuids
		if len(args) == 2 {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return "", fmt.Errorf("uuid count must be a number: %w", err)
			}
			if err := u.SetCount(n); err != nil {
				return "", err
			}
		}
		var ids []string
		switch args[0] {
		case "v4":
			if err := u.GenerateV4Batch(); err != nil {
				return "", err
			}
			ids = u.V4
		case "v7":
			if err := u.GenerateV7Batch(); err != nil {
				return "", err
			}
			ids = u.V7
		default:
			return "", fmt.Errorf("unknown uuid version %q, expected v4 or v7", args[0])
		}
		return strings.Join(ids, "\n") + "\n", nil
	}
}
