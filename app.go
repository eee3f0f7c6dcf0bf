package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/avahowell/devkit/b64"
	"github.com/avahowell/devkit/colorconv"
	"github.com/avahowell/devkit/dateconv"
	"github.com/avahowell/devkit/export"
	"github.com/avahowell/devkit/hashgen"
	"github.com/avahowell/devkit/numbase"
	"github.com/avahowell/devkit/pwgen"
	"github.com/avahowell/devkit/qrgen"
	"github.com/avahowell/devkit/uuidgen"
)

type tool int

const (
	toolBase64 tool = iota
	toolColor
	toolDate
	toolHash
	toolNumber
	toolPassword
	toolQR
	toolUUID
	toolCount
)

var toolNames = [toolCount]string{
	toolBase64:   "Base64 Encoder",
	toolColor:    "Color Converter",
	toolDate:     "Date Converter",
	toolHash:     "Hash Generator",
	toolNumber:   "Number Base Converter",
	toolPassword: "Password Generator",
	toolQR:       "QR Code Generator",
	toolUUID:     "UUID Generator",
}

func (t tool) String() string {
	if t < 0 || t >= toolCount {
		return "unknown"
	}
	return toolNames[t]
}

// typed reports whether the tool reads free text input, as opposed to
// single-key commands.
func (t tool) typed() bool {
	return t != toolPassword && t != toolUUID
}

var errNothingToExport = errors.New("nothing to export yet")

// clipper is the clipboard collaborator.
type clipper interface {
	Clip(string) error
}

// app holds the state of every tool and routes terminal key strings to them.
// It does no rendering and never touches the terminal.
type app struct {
	current tool
	inputs  [toolCount]string
	flash   string
	quit    bool

	passwords *pwgen.Generator
	uuids     *uuidgen.Generator

	b64Output   string
	colorResult colorconv.Result
	colorErr    error
	dateResult  dateconv.Result
	dateErr     error
	hashes      hashgen.Digests
	number      numbase.Result
	numFrom     int
	numTo       int
	qr          *qrgen.Code
	qrErr       error

	exporter *export.Exporter
	clip     clipper
	log      *slog.Logger
}

func newApp(passwords *pwgen.Generator, exporter *export.Exporter, clip clipper, log *slog.Logger) *app {
	if log == nil {
		log = slog.Default()
	}
	a := &app{
		passwords: passwords,
		uuids:     uuidgen.New(),
		numFrom:   numbase.Decimal,
		numTo:     numbase.Binary,
		exporter:  exporter,
		clip:      clip,
		log:       log,
	}
	for t := tool(0); t < toolCount; t++ {
		a.refresh(t)
	}
	return a
}

// handleKey applies one key press. Keys use termui's KeyStr notation.
func (a *app) handleKey(key string) {
	switch key {
	case "<escape>", "C-c":
		a.quit = true
		return
	case "<tab>":
		a.current = (a.current + 1) % toolCount
		a.flash = ""
		return
	}

	if a.current.typed() {
		a.handleTextKey(key)
		return
	}
	switch a.current {
	case toolPassword:
		a.handlePasswordKey(key)
	case toolUUID:
		a.handleUUIDKey(key)
	}
}

func (a *app) handleTextKey(key string) {
	t := a.current
	switch key {
	case "C-8", "<backspace>":
		if r := []rune(a.inputs[t]); len(r) > 0 {
			a.inputs[t] = string(r[:len(r)-1])
		}
	case "<space>":
		a.inputs[t] += " "
	case "<enter>":
		if t == toolBase64 {
			a.b64Output = b64.Encode(a.inputs[t])
		}
	case "C-e":
		if t == toolBase64 {
			a.b64Output = b64.Encode(a.inputs[t])
		}
		return
	case "C-d":
		if t == toolBase64 {
			a.decodeBase64()
		}
		return
	case "C-f":
		if t == toolNumber {
			a.numFrom = numbase.Next(a.numFrom)
		}
	case "C-t":
		if t == toolNumber {
			a.numTo = numbase.Next(a.numTo)
		}
	case "C-x":
		a.exportCurrent()
		return
	case "C-y":
		a.copyCurrent()
		return
	default:
		if len([]rune(key)) != 1 {
			return
		}
		a.inputs[t] += key
	}
	a.flash = ""
	a.refresh(t)
}

func (a *app) decodeBase64() {
	decoded, err := b64.Decode(a.inputs[toolBase64])
	if err != nil {
		a.b64Output = err.Error()
		return
	}
	a.b64Output = decoded
}

// refresh recomputes the output of a converter that follows its input.
func (a *app) refresh(t tool) {
	input := a.inputs[t]
	switch t {
	case toolColor:
		a.colorResult, a.colorErr = colorconv.Convert(input)
	case toolDate:
		a.dateResult, a.dateErr = dateconv.Convert(input)
	case toolHash:
		a.hashes = hashgen.Sum(input)
	case toolNumber:
		a.number = numbase.Convert(input, a.numFrom, a.numTo)
	case toolQR:
		a.qr, a.qrErr = qrgen.Generate(input)
	}
}

func (a *app) handlePasswordKey(key string) {
	g := a.passwords
	var err error
	switch key {
	case "g":
		_, err = g.GenerateOne()
	case "m":
		_, err = g.GenerateBatch()
	case "i":
		g.IncreaseLength()
	case "d":
		g.DecreaseLength()
	case "k":
		g.IncreaseQuantity()
	case "j":
		g.DecreaseQuantity()
	case "u":
		g.ToggleClass(pwgen.Uppercase)
	case "l":
		g.ToggleClass(pwgen.Lowercase)
	case "n":
		g.ToggleClass(pwgen.Numbers)
	case "s":
		g.ToggleClass(pwgen.Symbols)
	case "z":
		g.ToggleSimilarExclusion()
	case "q":
		g.ToggleDuplicates()
	case "v":
		g.ToggleSequential()
	case "c":
		g.Clear()
	case "x":
		a.exportCurrent()
		return
	case "y":
		a.copyCurrent()
		return
	default:
		return
	}
	if err != nil {
		a.log.Warn("password generation failed", "error", err, "settings", g.Settings())
		a.flash = err.Error()
		return
	}
	a.flash = ""
}

func (a *app) handleUUIDKey(key string) {
	u := a.uuids
	var err error
	switch key {
	case "s":
		err = u.GenerateV4()
	case "m":
		err = u.GenerateV4Batch()
	case "w":
		err = u.GenerateV7()
	case "e":
		err = u.GenerateV7Batch()
	case "i":
		u.IncreaseCount()
	case "d":
		u.DecreaseCount()
	case "c":
		u.Clear()
	case "x":
		a.exportCurrent()
		return
	case "y":
		a.copyCurrent()
		return
	default:
		return
	}
	if err != nil {
		a.flash = err.Error()
		return
	}
	a.flash = ""
}

// exportLines returns the export file name and contents of a text-based tool.
func (a *app) exportLines(t tool) (string, []string, error) {
	input := a.inputs[t]
	switch t {
	case toolBase64:
		if a.b64Output == "" {
			return "", nil, errNothingToExport
		}
		return export.Base64File, []string{"Input: " + input, "Output: " + a.b64Output}, nil
	case toolColor:
		if a.colorErr != nil {
			return "", nil, a.colorErr
		}
		r := a.colorResult
		return export.ColorFile, []string{
			"Entered Color Code: " + input,
			"CMYK: " + r.CMYK,
			"RGB: " + r.RGB,
			"HEX: " + r.Hex,
			"HSL: " + r.HSL,
		}, nil
	case toolDate:
		if a.dateErr != nil {
			return "", nil, a.dateErr
		}
		return export.DateFile, append([]string{"Input: " + input}, dateLines(a.dateResult)...), nil
	case toolHash:
		return export.HashFile, append([]string{"Input: " + input}, a.hashes.Lines()...), nil
	case toolNumber:
		return export.NumberFile, a.number.Lines(), nil
	case toolPassword:
		out := a.passwords.Output()
		if len(out) == 0 {
			return "", nil, errNothingToExport
		}
		return export.PasswordFile, out, nil
	case toolUUID:
		if len(a.uuids.V4) == 0 && len(a.uuids.V7) == 0 {
			return "", nil, errNothingToExport
		}
		return export.UUIDFile, a.uuids.Lines(), nil
	}
	return "", nil, fmt.Errorf("%v cannot be exported", t)
}

func (a *app) exportTool(t tool) (string, error) {
	if a.exporter == nil {
		return "", errors.New("export is not configured")
	}
	if t == toolQR {
		if a.qr == nil {
			return "", qrgen.ErrNotGenerated
		}
		png, err := a.qr.PNG()
		if err != nil {
			return "", err
		}
		return a.exporter.Write(a.qr.Filename(), png)
	}
	name, lines, err := a.exportLines(t)
	if err != nil {
		return "", err
	}
	return a.exporter.WriteLines(name, lines)
}

func (a *app) exportCurrent() {
	path, err := a.exportTool(a.current)
	if err != nil {
		a.log.Warn("export failed", "tool", a.current.String(), "error", err)
		a.flash = "Failed to export: " + err.Error()
		return
	}
	a.flash = "Successfully exported to " + path
}

// primaryOutput is the value the copy key puts on the clipboard.
func (a *app) primaryOutput(t tool) string {
	switch t {
	case toolBase64:
		return a.b64Output
	case toolColor:
		if a.colorErr == nil {
			return a.colorResult.Hex
		}
	case toolDate:
		if a.dateErr == nil {
			return a.dateResult.RFC3339
		}
	case toolHash:
		return a.hashes.SHA256
	case toolNumber:
		return a.number.Result
	case toolPassword:
		return strings.Join(a.passwords.Output(), "\n")
	case toolUUID:
		return strings.Join(append(append([]string(nil), a.uuids.V4...), a.uuids.V7...), "\n")
	case toolQR:
		return a.inputs[toolQR]
	}
	return ""
}

func (a *app) copyCurrent() {
	value := a.primaryOutput(a.current)
	if value == "" {
		a.flash = "nothing to copy"
		return
	}
	if a.clip == nil {
		a.flash = "clipboard is not available"
		return
	}
	if err := a.clip.Clip(value); err != nil {
		a.log.Warn("clipboard copy failed", "error", err)
		a.flash = "Failed to copy: " + err.Error()
		return
	}
	a.flash = "copied " + a.current.String() + " output to clipboard"
}

func dateLines(r dateconv.Result) []string {
	return []string{
		"RFC 3339: " + r.RFC3339,
		"RFC 2822: " + r.RFC2822,
		"ISO 8601: " + r.ISO8601,
		"Unix Timestamp: " + r.UnixTimestamp,
		"Human Readable: " + r.HumanReadable,
		"Short Date: " + r.ShortDate,
		"Time Only: " + r.TimeOnly,
	}
}

func passwordSettingsLines(s pwgen.Settings) []string {
	return []string{
		"Length: " + strconv.Itoa(s.Length),
		"Quantity: " + strconv.Itoa(s.Quantity),
		"Uppercase: " + strconv.FormatBool(s.Uppercase),
		"Lowercase: " + strconv.FormatBool(s.Lowercase),
		"Numbers: " + strconv.FormatBool(s.Numbers),
		"Symbols: " + strconv.FormatBool(s.Symbols),
		"Exclude Similar: " + strconv.FormatBool(s.ExcludeSimilar),
		"Allow Duplicates: " + strconv.FormatBool(s.AllowDuplicates),
		"Allow Sequential: " + strconv.FormatBool(s.AllowSequential),
	}
}

// content renders the current tool's panel as plain text.
func (a *app) content() string {
	t := a.current
	var lines []string
	if t.typed() {
		lines = append(lines, "Input: "+a.inputs[t], "")
	}
	switch t {
	case toolBase64:
		lines = append(lines, "Output: "+a.b64Output)
	case toolColor:
		if a.inputs[t] == "" {
			break
		}
		if a.colorErr != nil {
			lines = append(lines, a.colorErr.Error())
			break
		}
		r := a.colorResult
		lines = append(lines, "CMYK: "+r.CMYK, "RGB: "+r.RGB, "HEX: "+r.Hex, "HSL: "+r.HSL)
	case toolDate:
		if a.inputs[t] == "" {
			break
		}
		if a.dateErr != nil {
			lines = append(lines, a.dateErr.Error())
			break
		}
		lines = append(lines, dateLines(a.dateResult)...)
	case toolHash:
		lines = append(lines, a.hashes.Lines()...)
	case toolNumber:
		lines = append(lines, fmt.Sprintf("%v -> %v", numbase.Name(a.numFrom), numbase.Name(a.numTo)))
		lines = append(lines, a.number.Lines()[3:]...)
	case toolPassword:
		snap := a.passwords.Snapshot()
		lines = append(lines, passwordSettingsLines(snap.Settings)...)
		lines = append(lines, "")
		lines = append(lines, snap.Output...)
	case toolQR:
		if a.qr == nil {
			msg := "No QR code generated yet, please enter the data in the input field to create one."
			if a.inputs[t] != "" && a.qrErr != nil {
				msg = a.qrErr.Error()
			}
			lines = append(lines, msg)
			break
		}
		lines = append(lines, a.qr.String())
	case toolUUID:
		lines = append(lines, "Count: "+strconv.Itoa(a.uuids.Count), "")
		lines = append(lines, a.uuids.Lines()...)
	}
	return strings.Join(lines, "\n")
}

// help returns the key guide for the current tool.
func (a *app) help() string {
	switch a.current {
	case toolPassword:
		return "g generate  m generate N  i/d length  k/j quantity  u/l/n/s classes  z similar  q duplicates  v sequential  c clear  x export  y copy"
	case toolUUID:
		return "s v4  m v4 x N  w v7  e v7 x N  i/d count  c clear  x export  y copy"
	case toolBase64:
		return "type to edit  C-e encode  C-d decode  C-x export  C-y copy"
	case toolNumber:
		return "type to edit  C-f from base  C-t to base  C-x export  C-y copy"
	}
	return "type to edit  C-x export  C-y copy"
}
