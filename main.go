package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/avahowell/devkit/config"
	"github.com/avahowell/devkit/export"
	"github.com/avahowell/devkit/logger"
	"github.com/avahowell/devkit/pwgen"
	"github.com/avahowell/devkit/repl"
	"github.com/avahowell/devkit/secureclip"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:           "devkit",
	Short:         "Terminal toolbox of converters and generators",
	Long:          "devkit converts base64, colors, dates and number bases, hashes text, and generates passwords, UUIDs and QR codes.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive command shell",
	RunE:  runREPL,
}

// genFlags mirrors the password settings for one-shot generation.
type genFlags struct {
	length          int
	quantity        int
	noUpper         bool
	noLower         bool
	noNumbers       bool
	noSymbols       bool
	excludeSimilar  bool
	allowDuplicates bool
	allowSequential bool
	copy            bool
}

var genOpts genFlags

var genPasswordsCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate passwords and print them",
	Args:  cobra.NoArgs,
	RunE:  runGen,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.devkit/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	f := genPasswordsCmd.Flags()
	f.IntVarP(&genOpts.length, "length", "l", pwgen.DefaultLength, "password length")
	f.IntVarP(&genOpts.quantity, "quantity", "n", pwgen.DefaultQuantity, "number of passwords")
	f.BoolVar(&genOpts.noUpper, "no-upper", false, "exclude uppercase letters")
	f.BoolVar(&genOpts.noLower, "no-lower", false, "exclude lowercase letters")
	f.BoolVar(&genOpts.noNumbers, "no-numbers", false, "exclude numbers")
	f.BoolVar(&genOpts.noSymbols, "no-symbols", false, "exclude symbols")
	f.BoolVar(&genOpts.excludeSimilar, "exclude-similar", false, "exclude similar looking characters ("+pwgen.SimilarChars+")")
	f.BoolVar(&genOpts.allowDuplicates, "allow-duplicates", false, "allow a character to appear more than once")
	f.BoolVar(&genOpts.allowSequential, "allow-sequential", false, "allow adjacent characters with consecutive code points")
	f.BoolVar(&genOpts.copy, "copy", false, "copy the passwords to the clipboard")

	rootCmd.AddCommand(replCmd, genPasswordsCmd)
}

func die(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

// setup loads the configuration and installs the default logger writing to w.
// When w is nil the configured log file is used.
func setup(w io.Writer) (*config.Config, *slog.Logger, func(), error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, nil, err
	}
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, nil, err
	}
	if debug {
		level = slog.LevelDebug
	}
	closer := func() {}
	if w == nil {
		f, err := logger.OpenFile(cfg.LogFile)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("could not open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	}
	return cfg, logger.Initialize(w, level), closer, nil
}

func newAppFromConfig(cfg *config.Config, log *slog.Logger) (*app, *secureclip.Clipboard) {
	clip := secureclip.New(cfg.ClipboardTimeout)
	return newApp(pwgen.New(nil), export.New(cfg.ExportDir, log), clip, log), clip
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, log, closeLog, err := setup(nil)
	if err != nil {
		return err
	}
	defer closeLog()

	a, clip := newAppFromConfig(cfg, log)
	defer clip.Clear()

	log.Info("starting ui", "export_dir", cfg.ExportDir, "idle_timeout", cfg.IdleTimeout)
	return runUI(a, cfg.IdleTimeout)
}

func runREPL(cmd *cobra.Command, args []string) error {
	cfg, log, closeLog, err := setup(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	a, clip := newAppFromConfig(cfg, log)
	defer clip.Clear()

	r := repl.New("devkit > ")
	for _, c := range replCommands(a) {
		r.AddCommand(c)
	}
	r.OnStop(func() {
		log.Debug("repl stopped")
	})
	return r.Loop()
}

func runGen(cmd *cobra.Command, args []string) error {
	cfg, log, closeLog, err := setup(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	g := pwgen.New(nil)
	applyGenFlags(g, genOpts)
	log.Debug("generating passwords", "settings", g.Settings())

	passwords, err := g.GenerateBatch()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, pw := range passwords {
		highlight.Fprintln(out, pw)
	}

	if genOpts.copy {
		clip := secureclip.New(cfg.ClipboardTimeout)
		if err := clip.Clip(joinLines(passwords)); err != nil {
			return fmt.Errorf("could not copy to clipboard: %w", err)
		}
		success.Fprintf(cmd.ErrOrStderr(), "copied to clipboard, clearing in %v\n", clip.Timeout())
		// the process exits right after, so hold it until the clear
		time.Sleep(clip.Timeout())
		return clip.Clear()
	}
	return nil
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

// applyGenFlags moves g from the default settings to the ones f describes.
func applyGenFlags(g *pwgen.Generator, f genFlags) {
	g.SetLength(f.length)
	g.SetQuantity(f.quantity)
	if f.noUpper {
		g.ToggleClass(pwgen.Uppercase)
	}
	if f.noLower {
		g.ToggleClass(pwgen.Lowercase)
	}
	if f.noNumbers {
		g.ToggleClass(pwgen.Numbers)
	}
	if f.noSymbols {
		g.ToggleClass(pwgen.Symbols)
	}
	if f.excludeSimilar {
		g.ToggleSimilarExclusion()
	}
	if f.allowDuplicates {
		g.ToggleDuplicates()
	}
	if f.allowSequential {
		g.ToggleSequential()
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		die(err)
	}
}
