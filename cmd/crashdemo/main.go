// Copyright 2024 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

// The crashdemo command panics on purpose to show the crash dialog.
//
// The application information shown in the dialog is read from a TOML config
// file; run "crashdemo -config" to print a default one.
package main // import "mellium.im/crashdialog/cmd/crashdemo"

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"mellium.im/crashdialog"
	"mellium.im/crashdialog/gui"
	"mellium.im/crashdialog/tui"
)

const appName = "crashdemo"

// Set at build time while linking.
var Version = "devel"

func printHelp(flags *flag.FlagSet, w io.Writer) {
	flags.SetOutput(w)
	fmt.Fprint(w, `Usage of crashdemo:

`)
	flags.PrintDefaults()
}

func main() {
	logger := log.New(os.Stderr, "", log.LstdFlags)
	debug := log.New(io.Discard, "DEBUG ", log.LstdFlags)
	p := message.NewPrinter(language.English)

	var (
		configPath string
		presenter  string
		payload    = "string"
		h          bool
		help       bool
		genConfig  bool
		about      bool
		info       bool
		goroutine  bool
		verbose    bool
	)
	flags := flag.NewFlagSet(appName, flag.ContinueOnError)
	flags.StringVar(&configPath, "f", configPath, "the config file to load")
	flags.StringVar(&presenter, "presenter", presenter, "override the presenter from the config file: auto, gui, tui, or text")
	flags.StringVar(&payload, "payload", payload, "the kind of value to panic with: string, bytes, int, error, or nil")
	flags.BoolVar(&h, "h", h, "print this help message")
	flags.BoolVar(&help, "help", help, "print this help message")
	flags.BoolVar(&genConfig, "config", genConfig, "print a default config file to stdout")
	flags.BoolVar(&about, "about", about, "show information about this application")
	flags.BoolVar(&info, "info", info, "show embedded build information with -about")
	flags.BoolVar(&goroutine, "goroutine", goroutine, "panic in a new goroutine instead of the main goroutine")
	flags.BoolVar(&verbose, "v", verbose, "enable debug logging")
	// Even with ContinueOnError set, it still prints for some reason. Discard the
	// first defaults so we can write our own.
	flags.SetOutput(io.Discard)
	err := flags.Parse(os.Args[1:])
	if err != nil {
		logger.Println(err)
		printHelp(flags, os.Stderr)
		os.Exit(2)
	}

	if help || h {
		printHelp(flags, os.Stdout)
		return
	}

	if genConfig {
		err = printConfig(os.Stdout)
		if err != nil {
			logger.Fatalf("Error encoding default config as TOML: %v", err)
		}
		return
	}

	cfg := defaultConfig()
	f, fpath, err := configFile(configPath)
	switch {
	case err != nil && configPath != "":
		logger.Fatalf("error opening config file: %v", err)
	case err != nil:
		debug.Printf("no config file found, using defaults: %v", err)
		fpath = ""
	default:
		cfg, err = loadConfig(f)
		if err != nil {
			logger.Printf("error parsing config file: %v", err)
		}
		if err = f.Close(); err != nil {
			logger.Printf("error closing config file: %v", err)
		}
	}

	if about {
		printAbout(os.Stdout, fpath, Version, info, p)
		return
	}

	if cfg.Log.Verbose || verbose {
		debug.SetOutput(os.Stderr)
	}
	if presenter == "" {
		presenter = cfg.UI.Presenter
	}

	dialog, err := newPresenter(presenter, p, debug)
	if err != nil {
		logger.Println(err)
		printHelp(flags, os.Stderr)
		os.Exit(2)
	}

	crashdialog.Register(cfg.appInfo(Version),
		crashdialog.Logger(logger),
		crashdialog.Debug(debug),
		crashdialog.Printer(p),
		crashdialog.Dialog(dialog),
	)
	defer crashdialog.Handle()

	v, err := panicValue(payload)
	if err != nil {
		logger.Println(err)
		printHelp(flags, os.Stderr)
		os.Exit(2)
	}

	if !goroutine {
		logger.Println("panicking…")
		panic(v)
	}

	crashdialog.Go(func() {
		logger.Println("panicking in a goroutine…")
		panic(v)
	})
	// The goroutine takes the process down once the report is dismissed.
	select {}
}

var errBadPayload = errors.New("unknown payload kind")

func panicValue(kind string) (any, error) {
	switch kind {
	case "string":
		return "Whaaaaat???", nil
	case "bytes":
		return []byte("owned payload"), nil
	case "int":
		return 42, nil
	case "error":
		return fmt.Errorf("reading SUPER_IMPORTANT_ENVIRONMENT_VARIABLE: %w", os.ErrNotExist), nil
	case "nil":
		return nil, nil
	}
	return nil, fmt.Errorf("%w: %q", errBadPayload, kind)
}

func newPresenter(name string, p *message.Printer, debug *log.Logger) (crashdialog.Presenter, error) {
	text := crashdialog.Text(os.Stderr)
	switch name {
	case "", "auto":
		return crashdialog.Fallback(
			gui.New(gui.Debug(debug), gui.Printer(p), gui.ID("im.mellium.crashdemo")),
			tui.New(tui.Debug(debug), tui.Printer(p)),
			text,
		), nil
	case "gui":
		return gui.New(gui.Debug(debug), gui.Printer(p), gui.ID("im.mellium.crashdemo")), nil
	case "tui":
		return tui.New(tui.Debug(debug), tui.Printer(p)), nil
	case "text":
		return text, nil
	}
	return nil, fmt.Errorf("unknown presenter %q", name)
}
