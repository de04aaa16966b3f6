package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/swipekbd/swipekbd/internal/config"
	"github.com/swipekbd/swipekbd/internal/control"
	"github.com/swipekbd/swipekbd/internal/emit"
	"github.com/swipekbd/swipekbd/internal/launch"
	"github.com/swipekbd/swipekbd/internal/styling"
	"github.com/swipekbd/swipekbd/internal/tui"
)

// Flags for the `run` command line command, for `go-flags` to parse command
// line args into.
type RunCommand struct {
	Layout        string `short:"f" long:"layout" description:"the layout file to use (otherwise the embedded default)" value-name:"<file>"`
	DryRun        bool   `short:"n" long:"dry-run" description:"log synthetic events instead of emitting them"`
	DeviceName    string `long:"device-name" description:"name of the created virtual keyboard device" default:"swipekbd"`
	Theme         string `short:"t" long:"theme" choice:"light" choice:"dark" description:"select a 'dark' or a 'light' theme"`
	LogOutputFile string `short:"l" long:"log-output-file" description:"specify a log output file (otherwise logs are dropped once the TUI runs)"`
	LogPretty     bool   `short:"p" long:"log-pretty" description:"prettify logs to file"`
}

// Executes the run command: loads the layout, creates the output devices,
// and runs the keyboard TUI until quit.
func (command *RunCommand) Execute(args []string) error {
	// set up stderr logger until TUI set up
	stderrLogger := log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	layout, err := config.LoadFile(command.Layout)
	if err != nil {
		return fmt.Errorf("cannot load layout: %w", err)
	}

	kbd, ptr, launcher, closeOutputs, err := makeOutputs(command.DryRun, command.DeviceName)
	if err != nil {
		return fmt.Errorf("cannot create output devices: %w", err)
	}
	defer closeOutputs()

	// once the TUI owns the terminal, logs go to the file or nowhere
	var logWriter io.Writer
	if command.LogOutputFile != "" {
		file, err := os.OpenFile(command.LogOutputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			stderrLogger.Fatal().Err(err).Str("file", command.LogOutputFile).Msg("could not open file for logging")
		}
		if command.LogPretty {
			logWriter = zerolog.ConsoleWriter{Out: file}
		} else {
			logWriter = file
		}
	} else {
		logWriter = io.Discard
	}
	log.Logger = zerolog.New(logWriter).With().Timestamp().Caller().Logger()

	screen, err := tui.NewScreenHandler()
	if err != nil {
		return fmt.Errorf("cannot set up screen: %w", err)
	}

	sheet := styling.DefaultStylesheet(command.Theme != "light")
	pane := tui.NewKeyboardPane(layout, sheet)

	loopFns := make(chan func(), 32)
	frontend := tui.NewFrontend(screen, pane, loopFns)

	engine := control.NewEngine(
		layout,
		control.NewLoopScheduler(loopFns),
		kbd,
		ptr,
		launcher,
		frontend,
	)
	frontend.SetEngine(engine)

	frontend.Run()
	return nil
}

// makeOutputs creates the key and pointer sinks and the command launcher,
// real or dry-run. The returned func releases the created devices.
func makeOutputs(dryRun bool, deviceName string) (emit.Keyboard, emit.Pointer, launch.Launcher, func(), error) {
	if dryRun {
		return emit.LogKeyboard{}, emit.LogPointer{}, launch.NopLauncher{}, func() {}, nil
	}
	kbd, err := emit.NewUinputKeyboard(deviceName)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	closeOutputs := func() {
		if err := kbd.Close(); err != nil {
			log.Warn().Err(err).Msg("cannot close virtual keyboard")
		}
	}
	return kbd, emit.NewRobotgoPointer(), launch.ExecLauncher{}, closeOutputs, nil
}
