// tictactoe-local is a terminal application to play tic-tac-toe offline, against a
// friend or against the computer.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"tictactoe-local/config"
	"tictactoe-local/engine"
	"tictactoe-local/engine/local"
	"tictactoe-local/types"
	"tictactoe-local/ui"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Mode    string           `short:"m" enum:"pvp,pvc," default:"" help:"Start a match right away (pvp or pvc)"`
	Delay   int              `short:"d" default:"-1" help:"Computer delay in milliseconds, -1 keeps the configured value"`
	Seed    int64            `help:"Seed for the computer's moves, 0 picks one from the clock"`
	Debug   bool             `help:"Log at debug level"`
	LogFile string           `long:"log-file" help:"Log file path (overrides config)"`
}

var (
	app       *tview.Application
	rootPage  *tview.Pages
	gameBoard *ui.BoardUI
	cfg       *config.Config
	logger    *log.Logger
	cli       CLI
)

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("tictactoe-local"),
		kong.Description("Tic-tac-toe in the terminal, two players or against the computer"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
	)

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		ctx.Exit(1)
	}
	if cli.LogFile != "" {
		cfg.Log.File = cli.LogFile
	}
	if cli.Debug {
		cfg.Log.Level = "debug"
	}
	if cli.Delay >= 0 {
		cfg.Game.ComputerDelayMs = cli.Delay
	}

	logger = log.New(io.Discard)
	if cfg.LogEnabled() {
		logFile, err := openLog(cfg)
		if err != nil {
			fmt.Printf("Failed to open log file: %v\n", err)
			ctx.Exit(1)
		}
		defer func() { _ = logFile.Close() }()

		logger = log.NewWithOptions(logFile, log.Options{ReportTimestamp: true})
		level, _ := log.ParseLevel(cfg.Log.Level)
		logger.SetLevel(level)
	}
	logger.Info("Starting tictactoe-local", "version", version, "mode", cli.Mode)

	if err := run(); err != nil {
		logger.Error("Application stopped", "error", err)
		ctx.FatalIfErrorf(err)
	}
}

func openLog(c *config.Config) (*os.File, error) {
	path, err := c.LogPath()
	if err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
}

func run() error {
	app = tview.NewApplication()
	app.EnableMouse(true)
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" # tictactoe ")

	gameHint := tview.NewTextView()
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameBoard = ui.NewBoard(app, cfg, gameHint, logger)
	gameBoard.SetActions(gameBoard.Restart, showSetup)
	gameFrame := ui.CreateGameLayout(gameBoard, gameHint)

	gameBoard.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		cmd := ui.KeyCommand(event)
		switch cmd {
		case ui.CommandNone:
			return event
		case ui.CommandChangeMode:
			showSetup()
		case ui.CommandQuit:
			if gameBoard.SelectedTile() != nil {
				gameBoard.ResetSelection()
			} else {
				app.Stop()
			}
		default:
			gameBoard.HandleCommand(cmd)
		}
		return nil
	})

	initial := engine.GameConfig{Mode: cfg.Mode(), ComputerDelay: cfg.ComputerDelay()}
	modeSelect := ui.NewModeSelect(initial, startGame, app.Stop)
	setup := ui.CreateCenteredForm(modeSelect, 64, 20)

	quickStart := cli.Mode != ""
	rootPage.AddPage("setup", setup, true, !quickStart)
	rootPage.AddPage("gameview", gameFrame, true, quickStart)

	if quickStart {
		mode, err := types.ParseMode(cli.Mode)
		if err != nil {
			return err
		}
		initial.Mode = mode
		startGame(initial)
	}

	return app.SetRoot(rootPage, true).Run()
}

// showSetup abandons the current match and returns to the mode selection screen.
func showSetup() {
	gameBoard.Close()
	rootPage.SwitchToPage("setup")
}

// startGame starts a match with the given configuration and remembers the choice.
func startGame(gameCfg engine.GameConfig) {
	gameCfg.Seed = cli.Seed

	if err := config.SaveGame(gameCfg.Mode, gameCfg.ComputerDelay); err != nil {
		logger.Warn("Could not save config", "error", err)
	}

	eng := local.New(gameCfg, logger, quartz.NewReal())
	if err := gameBoard.ConnectEngine(eng); err != nil {
		modal := tview.NewModal().
			SetText(fmt.Sprintf("Failed to start game:\n%s", err.Error())).
			AddButtons([]string{"OK"}).
			SetDoneFunc(func(buttonIndex int, buttonLabel string) {
				rootPage.HidePage("error")
			})
		rootPage.AddPage("error", modal, true, true)
		return
	}
	rootPage.SwitchToPage("gameview")
	app.SetFocus(gameBoard.Box)
}
