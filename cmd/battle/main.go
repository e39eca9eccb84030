// Package main provides the battle binary: it reads a cast, tells the
// prologue and plays the climactic battle scene on stdout.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/cory-johannsen/wayfarers/internal/config"
	"github.com/cory-johannsen/wayfarers/internal/game/cast"
	"github.com/cory-johannsen/wayfarers/internal/game/character"
	"github.com/cory-johannsen/wayfarers/internal/game/dice"
	"github.com/cory-johannsen/wayfarers/internal/game/prologue"
	"github.com/cory-johannsen/wayfarers/internal/game/scene"
	"github.com/cory-johannsen/wayfarers/internal/narrate"
	"github.com/cory-johannsen/wayfarers/internal/observability"
	"github.com/cory-johannsen/wayfarers/internal/scripting"
)

// Exit codes.
const (
	exitOK        = 0
	exitConfig    = 1
	exitTurnLimit = 2
)

func main() {
	// A missing .env is normal; anything it sets is picked up by config.Load.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr, dice.NewCryptoSource()))
}

// run parses args, plays the story and returns the process exit code.
// Narration goes to stdout; usage and startup failures go to stderr, and
// structured logs go wherever the configured logger writes.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, src dice.Source) int {
	fs := flag.NewFlagSet("battle", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to configuration file; empty = defaults and environment only")
	castPath := fs.String("cast", "", "path to cast YAML file; empty = built-in cast")
	scriptDir := fs.String("scripts", "", "directory of Lua turn hooks; empty = scripting disabled")
	maxTurns := fs.Int("max-turns", -1, "override scene.max_turns when >= 0; 0 = unbounded")
	if err := fs.Parse(args); err != nil {
		return exitConfig
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "loading config: %v\n", err)
		return exitConfig
	}
	if *castPath != "" {
		cfg.Cast.Path = *castPath
	}
	if *scriptDir != "" {
		cfg.Scripting.Dir = *scriptDir
	}
	if *maxTurns >= 0 {
		cfg.Scene.MaxTurns = *maxTurns
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(stderr, "initializing logger: %v\n", err)
		return exitConfig
	}
	defer func() { _ = logger.Sync() }()

	chooser := dice.NewChooser(src, logger)
	roller := dice.NewLoggedRoller(src, logger)

	players, err := loadCast(cfg.Cast.Path, character.NewBuilder(chooser, roller))
	if err != nil {
		logger.Error("loading cast", zap.String("path", cfg.Cast.Path), zap.Error(err))
		return exitConfig
	}

	tie, err := scene.ParseTiePolicy(cfg.Scene.TiePolicy)
	if err != nil {
		logger.Error("parsing tie policy", zap.Error(err))
		return exitConfig
	}

	out := narrate.NewWriter(stdout, cfg.Scene.Color)

	opts := scene.Options{MaxTurns: cfg.Scene.MaxTurns, TiePolicy: tie, Logger: logger}
	if cfg.Scripting.Dir != "" {
		mgr := scripting.NewManager(roller, logger)
		mgr.Bind(players.Find, out)
		if err := mgr.Load(cfg.Scripting.Dir, cfg.Scripting.InstructionLimit); err != nil {
			logger.Error("loading scripts", zap.Error(err))
			return exitConfig
		}
		defer mgr.Close()
		opts.Hook = mgr
	}

	// Role capabilities are checked before the prologue is told.
	director, err := scene.New(players.Protagonist, players.Sidekick, players.Antagonist, out, opts)
	if err != nil {
		logger.Error("casting the battle", zap.Error(err))
		return exitConfig
	}

	tellPrologue(out, players, chooser)

	outcome, err := director.Run(ctx)
	if werr := out.Err(); werr != nil {
		logger.Error("narration failed", zap.Error(werr))
		return exitConfig
	}
	switch {
	case errors.Is(err, scene.ErrTurnLimit):
		return exitTurnLimit
	case err != nil:
		logger.Error("battle aborted", zap.Error(err))
		return exitConfig
	}

	logger.Debug("story complete",
		zap.String("winner", outcome.Winner),
		zap.Bool("draw", outcome.Draw),
		zap.Int("turns", outcome.Turns),
	)
	return exitOK
}

func loadCast(path string, b *character.Builder) (*cast.Cast, error) {
	file := cast.Default()
	if path != "" {
		var err error
		if file, err = cast.Load(path); err != nil {
			return nil, err
		}
	}
	return file.Build(b)
}

// tellPrologue introduces every cast member in file order, lets each make its
// entrance, then sends the party on its way.
func tellPrologue(n narrate.Narrator, players *cast.Cast, chooser dice.Chooser) {
	p := prologue.New(n)
	for _, c := range players.Characters {
		p.IntroduceCharacter(c)
		n.Narrate(narrate.ToneSpeech, c.Debut())
	}
	p.JourneyForth()
	p.Depart(chooser)
}
