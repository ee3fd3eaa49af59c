package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"

	"snake-arcade/ai"
	"snake-arcade/game"
	"snake-arcade/game/clock"
	"snake-arcade/game/config"
	"snake-arcade/game/manager"
	"snake-arcade/ui/sound"
	"snake-arcade/ui/terminal"
)

type options struct {
	configPath string
	seed       uint64
	scores     string
	autopilot  bool
	mute       bool
	logLevel   string
	logFile    string
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "YAML config file (defaults when empty)")
	flag.Uint64Var(&opts.seed, "seed", 0, "Food placement seed (0 = random)")
	flag.StringVar(&opts.scores, "scores", "data/scores.json", "Best score and game history file")
	flag.BoolVar(&opts.autopilot, "autopilot", false, "Let the computer play")
	flag.BoolVar(&opts.mute, "mute", false, "Disable sound")
	flag.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.logFile, "log-file", "snake.log", "Log file; the terminal is busy drawing")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "snake-term: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	level, err := log.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	logFile, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)
	log.SetLevel(level)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.seed != 0 {
		cfg.Seed = opts.seed
	}

	var store manager.ScoreStore = &manager.MemoryStore{}
	if history, err := manager.NewStateManager(opts.scores); err != nil {
		log.WithError(err).Warn("Could not load score file, scores will not be saved")
	} else {
		store = history
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	var extra []game.Renderer
	if !opts.mute {
		if err := sound.Init(); err != nil {
			// Non-fatal, game can run without sound
			log.WithError(err).Warn("Audio initialization failed")
		} else {
			defer sound.Close()
			extra = append(extra, sound.NewPlayer())
		}
	}

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	a := &arcade{
		cfg:      cfg,
		store:    store,
		renderer: terminal.NewRenderer(screen),
		extra:    extra,
		screen:   screen,
		events:   events,
	}
	if opts.autopilot {
		a.pilot = ai.NewAutopilot()
	}
	return a.loop()
}

// arcade plays sessions back to back until the player quits.
type arcade struct {
	cfg      config.Config
	store    manager.ScoreStore
	renderer *terminal.Renderer
	extra    []game.Renderer
	pilot    *ai.Autopilot
	screen   tcell.Screen
	events   <-chan tcell.Event
}

func (a *arcade) loop() error {
	for {
		cmd, err := a.play()
		if err != nil {
			return err
		}
		if cmd == terminal.CommandQuit {
			return nil
		}
	}
}

// play runs one session and returns the command that ended it.
func (a *arcade) play() (terminal.Command, error) {
	inbox := make(chan func(), 16)
	renderers := append([]game.Renderer{a.renderer}, a.extra...)

	var s *game.Session
	if a.pilot != nil {
		renderers = append(renderers, game.RendererFunc(func(game.Snapshot) {
			select {
			case inbox <- func() { s.HandleKey(a.pilot.NextKey(s.Snapshot())) }:
			default:
			}
		}))
	}
	s, err := game.New(a.cfg, game.WithScoreStore(a.store), game.WithRenderer(renderers...))
	if err != nil {
		return terminal.CommandQuit, err
	}
	log.WithField("session", s.ID()).Info("New game")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	result := make(chan error, 1)
	go func() {
		result <- s.Run(ctx, clock.NewLoop(), inbox)
	}()
	running := true
	stopped := func(err error) {
		running = false
		if err != nil && err != context.Canceled {
			log.WithError(err).Error("Game loop failed")
		}
	}

	// send delivers f to the session goroutine, or runs it here once the
	// session has stopped.
	send := func(f func()) {
		if running {
			select {
			case inbox <- f:
				return
			case err := <-result:
				stopped(err)
			}
		}
		f()
	}

	for {
		select {
		case err := <-result:
			stopped(err)
		case ev, ok := <-a.events:
			if !ok {
				return terminal.CommandQuit, nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if cmd := terminal.CommandFromEvent(ev); cmd != terminal.CommandNone {
					cancel()
					if running {
						<-result
					}
					return cmd, nil
				}
				if code, ok := terminal.KeyFromEvent(ev); ok {
					send(func() { s.HandleKey(code) })
				}
			case *tcell.EventResize:
				send(func() {
					a.screen.Sync()
					a.renderer.Draw(s.Snapshot())
				})
			}
		}
	}
}
