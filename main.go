package main

import (
	"flag"

	rl "github.com/gen2brain/raylib-go/raylib"
	log "github.com/sirupsen/logrus"

	"snake-arcade/ai"
	"snake-arcade/game"
	"snake-arcade/game/clock"
	"snake-arcade/game/config"
	"snake-arcade/game/manager"
	"snake-arcade/ui"
	"snake-arcade/ui/sound"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults when empty)")
	seed := flag.Uint64("seed", 0, "Food placement seed (0 = random)")
	scores := flag.String("scores", "data/scores.json", "Best score and game history file")
	autopilot := flag.Bool("autopilot", false, "Let the computer play")
	mute := flag.Bool("mute", false, "Disable sound")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		log.WithError(err).Fatal("Invalid log level")
	}
	log.SetLevel(level)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.WithError(err).Fatal("Could not load config")
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	var store manager.ScoreStore = &manager.MemoryStore{}
	history, err := manager.NewStateManager(*scores)
	if err != nil {
		log.WithError(err).Warn("Could not load score file, scores will not be saved")
	} else {
		store = history
	}

	var renderers []game.Renderer
	if !*mute {
		if err := sound.Init(); err != nil {
			// Non-fatal, game can run without sound
			log.WithError(err).Warn("Audio initialization failed")
		} else {
			defer sound.Close()
			renderers = append(renderers, sound.NewPlayer())
		}
	}

	newSession := func() *game.Session {
		s, err := game.New(cfg, game.WithScoreStore(store), game.WithRenderer(renderers...))
		if err != nil {
			log.WithError(err).Fatal("Could not start game")
		}
		log.WithField("session", s.ID()).Info("New game")
		return s
	}

	width, height := ui.WindowSize(cfg.BoxSize, cfg.PixelSize)
	rl.InitWindow(width, height, "Snake")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	renderer := ui.NewRenderer(cfg.PixelSize)
	pacer := clock.NewPacer(nil)
	var pilot *ai.Autopilot
	if *autopilot {
		pilot = ai.NewAutopilot()
	}

	s := newSession()
	for !rl.WindowShouldClose() {
		quit := false
		for _, key := range ui.PressedKeys() {
			switch key {
			case rl.KeyQ:
				quit = true
			case rl.KeyP:
				s.TogglePause()
			case rl.KeyN:
				s = newSession()
				pacer.Reset()
			default:
				if code, ok := ui.TranslateKey(key); ok {
					s.HandleKey(code)
				}
			}
		}
		if quit {
			break
		}

		// Update game state at the current level's interval
		if !s.GameOver() && pacer.Due(s.TickInterval()) {
			if pilot != nil {
				s.HandleKey(pilot.NextKey(s.Snapshot()))
			}
			s.Tick()
		}

		renderer.Draw(s.Snapshot())
	}

	if history != nil {
		log.WithFields(log.Fields{
			"games":   history.GetGamesPlayed(),
			"average": history.GetAverageScore(),
		}).Info("Bye")
	}
}
