package game

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"

	"snake-arcade/game/clock"
	"snake-arcade/game/config"
	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
)

// Session is one game from start to game over. It is not safe for
// concurrent use: ticks and input must come from one goroutine, which
// Run guarantees.
type Session struct {
	id        string
	cfg       config.Config
	log       *log.Entry
	logger    *log.Logger
	time      clock.TimeProvider
	store     manager.ScoreStore
	renderers []Renderer
	rng       *rand.Rand
	seed      uint64

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	levelMgr     *manager.LevelManager
	inputMgr     *manager.InputManager
	snake        *entity.Snake

	score     int
	ticks     int
	gameOver  bool
	collision types.CollisionType
	best      int
	hasBest   bool
	startTime time.Time
}

type Option func(*Session)

// WithSeed seeds food placement, overriding the config seed.
func WithSeed(seed uint64) Option {
	return func(s *Session) { s.seed = seed }
}

// WithRand supplies the random source for food placement.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) { s.rng = rng }
}

// WithScoreStore sets where the best score is read and written.
func WithScoreStore(store manager.ScoreStore) Option {
	return func(s *Session) { s.store = store }
}

// WithRenderer adds renderers called after every tick.
func WithRenderer(r ...Renderer) Option {
	return func(s *Session) { s.renderers = append(s.renderers, r...) }
}

func WithLogger(logger *log.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithClock sets the time source used for game records.
func WithClock(tp clock.TimeProvider) Option {
	return func(s *Session) { s.time = tp }
}

// New validates cfg and builds a session. The best score is read from the
// store once, here.
func New(cfg config.Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		id:     uuid.New().String(),
		cfg:    cfg,
		time:   clock.RealTime{},
		store:  &manager.MemoryStore{},
		logger: log.StandardLogger(),
		seed:   cfg.Seed,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.logger.WithField("session", s.id)

	if s.rng == nil {
		seed := s.seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		s.rng = rand.New(rand.NewSource(seed))
	}

	s.collisionMgr = manager.NewCollisionManager(cfg.BoxSize)
	s.foodMgr = manager.NewFoodManager(s.collisionMgr, s.rng, cfg.TreatRepositionTicks, cfg.FoodMaxAttempts)
	s.levelMgr = manager.NewLevelManager(manager.LevelSchedule{
		IntervalTicks: cfg.LevelIntervalTicks,
		Decrease:      cfg.LevelIncrease,
		Minimum:       cfg.MinimumLoopInterval,
	}, cfg.InitialLoopInterval)
	s.inputMgr = manager.NewInputManager(types.Up)

	best, ok, err := s.store.Get()
	if err != nil {
		s.log.WithError(err).Warn("Could not read best score")
	}
	s.best, s.hasBest = best, ok
	s.startTime = s.time.Now()

	return s, nil
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) GameOver() bool {
	return s.gameOver
}

// TickInterval is the wait before the next tick; it shrinks as the level rises.
func (s *Session) TickInterval() time.Duration {
	return s.levelMgr.Interval()
}

func (s *Session) ensureInit() {
	s.collisionMgr.InitBoard()
	if s.snake == nil {
		s.snake = entity.NewSnake(s.cfg.BoxSize, s.cfg.SnakeLength)
	}
}

// Update advances the simulation by one tick. Nothing changes while the
// game is paused or over.
func (s *Session) Update() {
	s.ensureInit()
	if s.inputMgr.Paused() || s.gameOver {
		return
	}

	s.placeFood()

	res := s.snake.Step(s.inputMgr.Direction(), s.foodMgr.Food(), s.collisionMgr.CheckCollision)
	if res.Ate {
		s.score += s.levelMgr.Level()
		s.foodMgr.Clear()
		s.log.WithFields(log.Fields{"tick": s.ticks, "score": s.score, "length": s.snake.Len()}).Debug("Food eaten")
	}
	if s.snake.Dead() {
		s.gameOver = true
		s.collision = res.Collision
	}

	s.ticks++
	if s.levelMgr.Update(s.ticks) {
		s.log.WithFields(log.Fields{
			"level":    s.levelMgr.Level(),
			"interval": s.levelMgr.Interval(),
		}).Info("Level up")
	}

	if s.gameOver {
		s.endGame()
	}
}

func (s *Session) placeFood() {
	res, err := s.foodMgr.Place(s.ticks, s.snake)
	if err != nil {
		s.log.WithError(err).WithField("tick", s.ticks).Warn("Food placement skipped")
		return
	}
	if res.Expired {
		s.log.WithField("tick", s.ticks).Debug("Food expired")
	}
	if res.Placed {
		s.log.WithFields(log.Fields{"tick": s.ticks, "food": *s.foodMgr.Food()}).Debug("Food placed")
	}
}

// endGame stores the final score. It runs once, on the tick the snake dies.
func (s *Session) endGame() {
	s.log.WithFields(log.Fields{
		"collision": s.collision,
		"score":     s.score,
		"level":     s.levelMgr.Level(),
		"ticks":     s.ticks,
	}).Info("Game over")

	updated, err := manager.RecordScore(s.store, s.score)
	if err != nil {
		s.log.WithError(err).Warn("Could not save best score")
	} else if updated {
		s.log.WithField("score", s.score).Info("New best score")
	}

	if recorder, ok := s.store.(manager.HistoryRecorder); ok {
		err := recorder.AddGame(manager.GameRecord{
			SessionID: s.id,
			Score:     s.score,
			Level:     s.levelMgr.Level(),
			Ticks:     s.ticks,
			StartTime: s.startTime,
			EndTime:   s.time.Now(),
		})
		if err != nil {
			s.log.WithError(err).Warn("Could not save game record")
		}
	}
}

// HandleKey applies an input event. It returns false for unknown codes,
// rejected direction changes, and any input after game over.
func (s *Session) HandleKey(code types.KeyCode) bool {
	if s.gameOver {
		return false
	}
	accepted := s.inputMgr.HandleKey(code, s.ticks)
	if accepted {
		s.log.WithFields(log.Fields{"key": int(code), "tick": s.ticks}).Debug("Input accepted")
	}
	return accepted
}

// TogglePause flips the pause flag unless the game is over.
func (s *Session) TogglePause() bool {
	if s.gameOver {
		return false
	}
	s.inputMgr.TogglePause()
	return true
}

// Tick runs Update and hands the result to every renderer.
func (s *Session) Tick() {
	s.Update()
	if len(s.renderers) == 0 {
		return
	}
	snap := s.Snapshot()
	for _, r := range s.renderers {
		r.Draw(snap)
	}
}

// Run ticks the session on sched until game over or ctx is cancelled.
// Callbacks sent on inbox run between ticks on the same goroutine, which is
// how frontends deliver key presses.
func (s *Session) Run(ctx context.Context, sched clock.Scheduler, inbox <-chan func()) error {
	return sched.Run(ctx, s.TickInterval, func() bool {
		s.Tick()
		return !s.gameOver
	}, inbox)
}

func (s *Session) Snapshot() Snapshot {
	s.ensureInit()
	return Snapshot{
		SessionID: s.id,
		BoxSize:   s.cfg.BoxSize,
		Board:     append([]types.Point(nil), s.collisionMgr.Walls()...),
		Snake:     append([]types.Point(nil), s.snake.Body...),
		Food:      s.foodMgr.Food(),
		State: GameState{
			Level:         s.levelMgr.Level(),
			Score:         s.score,
			GameOver:      s.gameOver,
			Paused:        s.inputMgr.Paused(),
			TickInterval:  s.levelMgr.Interval(),
			Ticks:         s.ticks,
			LastInputTick: s.inputMgr.LastInputTick(),
			LastFoodTick:  s.foodMgr.LastFoodTick(),
			Direction:     s.inputMgr.Direction(),
			Collision:     s.collision,
		},
		Best:    s.best,
		HasBest: s.hasBest,
	}
}
