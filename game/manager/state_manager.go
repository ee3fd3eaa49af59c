package manager

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

// ScoreStore persists the best score. Get reports ok=false when nothing
// has been recorded yet.
type ScoreStore interface {
	Get() (score int, ok bool, err error)
	Set(score int) error
}

// HistoryRecorder is implemented by stores that also keep finished games.
type HistoryRecorder interface {
	AddGame(record GameRecord) error
}

// GameRecord describes one finished game.
type GameRecord struct {
	SessionID string    `json:"sessionId"`
	Score     int       `json:"score"`
	Level     int       `json:"level"`
	Ticks     int       `json:"ticks"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// RecordScore writes score when there is no previous record or it beats
// the stored one. The comparison is numeric.
func RecordScore(store ScoreStore, score int) (bool, error) {
	best, ok, err := store.Get()
	if err != nil {
		return false, fmt.Errorf("failed to read best score: %w", err)
	}
	if ok && score <= best {
		return false, nil
	}
	if err := store.Set(score); err != nil {
		return false, fmt.Errorf("failed to write best score: %w", err)
	}
	return true, nil
}

type gameStats struct {
	HighScore    *int         `json:"highScore,omitempty"`
	ScoreHistory []GameRecord `json:"scoreHistory"`
}

type rawStats struct {
	HighScore    json.RawMessage `json:"highScore"`
	ScoreHistory []GameRecord    `json:"scoreHistory"`
}

// StateManager is a JSON file backed ScoreStore and HistoryRecorder.
type StateManager struct {
	filename string
	mutex    sync.RWMutex
	stats    gameStats
}

// NewStateManager loads filename if it exists. A missing file starts empty.
func NewStateManager(filename string) (*StateManager, error) {
	sm := &StateManager{filename: filename}
	if err := sm.LoadStats(); err != nil {
		return nil, err
	}
	return sm, nil
}

func (sm *StateManager) LoadStats() error {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	data, err := os.ReadFile(sm.filename)
	if err != nil {
		if os.IsNotExist(err) {
			sm.stats = gameStats{}
			return nil
		}
		return fmt.Errorf("failed to read stats file: %w", err)
	}

	var raw rawStats
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse stats file: %w", err)
	}
	best, err := parseScore(raw.HighScore)
	if err != nil {
		return fmt.Errorf("failed to parse stats file: %w", err)
	}
	sm.stats = gameStats{HighScore: best, ScoreHistory: raw.ScoreHistory}
	return nil
}

// parseScore accepts a JSON number or a numeric string; null or absent
// means no record.
func parseScore(raw json.RawMessage) (*int, error) {
	text := strings.TrimSpace(string(raw))
	if text == "" || text == "null" {
		return nil, nil
	}
	if unquoted, err := strconv.Unquote(text); err == nil {
		text = strings.TrimSpace(unquoted)
		if text == "" {
			return nil, nil
		}
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return nil, fmt.Errorf("high score %s is not an integer", raw)
	}
	return &n, nil
}

func (sm *StateManager) saveLocked() error {
	if dir := filepath.Dir(sm.filename); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(sm.stats, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal stats data: %w", err)
	}
	if err := os.WriteFile(sm.filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write stats file: %w", err)
	}
	return nil
}

func (sm *StateManager) Get() (int, bool, error) {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()
	if sm.stats.HighScore == nil {
		return 0, false, nil
	}
	return *sm.stats.HighScore, true, nil
}

func (sm *StateManager) Set(score int) error {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()
	sm.stats.HighScore = &score
	return sm.saveLocked()
}

func (sm *StateManager) AddGame(record GameRecord) error {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()
	sm.stats.ScoreHistory = append(sm.stats.ScoreHistory, record)
	return sm.saveLocked()
}

func (sm *StateManager) GetScoreHistory() []GameRecord {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()
	return append([]GameRecord(nil), sm.stats.ScoreHistory...)
}

// GetGamesPlayed returns the number of finished games on record.
func (sm *StateManager) GetGamesPlayed() int {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()
	return len(sm.stats.ScoreHistory)
}

// GetAverageScore returns the mean score over the recorded games.
func (sm *StateManager) GetAverageScore() float64 {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	if len(sm.stats.ScoreHistory) == 0 {
		return 0
	}
	total := 0
	for _, game := range sm.stats.ScoreHistory {
		total += game.Score
	}
	return float64(total) / float64(len(sm.stats.ScoreHistory))
}

// MemoryStore keeps the best score in memory only.
type MemoryStore struct {
	best int
	ok   bool
}

func (m *MemoryStore) Get() (int, bool, error) {
	return m.best, m.ok, nil
}

func (m *MemoryStore) Set(score int) error {
	m.best, m.ok = score, true
	return nil
}
