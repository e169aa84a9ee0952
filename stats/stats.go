package stats

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/pkg/errors"
)

const (
	DefaultFile = "data/stats.json"

	// GroupSize is how many records of one compression level get merged into one
	GroupSize = 100
)

// GameRecord holds one finished game, or a group of them once compacted.
type GameRecord struct {
	SessionID        string    `json:"sessionId"`
	StartTime        time.Time `json:"startTime"`
	EndTime          time.Time `json:"endTime"`
	Score            int       `json:"score"`
	CompressionIndex int       `json:"compressionIndex"` // 0 for single games
	GamesCount       int       `json:"gamesCount"`
	AverageScore     float64   `json:"averageScore"`
	MaxScore         int       `json:"maxScore"`
	MinScore         int       `json:"minScore"`
	AverageDuration  float64   `json:"averageDuration"`
	MaxDuration      float64   `json:"maxDuration"`
	MinDuration      float64   `json:"minDuration"`
}

// History is the list of recorded games backed by a JSON file.
type History struct {
	path      string
	groupSize int
	Games     []GameRecord
}

// New returns an empty history that saves to path.
func New(path string) *History {
	return &History{path: path, groupSize: GroupSize, Games: make([]GameRecord, 0)}
}

// CorruptSuffix is appended to a stats file that could not be decoded.
const CorruptSuffix = ".corrupt"

// Load reads the history at path. A missing file yields an empty history.
// A file that cannot be decoded is moved to path+CorruptSuffix so that saving
// the new history does not destroy it. When the file cannot be read or moved,
// the returned history is kept in memory only.
func Load(path string) (*History, error) {
	h := New(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return h, nil
		}
		h.path = ""
		return h, errors.Wrapf(err, "failed to read stats file %s", path)
	}

	if err := json.Unmarshal(data, &h.Games); err != nil {
		h.Games = make([]GameRecord, 0)
		if rerr := os.Rename(path, path+CorruptSuffix); rerr != nil {
			h.path = ""
			return h, errors.Wrapf(rerr, "failed to move aside undecodable stats file %s", path)
		}
		return h, errors.Wrapf(err, "failed to decode stats file %s, moved to %s", path, path+CorruptSuffix)
	}
	return h, nil
}

// Path returns the file the history saves to.
func (h *History) Path() string { return h.path }

// AddGame records a finished game and compacts old records.
func (h *History) AddGame(sessionID string, score int, startTime, endTime time.Time) {
	duration := endTime.Sub(startTime).Seconds()
	h.Games = append(h.Games, GameRecord{
		SessionID:       sessionID,
		StartTime:       startTime,
		EndTime:         endTime,
		Score:           score,
		GamesCount:      1,
		AverageScore:    float64(score),
		MaxScore:        score,
		MinScore:        score,
		AverageDuration: duration,
		MaxDuration:     duration,
		MinDuration:     duration,
	})
	h.Games = compact(h.Games, h.groupSize)
}

// compact merges every full group of records sharing a compression level into one
// record of the next level, repeating until no level holds a full group.
// The result is ordered by start time.
func compact(records []GameRecord, groupSize int) []GameRecord {
	for level := 0; level <= maxLevel(records); level++ {
		var same, rest []GameRecord
		for _, r := range records {
			if r.CompressionIndex == level {
				same = append(same, r)
			} else {
				rest = append(rest, r)
			}
		}
		if len(same) < groupSize {
			continue
		}

		sortByStart(same)
		full := len(same) / groupSize * groupSize
		for i := 0; i < full; i += groupSize {
			rest = append(rest, merge(same[i:i+groupSize], level+1))
		}
		records = append(rest, same[full:]...)
	}
	sortByStart(records)
	return records
}

func sortByStart(records []GameRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].StartTime.Before(records[j].StartTime)
	})
}

func maxLevel(records []GameRecord) int {
	level := 0
	for _, r := range records {
		if r.CompressionIndex > level {
			level = r.CompressionIndex
		}
	}
	return level
}

// merge folds a group into a single record at the given level.
func merge(group []GameRecord, level int) GameRecord {
	out := GameRecord{
		SessionID:        group[0].SessionID,
		StartTime:        group[0].StartTime,
		EndTime:          group[0].EndTime,
		CompressionIndex: level,
		MaxScore:         group[0].MaxScore,
		MinScore:         group[0].MinScore,
		MaxDuration:      group[0].MaxDuration,
		MinDuration:      group[0].MinDuration,
	}

	var totalScore, totalDuration float64
	for _, g := range group {
		if g.SessionID != out.SessionID {
			out.SessionID = ""
		}
		if g.StartTime.Before(out.StartTime) {
			out.StartTime = g.StartTime
		}
		if g.EndTime.After(out.EndTime) {
			out.EndTime = g.EndTime
		}
		out.MaxScore = max(out.MaxScore, g.MaxScore)
		out.MinScore = min(out.MinScore, g.MinScore)
		out.MaxDuration = max(out.MaxDuration, g.MaxDuration)
		out.MinDuration = min(out.MinDuration, g.MinDuration)
		totalScore += g.AverageScore * float64(g.GamesCount)
		totalDuration += g.AverageDuration * float64(g.GamesCount)
		out.GamesCount += g.GamesCount
	}
	out.AverageScore = totalScore / float64(out.GamesCount)
	out.AverageDuration = totalDuration / float64(out.GamesCount)
	return out
}

// GamesPlayed is the number of games behind all records.
func (h *History) GamesPlayed() int {
	total := 0
	for _, g := range h.Games {
		total += g.GamesCount
	}
	return total
}

// AverageScore is the mean score over every recorded game.
func (h *History) AverageScore() float64 {
	played := h.GamesPlayed()
	if played == 0 {
		return 0
	}
	var total float64
	for _, g := range h.Games {
		total += g.AverageScore * float64(g.GamesCount)
	}
	return total / float64(played)
}

// BestScore is the highest score ever recorded.
func (h *History) BestScore() int {
	best := 0
	for _, g := range h.Games {
		best = max(best, g.MaxScore)
	}
	return best
}

// Save writes the history as JSON, creating the parent directory if needed.
// A history without a path is not saved.
func (h *History) Save() error {
	if h.path == "" {
		return nil
	}
	if dir := filepath.Dir(h.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(err, "failed to create stats directory")
		}
	}

	data, err := json.MarshalIndent(h.Games, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal stats data")
	}

	if err := os.WriteFile(h.path, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write stats file")
	}
	return nil
}
