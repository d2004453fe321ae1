// Package storage persists episode runs: a metadata.json plus a steps.csv
// per run directory.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// StepRecord is one persisted step of an episode trace.
type StepRecord struct {
	Time            float64
	AltitudeFt      float64
	DeltaHeadingDeg float64
	RollRad         float64
	PitchRad        float64
	Reward          float64
}

// RunMetadata summarizes one finished episode.
type RunMetadata struct {
	ID          string    `json:"id"`
	Task        string    `json:"task"`
	Timestamp   time.Time `json:"timestamp"`
	Seed        int64     `json:"seed"`
	Dt          float64   `json:"dt"`
	Steps       int       `json:"steps"`
	TotalReward float64   `json:"total_reward"`
	Termination string    `json:"termination"`
	Success     bool      `json:"success"`
}

var csvHeader = []string{"t", "alt_ft", "delta_heading_deg", "roll_rad", "pitch_rad", "reward"}

// Save writes one episode under a fresh run ID and returns it.
func (s *Store) Save(meta RunMetadata, trace []StepRecord) (string, error) {
	runID := fmt.Sprintf("%s_%s", meta.Task, uuid.NewString()[:8])
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()
	meta.Steps = len(trace)

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()
	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "steps.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()
	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(csvHeader); err != nil {
		return "", err
	}
	for _, rec := range trace {
		row := []string{
			formatFloat(rec.Time),
			formatFloat(rec.AltitudeFt),
			formatFloat(rec.DeltaHeadingDeg),
			formatFloat(rec.RollRad),
			formatFloat(rec.PitchRad),
			formatFloat(rec.Reward),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	return runID, nil
}

// List returns metadata for every stored run, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	runs := make([]RunMetadata, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.LoadMetadata(e.Name())
		if err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) LoadMetadata(runID string) (RunMetadata, error) {
	var meta RunMetadata
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return meta, err
	}
	err = json.Unmarshal(data, &meta)
	return meta, err
}

// LoadTrace reads a run's steps.csv back into records.
func (s *Store) LoadTrace(runID string) ([]StepRecord, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "steps.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, nil
	}
	trace := make([]StepRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) < len(csvHeader) {
			return nil, fmt.Errorf("storage: malformed row in %s", runID)
		}
		vals := make([]float64, len(csvHeader))
		for i := range vals {
			v, err := strconv.ParseFloat(row[i], 64)
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		trace = append(trace, StepRecord{
			Time:            vals[0],
			AltitudeFt:      vals[1],
			DeltaHeadingDeg: vals[2],
			RollRad:         vals[3],
			PitchRad:        vals[4],
			Reward:          vals[5],
		})
	}
	return trace, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
