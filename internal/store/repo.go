package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a named key or run does not exist.
var ErrNotFound = errors.New("not found")

// AnswerKeyRecord is a saved answer key.
type AnswerKeyRecord struct {
	Name          string
	QuestionCount int
	Answers       map[string]string
	CreatedAt     time.Time
}

// Thresholds is the classifier configuration persisted with a run.
type Thresholds struct {
	KIndexCeiling     float64
	HarppHoganFloor   float64
	RarityFloor       float64
	GBTZFloor         float64
	MinSharedWrong    int
	CountBlankMatches bool
}

// RunRecord summarizes one persisted analysis run.
type RunRecord struct {
	RunID          string
	KeyName        string
	Source         string
	TotalExaminees int
	QuestionCount  int
	TotalPairs     int
	TotalFlagged   int
	Thresholds     Thresholds
	CreatedAt      time.Time
}

// FlaggedPairRecord is one flagged pair of a persisted run.
type FlaggedPairRecord struct {
	Rank            int
	ExamineeA       string
	ExamineeB       string
	Agreements      int
	WrongAgreements int
	Differences     int
	KIndexAB        float64
	KIndexBA        float64
	GBTZ            float64
	HarppHogan      float64
	RarityScore     float64
	Suspicion       float64
	Reason          string
}

// KeyRepo manages saved answer keys.
type KeyRepo interface {
	// Save stores a key, replacing any existing key with the same name.
	Save(ctx context.Context, rec AnswerKeyRecord) error

	// Get returns the key by name, or ErrNotFound.
	Get(ctx context.Context, name string) (*AnswerKeyRecord, error)

	// List returns all saved keys, newest first.
	List(ctx context.Context) ([]AnswerKeyRecord, error)

	// Delete removes the key by name. Deleting an absent key is ErrNotFound.
	Delete(ctx context.Context, name string) error
}

// RunRepo manages persisted analysis runs.
type RunRepo interface {
	// SaveRun stores a run summary together with its flagged pairs.
	SaveRun(ctx context.Context, run RunRecord, pairs []FlaggedPairRecord) error

	// ListRuns returns run summaries, newest first. limit 0 means all.
	ListRuns(ctx context.Context, limit int) ([]RunRecord, error)

	// GetRun returns one run and its flagged pairs in rank order.
	GetRun(ctx context.Context, runID string) (*RunRecord, []FlaggedPairRecord, error)

	// LatestRun returns the most recent run, or ErrNotFound.
	LatestRun(ctx context.Context) (*RunRecord, []FlaggedPairRecord, error)
}
