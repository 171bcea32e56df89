// Package store persists the last and best round scores.
package store

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	scoresObject   = "scores"
	scoresProperty = "record"
)

// Record is the persisted score pair.
type Record struct {
	Last int `yaml:"last"`
	Best int `yaml:"best"`
}

// Scores keeps a Record in memory and mirrors it to gdata. A nil manager
// leaves the store memory-only.
type Scores struct {
	data   *gdata.Manager
	record Record
}

// Open opens the gdata store for app and loads any saved record.
func Open(app string) (*Scores, error) {
	m, err := gdata.Open(gdata.Config{AppName: app})
	if err != nil {
		return nil, fmt.Errorf("open score store: %w", err)
	}
	return New(m)
}

// New wraps an existing manager and loads the saved record.
func New(m *gdata.Manager) (*Scores, error) {
	s := &Scores{data: m}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Record returns the current record.
func (s *Scores) Record() Record { return s.record }

// Load replaces the in-memory record with the saved one, if any.
func (s *Scores) Load() error {
	if s.data == nil || !s.data.ObjectPropExists(scoresObject, scoresProperty) {
		return nil
	}
	raw, err := s.data.LoadObjectProp(scoresObject, scoresProperty)
	if err != nil {
		return fmt.Errorf("load scores: %w", err)
	}
	var rec Record
	if err := yaml.Unmarshal(raw, &rec); err != nil {
		return fmt.Errorf("decode scores: %w", err)
	}
	s.record = rec
	return nil
}

// Finish records the score of a finished round and saves it.
func (s *Scores) Finish(score int) error {
	s.record.Last = score
	s.record.Best = max(s.record.Best, score)
	return s.Save()
}

// Save writes the record. It is a no-op without a manager.
func (s *Scores) Save() error {
	if s.data == nil {
		return nil
	}
	raw, err := yaml.Marshal(s.record)
	if err != nil {
		return fmt.Errorf("encode scores: %w", err)
	}
	if err := s.data.SaveObjectProp(scoresObject, scoresProperty, raw); err != nil {
		return fmt.Errorf("save scores: %w", err)
	}
	return nil
}
