package main

import (
	"charon/internal/store"

	"github.com/rs/zerolog"
)

// openScores falls back to a memory-only store when persistence is
// disabled or unavailable.
func openScores(disabled bool, log zerolog.Logger) *store.Scores {
	if !disabled {
		s, err := store.Open("charon")
		if err == nil {
			return s
		}
		log.Warn().Err(err).Msg("score store unavailable, scores will not persist")
	}
	s, _ := store.New(nil)
	return s
}
