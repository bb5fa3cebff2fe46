package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-ai/internal/games/flappy"
	"github.com/vovakirdan/flappy-ai/internal/storage"
)

// stores bundles the persistence chosen by the flags.
type stores struct {
	db   *storage.Store // attempt history, nil when the database is unavailable
	best flappy.HighScoreStore
	file *storage.FileStore // set with --store file
}

// openStores opens the history database and the high-score store. A broken
// database only costs the history, except in sqlite mode where the high
// score falls back to the file store.
func openStores(logger *log.Logger) (*stores, error) {
	if flagStore != storeSQLite && flagStore != storeFile {
		return nil, fmt.Errorf("invalid --store %q: want %s or %s", flagStore, storeSQLite, storeFile)
	}

	s := &stores{}
	db, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, history disabled", "path", flagDBPath, "err", err)
	} else {
		s.db = db
	}

	if flagStore == storeSQLite && s.db != nil {
		s.best = s.db.Best(flappy.GameID)
		return s, nil
	}

	file, err := storage.NewFileStore(flagHighScoreFile)
	if err != nil {
		s.Close()
		return nil, err
	}
	if flagStore == storeSQLite {
		logger.Warn("using high score file instead", "path", file.Path())
	}
	s.file = file
	s.best = file
	return s, nil
}

// Close releases the database.
func (s *stores) Close() {
	if s.db != nil {
		//nolint:errcheck // Best-effort close on exit
		s.db.Close()
	}
}
