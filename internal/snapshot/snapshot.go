// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package snapshot

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/metrics"
	"github.com/tomtom215/cinematch/internal/recommend/algorithms"
)

// Key layout
const (
	metaKey      = "meta"
	rowKeyPrefix = "simrow:"
)

// Lookup results, used as metric labels.
const (
	ResultHit   = "hit"
	ResultMiss  = "miss"
	ResultSaved = "saved"
	ResultError = "error"
)

// Meta describes a stored snapshot.
type Meta struct {
	Fingerprint string    `json:"fingerprint"`
	K           int       `json:"k"`
	Rows        int       `json:"rows"`
	Entries     int       `json:"entries"`
	CreatedAt   time.Time `json:"created_at"`
}

// Store is a BadgerDB-backed snapshot store.
type Store struct {
	db *badger.DB
}

// Open opens the snapshot database at path. An empty path opens an
// in-memory store, which is only useful in tests.
func Open(path string) (*Store, error) {
	var opts badger.Options
	if path == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(path, 0o750); err != nil {
			return nil, fmt.Errorf("create snapshot directory %s: %w", path, err)
		}
		opts = badger.DefaultOptions(filepath.Clean(path))
	}
	opts = opts.WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db for snapshot: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Fingerprint identifies a similarity source and pruning bound. It hashes
// the absolute path, size and modification time rather than the contents,
// which would cost as much as re-reading the file.
func Fingerprint(path string, k int) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", abs, err)
	}

	h := sha256.New()
	fmt.Fprintf(h, "%s|%d|%d|%d", abs, info.Size(), info.ModTime().UnixNano(), k)
	return hex.EncodeToString(h.Sum(nil)), nil
}

func rowKey(id int) []byte {
	return []byte(rowKeyPrefix + strconv.Itoa(id))
}

// Meta returns the stored snapshot description, or false when none exists.
func (s *Store) Meta() (Meta, bool, error) {
	var meta Meta
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(metaKey))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &meta)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return Meta{}, false, nil
	}
	if err != nil {
		return Meta{}, false, fmt.Errorf("read snapshot meta: %w", err)
	}
	return meta, true, nil
}

// Load returns the stored matrix when its fingerprint matches. A missing,
// stale or incomplete snapshot is a miss, not an error.
func (s *Store) Load(ctx context.Context, fingerprint string) (*algorithms.PrunedMatrix, bool, error) {
	meta, ok, err := s.Meta()
	if err != nil {
		metrics.RecordSnapshot(ResultError)
		return nil, false, err
	}
	if !ok || meta.Fingerprint != fingerprint {
		metrics.RecordSnapshot(ResultMiss)
		return nil, false, nil
	}

	rows := make(map[int][]algorithms.Neighbor, meta.Rows)
	err = s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(rowKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			item := it.Item()
			id, err := strconv.Atoi(strings.TrimPrefix(string(item.Key()), rowKeyPrefix))
			if err != nil {
				return fmt.Errorf("invalid snapshot key %q: %w", item.Key(), err)
			}
			var row []algorithms.Neighbor
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &row)
			}); err != nil {
				return fmt.Errorf("decode snapshot row %d: %w", id, err)
			}
			rows[id] = row
		}
		return nil
	})
	if err != nil {
		metrics.RecordSnapshot(ResultError)
		return nil, false, fmt.Errorf("read snapshot rows: %w", err)
	}

	if len(rows) != meta.Rows {
		logging.Warn().
			Int("expected", meta.Rows).
			Int("found", len(rows)).
			Msg("Snapshot is incomplete, rebuilding")
		metrics.RecordSnapshot(ResultMiss)
		return nil, false, nil
	}

	metrics.RecordSnapshot(ResultHit)
	return algorithms.NewPrunedMatrix(meta.K, rows), true, nil
}

// Save replaces any stored snapshot with sim under fingerprint.
func (s *Store) Save(ctx context.Context, fingerprint string, sim *algorithms.PrunedMatrix) error {
	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(metaKey))
	}); err != nil {
		metrics.RecordSnapshot(ResultError)
		return fmt.Errorf("clear snapshot meta: %w", err)
	}
	if err := s.db.DropPrefix([]byte(rowKeyPrefix)); err != nil {
		metrics.RecordSnapshot(ResultError)
		return fmt.Errorf("clear snapshot rows: %w", err)
	}

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()

	rows := sim.Rows()
	for id, row := range rows {
		if err := ctx.Err(); err != nil {
			return err
		}
		if row == nil {
			row = []algorithms.Neighbor{}
		}
		data, err := json.Marshal(row)
		if err != nil {
			return fmt.Errorf("marshal snapshot row %d: %w", id, err)
		}
		if err := wb.Set(rowKey(id), data); err != nil {
			metrics.RecordSnapshot(ResultError)
			return fmt.Errorf("write snapshot row %d: %w", id, err)
		}
	}
	if err := wb.Flush(); err != nil {
		metrics.RecordSnapshot(ResultError)
		return fmt.Errorf("flush snapshot rows: %w", err)
	}

	meta := Meta{
		Fingerprint: fingerprint,
		K:           sim.K(),
		Rows:        len(rows),
		Entries:     sim.Entries(),
		CreatedAt:   time.Now().UTC(),
	}
	data, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("marshal snapshot meta: %w", err)
	}
	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(metaKey), data)
	}); err != nil {
		metrics.RecordSnapshot(ResultError)
		return fmt.Errorf("write snapshot meta: %w", err)
	}

	metrics.RecordSnapshot(ResultSaved)
	logging.Info().
		Int("rows", meta.Rows).
		Int("entries", meta.Entries).
		Int("k", meta.K).
		Msg("Similarity snapshot saved")
	return nil
}

// LoadOrBuild returns the stored matrix for fingerprint, or calls build and
// saves its result. The boolean reports a snapshot hit. A failed save is
// logged and the built matrix is still returned.
func (s *Store) LoadOrBuild(ctx context.Context, fingerprint string,
	build func(context.Context) (*algorithms.PrunedMatrix, error)) (*algorithms.PrunedMatrix, bool, error) {
	sim, ok, err := s.Load(ctx, fingerprint)
	if err != nil {
		logging.Warn().Err(err).Msg("Failed to read similarity snapshot, rebuilding")
	}
	if ok {
		return sim, true, nil
	}

	sim, err = build(ctx)
	if err != nil {
		return nil, false, err
	}
	if err := s.Save(ctx, fingerprint, sim); err != nil {
		logging.Warn().Err(err).Msg("Failed to save similarity snapshot")
	}
	return sim, false, nil
}
