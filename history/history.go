// Package history keeps the translations made during the current session.
// Entries live in memory only and are gone once the store is closed.
package history

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"go.aimuz.me/medtrans/internal/types"
)

// DefaultLimit is the number of entries kept when no limit is given.
const DefaultLimit = 50

var keyPrefix = []byte("h/")

// Store is a bounded, newest-first log of translations.
type Store struct {
	db    *badger.DB
	limit int

	mu     sync.Mutex
	seq    uint64
	oldest uint64 // sequence of the oldest entry still stored
}

// New opens an in-memory store keeping at most limit entries.
func New(limit int) (*Store, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	opts := badger.DefaultOptions("").
		WithInMemory(true).
		WithLogger(slogLogger{})

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open history store: %w", err)
	}
	return &Store{db: db, limit: limit, oldest: 1}, nil
}

// Close releases the store and drops every entry.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add records a completed translation and prunes the oldest entries beyond
// the limit.
func (s *Store) Add(t types.Translation) (types.HistoryEntry, error) {
	entry := types.HistoryEntry{
		ID:             t.RequestID,
		SourceLang:     t.SourceLang,
		TargetLang:     t.TargetLang,
		Text:           t.Text,
		TranslatedText: t.TranslatedText,
		CreatedAt:      time.Now().UnixMilli(),
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	val, err := json.Marshal(entry)
	if err != nil {
		return types.HistoryEntry{}, fmt.Errorf("marshal entry: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	seq, oldest := s.seq+1, s.oldest
	err = s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(key(seq), val); err != nil {
			return err
		}
		for ; oldest+uint64(s.limit) <= seq; oldest++ {
			if err := txn.Delete(key(oldest)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return types.HistoryEntry{}, fmt.Errorf("store entry: %w", err)
	}
	s.seq, s.oldest = seq, oldest
	return entry, nil
}

// Recent returns up to n entries, newest first. n <= 0 returns all.
func (s *Store) Recent(n int) ([]types.HistoryEntry, error) {
	var out []types.HistoryEntry
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		opts.Prefix = keyPrefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(key(^uint64(0))); it.Valid(); it.Next() {
			if n > 0 && len(out) >= n {
				break
			}
			var e types.HistoryEntry
			if err := it.Item().Value(func(v []byte) error {
				return json.Unmarshal(v, &e)
			}); err != nil {
				return err
			}
			out = append(out, e)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	return out, nil
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int(s.seq - s.oldest + 1)
}

func key(seq uint64) []byte {
	k := make([]byte, len(keyPrefix)+8)
	copy(k, keyPrefix)
	binary.BigEndian.PutUint64(k[len(keyPrefix):], seq)
	return k
}

// slogLogger routes badger's logging to slog.
type slogLogger struct{}

func (slogLogger) Errorf(format string, args ...any) {
	slog.Error("badger: " + fmt.Sprintf(format, args...))
}

func (slogLogger) Warningf(format string, args ...any) {
	slog.Warn("badger: " + fmt.Sprintf(format, args...))
}

func (slogLogger) Infof(format string, args ...any) {
	slog.Debug("badger: " + fmt.Sprintf(format, args...))
}

func (slogLogger) Debugf(format string, args ...any) {
	slog.Debug("badger: " + fmt.Sprintf(format, args...))
}
