package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/jaywantadh/NormaDiff/internal/comparator"
)

// ErrNotFound is returned when a session has no stored comparison.
var ErrNotFound = errors.New("no comparison stored for session")

const statePrefix = "state:"

// State is everything a session needs to answer follow-up questions
// about its last comparison.
type State struct {
	Result    *comparator.Result `json:"result"`
	Doc1Name  string             `json:"doc1_name"`
	Doc2Name  string             `json:"doc2_name"`
	Doc1Text  string             `json:"doc1_text"`
	Doc2Text  string             `json:"doc2_text"`
	CreatedAt time.Time          `json:"created_at"`
}

// Entry summarizes one stored comparison for history listings.
type Entry struct {
	SessionID        string    `json:"session_id"`
	Document1        string    `json:"document1"`
	Document2        string    `json:"document2"`
	SimilarityRatio  float64   `json:"similarity_ratio"`
	TotalDifferences int       `json:"total_differences"`
	CreatedAt        time.Time `json:"created_at"`
}

// Store keeps per-session comparison state in BadgerDB. Values are
// lz4-compressed JSON, sealed with ChaCha20-Poly1305 when the store was
// opened with a password. Records expire after the configured TTL.
type Store struct {
	db       *badger.DB
	ttl      time.Duration
	password string
}

// Open opens (or creates) the session database at the given path. An
// empty password disables encryption at rest; a zero TTL keeps records
// until deleted.
func Open(dbPath string, ttl time.Duration, password string) (*Store, error) {
	db, err := badger.Open(badger.DefaultOptions(dbPath).WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %v", err)
	}
	return &Store{db: db, ttl: ttl, password: password}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// NewID mints a fresh session identifier.
func NewID() string {
	return uuid.New().String()
}

// Put stores the comparison state for a session, replacing any previous
// one. CreatedAt is stamped if the caller left it zero.
func (s *Store) Put(sessionID string, state *State) error {
	if state.CreatedAt.IsZero() {
		state.CreatedAt = time.Now()
	}

	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode session state: %v", err)
	}
	payload, err = s.encode(payload)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry(stateKey(sessionID), payload)
		if s.ttl > 0 {
			entry = entry.WithTTL(s.ttl)
		}
		return txn.SetEntry(entry)
	})
}

// Get retrieves the comparison state for a session. Expired records
// behave like missing ones.
func (s *Store) Get(sessionID string) (*State, error) {
	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(stateKey(sessionID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			raw = append([]byte(nil), val...)
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session state: %v", err)
	}

	return s.decode(raw)
}

// Delete drops a session's stored comparison. Missing sessions are not
// an error.
func (s *Store) Delete(sessionID string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(stateKey(sessionID))
	})
	if err != nil {
		return fmt.Errorf("failed to delete session state: %v", err)
	}
	return nil
}

// List returns up to limit stored comparisons, newest first. Records
// that fail to decode (for example after a password change) are
// skipped.
func (s *Store) List(limit int) ([]Entry, error) {
	var entries []Entry

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(statePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			sessionID := strings.TrimPrefix(string(item.Key()), statePrefix)

			var raw []byte
			if err := item.Value(func(val []byte) error {
				raw = append([]byte(nil), val...)
				return nil
			}); err != nil {
				return err
			}

			state, err := s.decode(raw)
			if err != nil {
				continue
			}

			entry := Entry{
				SessionID: sessionID,
				Document1: state.Doc1Name,
				Document2: state.Doc2Name,
				CreatedAt: state.CreatedAt,
			}
			if state.Result != nil {
				entry.SimilarityRatio = state.Result.SimilarityRatio
				entry.TotalDifferences = state.Result.Statistics.TotalDifferences
			}
			entries = append(entries, entry)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %v", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (s *Store) encode(payload []byte) ([]byte, error) {
	payload, err := compress(payload)
	if err != nil {
		return nil, err
	}
	if s.password == "" {
		return payload, nil
	}
	return seal(payload, s.password)
}

func (s *Store) decode(raw []byte) (*State, error) {
	var err error
	if s.password != "" {
		raw, err = unseal(raw, s.password)
		if err != nil {
			return nil, err
		}
	}
	raw, err = decompress(raw)
	if err != nil {
		return nil, err
	}

	var state State
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("failed to decode session state: %v", err)
	}
	return &state, nil
}

func stateKey(sessionID string) []byte {
	return []byte(statePrefix + sessionID)
}
