// Package store is the session and domain store of the help desk: the signed-in
// session plus the user directory, reports, notifications and chat room.
//
// A Store is an ordinary value owned by the process and handed to whoever needs
// it. Every operation takes the same mutex, so operations run one at a time and
// observe each other's effects in order. Not-found cases are reported with a
// boolean or zero value; the store never fails a read or a write because of a
// missing id.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/storage"
	"github.com/google/uuid"
)

// DefaultNamespace is the key the state is saved under.
const DefaultNamespace = "user-storage"

// State is everything the store owns. It is also the persisted shape.
type State struct {
	User            *models.User          `json:"user"`
	IsAuthenticated bool                  `json:"is_authenticated"`
	Notifications   []models.Notification `json:"notifications"`
	AllUsers        []models.User         `json:"all_users"`
	AllReports      []models.Report       `json:"all_reports"`
	ChatMessages    []models.ChatMessage  `json:"chat_messages"`
}

// normalize replaces nil collections, which an older or hand-edited snapshot may carry.
func (st *State) normalize() {
	if st.Notifications == nil {
		st.Notifications = []models.Notification{}
	}
	if st.AllUsers == nil {
		st.AllUsers = []models.User{}
	}
	if st.AllReports == nil {
		st.AllReports = []models.Report{}
	}
	if st.ChatMessages == nil {
		st.ChatMessages = []models.ChatMessage{}
	}
}

type envelope struct {
	State   State `json:"state"`
	Version int   `json:"version"`
}

type Options struct {
	// Authenticator checks credentials on Login. Required.
	Authenticator Authenticator
	// Snapshotter receives the full state after every mutation. Optional.
	Snapshotter storage.Snapshotter
	// Namespace defaults to DefaultNamespace.
	Namespace string
	// Clock defaults to time.Now.
	Clock func() time.Time
	// IDs defaults to random UUID strings.
	IDs    func() string
	Logger *slog.Logger
}

type Store struct {
	mu    sync.Mutex
	state State

	auth      Authenticator
	snap      storage.Snapshotter
	namespace string
	now       func() time.Time
	newID     func() string
	logger    *slog.Logger

	// version counts mutations; guarded by mu.
	version uint64
	// saved is the newest version written out; guarded by saveMu.
	saved  uint64
	saveMu sync.Mutex
	wg     sync.WaitGroup
}

// New returns a store holding the seed data and no session.
func New(opts Options) *Store {
	s := &Store{
		auth:      opts.Authenticator,
		snap:      opts.Snapshotter,
		namespace: opts.Namespace,
		now:       opts.Clock,
		newID:     opts.IDs,
		logger:    opts.Logger,
	}
	if s.namespace == "" {
		s.namespace = DefaultNamespace
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.state = seedState()
	return s
}

// Open builds a store and rehydrates it from the snapshotter. When nothing is
// stored yet the seed data is kept. A snapshot that cannot be decoded is
// logged and ignored.
func Open(ctx context.Context, opts Options) (*Store, error) {
	s := New(opts)
	if s.snap == nil {
		return s, nil
	}

	data, err := s.snap.Load(ctx, s.namespace)
	if errors.Is(err, storage.ErrSnapshotNotFound) {
		s.logger.Info("no stored state, starting from seed data", "namespace", s.namespace)
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load store state: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		s.logger.Warn("stored state unreadable, starting from seed data", "namespace", s.namespace, "error", err)
		return s, nil
	}
	s.state = env.State
	s.state.normalize()
	s.logger.Info("store state restored",
		"namespace", s.namespace,
		"users", len(s.state.AllUsers),
		"reports", len(s.state.AllReports),
		"chat_messages", len(s.state.ChatMessages),
	)
	return s, nil
}

// Snapshot returns a copy of the whole state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyStateLocked()
}

// Wait blocks until every scheduled save has finished.
func (s *Store) Wait() {
	s.wg.Wait()
}

func (s *Store) copyStateLocked() State {
	st := State{
		IsAuthenticated: s.state.IsAuthenticated,
		Notifications:   slices.Clone(s.state.Notifications),
		AllUsers:        slices.Clone(s.state.AllUsers),
		AllReports:      slices.Clone(s.state.AllReports),
		ChatMessages:    slices.Clone(s.state.ChatMessages),
	}
	if s.state.User != nil {
		u := *s.state.User
		st.User = &u
	}
	return st
}

// persistLocked schedules a background save of the current state. It must be
// called with s.mu held, after the mutation.
func (s *Store) persistLocked() {
	if s.snap == nil {
		return
	}
	s.version++
	version := s.version

	data, err := json.Marshal(envelope{State: s.state})
	if err != nil {
		s.logger.Error("failed to encode store state", "namespace", s.namespace, "error", err)
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.save(version, data)
	}()
}

// save writes data unless a newer version already reached the snapshotter.
func (s *Store) save(version uint64, data []byte) {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	if version <= s.saved {
		return
	}
	if err := s.snap.Save(context.Background(), s.namespace, data); err != nil {
		s.logger.Error("failed to persist store state", "namespace", s.namespace, "version", version, "error", err)
		return
	}
	s.saved = version
}
