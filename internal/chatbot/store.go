package chatbot

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gabapcia/solwatch/internal/pkg/logger"
)

var ErrStoreAlreadyStarted = errors.New("state store already started")

const (
	defaultIdleTTL       = 30 * time.Minute
	defaultSweepInterval = time.Minute
)

// chatLock serializes the turns of one chat. refs counts the turns holding or
// waiting on it so the entry can be dropped once the chat goes quiet.
type chatLock struct {
	sem  chan struct{}
	refs int
}

// StateStore keeps the conversation state of every chat in memory.
//
// Turns of the same chat run one at a time through WithChat; turns of
// different chats never wait on each other. States idle for longer than the
// configured TTL are dropped on access and by the sweeper.
type StateStore struct {
	mu     sync.Mutex
	states map[int64]ConversationState
	locks  map[int64]*chatLock

	idleTTL       time.Duration
	sweepInterval time.Duration
	now           func() time.Time

	lifecycleMu sync.Mutex
	isStarted   bool
	closeFunc   func()
}

type storeConfig struct {
	idleTTL       time.Duration
	sweepInterval time.Duration
	now           func() time.Time
}

// StoreOption configures a StateStore.
type StoreOption func(*storeConfig)

// WithIdleTTL sets how long an untouched flow survives. Zero disables expiry.
func WithIdleTTL(d time.Duration) StoreOption {
	return func(c *storeConfig) {
		c.idleTTL = d
	}
}

// WithSweepInterval sets how often the sweeper looks for expired flows.
func WithSweepInterval(d time.Duration) StoreOption {
	return func(c *storeConfig) {
		c.sweepInterval = d
	}
}

// WithStoreClock overrides the time source.
func WithStoreClock(now func() time.Time) StoreOption {
	return func(c *storeConfig) {
		c.now = now
	}
}

// NewStateStore creates an empty store.
func NewStateStore(opts ...StoreOption) *StateStore {
	cfg := storeConfig{
		idleTTL:       defaultIdleTTL,
		sweepInterval: defaultSweepInterval,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &StateStore{
		states:        make(map[int64]ConversationState),
		locks:         make(map[int64]*chatLock),
		idleTTL:       cfg.idleTTL,
		sweepInterval: cfg.sweepInterval,
		now:           cfg.now,
	}
}

func (s *StateStore) acquire(ctx context.Context, chatID int64) (release func(), err error) {
	s.mu.Lock()
	l, ok := s.locks[chatID]
	if !ok {
		l = &chatLock{sem: make(chan struct{}, 1)}
		s.locks[chatID] = l
	}
	l.refs++
	s.mu.Unlock()

	unref := func() {
		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, chatID)
		}
		s.mu.Unlock()
	}

	select {
	case l.sem <- struct{}{}:
	case <-ctx.Done():
		unref()
		return nil, ctx.Err()
	}

	return func() {
		<-l.sem
		unref()
	}, nil
}

// WithChat runs fn as the only in-flight turn of chatID.
//
// fn receives the chat's current state and may mutate it. The mutated state is
// saved when fn returns nil; a state left at StateNone is deleted. When fn
// fails the stored state is left untouched.
func (s *StateStore) WithChat(ctx context.Context, chatID int64, fn func(state *ConversationState) error) error {
	release, err := s.acquire(ctx, chatID)
	if err != nil {
		return err
	}
	defer release()

	state := s.load(ctx, chatID)
	if err := fn(&state); err != nil {
		return err
	}

	s.save(chatID, state)
	return nil
}

// Get returns a copy of the chat's state without taking the chat lock.
func (s *StateStore) Get(ctx context.Context, chatID int64) ConversationState {
	return s.load(ctx, chatID)
}

// Len returns how many chats have a flow in progress.
func (s *StateStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.states)
}

func (s *StateStore) load(ctx context.Context, chatID int64) ConversationState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.states[chatID]
	if !ok {
		return ConversationState{}
	}

	if state.expired(s.now(), s.idleTTL) {
		logger.Debug(ctx, "conversation state expired", "chat.id", chatID, "state", state.Type.String())
		delete(s.states, chatID)
		return ConversationState{}
	}

	return state
}

func (s *StateStore) save(chatID int64, state ConversationState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !state.Active() {
		delete(s.states, chatID)
		return
	}

	state.UpdatedAt = s.now()
	s.states[chatID] = state
}

// Sweep drops every expired state and returns how many were removed.
func (s *StateStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var removed int
	for chatID, state := range s.states {
		if state.expired(now, s.idleTTL) {
			delete(s.states, chatID)
			removed++
		}
	}

	return removed
}

// Start launches the background sweeper. It is a no-op when expiry is disabled.
func (s *StateStore) Start(ctx context.Context) error {
	s.lifecycleMu.Lock()
	defer s.lifecycleMu.Unlock()

	if s.isStarted {
		return ErrStoreAlreadyStarted
	}

	if s.idleTTL <= 0 || s.sweepInterval <= 0 {
		s.isStarted = true
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)

		ticker := time.NewTicker(s.sweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := s.Sweep(); n > 0 {
					logger.Debug(ctx, "expired conversation states swept", "count", n)
				}
			}
		}
	}()

	s.closeFunc = func() {
		cancel()
		<-done
	}
	s.isStarted = true
	return nil
}

// Close stops the sweeper and waits for it to exit.
func (s *StateStore) Close() {
	s.lifecycleMu.Lock()
	defer s.lifecycleMu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}
	s.isStarted = false
	s.closeFunc = nil
}
