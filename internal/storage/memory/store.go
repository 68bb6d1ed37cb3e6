// Package memory is the in-process storage backend. Each project is an
// aggregate with its own lock guarding its members and tasks; the store-level
// lock guards only the lookup indexes and is never held while an aggregate
// lock is acquired.
package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	identitydomain "github.com/GoSim-25-26J-441/taskboard-backend/internal/identity/domain"
	membershipdomain "github.com/GoSim-25-26J-441/taskboard-backend/internal/membership/domain"
	projectsdomain "github.com/GoSim-25-26J-441/taskboard-backend/internal/projects/domain"
	"github.com/GoSim-25-26J-441/taskboard-backend/internal/tasks/domain"
)

type Store struct {
	mu           sync.RWMutex
	users        map[string]identitydomain.User
	emails       map[string]string
	projects     map[string]*projectAggregate
	userProjects map[string][]string
	taskIndex    map[string]string

	seq atomic.Int64
	now func() time.Time
}

type projectAggregate struct {
	mu      sync.RWMutex
	project projectsdomain.Project
	seq     int64

	members   []memberRow
	memberSet map[string]struct{}
	tasks     map[string]*taskRow
}

type memberRow struct {
	membership membershipdomain.Membership
	seq        int64
}

// taskRow has its own lock so status and assignee writes on different tasks
// of one project do not serialize.
type taskRow struct {
	mu         sync.Mutex
	task       domain.Task
	assigneeID string
	seq        int64
}

func NewStore() *Store {
	return &Store{
		users:        make(map[string]identitydomain.User),
		emails:       make(map[string]string),
		projects:     make(map[string]*projectAggregate),
		userProjects: make(map[string][]string),
		taskIndex:    make(map[string]string),
		now:          time.Now,
	}
}

func (s *Store) nextSeq() int64 {
	return s.seq.Add(1)
}

func (s *Store) timestamp() time.Time {
	return s.now().UTC()
}

func (s *Store) aggregate(projectID string) (*projectAggregate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	agg, ok := s.projects[projectID]
	return agg, ok
}

func (s *Store) user(id string) (identitydomain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	return u, ok
}

// Users returns the identity repository view of the store.
func (s *Store) Users() *UserRepository { return &UserRepository{s: s} }

// Projects returns the project repository view of the store.
func (s *Store) Projects() *ProjectRepository { return &ProjectRepository{s: s} }

// Memberships returns the membership repository view of the store.
func (s *Store) Memberships() *MembershipRepository { return &MembershipRepository{s: s} }

// Tasks returns the task repository view of the store.
func (s *Store) Tasks() *TaskRepository { return &TaskRepository{s: s} }

type txKey struct{}

type memTx struct {
	mu   sync.Mutex
	undo []func()
}

func (t *memTx) onRollback(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.undo = append(t.undo, fn)
}

// WithinTx runs fn and, if it fails, reverts the writes fn made through this
// store in reverse order. Nested calls join the outer transaction.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*memTx); ok {
		return fn(ctx)
	}

	tx := &memTx{}
	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		tx.mu.Lock()
		undo := tx.undo
		tx.mu.Unlock()
		for i := len(undo) - 1; i >= 0; i-- {
			undo[i]()
		}
		return err
	}
	return nil
}

// recordUndo registers fn to run if the surrounding WithinTx fails.
func recordUndo(ctx context.Context, fn func()) {
	if tx, ok := ctx.Value(txKey{}).(*memTx); ok {
		tx.onRollback(fn)
	}
}
