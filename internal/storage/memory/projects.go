package memory

import (
	"context"
	"sort"

	"github.com/GoSim-25-26J-441/taskboard-backend/internal/projects/domain"
)

type ProjectRepository struct {
	s *Store
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	p.CreatedAt = r.s.timestamp()
	agg := &projectAggregate{
		project:   *p,
		seq:       r.s.nextSeq(),
		memberSet: make(map[string]struct{}),
		tasks:     make(map[string]*taskRow),
	}

	r.s.mu.Lock()
	r.s.projects[p.ID] = agg
	r.s.mu.Unlock()

	recordUndo(ctx, func() {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
		delete(r.s.projects, p.ID)
	})
	return nil
}

func (r *ProjectRepository) GetByID(_ context.Context, id string) (*domain.Project, error) {
	agg, ok := r.s.aggregate(id)
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	agg.mu.RLock()
	defer agg.mu.RUnlock()
	p := agg.project
	return &p, nil
}

func (r *ProjectRepository) Exists(_ context.Context, id string) (bool, error) {
	_, ok := r.s.aggregate(id)
	return ok, nil
}

// ListForUser returns the user's projects ordered by creation time, then insertion order.
func (r *ProjectRepository) ListForUser(_ context.Context, userID string) ([]domain.Project, error) {
	r.s.mu.RLock()
	aggs := make([]*projectAggregate, 0, len(r.s.userProjects[userID]))
	for _, id := range r.s.userProjects[userID] {
		if agg, ok := r.s.projects[id]; ok {
			aggs = append(aggs, agg)
		}
	}
	r.s.mu.RUnlock()

	sort.SliceStable(aggs, func(i, j int) bool {
		a, b := aggs[i], aggs[j]
		if !a.project.CreatedAt.Equal(b.project.CreatedAt) {
			return a.project.CreatedAt.Before(b.project.CreatedAt)
		}
		return a.seq < b.seq
	})

	out := make([]domain.Project, 0, len(aggs))
	for _, agg := range aggs {
		agg.mu.RLock()
		out = append(out, agg.project)
		agg.mu.RUnlock()
	}
	return out, nil
}
