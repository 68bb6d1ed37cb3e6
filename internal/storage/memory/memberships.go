package memory

import (
	"context"
	"sort"

	identitydomain "github.com/GoSim-25-26J-441/taskboard-backend/internal/identity/domain"
	"github.com/GoSim-25-26J-441/taskboard-backend/internal/membership/domain"
	projectsdomain "github.com/GoSim-25-26J-441/taskboard-backend/internal/projects/domain"
)

type MembershipRepository struct {
	s *Store
}

// Add appends m to the project's member list under the aggregate lock, so the
// duplicate check and the insert cannot interleave with another Add.
func (r *MembershipRepository) Add(ctx context.Context, m *domain.Membership) error {
	agg, ok := r.s.aggregate(m.ProjectID)
	if !ok {
		return projectsdomain.ErrProjectNotFound
	}
	if _, ok := r.s.user(m.UserID); !ok {
		return identitydomain.ErrUserNotFound
	}

	agg.mu.Lock()
	defer agg.mu.Unlock()

	if _, exists := agg.memberSet[m.UserID]; exists {
		return domain.ErrAlreadyMember
	}
	m.CreatedAt = r.s.timestamp()
	agg.members = append(agg.members, memberRow{membership: *m, seq: r.s.nextSeq()})
	agg.memberSet[m.UserID] = struct{}{}

	r.s.mu.Lock()
	r.s.userProjects[m.UserID] = append(r.s.userProjects[m.UserID], m.ProjectID)
	r.s.mu.Unlock()

	recordUndo(ctx, func() { r.remove(agg, m.ProjectID, m.UserID) })
	return nil
}

func (r *MembershipRepository) remove(agg *projectAggregate, projectID, userID string) {
	agg.mu.Lock()
	defer agg.mu.Unlock()

	delete(agg.memberSet, userID)
	for i, row := range agg.members {
		if row.membership.UserID == userID {
			agg.members = append(agg.members[:i], agg.members[i+1:]...)
			break
		}
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ids := r.s.userProjects[userID]
	for i, id := range ids {
		if id == projectID {
			r.s.userProjects[userID] = append(ids[:i:i], ids[i+1:]...)
			break
		}
	}
}

func (r *MembershipRepository) IsMember(_ context.Context, projectID, userID string) (bool, error) {
	agg, ok := r.s.aggregate(projectID)
	if !ok {
		return false, nil
	}
	agg.mu.RLock()
	defer agg.mu.RUnlock()
	_, member := agg.memberSet[userID]
	return member, nil
}

// ListMembers returns members in join order with the owner first.
func (r *MembershipRepository) ListMembers(_ context.Context, projectID string) ([]domain.Member, error) {
	agg, ok := r.s.aggregate(projectID)
	if !ok {
		return nil, projectsdomain.ErrProjectNotFound
	}

	agg.mu.RLock()
	rows := make([]memberRow, len(agg.members))
	copy(rows, agg.members)
	agg.mu.RUnlock()

	sort.SliceStable(rows, func(i, j int) bool {
		oi := rows[i].membership.Role == domain.RoleOwner
		oj := rows[j].membership.Role == domain.RoleOwner
		if oi != oj {
			return oi
		}
		return rows[i].seq < rows[j].seq
	})

	out := make([]domain.Member, 0, len(rows))
	for _, row := range rows {
		u, _ := r.s.user(row.membership.UserID)
		out = append(out, domain.Member{
			UserID:   u.ID,
			Name:     u.Name,
			Email:    u.Email,
			Role:     row.membership.Role,
			JoinedAt: row.membership.CreatedAt,
		})
	}
	return out, nil
}
