package service

import (
	"context"
	"errors"
	"testing"

	"github.com/GoSim-25-26J-441/taskboard-backend/internal/apperr"
	identitydomain "github.com/GoSim-25-26J-441/taskboard-backend/internal/identity/domain"
	membershipdomain "github.com/GoSim-25-26J-441/taskboard-backend/internal/membership/domain"
	membershipservice "github.com/GoSim-25-26J-441/taskboard-backend/internal/membership/service"
	"github.com/GoSim-25-26J-441/taskboard-backend/internal/projects/domain"
	"github.com/GoSim-25-26J-441/taskboard-backend/internal/storage/memory"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*ProjectService, *membershipservice.MembershipService, *memory.Store) {
	store := memory.NewStore()
	members := membershipservice.NewMembershipService(store.Memberships(), store.Projects(), store.Users())
	return NewProjectService(store.Projects(), members, store), members, store
}

func addUser(t *testing.T, store *memory.Store, name, email string) *identitydomain.User {
	u := &identitydomain.User{ID: uuid.NewString(), Name: name, Email: email}
	require.NoError(t, store.Users().Create(context.Background(), u))
	return u
}

func TestCreate(t *testing.T) {
	svc, members, store := setup(t)
	ctx := context.Background()
	alice := addUser(t, store, "Alice", "a@x.com")

	p, err := svc.Create(ctx, alice.ID, domain.CreateProjectRequest{Name: "  Launch ", Description: "Q3"})
	require.NoError(t, err)
	assert.Equal(t, "Launch", p.Name)
	assert.Equal(t, alice.ID, p.CreatorID)
	assert.False(t, p.CreatedAt.IsZero())

	list, err := members.ListMembers(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, alice.ID, list[0].UserID)
	assert.Equal(t, membershipdomain.RoleOwner, list[0].Role)
}

func TestCreate_BlankName(t *testing.T) {
	svc, _, store := setup(t)
	alice := addUser(t, store, "Alice", "a@x.com")

	_, err := svc.Create(context.Background(), alice.ID, domain.CreateProjectRequest{Name: " \t "})
	assert.ErrorIs(t, err, domain.ErrNameRequired)
	assert.Equal(t, apperr.InvalidInput, apperr.KindOf(err))
}

type failingMembers struct{ err error }

func (f failingMembers) AddOwner(context.Context, string, string) error {
	return f.err
}

func (f failingMembers) RequireMember(context.Context, string, string) error {
	return nil
}

func TestCreate_RollsBackWhenOwnerInsertFails(t *testing.T) {
	store := memory.NewStore()
	boom := errors.New("boom")
	svc := NewProjectService(store.Projects(), failingMembers{err: boom}, store)
	alice := addUser(t, store, "Alice", "a@x.com")

	_, err := svc.Create(context.Background(), alice.ID, domain.CreateProjectRequest{Name: "Launch"})
	assert.ErrorIs(t, err, boom)

	list, err := store.Projects().ListForUser(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestListForUser(t *testing.T) {
	svc, members, store := setup(t)
	ctx := context.Background()
	alice := addUser(t, store, "Alice", "a@x.com")
	bob := addUser(t, store, "Bob", "b@x.com")

	launch, err := svc.Create(ctx, alice.ID, domain.CreateProjectRequest{Name: "Launch"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, bob.ID, domain.CreateProjectRequest{Name: "Private"})
	require.NoError(t, err)
	docs, err := svc.Create(ctx, alice.ID, domain.CreateProjectRequest{Name: "Docs"})
	require.NoError(t, err)

	list, err := svc.ListForUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, launch.ID, list[0].ID)
	assert.Equal(t, docs.ID, list[1].ID)

	_, err = members.Invite(ctx, launch.ID, alice.ID, "b@x.com")
	require.NoError(t, err)
	list, err = svc.ListForUser(ctx, bob.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestGet(t *testing.T) {
	svc, _, store := setup(t)
	ctx := context.Background()
	alice := addUser(t, store, "Alice", "a@x.com")
	carol := addUser(t, store, "Carol", "c@x.com")

	p, err := svc.Create(ctx, alice.ID, domain.CreateProjectRequest{Name: "Launch"})
	require.NoError(t, err)

	got, err := svc.Get(ctx, alice.ID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Launch", got.Name)

	_, err = svc.Get(ctx, carol.ID, p.ID)
	assert.Equal(t, apperr.Forbidden, apperr.KindOf(err))

	_, err = svc.Get(ctx, alice.ID, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
	_, err = svc.Get(ctx, alice.ID, "bogus")
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}
