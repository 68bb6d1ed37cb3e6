package service

import (
	"context"
	"sync"
	"testing"

	"github.com/GoSim-25-26J-441/taskboard-backend/internal/apperr"
	identitydomain "github.com/GoSim-25-26J-441/taskboard-backend/internal/identity/domain"
	membershipservice "github.com/GoSim-25-26J-441/taskboard-backend/internal/membership/service"
	projectsdomain "github.com/GoSim-25-26J-441/taskboard-backend/internal/projects/domain"
	projectsservice "github.com/GoSim-25-26J-441/taskboard-backend/internal/projects/service"
	"github.com/GoSim-25-26J-441/taskboard-backend/internal/storage/memory"
	"github.com/GoSim-25-26J-441/taskboard-backend/internal/tasks/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type board struct {
	store    *memory.Store
	members  *membershipservice.MembershipService
	projects *projectsservice.ProjectService
	tasks    *TaskService

	alice, bob, carol *identitydomain.User
	launch            *projectsdomain.Project
}

// newBoard builds Alice's "Launch" project with Bob and Carol registered but not invited.
func newBoard(t *testing.T) *board {
	ctx := context.Background()
	store := memory.NewStore()
	b := &board{store: store}
	b.members = membershipservice.NewMembershipService(store.Memberships(), store.Projects(), store.Users())
	b.projects = projectsservice.NewProjectService(store.Projects(), b.members, store)
	b.tasks = NewTaskService(store.Tasks(), store.Projects(), b.members)

	mkUser := func(name, email string) *identitydomain.User {
		u := &identitydomain.User{ID: uuid.NewString(), Name: name, Email: email}
		require.NoError(t, store.Users().Create(ctx, u))
		return u
	}
	b.alice = mkUser("Alice", "a@x.com")
	b.bob = mkUser("Bob", "b@x.com")
	b.carol = mkUser("Carol", "c@x.com")

	var err error
	b.launch, err = b.projects.Create(ctx, b.alice.ID, projectsdomain.CreateProjectRequest{Name: "Launch"})
	require.NoError(t, err)
	return b
}

func (b *board) create(t *testing.T, title string) *domain.Task {
	task, err := b.tasks.Create(context.Background(), b.alice.ID, domain.CreateTaskRequest{
		ProjectID: b.launch.ID,
		Title:     title,
		Priority:  domain.PriorityMedium,
	})
	require.NoError(t, err)
	return task
}

func strptr(s string) *string { return &s }

func TestCreate_AppearsOnceWithStatusTodo(t *testing.T) {
	b := newBoard(t)
	ctx := context.Background()

	task := b.create(t, "t")
	assert.Equal(t, domain.StatusTodo, task.Status)

	list, err := b.tasks.List(ctx, b.alice.ID, b.launch.ID)
	require.NoError(t, err)
	count := 0
	for _, got := range list {
		if got.Title == "t" {
			count++
			assert.Equal(t, domain.StatusTodo, got.Status)
		}
	}
	assert.Equal(t, 1, count)
}

func TestCreate_KeepsTitleAndDescriptionVerbatim(t *testing.T) {
	b := newBoard(t)
	ctx := context.Background()

	created, err := b.tasks.Create(ctx, b.alice.ID, domain.CreateTaskRequest{
		ProjectID: b.launch.ID, Title: "  t ", Description: " notes\n", Priority: domain.PriorityLow,
	})
	require.NoError(t, err)
	assert.Equal(t, "  t ", created.Title)

	got, err := b.tasks.Get(ctx, b.alice.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "  t ", got.Title)
	assert.Equal(t, " notes\n", got.Description)
}

func TestCreate_CheckOrder(t *testing.T) {
	b := newBoard(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		actor string
		req   domain.CreateTaskRequest
		want  error
	}{
		{"unknown project", b.alice.ID, domain.CreateTaskRequest{ProjectID: uuid.NewString(), Title: "", Priority: "BAD"}, projectsdomain.ErrProjectNotFound},
		{"non-member before validation", b.carol.ID, domain.CreateTaskRequest{ProjectID: b.launch.ID, Title: "", Priority: "BAD"}, nil},
		{"blank title", b.alice.ID, domain.CreateTaskRequest{ProjectID: b.launch.ID, Title: "  ", Priority: "BAD"}, domain.ErrTitleRequired},
		{"bad priority", b.alice.ID, domain.CreateTaskRequest{ProjectID: b.launch.ID, Title: "t", Priority: "URGENT", AssigneeID: strptr(b.carol.ID)}, domain.ErrInvalidPriority},
		{"non-member assignee", b.alice.ID, domain.CreateTaskRequest{ProjectID: b.launch.ID, Title: "t", Priority: domain.PriorityLow, AssigneeID: strptr(b.carol.ID)}, domain.ErrInvalidAssignee},
		{"unknown assignee", b.alice.ID, domain.CreateTaskRequest{ProjectID: b.launch.ID, Title: "t", Priority: domain.PriorityLow, AssigneeID: strptr(uuid.NewString())}, domain.ErrInvalidAssignee},
		{"malformed assignee", b.alice.ID, domain.CreateTaskRequest{ProjectID: b.launch.ID, Title: "t", Priority: domain.PriorityLow, AssigneeID: strptr("bob")}, domain.ErrInvalidAssignee},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := b.tasks.Create(ctx, tc.actor, tc.req)
			require.Error(t, err)
			if tc.want == nil {
				assert.Equal(t, apperr.Forbidden, apperr.KindOf(err))
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}

	list, err := b.tasks.List(ctx, b.alice.ID, b.launch.ID)
	require.NoError(t, err)
	assert.Empty(t, list, "failed creates leave no tasks behind")
}

func TestCreate_BlankAssigneeMeansUnassigned(t *testing.T) {
	b := newBoard(t)

	task, err := b.tasks.Create(context.Background(), b.alice.ID, domain.CreateTaskRequest{
		ProjectID: b.launch.ID, Title: "t", Priority: domain.PriorityLow, AssigneeID: strptr(" "),
	})
	require.NoError(t, err)
	assert.Nil(t, task.Assignee)
}

func TestUpdateStatus_EveryTransition(t *testing.T) {
	b := newBoard(t)
	ctx := context.Background()
	_, err := b.members.Invite(ctx, b.launch.ID, b.alice.ID, "b@x.com")
	require.NoError(t, err)

	task := b.create(t, "t")
	for _, from := range domain.Statuses {
		for _, to := range domain.Statuses {
			_, err := b.tasks.UpdateStatus(ctx, b.alice.ID, task.ID, from)
			require.NoError(t, err)

			got, err := b.tasks.UpdateStatus(ctx, b.bob.ID, task.ID, to)
			require.NoError(t, err, "%s -> %s", from, to)
			assert.Equal(t, to, got.Status)
		}
	}
}

func TestUpdateStatus_Failures(t *testing.T) {
	b := newBoard(t)
	ctx := context.Background()
	task := b.create(t, "t")

	_, err := b.tasks.UpdateStatus(ctx, b.alice.ID, uuid.NewString(), domain.StatusDone)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	_, err = b.tasks.UpdateStatus(ctx, b.carol.ID, task.ID, "BOGUS")
	assert.Equal(t, apperr.Forbidden, apperr.KindOf(err), "membership is checked before the status value")

	_, err = b.tasks.UpdateStatus(ctx, b.alice.ID, task.ID, "BOGUS")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	got, err := b.tasks.Get(ctx, b.alice.ID, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusTodo, got.Status)
}

func TestUpdateAssignee(t *testing.T) {
	b := newBoard(t)
	ctx := context.Background()
	task := b.create(t, "t")

	_, err := b.tasks.UpdateAssignee(ctx, b.alice.ID, task.ID, &b.carol.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidAssignee, "registered but not a member")
	assert.Equal(t, apperr.InvalidAssignee, apperr.KindOf(err))

	_, err = b.tasks.UpdateAssignee(ctx, b.alice.ID, task.ID, strptr(uuid.NewString()))
	assert.ErrorIs(t, err, domain.ErrInvalidAssignee, "no such user")

	_, err = b.tasks.UpdateAssignee(ctx, b.carol.ID, task.ID, nil)
	assert.Equal(t, apperr.Forbidden, apperr.KindOf(err))

	got, err := b.tasks.UpdateAssignee(ctx, b.alice.ID, task.ID, &b.alice.ID)
	require.NoError(t, err)
	assert.Equal(t, &domain.Assignee{ID: b.alice.ID, Name: "Alice"}, got.Assignee)

	got, err = b.tasks.UpdateAssignee(ctx, b.alice.ID, task.ID, nil)
	require.NoError(t, err)
	assert.Nil(t, got.Assignee)
}

func TestDelete_Twice(t *testing.T) {
	b := newBoard(t)
	ctx := context.Background()
	task := b.create(t, "t")

	assert.Equal(t, apperr.Forbidden, apperr.KindOf(b.tasks.Delete(ctx, b.carol.ID, task.ID)))

	require.NoError(t, b.tasks.Delete(ctx, b.alice.ID, task.ID))
	assert.ErrorIs(t, b.tasks.Delete(ctx, b.alice.ID, task.ID), domain.ErrTaskNotFound)
}

func TestNonMemberIsAlwaysForbidden(t *testing.T) {
	b := newBoard(t)
	ctx := context.Background()
	task := b.create(t, "t")

	list, err := b.tasks.List(ctx, b.carol.ID, b.launch.ID)
	assert.Nil(t, list)
	assert.Equal(t, apperr.Forbidden, apperr.KindOf(err))

	_, err = b.tasks.Create(ctx, b.carol.ID, domain.CreateTaskRequest{ProjectID: b.launch.ID, Title: "x", Priority: domain.PriorityLow})
	assert.Equal(t, apperr.Forbidden, apperr.KindOf(err))

	_, err = b.tasks.UpdateStatus(ctx, b.carol.ID, task.ID, domain.StatusDone)
	assert.Equal(t, apperr.Forbidden, apperr.KindOf(err))

	got, err := b.tasks.Get(ctx, b.carol.ID, task.ID)
	assert.Nil(t, got)
	assert.Equal(t, apperr.Forbidden, apperr.KindOf(err))

	assert.Equal(t, apperr.Forbidden, apperr.KindOf(b.tasks.Delete(ctx, b.carol.ID, task.ID)))
}

func TestConcurrentStatusAndAssigneeUpdates(t *testing.T) {
	b := newBoard(t)
	ctx := context.Background()
	_, err := b.members.Invite(ctx, b.launch.ID, b.alice.ID, "b@x.com")
	require.NoError(t, err)

	task := b.create(t, "t")
	other := b.create(t, "other")

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(3)
		go func(i int) {
			defer wg.Done()
			_, err := b.tasks.UpdateStatus(ctx, b.bob.ID, task.ID, domain.Statuses[i%3])
			assert.NoError(t, err)
		}(i)
		go func(i int) {
			defer wg.Done()
			assignee := &b.bob.ID
			if i%2 == 0 {
				assignee = nil
			}
			_, err := b.tasks.UpdateAssignee(ctx, b.alice.ID, task.ID, assignee)
			assert.NoError(t, err)
		}(i)
		go func() {
			defer wg.Done()
			_, err := b.tasks.UpdateStatus(ctx, b.alice.ID, other.ID, domain.StatusDone)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := b.tasks.Get(ctx, b.alice.ID, task.ID)
	require.NoError(t, err)
	assert.True(t, got.Status.Valid())
	if got.Assignee != nil {
		assert.Equal(t, b.bob.ID, got.Assignee.ID)
	}
}

func TestScenario_AliceBobCarol(t *testing.T) {
	b := newBoard(t)
	ctx := context.Background()

	projects, err := b.projects.ListForUser(ctx, b.alice.ID)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Launch", projects[0].Name)

	task, err := b.tasks.Create(ctx, b.alice.ID, domain.CreateTaskRequest{
		ProjectID: b.launch.ID,
		Title:     "Write copy",
		Priority:  domain.PriorityHigh,
	})
	require.NoError(t, err)

	list, err := b.tasks.List(ctx, b.alice.ID, b.launch.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, domain.StatusTodo, list[0].Status)
	assert.Equal(t, domain.PriorityHigh, list[0].Priority)
	assert.Nil(t, list[0].Assignee)

	_, err = b.members.Invite(ctx, b.launch.ID, b.alice.ID, "b@x.com")
	require.NoError(t, err)

	assigned, err := b.tasks.UpdateAssignee(ctx, b.alice.ID, task.ID, &b.bob.ID)
	require.NoError(t, err)
	require.NotNil(t, assigned.Assignee)
	assert.Equal(t, b.bob.ID, assigned.Assignee.ID)

	done, err := b.tasks.UpdateStatus(ctx, b.bob.ID, task.ID, domain.StatusDone)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDone, done.Status)

	_, err = b.tasks.List(ctx, b.carol.ID, b.launch.ID)
	assert.Equal(t, apperr.Forbidden, apperr.KindOf(err))
}
