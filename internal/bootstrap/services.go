package bootstrap

import (
	"database/sql"

	"github.com/GoSim-25-26J-441/taskboard-backend/config"
	"github.com/GoSim-25-26J-441/taskboard-backend/internal/api/http/middleware"
	authservice "github.com/GoSim-25-26J-441/taskboard-backend/internal/auth/service"
	identityrepo "github.com/GoSim-25-26J-441/taskboard-backend/internal/identity/repository"
	identityservice "github.com/GoSim-25-26J-441/taskboard-backend/internal/identity/service"
	membershiprepo "github.com/GoSim-25-26J-441/taskboard-backend/internal/membership/repository"
	membershipservice "github.com/GoSim-25-26J-441/taskboard-backend/internal/membership/service"
	projectsrepo "github.com/GoSim-25-26J-441/taskboard-backend/internal/projects/repository"
	projectsservice "github.com/GoSim-25-26J-441/taskboard-backend/internal/projects/service"
	"github.com/GoSim-25-26J-441/taskboard-backend/internal/security"
	sessionrepo "github.com/GoSim-25-26J-441/taskboard-backend/internal/session/repository"
	sessionservice "github.com/GoSim-25-26J-441/taskboard-backend/internal/session/service"
	"github.com/GoSim-25-26J-441/taskboard-backend/internal/storage/memory"
	"github.com/GoSim-25-26J-441/taskboard-backend/internal/storage/postgres"
	tasksrepo "github.com/GoSim-25-26J-441/taskboard-backend/internal/tasks/repository"
	tasksservice "github.com/GoSim-25-26J-441/taskboard-backend/internal/tasks/service"
	"github.com/redis/go-redis/v9"
)

// Stores is one storage backend's set of repositories.
type Stores struct {
	Users       identityrepo.Repository
	Projects    projectsrepo.Repository
	Memberships membershiprepo.Repository
	Tasks       tasksrepo.Repository
	Tx          projectsservice.TxRunner
	Sessions    sessionrepo.Store
}

// NewStores uses postgres when db is set and process memory otherwise.
// Sessions go to redis when rdb is set.
func NewStores(db *sql.DB, rdb *redis.Client) Stores {
	var st Stores
	if db != nil {
		st = Stores{
			Users:       identityrepo.NewPostgresRepository(db),
			Projects:    projectsrepo.NewProjectRepository(db),
			Memberships: membershiprepo.NewPostgresRepository(db),
			Tasks:       tasksrepo.NewPostgresRepository(db),
			Tx:          postgres.NewTxManager(db),
		}
	} else {
		mem := memory.NewStore()
		st = Stores{
			Users:       mem.Users(),
			Projects:    mem.Projects(),
			Memberships: mem.Memberships(),
			Tasks:       mem.Tasks(),
			Tx:          mem,
		}
	}

	if rdb != nil {
		st.Sessions = sessionrepo.NewRedisStore(rdb)
	} else {
		st.Sessions = sessionrepo.NewMemoryStore()
	}
	return st
}

// Services holds the wired domain services.
type Services struct {
	Identity *identityservice.IdentityService
	Sessions *sessionservice.SessionService
	Auth     *authservice.AuthService
	Members  *membershipservice.MembershipService
	Projects *projectsservice.ProjectService
	Tasks    *tasksservice.TaskService
	// AuthLimiter throttles credential endpoints per client IP.
	AuthLimiter *middleware.RateLimiter
}

func NewServices(cfg *config.AuthConfig, st Stores) (*Services, error) {
	identity, err := identityservice.NewIdentityService(st.Users, security.NewHasher(cfg.BcryptCost))
	if err != nil {
		return nil, err
	}
	sessions := sessionservice.NewSessionService(st.Sessions, security.NewTokenProvider(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL))
	members := membershipservice.NewMembershipService(st.Memberships, st.Projects, identity)
	projects := projectsservice.NewProjectService(st.Projects, members, st.Tx)

	return &Services{
		Identity: identity,
		Sessions: sessions,
		Auth:     authservice.NewAuthService(identity, sessions),
		Members:  members,
		Projects: projects,
		Tasks:    tasksservice.NewTaskService(st.Tasks, projects, members),

		AuthLimiter: middleware.NewRateLimiter(cfg.RateLimit, cfg.RateBurst),
	}, nil
}
