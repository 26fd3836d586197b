package wire

import (
	"errors"
	"fmt"
	"log"
	"time"

	"campusconnect/internal/aggregate"
	"campusconnect/internal/authz"
	"campusconnect/internal/board"
	"campusconnect/internal/common"
	"campusconnect/internal/config"
	"campusconnect/internal/dbmysql"
	"campusconnect/internal/feed"
	"campusconnect/internal/grpcops"
	"campusconnect/internal/user"

	"github.com/google/wire"
	"gorm.io/gorm"
)

type Application struct {
	Config   *config.Config
	DB       *gorm.DB
	Counters *dbmysql.Counters
	Tokens   *common.TokenManager
	Auth     *common.Authenticator
	Users    *user.Handler
	Feed     *feed.FeedHandlers
	Board    *board.BoardHandlers
	Ops      *grpcops.Server
}

// storeSet builds everything below the HTTP layer from a *gorm.DB.
var storeSet = wire.NewSet(
	ProvideCounters,
	aggregate.NewReader,
	user.NewUserRepository,
	user.NewProfileRepository,
	ProvideGuard,
	feed.NewFeedRepository,
	board.NewBoardRepository,
	wire.Bind(new(feed.PostRepository), new(*feed.FeedRepository)),
	wire.Bind(new(feed.FeedReader), new(*aggregate.Reader)),
	wire.Bind(new(board.BoardReader), new(*aggregate.Reader)),
)

var appSet = wire.NewSet(
	storeSet,
	user.NewUserService,
	feed.NewFeedService,
	wire.Bind(new(feed.FeedUsecase), new(*feed.FeedService)),
	board.NewBoardService,
	user.NewHandler,
	feed.NewFeedHandlers,
	board.NewBoardHandlers,
	ProvideTokenManager,
	ProvideAuthenticator,
	ProvideOps,
	wire.Struct(new(Application), "*"),
)

func ProvideConfig() *config.Config {
	return config.LoadConfig()
}

func ProvideDatabase(cfg *config.Config) (*gorm.DB, func(), error) {
	db, err := dbmysql.NewDatabase(cfg)
	if err != nil {
		return nil, nil, err
	}
	if err := dbmysql.Migrate(db); err != nil {
		return nil, nil, err
	}
	log.Println("✅ Database migration completed")

	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}
	return db, cleanup, nil
}

func ProvideCounters(cfg *config.Config) *dbmysql.Counters {
	return dbmysql.NewCounters(cfg.Feed.StrictCounters)
}

func ProvideGuard(profiles user.ProfileRepository) *authz.Guard {
	return authz.NewGuard(profiles)
}

func ProvideTokenManager(cfg *config.Config) (*common.TokenManager, error) {
	if cfg.Auth.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}
	if cfg.Auth.TokenTTL <= 0 {
		return nil, fmt.Errorf("invalid JWT_TTL_HOURS %d", cfg.Auth.TokenTTL)
	}
	return common.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, time.Duration(cfg.Auth.TokenTTL)*time.Hour), nil
}

// ProvideAuthenticator syncs every authenticated caller into users.
func ProvideAuthenticator(tokens *common.TokenManager, users user.UserService) *common.Authenticator {
	return common.NewAuthenticator(tokens, users)
}

func ProvideOps(db *gorm.DB) *grpcops.Server {
	return grpcops.NewServer(func() error { return dbmysql.Ping(db) })
}
