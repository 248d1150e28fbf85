//go:build wireinject
// +build wireinject

// Wire provider wiring. Run `wire gen ./cmd/api` to regenerate
// wire_gen.go; main.go keeps a manual assembly of the same graph.

package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	goredis "github.com/redis/go-redis/v9"

	apploan "github.com/mdelvaux/library-api/internal/application/loan"
	appstaff "github.com/mdelvaux/library-api/internal/application/staff"
	"github.com/mdelvaux/library-api/internal/domain/author"
	"github.com/mdelvaux/library-api/internal/domain/book"
	"github.com/mdelvaux/library-api/internal/domain/category"
	domainloan "github.com/mdelvaux/library-api/internal/domain/loan"
	"github.com/mdelvaux/library-api/internal/domain/member"
	"github.com/mdelvaux/library-api/internal/domain/staff"
	"github.com/mdelvaux/library-api/internal/infrastructure/config"
	"github.com/mdelvaux/library-api/internal/infrastructure/persistence/mysql"
	"github.com/mdelvaux/library-api/internal/infrastructure/persistence/redis"
	"github.com/mdelvaux/library-api/internal/interface/http/handler"
	"github.com/mdelvaux/library-api/internal/interface/http/middleware"
	"github.com/mdelvaux/library-api/pkg/jwt"
)

var infrastructureSet = wire.NewSet(
	config.Load,
	mysql.NewDB,
	redis.NewClient,
)

var repositorySet = wire.NewSet(
	mysql.NewAuthorRepository,
	mysql.NewCategoryRepository,
	mysql.NewBookRepository,
	mysql.NewMemberRepository,
	mysql.NewLoanRepository,
	mysql.NewStaffRepository,
	mysql.NewTxManager,
	wire.Bind(new(apploan.Transactor), new(*mysql.TxManager)),
)

var domainSet = wire.NewSet(
	author.NewService,
	category.NewService,
	book.NewService,
	member.NewService,
	staff.NewService,
)

var applicationSet = wire.NewSet(
	provideCreateLoanUseCase,
	apploan.NewReturnBookUseCase,
	apploan.NewUpdateOverdueUseCase,
	provideLoanQueries,
	provideSweeper,
	appstaff.NewRegisterUseCase,
	provideLoginUseCase,
)

var middlewareSet = wire.NewSet(
	provideJWTManager,
	provideSessionStore,
	middleware.NewAuthMiddleware,
)

var handlerSet = wire.NewSet(
	handler.NewAuthorHandler,
	handler.NewCategoryHandler,
	handler.NewBookHandler,
	handler.NewMemberHandler,
	handler.NewLoanHandler,
	handler.NewStaffHandler,
)

// The loan policy values live inside the config, so the constructors that
// consume them get dedicated providers.

func provideCreateLoanUseCase(
	loanRepo domainloan.Repository,
	bookRepo book.Repository,
	memberRepo member.Repository,
	tx apploan.Transactor,
	cfg *config.Config,
) *apploan.CreateLoanUseCase {
	return apploan.NewCreateLoanUseCase(loanRepo, bookRepo, memberRepo, tx, cfg.Loan.MaxActiveLoans)
}

func provideLoanQueries(loanRepo domainloan.Repository, memberRepo member.Repository, cfg *config.Config) *apploan.Queries {
	return apploan.NewQueries(loanRepo, memberRepo, cfg.Loan.MaxActiveLoans)
}

func provideSweeper(uc *apploan.UpdateOverdueUseCase, cfg *config.Config) *apploan.Sweeper {
	return apploan.NewSweeper(uc, cfg.Loan.SweepInterval)
}

func provideLoginUseCase(
	staffSvc staff.Service,
	jwtManager *jwt.Manager,
	sessions *redis.SessionStore,
	cfg *config.Config,
) *appstaff.LoginUseCase {
	return appstaff.NewLoginUseCase(staffSvc, jwtManager, sessions, cfg.JWT.RefreshTokenExpire)
}

func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpire, cfg.JWT.RefreshTokenExpire)
}

func provideSessionStore(client *goredis.Client) *redis.SessionStore {
	return redis.NewSessionStore(client)
}

func provideGinEngine(
	cfg *config.Config,
	authorHandler *handler.AuthorHandler,
	bookHandler *handler.BookHandler,
	categoryHandler *handler.CategoryHandler,
	memberHandler *handler.MemberHandler,
	loanHandler *handler.LoanHandler,
	staffHandler *handler.StaffHandler,
	authMiddleware *middleware.AuthMiddleware,
	sweeper *apploan.Sweeper,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	registerRoutes(r, authorHandler, bookHandler, categoryHandler, memberHandler, loanHandler, staffHandler, authMiddleware)
	sweeper.Start(context.Background())

	return r
}

// InitializeApp assembles the full application and returns the configured
// engine.
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		middlewareSet,
		handlerSet,
		provideGinEngine,
	)
	return nil, nil
}
