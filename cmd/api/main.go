package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	apploan "github.com/mdelvaux/library-api/internal/application/loan"
	appstaff "github.com/mdelvaux/library-api/internal/application/staff"
	"github.com/mdelvaux/library-api/internal/domain/author"
	"github.com/mdelvaux/library-api/internal/domain/book"
	"github.com/mdelvaux/library-api/internal/domain/category"
	"github.com/mdelvaux/library-api/internal/domain/member"
	"github.com/mdelvaux/library-api/internal/domain/staff"
	"github.com/mdelvaux/library-api/internal/infrastructure/config"
	"github.com/mdelvaux/library-api/internal/infrastructure/persistence/mysql"
	"github.com/mdelvaux/library-api/internal/infrastructure/persistence/redis"
	"github.com/mdelvaux/library-api/internal/interface/http/handler"
	"github.com/mdelvaux/library-api/internal/interface/http/middleware"
	"github.com/mdelvaux/library-api/pkg/jwt"
	"github.com/mdelvaux/library-api/pkg/response"
)

// @title                      Library API
// @version                    1.0
// @description                Library catalog and circulation service: authors, books, categories, members and loans.
// @BasePath                   /
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading configuration failed: %v", err)
	}
	log.Printf("configuration loaded (port %d, mode %s)", cfg.Server.Port, cfg.Server.Mode)

	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("initializing database failed: %v", err)
	}

	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatalf("initializing redis failed: %v", err)
	}

	// Dependency chain: Repository <- Service <- UseCase <- Handler.

	// Infrastructure
	authorRepo := mysql.NewAuthorRepository(db)
	categoryRepo := mysql.NewCategoryRepository(db)
	bookRepo := mysql.NewBookRepository(db)
	memberRepo := mysql.NewMemberRepository(db)
	loanRepo := mysql.NewLoanRepository(db)
	staffRepo := mysql.NewStaffRepository(db)
	txManager := mysql.NewTxManager(db)
	sessionStore := redis.NewSessionStore(redisClient)
	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)

	// Domain
	authorService := author.NewService(authorRepo)
	categoryService := category.NewService(categoryRepo)
	bookService := book.NewService(bookRepo, authorService, categoryService)
	memberService := member.NewService(memberRepo)
	staffService := staff.NewService(staffRepo)

	// Application
	createLoan := apploan.NewCreateLoanUseCase(loanRepo, bookRepo, memberRepo, txManager, cfg.Loan.MaxActiveLoans)
	returnBook := apploan.NewReturnBookUseCase(loanRepo, bookRepo, txManager)
	updateOverdue := apploan.NewUpdateOverdueUseCase(loanRepo)
	loanQueries := apploan.NewQueries(loanRepo, memberRepo, cfg.Loan.MaxActiveLoans)
	registerUseCase := appstaff.NewRegisterUseCase(staffService)
	loginUseCase := appstaff.NewLoginUseCase(staffService, jwtManager, sessionStore, cfg.JWT.RefreshTokenExpire)

	// Interface
	authorHandler := handler.NewAuthorHandler(authorService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	bookHandler := handler.NewBookHandler(bookService)
	memberHandler := handler.NewMemberHandler(memberService)
	loanHandler := handler.NewLoanHandler(createLoan, returnBook, updateOverdue, loanQueries)
	staffHandler := handler.NewStaffHandler(registerUseCase, loginUseCase)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessionStore)

	// Background overdue sweep.
	sweeper := apploan.NewSweeper(updateOverdue, cfg.Loan.SweepInterval)
	sweeper.Start(context.Background())

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	registerRoutes(r, authorHandler, bookHandler, categoryHandler, memberHandler, loanHandler, staffHandler, authMiddleware)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

// registerRoutes wires the HTTP surface. Reads are public; every
// mutation sits behind staff authentication.
func registerRoutes(
	r *gin.Engine,
	authorHandler *handler.AuthorHandler,
	bookHandler *handler.BookHandler,
	categoryHandler *handler.CategoryHandler,
	memberHandler *handler.MemberHandler,
	loanHandler *handler.LoanHandler,
	staffHandler *handler.StaffHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{"message": "pong", "status": "healthy"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth := authMiddleware.RequireAuth()

	api := r.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", staffHandler.Register)
			authRoutes.POST("/login", staffHandler.Login)
			authRoutes.POST("/refresh", staffHandler.Refresh)
			authRoutes.POST("/logout", auth, staffHandler.Logout)
		}

		authors := api.Group("/authors")
		{
			authors.GET("", authorHandler.List)
			authors.GET("/search/lastname", authorHandler.Search)
			authors.GET("/search/nationality", authorHandler.ByNationality)
			authors.GET("/:id", authorHandler.Get)
			authors.POST("", auth, authorHandler.Create)
			authors.PUT("/:id", auth, authorHandler.Update)
			authors.DELETE("/:id", auth, authorHandler.Delete)
		}

		books := api.Group("/books")
		{
			books.GET("", bookHandler.List)
			books.GET("/search/isbn", bookHandler.GetByISBN)
			books.GET("/search/title", bookHandler.Search)
			books.GET("/author/:authorId", bookHandler.ByAuthor)
			books.GET("/category/:categoryId", bookHandler.ByCategory)
			books.GET("/available", bookHandler.Available)
			books.GET("/available/category", bookHandler.AvailableByCategory)
			books.GET("/unavailable", bookHandler.Unavailable)
			books.GET("/stats/available-count", bookHandler.Stats)
			books.GET("/:id", bookHandler.Get)
			books.POST("", auth, bookHandler.Create)
			books.PUT("/:id", auth, bookHandler.Update)
			books.DELETE("/:id", auth, bookHandler.Delete)
			books.POST("/:id/category/:categoryId", auth, bookHandler.AddCategory)
			books.DELETE("/:id/category/:categoryId", auth, bookHandler.RemoveCategory)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", categoryHandler.List)
			categories.GET("/name/:name", categoryHandler.GetByName)
			categories.GET("/:id", categoryHandler.Get)
			categories.POST("", auth, categoryHandler.Create)
			categories.PUT("/:id", auth, categoryHandler.Update)
			categories.DELETE("/:id", auth, categoryHandler.Delete)
		}

		members := api.Group("/members")
		{
			members.GET("", memberHandler.List)
			members.GET("/search/email", memberHandler.GetByEmail)
			members.GET("/status/active", memberHandler.Active)
			members.GET("/stats/active-count", memberHandler.Stats)
			members.GET("/:id", memberHandler.Get)
			members.POST("", auth, memberHandler.Create)
			members.PUT("/:id", auth, memberHandler.Update)
			members.DELETE("/:id", auth, memberHandler.Delete)
			members.POST("/:id/suspend", auth, memberHandler.Suspend)
			members.POST("/:id/activate", auth, memberHandler.Activate)
		}

		loans := api.Group("/loans")
		{
			loans.GET("", loanHandler.List)
			loans.GET("/overdue", loanHandler.Overdue)
			loans.GET("/member/:memberId", loanHandler.ByMember)
			loans.GET("/member/:memberId/active", loanHandler.ActiveByMember)
			loans.GET("/book/:bookId", loanHandler.ByBook)
			loans.GET("/stats/member/:memberId/active-count", loanHandler.CountActiveByMember)
			loans.GET("/stats/member/:memberId/total-count", loanHandler.CountByMember)
			loans.GET("/quota/member/:memberId", loanHandler.Quota)
			loans.GET("/:id", loanHandler.Get)
			loans.POST("", auth, loanHandler.Create)
			loans.POST("/:id/return", auth, loanHandler.Return)
			loans.PUT("/overdue/update", auth, loanHandler.SweepOverdue)
		}
	}
}
