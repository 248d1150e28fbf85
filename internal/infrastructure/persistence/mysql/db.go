package mysql

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mdelvaux/library-api/internal/infrastructure/config"
)

// NewDB opens the MySQL connection, configures the pool and migrates the
// schema. SQL logging is on in debug mode only.
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Database.DSN()

	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("obtaining sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	log.Println("database connection established")

	// AutoMigrate only adds tables and columns. Production schema changes
	// belong in versioned migrations.
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	return db, nil
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&AuthorModel{},
		&CategoryModel{},
		&BookModel{},
		&MemberModel{},
		&LoanModel{},
		&StaffModel{},
	)
}

// AuthorModel is the GORM mapping of a catalog author. The domain entity
// stays free of GORM tags; the repository converts between the two.
type AuthorModel struct {
	ID          uint   `gorm:"primaryKey"`
	FirstName   string `gorm:"index:idx_author_name;size:100;not null"`
	LastName    string `gorm:"index:idx_author_name;size:100;not null"`
	Nationality string `gorm:"index;size:100"`
	BirthYear   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (AuthorModel) TableName() string {
	return "authors"
}

// CategoryModel is the GORM mapping of a category; the name is the
// business key.
type CategoryModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;size:100;not null"`
	Description string `gorm:"size:500"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (CategoryModel) TableName() string {
	return "categories"
}

// BookModel is the GORM mapping of a book. available_copies is the copy
// counter the loan engine decrements and increments; the guarded update in
// UpdateAvailableCopies keeps it inside [0, total_copies].
type BookModel struct {
	ID              uint   `gorm:"primaryKey"`
	ISBN            string `gorm:"uniqueIndex;size:20;not null"`
	Title           string `gorm:"index;size:200;not null"`
	PublicationYear int
	TotalCopies     int             `gorm:"not null"`
	AvailableCopies int             `gorm:"index;not null"`
	AuthorID        uint            `gorm:"index;not null"`
	Categories      []CategoryModel `gorm:"many2many:book_categories;joinForeignKey:BookID;joinReferences:CategoryID"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (BookModel) TableName() string {
	return "books"
}

// MemberModel is the GORM mapping of a member; email is unique and the
// active flag gates borrowing.
type MemberModel struct {
	ID             uint   `gorm:"primaryKey"`
	Email          string `gorm:"uniqueIndex;size:100;not null"`
	FirstName      string `gorm:"size:100;not null"`
	LastName       string `gorm:"size:100;not null"`
	MembershipDate time.Time
	Active         bool `gorm:"index;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (MemberModel) TableName() string {
	return "members"
}

// LoanModel is the GORM mapping of a loan. Status is a tinyint
// (1 ACTIVE, 2 RETURNED, 3 OVERDUE); the (member_id, status) index backs
// the quota count, the status index backs the overdue sweep.
type LoanModel struct {
	ID         uint      `gorm:"primaryKey"`
	LoanDate   time.Time `gorm:"not null"`
	DueDate    time.Time `gorm:"index;not null"`
	ReturnDate *time.Time
	Status     int  `gorm:"index;index:idx_loan_member_status,priority:2;type:tinyint;not null"`
	MemberID   uint `gorm:"index:idx_loan_member_status,priority:1;not null"`
	BookID     uint `gorm:"index;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (LoanModel) TableName() string {
	return "loans"
}

// StaffModel is the GORM mapping of a librarian account.
type StaffModel struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex;size:100;not null"`
	Password  string `gorm:"size:255;not null"`
	Name      string `gorm:"size:50;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (StaffModel) TableName() string {
	return "staff"
}
