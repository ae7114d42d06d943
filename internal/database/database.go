package database

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/smartpark-payroll-api/internal/config"
	"github.com/smartpark-payroll-api/internal/domain"
	"github.com/smartpark-payroll-api/migrations"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// Поддерживаемые драйверы
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const connectAttempts = 30

// Open подключается к БД, повторяя попытки, пока сервер не станет доступен
func Open(cfg config.DatabaseConfig, logger *slog.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	attempts := connectAttempts

	switch cfg.Driver {
	case DriverPostgres:
		dialector = postgres.Open(cfg.DSN())
	case DriverSQLite:
		dialector = sqlite.Open(sqliteDSN(cfg.Path))
		attempts = 1
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	var db *gorm.DB
	var err error

	for i := 0; i < attempts; i++ {
		db, err = gorm.Open(dialector, &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		})
		if err == nil {
			sqlDB, dbErr := db.DB()
			if dbErr != nil {
				return nil, dbErr
			}
			if err = sqlDB.Ping(); err == nil {
				configurePool(cfg, db)
				return db, nil
			}
		}
		if logger != nil {
			logger.Warn("database is not ready", slog.Int("attempt", i+1), slog.Any("error", err))
		}
		if i < attempts-1 {
			time.Sleep(time.Second)
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, err)
}

func configurePool(cfg config.DatabaseConfig, db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
}

// sqliteDSN включает внешние ключи: без них не работает каскадное удаление зарплат
func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on&_busy_timeout=5000"
}

// Migrate приводит схему к актуальному виду.
// PostgreSQL мигрирует через goose, SQLite - через AutoMigrate.
func Migrate(db *gorm.DB) error {
	switch db.Dialector.Name() {
	case DriverPostgres:
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("failed to get sql.DB: %w", err)
		}

		goose.SetBaseFS(migrations.FS)
		if err := goose.SetDialect("postgres"); err != nil {
			return fmt.Errorf("failed to set dialect: %w", err)
		}
		if err := goose.Up(sqlDB, "."); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		return nil
	case DriverSQLite:
		if err := db.AutoMigrate(&domain.User{}, &domain.Department{}, &domain.Employee{}, &domain.Salary{}); err != nil {
			return fmt.Errorf("failed to auto-migrate: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported database dialect %q", db.Dialector.Name())
	}
}

// DefaultAdminUsername - учётная запись, создаваемая при первом запуске
const DefaultAdminUsername = "admin"

// defaultAdminPassword хранится открытым текстом и будет захеширован при первом входе
const defaultAdminPassword = "admin123"

// Seed добавляет справочные подразделения и администратора, если их ещё нет
func Seed(ctx context.Context, db *gorm.DB) error {
	departments := []domain.Department{
		newDepartment("CW", "Carwash", 300000, 20000),
		newDepartment("ST", "Stock", 200000, 5000),
		newDepartment("MC", "Mechanic", 450000, 40000),
		newDepartment("ADMS", "Administration Staff", 600000, 70000),
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&departments).Error; err != nil {
			return fmt.Errorf("failed to seed departments: %w", err)
		}

		admin := domain.User{Username: DefaultAdminUsername, Password: defaultAdminPassword}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&admin).Error; err != nil {
			return fmt.Errorf("failed to seed admin user: %w", err)
		}
		return nil
	})
}

func newDepartment(code, name string, gross, deduction float64) domain.Department {
	return domain.Department{
		Code:           code,
		Name:           &name,
		GrossSalary:    &gross,
		TotalDeduction: &deduction,
	}
}
