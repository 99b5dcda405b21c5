package sqlite

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sukryu/pAdmin/pkg/errors"
	"github.com/sukryu/pAdmin/pkg/store/base"
)

// Manager owns the database handle shared by every resource store.
type Manager struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewManager(dsn string, log *zap.Logger) (*Manager, error) {
	if log == nil {
		log = zap.NewNop()
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.ErrDatabaseConnection.WithReason(err.Error())
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.ErrDatabaseConnection.WithReason(err.Error())
	}
	// every connection to :memory: opens its own empty database
	if strings.Contains(dsn, ":memory:") {
		sqlDB.SetMaxOpenConns(1)
	}

	log.Info("database opened", zap.String("dsn", dsn))
	return &Manager{db: db, logger: log}, nil
}

// Migrate creates or alters the tables of the given models.
func (m *Manager) Migrate(ctx context.Context, models ...any) error {
	if len(models) == 0 {
		return nil
	}
	if err := m.db.WithContext(ctx).AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to migrate models: %w", err)
	}
	m.logger.Info("models migrated", zap.Int("count", len(models)))
	return nil
}

func (m *Manager) DB() *gorm.DB {
	return m.db
}

func (m *Manager) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Repository returns a ResourceStore on the managed database.
func (m *Manager) Repository() base.Repository {
	return NewResourceStore(m.db)
}
