package factory

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/sukryu/pAdmin/pkg/store/base"
	"github.com/sukryu/pAdmin/pkg/store/sqlite"
)

// Backend is an opened database that resource stores run on.
type Backend interface {
	Migrate(ctx context.Context, models ...any) error
	Repository() base.Repository
	Close() error
}

// Opener opens a Backend for a data source name.
type Opener func(dsn string, logger *zap.Logger) (Backend, error)

var openers = map[string]Opener{
	"sqlite": func(dsn string, logger *zap.Logger) (Backend, error) {
		m, err := sqlite.NewManager(dsn, logger)
		if err != nil {
			return nil, err
		}
		return m, nil
	},
}

// Open opens the backend registered for driver.
func Open(driver, dsn string, logger *zap.Logger) (Backend, error) {
	open, ok := openers[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported database driver %q (supported: %v)", driver, Drivers())
	}
	return open(dsn, logger)
}

func Drivers() []string {
	names := make([]string, 0, len(openers))
	for name := range openers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
