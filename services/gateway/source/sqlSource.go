package source

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/kuza-analytics/metrics-gateway/services/gateway/common"
	"github.com/kuza-analytics/metrics-gateway/services/gateway/config"
	_ "github.com/mattn/go-sqlite3"
	logger "github.com/multiversx/mx-chain-logger-go"
)

const (
	// DriverMySQL is the production driver name
	DriverMySQL = "mysql"
	// DriverSQLite is used for local runs and tests
	DriverSQLite = "sqlite3"

	defaultConnectTimeout = 10 * time.Second
	dateLayoutLength      = len("2006-01-02")
)

var log = logger.GetOrCreate("source")

// sqlSource runs aggregate queries against a database/sql pool
type sqlSource struct {
	db     *sql.DB
	driver string
}

// ArgsSQLSource defines the arguments needed to open a sqlSource
type ArgsSQLSource struct {
	Config   config.SourceConfig
	Password string
}

// NewSQLSource opens (lazily) the configured relational store. Connectivity problems surface on the first query.
func NewSQLSource(args ArgsSQLSource) (*sqlSource, error) {
	dsn, err := buildDSN(args.Config, args.Password)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(args.Config.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open source database: %w", err)
	}

	maxOpenConns := args.Config.MaxOpenConns
	if args.Config.Driver == DriverSQLite {
		// every connection to :memory: is a distinct database
		maxOpenConns = 1
	}
	if maxOpenConns > 0 {
		db.SetMaxOpenConns(maxOpenConns)
	}

	log.Debug("relational source configured", "driver", args.Config.Driver, "host", args.Config.Host, "database", args.Config.Database)

	return &sqlSource{
		db:     db,
		driver: args.Config.Driver,
	}, nil
}

func buildDSN(cfg config.SourceConfig, password string) (string, error) {
	switch cfg.Driver {
	case DriverMySQL:
		timeout := defaultConnectTimeout
		if cfg.ConnectTimeoutInSeconds > 0 {
			timeout = time.Duration(cfg.ConnectTimeoutInSeconds) * time.Second
		}

		mysqlCfg := mysql.NewConfig()
		mysqlCfg.User = cfg.User
		mysqlCfg.Passwd = password
		mysqlCfg.Net = "tcp"
		mysqlCfg.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
		mysqlCfg.DBName = cfg.Database
		mysqlCfg.Timeout = timeout
		mysqlCfg.ReadTimeout = timeout

		return mysqlCfg.FormatDSN(), nil
	case DriverSQLite:
		if len(cfg.Database) == 0 {
			return "", errors.New("empty sqlite database path")
		}

		return cfg.Database, nil
	default:
		return "", fmt.Errorf("%w: %s", errUnsupportedDriver, cfg.Driver)
	}
}

// Count runs a query returning a single integer
func (s *sqlSource) Count(ctx context.Context, query string, args ...any) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, common.NewDataAccessError(err)
	}

	return count, nil
}

// Trend runs a query returning (date, count) rows, keeping the row order of the query
func (s *sqlSource) Trend(ctx context.Context, query string, args ...any) ([]common.TrendPoint, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, common.NewDataAccessError(err)
	}
	defer func() {
		_ = rows.Close()
	}()

	points := make([]common.TrendPoint, 0)
	for rows.Next() {
		var date string
		var count int64

		err = rows.Scan(&date, &count)
		if err != nil {
			return nil, common.NewDataAccessError(err)
		}

		points = append(points, common.TrendPoint{
			Date:    normalizeDate(date),
			Signups: count,
		})
	}

	return points, common.NewDataAccessError(rows.Err())
}

func normalizeDate(date string) string {
	if len(date) > dateLayoutLength {
		return date[:dateLayoutLength]
	}

	return date
}

// Close closes the underlying pool
func (s *sqlSource) Close() error {
	return s.db.Close()
}

// IsInterfaceNil returns true if the value under the interface is nil
func (s *sqlSource) IsInterfaceNil() bool {
	return s == nil
}
