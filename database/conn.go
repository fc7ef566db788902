/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
	"github.com/uptrace/bun/extra/bundebug"
)

const defaultConnectTimeout = 30 * time.Second

// Open builds a Bun database for cfg, applies the pool settings and checks the
// connection once. The returned handle is owned by the caller, who must Close it.
func Open(ctx context.Context, cfg *ConnectionConfig) (*bun.DB, error) {
	if cfg == nil {
		return nil, fmt.Errorf("database configuration cannot be empty")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := *cfg
	cfg = &c
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = defaultConnectTimeout
	}

	var (
		sqlDB *sql.DB
		db    *bun.DB
		err   error
	)
	switch cfg.Type {
	case TypeMySQL:
		sqlDB, db, err = openMySQL(cfg)
	case TypePostgres, TypePgx:
		sqlDB, db, err = openPostgreSQL(cfg)
	case TypeSQLite:
		sqlDB, db, err = openSQLite(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection: %w", err)
	}

	configureConnectionPool(sqlDB, cfg)
	addQueryHooks(db, cfg, GetLogger())

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database connection test failed: %w", err)
	}

	GetLogger().Info("Database connected successfully:", "type", cfg.Type, "host", cfg.Host, "dbname", cfg.DBName)
	return db, nil
}

func openMySQL(cfg *ConnectionConfig) (*sql.DB, *bun.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local&timeout=%s&readTimeout=%s&writeTimeout=%s",
		cfg.Username,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.ConnectTimeout,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
	)

	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, nil, err
	}
	return sqlDB, bun.NewDB(sqlDB, mysqldialect.New()), nil
}

// openPostgreSQL serves both "postgres" (lib/pq) and "pgx" (pgx stdlib); the
// two share a DSN format and the pg dialect.
func openPostgreSQL(cfg *ConnectionConfig) (*sql.DB, *bun.DB, error) {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	dsn := fmt.Sprintf("postgres://%s@%s:%d/%s?sslmode=%s&connect_timeout=%d",
		url.UserPassword(cfg.Username, cfg.Password).String(),
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		sslMode,
		int(cfg.ConnectTimeout.Seconds()),
	)

	driverName := "postgres"
	if cfg.Type == TypePgx {
		driverName = "pgx"
	}
	sqlDB, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, nil, err
	}
	return sqlDB, bun.NewDB(sqlDB, pgdialect.New()), nil
}

func openSQLite(cfg *ConnectionConfig) (*sql.DB, *bun.DB, error) {
	dsn := sqliteDSN(cfg)
	sqlDB, err := sql.Open(sqliteshim.ShimName, dsn)
	if err != nil {
		return nil, nil, err
	}
	if cfg.InMemory {
		// every pooled connection would otherwise see its own empty database
		cfg.MaxOpenConns = 1
		cfg.MaxIdleConns = 1
		cfg.ConnMaxLifetime = 0
		cfg.ConnMaxIdleTime = 0
	}
	return sqlDB, bun.NewDB(sqlDB, sqlitedialect.New()), nil
}

func sqliteDSN(cfg *ConnectionConfig) string {
	if cfg.InMemory {
		return fmt.Sprintf("file:%s?mode=memory&cache=shared", url.PathEscape(cfg.DBName))
	}
	return fmt.Sprintf("%s.db", cfg.DBName)
}

func configureConnectionPool(sqlDB *sql.DB, cfg *ConnectionConfig) {
	if sqlDB == nil {
		return
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
}

// addQueryHooks always installs bundebug, which stays silent unless BUNDEBUG
// is set in the environment.
func addQueryHooks(db *bun.DB, cfg *ConnectionConfig, logger Logger) {
	db.AddQueryHook(bundebug.NewQueryHook(bundebug.FromEnv("BUNDEBUG")))
	if cfg.EnableQueryLog {
		db.AddQueryHook(NewQueryHook(os.Stdout, true))
	}
	if cfg.SlowQueryTime > 0 {
		db.AddQueryHook(NewSlowQueryHook(cfg.SlowQueryTime, logger))
	}
}
