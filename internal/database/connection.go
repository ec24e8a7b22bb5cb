// connection.go
//
// Content and data service for the ExpoStands exhibition stand marketing site
// Copyright (c) 2026 ExpoStands OU <dev@expostands.com> (https://www.expostands.com)
//
// This file is part of expostands-api.
// expostands-api is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// expostands-api is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with expostands-api.
// If not, see <https://www.gnu.org/licenses/>.

package database

import (
	"fmt"
	"log"

	"github.com/expostands/expostands-api/internal/config"
	"github.com/expostands/expostands-api/internal/models"
	glebsqlite "github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectPublic establishes the public-tier database connection used by
// read paths (anon key equivalent).
func ConnectPublic(cfg *config.Config) (*gorm.DB, error) {
	return connect(cfg, cfg.DBPublicUser, cfg.DBPublicPassword, cfg.DBPublicConnectionLimit, "public")
}

// ConnectService establishes the service-tier database connection used by
// admin mutations and the webhook consumer (service-role key equivalent).
func ConnectService(cfg *config.Config) (*gorm.DB, error) {
	return connect(cfg, cfg.DBServiceUser, cfg.DBServicePassword, cfg.DBServiceConnectionLimit, "service")
}

func connect(cfg *config.Config, user, password string, connLimit int, tier string) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.DBType {
	case "mysql", "mariadb":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			user,
			password,
			cfg.DBHost,
			cfg.DBPort,
			cfg.DBDatabase,
		)
		dialector = mysql.Open(dsn)

	case "postgres", "postgresql":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			cfg.DBHost,
			user,
			password,
			cfg.DBDatabase,
			cfg.DBPort,
		)
		dialector = postgres.Open(dsn)

	case "sqlite":
		// For SQLite, DBDatabase is the file path; both tiers share the file.
		// Pure-Go driver so the server binary builds without cgo.
		dialector = glebsqlite.Open(cfg.DBDatabase)

	case "sqlserver", "mssql":
		dsn := fmt.Sprintf("sqlserver://%s:%s@%s:%s?database=%s",
			user,
			password,
			cfg.DBHost,
			cfg.DBPort,
			cfg.DBDatabase,
		)
		dialector = sqlserver.Open(dsn)

	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.DBType)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s-tier database: %w", tier, err)
	}

	// Get underlying SQL DB for connection pool configuration
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying SQL DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxOpenConns(connLimit)
	sqlDB.SetMaxIdleConns(connLimit / 2)

	log.Printf("Connected to %s database (%s tier): %s", cfg.DBType, tier, cfg.DBDatabase)

	return db, nil
}

// OpenDSN opens a connection from a raw DSN, used by the one-off migration
// CLI where the two endpoints are not part of the service configuration.
func OpenDSN(dbType, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch dbType {
	case "mysql", "mariadb":
		dialector = mysql.Open(dsn)
	case "postgres", "postgresql":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = glebsqlite.Open(dsn)
	case "sqlserver", "mssql":
		dialector = sqlserver.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", dbType)
	}

	return gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
}

// AutoMigrate runs automatic migrations for all models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(models.AllModels()...)
}

// Close closes the database connection
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
