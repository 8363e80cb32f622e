package database

import (
	"errors"
	"fmt"

	embeddedpostgres "github.com/fergusstrange/embedded-postgres"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/lib/pq"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/hatchswap/hatchswapd/database/models"
)

// EmbeddedHost selects an embedded postgres instance instead of an external
// server. Meant for development and tests.
const EmbeddedHost = "embedded"

type Database struct {
	host     string
	username string
	password string
	database string
	port     uint32

	embedded *embeddedpostgres.EmbeddedPostgres
	orm      *gorm.DB
}

// NewDatabase connects to a postgres server, or boots an embedded one when
// host is EmbeddedHost. The returned close function stops the embedded
// instance as well unless keepAlive is set.
func NewDatabase(username, password, database string, port uint32, dataPath, host string, keepAlive bool) (*Database, func() error, error) {
	db := &Database{
		host:     host,
		username: username,
		password: password,
		database: database,
		port:     port,
	}

	if host == EmbeddedHost {
		db.host = "localhost"
		db.embedded = embeddedpostgres.NewDatabase(
			embeddedpostgres.DefaultConfig().
				Username(username).
				Password(password).
				Database(database).
				Port(port).
				DataPath(dataPath),
		)
		if err := db.embedded.Start(); err != nil {
			return nil, nil, fmt.Errorf("failed to start embedded postgres: %w", err)
		}

		log.Info("Embedded postgres started")
	}

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s database=%s sslmode=disable",
		db.host, db.port, db.username, db.password, db.database,
	)
	orm, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		if db.embedded != nil {
			_ = db.embedded.Stop()
		}

		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	db.orm = orm

	closeDb := func() error {
		if db.embedded != nil && !keepAlive {
			return db.embedded.Stop()
		}

		return nil
	}

	return db, closeDb, nil
}

func (d *Database) ORM() *gorm.DB {
	return d.orm
}

// MigrateDatabase creates the enum types and migrates all models.
func (d *Database) MigrateDatabase() error {
	for _, stmt := range []string{
		"CREATE TYPE order_side_enum AS ENUM ('buy', 'sell')",
		`CREATE TYPE swap_status_enum AS ENUM (
			'transaction.mempool', 'transaction.confirmed',
			'invoice.paid', 'invoice.settled', 'invoice.failedToPay',
			'transaction.claimed', 'transaction.refunded', 'swap.expired'
		)`,
	} {
		if err := d.orm.Exec(stmt).Error; err != nil && !isDuplicateObject(err) {
			return fmt.Errorf("failed to create enum type: %w", err)
		}
	}

	err := d.orm.AutoMigrate(
		&models.Pair{},
		&models.Swap{},
		&models.ReverseSwap{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate models: %w", err)
	}

	return nil
}

// isDuplicateObject matches the postgres error raised when an enum type
// already exists, so migrations stay reentrant.
func isDuplicateObject(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.DuplicateObject
	}

	return false
}

// isUniqueViolation matches the postgres error for violated unique
// constraints, used for the duplicate invoice guard.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	return false
}
