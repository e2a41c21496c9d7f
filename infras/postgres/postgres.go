package postgres

//nolint:revive
import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"

	"rentacar/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
	postgresConnMaxLifetime   = 30 * time.Minute
)

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

type connectionParams struct {
	name     string
	username string
	password string
	host     string
	port     string
	dbName   string
	sslMode  string
}

func New(config *config.Config) *Connection {
	conn := &Connection{
		Read:  CreatePostgresReadConn(*config),
		Write: CreatePostgresWriteConn(*config),
	}

	if conn.Read == nil || conn.Write == nil {
		log.Fatal().Int("maxRetry", config.DB.Postgres.MaxRetry).Msg("Could not connect to database")
	}

	return conn
}

// Ping checks both pools; the write pool is checked first.
func (c *Connection) Ping(ctx context.Context) error {
	if err := c.Write.PingContext(ctx); err != nil {
		return fmt.Errorf("write connection: %w", err)
	}

	if err := c.Read.PingContext(ctx); err != nil {
		return fmt.Errorf("read connection: %w", err)
	}

	return nil
}

// getDBName returns the database name with prefix if configured
func getDBName(config config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}
	return baseName
}

// CreatePostgresWriteConn creates a database connection for write access.
func CreatePostgresWriteConn(config config.Config) *sqlx.DB {
	write := config.DB.Postgres.Write

	return CreatePostgresConnection(connectionParams{
		name:     "write",
		username: write.Username,
		password: write.Password,
		host:     write.Host,
		port:     write.Port,
		dbName:   getDBName(config, write.Name),
		sslMode:  write.SSLMode,
	}, config.DB.Postgres.MaxRetry, config.DB.Postgres.RetryWaitTime)
}

// CreatePostgresReadConn creates a database connection for read access.
func CreatePostgresReadConn(config config.Config) *sqlx.DB {
	read := config.DB.Postgres.Read

	return CreatePostgresConnection(connectionParams{
		name:     "read",
		username: read.Username,
		password: read.Password,
		host:     read.Host,
		port:     read.Port,
		dbName:   getDBName(config, read.Name),
		sslMode:  read.SSLMode,
	}, config.DB.Postgres.MaxRetry, config.DB.Postgres.RetryWaitTime)
}

// DSN builds the lib/pq connection URL; credentials are escaped.
func DSN(username, password, host, port, dbName, sslMode string) string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(username, password),
		Host:     net.JoinHostPort(host, port),
		Path:     dbName,
		RawQuery: url.Values{"sslmode": []string{sslMode}}.Encode(),
	}

	return dsn.String()
}

// CreatePostgresConnection creates a database connection, retrying maxRetry times.
func CreatePostgresConnection(params connectionParams, maxRetry, waitTime int) *sqlx.DB {
	descriptor := DSN(params.username, params.password, params.host, params.port, params.dbName, params.sslMode)

	for retry := range max(maxRetry, 1) {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			log.
				Info().
				Str("name", params.name).
				Str("host", params.host).
				Str("port", params.port).
				Str("dbName", params.dbName).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)
			sqlDB.SetConnMaxLifetime(postgresConnMaxLifetime)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", params.name).
			Str("host", params.host).
			Str("port", params.port).
			Str("dbName", params.dbName).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil
}
