package data

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	"github.com/airenas/go-app/pkg/goapp"
	"github.com/go-sql-driver/mysql"
)

var tableNameRegexp = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// MySQLSource reads pairs from a table with `truth` and `ocr` columns ordered by `id`
type MySQLSource struct {
	db    *sql.DB
	table string
}

// NewMySQLSource opens a lazy connection pool, no query is executed here
func NewMySQLSource(dsn, table string) (*MySQLSource, error) {
	if dsn == "" {
		return nil, fmt.Errorf("no dsn")
	}
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	if !tableNameRegexp.MatchString(table) {
		return nil, fmt.Errorf("wrong table name '%s'", table)
	}
	db, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	goapp.Log.Info().Str("addr", cfg.Addr).Str("db", cfg.DBName).Str("table", table).Msg("MySQL source")
	return &MySQLSource{db: db, table: table}, nil
}

func (ms *MySQLSource) query() string {
	return fmt.Sprintf("SELECT truth, ocr FROM %s ORDER BY id", ms.table)
}

// Load implements Source
func (ms *MySQLSource) Load(ctx context.Context) ([]Pair, error) {
	rows, err := ms.db.QueryContext(ctx, ms.query())
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", ms.table, err)
	}
	defer rows.Close()
	var res []Pair
	for rows.Next() {
		var p Pair
		if err := rows.Scan(&p.Truth, &p.OCR); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		res = append(res, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// Close closes the pool
func (ms *MySQLSource) Close() error {
	return ms.db.Close()
}
