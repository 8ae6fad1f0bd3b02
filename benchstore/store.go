// Copyright 2026 The benchcsv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchstore persists canonical benchmark tables in a SQL
// database.
//
// Each stored table is a run, identified by a random UUID. The rows of
// a run are kept in their original order.
package benchstore

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/google/uuid"

	"github.com/hsmperf/benchcsv/benchnorm"
)

// DB is a benchmark results database. It's safe for concurrent use by
// multiple goroutines.
type DB struct {
	sql *sql.DB

	insertRun    *sql.Stmt
	insertResult *sql.Stmt
}

// OpenSQL creates a DB backed by a SQL database. The parameters are
// the same as the parameters for sql.Open. Only mysql and sqlite3 are
// explicitly supported; other database engines will receive MySQL
// query syntax which may or may not be compatible.
func OpenSQL(driverName, dataSourceName string) (*DB, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, err
	}
	if hook := openHooks[driverName]; hook != nil {
		if err := hook(db); err != nil {
			db.Close()
			return nil, err
		}
	}
	d := &DB{sql: db}
	if err := d.createTables(driverName); err != nil {
		db.Close()
		return nil, err
	}
	if err := d.prepareStatements(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

var openHooks = make(map[string]func(*sql.DB) error)

// RegisterOpenHook registers a hook to be called after opening a
// connection to driverName. It must be called from an init function.
func RegisterOpenHook(driverName string, hook func(*sql.DB) error) {
	openHooks[driverName] = hook
}

// createTmpl is evaluated with . as a map containing one entry whose
// key is the driver name.
var createTmpl = template.Must(template.New("create").Parse(`
CREATE TABLE IF NOT EXISTS Runs (
	RunID VARCHAR(36) PRIMARY KEY,
	Created VARCHAR(64) NOT NULL,
	NumRows BIGINT UNSIGNED NOT NULL
);
CREATE TABLE IF NOT EXISTS Results (
	RunID VARCHAR(36) NOT NULL,
	Seq BIGINT UNSIGNED NOT NULL,
	Type VARCHAR(255) NOT NULL,
	Params VARCHAR(1024) NOT NULL,
	GroupName VARCHAR(255) NOT NULL,
	Func VARCHAR(255) NOT NULL,
	BlockSize BIGINT UNSIGNED,
	Iterations BIGINT UNSIGNED NOT NULL,
	Threads BIGINT UNSIGNED,
	Session BIGINT UNSIGNED,
	CPUTime BIGINT UNSIGNED NOT NULL,
	RealTime BIGINT UNSIGNED NOT NULL,
	ItemsPerSecond BIGINT UNSIGNED,
	BytesPerSecond BIGINT UNSIGNED,
	PRIMARY KEY (RunID, Seq),
{{if not .sqlite3}}
	Index (GroupName(100), Func(100)),
{{end}}
	FOREIGN KEY (RunID) REFERENCES Runs(RunID) ON UPDATE CASCADE ON DELETE CASCADE
);
{{if .sqlite3}}
CREATE INDEX IF NOT EXISTS ResultsGroupFunc ON Results(GroupName, Func);
{{end}}
`))

// createTables creates any missing tables on the connection in
// db.sql. driverName is used to select the correct syntax.
func (db *DB) createTables(driverName string) error {
	var buf bytes.Buffer
	if err := createTmpl.Execute(&buf, map[string]bool{driverName: true}); err != nil {
		return err
	}
	for _, q := range strings.Split(buf.String(), ";") {
		if strings.TrimSpace(q) == "" {
			continue
		}
		if _, err := db.sql.Exec(q); err != nil {
			return fmt.Errorf("create table: %v", err)
		}
	}
	return nil
}

const resultColumns = "Type, Params, GroupName, Func, BlockSize, Iterations, Threads, Session, CPUTime, RealTime, ItemsPerSecond, BytesPerSecond"

// prepareStatements calls db.sql.Prepare on reusable SQL statements.
func (db *DB) prepareStatements() error {
	var err error
	db.insertRun, err = db.sql.Prepare("INSERT INTO Runs(RunID, Created, NumRows) VALUES (?, ?, ?)")
	if err != nil {
		return err
	}
	db.insertResult, err = db.sql.Prepare("INSERT INTO Results(RunID, Seq, " + resultColumns + ") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	return nil
}

// createdFormat is fixed-width so that creation times sort as strings.
const createdFormat = "2006-01-02T15:04:05.000000000Z07:00"

// now and newID are replaced by tests.
var (
	now   = time.Now
	newID = uuid.NewString
)

// A Run is one stored table.
type Run struct {
	ID      string
	Created time.Time
	Rows    int
}

// InsertTable stores t as a new run. Either the whole table is
// stored or, on error, none of it is.
func (db *DB) InsertTable(ctx context.Context, t *benchnorm.Table) (run *Run, err error) {
	tx, err := db.sql.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
			run = nil
		} else {
			err = tx.Commit()
		}
	}()

	run = &Run{ID: newID(), Created: now().UTC(), Rows: t.Len()}
	if _, err := tx.StmtContext(ctx, db.insertRun).ExecContext(ctx, run.ID, run.Created.Format(createdFormat), run.Rows); err != nil {
		return nil, err
	}
	insert := tx.StmtContext(ctx, db.insertResult)
	for i := range t.Rows {
		r := &t.Rows[i]
		_, err := insert.ExecContext(ctx, run.ID, i,
			r.Type, r.Params, r.Group, r.Func,
			r.BlockSize, r.Iterations, r.Threads, r.Session,
			r.CPUTime, r.RealTime, r.ItemsPerSecond, r.BytesPerSecond)
		if err != nil {
			return nil, fmt.Errorf("insert row %d: %w", i, err)
		}
	}
	return run, nil
}

// Runs returns every stored run, oldest first.
func (db *DB) Runs(ctx context.Context) ([]*Run, error) {
	rows, err := db.sql.QueryContext(ctx, "SELECT RunID, Created, NumRows FROM Runs ORDER BY Created, RunID")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var runs []*Run
	for rows.Next() {
		var (
			run     Run
			created string
		)
		if err := rows.Scan(&run.ID, &created, &run.Rows); err != nil {
			return nil, err
		}
		if run.Created, err = time.Parse(createdFormat, created); err != nil {
			return nil, fmt.Errorf("run %s: %v", run.ID, err)
		}
		runs = append(runs, &run)
	}
	return runs, rows.Err()
}

// CountRuns returns the number of stored runs.
func (db *DB) CountRuns(ctx context.Context) (int, error) {
	var n int
	err := db.sql.QueryRowContext(ctx, "SELECT COUNT(*) FROM Runs").Scan(&n)
	return n, err
}

// Table returns the table stored as run id.
func (db *DB) Table(ctx context.Context, id string) (*benchnorm.Table, error) {
	rows, err := db.sql.QueryContext(ctx, "SELECT "+resultColumns+" FROM Results WHERE RunID = ? ORDER BY Seq", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	t := new(benchnorm.Table)
	for rows.Next() {
		var r benchnorm.Row
		err := rows.Scan(&r.Type, &r.Params, &r.Group, &r.Func,
			&r.BlockSize, &r.Iterations, &r.Threads, &r.Session,
			&r.CPUTime, &r.RealTime, &r.ItemsPerSecond, &r.BytesPerSecond)
		if err != nil {
			return nil, err
		}
		t.Rows = append(t.Rows, r)
	}
	return t, rows.Err()
}

// Close closes the database connections, releasing any open resources.
func (db *DB) Close() error {
	if err := db.insertRun.Close(); err != nil {
		return err
	}
	if err := db.insertResult.Close(); err != nil {
		return err
	}
	return db.sql.Close()
}
