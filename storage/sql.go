// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/spf13/cast"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
)

// DB is a Store backed by a SQL database. Settings are read when the
// store is opened and written back by Sync.
type DB struct {
	*mapStore
	sql *sql.DB
	// prepared statements
	upsert *sql.Stmt
	remove *sql.Stmt
}

// OpenSQL opens a settings store in a SQL database. The parameters
// are the same as the parameters for sql.Open. Only mysql and sqlite3
// are explicitly supported; other database engines will receive MySQL
// query syntax which may or may not be compatible.
func OpenSQL(driverName, dataSourceName string) (*DB, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, err
	}
	if driverName == "sqlite3" {
		// Each connection to an in-memory database is a distinct
		// database.
		db.SetMaxOpenConns(1)
	}
	d := &DB{mapStore: newMapStore(nil), sql: db}
	if err := d.createTables(driverName); err != nil {
		db.Close()
		return nil, err
	}
	if err := d.prepareStatements(driverName); err != nil {
		db.Close()
		return nil, err
	}
	if err := d.load(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

// createTmpl is the template used to prepare the CREATE statements
// for the database. It is evaluated with . as a map containing one
// entry whose key is the driver name.
var createTmpl = template.Must(template.New("create").Parse(`
CREATE TABLE IF NOT EXISTS Settings (
	Name VARCHAR(255) NOT NULL PRIMARY KEY,
	Value {{if .sqlite3}}TEXT{{else}}VARCHAR(8192){{end}}
);
`))

// createTables creates any missing tables on the connection in
// db.sql. driverName is the same driver name passed to sql.Open and
// is used to select the correct syntax.
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

// prepareStatements calls db.sql.Prepare on reusable SQL statements.
func (db *DB) prepareStatements(driverName string) error {
	var err error
	q := "INSERT INTO Settings(Name, Value) VALUES (?, ?) ON DUPLICATE KEY UPDATE Value = VALUES(Value)"
	if driverName == "sqlite3" {
		q = "INSERT OR REPLACE INTO Settings(Name, Value) VALUES (?, ?)"
	}
	db.upsert, err = db.sql.Prepare(q)
	if err != nil {
		return err
	}
	db.remove, err = db.sql.Prepare("DELETE FROM Settings WHERE Name = ?")
	if err != nil {
		return err
	}
	return nil
}

// load reads every setting of the database.
func (db *DB) load() error {
	rows, err := db.sql.Query("SELECT Name, Value FROM Settings")
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return err
		}
		db.vals[name] = value
	}
	return rows.Err()
}

// Sync writes the changed settings to the database in a single
// transaction.
func (db *DB) Sync() error {
	if len(db.dirty) == 0 && len(db.deleted) == 0 {
		return nil
	}
	tx, err := db.sql.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, k := range sortedKeys(db.deleted) {
		if _, err := tx.Stmt(db.remove).Exec(k); err != nil {
			return fmt.Errorf("deleting setting %s: %v", k, err)
		}
	}
	for _, k := range sortedKeys(db.dirty) {
		v, err := cast.ToStringE(db.vals[k])
		if err != nil {
			return fmt.Errorf("setting %s: %v", k, err)
		}
		if _, err := tx.Stmt(db.upsert).Exec(k, v); err != nil {
			return fmt.Errorf("writing setting %s: %v", k, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	db.resetChanges()
	return nil
}

// Close closes the database connection. Unsynced changes are lost.
func (db *DB) Close() error {
	return db.sql.Close()
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
