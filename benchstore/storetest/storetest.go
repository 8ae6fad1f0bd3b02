// Copyright 2026 The benchcsv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package storetest opens results databases for tests.
//
// By default each test gets a private in-memory sqlite3 database.
// With -cloud, each test instead gets a fresh database on the Cloud
// SQL instance named by -cloudsql; tests are skipped if no instance
// is named.
package storetest

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"strings"
	"testing"

	_ "github.com/GoogleCloudPlatform/cloudsql-proxy/proxy/dialers/mysql"
	"github.com/google/uuid"

	"github.com/hsmperf/benchcsv/benchstore"
	_ "github.com/hsmperf/benchcsv/benchstore/sqlite3"
)

var (
	cloud     = flag.Bool("cloud", false, "connect to a Cloud SQL database instead of in-memory SQLite")
	cloudsql  = flag.String("cloudsql", "", "`project:region:instance` of the Cloud SQL instance used with -cloud")
	cloudUser = flag.String("cloudsql-user", "root", "MySQL `user` for -cloud")
)

// cloudDSN returns the mysql data source name for database on
// instance. An empty database names the server itself.
func cloudDSN(user, instance, database string) string {
	return fmt.Sprintf("%s:@cloudsql(%s)/%s", user, instance, database)
}

// testDatabaseName returns a fresh MySQL database name.
func testDatabaseName() string {
	return "benchcsv_test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

// cloudDB creates an empty database on the -cloudsql instance and
// returns its data source name. The database is dropped when t
// finishes.
func cloudDB(t *testing.T) string {
	t.Helper()
	if *cloudsql == "" {
		t.Skip("-cloud needs a Cloud SQL instance; set -cloudsql")
	}
	server, err := sql.Open("mysql", cloudDSN(*cloudUser, *cloudsql, ""))
	if err != nil {
		t.Fatal(err)
	}
	name := testDatabaseName()
	if _, err := server.Exec("CREATE DATABASE `" + name + "`"); err != nil {
		server.Close()
		t.Fatalf("%s: %v", *cloudsql, err)
	}
	t.Logf("using database %s on %s", name, *cloudsql)
	t.Cleanup(func() {
		if _, err := server.Exec("DROP DATABASE `" + name + "`"); err != nil {
			t.Error(err)
		}
		server.Close()
	})
	return cloudDSN(*cloudUser, *cloudsql, name)
}

// NewDB makes a connection to an empty testing database, either
// sqlite3 or Cloud SQL depending on the -cloud flag. The database is
// closed when the test finishes.
func NewDB(t *testing.T) *benchstore.DB {
	t.Helper()
	driverName, dataSourceName := "sqlite3", ":memory:"
	if *cloud {
		driverName, dataSourceName = "mysql", cloudDB(t)
	}
	d, err := benchstore.OpenSQL(driverName, dataSourceName)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { d.Close() })

	runs, err := d.CountRuns(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if runs != 0 {
		t.Fatalf("found %d row(s) in Runs, want 0", runs)
	}
	return d
}
