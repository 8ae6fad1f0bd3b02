// Copyright 2026 The benchcsv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package storetest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCloudDSN(t *testing.T) {
	assert.Equal(t, "root:@cloudsql(p:r:i)/", cloudDSN("root", "p:r:i", ""))
	assert.Equal(t, "bench:@cloudsql(p:r:i)/db", cloudDSN("bench", "p:r:i", "db"))

	a, b := testDatabaseName(), testDatabaseName()
	assert.Regexp(t, "^benchcsv_test_[0-9a-f]{12}$", a)
	assert.NotEqual(t, a, b)
}

func TestCloudWithoutInstance(t *testing.T) {
	oldCloud, oldInstance := *cloud, *cloudsql
	*cloud, *cloudsql = true, ""
	defer func() { *cloud, *cloudsql = oldCloud, oldInstance }()

	var sub *testing.T
	t.Run("NewDB", func(t *testing.T) {
		sub = t
		NewDB(t)
		t.Error("NewDB did not skip")
	})
	assert.True(t, sub.Skipped())
}
