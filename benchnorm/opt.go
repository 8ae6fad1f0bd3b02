// Copyright 2026 The benchcsv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchnorm

import (
	"database/sql/driver"
	"fmt"
	"math"
	"strconv"
)

// An Opt is an unsigned integer that may be missing.
//
// The zero Opt is missing, which is distinct from Some(0).
type Opt struct {
	V     uint64
	Valid bool
}

// Some returns an Opt holding v.
func Some(v uint64) Opt {
	return Opt{v, true}
}

// String returns the decimal form of o, or "" if o is missing.
func (o Opt) String() string {
	if !o.Valid {
		return ""
	}
	return strconv.FormatUint(o.V, 10)
}

// Any returns o's value as a uint64, or nil if o is missing.
func (o Opt) Any() interface{} {
	if !o.Valid {
		return nil
	}
	return o.V
}

// Value implements driver.Valuer. Missing values are stored as NULL.
func (o Opt) Value() (driver.Value, error) {
	if !o.Valid {
		return nil, nil
	}
	if o.V > math.MaxInt64 {
		return nil, fmt.Errorf("value %d does not fit in a SQL integer", o.V)
	}
	return int64(o.V), nil
}

// Scan implements sql.Scanner.
func (o *Opt) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		*o = Opt{}
		return nil
	case int64:
		if src < 0 {
			return fmt.Errorf("cannot scan negative %d into Opt", src)
		}
		*o = Some(uint64(src))
		return nil
	case []byte:
		return o.scanString(string(src))
	case string:
		return o.scanString(src)
	}
	return fmt.Errorf("cannot scan %T into Opt", src)
}

func (o *Opt) scanString(s string) error {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return err
	}
	*o = Some(v)
	return nil
}
