// Catalog Charts - Streaming Catalog Analytics and Chart Rendering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogcharts

package charts

import "errors"

// Key identifies one chart.
type Key string

const (
	KeyType         Key = "type"
	KeyCountries    Key = "countries"
	KeyReleaseTrend Key = "release_trend"
	KeyGenres       Key = "genres"
	KeyRatings      Key = "ratings"
	KeyDuration     Key = "duration"
	KeyDirectors    Key = "directors"
)

// ErrInvalidSelection is returned for a key that names no chart.
var ErrInvalidSelection = errors.New("invalid choice")

var keys = []Key{
	KeyType,
	KeyCountries,
	KeyReleaseTrend,
	KeyGenres,
	KeyRatings,
	KeyDuration,
	KeyDirectors,
}

// Keys returns every chart key in canonical order.
func Keys() []Key {
	out := make([]Key, len(keys))
	copy(out, keys)
	return out
}

// ParseKey reports whether s names a chart.
func ParseKey(s string) (Key, bool) {
	for _, k := range keys {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// String implements fmt.Stringer.
func (k Key) String() string {
	return string(k)
}
