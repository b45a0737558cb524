// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldFilter(t *testing.T) {
	record := AnalyticsRecord{Slug: "breaking-news", ClientID: "user:42", Counted: false}

	tests := []struct {
		name    string
		filters AnalyticsFilters
		want    bool
	}{
		{"no filters", AnalyticsFilters{}, false},
		{"only counted drops uncounted", AnalyticsFilters{OnlyCounted: true}, true},
		{"skip slug matches", AnalyticsFilters{SkippedSlugs: []string{"breaking-news"}}, true},
		{"skip slug misses", AnalyticsFilters{SkippedSlugs: []string{"other"}}, false},
		{"skip client matches", AnalyticsFilters{SkipClientIDs: []string{"user:42"}}, true},
		{"allow slug matches", AnalyticsFilters{Slugs: []string{"breaking-news"}}, false},
		{"allow slug misses", AnalyticsFilters{Slugs: []string{"other"}}, true},
		{"allow client misses", AnalyticsFilters{ClientIDs: []string{"user:7"}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filters.ShouldFilter(record))
		})
	}
}

func TestHasFilter(t *testing.T) {
	assert.False(t, AnalyticsFilters{}.HasFilter())
	assert.True(t, AnalyticsFilters{OnlyCounted: true}.HasFilter())
	assert.True(t, AnalyticsFilters{Slugs: []string{"a"}}.HasFilter())
	assert.True(t, AnalyticsFilters{SkipClientIDs: []string{"user:1"}}.HasFilter())
}
