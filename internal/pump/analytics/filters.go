// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package analytics

// AnalyticsFilters defines the fields of an analytics record on which the
// configured pumps can filter.
type AnalyticsFilters struct {
	Slugs         []string `json:"slugs"`
	SkippedSlugs  []string `json:"skip_slugs"`
	ClientIDs     []string `json:"client_ids"`
	SkipClientIDs []string `json:"skip_client_ids"`
	OnlyCounted   bool     `json:"only_counted"`
}

// ShouldFilter determine whether a record should be filtered out.
func (filters AnalyticsFilters) ShouldFilter(record AnalyticsRecord) bool {
	switch {
	case filters.OnlyCounted && !record.Counted:
		return true
	case len(filters.SkippedSlugs) > 0 && stringInSlice(record.Slug, filters.SkippedSlugs):
		return true
	case len(filters.SkipClientIDs) > 0 && stringInSlice(record.ClientID, filters.SkipClientIDs):
		return true
	case len(filters.Slugs) > 0 && !stringInSlice(record.Slug, filters.Slugs):
		return true
	case len(filters.ClientIDs) > 0 && !stringInSlice(record.ClientID, filters.ClientIDs):
		return true
	}

	return false
}

// HasFilter determine whether a record has a filter.
func (filters AnalyticsFilters) HasFilter() bool {
	if filters.OnlyCounted {
		return true
	}

	return len(filters.SkippedSlugs) > 0 || len(filters.Slugs) > 0 ||
		len(filters.ClientIDs) > 0 || len(filters.SkipClientIDs) > 0
}

func stringInSlice(a string, list []string) bool {
	for _, b := range list {
		if b == a {
			return true
		}
	}

	return false
}
