package db

import (
	"sort"
	"time"

	"github.com/solutions/recruit-cube/internal/common/utils"
	"github.com/solutions/recruit-cube/internal/protodef/model"
)

// Pure shaping helpers for the dashboard queries. Kept free of any
// collection handle so they can be exercised without a database.

// FillFunnel orders stage counts into the fixed funnel display order,
// zero-filling stages absent from the counts. Stage names come out
// title-cased.
func FillFunnel(counts map[string]int) []model.FunnelStageResponse {
	funnel := make([]model.FunnelStageResponse, 0, len(model.HiringFunnelStages))
	for _, stage := range model.HiringFunnelStages {
		funnel = append(funnel, model.FunnelStageResponse{
			Stage: utils.Capitalize(stage),
			Count: counts[stage],
		})
	}
	return funnel
}

// MergeActivities combines per-collection activity slices, sorts them by
// timestamp descending and truncates to limit.
func MergeActivities(limit int, lists ...[]model.ActivityResponse) []model.ActivityResponse {
	merged := make([]model.ActivityResponse, 0)
	for _, list := range lists {
		merged = append(merged, list...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Timestamp.After(merged[j].Timestamp)
	})
	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}

// TrendCounts raw per-bucket tallies feeding BuildTrend.
type TrendCounts struct {
	Applications map[string]int
	Interviews   map[string]int
	Offers       map[string]int
}

// NewTrendCounts tallies creation timestamps into range buckets. Offer
// timestamps are the subset of application timestamps whose candidate
// sits in the offer stage.
func NewTrendCounts(rangeName string, applications, interviews, offers []time.Time) TrendCounts {
	counts := TrendCounts{
		Applications: make(map[string]int),
		Interviews:   make(map[string]int),
		Offers:       make(map[string]int),
	}
	for _, t := range applications {
		counts.Applications[BucketKey(rangeName, t)]++
	}
	for _, t := range interviews {
		counts.Interviews[BucketKey(rangeName, t)]++
	}
	for _, t := range offers {
		counts.Offers[BucketKey(rangeName, t)]++
	}
	return counts
}

// BuildTrend unions the bucket keys of all three series into one sorted
// sequence of points, zero-filling series that miss a bucket.
func BuildTrend(counts TrendCounts) []model.TrendPointResponse {
	keySet := make(map[string]bool)
	for key := range counts.Applications {
		keySet[key] = true
	}
	for key := range counts.Interviews {
		keySet[key] = true
	}
	for key := range counts.Offers {
		keySet[key] = true
	}
	keys := make([]string, 0, len(keySet))
	for key := range keySet {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	points := make([]model.TrendPointResponse, 0, len(keys))
	for _, key := range keys {
		points = append(points, model.TrendPointResponse{
			Date:         key,
			Applications: counts.Applications[key],
			Interviews:   counts.Interviews[key],
			Offers:       counts.Offers[key],
		})
	}
	return points
}
