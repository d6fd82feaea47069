// Package tracking summarizes the per-endpoint request counters.
package tracking

import (
	models "Uno/models/postgres"
	"sort"
	"strconv"
)

type RequestStats struct {
	TotalRequests int                       `json:"total_requests"`
	Breakdown     map[string]map[string]int `json:"breakdown"`
}

type ResponseTime struct {
	Avg float64 `json:"avg"`
	Min int64   `json:"min"`
	Max int64   `json:"max"`
}

type PopularEndpoint struct {
	MostPopular  *string `json:"most_popular"`
	RequestCount int     `json:"request_count"`
}

// Requests totals the counters by endpoint and method
func Requests(rows []models.Tracking) RequestStats {
	stats := RequestStats{Breakdown: map[string]map[string]int{}}
	for _, row := range rows {
		if stats.Breakdown[row.EndpointAccess] == nil {
			stats.Breakdown[row.EndpointAccess] = map[string]int{}
		}
		stats.Breakdown[row.EndpointAccess][row.RequestMethod] += row.RequestCount
		stats.TotalRequests += row.RequestCount
	}
	return stats
}

// ResponseTimes folds the samples of every method of an endpoint together
func ResponseTimes(rows []models.Tracking) map[string]ResponseTime {
	samples := map[string][]int64{}
	for _, row := range rows {
		samples[row.EndpointAccess] = append(samples[row.EndpointAccess], row.ResponseTimes...)
	}

	times := make(map[string]ResponseTime, len(samples))
	for endpoint, values := range samples {
		if len(values) == 0 {
			continue
		}
		rt := ResponseTime{Min: values[0], Max: values[0]}
		var sum int64
		for _, v := range values {
			sum += v
			rt.Min = min(rt.Min, v)
			rt.Max = max(rt.Max, v)
		}
		rt.Avg = float64(sum) / float64(len(values))
		times[endpoint] = rt
	}
	return times
}

// StatusCodes counts requests by the last status code of each row
func StatusCodes(rows []models.Tracking) map[string]int {
	codes := map[string]int{}
	for _, row := range rows {
		codes[strconv.Itoa(row.StatusCode)] += row.RequestCount
	}
	return codes
}

// Popular returns the single most requested endpoint+method row. Ties go
// to the endpoint that sorts first.
func Popular(rows []models.Tracking) PopularEndpoint {
	if len(rows) == 0 {
		return PopularEndpoint{}
	}
	sorted := append([]models.Tracking(nil), rows...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].RequestCount != sorted[j].RequestCount {
			return sorted[i].RequestCount > sorted[j].RequestCount
		}
		return sorted[i].EndpointAccess < sorted[j].EndpointAccess
	})
	top := sorted[0]
	return PopularEndpoint{MostPopular: &top.EndpointAccess, RequestCount: top.RequestCount}
}
