// Package analytics derives dashboard and payments figures from a complete order snapshot.
// Every function is a pure function of its inputs: the same snapshot and instant give the same output.
package analytics

import (
	"cmp"
	"slices"
	"time"

	"canteen/internal/domain/entity"
)

// DateLayout is the bucket key format, a UTC calendar date.
const DateLayout = "2006-01-02"

// ItemCount is the completed quantity of one menu item.
type ItemCount struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// RevenueBucket is the completed revenue of one UTC calendar day.
type RevenueBucket struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

// StatusBreakdown counts orders per status. Orders with a status outside the known
// set are counted in Unrecognized instead of being dropped.
type StatusBreakdown struct {
	Pending      int `json:"pending"`
	Ready        int `json:"ready"`
	Cancelled    int `json:"cancelled"`
	Unrecognized int `json:"unrecognized"`
}

// Total returns the number of counted orders.
func (b StatusBreakdown) Total() int {
	return b.Pending + b.Ready + b.Cancelled + b.Unrecognized
}

// TopItems sums line-item quantities of ready orders per item name and returns the
// limit largest, by quantity descending and then name ascending.
func TopItems(orders []*entity.Order, limit int) []ItemCount {
	totals := make(map[string]int)
	for _, order := range orders {
		if order.Status != entity.OrderStatusReady {
			continue
		}
		for _, item := range order.Items {
			totals[item.Name] += item.Quantity
		}
	}

	items := make([]ItemCount, 0, len(totals))
	for name, qty := range totals {
		items = append(items, ItemCount{Name: name, Quantity: qty})
	}
	slices.SortFunc(items, func(a, b ItemCount) int {
		if c := cmp.Compare(b.Quantity, a.Quantity); c != 0 {
			return c
		}

		return cmp.Compare(a.Name, b.Name)
	})

	if limit >= 0 && len(items) > limit {
		items = items[:limit]
	}

	return items
}

// DailyRevenue sums Amount of ready orders per UTC calendar day, for orders placed at or
// after since. A zero since includes every order. Buckets are ordered by date ascending.
func DailyRevenue(orders []*entity.Order, since time.Time) []RevenueBucket {
	totals := make(map[string]float64)
	for _, order := range orders {
		if order.Status != entity.OrderStatusReady {
			continue
		}
		if !since.IsZero() && order.Time.Before(since) {
			continue
		}
		totals[order.Time.UTC().Format(DateLayout)] += order.Amount
	}

	buckets := make([]RevenueBucket, 0, len(totals))
	for date, revenue := range totals {
		buckets = append(buckets, RevenueBucket{Date: date, Revenue: revenue})
	}
	// The layout sorts lexically in date order.
	slices.SortFunc(buckets, func(a, b RevenueBucket) int {
		return cmp.Compare(a.Date, b.Date)
	})

	return buckets
}

// RevenueTrend returns the daily revenue of the trailing window ending at now.
func RevenueTrend(orders []*entity.Order, now time.Time, window time.Duration) []RevenueBucket {
	return DailyRevenue(orders, now.Add(-window))
}

// CountStatuses tallies every order and returns the distinct unrecognized statuses seen,
// sorted, so callers can report them.
func CountStatuses(orders []*entity.Order) (StatusBreakdown, []string) {
	var breakdown StatusBreakdown
	unknown := make(map[string]struct{})
	for _, order := range orders {
		switch order.Status {
		case entity.OrderStatusPending:
			breakdown.Pending++
		case entity.OrderStatusReady:
			breakdown.Ready++
		case entity.OrderStatusCancelled:
			breakdown.Cancelled++
		default:
			breakdown.Unrecognized++
			unknown[string(order.Status)] = struct{}{}
		}
	}

	statuses := make([]string, 0, len(unknown))
	for status := range unknown {
		statuses = append(statuses, status)
	}
	slices.Sort(statuses)

	return breakdown, statuses
}

// Revenue sums Amount over ready orders.
func Revenue(orders []*entity.Order) float64 {
	var total float64
	for _, order := range orders {
		if order.Status == entity.OrderStatusReady {
			total += order.Amount
		}
	}

	return total
}

// LastBuckets returns the final n buckets.
func LastBuckets(buckets []RevenueBucket, n int) []RevenueBucket {
	if n < 0 || len(buckets) <= n {
		return buckets
	}

	return buckets[len(buckets)-n:]
}
