// Package stats reshapes the flat per-(date, emotion) count rows produced by
// the statistics queries into per-date breakdowns.
package stats

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Record is one flat row from the stats query: a (date, emotion) pair with
// its occurrence count. Count may arrive numeric or as a textual decimal
// depending on the driver; GroupByDate normalizes it.
type Record struct {
	Date  string      `json:"date"`
	Name  string      `json:"name"`
	Icon  string      `json:"icon"`
	Count json.Number `json:"count"`
}

// EmotionCount is one emotion's normalized count within a date bucket.
type EmotionCount struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Count int    `json:"count"`
}

// DateStat is the per-date breakdown of emotion counts.
type DateStat struct {
	Date     string         `json:"date"`
	Emotions []EmotionCount `json:"emotions"`
}

// Grouped maps date keys to DateStats while preserving the order in which
// dates were first seen. It is append-only and never re-sorts: any ordering
// guarantee (dates ascending, counts descending within a date) must already
// hold in the input rows, which the SQL ORDER BY clause provides.
type Grouped struct {
	index map[string]int
	stats []DateStat
}

// GroupByDate folds flat records into per-date aggregates. Records sharing a
// date keep their input order, and duplicate (date, emotion) pairs are
// appended rather than merged. An empty input yields an empty mapping.
func GroupByDate(records []Record) (*Grouped, error) {
	g := &Grouped{index: make(map[string]int, len(records))}
	for _, r := range records {
		count, err := normalizeCount(r.Count)
		if err != nil {
			return nil, fmt.Errorf("stat row %s/%s: %w", r.Date, r.Name, err)
		}
		i, ok := g.index[r.Date]
		if !ok {
			i = len(g.stats)
			g.index[r.Date] = i
			g.stats = append(g.stats, DateStat{Date: r.Date})
		}
		g.stats[i].Emotions = append(g.stats[i].Emotions, EmotionCount{
			Name:  r.Name,
			Icon:  r.Icon,
			Count: count,
		})
	}
	return g, nil
}

// Len returns the number of distinct dates.
func (g *Grouped) Len() int { return len(g.stats) }

// Get returns the aggregate for a date key.
func (g *Grouped) Get(date string) (DateStat, bool) {
	i, ok := g.index[date]
	if !ok {
		return DateStat{}, false
	}
	return g.stats[i], true
}

// Stats returns all aggregates in first-seen date order. It never returns
// nil so the JSON encoding of an empty result is [] rather than null.
func (g *Grouped) Stats() []DateStat {
	if g.stats == nil {
		return []DateStat{}
	}
	return g.stats
}

func normalizeCount(n json.Number) (int, error) {
	v, err := strconv.ParseInt(string(n), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("count %q is not a base-10 integer", string(n))
	}
	return int(v), nil
}
