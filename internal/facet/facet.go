// Package facet partitions records into named, independently togglable
// groups along at most one dimension.
package facet

import (
	"nqsmap/internal/model"
)

// Key identifies the dimension records are partitioned on.
type Key string

const (
	None         Key = ""
	Jurisdiction Key = "jurisdiction"
	Rating       Key = "rating"
	Type         Key = "type"
)

// unknownGroup collects records with a blank jurisdiction or type.
const unknownGroup = "Unknown"

// allGroup names the single group produced when no facet is selected.
const allGroup = "All services"

// Pick returns the first recognized key among the supplied values.
// Unrecognized values and everything after the first match are silently
// ignored.
func Pick(values []string) Key {
	for _, v := range values {
		switch Key(v) {
		case Jurisdiction, Rating, Type:
			return Key(v)
		}
	}
	return None
}

// Group is one togglable layer of records.
type Group struct {
	Name    string
	Records []model.Record
}

// Partition splits records into ordered, disjoint groups covering the
// whole input. With no key, a single group preserves input order. Rating
// groups follow the canonical rating order (empty buckets omitted, and
// any non-canonical literals appended in first-appearance order);
// jurisdiction and type group on the literal column value in
// first-appearance order, with blanks under "Unknown".
func Partition(records []model.Record, key Key) []Group {
	if key == None {
		return []Group{{Name: allGroup, Records: records}}
	}
	if key == Rating {
		return byRating(records)
	}
	return byValue(records, func(r *model.Record) string {
		switch key {
		case Jurisdiction:
			return r.State
		default:
			return r.ServiceType
		}
	})
}

func byRating(records []model.Record) []Group {
	buckets := make(map[string][]model.Record)
	var extras []string // non-canonical literals, first appearance
	for _, r := range records {
		if _, seen := buckets[r.Rating]; !seen {
			if _, canonical := model.RatingByName(r.Rating); !canonical {
				extras = append(extras, r.Rating)
			}
		}
		buckets[r.Rating] = append(buckets[r.Rating], r)
	}

	var groups []Group
	for _, rating := range model.AllRatings {
		if recs := buckets[rating.Name]; len(recs) > 0 {
			groups = append(groups, Group{Name: rating.Name, Records: recs})
		}
	}
	for _, name := range extras {
		groups = append(groups, Group{Name: name, Records: buckets[name]})
	}
	return groups
}

func byValue(records []model.Record, value func(*model.Record) string) []Group {
	buckets := make(map[string][]model.Record)
	var order []string
	for i := range records {
		name := value(&records[i])
		if name == "" {
			name = unknownGroup
		}
		if _, seen := buckets[name]; !seen {
			order = append(order, name)
		}
		buckets[name] = append(buckets[name], records[i])
	}

	groups := make([]Group, 0, len(order))
	for _, name := range order {
		groups = append(groups, Group{Name: name, Records: buckets[name]})
	}
	return groups
}
