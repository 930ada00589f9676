// Package association computes the writes that turn a stored set of
// restaurant links (categories, regular holidays) into a desired set.
package association

import "slices"

// Link is a stored association row: its own id and the id it points at.
type Link struct {
	ID        int64
	RelatedID int64
}

type IDSet map[int64]struct{}

func NewIDSet(ids ...int64) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s IDSet) Has(id int64) bool {
	_, ok := s[id]
	return ok
}

// Plan lists related ids to link and link ids to remove, both ascending.
type Plan struct {
	ToInsert []int64
	ToDelete []int64
}

func (p Plan) Empty() bool {
	return len(p.ToInsert) == 0 && len(p.ToDelete) == 0
}

// Reconcile diffs desired against existing. Ids missing from known are dropped
// silently; links already in place are left alone.
func Reconcile(desired []int64, existing []Link, known IDSet) Plan {
	want := make(IDSet, len(desired))
	for _, id := range desired {
		if known.Has(id) {
			want[id] = struct{}{}
		}
	}

	have := make(IDSet, len(existing))
	var plan Plan
	for _, l := range existing {
		if _, keep := want[l.RelatedID]; keep {
			if have.Has(l.RelatedID) {
				// a second row for the same target is redundant
				plan.ToDelete = append(plan.ToDelete, l.ID)
				continue
			}
			have[l.RelatedID] = struct{}{}
			continue
		}
		plan.ToDelete = append(plan.ToDelete, l.ID)
	}

	for id := range want {
		if !have.Has(id) {
			plan.ToInsert = append(plan.ToInsert, id)
		}
	}

	slices.Sort(plan.ToInsert)
	slices.Sort(plan.ToDelete)
	return plan
}

// Apply returns the link set a store would hold after executing p. Inserted
// links get id 0.
func Apply(existing []Link, p Plan) []Link {
	drop := NewIDSet(p.ToDelete...)
	out := make([]Link, 0, len(existing)+len(p.ToInsert))
	for _, l := range existing {
		if !drop.Has(l.ID) {
			out = append(out, l)
		}
	}
	for _, id := range p.ToInsert {
		out = append(out, Link{RelatedID: id})
	}
	return out
}
