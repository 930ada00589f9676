//go:build unit

package association_test

import (
	"testing"

	"nagoyameshi/internal/domain/association"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

func TestReconcile(t *testing.T) {
	known := association.NewIDSet(1, 2, 3, 4, 5, 6, 7, 8, 9)

	cases := []struct {
		name     string
		desired  []int64
		existing []association.Link
		want     association.Plan
	}{
		{
			name:     "insert 3, delete link to 9, leave 5",
			desired:  []int64{3, 5},
			existing: []association.Link{{ID: 100, RelatedID: 5}, {ID: 101, RelatedID: 9}},
			want:     association.Plan{ToInsert: []int64{3}, ToDelete: []int64{101}},
		},
		{
			name:     "nil desired clears everything",
			desired:  nil,
			existing: []association.Link{{ID: 11, RelatedID: 2}, {ID: 10, RelatedID: 1}},
			want:     association.Plan{ToDelete: []int64{10, 11}},
		},
		{
			name:     "empty desired clears everything",
			desired:  []int64{},
			existing: []association.Link{{ID: 10, RelatedID: 1}},
			want:     association.Plan{ToDelete: []int64{10}},
		},
		{
			name:    "unknown ids are ignored",
			desired: []int64{4, 404},
			want:    association.Plan{ToInsert: []int64{4}},
		},
		{
			name:    "duplicates collapse and output is sorted",
			desired: []int64{8, 2, 8, 6, 2},
			want:    association.Plan{ToInsert: []int64{2, 6, 8}},
		},
		{
			name:     "already linked is a no-op",
			desired:  []int64{1, 2},
			existing: []association.Link{{ID: 10, RelatedID: 1}, {ID: 11, RelatedID: 2}},
			want:     association.Plan{},
		},
		{
			name:     "redundant duplicate link is removed",
			desired:  []int64{1},
			existing: []association.Link{{ID: 10, RelatedID: 1}, {ID: 12, RelatedID: 1}},
			want:     association.Plan{ToDelete: []int64{12}},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := association.Reconcile(c.desired, c.existing, known)
			if diff := cmp.Diff(c.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Plan mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReconcile_Idempotent(t *testing.T) {
	known := association.NewIDSet(1, 2, 3, 4, 5)
	existing := []association.Link{{ID: 1, RelatedID: 1}, {ID: 2, RelatedID: 4}}
	desired := []int64{2, 3, 4, 99}

	first := association.Reconcile(desired, existing, known)
	assert.False(t, first.Empty())

	after := association.Apply(existing, first)
	second := association.Reconcile(desired, after, known)
	assert.True(t, second.Empty(), "second application must plan no writes: %+v", second)
}

func TestReconcile_NilDeletesExactlyExisting(t *testing.T) {
	existing := []association.Link{{ID: 7, RelatedID: 1}, {ID: 3, RelatedID: 2}, {ID: 5, RelatedID: 3}}
	plan := association.Reconcile(nil, existing, association.NewIDSet(1, 2, 3))

	assert.Empty(t, plan.ToInsert)
	assert.Equal(t, []int64{3, 5, 7}, plan.ToDelete)
	assert.Empty(t, association.Apply(existing, plan))
}
