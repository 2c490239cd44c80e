package check

import (
	"github.com/samplerlab/modcheck/internal/model"
)

// RegionCCView is a read-only view over a region's modulation
// connections, filtered to a single target and indexed by CC number.
//
// The view borrows the region without copying: the caller must
// guarantee the region outlives the view and is not mutated (by the
// engine's processing thread or otherwise) while the view is in use.
//
// Duplicate connections (same CC, same target) are legal in a region.
// Lookups resolve them deterministically: the first connection in
// region declaration order wins.
type RegionCCView struct {
	region *model.Region
	target model.ModKey
}

// NewRegionCCView builds a view over region's connections whose target
// equals target.
func NewRegionCCView(region *model.Region, target model.ModKey) *RegionCCView {
	return &RegionCCView{region: region, target: target}
}

// Size returns the number of connections in the region whose target
// equals the view's target.
func (v *RegionCCView) Size() int {
	n := 0
	for i := range v.region.Connections {
		if v.match(&v.region.Connections[i]) {
			n++
		}
	}
	return n
}

// Empty reports whether no connection matches the view's target.
func (v *RegionCCView) Empty() bool {
	return v.Size() == 0
}

// At returns the shaping parameters of the first connection, in region
// declaration order, whose target matches the view and whose CC number
// equals cc. Returns a *NotFoundError when no such connection exists.
func (v *RegionCCView) At(cc int) (model.ModParams, error) {
	for i := range v.region.Connections {
		conn := &v.region.Connections[i]
		if v.match(conn) && conn.CC == cc {
			return conn.Params, nil
		}
	}
	return model.ModParams{}, &NotFoundError{CC: cc, Target: v.target}
}

// ValueAt returns only the depth of the connection found by At; same
// failure condition.
func (v *RegionCCView) ValueAt(cc int) (float32, error) {
	params, err := v.At(cc)
	if err != nil {
		return 0, err
	}
	return params.Depth, nil
}

// match reports whether the connection's target compares equal to the
// view's target. Full-field equality; no wildcard or hierarchical
// matching.
func (v *RegionCCView) match(conn *model.Connection) bool {
	return conn.Target == v.target
}
