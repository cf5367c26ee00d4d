package animation

import (
	"time"

	"github.com/katalvlaran/pathgrid/core"
	"github.com/katalvlaran/pathgrid/dijkstra"
)

// Transition is one scheduled role change.
type Transition struct {
	ID   string
	Role core.Role
	At   time.Duration // offset from the start of the run
}

// Plan converts a search result into its transition sequence: every node of
// the visitation trace becomes RoleVisited, then every node of the path
// becomes RolePath, skipping the start and end nodes. The k-th emitted
// transition is placed at k·step, so offsets keep increasing across the two
// phases. A NoPath result yields only the visited phase.
func Plan(res *dijkstra.Result, step time.Duration) []Transition {
	if res == nil {
		return nil
	}

	out := make([]Transition, 0, len(res.Trace)+len(res.Path))
	emit := func(id string, role core.Role) {
		if id == res.Start || id == res.End {
			return
		}
		out = append(out, Transition{ID: id, Role: role, At: time.Duration(len(out)) * step})
	}
	for _, v := range res.Trace {
		emit(v.ID, core.RoleVisited)
	}
	for _, id := range res.Path {
		emit(id, core.RolePath)
	}

	return out
}

// Duration returns the offset of the last transition of plan.
func Duration(plan []Transition) time.Duration {
	if len(plan) == 0 {
		return 0
	}

	return plan[len(plan)-1].At
}
