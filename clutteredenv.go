// Package clutteredenv builds the planar subdivision of the unit square
// induced by a set of convex polygonal obstacles.
//
// Every obstacle edge line and the four square borders are intersected
// pairwise; the crossings inside the square become graph nodes, consecutive
// crossings along a line become graph edges, and an angular sweep over that
// embedding recovers the free-space regions between the obstacles as
// clockwise vertex cycles.
//
// Obstacles are consumed purely as collections of halfplane constraints
// (plus their vertex loops, used to recognize obstacle outlines among the
// traced faces). They must lie inside the unit square, be convex, and be
// pairwise non-overlapping; establishing that precondition is the caller's
// job.
package clutteredenv

import "github.com/mpolson64/clutteredenv/arrangement"

type Point = arrangement.Point
type Halfplane = arrangement.Halfplane
type Obstacle = arrangement.Obstacle
type Face = arrangement.Face
type Arrangement = arrangement.Arrangement

// Construct subdivides the unit square around the given obstacles and
// returns the original obstacles, the intersection points, the adjacency
// graph over point ids, and the free-space faces as clockwise point-id
// cycles.
func Construct(obstacles ...*Obstacle) (result *Arrangement, err error) {
	defer func() {
		recoveredErr := arrangement.HandleConstructPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return arrangement.Construct(obstacles), nil
}

// NewObstacle builds an obstacle from a convex vertex loop, deriving the
// halfplane constraints from its edges. The loop may wind either way.
func NewObstacle(vertices []*Point) (result *Obstacle, err error) {
	defer func() {
		recoveredErr := arrangement.HandleConstructPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return arrangement.ObstacleFromVertices(vertices), nil
}
