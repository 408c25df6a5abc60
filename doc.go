// Package motionplan implements sampling-based motion planners — RRT,
// RRT-Connect, RRT*, and PRM — generic over the state-space abstraction in
// go.viam.com/motionplan/spatialmath. Given a ProblemDefinition, a
// StateValidityChecker, and a time budget, a planner produces a
// piecewise-linear Path whose samples are all valid, or a structured
// PlanningError.
package motionplan
