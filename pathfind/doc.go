// Package pathfind answers "what is the fastest route from A to B for this
// vehicle?" on a core.Graph.
//
// The search distinguishes two failure modes that look alike to a driver but
// mean different things to a planner:
//
//   - FailureNoPath: the network itself has no directed route from start to end.
//   - FailureIneligible: routes exist, but every one of them uses a damaged
//     road the selected vehicle cannot travel on.
//
// Both are reported through Result.Failure; only invalid input (nil graph,
// unknown vehicle, unknown node) is returned as an error.
//
// Road cost is vehicle.Weight evaluated with the selected vehicle for every
// road, regardless of the class a road is labeled with. Ties are resolved by
// the distance engine towards the lowest node id, so repeated queries return
// identical results.
package pathfind
