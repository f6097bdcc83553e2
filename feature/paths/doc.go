// Package paths exposes the path cache over HTTP.
//
// It resolves routes between world positions, triggers pre-baking of the
// known location pairs, reports store statistics and persists the cache on
// demand. Route resolution never fails; on a total miss the service answers
// with a freshly generated or interpolated path.
package paths
