// Package persist serializes the path store to disk and back.
//
// Two formats are written side by side on every save:
//
//   - paths.bin: a compact versioned binary snapshot, read first on load.
//   - paths.json: a human-readable snapshot of the same paths plus the sector
//     grid, used as the fallback when the binary file is missing, corrupt, or
//     carries an unknown version.
//
// Writes are not transactional; a crash mid-write can corrupt paths.bin,
// which the JSON fallback absorbs on the next load. A completely absent
// snapshot is not an error: it yields an empty, valid store.
//
// Binary layout (little-endian): int32 version, int32 count, then per path
// uint64 key, int32 name length + name bytes, 3xfloat32 start, 3xfloat32
// end, float32 distance, int32 use count, int32 waypoint count, and
// 3xfloat32 per waypoint.
package persist
