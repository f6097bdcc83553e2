// Package sync keeps path caches converged across peer nodes.
//
// Peers compare order-independent checksums over their key sets and exchange
// full path lists when they disagree. Merging is insert-if-absent: a key
// collision with different waypoint content keeps the local entry and logs
// the conflict. Freshly generated paths are additionally pushed to peers as
// they happen.
//
// Full snapshots can also be published to and restored from object storage,
// which lets a cold node bootstrap without replaying per-path exchanges.
package sync
