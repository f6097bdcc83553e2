// Package database connects to the game server's MySQL database.
//
// The connection is optional: the path cache is fully functional without it.
// When present, the database supplies the named points of interest (spawn
// points, towns, mission hubs) whose pairwise routes are pre-baked into the
// cache, so every peer that reads the same table warms the same entries.
package database
