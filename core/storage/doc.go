// Package storage provides the object-storage client used for snapshot
// exchange.
//
// Peers that fall far behind (or start empty) do not replay the incremental
// sync protocol; instead one peer publishes its binary path snapshot to a
// shared S3/MinIO bucket and the other bootstraps from it. The Client
// interface covers exactly the operations that workflow needs and is mocked
// in package mocks for tests.
package storage
