// Package closer owns the teardown discipline for resources whose
// destruction can fail.
//
// Ownership boundary:
//   - the Closer contract and its composite implementations (Group, Seq,
//     Option, Box, File)
//   - the Closing owning wrapper: explicit close, extraction, scope-exit
//     close
//   - ordered multi-resource teardown via Stack
//
// The package adds no synchronization of its own; a wrapped value belongs
// to exactly one goroutine at a time.
package closer
