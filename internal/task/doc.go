// Package task holds the in-memory task store.
//
// A Store owns an ordered collection of Task records and performs all
// create, update, delete and query logic against it. It never touches the
// filesystem; see package taskfile for persistence.
//
// # Identifiers
//
// Ids are positive integers assigned as one more than the highest id the
// store has seen. Deleting a task never lowers that mark, so an id is not
// handed out twice within a process:
//
//	add, add, delete(1), add  ->  ids 1, 2, 3
//
// # Status Values
//
//   - "todo": not started (default for new tasks)
//   - "in_progress": being worked on
//   - "done": complete
//
// ListAll groups tasks in that order. Ties keep the store's relative order,
// which is ascending by id after load and append order afterwards.
package task
