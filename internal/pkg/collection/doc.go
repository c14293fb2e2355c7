// Package collection implements the resource collection controller shared by
// every admin page: an in-memory list store refreshed from the backend of
// record, page state, search and filter predicates, mutations with optimistic
// updates and rollback, and the editor region state machine.
package collection
