// Package exclusion holds the table of schema properties that must be pruned
// from definitions to break reference cycles.
//
// A [Table] maps a definition name to an ordered set of property names. It
// only grows: [Table.Add] never removes anything, so the resolution loop can
// rely on every attempt excluding at least as much as the previous one.
//
// Tables are persisted as a JSON object:
//
//	{"Order": ["items"], "Item": ["order"]}
//
// [Load] also accepts the same mapping written as YAML, and treats a missing
// file as an empty table.
package exclusion
