// Package circular breaks reference cycles between definitions.
//
// A [Resolver] prunes the properties recorded in an [exclusion.Table] from a
// definition body before the definition is written to its own file:
//
//	r := circular.NewResolver(table, logger)
//	r.Resolve("Order", orderNode) // drops excluded keys from required and properties
//
// [ParseDiagnostic] turns the bundler's cycle report into the [Cycle] that
// should be added to the table next. It accepts exactly one form of message
//
//	Circular $ref pointer found at <location>#<pointer>
//
// and rejects everything else with an [oaserrors.DiagnosticError].
package circular
