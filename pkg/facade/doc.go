// Package facade binds named, typed attributes to elements of a parsed X12
// document tree.
//
// A facade wraps one loop of the tree (a LoopBridge) and reads its fields
// through bindings declared once per facade type:
//
//	var nm1LastName = facade.Text("last_name", facade.At("NM1", 3))
//	var isaDate     = facade.Bind("interchange_date", facade.At("ISA", 9), facade.D8)
//
// Every read locates the segment among the immediate children of the wrapped
// loop, extracts the element and decodes it. Nothing is cached and the tree is
// never mutated, so facades over a shared tree are safe for concurrent reads.
//
// Missing segments or elements are reported as "no value" (ok == false) and
// never as errors. Errors are reserved for elements that are present but do
// not decode: MalformedDate, MalformedTime, MalformedAmount and, for strict
// coded bindings, UnknownCode.
package facade
