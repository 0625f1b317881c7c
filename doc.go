// Package pretty renders arbitrary Go values as human-readable text.
//
// The rendering is driven by the static type of a value. Every type falls
// into exactly one [Shape], and each shape has a fixed rule:
//
//   - [ShapeRange] — slices, arrays, maps and iterator funcs: {1, 2, 3}
//   - [ShapeTuple] — structs, field by field: (1, a, true)
//   - [ShapePair] — [Pair]: (1: a)
//   - [ShapeOptional] — pointers, [Optional] and sql.Null: the value or nil
//   - [ShapeUnion] — interfaces: the dynamic value or <nil>
//   - [ShapeUnit] — structs without fields: struct{}
//   - [ShapeString] — strings, written as they are
//   - [ShapeAtomic] — numbers, booleans and types with a String, Error or
//     Format method, written with fmt's %v; those methods win over any
//     other shape, also for named strings and unexported fields
//   - [ShapeOpaque] — funcs, channels and unsafe pointers, written as their
//     type name
//
// The central entry points are [Write] and [Sprint]:
//
//	pretty.Write(os.Stdout, map[string][]int{"a": {1, 2}})
//	s := pretty.Sprint([]int{1, 2, 3}) // {1, 2, 3}
//
// # Indentation
//
// A range or struct whose children are themselves ranges or structs breaks
// each child onto its own line, indented one step deeper:
//
//	{
//	    {1, 2}
//	    , {3, 4}
//	}
//
// The depth lives in a [Printer], so separate printers never share it.
//
// # Typed Output
//
// [TypedPrinter], [WriteTyped] and [SprintTyped] write the type name before
// each value:
//
//	pretty.SprintTyped([]int{1, 2}) // []int({1, 2})
//
// # Directives
//
// [Printer.Print] and [TypedPrinter.Print] accept [Directive] values that
// act on the output instead of being formatted: [Endl], [Flush], [Width]
// and [Base].
//
// # Configuration
//
// Every literal is configurable through [Option] values or a YAML document
// read by [LoadConfig]:
//
//	indent_size: 2
//	range: {prefix: "[", delimiter: ", ", suffix: "]", indent: true}
//
// # Errors
//
// Formatting a value never fails. Writer errors are returned unchanged;
// configuration problems wrap [ErrInvalidConfig].
package pretty
