// Package lower turns a validated program description into manifest text.
//
// A Program is what the source front end hands to the toolchain: named
// string or integer bindings with their registers, the ordered service
// calls, and for loop shaped programs the accumulator and counter. Lower
// checks that the description has one of the supported shapes and emits the
// manifest through the isa encoders. Jump and label operands are emitted
// with zero placeholder displacements.
//
// Program descriptions can also be written as Starlark scripts, see Loader.
package lower
