// Package merge generates and incrementally patches the view-class
// artifact.
//
// The artifact is the host engine's class-based script form. Three machine
// owned regions (fields, properties, initializer) are delimited by marker
// comment lines; everything outside them is hand-written and preserved
// byte for byte across merges.
//
// The engine never parses the artifact. It locates the first class
// declaration with a regular expression and finds the class body by
// counting braces from the declaration's opening brace. That is a known
// simplification: it assumes a single top-level class and no nested types
// carrying the same marker text. Upgrade to a structural parser before
// lifting that assumption.
package merge
