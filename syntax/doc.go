// Package syntax classifies rendered line text into highlight categories.
//
// Classification is driven by immutable per-language Rules tables and runs one
// line at a time. The only state carried between lines is whether the line
// ends inside a block comment; callers feed that flag back in as the entry
// state of the following line.
package syntax
