// Package todo defines the todo record and the rules for turning user
// supplied tokens into record references.
//
// # Identifier Resolution
//
// Remove, Done and Search accept free-form tokens. Each token is classified
// on its own:
//   - a token that parses as a base-10 int64 refers to a todo by id
//   - anything else refers to a todo by title
//
// A title that looks like a number ("42") can therefore never be addressed by
// title from the command line. This is a known limitation.
//
// # Titles
//
// Titles are stored in Unicode NFC so that visually identical titles collide
// on the unique constraint regardless of how they were typed.
package todo
