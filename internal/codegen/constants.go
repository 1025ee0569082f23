// Package codegen provides code generation helpers and constants.
package codegen

import "fmt"

// Variable names used in generated code
const (
	InputName  = "input"
	StateName  = "state"
	SymbolName = "sym"
	IndexName  = "i"
)

// Table name suffixes for the per-matcher lookup tables.
const (
	SymbolTableSuffix     = "Symbols"
	TransitionTableSuffix = "Trans"
	AcceptTableSuffix     = "Accept"
)

// TableName returns the unexported name of a per-matcher lookup table.
func TableName(name, suffix string) string {
	return fmt.Sprintf("%s%s", LowerFirst(name), suffix)
}

// LowerFirst converts the first character of a string to lowercase.
func LowerFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]|0x20) + s[1:]
}

// UpperFirst converts the first character of a string to uppercase.
func UpperFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]&^0x20) + s[1:]
}
