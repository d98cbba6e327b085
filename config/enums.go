package config

// Specification of compiled bytecode output.
// ENUM(hex, binary)
type OutputFormat int
