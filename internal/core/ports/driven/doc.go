// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - CoordinateLoader: Reads an N×2 coordinate array from an embedding file
//   - PromptLoader: Reads the newline-delimited labels
//   - DocumentWriter: Serialises and persists the output document
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
