// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Normalize and Assemble are pure functions; MapBuilder sequences them
// between the loaders and the document writer.
package services
