// Package cli defines the command tree, parses and validates user input,
// and handles process-level concerns like exit codes. It translates flags
// and the configuration file into the application's internal configuration.
package cli
