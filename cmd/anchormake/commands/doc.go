// Package commands defines the anchormake CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - login    Authenticate against the AnkerMake cloud and store the session
//   - devices  List the FDM printers registered to the account
//   - status   Show the stored session and its expiry
//   - logout   Discard the stored session
//
// # Configuration
//
// The root command merges flags, environment variables (ANCHORMAKE_*), and
// an optional config file at <home>/anchormake.yaml before any subcommand
// runs, then builds the shared app context.
package commands
