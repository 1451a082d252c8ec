// Parses flags and dispatches subcommands for the stevedore CLI.
//
// The CLI accepts the following global flags:
//
//	-q, --quiet   Suppress informational output.
//	-d, --debug   Enable debug output.
//	-H, --host    Override the engine endpoint.
//
// Flags override build-time defaults set via linker flags and values from
// the settings file. After parsing, the global logger is reconfigured to
// reflect the final level before the subcommand runs.
package cli
