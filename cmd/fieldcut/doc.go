// Package main hosts the fieldcut CLI entrypoint and command graph.
//
// The root command is the filter itself: it reads a file or standard input
// and prints the selected delimiter-separated fields of every line. The
// explain subcommand shows how a field specification is parsed and resolved,
// and the config subcommands scaffold and check the TOML configuration.
//
// Keep this package lean: parsing, resolution, and I/O live in the internal
// packages; commands here only wire flags and configuration to them.
package main
