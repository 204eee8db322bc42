// Package cli implements the atsctl command tree: session commands, read
// and write commands for the recruiting resources, and the local session
// server.
//
// Commands share one [App], which loads configuration, opens the local
// session database and builds the gateway lazily, so commands such as
// version run without touching the backend.
package cli
