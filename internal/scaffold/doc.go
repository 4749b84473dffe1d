// Package scaffold generates new extensions. It powers the "generate:module"
// command: a validated Context is threaded through an ordered Collection of
// builders (directories, info.xml, module files, LICENSE.txt), each of which
// loads what it needs from the Context and then writes its artifacts.
//
// Saving is best-effort. A builder that fails is reported and the remaining
// builders still run; files already written are left in place.
package scaffold
