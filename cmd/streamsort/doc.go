// Package main hosts the StreamSort CLI entrypoint and command graph.
//
// Every one-shot command loads the queue from the configured store, applies a
// single operation through a session, and writes the queue back when the
// operation changed it. The shell command runs the numbered menu against one
// session for its whole lifetime. Configuration and logger setup are resolved
// once per invocation by commandContext.
package main
