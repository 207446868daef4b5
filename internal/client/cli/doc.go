// Package cli provides the interactive HouseConnect command-line client.
//
// It wires configuration, local storage, the REST client, the session store
// and the services, then runs a REPL. Typical flow: restore the session in
// the background, start a connectivity watcher and execute user commands.
//
// Every command maps to a route. Before a view runs the route guard decides:
// public routes always run, protected ones wait for the session to finish
// hydrating and then run, redirect to login, or refuse when the signed-in
// role does not match.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, Navigate, StartOnlineStatusWatcher and runREPL for details.
package cli
