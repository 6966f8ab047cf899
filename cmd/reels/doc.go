// Package main hosts the Reels CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into REST
// calls against the Reels backend: authentication, the seven content
// generators, history browsing, subscription management, and PDF export. It
// centralizes configuration resolution, session persistence, and structured
// logging setup so subcommands can focus on user experience instead of
// wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
