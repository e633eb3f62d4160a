// Package watch reloads a .cfg file into a store.Holder when it changes on disk.
//
// The watcher observes the file's directory rather than the file itself, so
// editors and tools that save by writing a temporary file and renaming it
// over the original are picked up. Bursts of events are coalesced with a
// debounce delay. A reload that fails to read or parse is logged and the
// previous store stays in place.
package watch
