// Package yaml implements config.Parser for YAML documents using
// github.com/goccy/go-yaml.
//
// Paths are translated to goccy/go-yaml path expressions, so only the
// selected node is decoded:
//
//	""                -> whole document
//	"server"          -> $.server
//	"server:listener" -> $.server.listener
package yaml
