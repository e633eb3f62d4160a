// Package cfg implements config.Parser for .cfg documents.
//
// A path selects a section or a single value:
//
//	""            -> the whole document; root entries at the top level, one
//	                 nested map per section
//	"server"      -> the resolved entries of section "server", inherited ones included
//	"server:port" -> the value of key "port" in section "server"
//
// Decoding follows store.Decode: `cfg` struct tags, weak typing, durations
// and vector structs from tuples.
package cfg
