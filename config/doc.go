// Package config loads typed settings through small, swappable parts.
//
// Four extension points make up a load:
//   - DataFetcher returns raw bytes (config/fetcher/file reads a file)
//   - Parser decodes bytes into a target, optionally below a path
//     (config/parser/cfg for .cfg files, config/parser/yaml for YAML)
//   - Defaulter fills in unset fields after parsing
//   - Validator rejects the result
//
// Provider wires them together and returns an Fx-friendly constructor.
//
// # Paths
//
// Paths use colon (:) as the separator and select what gets decoded:
//
//	""               -> the whole document
//	"server"         -> the "server" section / mapping
//	"server:listen"  -> one value inside it
//
// For .cfg documents the first element names a section and the second a key.
// YAML paths may be arbitrarily deep.
//
// # Example
//
//	type Listen struct {
//	    Address string `cfg:"address"`
//	}
//
//	provider := config.Provider(&Listen{}, "listener")
//	cfg, err := provider(cfgparser.NewParser(), fetcher)
package config
