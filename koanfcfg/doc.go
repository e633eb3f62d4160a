// Package koanfcfg implements koanf.Parser for the .cfg format, so .cfg
// files can be loaded with github.com/knadh/koanf/v2 alongside YAML or env
// sources:
//
//	k := koanf.New(".")
//	err := k.Load(file.Provider("test.cfg"), koanfcfg.Parser())
//	vec := k.Ints("parent.vec")
//
// Root entries become top-level keys and each section a nested map.
// Inherited keys are resolved before koanf sees them.
package koanfcfg
