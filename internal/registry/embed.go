package registry

import "embed"

// TemplateFS holds the built-in template files written into every newly
// scaffolded sub-command directory.
//
//go:embed templates/*
var TemplateFS embed.FS

// actionTemplate returns the built-in action definition template.
func actionTemplate() ([]byte, error) {
	return TemplateFS.ReadFile("templates/" + ActionFileName)
}

// metadataTemplate returns the built-in command metadata template.
func metadataTemplate() ([]byte, error) {
	return TemplateFS.ReadFile("templates/" + MetadataFileName)
}
