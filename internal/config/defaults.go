package config

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"default_command":     "hello",
		"default_sub_command": "new",
		"fetch_timeout":       120,
		"show_progress":       true,
		"no_color":            false,
		"git_cmd":             "git",
	}
}

// GetDefaultConfigTemplate returns the JSON written by 'spring config init'.
// Kept as a literal so the generated file carries comments-by-naming rather
// than bare values.
func GetDefaultConfigTemplate() string {
	return `{
  "default_command": "hello",
  "default_sub_command": "new",
  "fetch_timeout": 120,
  "show_progress": true,
  "no_color": false,
  "git_cmd": "git"
}
`
}
