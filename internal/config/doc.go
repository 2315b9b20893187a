// Package config defines astpass configuration: which passes run, how reports
// are rendered and how logging is set up. Configuration is read from YAML
// files and can be overridden with ASTPASS_* environment variables.
package config
