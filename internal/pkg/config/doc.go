// Package config provides functionality for loading and validating application configuration.
//
// Settings are read from a YAML file and the environment, validated with struct tags,
// and handed to the logger, the cipher processor and the REST server.
package config
