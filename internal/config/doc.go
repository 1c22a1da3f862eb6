// Package config provides configuration structures and utilities for secheck.
// It defines the defaults of every command, the optional YAML configuration
// file that extends the rule word lists, and report output preferences.
package config
