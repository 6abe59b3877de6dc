// Package config loads, normalizes, and validates alignwarm configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, loads an optional dotenv file, and honours
// environment fallbacks such as HF_TOKEN. Downstream code receives sanitized
// paths and a resolved torch device without repeating that logic.
package config
