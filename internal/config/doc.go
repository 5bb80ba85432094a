// Package config manages user-level settings stored at ~/.foundry/config.yaml
// and environment variables prefixed with FOUNDRY_. It also loads a
// project's .env file so those variables can be set per project.
package config
