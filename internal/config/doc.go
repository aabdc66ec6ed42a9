// Package config defines the application's configuration structures and
// loads them from the environment and optional config files via viper.
package config
