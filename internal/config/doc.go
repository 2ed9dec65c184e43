// Package config defines the application's configuration structures and loading.
package config
