// Package logging constructs the zap logger used by the campusnav CLI.
package logging
