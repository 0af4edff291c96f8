// Package store persists campusnav accounts and saved routes in SQLite.
//
// Passwords are stored as bcrypt hashes. Saved routes carry a random UUID and
// the rendered route text, so listing never needs the graph that produced them.
package store
