// Package pantry turns free-text ingredient input into the normalized set
// of items the user has on hand. It covers CLI arguments as well as the
// one-shot interactive prompt used when no arguments were given.
package pantry
