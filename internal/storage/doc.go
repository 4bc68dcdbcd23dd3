// Package storage manages the output directory that reports are written to.
//
// Files are written through a temporary file in the same directory and renamed
// into place, so an interrupted run never leaves a half-written report behind.
// A leading "~/" in the directory is expanded to the user's home directory.
package storage
