// Package storage writes the generated site files into the output directory.
//
// The directory is created on first use and reused on later runs. Files are
// written through a temporary sibling and renamed into place so a reader never
// sees a half-written page.
package storage
