package domain

import "go.trai.ch/zerr"

var (
	// ErrPathRequired is returned when no folder to scan was provided.
	ErrPathRequired = zerr.New("a folder to scan is required")

	// ErrFolderNotFound is returned when the folder to scan does not exist.
	ErrFolderNotFound = zerr.New("folder not found")

	// ErrNodeNotFound is returned when a named project or package does not
	// exist in the built graph.
	ErrNodeNotFound = zerr.New("node not found")
)
