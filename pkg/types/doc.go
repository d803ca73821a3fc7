// Package types defines the desktop icon data model, the category and bucket
// taxonomy, layout geometry, the collaborator interfaces the organizer is
// built from, and the standard errors shared across desksort.
package types
