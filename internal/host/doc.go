// Package host talks to a running CiviCRM site so a freshly generated
// extension can be registered and enabled there. The site is optional:
// when none is configured, registration is skipped with a note.
package host
