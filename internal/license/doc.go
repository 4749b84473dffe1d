// Package license holds the catalog of licenses a new extension can be
// published under. The catalog is embedded in the binary: an index
// (data/licenses.yaml) plus one plain-text body per license.
package license
