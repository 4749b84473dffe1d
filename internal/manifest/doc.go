// Package manifest models an extension's info.xml manifest. It encodes and
// decodes the XML form and validates the model against an embedded JSON
// Schema before anything is written to disk.
package manifest
