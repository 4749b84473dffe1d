// Package config manages user-level settings stored at ~/.civix/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the default author, email, and license for new extensions, and the
// connection settings of the CiviCRM site new extensions are enabled on.
package config
