// Package linkfile reads and writes the .linked_env file that pins a
// directory to a specific Python environment, overriding marker detection.
// The file holds a single line of the form "<kind>;<locator>".
package linkfile
