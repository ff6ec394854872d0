// Package preset enumerates starship preset files in the preset directory,
// resolves a preset name to its file path, and decides the toggle target
// from the active-preset environment variable.
package preset
