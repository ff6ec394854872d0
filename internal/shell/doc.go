// Package shell launches the interactive shell that carries the selected
// preset in STARSHIP_CONFIG, and renders export snippets (POSIX export,
// fish set -gx) for users who prefer to eval the selection in place.
package shell
