package domain

// DefaultShell is reported when $SHELL is unset or unrecognised.
const DefaultShell = "bash"

// KnownShells are the shells recognised from $SHELL.
var KnownShells = map[string]bool{
	"bash": true,
	"zsh":  true,
	"fish": true,
	"sh":   true,
	"ksh":  true,
	"dash": true,
	"tcsh": true,
	"csh":  true,
}

// IsKnownShell reports whether name is one of KnownShells.
func IsKnownShell(name string) bool {
	return KnownShells[name]
}
