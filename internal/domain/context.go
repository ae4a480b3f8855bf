package domain

// Environment describes the user's shell and OS for prompt construction.
type Environment struct {
	Shell    string
	Platform string
}
