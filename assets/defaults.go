package assets

import (
	_ "embed"
)

// CommandPromptTemplate is the system prompt used when only a command is wanted.
//
//go:embed prompts/command.tmpl
var CommandPromptTemplate string

// ExplainPromptTemplate is the system prompt used when an explanation is requested.
//
//go:embed prompts/explain.tmpl
var ExplainPromptTemplate string
