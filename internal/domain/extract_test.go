package domain

import "testing"

func TestExtractCommand(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  string
	}{
		{name: "fenced block", reply: "```\nls -la\n```", want: "ls -la"},
		{name: "fenced block with language", reply: "```bash\nfind . -name '*.go'\n```", want: "find . -name '*.go'"},
		{name: "inline backticks", reply: "`echo hi`", want: "echo hi"},
		{name: "empty", reply: "", want: ""},
		{name: "plain command", reply: "ls -la", want: "ls -la"},
		{name: "leading blank lines", reply: "\n\n  du -sh *  \n", want: "du -sh *"},
		{name: "explanation follows command", reply: "tar -xzf a.tgz\n-x extract\n-z gzip", want: "tar -xzf a.tgz"},
		{name: "two backticks kept", reply: "``", want: "``"},
		{name: "only fence falls back to first line", reply: "```", want: "```"},
		{name: "only blank lines", reply: "\n   \n", want: ""},
		{name: "crlf line endings", reply: "```\r\nps aux\r\n```\r\n", want: "ps aux"},
		{name: "backticks not stripped when unbalanced", reply: "`ls -la", want: "`ls -la"},
		{name: "inner whitespace trimmed after stripping", reply: "` pwd `", want: "pwd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractCommand(tt.reply); got != tt.want {
				t.Fatalf("ExtractCommand(%q) = %q, want %q", tt.reply, got, tt.want)
			}
		})
	}
}
