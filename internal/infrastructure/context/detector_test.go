package contextcollector

import (
	"errors"
	"testing"
)

func envWith(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func pathWith(binaries ...string) func(string) (string, error) {
	set := map[string]bool{}
	for _, b := range binaries {
		set[b] = true
	}
	return func(name string) (string, error) {
		if set[name] {
			return "/usr/bin/" + name, nil
		}
		return "", errors.New("not found")
	}
}

func TestDetectShell(t *testing.T) {
	tests := []struct {
		name  string
		shell string
		want  string
	}{
		{name: "unset", shell: "", want: "bash"},
		{name: "unknown shell", shell: "/bin/unknownshell", want: "bash"},
		{name: "zsh path", shell: "/usr/local/bin/zsh", want: "zsh"},
		{name: "fish path", shell: "/opt/homebrew/bin/fish", want: "fish"},
		{name: "bare dash", shell: "dash", want: "dash"},
		{name: "tcsh", shell: "/bin/tcsh", want: "tcsh"},
		{name: "nushell not recognised", shell: "/usr/bin/nu", want: "bash"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDetectorFor("linux", envWith(map[string]string{"SHELL": tt.shell}), pathWith())
			if got := d.DetectShell(); got != tt.want {
				t.Fatalf("DetectShell() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		name     string
		goos     string
		binaries []string
		want     string
	}{
		{name: "macOS with brew", goos: "darwin", binaries: []string{"brew"}, want: "macOS (use Homebrew for installations)"},
		{name: "macOS bare", goos: "darwin", want: "macOS"},
		{name: "windows", goos: "windows", binaries: []string{"apt"}, want: "Windows"},
		{name: "debian apt-get only", goos: "linux", binaries: []string{"apt-get"}, want: "Linux (Debian/Ubuntu, use apt)"},
		{name: "fedora", goos: "linux", binaries: []string{"dnf"}, want: "Linux (Fedora/RHEL, use dnf)"},
		{name: "arch", goos: "linux", binaries: []string{"pacman"}, want: "Linux (Arch, use pacman)"},
		{name: "opensuse", goos: "linux", binaries: []string{"zypper"}, want: "Linux (openSUSE, use zypper)"},
		{name: "apt preferred over dnf", goos: "linux", binaries: []string{"dnf", "apt"}, want: "Linux (Debian/Ubuntu, use apt)"},
		{name: "bare linux", goos: "linux", want: "Linux"},
		{name: "other unix probed like linux", goos: "freebsd", binaries: []string{"pacman"}, want: "Linux (Arch, use pacman)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDetectorFor(tt.goos, envWith(nil), pathWith(tt.binaries...))
			if got := d.DetectPlatform(); got != tt.want {
				t.Fatalf("DetectPlatform() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDetectBundlesEnvironment(t *testing.T) {
	d := NewDetectorFor("darwin", envWith(map[string]string{"SHELL": "/bin/zsh"}), pathWith())
	env := d.Detect()
	if env.Shell != "zsh" || env.Platform != "macOS" {
		t.Fatalf("unexpected environment: %+v", env)
	}
}
