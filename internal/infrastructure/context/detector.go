package contextcollector

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/doeshing/hey-go/internal/domain"
	"github.com/doeshing/hey-go/internal/ports"
)

// platformProbe describes one OS flavour given a PATH lookup.
type platformProbe func(has func(string) bool) string

// platformProbes dispatches on GOOS. Anything not listed is probed like Linux.
var platformProbes = map[string]platformProbe{
	"darwin":  probeDarwin,
	"windows": probeWindows,
	"linux":   probeLinux,
}

// packageManagers are checked in order; the first one found wins.
var packageManagers = []struct {
	binaries []string
	platform string
}{
	{binaries: []string{"apt", "apt-get"}, platform: "Linux (Debian/Ubuntu, use apt)"},
	{binaries: []string{"dnf"}, platform: "Linux (Fedora/RHEL, use dnf)"},
	{binaries: []string{"pacman"}, platform: "Linux (Arch, use pacman)"},
	{binaries: []string{"zypper"}, platform: "Linux (openSUSE, use zypper)"},
}

// Detector implements ports.EnvironmentDetector from environment variables and PATH.
type Detector struct {
	goos     string
	getenv   func(string) string
	lookPath func(string) (string, error)
}

// NewDetector builds a detector for the running system.
func NewDetector() *Detector {
	return &Detector{
		goos:     runtime.GOOS,
		getenv:   os.Getenv,
		lookPath: exec.LookPath,
	}
}

// NewDetectorFor builds a detector with injected OS, environment and PATH lookup.
func NewDetectorFor(goos string, getenv func(string) string, lookPath func(string) (string, error)) *Detector {
	d := NewDetector()
	if goos != "" {
		d.goos = goos
	}
	if getenv != nil {
		d.getenv = getenv
	}
	if lookPath != nil {
		d.lookPath = lookPath
	}
	return d
}

// DetectShell returns the basename of $SHELL when it is a known shell, else bash.
func (d *Detector) DetectShell() string {
	shellPath := d.getenv("SHELL")
	if shellPath == "" {
		return domain.DefaultShell
	}
	name := filepath.Base(shellPath)
	if domain.IsKnownShell(name) {
		return name
	}
	return domain.DefaultShell
}

// DetectPlatform returns a human-readable OS description for the prompt.
func (d *Detector) DetectPlatform() string {
	probe, ok := platformProbes[d.goos]
	if !ok {
		probe = probeLinux
	}
	return probe(d.has)
}

// Detect bundles shell and platform.
func (d *Detector) Detect() domain.Environment {
	return domain.Environment{Shell: d.DetectShell(), Platform: d.DetectPlatform()}
}

func (d *Detector) has(name string) bool {
	_, err := d.lookPath(name)
	return err == nil
}

func probeDarwin(has func(string) bool) string {
	if has("brew") {
		return "macOS (use Homebrew for installations)"
	}
	return "macOS"
}

func probeWindows(func(string) bool) string {
	return "Windows"
}

func probeLinux(has func(string) bool) string {
	for _, pm := range packageManagers {
		for _, bin := range pm.binaries {
			if has(bin) {
				return pm.platform
			}
		}
	}
	return "Linux"
}

var _ ports.EnvironmentDetector = (*Detector)(nil)
