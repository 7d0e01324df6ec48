package platform

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	StartCommand   = "start"
	WindowsCmdFlag = "/c"
	AndroidCommand = "am"
)

// browserCommand returns the launcher invocation for goos
func browserCommand(goos, url string) (string, []string, error) {
	switch goos {
	case OSDarwin:
		return OpenCommand, []string{url}, nil
	case OSWindows:
		return CmdCommand, []string{WindowsCmdFlag, StartCommand, "", url}, nil
	case OSLinux, "freebsd", "openbsd", "netbsd":
		return XDGOpenCommand, []string{url}, nil
	case OSAndroid:
		return AndroidCommand, []string{"start", "-a", "android.intent.action.VIEW", "-d", url}, nil
	default:
		return "", nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}

// OpenURL opens url in the default browser without waiting for it to exit
func OpenURL(url string) error {
	name, args, err := browserCommand(runtime.GOOS, url)
	if err != nil {
		return err
	}
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", name, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
