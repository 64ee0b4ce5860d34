package app

import (
	"os/exec"
	"runtime"
)

// clipboardTool is a command that copies its standard input to the system
// clipboard.
type clipboardTool struct {
	name string
	args []string
}

var windowsClipboardTools = []clipboardTool{
	{name: "clip.exe"},
	{name: "clip"},
	{name: "powershell", args: []string{"-NoLogo", "-NoProfile", "-Command", "Set-Clipboard"}},
	{name: "powershell.exe", args: []string{"-NoLogo", "-NoProfile", "-Command", "Set-Clipboard"}},
	{name: "pwsh", args: []string{"-NoLogo", "-NoProfile", "-Command", "Set-Clipboard"}},
}

// Tried on every platform, in order: macOS, Wayland, then X11.
var clipboardTools = []clipboardTool{
	{name: "pbcopy"},
	{name: "wl-copy"},
	{name: "xclip", args: []string{"-selection", "clipboard"}},
	{name: "xsel", args: []string{"--clipboard", "--input"}},
}

func detectClipboard() ([]string, bool) {
	return detectClipboardInternal(runtime.GOOS, exec.LookPath)
}

// detectClipboardInternal returns the argv of the first clipboard tool found
// on the path.
func detectClipboardInternal(goos string, lookPath func(string) (string, error)) ([]string, bool) {
	candidates := clipboardTools
	if goos == "windows" {
		candidates = append(append([]clipboardTool{}, windowsClipboardTools...), clipboardTools...)
	}

	for _, tool := range candidates {
		path, err := lookPath(tool.name)
		if err != nil || path == "" {
			continue
		}
		return append([]string{path}, tool.args...), true
	}
	return nil, false
}
