//go:build windows

package shellsetup

import (
	"errors"
	"os"

	"golang.org/x/sys/windows"
)

// DetectParentShellName names the parent process by its image path, so
// "C:\...\pwsh.exe" and "powershell.exe" both report "pwsh". It returns ""
// when the parent cannot be opened.
func DetectParentShellName() string {
	ppid := os.Getppid()
	if ppid <= 0 {
		return ""
	}

	handle, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, uint32(ppid))
	if err != nil {
		return ""
	}
	defer windows.CloseHandle(handle)

	image, err := processImagePath(handle)
	if err != nil {
		return ""
	}

	name := normalizeShellName(image)
	if name == "powershell" {
		return "pwsh"
	}
	return name
}

// processImagePath grows its buffer until the full path fits.
func processImagePath(handle windows.Handle) (string, error) {
	buffer := make([]uint16, 260)
	for {
		size := uint32(len(buffer))
		err := windows.QueryFullProcessImageName(handle, 0, &buffer[0], &size)
		if err == nil {
			return windows.UTF16ToString(buffer[:size]), nil
		}
		if !errors.Is(err, windows.ERROR_INSUFFICIENT_BUFFER) || len(buffer) >= 32768 {
			return "", err
		}
		buffer = make([]uint16, len(buffer)*2)
	}
}
