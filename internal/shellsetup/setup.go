package shellsetup

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"strconv"
	"strings"
)

type ParentShellFunc func() string

type Config struct {
	DetectParent ParentShellFunc
}

// PrintSetup writes a shell function, maskform, that runs the interactive
// form and loads the submitted raw values into MASKFIELD_* variables.
func PrintSetup(w io.Writer, shellOverride string, cfg Config) {
	shell := ResolveShell(shellOverride, cfg)

	mpath, err := os.Executable()
	if err != nil {
		mpath = "maskfield"
	}
	quoted := strconv.Quote(mpath)

	switch shell {
	case "fish":
		fmt.Fprintf(w, `function maskform
    set -l tmp /tmp
    set -q TMPDIR; and set tmp $TMPDIR
    set -l result_file (mktemp "$tmp/maskfield_result.XXXXXX"); or return 1

    command %s --export fish --result $result_file $argv
    set -l rc $status

    if test $rc -eq 0 -a -s "$result_file" -a ! -L "$result_file" -a -O "$result_file"
        source $result_file
    end
    rm -f $result_file 2>/dev/null
    return $rc
end
`, quoted)
	case "pwsh":
		fmt.Fprintf(w, `function maskform {
    param([Parameter(ValueFromRemainingArguments=$true)][string[]]$Args)
    $resultFile = [System.IO.Path]::GetTempFileName()
    try {
        & %s --export pwsh --result $resultFile @Args
        if ($LASTEXITCODE -eq 0 -and (Test-Path $resultFile -PathType Leaf)) {
            $script = Get-Content $resultFile -Raw -ErrorAction SilentlyContinue
            if (-not [string]::IsNullOrEmpty($script)) {
                Invoke-Expression $script
            }
        }
    } finally {
        Remove-Item $resultFile -ErrorAction SilentlyContinue
    }
}
`, quoted)
	default:
		fmt.Fprintf(w, `maskform() {
    result_file=$(mktemp "${TMPDIR:-/tmp}/maskfield_result.XXXXXX") || return 1

    command %s --export sh --result "$result_file" "$@"
    rc=$?

    if [ "$rc" -eq 0 ] && [ -s "$result_file" ] && [ ! -L "$result_file" ] && [ -O "$result_file" ]; then
        . "$result_file"
    fi
    rm -f "$result_file" 2>/dev/null
    return $rc
}
`, quoted)
	}
}

// ResolveShell picks the export dialect: the override when given, else the
// detected login or parent shell. Shells without their own dialect use sh.
func ResolveShell(shellOverride string, cfg Config) string {
	parent := cfg.DetectParent
	if parent == nil {
		parent = DetectParentShellName
	}

	shell := normalizeShellName(shellOverride)
	if shell == "" {
		shell = detectShell(parent)
	}
	return dialect(canonicalShellName(shell))
}

func dialect(shell string) string {
	switch shell {
	case "fish", "pwsh":
		return shell
	default:
		return "sh"
	}
}

func detectShell(parent ParentShellFunc) string {
	return detectShellInternal(runtime.GOOS, os.Getenv, parent)
}

func detectShellInternal(goos string, getenv func(string) string, parent ParentShellFunc) string {
	if shell := canonicalShellName(normalizeShellName(getenv("SHELL"))); shell != "" {
		return shell
	}

	if parent != nil {
		if shell := canonicalShellName(normalizeShellName(parent())); shell != "" {
			return shell
		}
	}

	if strings.EqualFold(goos, "windows") {
		if shell := canonicalShellName(normalizeShellName(getenv("COMSPEC"))); shell != "" {
			switch shell {
			case "pwsh", "cmd":
				return shell
			}
		}
		return "pwsh"
	}

	return "bash"
}

func canonicalShellName(name string) string {
	switch name {
	case "powershell":
		return "pwsh"
	default:
		return name
	}
}

func normalizeShellName(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	value = extractExecutable(value)
	if value == "" {
		return ""
	}

	value = strings.Trim(value, `"'`)
	value = strings.ReplaceAll(value, "\\", "/")
	base := path.Base(value)
	base = strings.ToLower(base)
	base = strings.TrimSuffix(base, ".exe")
	return strings.TrimSpace(base)
}

func extractExecutable(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	if strings.HasPrefix(value, "\"") {
		value = value[1:]
		if idx := strings.IndexRune(value, '"'); idx >= 0 {
			return value[:idx]
		}
		return value
	}

	if strings.HasPrefix(value, "'") {
		value = value[1:]
		if idx := strings.IndexRune(value, '\''); idx >= 0 {
			return value[:idx]
		}
		return value
	}

	if idx := strings.IndexAny(value, " \t"); idx >= 0 {
		return value[:idx]
	}

	return value
}
