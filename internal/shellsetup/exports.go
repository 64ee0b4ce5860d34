package shellsetup

import (
	"fmt"
	"strings"
	"unicode"
)

// Export is one variable the maskform wrapper loads into the shell.
type Export struct {
	Name  string
	Value string
}

// VariableName maps a profile name to its MASKFIELD_ variable: upper case,
// with every character outside [A-Z0-9_] replaced by an underscore.
func VariableName(profile string) string {
	var b strings.Builder
	b.WriteString("MASKFIELD_")
	for _, r := range strings.ToUpper(profile) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
			b.WriteRune(r)
			continue
		}
		b.WriteByte('_')
	}
	return b.String()
}

// FormatExports renders exports as statements in the given dialect
// ("sh", "fish" or "pwsh"). Values are always single-quoted, so nothing in
// them is expanded when the file is sourced.
func FormatExports(shell string, exports []Export) string {
	var b strings.Builder
	for _, export := range exports {
		name := VariableName(export.Name)
		switch dialect(shell) {
		case "fish":
			fmt.Fprintf(&b, "set -gx %s %s\n", name, quoteFish(export.Value))
		case "pwsh":
			fmt.Fprintf(&b, "$env:%s = %s\n", name, quotePwsh(export.Value))
		default:
			fmt.Fprintf(&b, "%s=%s; export %s\n", name, quoteSh(export.Value), name)
		}
	}
	return b.String()
}

func quoteSh(value string) string {
	return "'" + strings.ReplaceAll(value, "'", `'\''`) + "'"
}

func quoteFish(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	value = strings.ReplaceAll(value, "'", `\'`)
	return "'" + value + "'"
}

func quotePwsh(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "''") + "'"
}
