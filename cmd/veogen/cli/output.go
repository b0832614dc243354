package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

var (
	headerStyle  = color.New(color.FgCyan, color.Bold)
	successStyle = color.New(color.FgGreen)
	labelStyle   = color.New(color.FgWhite, color.Faint)
	warningStyle = color.New(color.FgYellow, color.Bold)
)

const (
	checkmark = "✓"
	xmark     = "✗"
)

// printHeader prints a section title with an underline matched to its
// display width, accounting for wide characters.
func printHeader(title string) {
	headerStyle.Println(title)
	fmt.Println(strings.Repeat("─", runewidth.StringWidth(title)))
}

// printField prints an aligned label/value pair.
func printField(label string, value any) {
	labelStyle.Printf("  %-12s", label+":")
	fmt.Printf(" %v\n", value)
}

func printSuccess(format string, args ...any) {
	successStyle.Printf(checkmark+" "+format+"\n", args...)
}

func printWarning(format string, args ...any) {
	warningStyle.Printf("! "+format+"\n", args...)
}
