// Package display provides the startup banner.
package display

import (
	"fmt"
	"os"

	"github.com/backmassage/fujitag/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, ` _____       _ _ _____
|  ___|   _ (_|_)_   _|_ _  __ _
| |_ | | | || | | | |/ _`+"`"+` |/ _`+"`"+` |
|  _|| |_| || | | | | (_| | (_| |
|_|   \__,_|/ |_| |_|\__,_|\__, |
          |__/             |___/
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
