package display

import (
	"fmt"
	"io"

	"github.com/backmassage/mediasweep/internal/term"
)

// PrintBanner writes the ASCII art banner to w, in magenta when colors are on.
func PrintBanner(w io.Writer) {
	fmt.Fprint(w, term.Magenta)
	fmt.Fprint(w, `                    _ _
 _ __ ___   ___  __| (_) __ _ _____      _____  ___ _ __
| '_ `+"`"+` _ \ / _ \/ _`+"`"+` | |/ _`+"`"+` / __\ \ /\ / / _ \/ _ \ '_ \
| | | | | |  __/ (_| | | (_| \__ \ V  V /  __/  __/ |_) |
|_| |_| |_|\___|\__,_|_|\__,_|___/ \_/\_/ \___|\___| .__/
                                                   |_|
`)
	if term.Enabled() {
		fmt.Fprintln(w, term.NC)
	}
}
