package display

import (
	"os"

	"github.com/schollz/progressbar/v3"

	"github.com/backmassage/mediasweep/internal/term"
)

// NewProgress returns a bar for total steps. It draws to stderr only when
// stderr is a TTY and visible is true; otherwise it is silent so piped and
// verbose output stays line-oriented.
func NewProgress(total int, description string, visible bool) *progressbar.ProgressBar {
	if !visible || !term.IsTerminal(os.Stderr) {
		return progressbar.DefaultSilent(int64(total), description)
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription(description),
		progressbar.OptionClearOnFinish(),
	)
}
