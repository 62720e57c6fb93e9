package report

import "github.com/atotto/clipboard"

// CopyToClipboard writes the report to the system clipboard. Clipboard
// failures (headless terminals, missing xclip) are swallowed; the text
// is returned either way so the caller can still show it.
func CopyToClipboard(text string) (string, bool) {
	if err := clipboard.WriteAll(text); err != nil {
		return text, false
	}
	return text, true
}
