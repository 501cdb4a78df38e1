package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/fpang/va-creator/internal/grammar"
)

// HandleParseError prints a rejected command line's error to errOut and,
// unless the grammar itself was fine, the usage text to out.
func HandleParseError(out, errOut io.Writer, err error) {
	fmt.Fprintln(errOut, err.Error())

	var parseErr *grammar.ParseError
	if errors.As(err, &parseErr) && !parseErr.ShowUsage() {
		return
	}
	PrintUsage(out)
}

// PrintUsage prints the grammar summary.
func PrintUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: va-creator <token> FROM <start> TO <end> <type>")
	fmt.Fprintln(w, "   or: va-creator <token> FOR [id1,id2,id3,...] <type>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  FROM <start> TO <end>   Creates analytics for all stream IDs from <start> to <end>, inclusive.")
	fmt.Fprintln(w, "  FOR [list]              Creates analytics for each stream ID in the comma-separated list. Spaces are allowed.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "<type> must be 'od' for Object Detection or 'sva' for Smart VA.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  va-creator abc123 FROM 10 TO 15 od")
	fmt.Fprintln(w, "  va-creator abc123 FOR [2, 5, 8] sva")
}
