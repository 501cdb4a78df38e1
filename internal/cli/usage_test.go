package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fpang/va-creator/internal/grammar"
)

func TestHandleParseErrorWithUsage(t *testing.T) {
	var out, errOut bytes.Buffer
	_, err := grammar.Parse([]string{"tok", "BETWEEN", "1", "od"})

	HandleParseError(&out, &errOut, err)

	if errOut.String() != "Unrecognized command: BETWEEN\n" {
		t.Errorf("unexpected stderr: %q", errOut.String())
	}
	if !strings.HasPrefix(out.String(), "Usage: va-creator <token> FROM <start> TO <end> <type>") {
		t.Errorf("expected usage on stdout, got:\n%s", out.String())
	}
}

func TestHandleParseErrorWithoutUsage(t *testing.T) {
	var out, errOut bytes.Buffer
	_, err := grammar.Parse([]string{"tok", "FOR", "[,,]", "sva"})

	HandleParseError(&out, &errOut, err)

	if errOut.String() != "No stream identifiers provided.\n" {
		t.Errorf("unexpected stderr: %q", errOut.String())
	}
	if out.Len() != 0 {
		t.Errorf("expected no usage, got:\n%s", out.String())
	}
}

func TestHandleParseErrorUntypedShowsUsage(t *testing.T) {
	var out, errOut bytes.Buffer
	HandleParseError(&out, &errOut, errors.New("something else"))
	if !strings.Contains(out.String(), "Examples:") {
		t.Errorf("expected usage for untyped error, got:\n%s", out.String())
	}
}
