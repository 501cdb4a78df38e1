// Package grammar turns the va-creator command line into an ordered list of
// stream identifiers and the analytics type to create for each of them.
//
// Two forms are accepted after the bearer token:
//
//	FROM <start> [TO] <end>   inclusive range, bounds in either order
//	FOR [<id>,<id>,...]       explicit list, may span several argv entries
//
// followed by the analytics type, "od" or "sva" (case-insensitive).
package grammar

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// minArgs is the shortest accepted command line: <token> FOR <list> <type>.
const minArgs = 4

// MaxRangeSize caps how many identifiers a FROM range may expand to.
const MaxRangeSize = 1_000_000

var (
	leadingBracket  = regexp.MustCompile(`^\[`)
	trailingBracket = regexp.MustCompile(`\]$`)
	spacedComma     = regexp.MustCompile(`\s*,\s*`)
)

// Parse validates args (argv without the program name) and returns the
// invocation to dispatch. Every failure is a *ParseError.
func Parse(args []string) (*Invocation, error) {
	if len(args) < minArgs {
		return nil, newParseError(ErrArgumentCount, "Expected at least %d arguments, got %d.", minArgs, len(args))
	}

	analyticsType, err := parseAnalyticsType(args[len(args)-1])
	if err != nil {
		return nil, err
	}

	baseArgs := args[:len(args)-1]
	inv := &Invocation{
		Token: baseArgs[0],
		Type:  analyticsType,
	}

	switch strings.ToUpper(baseArgs[1]) {
	case "FROM":
		start, end, err := parseRange(baseArgs)
		if err != nil {
			return nil, err
		}
		inv.Command = Command{Kind: Range, Start: start, End: end}
		from, to := min(start, end), max(start, end)
		if size := to - from + 1; size > MaxRangeSize {
			return nil, newParseError(ErrRangeTooLarge, "Range too large: %d stream identifiers (maximum %d).", size, MaxRangeSize)
		}
		inv.StreamIDs = lo.RangeFrom(from, to-from+1)
	case "FOR":
		ids, err := parseList(baseArgs)
		if err != nil {
			return nil, err
		}
		inv.Command = Command{Kind: List, IDs: ids}
		inv.StreamIDs = ids
	default:
		return nil, newParseError(ErrUnrecognizedCommand, "Unrecognized command: %s", baseArgs[1])
	}

	if len(inv.StreamIDs) == 0 {
		return nil, newParseError(ErrNoStreamIDs, "No stream identifiers provided.")
	}
	return inv, nil
}

// parseAnalyticsType maps "od" / "sva" in any case to an AnalyticsType.
func parseAnalyticsType(s string) (AnalyticsType, error) {
	switch upper := strings.ToUpper(s); upper {
	case "OD":
		return ObjectDetection, nil
	case "SVA":
		return SmartVA, nil
	default:
		return 0, newParseError(ErrUnrecognizedType, "Unrecognized analytics type: %s", upper)
	}
}

// parseRange reads "<token> FROM <start> [TO] <end>". The bounds are
// returned as given; the caller normalizes their order.
func parseRange(baseArgs []string) (int, int, error) {
	if len(baseArgs) < 4 {
		return 0, 0, newParseError(ErrArgumentCount, "Missing arguments for FROM/TO range.")
	}

	start, err := parseInt(baseArgs[2])
	if err != nil {
		return 0, 0, newParseError(ErrInvalidNumber, "Invalid start value in range: %s", baseArgs[2])
	}

	endIndex := 3
	if strings.EqualFold(baseArgs[3], "TO") {
		endIndex = 4
	}
	if endIndex >= len(baseArgs) {
		return 0, 0, newParseError(ErrMissingRangeBound, "Missing end value in range.")
	}

	end, err := parseInt(baseArgs[endIndex])
	if err != nil {
		return 0, 0, newParseError(ErrInvalidNumber, "Invalid end value in range: %s", baseArgs[endIndex])
	}
	return start, end, nil
}

// parseList reads everything after FOR as one comma separated list.
// Shells split "[2, 5, 8]" into three arguments, so they are rejoined first.
func parseList(baseArgs []string) ([]int, error) {
	if len(baseArgs) < 3 {
		return nil, newParseError(ErrArgumentCount, "Missing list for FOR command.")
	}

	combined := strings.TrimSpace(strings.Join(baseArgs[2:], " "))
	combined = leadingBracket.ReplaceAllString(combined, "")
	combined = trailingBracket.ReplaceAllString(combined, "")
	combined = spacedComma.ReplaceAllString(strings.TrimSpace(combined), ",")
	if combined == "" {
		return nil, newParseError(ErrEmptyList, "No identifiers provided in list.")
	}

	parts := lo.Compact(lo.Map(strings.Split(combined, ","), func(p string, _ int) string {
		return strings.TrimSpace(p)
	}))

	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		id, err := parseInt(part)
		if err != nil {
			return nil, newParseError(ErrInvalidNumber, "Invalid identifier in list: %s", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// parseInt accepts a signed 32-bit decimal, the width stream ids have on the server.
func parseInt(s string) (int, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
