package grammar

// AnalyticsType selects which analytics configuration is created on the server.
type AnalyticsType int

const (
	// ObjectDetection creates an object_in_zone configuration ("od" on the command line).
	ObjectDetection AnalyticsType = iota
	// SmartVA creates a smart_va configuration ("sva" on the command line).
	SmartVA
)

func (t AnalyticsType) String() string {
	switch t {
	case ObjectDetection:
		return "OD"
	case SmartVA:
		return "SVA"
	default:
		return "UNKNOWN"
	}
}

// CommandKind distinguishes the FROM range form from the FOR list form.
type CommandKind int

const (
	// Range is "<token> FROM <start> [TO] <end> <type>".
	Range CommandKind = iota
	// List is "<token> FOR [a,b,c] <type>".
	List
)

func (k CommandKind) String() string {
	if k == List {
		return "FOR"
	}
	return "FROM"
}

// Command is the parsed grammar form. Start and End are set for Range,
// IDs for List.
type Command struct {
	Kind  CommandKind
	Start int
	End   int
	IDs   []int
}

// Invocation is everything the dispatcher needs from the command line.
type Invocation struct {
	Token     string
	Command   Command
	Type      AnalyticsType
	StreamIDs []int
}
