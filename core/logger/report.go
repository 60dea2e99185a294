package logger

import (
	"encoding/json"
	"io"
	"sort"
	"strconv"
)

// LogEntry is a single decoded event log line.
type LogEntry struct {
	Level    string   `json:"level"`
	Time     string   `json:"time"`
	Message  string   `json:"message"`
	Event    string   `json:"event"`
	Command  string   `json:"command"`
	Kind     string   `json:"kind"`
	Args     []string `json:"args"`
	Path     string   `json:"path"`
	Pid      int      `json:"pid"`
	ExitCode *int     `json:"exit_code"`
	Signal   string   `json:"signal"`
	Error    string   `json:"error"`
}

// ReadJSONLinesLog parses a newline delimited JSON log.
func ReadJSONLinesLog(r io.Reader, handler func(le *LogEntry)) error {
	decoder := json.NewDecoder(r)
	for decoder.More() {
		var logEntry LogEntry
		if err := decoder.Decode(&logEntry); err != nil {
			return err
		}

		handler(&logEntry)
	}
	return nil
}

// NewReport creates an empty Report.
func NewReport() *Report {
	return &Report{
		ExitStatuses: NewPathCounter("command", "exit_code", "signal"),
		Failures:     NewPathCounter("event", "command", "error"),
	}
}

// Report holds statistics about the logged events.
type Report struct {
	LogEntries     int        `json:"log_entries"`
	InvalidEntries StrCounter `json:"unknown_log_entries,omitempty"`

	Builtins     StrCounter   `json:"builtin_counts"`
	Programs     StrCounter   `json:"program_counts"`
	ExitStatuses *PathCounter `json:"exit_statuses"`
	Failures     *PathCounter `json:"failures"`
}

// Update folds a log entry into the report.
func (r *Report) Update(le *LogEntry) {
	r.LogEntries++

	switch le.Event {
	case EventBuiltin:
		r.Builtins.Increment(le.Command)
	case EventLaunch:
		r.Programs.Increment(le.Command)
	case EventChildExit:
		code := ""
		if le.ExitCode != nil {
			code = strconv.Itoa(*le.ExitCode)
		}
		r.ExitStatuses.Increment(le.Command, code, le.Signal)
	case EventNotFound, EventSpawnFailed:
		r.Failures.Increment(le.Event, le.Command, le.Error)
	case EventDispatch:
		// Ignore, the builtin or launch entry carries the detail.
	default:
		r.InvalidEntries.Increment(le.Event)
	}
}

// StrCounter counts the number of strings seen.
type StrCounter struct {
	internal map[string]int
}

// Increment adds one to the given key.
func (s *StrCounter) Increment(toAdd string) {
	if s.internal == nil {
		s.internal = make(map[string]int)
	}

	s.internal[toAdd]++
}

// Count returns the number of times key was seen.
func (s *StrCounter) Count(key string) int {
	return s.internal[key]
}

// MarshalJSON implements a custom JSON marshaler.
func (s StrCounter) MarshalJSON() ([]byte, error) {
	if s.internal == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(s.internal)
}

func NewPathCounter(cols ...string) *PathCounter {
	return &PathCounter{
		cols:     cols,
		internal: make(map[string]int),
	}
}

// PathCounter counts tuples of strings seen.
type PathCounter struct {
	cols     []string
	internal map[string]int
}

// Increment adds one to the given key.
func (ctr *PathCounter) Increment(toAdd ...string) {
	if len(toAdd) != len(ctr.cols) {
		panic("wrong number of columns to add")
	}

	ctr.internal[toKey(toAdd...)]++
}

// Count returns the number of times the tuple was seen.
func (ctr *PathCounter) Count(vals ...string) int {
	return ctr.internal[toKey(vals...)]
}

// MarshalJSON implements a custom JSON marshaler.
func (ctr *PathCounter) MarshalJSON() ([]byte, error) {
	type Count struct {
		Count  int               `json:"count"`
		Fields map[string]string `json:"event"`
		Path   string            `json:"-"`
	}

	out := []Count{}
	for k, v := range ctr.internal {
		count := Count{
			Count:  v,
			Path:   k,
			Fields: make(map[string]string),
		}

		splitPath := fromKey(k)
		for colNum, colVal := range ctr.cols {
			count.Fields[colVal] = splitPath[colNum]
		}

		out = append(out, count)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Path < out[j].Path
		}
		return out[i].Count > out[j].Count
	})

	return json.Marshal(out)
}

func toKey(vals ...string) string {
	key, _ := json.Marshal(vals)
	return string(key)
}

func fromKey(key string) (out []string) {
	_ = json.Unmarshal([]byte(key), &out)
	return
}
