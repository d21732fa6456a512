package domain

import (
	"regexp"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// Section markers recognized inside a converted script. A marker must be the
// only content on its line, modulo whitespace.
var (
	startMarkerRe = regexp.MustCompile(`^\s*#\s*nb\.start\s*$`)
	endMarkerRe   = regexp.MustCompile(`^\s*#\s*nb\.end\s*$`)
	directiveRe   = regexp.MustCompile(`^\s*#\s*([A-Za-z_][A-Za-z0-9_]*)\s*=\s*(.+?)\s*$`)
)

// OverrideKeyIPython is the recognized override directive key selecting a
// custom interpreter for the notebook.
const OverrideKeyIPython = "ipython_path"

// Overrides holds per-notebook execution overrides declared in the marker
// region of a converted script. They are recomputed on every run and are
// never persisted apart from the script that contains them.
type Overrides struct {
	// IPythonPath is the interpreter override, empty when not declared.
	IPythonPath string
	// Values holds every directive found in the marker region, including
	// keys nb does not act on.
	Values map[string]string
}

// Empty reports whether no override directives were found.
func (o Overrides) Empty() bool {
	return len(o.Values) == 0
}

// Section is the result of scanning a converted script: the body to execute,
// the overrides found in the marker region, and whether the body was narrowed
// to a marked section at all.
type Section struct {
	Body      string
	Overrides Overrides
	Narrowed  bool
}

// sectionState is the state of the line scanner. At most one marker pair is
// accepted; any further start or end marker is an error in every state.
type sectionState uint8

const (
	beforeSection sectionState = iota
	inSection
	afterSection
)

// ExtractSection scans a converted script for an optional executable section
// delimited by "# nb.start" and "# nb.end" marker lines.
//
// With no markers the whole script is returned with empty overrides. With one
// pair the returned body is the text strictly between the markers; directive
// comment lines of the form "# key = value" immediately following the start
// marker are parsed into Overrides and excluded from the body. A section left
// unclosed at EOF runs to the end of the script.
//
// A second start marker, a second end marker, or an end marker before any
// start marker fails with ErrMultipleSections carrying the offending line
// number. The caller never gets a silently-picked section.
func ExtractSection(script string) (Section, error) {
	overrides := Overrides{Values: map[string]string{}}

	state := beforeSection
	inHeader := false
	sectionFound := false

	var body []string

	for i, line := range strings.Split(script, "\n") {
		lineNo := i + 1
		isStart := startMarkerRe.MatchString(line)
		isEnd := endMarkerRe.MatchString(line)

		switch state {
		case beforeSection:
			switch {
			case isStart:
				state = inSection
				inHeader = true
				sectionFound = true
			case isEnd:
				return Section{}, markerError("end marker found before start marker", lineNo)
			}

		case inSection:
			switch {
			case isStart:
				return Section{}, markerError("nested start markers are not supported", lineNo)
			case isEnd:
				state = afterSection
			default:
				if inHeader {
					if m := directiveRe.FindStringSubmatch(line); m != nil {
						overrides.Values[m[1]] = unquote(m[2])
						continue
					}
					inHeader = false
				}
				body = append(body, line)
			}

		case afterSection:
			switch {
			case isStart:
				return Section{}, markerError("start marker found after end marker", lineNo)
			case isEnd:
				return Section{}, markerError("nested end markers are not supported", lineNo)
			}
		}
	}

	if !sectionFound {
		return Section{Body: strings.TrimSpace(script), Overrides: overrides}, nil
	}

	overrides.IPythonPath = overrides.Values[OverrideKeyIPython]

	return Section{
		Body:      strings.TrimSpace(strings.Join(body, "\n")),
		Overrides: overrides,
		Narrowed:  true,
	}, nil
}

func markerError(msg string, line int) error {
	return zerr.With(zerr.Wrap(ErrMultipleSections, msg), "line", line)
}

// unquote strips a surrounding double-quote pair from a directive value.
// Bare values are returned as is.
func unquote(v string) string {
	if len(v) >= 2 && strings.HasPrefix(v, `"`) && strings.HasSuffix(v, `"`) {
		if u, err := strconv.Unquote(v); err == nil {
			return u
		}
	}
	return v
}
