package shadow

import (
	"encoding/json"
	"log/slog"
	"regexp"
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
)

// headerPattern matches "<hostname> | <STATUS> => {" up to and including the
// opening brace of the payload. \s spans newlines, so a header may wrap.
var headerPattern = regexp.MustCompile(`(\S+)\s+\|\s+(\w+)\s+=>\s+\{`)

// Extractor reduces a transcript to a TranscriptIndex.
type Extractor struct {
	Logger *slog.Logger
}

// NewExtractor returns an Extractor that reports parse failures to logger.
// A nil logger uses slog.Default().
func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{Logger: logger}
}

// Normalize extracts host records from content using the default logger.
func Normalize(content string) TranscriptIndex {
	return NewExtractor(nil).Normalize(content)
}

// Normalize scans content for host blocks and returns one record per hostname.
// A hostname that appears more than once keeps its last block. Malformed
// payloads are logged and stored as {"raw": body}.
func (e *Extractor) Normalize(content string) TranscriptIndex {
	hosts := TranscriptIndex{}
	for _, b := range scanBlocks(ansi.Strip(content)) {
		hosts[b.host] = e.record(b)
	}
	return hosts
}

func (e *Extractor) record(b block) HostRecord {
	var data map[string]any
	if err := json.Unmarshal([]byte(b.body), &data); err != nil {
		e.logger().Warn("failed to parse JSON payload", "host", b.host, "error", err)
		return HostRecord{
			Status:     b.status,
			Data:       map[string]any{"raw": b.body},
			ParseError: err.Error(),
		}
	}
	for _, f := range volatileFields {
		delete(data, f)
	}
	return HostRecord{Status: b.status, Data: data}
}

func (e *Extractor) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.Default()
	}
	return e.Logger
}

// block is one raw host block as found in the text.
type block struct {
	host   string
	status string
	body   string
}

// scanBlocks returns the host blocks of text in order of appearance.
// Blocks never overlap: the search for the next header resumes after the
// previous body.
func scanBlocks(text string) []block {
	var blocks []block
	cursor := 0
	for cursor < len(text) {
		loc := headerPattern.FindStringSubmatchIndex(text[cursor:])
		if loc == nil {
			break
		}
		bodyStart := cursor + loc[1] - 1 // the opening brace
		body, next := readBody(text, bodyStart)
		blocks = append(blocks, block{
			host:   text[cursor+loc[2] : cursor+loc[3]],
			status: text[cursor+loc[4] : cursor+loc[5]],
			body:   body,
		})
		cursor = next
	}
	return blocks
}

// readBody returns the payload starting at the brace text[start] and the
// offset where scanning continues. A balanced object ends at its closing
// brace. An unbalanced one runs until the next host header or end of text.
func readBody(text string, start int) (string, int) {
	if end, ok := objectEnd(text[start:]); ok {
		return text[start : start+end], start + end
	}
	stop := len(text)
	if loc := headerPattern.FindStringIndex(text[start+1:]); loc != nil {
		stop = start + 1 + loc[0]
	}
	return strings.TrimRightFunc(text[start:stop], unicode.IsSpace), stop
}

// objectEnd reports the length of the brace-delimited object at the start of
// s. Braces inside JSON strings are ignored.
func objectEnd(s string) (int, bool) {
	depth := 0
	inString, escaped := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i + 1, true
			}
		}
	}
	return 0, false
}
