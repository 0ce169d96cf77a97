package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// Read returns the last maxLines lines of the file at path. A maxLines of
// zero or less returns every line. A missing file is not an error.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Entry is one structured log record.
type Entry struct {
	Time    time.Time
	Level   string
	Message string
	Fields  []Field // sorted by key
	Raw     string  // set when the line is not a JSON record
}

// Field is a single key/value pair from a record.
type Field struct {
	Key   string
	Value string
}

var reservedKeys = map[string]struct{}{
	"ts": {}, "level": {}, "msg": {}, "caller": {}, "logger": {}, "stacktrace": {},
}

// Parse decodes a JSON log line as written by the application logger.
// Lines that are not JSON objects come back with only Raw set.
func Parse(line string) Entry {
	trimmed := strings.TrimSpace(line)
	if !gjson.Valid(trimmed) {
		return Entry{Raw: line}
	}
	doc := gjson.Parse(trimmed)
	if !doc.IsObject() {
		return Entry{Raw: line}
	}

	entry := Entry{
		Level:   strings.ToUpper(doc.Get("level").String()),
		Message: doc.Get("msg").String(),
	}
	if ts := doc.Get("ts"); ts.Exists() {
		if parsed, err := time.Parse("2006-01-02T15:04:05.000Z0700", ts.String()); err == nil {
			entry.Time = parsed
		}
	}
	doc.ForEach(func(key, value gjson.Result) bool {
		if _, skip := reservedKeys[key.String()]; skip {
			return true
		}
		entry.Fields = append(entry.Fields, Field{Key: key.String(), Value: value.String()})
		return true
	})
	sort.Slice(entry.Fields, func(i, j int) bool { return entry.Fields[i].Key < entry.Fields[j].Key })
	return entry
}

// String renders the entry on one line: time, level, message, fields.
func (e Entry) String() string {
	if e.Raw != "" || (e.Level == "" && e.Message == "" && len(e.Fields) == 0) {
		return e.Raw
	}
	var b strings.Builder
	if !e.Time.IsZero() {
		b.WriteString(e.Time.Local().Format("15:04:05"))
		b.WriteByte(' ')
	}
	fmt.Fprintf(&b, "%-5s %s", e.Level, e.Message)
	for _, f := range e.Fields {
		b.WriteString(" " + f.Key + "=" + f.Value)
	}
	return b.String()
}
