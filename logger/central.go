// Package logger is the central log. Entries are tagged with the area of the
// emulator that made them and consecutive duplicates are collapsed into a
// repeat count. The log can optionally be echoed to a writer as entries
// arrive.
package logger

import (
	"fmt"
	"io"
	"sync"
)

const maxCentral = 256

var (
	crit    sync.Mutex
	central = newLogger(maxCentral)
)

func Log(tag, detail string) {
	crit.Lock()
	defer crit.Unlock()
	central.log(tag, detail)
}

func Logf(tag, detail string, args ...interface{}) {
	Log(tag, fmt.Sprintf(detail, args...))
}

// SetEcho sends new entries to output as well as to the log. A nil output
// stops echoing.
func SetEcho(output io.Writer) {
	crit.Lock()
	defer crit.Unlock()
	central.echo = output
}

func Clear() {
	crit.Lock()
	defer crit.Unlock()
	central.clear()
}

// Write the contents of the central logger to output. Returns false if there
// was nothing to write.
func Write(output io.Writer) bool {
	crit.Lock()
	defer crit.Unlock()
	return central.write(output)
}

// Tail writes the last number entries to output.
func Tail(output io.Writer, number int) {
	crit.Lock()
	defer crit.Unlock()
	central.tail(output, number)
}

// Copy returns the current entries, most recent last.
func Copy() []Entry {
	crit.Lock()
	defer crit.Unlock()
	return central.copy()
}
