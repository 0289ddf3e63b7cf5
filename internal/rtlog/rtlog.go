// Package rtlog provides the default core.Logger implementation used
// outside of tests, backed by fortio.org/log's leveled, structured logger.
package rtlog

import (
	"fmt"

	"fortio.org/log"

	"github.com/nkryptic/pathtracer/pkg/core"
)

// Default is a core.Logger backed by fortio.org/log's package-level
// logger. It adds no state of its own: fortio.org/log already serializes
// writes to its configured output, so Default is safe to share across
// every render worker.
type Default struct {
	// Fields are included on every call as key=value pairs, the way
	// fortio.org/log's own call sites annotate scene/pass context.
	Fields []interface{}
}

// New returns a Default logger that prefixes every message with the given
// key/value fields, e.g. New("scene", "cornell"). Panics on an odd field
// count, which can only mean a caller forgot a value.
func New(fields ...interface{}) Default {
	if len(fields)%2 != 0 {
		panic("rtlog: New called with an odd number of field arguments")
	}
	return Default{Fields: fields}
}

func (d Default) Infof(format string, args ...interface{}) {
	log.Infof(d.withFields(format), args...)
}

func (d Default) Warnf(format string, args ...interface{}) {
	log.Warnf(d.withFields(format), args...)
}

func (d Default) Errf(format string, args ...interface{}) {
	log.Errf(d.withFields(format), args...)
}

// withFields appends the logger's static fields to the format string as a
// trailing " key=value ..." suffix, the same flat key-framing
// fortio.org/log's own structured call sites use.
func (d Default) withFields(format string) string {
	if len(d.Fields) == 0 {
		return format
	}
	out := format
	for i := 0; i < len(d.Fields); i += 2 {
		out += fmt.Sprintf(" %v=%v", d.Fields[i], d.Fields[i+1])
	}
	return out
}

var _ core.Logger = Default{}
