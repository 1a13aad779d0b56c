/*
 * CAMC
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package camlog provides leveled logging for the compiler pipeline: the
CLI driver logs the optimizer's pass summary at info level and its
parse/evaluate progress at debug level, and tests can inspect a
MemoryLogger instead of scraping stdout.
*/
package camlog

import (
	"fmt"
	"io"
	"log"
	"strings"

	"devt.de/krotik/common/datautil"
)

/*
Logger is the minimal leveled-logging capability every sink in this
package implements.
*/
type Logger interface {
	LogError(m ...interface{})
	LogInfo(m ...interface{})
	LogDebug(m ...interface{})
}

/*
Level represents a logging level.
*/
type Level string

/*
The three supported levels, from quietest to loudest.
*/
const (
	Error Level = "error"
	Info  Level = "info"
	Debug Level = "debug"
)

/*
LeveledLogger wraps a Logger and filters calls below the configured level.
*/
type LeveledLogger struct {
	logger Logger
	level  Level
}

/*
NewLeveledLogger wraps logger with level-based filtering. An unrecognized
level string is an error, not a silent fallback to Info.
*/
func NewLeveledLogger(logger Logger, level string) (*LeveledLogger, error) {
	l := Level(strings.ToLower(level))

	if l != Debug && l != Info && l != Error {
		return nil, fmt.Errorf("invalid log level: %v", level)
	}

	return &LeveledLogger{logger, l}, nil
}

/*
Level returns the current log level.
*/
func (l *LeveledLogger) Level() Level {
	return l.level
}

/*
LogError always logs, regardless of level.
*/
func (l *LeveledLogger) LogError(m ...interface{}) {
	l.logger.LogError(m...)
}

/*
LogInfo logs if the level is Info or Debug.
*/
func (l *LeveledLogger) LogInfo(m ...interface{}) {
	if l.level == Info || l.level == Debug {
		l.logger.LogInfo(m...)
	}
}

/*
LogDebug logs only at Debug level.
*/
func (l *LeveledLogger) LogDebug(m ...interface{}) {
	if l.level == Debug {
		l.logger.LogDebug(m...)
	}
}

// Logger implementations
// ======================

/*
MemoryLogger collects log messages in a fixed-size ring buffer. Used by
tests that want to assert on what was logged without capturing stdout.
*/
type MemoryLogger struct {
	*datautil.RingBuffer
}

/*
NewMemoryLogger returns a new memory logger with room for size messages.
*/
func NewMemoryLogger(size int) *MemoryLogger {
	return &MemoryLogger{datautil.NewRingBuffer(size)}
}

func (m *MemoryLogger) LogError(v ...interface{}) {
	m.RingBuffer.Add(fmt.Sprintf("error: %v", fmt.Sprint(v...)))
}

func (m *MemoryLogger) LogInfo(v ...interface{}) {
	m.RingBuffer.Add(fmt.Sprint(v...))
}

func (m *MemoryLogger) LogDebug(v ...interface{}) {
	m.RingBuffer.Add(fmt.Sprintf("debug: %v", fmt.Sprint(v...)))
}

/*
Slice returns the current log contents, oldest first.
*/
func (m *MemoryLogger) Slice() []string {
	raw := m.RingBuffer.Slice()
	ret := make([]string, len(raw))
	for i, l := range raw {
		ret[i] = l.(string)
	}
	return ret
}

/*
StdLogger writes log messages with the standard library logger, used by
cmd/camc.
*/
type StdLogger struct {
	print func(v ...interface{})
}

/*
NewStdLogger returns a logger that writes through log.Print.
*/
func NewStdLogger() *StdLogger {
	return &StdLogger{log.Print}
}

func (s *StdLogger) LogError(v ...interface{}) {
	s.print(fmt.Sprintf("error: %v", fmt.Sprint(v...)))
}

func (s *StdLogger) LogInfo(v ...interface{}) {
	s.print(fmt.Sprint(v...))
}

func (s *StdLogger) LogDebug(v ...interface{}) {
	s.print(fmt.Sprintf("debug: %v", fmt.Sprint(v...)))
}

/*
NullLogger discards every message, for callers that want no log output.
*/
type NullLogger struct{}

/*
NewNullLogger returns a logger that discards everything.
*/
func NewNullLogger() *NullLogger { return &NullLogger{} }

func (NullLogger) LogError(...interface{}) {}
func (NullLogger) LogInfo(...interface{})  {}
func (NullLogger) LogDebug(...interface{}) {}

/*
WriterLogger writes log messages to an arbitrary io.Writer, used by the
CLI's -log-file flag.
*/
type WriterLogger struct {
	w io.Writer
}

/*
NewWriterLogger returns a logger that writes through w.
*/
func NewWriterLogger(w io.Writer) *WriterLogger {
	return &WriterLogger{w}
}

func (w *WriterLogger) LogError(v ...interface{}) {
	fmt.Fprintf(w.w, "error: %v\n", fmt.Sprint(v...))
}

func (w *WriterLogger) LogInfo(v ...interface{}) {
	fmt.Fprintf(w.w, "%v\n", fmt.Sprint(v...))
}

func (w *WriterLogger) LogDebug(v ...interface{}) {
	fmt.Fprintf(w.w, "debug: %v\n", fmt.Sprint(v...))
}
