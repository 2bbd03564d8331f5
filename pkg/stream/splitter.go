// Package stream splits a byte stream into records terminated by a
// delimiter byte, skipping delimiters that are backslash-escaped or inside
// double-quoted regions. It buffers reads internally so records may span
// any number of reads.
package stream

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// Splitter reads from an io.Reader and separates the stream into records
// ending at an unquoted, unescaped delimiter. It keeps track of how much
// of its buffer holds undelivered data and compacts the buffer after each
// completed record.
type Splitter struct {
	reader  io.Reader
	context context.Context
	maxRead int
	delim   byte

	buffer []byte
	cursor int // Points to beginning of next record
	length int // Number of bytes used in buffer

	// Parsing policy
	maxRecordLength int

	logger zerolog.Logger
}

// NewSplitter creates a Splitter with the given reader, delimiter and
// buffer sizing.
func NewSplitter(
	ctx context.Context,
	reader io.Reader,
	delim byte,
	bufferSize int,
	maxRead int,
) *Splitter {
	buffer := make([]byte, bufferSize)

	logger := zerolog.New(zerolog.NewConsoleWriter()).
		Level(zerolog.GlobalLevel()).
		With().
		Timestamp().
		Str("component", "splitter").
		Logger()

	return &Splitter{
		reader:  reader,
		context: ctx,
		buffer:  buffer,
		maxRead: maxRead,
		delim:   delim,

		maxRecordLength: 1 << 20,

		logger: logger,
	}
}

// Read fills the buffer with up to maxRead more bytes, growing it when the
// remaining capacity is too small.
func (sp *Splitter) Read() (int, error) {
	// Ensure we have room for at least maxRead more data
	bCap := cap(sp.buffer)
	remainingCap := bCap - sp.length
	minCap := sp.length + sp.maxRead
	if remainingCap < minCap {
		var newCap int
		if bCap < minCap {
			newCap = minCap
		} else {
			newCap = bCap * 2
		}
		newBuffer := make([]byte, newCap)
		copy(newBuffer, sp.buffer)
		sp.buffer = newBuffer
	}

	// Read into buffer. Data delivered alongside an error (an io.Reader
	// may return n > 0 with io.EOF) is kept.
	n, err := sp.reader.Read(sp.buffer[sp.length : sp.length+sp.maxRead])
	if n > 0 {
		sp.length += n
		// Remove zeros from read
		sp.buffer = sp.buffer[:sp.length]
	}

	return n, err
}

// NextRecord locates the next complete record in the buffer. It returns
// the record's start index and the index of its terminating delimiter, or
// end == -1 when the buffered data holds no complete record yet. Escape
// and quote state are recomputed from the record start on each call, so an
// incomplete record may be rescanned after more data arrives.
func (sp *Splitter) NextRecord() (start, end int, err error) {
	escaped := false
	quoted := false

	start = sp.cursor
	for i := start; i < sp.length; i++ {
		if i-start > sp.maxRecordLength {
			return 0, 0, fmt.Errorf("record exceeds maximum length of %d", sp.maxRecordLength)
		}

		c := sp.buffer[i]

		if escaped {
			escaped = false
			continue
		}

		switch c {
		case '\\':
			escaped = true
		case '"':
			quoted = !quoted
		case sp.delim:
			if !quoted {
				return start, i, nil
			}
		}
	}

	// Record is not complete
	return start, -1, nil
}

// SplitAll reads until EOF or context cancellation, invoking cb once per
// complete record (without its delimiter) and errCb on failure. A trailing
// record with no final delimiter is flushed at EOF.
func (sp *Splitter) SplitAll(cb func([]byte), errCb func(error)) {
	for {
		select {
		case <-sp.context.Done():
			return
		default:
			n, err := sp.Read()

			if err == io.EOF {
				if stop := sp.processBuffer(cb, errCb); !stop {
					sp.flushTail(cb)
				}
				return
			}

			// Exit on real errors
			if err != nil && err != io.ErrUnexpectedEOF {
				errCb(err)
				return
			}

			if n == 0 && err == io.ErrUnexpectedEOF {
				continue // Try reading again if we need more data
			}

			// Process available records and continue reading
			if stop := sp.processBuffer(cb, errCb); stop {
				return
			}
		}
	}
}

// processBuffer delivers complete records in the buffer, calling cb for
// each. It returns true only on a parsing error; a drained or incomplete
// buffer just means more data is needed.
func (sp *Splitter) processBuffer(cb func([]byte), errCb func(err error)) (stop bool) {
	for sp.length > 0 {
		start, end, err := sp.NextRecord()
		if err != nil {
			errCb(err)
			return true // Exit on parsing errors
		}
		if end == -1 {
			break // Need more data
		}

		record := sp.buffer[start:end]
		sp.logger.Trace().Int("size", len(record)).Msg("Record complete")
		cb(record)
		sp.cursor = end + 1

		// Compact buffer after each record
		if sp.cursor > 0 {
			copy(sp.buffer, sp.buffer[sp.cursor:sp.length])
			sp.length -= sp.cursor
			sp.cursor = 0
		}
	}
	return false
}

// flushTail emits buffered bytes left after the last delimiter.
func (sp *Splitter) flushTail(cb func([]byte)) {
	if sp.cursor < sp.length {
		cb(sp.buffer[sp.cursor:sp.length])
		sp.cursor = sp.length
	}
}
