package x12adapter

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/oarkflow/log"

	"github.com/oarkflow/edi/pkg/contracts"
	"github.com/oarkflow/edi/pkg/parsers"
	"github.com/oarkflow/edi/pkg/utils"
)

// Record fields emitted by FileSource.
const (
	FieldRawMessage    = "raw_message"
	FieldSourcePath    = "source_path"
	FieldSequence      = "sequence"
	FieldSenderID      = "sender_id"
	FieldControlNumber = "control_number"
)

// FileSourceOption customizes X12 file source behaviour.
type FileSourceOption func(*FileSource)

// WithDedup drops interchanges whose sender and control number were already
// emitted. maxKeys bounds the in-memory index; zero selects a default.
func WithDedup(maxKeys int) FileSourceOption {
	return func(fs *FileSource) {
		fs.dedup = true
		fs.dedupMaxKeys = maxKeys
	}
}

// WithLogger sets the logger used for scan errors and dropped duplicates.
func WithLogger(logger *log.Logger) FileSourceOption {
	return func(fs *FileSource) {
		fs.logger = logger
	}
}

// FileSource streams X12 interchanges from a file, one record per ISA...IEA
// envelope.
type FileSource struct {
	path         string
	dedup        bool
	dedupMaxKeys int
	logger       *log.Logger
	seen         *seenIndex
}

var _ contracts.Source = (*FileSource)(nil)

// NewFileSource builds a FileSource with optional behaviour tweaks.
func NewFileSource(path string, opts ...FileSourceOption) *FileSource {
	fs := &FileSource{
		path:   path,
		logger: &log.DefaultLogger,
	}
	for _, opt := range opts {
		opt(fs)
	}
	return fs
}

// Setup validates the source file exists and prepares the dedup index.
func (fs *FileSource) Setup(_ context.Context) error {
	if fs.path == "" {
		return fmt.Errorf("x12 file source: path is empty")
	}
	if _, err := os.Stat(fs.path); err != nil {
		return err
	}
	if fs.dedup && fs.seen == nil {
		seen, err := newSeenIndex(fs.dedupMaxKeys)
		if err != nil {
			return fmt.Errorf("x12 file source: %w", err)
		}
		fs.seen = seen
	}
	return nil
}

// Extract streams interchanges as utils.Record objects.
func (fs *FileSource) Extract(ctx context.Context) (<-chan utils.Record, error) {
	file, err := os.Open(fs.path)
	if err != nil {
		return nil, err
	}

	out := make(chan utils.Record)
	go func() {
		defer close(out)
		defer file.Close()

		scanner := bufio.NewScanner(file)
		buf := make([]byte, 0, 128*1024)
		scanner.Buffer(buf, 64*1024*1024)
		scanner.Split(splitInterchanges)
		sequence := 0

		for scanner.Scan() {
			message := strings.TrimSpace(scanner.Text())
			if message == "" {
				continue
			}
			sender, control := envelopeKey(message)
			if fs.seen != nil && control != "" && fs.seen.Seen(sender+"|"+control) {
				fs.logger.Warn().Str("path", fs.path).Str("sender", sender).Str("control_number", control).Msg("duplicate interchange dropped")
				continue
			}
			sequence++
			rec := utils.Record{
				FieldRawMessage:    message,
				FieldSourcePath:    fs.path,
				FieldSequence:      sequence,
				FieldSenderID:      sender,
				FieldControlNumber: control,
			}
			select {
			case <-ctx.Done():
				return
			case out <- rec:
			}
		}

		if err := scanner.Err(); err != nil {
			fs.logger.Error().Err(err).Str("path", fs.path).Msg("x12 file source scan error")
		}
	}()

	return out, nil
}

// Close implements contracts.Source.
func (fs *FileSource) Close() error {
	if fs.seen != nil {
		fs.seen.Close()
		fs.seen = nil
	}
	return nil
}

// splitInterchanges is a bufio.SplitFunc yielding one ISA...IEA envelope
// per token. The element separator and segment terminator are read from each
// ISA header, so files may mix delimiter sets. Text outside envelopes is
// dropped.
func splitInterchanges(data []byte, atEOF bool) (int, []byte, error) {
	start := bytes.Index(data, []byte("ISA"))
	if start < 0 {
		if atEOF {
			return len(data), nil, nil
		}
		// Keep a tail that may be the start of a split "ISA".
		if len(data) > 2 {
			return len(data) - 2, nil, nil
		}
		return 0, nil, nil
	}
	if len(data)-start < parsers.ISALength {
		if atEOF {
			return len(data), data[start:], nil
		}
		return start, nil, nil
	}
	element := data[start+3]
	terminator := data[start+parsers.ISALength-1]
	trailer := []byte{'I', 'E', 'A', element}
	if i := bytes.Index(data[start+parsers.ISALength:], trailer); i >= 0 {
		pos := start + parsers.ISALength + i
		if end := bytes.IndexByte(data[pos:], terminator); end >= 0 {
			stop := pos + end + 1
			return stop, data[start:stop], nil
		}
	}
	if atEOF {
		return len(data), data[start:], nil
	}
	return start, nil, nil
}

// envelopeKey returns ISA06 and ISA13 of a message, trimmed.
func envelopeKey(message string) (string, string) {
	delims, err := parsers.ReadDelimiters(message)
	if err != nil {
		return "", ""
	}
	header := strings.Split(strings.TrimLeft(message, " \t\r\n")[:104], string(delims.Element))
	return strings.TrimSpace(header[6]), strings.TrimSpace(header[13])
}
