package fileutil

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/gofrs/flock"
	"github.com/oarkflow/json"
)

const tailWindow = 1024

// JSONAppender keeps a file holding one JSON array and appends elements to
// it in place. A sibling ".lock" file serializes writers across processes,
// so several edi runs may export into the same file.
type JSONAppender[T any] struct {
	path string
	file *os.File
	lock *flock.Flock
	mu   sync.Mutex
}

// NewJSONAppender opens or creates path. An existing file must already hold
// a JSON array; truncate starts it over as an empty one.
func NewJSONAppender[T any](path string, truncate bool) (*JSONAppender[T], error) {
	flags := os.O_RDWR | os.O_CREATE
	if truncate {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return nil, err
	}
	ja := &JSONAppender[T]{path: path, file: f, lock: flock.New(path + ".lock")}
	if err := ja.check(); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ja, nil
}

func (ja *JSONAppender[T]) check() error {
	fi, err := ja.file.Stat()
	if err != nil || fi.Size() == 0 {
		return err
	}
	head := make([]byte, min(fi.Size(), 16))
	if _, err := ja.file.ReadAt(head, 0); err != nil && err != io.EOF {
		return err
	}
	if !bytes.HasPrefix(bytes.TrimSpace(head), []byte("[")) {
		return errors.New("file does not hold a JSON array")
	}
	return nil
}

// Append adds elements to the end of the array.
func (ja *JSONAppender[T]) Append(elements ...T) error {
	if len(elements) == 0 {
		return nil
	}
	ja.mu.Lock()
	defer ja.mu.Unlock()
	if err := ja.lock.Lock(); err != nil {
		return err
	}
	defer func() {
		_ = ja.lock.Unlock()
	}()

	var body bytes.Buffer
	for i, element := range elements {
		data, err := json.Marshal(element)
		if err != nil {
			return err
		}
		if i > 0 {
			body.WriteString(",\n  ")
		}
		body.Write(data)
	}

	fi, err := ja.file.Stat()
	if err != nil {
		return err
	}
	offset, empty, err := ja.closingBracket(fi.Size())
	if err != nil {
		return err
	}
	var out bytes.Buffer
	switch {
	case offset < 0:
		out.WriteString("[\n  ")
		offset = 0
	case empty:
		out.WriteString("\n  ")
	default:
		out.WriteString(",\n  ")
	}
	out.Write(body.Bytes())
	out.WriteString("\n]\n")

	if err := ja.file.Truncate(offset); err != nil {
		return err
	}
	if _, err := ja.file.WriteAt(out.Bytes(), offset); err != nil {
		return err
	}
	return ja.file.Sync()
}

// closingBracket finds where new elements go: just after the last non-space
// byte before the final ']'. offset is -1 for an empty file and empty is true
// when the array has no elements yet.
func (ja *JSONAppender[T]) closingBracket(size int64) (offset int64, empty bool, err error) {
	if size == 0 {
		return -1, false, nil
	}
	window := min(size, tailWindow)
	start := size - window
	buf := make([]byte, window)
	if _, err := ja.file.ReadAt(buf, start); err != nil && err != io.EOF {
		return 0, false, err
	}
	end := bytes.LastIndexByte(buf, ']')
	if end < 0 {
		return 0, false, errors.New("invalid JSON file: missing closing bracket")
	}
	content := bytes.TrimRight(buf[:end], " \t\r\n")
	if len(content) == 0 {
		return 0, false, errors.New("invalid JSON file: missing opening bracket")
	}
	return start + int64(len(content)), content[len(content)-1] == '[', nil
}

// Path returns the file being appended to.
func (ja *JSONAppender[T]) Path() string {
	return ja.path
}

// Close closes the underlying file.
func (ja *JSONAppender[T]) Close() error {
	ja.mu.Lock()
	defer ja.mu.Unlock()
	return ja.file.Close()
}
