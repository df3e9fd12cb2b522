// Package logutil routes the standard logger to a size-rotated debug file.
package logutil

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

const (
	logFileName  = "desktop_utils_debug.log"
	maxSizeBytes = 10 * 1024 * 1024 // 10 MB
	maxArchives  = 3
)

// Setup sends log output to desktop_utils_debug.log in the working directory,
// rotated at 10 MB with 3 archives. When disabled, log output is discarded.
func Setup(enableFileLogging bool) {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if !enableFileLogging {
		log.SetOutput(io.Discard)
		return
	}
	w, err := openRotating(logFileName, maxSizeBytes, maxArchives)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		return
	}
	log.SetOutput(w)
	log.Printf("LOG: file logging enabled %s", Fields("file", w.path, "max_bytes", w.maxSize, "archives", w.archives))
}

// rotatingFile appends to path and shifts it to path.1 .. path.N once a
// write would take it past maxSize. The oldest archive is dropped.
type rotatingFile struct {
	path     string
	maxSize  int64
	archives int
	f        *os.File
}

func openRotating(path string, maxSize int64, archives int) (*rotatingFile, error) {
	w := &rotatingFile{path: path, maxSize: maxSize, archives: archives}
	if st, err := os.Stat(path); err == nil && st.Size() > maxSize {
		w.shift()
	}
	if err := w.open(); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *rotatingFile) open() error {
	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return err
	}
	w.f = f
	return nil
}

func (w *rotatingFile) Write(p []byte) (int, error) {
	if st, err := w.f.Stat(); err == nil && st.Size() > 0 && st.Size()+int64(len(p)) > w.maxSize {
		_ = w.f.Close()
		w.shift()
		if err := w.open(); err != nil {
			return 0, err
		}
	}
	return w.f.Write(p)
}

func (w *rotatingFile) Close() error { return w.f.Close() }

func (w *rotatingFile) shift() {
	_ = os.Remove(w.archive(w.archives))
	for i := w.archives - 1; i >= 1; i-- {
		_ = os.Rename(w.archive(i), w.archive(i+1))
	}
	_ = os.Rename(w.path, w.archive(1))
}

func (w *rotatingFile) archive(n int) string { return fmt.Sprintf("%s.%d", w.path, n) }

// Fields renders key/value pairs as "k=v k=v". A trailing key without a value
// is dropped. Values containing spaces are quoted.
func Fields(kv ...any) string {
	var b strings.Builder
	for i := 0; i+1 < len(kv); i += 2 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		v := fmt.Sprint(kv[i+1])
		if strings.ContainsAny(v, " \t\n") {
			v = fmt.Sprintf("%q", v)
		}
		fmt.Fprintf(&b, "%v=%s", kv[i], v)
	}
	return b.String()
}
