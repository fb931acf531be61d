package logext

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/hardskulls/error-traits/pkg/traits"
	"github.com/stretchr/testify/assert"
)

func captureLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewTextHandler(buf, nil)), buf
}

func TestLogErr_ErrVariant(t *testing.T) {
	assert := assert.New(t)

	l, buf := captureLogger()
	SetLogger(l)
	defer SetLogger(nil)

	r := traits.Err[int](errors.New("connection refused"))

	out := LogErr(r, "dial: ")

	assert.Equal(r, out, "result should pass through unchanged")
	assert.Contains(buf.String(), "dial: connection refused")
	assert.Contains(buf.String(), "level=ERROR")
	assert.Equal(1, strings.Count(buf.String(), "msg="), "should emit exactly once")
}

func TestLogErr_OkVariant_NoEmission(t *testing.T) {
	assert := assert.New(t)

	l, buf := captureLogger()
	SetLogger(l)
	defer SetLogger(nil)

	r := traits.Ok[int, error](42)

	out := LogErr(r, "dial: ")

	assert.Equal(r, out, "result should pass through unchanged")
	assert.Empty(buf.String(), "nothing should be emitted on the Ok path")
}

func TestLogErr_NonErrorFailureType(t *testing.T) {
	assert := assert.New(t)

	l, buf := captureLogger()
	SetLogger(l)
	defer SetLogger(nil)

	LogErr(traits.Err[string](404), "status: ")

	assert.Contains(buf.String(), "status: 404")
}

func TestSetLogger_NilRestoresDefault(t *testing.T) {
	l, _ := captureLogger()
	SetLogger(l)
	SetLogger(nil)

	if active() != slog.Default() {
		t.Fatalf("nil should restore the process default logger")
	}
}

func TestSetLogger_ConcurrentSwap(t *testing.T) {
	defer SetLogger(nil)

	quietA := slog.New(slog.NewTextHandler(io.Discard, nil))
	quietB := slog.New(slog.NewTextHandler(io.Discard, nil))

	var wg sync.WaitGroup
	for n := 0; n < 8; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				if i%2 == 0 {
					SetLogger(quietA)
				} else {
					SetLogger(quietB)
				}
				LogErr(traits.Err[int]("swap"), "race: ")
			}
		}()
	}
	wg.Wait()
}
