package csvx

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadLines_MissingFile(t *testing.T) {
	lines, err := ReadLines(filepath.Join(t.TempDir(), "nope.csv"))
	require.NoError(t, err)
	require.Nil(t, lines)
}

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "records.csv")

	want := []string{"a;1", "b;2", "c;3"}
	require.NoError(t, WriteLines(path, want))

	got, err := ReadLines(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestReadLines_SkipsEmptyAndCRLF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.csv")
	require.NoError(t, os.WriteFile(path, []byte("a;1\r\n\nb;2\n\n"), 0o660))

	got, err := ReadLines(path)
	require.NoError(t, err)
	require.Equal(t, []string{"a;1", "b;2"}, got)
}

func TestWriteLines_ReplacesContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.csv")
	require.NoError(t, WriteLines(path, []string{"old;line"}))
	require.NoError(t, WriteLines(path, []string{"new;line"}))

	got, err := ReadLines(path)
	require.NoError(t, err)
	require.Equal(t, []string{"new;line"}, got)
}

func TestAppendLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "records.csv")

	require.NoError(t, AppendLine(path, "a;1"))
	require.NoError(t, AppendLine(path, "b;2"))

	got, err := ReadLines(path)
	require.NoError(t, err)
	require.Equal(t, []string{"a;1", "b;2"}, got)
}

func TestPathLocker_SerializesSamePath(t *testing.T) {
	locker := NewPathLocker()

	var counter int
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locker.Lock("./data/x.csv")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	require.Equal(t, 50, counter)
}

func TestPathLocker_CleansPaths(t *testing.T) {
	locker := NewPathLocker()

	unlock := locker.Lock("data/x.csv")
	done := make(chan struct{})
	go func() {
		u := locker.Lock("./data/x.csv")
		u()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("equivalent path acquired lock while held")
	default:
	}

	unlock()
	<-done
}
