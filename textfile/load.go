package textfile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/guiguan/caster"
	"github.com/npillmayer/ustr"
)

/*
BSD 3-Clause License

Copyright (c) 2020–26, Norbert Pillmayer

Please refer to the License file in the repository root.
*/

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 102400
	oneMb     = 1048576
)

// ErrLoadAborted is returned if loading stops before all fragments arrived.
var ErrLoadAborted = errors.New("textfile: loading aborted")

// fragment is a piece of a file's content, broadcast by the reading goroutine.
type fragment struct {
	pos  int64  // start position of this fragment within the file
	data []byte // content of this fragment
	err  error  // I/O error encountered while reading this fragment
}

// textFile represents an OS file which will be loaded as a string.
type textFile struct {
	path string         // file name
	info os.FileInfo    // result from Stat(path)
	file *os.File       // file handle
	cast *caster.Caster // broadcaster for loaded fragments
}

// Load reads a file, which should be a text file, and returns its content as a
// ustr.String.
//
// Clients may indicate a recommended fragment length. A fragSize of 0 lets
// Load choose a sensible default depending on the size of the file.
// Cancelling ctx aborts loading.
func Load(ctx context.Context, name string, fragSize int64) (*ustr.String, error) {
	tf, err := openFile(name)
	if err != nil {
		return nil, err
	}
	defer tf.file.Close()
	size := tf.info.Size()
	if size == 0 {
		return ustr.FromBytes([]byte{}), nil
	}
	fragSize = fragmentSize(size, fragSize)
	tracer().Debugf("textfile: loading %s (%d bytes) in fragments of %d", name, size, fragSize)
	content, err := tf.loadAllFragments(ctx, fragSize)
	if err != nil {
		return nil, err
	}
	return ustr.FromBytes(content), nil
}

// openFile opens an OS file and collect some useful information on it,
// checking for error conditions.
func openFile(name string) (*textFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("textfile: %s is not a regular file", name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	return &textFile{
		path: name,
		info: fi,
		file: file,
	}, nil
}

func fragmentSize(size int64, fragSize int64) int64 {
	if fragSize <= 0 || fragSize > tenKb {
		if size < 64 {
			fragSize = size
		} else if size < 1024 {
			fragSize = 64
		} else if size < tenKb {
			fragSize = 256
		} else if size < hundredKb {
			fragSize = 512
		} else if size < oneMb {
			fragSize = twoKb
		} else {
			fragSize = sixKb
		}
	}
	return min(fragSize, size)
}

// loadAllFragments starts a goroutine reading the file fragment by fragment,
// and collects the broadcast fragments into a single byte slice.
func (tf *textFile) loadAllFragments(ctx context.Context, fragSize int64) ([]byte, error) {
	tf.cast = caster.New(ctx) // we will broadcast messages when fragments are loaded
	defer tf.cast.Close()
	ch, ok := tf.cast.Sub(ctx, 4)
	if !ok {
		return nil, ErrLoadAborted
	}
	size := tf.info.Size()
	count := (size + fragSize - 1) / fragSize
	go tf.readFragments(fragSize)
	content := make([]byte, size)
	for received := int64(0); received < count; received++ {
		msg, ok := <-ch
		if !ok {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, ErrLoadAborted
		}
		frag := msg.(*fragment)
		if frag.err != nil {
			return nil, frag.err
		}
		copy(content[frag.pos:], frag.data)
		tracer().Debugf("textfile: fragment @%d with %d bytes loaded", frag.pos, len(frag.data))
	}
	return content, nil
}

// readFragments iterates over the file and publishes every fragment of text.
// It stops at the first I/O error or when the broadcaster has been closed.
func (tf *textFile) readFragments(fragSize int64) {
	size := tf.info.Size()
	for pos := int64(0); pos < size; pos += fragSize {
		buf := make([]byte, min(fragSize, size-pos))
		cnt, err := tf.file.ReadAt(buf, pos)
		frag := &fragment{pos: pos, data: buf[:cnt]}
		if err != nil && err != io.EOF {
			frag.err = fmt.Errorf("textfile: error loading fragment of %s: %w", tf.path, err)
		} else if cnt < len(buf) {
			frag.err = fmt.Errorf("textfile: not all bytes loaded for fragment @%d of %s", pos, tf.path)
		}
		if !tf.cast.Pub(frag) || frag.err != nil {
			return
		}
	}
}
