package tablesource

import (
	"bytes"
	"io/fs"
	"path"
	"time"
)

// memFile is a read-only fs.File over downloaded bytes.
type memFile struct {
	*bytes.Reader
	info memFileInfo
}

func newMemFile(name string, data []byte) *memFile {
	return &memFile{
		Reader: bytes.NewReader(data),
		info:   memFileInfo{name: path.Base(name), size: int64(len(data))},
	}
}

func (f *memFile) Stat() (fs.FileInfo, error) { return f.info, nil }
func (f *memFile) Close() error               { return nil }

type memFileInfo struct {
	name string
	size int64
}

func (i memFileInfo) Name() string       { return i.name }
func (i memFileInfo) Size() int64        { return i.size }
func (i memFileInfo) Mode() fs.FileMode  { return 0o444 }
func (i memFileInfo) ModTime() time.Time { return time.Time{} }
func (i memFileInfo) IsDir() bool        { return false }
func (i memFileInfo) Sys() any           { return nil }
