// Package fusefs serves filesystem callbacks on a FUSE mount point through bazil.org/fuse.
package fusefs

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path"

	"bazil.org/fuse"
	"bazil.org/fuse/fs"
	"golang.org/x/sys/unix"

	"github.com/gostonefire/mchashbrowns/internal/conf"
	"github.com/gostonefire/mchashbrowns/internal/model"
)

// Callbacks - Path based filesystem operations, implemented by frier.Adapter
type Callbacks interface {
	Getattr(path string) (model.Attr, error)
	Open(path string) (directIO bool, err error)
	Read(path string, size int, offset int64) ([]byte, error)
	Write(path string, data []byte, offset int64) (int, error)
	Readdir(path string) ([]model.Dirent, error)
}

// Options - Mount options
type Options struct {
	FSName     string
	AllowOther bool
}

// Mount - Mounts the callbacks on mountpoint and serves requests until ctx is cancelled or the kernel
// connection ends. Cancelling ctx unmounts the filesystem before returning. Callbacks having a Close method,
// like frier.Adapter, are closed once serving has stopped.
func Mount(ctx context.Context, mountpoint string, callbacks Callbacks, options Options, logger *log.Logger) (err error) {
	if closer, ok := callbacks.(interface{ Close() }); ok {
		defer closer.Close()
	}

	mountOptions := []fuse.MountOption{fuse.FSName(options.FSName), fuse.Subtype(conf.FileName)}
	if options.AllowOther {
		mountOptions = append(mountOptions, fuse.AllowOther())
	}

	c, err := fuse.Mount(mountpoint, mountOptions...)
	if err != nil {
		return fmt.Errorf("mount %s: %w", mountpoint, err)
	}
	defer func() {
		if closeErr := c.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	logger.Printf("mounted %s on %s", options.FSName, mountpoint)

	served := make(chan error, 1)
	go func() {
		served <- fs.Serve(c, FS{callbacks: callbacks})
	}()

	select {
	case err = <-served:
		return
	case <-ctx.Done():
	}

	logger.Printf("unmounting %s", mountpoint)
	if err = fuse.Unmount(mountpoint); err != nil {
		return fmt.Errorf("unmount %s: %w", mountpoint, err)
	}

	err = <-served

	return
}

// FS - The filesystem root handed to fs.Serve
type FS struct {
	callbacks Callbacks
}

// NewFS - Returns a filesystem serving callbacks, for use with fs.Serve
func NewFS(callbacks Callbacks) FS {
	return FS{callbacks: callbacks}
}

// Root - Returns the root directory node
func (F FS) Root() (fs.Node, error) {
	return dir{callbacks: F.callbacks, path: conf.RootPath}, nil
}

// dir - A directory node
type dir struct {
	callbacks Callbacks
	path      string
}

func (D dir) Attr(_ context.Context, a *fuse.Attr) error {
	return getattr(D.callbacks, D.path, a)
}

func (D dir) Lookup(_ context.Context, name string) (fs.Node, error) {
	p := path.Join(D.path, name)

	attr, err := D.callbacks.Getattr(p)
	if err != nil {
		return nil, toErrno(err)
	}

	if attr.Mode.IsDir() {
		return dir{callbacks: D.callbacks, path: p}, nil
	}

	return file{callbacks: D.callbacks, path: p}, nil
}

func (D dir) ReadDirAll(_ context.Context) ([]fuse.Dirent, error) {
	entries, err := D.callbacks.Readdir(D.path)
	if err != nil {
		return nil, toErrno(err)
	}

	dirents := make([]fuse.Dirent, 0, len(entries))
	for _, entry := range entries {
		dirents = append(dirents, toDirent(entry))
	}

	return dirents, nil
}

// file - A regular file node, also used as its own handle
type file struct {
	callbacks Callbacks
	path      string
}

func (F file) Attr(_ context.Context, a *fuse.Attr) error {
	return getattr(F.callbacks, F.path, a)
}

func (F file) Open(_ context.Context, _ *fuse.OpenRequest, resp *fuse.OpenResponse) (fs.Handle, error) {
	directIO, err := F.callbacks.Open(F.path)
	if err != nil {
		return nil, toErrno(err)
	}

	if directIO {
		resp.Flags |= fuse.OpenDirectIO
	}

	return F, nil
}

func (F file) Read(_ context.Context, req *fuse.ReadRequest, resp *fuse.ReadResponse) error {
	data, err := F.callbacks.Read(F.path, req.Size, req.Offset)
	if err != nil {
		return toErrno(err)
	}
	resp.Data = data

	return nil
}

func (F file) Write(_ context.Context, req *fuse.WriteRequest, resp *fuse.WriteResponse) error {
	n, err := F.callbacks.Write(F.path, req.Data, req.Offset)
	if err != nil {
		return toErrno(err)
	}
	resp.Size = n

	return nil
}

// Setattr - Accepts truncation from shells opening the file with O_TRUNC, the content is owned by the callbacks
func (F file) Setattr(ctx context.Context, _ *fuse.SetattrRequest, resp *fuse.SetattrResponse) error {
	return F.Attr(ctx, &resp.Attr)
}

// getattr - Fills a with the attributes of path
func getattr(callbacks Callbacks, p string, a *fuse.Attr) error {
	attr, err := callbacks.Getattr(p)
	if err != nil {
		return toErrno(err)
	}

	a.Mode = attr.Mode
	a.Nlink = attr.Nlink
	a.Size = attr.Size
	a.Uid = attr.Uid
	a.Gid = attr.Gid
	a.Valid = 0

	return nil
}

// toDirent - Converts a directory entry to its FUSE form
func toDirent(entry model.Dirent) fuse.Dirent {
	dirent := fuse.Dirent{Name: entry.Name, Type: fuse.DT_File}
	if entry.IsDir {
		dirent.Type = fuse.DT_Dir
	}

	return dirent
}

// toErrno - Maps a callback error to the errno replied to the kernel, EIO when it carries none
func toErrno(err error) error {
	var errno unix.Errno
	if errors.As(err, &errno) {
		return fuse.Errno(errno)
	}

	return fuse.Errno(unix.EIO)
}
