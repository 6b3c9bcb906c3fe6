package model

import "os"

// Attr - File attributes as reported by the getattr callback
type Attr struct {
	Mode  os.FileMode
	Nlink uint32
	Size  uint64
	Uid   uint32
	Gid   uint32
}

// Dirent - One directory entry as reported by the readdir callback
type Dirent struct {
	Name  string
	IsDir bool
}
