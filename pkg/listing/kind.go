package listing

import "os"

// EntryKind classifies a directory child.
type EntryKind int

const (
	Directory EntryKind = iota
	File
	Symlink
)

func (k EntryKind) String() string {
	switch k {
	case Directory:
		return "directory"
	case File:
		return "file"
	case Symlink:
		return "symlink"
	default:
		return "unknown"
	}
}

// KindOf classifies an entry by its own metadata. The directory check comes
// first and link targets are never resolved, so a link to a directory is a
// Symlink.
func KindOf(info os.FileInfo) EntryKind {
	switch {
	case info.IsDir():
		return Directory
	case info.Mode()&os.ModeSymlink != 0:
		return Symlink
	default:
		return File
	}
}
