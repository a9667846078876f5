package ftpserver

import (
	"io"
	"net"
	"os"
	"strconv"
	"time"
)

// transferRetrieve serves a RETR: opens path for reading at offset and
// streams its raw bytes to conn. No ASCII/CRLF conversion is applied
// regardless of TYPE; BinaryFlag only affects the reply text.
func transferRetrieve(env *Environment, path string, offset int64, conn net.Conn) (int, string) {
	f, err := env.FS.Open(path)
	if err != nil {
		return StatusActionNotTaken, "Could not open file for reading."
	}
	defer f.Close()

	if offset > 0 {
		if _, err := f.Seek(offset, io.SeekStart); err != nil {
			return StatusActionNotTaken, "Could not seek to requested offset."
		}
	}

	if _, err := io.Copy(conn, f); err != nil {
		return StatusActionAbortedLocalError, "Error reading file."
	}

	return StatusDataConnClosingOK, "Transfer complete."
}

// transferStore serves STOR/APPE: writes conn's bytes into path, truncating
// unless append is set or a REST offset is pending (then writing starts at
// offset over the existing bytes).
func transferStore(env *Environment, path string, offset int64, conn net.Conn, appendMode bool) (int, string) {
	flags := os.O_WRONLY | os.O_CREATE

	switch {
	case appendMode:
		flags |= os.O_APPEND
	case offset > 0:
		// REST before STOR: keep the existing bytes before offset.
	default:
		flags |= os.O_TRUNC
	}

	f, err := env.FS.OpenFile(path, flags, 0o644)
	if err != nil {
		return StatusActionNotTaken, "Could not open file for writing."
	}
	defer f.Close()

	if !appendMode && offset > 0 {
		if _, err := f.Seek(offset, io.SeekStart); err != nil {
			return StatusActionNotTaken, "Could not seek to requested offset."
		}
	}

	if _, err := io.Copy(f, conn); err != nil {
		return StatusConnectionClosed, "Error writing file."
	}

	return StatusDataConnClosingOK, "Transfer complete."
}

// transferStoreUnique serves STOU: creates a new, guaranteed-unused file
// under dir and streams conn's bytes into it.
func transferStoreUnique(env *Environment, dir string, conn net.Conn) (int, string) {
	name := dir + "/" + uniqueFileName()

	f, err := env.FS.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return StatusActionNotTaken, "Could not create unique file."
	}
	defer f.Close()

	if _, err := io.Copy(f, conn); err != nil {
		return StatusConnectionClosed, "Error writing file."
	}

	return StatusDataConnClosingOK, "Transfer complete: " + name
}

// uniqueFileName builds a STOU target name from the current time; a
// production driver would retry on collision, but the granularity here
// makes one vanishingly unlikely within a session.
func uniqueFileName() string {
	return "ftp-" + strconv.FormatInt(time.Now().UnixNano(), 36)
}

// transferList serves LIST/NLST: renders the directory's contents and
// writes them to conn. nameListOnly selects NLST's bare-name form.
func transferList(env *Environment, path string, conn net.Conn, nameListOnly bool) (int, string) {
	entries, err := readDirEntries(env.FS, path)
	if err != nil {
		return StatusActionNotTaken, "Could not list directory."
	}

	var rendered string
	if nameListOnly {
		rendered = renderNlst(entries)
	} else {
		rendered = renderListing(entries)
	}

	if _, err := io.WriteString(conn, rendered); err != nil {
		return StatusConnectionClosed, "Error writing listing."
	}

	return StatusDataConnClosingOK, "Transfer complete."
}
