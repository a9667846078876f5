package ftpserver

import (
	"os"

	"github.com/spf13/afero"
)

// FileSystem is the mountable namespace collaborator: the concrete
// filesystem, treated as an opaque, already-mounted tree with the usual
// POSIX-flavored operations. afero.Fs satisfies it directly, which is how
// the default OS-backed and in-memory test drivers are built.
type FileSystem interface {
	afero.Fs
}

// AuthFunc is the opaque credential predicate:
// (username, password) -> allowed. No password is ever stored in
// SessionState; the predicate is consulted once, synchronously, from PASS.
type AuthFunc func(user, pass string) bool

// AnonymousAuth is the stub auth predicate: grants access to "anonymous"
// with any password, refuses everyone else.
func AnonymousAuth(user, _ string) bool {
	return user == "anonymous"
}

// StaticAccounts builds an AuthFunc from a fixed username->password table,
// falling back to AnonymousAuth for the anonymous user regardless of the
// table's contents.
func StaticAccounts(accounts map[string]string) AuthFunc {
	return func(user, pass string) bool {
		if user == "anonymous" {
			return true
		}

		want, ok := accounts[user]

		return ok && want == pass
	}
}

// fileListing is the minimal slice of os.FileInfo LIST/NLST need; kept as
// its own name so listing.go doesn't reach into os internals directly.
type fileListing = os.FileInfo
