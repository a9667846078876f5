package ftpserver

import "strings"

// PWD/CWD replies reversibly quote LF as NUL so a filename containing a
// newline can survive the line-oriented control protocol. The decoding side
// runs in resolvePath, so NUL in any path argument (not only CWD's) is read
// back as LF. LIST/NLST output is never quoted.

func encodeLFQuoting(s string) string {
	return strings.ReplaceAll(s, "\n", "\x00")
}

func decodeLFQuoting(s string) string {
	return strings.ReplaceAll(s, "\x00", "\n")
}
