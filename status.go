// Package ftpserver implements a classic (RFC 959) FTP server: a control
// connection session engine, command parser, verb registry and the
// active/passive data channel manager that backs file and directory
// transfers.
package ftpserver

// Status codes are the exact three-digit FTP reply codes used by the
// executors. Names follow RFC 959 wording where one exists.
const (
	StatusServiceReady            = 220 // greeting
	StatusClosingControlConn      = 221 // QUIT
	StatusDataConnClosingOK       = 226 // transfer complete
	StatusEnteringPassive         = 227 // PASV
	StatusUserLoggedIn            = 230 // USER/PASS ok (incl. anonymous)
	StatusPathCreated             = 257 // PWD, MKD
	StatusUserOK                  = 331 // USER ok, need password
	StatusAlreadyLoggedIn         = 202 // PASS when already anonymous; ALLO no-op; ACCT ok
	StatusFileActionPending       = 350 // REST, RNFR
	StatusFileOK                  = 250 // CWD, CDUP, DELE, RMD success, RNTO
	StatusCommandOK               = 200 // TYPE, STRU, MODE, PORT, NOOP
	StatusSystemType              = 215 // SYST
	StatusHelp                    = 211 // HELP
	StatusFileStatusOK            = 150 // opening data connection
	StatusSyntaxError             = 500 // parse error, command too long, unknown verb
	StatusSyntaxErrorParameters   = 501 // bad/missing argument
	StatusNotImplemented          = 502 // STAT
	StatusBadCommandSequence      = 503 // PASS before USER, RNTO before RNFR, ACCT before PASS
	StatusNotImplementedForParam  = 504 // bad TYPE/STRU/MODE argument; HELP with an argument
	StatusNotLoggedIn             = 530 // bad credentials, ACCT without login
	StatusActionNotTaken          = 550 // file/dir not found or inaccessible
	StatusFileNameNotAllowed      = 553 // invalid target name
	StatusLocalError              = 451 // a true ExecutionError
	StatusCantOpenDataConnection  = 425 // no data connection available
	StatusConnectionClosed        = 426 // data write error mid-transfer
	StatusActionAbortedLocalError = 551 // data read error mid-transfer
)
