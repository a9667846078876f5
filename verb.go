package ftpserver

import "strings"

// Verb identifies a supported FTP command. It is a closed enumeration:
// unknown tokens never produce a Verb, they produce a CommandError instead.
type Verb string

// Supported verbs. XCWD/XCUP/XPWD/XMKD/XRMD are the RFC 775 aliases of
// their non-X counterparts; parseVerb folds them to the canonical form so
// the registry only ever sees one identity per operation.
const (
	VerbUSER Verb = "USER"
	VerbPASS Verb = "PASS"
	VerbACCT Verb = "ACCT"
	VerbCWD  Verb = "CWD"
	VerbCDUP Verb = "CDUP"
	VerbPWD  Verb = "PWD"
	VerbTYPE Verb = "TYPE"
	VerbSTRU Verb = "STRU"
	VerbMODE Verb = "MODE"
	VerbPASV Verb = "PASV"
	VerbPORT Verb = "PORT"
	VerbREST Verb = "REST"
	VerbRETR Verb = "RETR"
	VerbSTOR Verb = "STOR"
	VerbAPPE Verb = "APPE"
	VerbSTOU Verb = "STOU"
	VerbALLO Verb = "ALLO"
	VerbLIST Verb = "LIST"
	VerbNLST Verb = "NLST"
	VerbMKD  Verb = "MKD"
	VerbRMD  Verb = "RMD"
	VerbDELE Verb = "DELE"
	VerbRNFR Verb = "RNFR"
	VerbRNTO Verb = "RNTO"
	VerbSYST Verb = "SYST"
	VerbSTAT Verb = "STAT"
	VerbHELP Verb = "HELP"
	VerbNOOP Verb = "NOOP"
	VerbQUIT Verb = "QUIT"
)

// verbAliases maps the X-prefixed RFC 775 directory-command aliases onto
// their canonical verb.
var verbAliases = map[string]Verb{ //nolint:gochecknoglobals
	"XCWD": VerbCWD,
	"XCUP": VerbCDUP,
	"XPWD": VerbPWD,
	"XMKD": VerbMKD,
	"XRMD": VerbRMD,
}

// knownVerbs is the closed set of canonical verbs the parser accepts.
var knownVerbs = map[Verb]bool{ //nolint:gochecknoglobals
	VerbUSER: true, VerbPASS: true, VerbACCT: true,
	VerbCWD: true, VerbCDUP: true, VerbPWD: true,
	VerbTYPE: true, VerbSTRU: true, VerbMODE: true,
	VerbPASV: true, VerbPORT: true, VerbREST: true,
	VerbRETR: true, VerbSTOR: true, VerbAPPE: true, VerbSTOU: true,
	VerbALLO: true, VerbLIST: true, VerbNLST: true,
	VerbMKD: true, VerbRMD: true, VerbDELE: true,
	VerbRNFR: true, VerbRNTO: true,
	VerbSYST: true, VerbSTAT: true, VerbHELP: true,
	VerbNOOP: true, VerbQUIT: true,
}

// parseVerb uppercases and alias-resolves a raw verb token. It returns
// false if the token isn't in the closed verb set.
func parseVerb(token string) (Verb, bool) {
	upper := strings.ToUpper(token)

	if alias, ok := verbAliases[upper]; ok {
		return alias, true
	}

	v := Verb(upper)
	if knownVerbs[v] {
		return v, true
	}

	return "", false
}
