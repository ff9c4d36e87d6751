package charsource

import "bytes"

// DetectEncoding inspects up to the first four bytes of a stream and
// maps them to a canonical encoding name plus the number of leading
// bytes that are BOM and should be skipped, per XML 1.0 Appendix F. An
// override, when non-empty, always wins and implies no BOM to skip.
//
// The four-byte UTF-32 BOM patterns are checked before the two-byte
// UTF-16 ones because FF FE 00 00 (UTF-32LE BOM) would otherwise be
// mistaken for FF FE (UTF-16LE BOM).
func DetectEncoding(lead []byte, override string) (name string, bomLen int) {
	if override != "" {
		return override, 0
	}
	for _, p := range bomPatterns {
		if bytes.HasPrefix(lead, p.pattern) {
			return p.name, len(p.pattern)
		}
	}
	for _, p := range heuristicPatterns {
		if bytes.HasPrefix(lead, p.pattern) {
			return p.name, 0
		}
	}
	return "utf-8", 0
}

type bomPattern struct {
	pattern []byte
	name    string
}

var bomPatterns = []bomPattern{
	{[]byte{0x00, 0x00, 0xFE, 0xFF}, "utf-32be"},
	{[]byte{0xFF, 0xFE, 0x00, 0x00}, "utf-32le"},
	{[]byte{0xEF, 0xBB, 0xBF}, "utf-8"},
	{[]byte{0xFE, 0xFF}, "utf-16be"},
	{[]byte{0xFF, 0xFE}, "utf-16le"},
}

// heuristicPatterns are the BOM-less patterns from XML 1.0 Appendix F:
// the first four bytes of a document starting "<?xm", which cover "<"
// in UTF-32, "<?" in UTF-16, and "<?xm" in UTF-8.
var heuristicPatterns = []bomPattern{
	{[]byte{0x00, 0x00, 0x00, 0x3C}, "utf-32be"},
	{[]byte{0x3C, 0x00, 0x00, 0x00}, "utf-32le"},
	{[]byte{0x00, 0x3C, 0x00, 0x3F}, "utf-16be"},
	{[]byte{0x3C, 0x00, 0x3F, 0x00}, "utf-16le"},
	{[]byte{0x3C, 0x3F, 0x78, 0x6D}, "utf-8"},
}
