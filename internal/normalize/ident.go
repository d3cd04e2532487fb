package normalize

import "regexp"

var identInvalid = regexp.MustCompile(`[^A-Za-z0-9_$]`)

// ECMAScript reserved words that would clash with generated element names.
var reservedWords = map[string]struct{}{
	"break": {}, "case": {}, "catch": {}, "class": {}, "const": {},
	"continue": {}, "debugger": {}, "default": {}, "delete": {}, "do": {},
	"else": {}, "enum": {}, "export": {}, "extends": {}, "false": {},
	"finally": {}, "for": {}, "function": {}, "if": {}, "import": {},
	"in": {}, "instanceof": {}, "let": {}, "new": {}, "null": {},
	"return": {}, "super": {}, "switch": {}, "this": {}, "throw": {},
	"true": {}, "try": {}, "typeof": {}, "var": {}, "void": {},
	"while": {}, "with": {}, "yield": {},
}

// Identifier derives a JS-safe element name from a provider id and
// approval number. Distinct records can collide; the ids only
// disambiguate generated document fragments.
func Identifier(providerID, approvalNo string) string {
	return sanitizeIdentifier(providerID + "_" + approvalNo)
}

// sanitizeIdentifier maps every character outside [A-Za-z0-9_$] to "_",
// prefixes "_" when the first character cannot start an identifier, and
// suffixes "_" on reserved-word collisions.
func sanitizeIdentifier(s string) string {
	id := identInvalid.ReplaceAllString(s, "_")
	if id == "" || !startsIdentifier(id[0]) {
		id = "_" + id
	}
	if _, ok := reservedWords[id]; ok {
		id += "_"
	}
	return id
}

func startsIdentifier(c byte) bool {
	return c == '_' || c == '$' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
