// Package codes validates Unified Social Credit Codes (USCC), the
// 18-character identifiers assigned to legal entities and organizations
// in China under GB 32100-2015.
package codes

import (
	"fmt"
	"strings"
)

// Reason identifies why a code failed validation.
type Reason int

const (
	// OK means the code passed every check.
	OK Reason = iota
	// BadFormat means the code is empty, not 18 characters long, or
	// contains a character outside the 31-symbol alphabet.
	BadFormat
	// BadDepartment means characters 1-2 are not a recognized
	// registration department and sub-code pair.
	BadDepartment
	// BadRegion means characters 3-4 are not a known administrative
	// division prefix.
	BadRegion
	// BadOrgCheckChar means the organization-code check character
	// (position 17) does not match the mod-11 checksum.
	BadOrgCheckChar
	// BadCheckChar means the final check character does not match the
	// mod-31 checksum over the first 17 characters.
	BadCheckChar
)

func (r Reason) String() string {
	switch r {
	case OK:
		return "valid"
	case BadFormat:
		return "malformed code"
	case BadDepartment:
		return "unknown registration department"
	case BadRegion:
		return "unknown region prefix"
	case BadOrgCheckChar:
		return "organization code check character mismatch"
	case BadCheckChar:
		return "check character mismatch"
	}
	return "unknown"
}

// IsValidUSCC checks if a string is a valid Unified Social Credit Code.
// It never panics; any malformed input is simply reported as invalid.
func IsValidUSCC(s string) bool {
	return ValidateUSCC(s) == OK
}

// ValidateUSCC checks a Unified Social Credit Code and returns the first
// failing check, or OK. Input is uppercased before any check; no other
// normalization is applied.
//
// Checks run in order: character set and length, registration
// department, region prefix, organization-code checksum (mod 11),
// composite checksum (mod 31).
func ValidateUSCC(s string) Reason {
	code := strings.ToUpper(s)
	if !wellFormed(code) {
		return BadFormat
	}
	if !validDepartment(code[0], code[1]) {
		return BadDepartment
	}
	if !regionPrefixes[code[2:4]] {
		return BadRegion
	}
	if c, ok := orgCheckChar(code[8:16]); !ok || c != code[16] {
		return BadOrgCheckChar
	}
	if c, ok := checkChar(code[:17]); !ok || c != code[17] {
		return BadCheckChar
	}
	return OK
}

// CompleteUSCC computes the two check characters for a 16-character
// code stem (registration department, region, division remainder and
// organization body) and returns the full 18-character code. The stem
// is uppercased first.
func CompleteUSCC(stem string) (string, error) {
	s := strings.ToUpper(stem)
	if len(s) != 16 {
		return "", fmt.Errorf("code stem must be 16 characters, got %d", len(s))
	}
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 128 || creditValue[c] < 0 {
			return "", fmt.Errorf("invalid character %q at position %d", s[i], i+1)
		}
	}
	// The 31-symbol alphabet is a subset of the organization-code
	// alphabet, so this lookup cannot fail for a well-formed stem.
	org, ok := orgCheckChar(s[8:16])
	if !ok {
		return "", fmt.Errorf("organization body %q is outside the code alphabet", s[8:16])
	}
	full := s + string(org)
	c, _ := checkChar(full)
	return full + string(c), nil
}

// wellFormed reports whether code is exactly 18 bytes of the 31-symbol
// alphabet.
func wellFormed(code string) bool {
	if len(code) != 18 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if c := code[i]; c >= 128 || creditValue[c] < 0 {
			return false
		}
	}
	return true
}

// validDepartment reports whether dept is a recognized registration
// department carrying an allowed sub-code.
func validDepartment(dept, sub byte) bool {
	subs, ok := departmentSubCodes[dept]
	return ok && strings.IndexByte(subs, sub) >= 0
}

// orgCheckChar computes the mod-11 check character for the 8-character
// organization-code body. It returns ok=false if a character is outside
// the organization-code alphabet; callers must treat that as invalid.
func orgCheckChar(body string) (byte, bool) {
	sum := 0
	for i := 0; i < len(body); i++ {
		v := orgValue(body[i])
		if v < 0 {
			return 0, false
		}
		sum += v * orgWeights[i]
	}
	switch c := 11 - sum%11; c {
	case 11:
		return '0', true
	case 10:
		return 'X', true
	default:
		return byte('0' + c), true
	}
}

// checkChar computes the mod-31 composite check character over the
// first 17 characters of a code. It returns ok=false if a character is
// outside the 31-symbol alphabet.
func checkChar(prefix string) (byte, bool) {
	sum := 0
	for i := 0; i < len(prefix); i++ {
		c := prefix[i]
		if c >= 128 || creditValue[c] < 0 {
			return 0, false
		}
		sum += int(creditValue[c]) * creditWeights[i]
	}
	return creditAlphabet[(31-sum%31)%31], true
}
