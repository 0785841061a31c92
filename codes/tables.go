package codes

// creditAlphabet is the 31-symbol character set of GB 32100-2015.
// The index of a character is its numeric value in the composite
// checksum. I, O, S, V and Z are excluded by the standard to avoid
// visual confusion with digits.
const creditAlphabet = "0123456789ABCDEFGHJKLMNPQRTUWXY"

// creditValue maps a byte to its creditAlphabet value, or -1 for
// bytes outside the alphabet. Bytes >= 128 must be guarded by callers.
var creditValue [128]int8

func init() {
	for i := range creditValue {
		creditValue[i] = -1
	}
	for i := 0; i < len(creditAlphabet); i++ {
		creditValue[creditAlphabet[i]] = int8(i)
	}
}

// creditWeights are the positional weights for the composite checksum
// over positions 0-16 (3^i mod 31, per GB 32100-2015).
var creditWeights = [17]int{1, 3, 9, 27, 19, 26, 16, 17, 20, 29, 25, 13, 8, 24, 10, 30, 28}

// orgWeights are the positional weights for the organization-code
// checksum over positions 8-15 (GB 11714-1997).
var orgWeights = [8]int{3, 7, 9, 10, 5, 8, 4, 2}

// orgValue maps a byte to its value in the 36-symbol organization-code
// alphabet (0-9, A-Z), or -1 for bytes outside it.
func orgValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	}
	return -1
}

// departmentSubCodes maps each recognized registration-department code
// (character 1 of a USCC) to the sub-codes it may carry (character 2).
var departmentSubCodes = map[byte]string{
	'1': "1239", // institutional registration
	'5': "1239", // civil affairs
	'9': "123",  // industry and commerce
	'Y': "1",    // other registries
}

// regionPrefixes is the coarse whitelist of leading administrative
// division digits (characters 3-4 of a USCC), grouped by zone per
// GB/T 2260. Only the first two digits are checked; validating the
// full six-digit division code is out of scope.
var regionPrefixes = map[string]bool{
	// North
	"11": true, "12": true, "13": true, "14": true, "15": true,
	// Northeast
	"21": true, "22": true, "23": true,
	// East
	"31": true, "32": true, "33": true, "34": true, "35": true, "36": true, "37": true,
	// Central-South
	"41": true, "42": true, "43": true, "44": true, "45": true, "46": true,
	// Southwest
	"50": true, "51": true, "52": true, "53": true, "54": true,
	// Northwest
	"61": true, "62": true, "63": true, "64": true, "65": true,
	// Taiwan, Hong Kong, Macau
	"71": true, "81": true, "82": true,
}
