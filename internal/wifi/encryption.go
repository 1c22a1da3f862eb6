package wifi

import "strings"

// Encryption is the security protocol of a network.
type Encryption string

const (
	EncryptionOpen    Encryption = "Open"
	EncryptionWEP     Encryption = "WEP"
	EncryptionWPA     Encryption = "WPA"
	EncryptionWPA2    Encryption = "WPA2"
	EncryptionWPA3    Encryption = "WPA3"
	EncryptionUnknown Encryption = "Unknown"
)

// Encryptions lists every accepted encryption value.
var Encryptions = []Encryption{
	EncryptionOpen, EncryptionWEP, EncryptionWPA, EncryptionWPA2, EncryptionWPA3, EncryptionUnknown,
}

// EncryptionInfo describes the security of an encryption protocol.
type EncryptionInfo struct {
	Security    string `json:"security"`
	Description string `json:"description"`
}

var encryptionInfo = map[Encryption]EncryptionInfo{
	EncryptionOpen:    {Security: "Critical", Description: "No encryption - completely vulnerable"},
	EncryptionWEP:     {Security: "Critical", Description: "Outdated and easily cracked"},
	EncryptionWPA:     {Security: "Poor", Description: "Outdated, vulnerable to attacks"},
	EncryptionWPA2:    {Security: "Good", Description: "Current standard, reasonably secure"},
	EncryptionWPA3:    {Security: "Excellent", Description: "Latest standard, highly secure"},
	EncryptionUnknown: {Security: "Unknown", Description: "Unable to determine encryption"},
}

// Info returns the description of e. Unrecognised values are described as Unknown.
func (e Encryption) Info() EncryptionInfo {
	if info, ok := encryptionInfo[e]; ok {
		return info
	}
	return encryptionInfo[EncryptionUnknown]
}

// ParseEncryption maps s to an Encryption, ignoring case and surrounding space.
// Unrecognised non-empty values map to EncryptionUnknown.
func ParseEncryption(s string) (Encryption, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrMissingEncryption
	}
	for _, e := range Encryptions {
		if strings.EqualFold(s, string(e)) {
			return e, nil
		}
	}
	if strings.EqualFold(s, "none") {
		return EncryptionOpen, nil
	}
	return EncryptionUnknown, nil
}
