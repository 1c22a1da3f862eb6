package wifi

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/nao1215/secheck/internal/model"
)

var (
	defaultSSIDs       = []string{"admin", "default", "TP-Link", "linksys"}
	nonOverlapChannels = []int{1, 6, 11}
)

const (
	minSSIDLength   = 8
	max24GHzChannel = 13
	strongSignal    = -70
	moderateSignal  = -80
)

func encryptionRule(n Network) []model.Finding {
	switch n.Encryption {
	case EncryptionOpen:
		return []model.Finding{model.NewWarning("wifi_open", 60,
			"CRITICAL: No encryption - network is completely exposed")}
	case EncryptionWEP:
		return []model.Finding{model.NewWarning("wifi_wep", 55,
			"CRITICAL: WEP is outdated and can be cracked in minutes")}
	case EncryptionWPA:
		return []model.Finding{model.NewWarning("wifi_wpa", 35,
			"WARNING: WPA is outdated - upgrade to WPA2/WPA3")}
	case EncryptionWPA2:
		return []model.Finding{model.NewPositive("wifi_wpa2", 10, "WPA2 provides good security")}
	case EncryptionWPA3:
		return []model.Finding{model.NewPositive("wifi_wpa3", 0, "WPA3 is the latest and most secure standard")}
	default:
		return []model.Finding{model.NewWarning("wifi_unknown_encryption", 0, "Unable to determine encryption")}
	}
}

// ssidRule reports the first matching SSID issue, or a positive.
func ssidRule(n Network) []model.Finding {
	switch {
	case slices.Contains(defaultSSIDs, n.SSID):
		return []model.Finding{model.NewWarning("wifi_default_ssid", 15,
			"Default SSID - router uses manufacturer default settings")}
	case strings.Contains(n.SSID, "Guest") || strings.Contains(n.SSID, "Public"):
		return []model.Finding{model.NewWarning("wifi_public_ssid", 20,
			"Guest/Public WiFi - be cautious with sensitive data")}
	case utf8.RuneCountInString(n.SSID) < minSSIDLength:
		return []model.Finding{model.NewWarning("wifi_short_ssid", 10,
			"Short SSID name - easier to target")}
	default:
		return []model.Finding{model.NewPositive("wifi_custom_ssid", 0, "Custom SSID name is good practice")}
	}
}

func hiddenRule(n Network) []model.Finding {
	if n.SSID != "Hidden" && !strings.Contains(n.SSID, "[Hidden]") {
		return nil
	}
	return []model.Finding{model.NewWarning("wifi_hidden_ssid", 5,
		"SSID is hidden - provides obscurity but can be discovered")}
}

func channelRule(n Network) []model.Finding {
	if n.Channel == nil {
		return nil
	}
	ch := *n.Channel
	switch {
	case slices.Contains(nonOverlapChannels, ch):
		return []model.Finding{model.NewPositive("wifi_optimal_channel", 0,
			fmt.Sprintf("Channel %d is optimal (non-overlapping)", ch))}
	case ch <= max24GHzChannel:
		return []model.Finding{model.NewWarning("wifi_overlapping_channel", 10,
			fmt.Sprintf("Channel %d overlaps with others - can cause interference", ch))}
	default:
		return []model.Finding{model.NewPositive("wifi_5ghz_channel", 0,
			"5GHz channel - less interference than 2.4GHz")}
	}
}

func signalRule(n Network) []model.Finding {
	if n.Signal == nil {
		return nil
	}
	dbm := *n.Signal
	switch {
	case dbm >= strongSignal:
		return []model.Finding{model.NewPositive("wifi_strong_signal", 0,
			fmt.Sprintf("Strong signal (%ddBm)", dbm))}
	case dbm >= moderateSignal:
		return []model.Finding{model.NewPositive("wifi_moderate_signal", 0,
			fmt.Sprintf("Moderate signal (%ddBm) - may have dead zones", dbm))}
	default:
		return []model.Finding{model.NewWarning("wifi_weak_signal", 5,
			fmt.Sprintf("Weak signal (%ddBm) - poor coverage", dbm))}
	}
}

// excellentConfig adds a closing positive when nothing raised the score.
func excellentConfig(total int, findings []model.Finding) (int, []model.Finding) {
	if total != 0 {
		return total, findings
	}
	return total, append(findings, model.NewPositive("wifi_excellent", 0, "WiFi security configuration is excellent"))
}
