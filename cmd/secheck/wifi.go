package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nao1215/secheck/internal/model"
	"github.com/nao1215/secheck/internal/wifi"
)

// NewWiFiCmd creates the wifi command.
func NewWiFiCmd() *cobra.Command {
	encryptions := make([]string, len(wifi.Encryptions))
	for i, e := range wifi.Encryptions {
		encryptions[i] = string(e)
	}

	cmd := &cobra.Command{
		Use:   "wifi",
		Short: "Audit a WiFi network configuration",
		Long: `WiFi rates the risk of a network configuration from 0 (excellent) to 100.

The checks cover the encryption protocol, default or public-looking SSIDs,
hidden networks, overlapping 2.4 GHz channels and weak signal strength.

Levels: Excellent (<=10), Good (<=30), Fair (<=50), Poor.

Examples:
  # Audit a WPA2 network
  secheck wifi --ssid HomeNetwork --encryption WPA2

  # Include channel and signal strength
  secheck wifi -s CoffeeShop -e open --channel 3 --signal -78`,
		Args: cobra.NoArgs,
		RunE: runWiFiCmd,
	}

	cmd.Flags().StringP("ssid", "s", "", "Network name (required)")
	cmd.Flags().StringP("encryption", "e", "",
		"Encryption type: "+strings.Join(encryptions, ", ")+" (required)")
	cmd.Flags().Int("channel", 0, "Radio channel")
	cmd.Flags().Int("signal", 0, "Signal strength in dBm, e.g. -65")
	addReportFlags(cmd)

	return cmd
}

// runWiFiCmd executes the wifi command.
func runWiFiCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := readReportFlags(cmd, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd, cfg.Verbose)

	network, err := networkFromFlags(cmd)
	if err != nil {
		return err
	}

	analysis, err := wifi.NewAnalyzer(wifi.WithLogger(logger)).Analyze(network)
	if err != nil {
		return err
	}

	return outputReports(cmd, cfg, []*model.Report{wifiReport(analysis)})
}

// networkFromFlags builds the Network to analyse. Channel and signal are
// only set when their flags were given.
func networkFromFlags(cmd *cobra.Command) (wifi.Network, error) {
	var n wifi.Network

	ssid, err := cmd.Flags().GetString("ssid")
	if err != nil {
		return n, err
	}
	n.SSID = strings.TrimSpace(ssid)
	if n.SSID == "" {
		return n, wifi.ErrMissingSSID
	}

	encryption, err := cmd.Flags().GetString("encryption")
	if err != nil {
		return n, err
	}
	if n.Encryption, err = wifi.ParseEncryption(encryption); err != nil {
		return n, err
	}

	for name, field := range map[string]**int{
		"channel": &n.Channel,
		"signal":  &n.Signal,
	} {
		if !cmd.Flags().Changed(name) {
			continue
		}
		v, err := cmd.Flags().GetInt(name)
		if err != nil {
			return n, err
		}
		*field = &v
	}

	return n, nil
}

// wifiReport wraps an Analysis in a report.
func wifiReport(analysis wifi.Analysis) *model.Report {
	r := model.NewReport(model.ReportWiFi, analysis.SSID)
	r.Result = analysis.ScoreResult
	r.AddDetail("Encryption", fmt.Sprintf("%s (%s)", analysis.Encryption, analysis.Info.Security))
	r.AddDetail("Protocol", analysis.Info.Description)
	r.AddDetail("Channel", analysis.Channel)
	r.AddDetail("Signal", analysis.Signal)
	return r
}
