// Package status holds the request and response types of the "/status/"
// endpoints of the Core API.
package status

import "github.com/radixdlt/babylon-node-sub000/api/types/common"

// NetworkConfigurationVersion reports the node and API versions.
type NetworkConfigurationVersion struct {
	CoreVersion string `json:"core_version"`
	APIVersion  string `json:"api_version"`
}

// AddressType describes how addresses of one entity type are encoded on the
// network.
type AddressType struct {
	Subtype           string `json:"subtype"`
	HRP               string `json:"hrp"`
	EntityType        string `json:"entity_type"`
	AddressBytePrefix int    `json:"address_byte_prefix"`
	AddressByteLength int    `json:"address_byte_length"`
}

// NetworkConfigurationResponse contains the response for Core API:
// POST "/status/network-configuration"
//
// The request has no body.
type NetworkConfigurationResponse struct {
	Version NetworkConfigurationVersion `json:"version"`
	// Network is the logical name of the network, for example "mainnet".
	Network string `json:"network"`
	// NetworkID is the numeric identifier of the network.
	NetworkID        int           `json:"network_id"`
	NetworkHRPSuffix string        `json:"network_hrp_suffix"`
	USDPriceInXRD    string        `json:"usd_price_in_xrd,omitempty"`
	AddressTypes     []AddressType `json:"address_types"`
	// WellKnownAddresses maps names such as "xrd" to global addresses.
	WellKnownAddresses map[string]string `json:"well_known_addresses"`
}

// Validate checks that required members are present.
func (r NetworkConfigurationResponse) Validate() error {
	if r.Network == "" {
		return common.MissingFieldError{Type: "NetworkConfigurationResponse", Field: "network"}
	}
	return nil
}
