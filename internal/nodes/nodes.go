// Package nodes holds the document types of the node-orchestrator API as
// seen by the client. They are used to reflect JSON Schemas for offline
// payload validation and to generate fake inventory data; the API itself is
// the source of truth for their shape.
package nodes

import (
	"github.com/google/uuid"
)

// ComputeNode is a single managed node.
type ComputeNode struct {
	ID                uuid.UUID          `json:"id,omitempty" format:"uuid"`
	Hostname          string             `json:"hostname" jsonschema:"required"`
	XName             string             `json:"xname,omitempty"`
	Architecture      string             `json:"architecture" jsonschema:"required"`
	BootMAC           string             `json:"boot_mac,omitempty" format:"mac-address"`
	NetworkInterfaces []NetworkInterface `json:"network_interfaces,omitempty"`
	BMC               *BMC               `json:"bmc,omitempty"`
	Description       string             `json:"description,omitempty"`
	BootData          *BootData          `json:"boot_data,omitempty"`
}

// NetworkInterface is one NIC attached to a node.
type NetworkInterface struct {
	InterfaceName string `json:"interface_name" jsonschema:"required"`
	IPv4Address   string `json:"ipv4_address,omitempty" format:"ipv4"`
	IPv6Address   string `json:"ipv6_address,omitempty" format:"ipv6"`
	MACAddress    string `json:"mac_address" format:"mac-address" jsonschema:"required"`
	Description   string `json:"description,omitempty"`
}

// BMC is the management controller of a node.
type BMC struct {
	ID          uuid.UUID `json:"id,omitempty" format:"uuid"`
	XName       string    `json:"xname,omitempty"`
	Username    string    `json:"username" jsonschema:"required"`
	Password    string    `json:"password" jsonschema:"required"`
	IPv4Address string    `json:"ipv4_address,omitempty" format:"ipv4"`
	IPv6Address string    `json:"ipv6_address,omitempty" format:"ipv6"`
	MACAddress  string    `json:"mac_address" format:"mac-address" jsonschema:"required"`
	Description string    `json:"description,omitempty"`
}

// BootData carries network boot parameters for a node.
type BootData struct {
	ID                uuid.UUID `json:"id,omitempty" format:"uuid"`
	KernelURL         string    `json:"kernel_url,omitempty"`
	KernelCommandLine string    `json:"kernel_command_line,omitempty"`
	ImageURL          string    `json:"image_url,omitempty"`
}
