// Package fake generates plausible ComputeNode payloads for exercising the
// API and the bulk-create path without a real inventory.
package fake

import (
	"fmt"
	"math/rand"

	"github.com/openchami/nodectl/internal/nodes"
)

var interfaceNames = []string{"eth0", "eth1", "ib0", "ib1", "ip2", "ip3"}

var architectures = []string{"x86_64", "arm64"}

// Generator produces fake nodes from a seeded source so test runs can be
// reproduced.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator. The same seed yields the same nodes.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Nodes generates n fake compute nodes.
func (g *Generator) Nodes(n int) []nodes.ComputeNode {
	out := make([]nodes.ComputeNode, n)
	for i := range out {
		out[i] = g.node(i)
	}
	return out
}

func (g *Generator) node(i int) nodes.ComputeNode {
	numIfaces := 1 + g.rng.Intn(4)
	ifaces := make([]nodes.NetworkInterface, numIfaces)
	for j := range ifaces {
		ifaces[j] = nodes.NetworkInterface{
			InterfaceName: interfaceNames[g.rng.Intn(len(interfaceNames))],
			MACAddress:    g.mac(),
			Description:   fmt.Sprintf("autogenerated interface %d", j),
		}
	}

	node := nodes.ComputeNode{
		Hostname:          fmt.Sprintf("node%04d.cluster.local", i),
		XName:             g.xname(),
		Architecture:      architectures[g.rng.Intn(len(architectures))],
		BootMAC:           g.mac(),
		NetworkInterfaces: ifaces,
		Description:       fmt.Sprintf("autogenerated node %d", i),
	}

	// Roughly 40% of real nodes in the fleet have a reachable BMC.
	if g.rng.Float64() < 0.4 {
		node.BMC = &nodes.BMC{
			Username:   "admin",
			Password:   "admin",
			MACAddress: g.mac(),
		}
	}

	return node
}

func (g *Generator) mac() string {
	buf := make([]byte, 6)
	g.rng.Read(buf)
	// Clear the multicast bit, set locally administered.
	buf[0] = (buf[0] | 2) &^ 1
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x", buf[0], buf[1], buf[2], buf[3], buf[4], buf[5])
}

func (g *Generator) xname() string {
	return fmt.Sprintf("x%dc%ds%db%dn%d",
		10000+g.rng.Intn(90000),
		1+g.rng.Intn(60),
		1+g.rng.Intn(10),
		1+g.rng.Intn(3),
		1+g.rng.Intn(8))
}
