// Package network models the directional link table between hosts: one
// capacity-1 seizable resource per ordered pair of distinct host
// identifiers. A task transferring data from a dependency on a different
// host seizes the link for the transfer's duration; links are never
// created for same-host pairs, so intra-host dependencies never touch this
// package.
package network

import (
	"github.com/taskgraph-sim/tasksim/internal/resource"
)

type linkKey struct {
	from, to string
}

// ErrUnknownLink is returned by Link for a host pair that was never
// registered with NewFabric. Dependency validation upstream is expected to
// guarantee this never happens for a correctly validated experiment; it
// exists as a defensive internal error rather than one surfaced by the
// loaders.
type unknownLinkError struct{ from, to string }

func (e unknownLinkError) Error() string {
	return "network: unknown link " + e.from + " -> " + e.to
}

// ErrUnknownLink is the sentinel value to compare against with errors.Is.
var ErrUnknownLink error = unknownLinkError{}

func (e unknownLinkError) Is(target error) bool {
	_, ok := target.(unknownLinkError)
	return ok
}

// Fabric is the set of directional capacity-1 links between every ordered
// pair of distinct hosts in an experiment.
type Fabric struct {
	links map[linkKey]*resource.Seizable
}

// NewFabric builds a Fabric with one link for every ordered pair of
// distinct host identifiers in hostIDs.
func NewFabric(hostIDs []string) *Fabric {
	f := &Fabric{links: make(map[linkKey]*resource.Seizable, len(hostIDs)*(len(hostIDs)-1))}
	for _, from := range hostIDs {
		for _, to := range hostIDs {
			if from == to {
				continue
			}
			f.links[linkKey{from, to}] = resource.NewSeizable(1)
		}
	}
	return f
}

// Link returns the capacity-1 seizable resource for transfers from host
// "from" to host "to". It returns ErrUnknownLink if the pair was not part
// of the host set the Fabric was built from.
func (f *Fabric) Link(from, to string) (*resource.Seizable, error) {
	link, ok := f.links[linkKey{from, to}]
	if !ok {
		return nil, unknownLinkError{from: from, to: to}
	}
	return link, nil
}

// HostCount returns the number of distinct hosts that appear in at least
// one link, primarily for tests. A fabric built over a single host has no
// links, so its HostCount is 0.
func (f *Fabric) HostCount() int {
	hosts := map[string]struct{}{}
	for k := range f.links {
		hosts[k.from] = struct{}{}
		hosts[k.to] = struct{}{}
	}
	return len(hosts)
}
