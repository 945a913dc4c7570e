// Package layout computes a deterministic 2-D arrangement of cluster nodes
// grouped by zone and role, for topology visualization.
package layout

import (
	"sort"
	"strings"

	"github.com/dm/esmon-go/internal/model"
)

// DefaultZone is the group label for nodes that report no zone attribute.
const DefaultZone = "default"

// Fixed geometry constants. Every block's height is derived purely from the
// counts of its content, which is what guarantees non-overlap.
const (
	ZoneWidth   = 240 // width of one zone column
	ZoneHeaderH = 30  // space reserved for the zone label
	ZoneMargin  = 20  // horizontal gap between zone columns
	RoleTitleH  = 20  // space reserved for the role label inside its block
	RolePadding = 10  // gap between the role label and the first host
	RoleMargin  = 10  // vertical gap after each role block
	HostSpacing = 18  // vertical step per host entry
)

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H int
}

// Intersects reports whether two rectangles overlap with positive area.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// HostPoint is the label position of one host within its role block.
type HostPoint struct {
	Name string
	X, Y int
}

// RoleBlock groups the hosts holding one role within a zone.
type RoleBlock struct {
	Role  string
	Rect  Rect
	Hosts []HostPoint
}

// ZoneBlock is one zone column with its role blocks stacked inside.
type ZoneBlock struct {
	Name  string
	Rect  Rect
	Roles []RoleBlock
}

// Layout is a complete topology arrangement. Zones are laid out side by
// side, so Height is the tallest zone, not a sum.
type Layout struct {
	Width  int
	Height int
	Zones  []ZoneBlock
}

// Compute groups the given nodes by zone and role and assigns geometry.
// A node carrying several roles appears under each of them; a node with no
// roles is omitted entirely. Zone, role, and host orderings are
// lexicographic, so the result is independent of input order.
func Compute(nodes []model.NodeRecord) Layout {
	groups := groupNodes(nodes)

	zoneNames := make([]string, 0, len(groups))
	for z := range groups {
		zoneNames = append(zoneNames, z)
	}
	sort.Strings(zoneNames)

	var out Layout
	for i, zoneName := range zoneNames {
		roles := groups[zoneName]
		roleNames := make([]string, 0, len(roles))
		for r := range roles {
			roleNames = append(roleNames, r)
		}
		sort.Strings(roleNames)

		zone := ZoneBlock{
			Name: zoneName,
			Rect: Rect{X: i * (ZoneWidth + ZoneMargin), Y: 0, W: ZoneWidth},
		}

		y := zone.Rect.Y + ZoneHeaderH
		for _, roleName := range roleNames {
			hosts := roles[roleName]
			sort.Strings(hosts)

			block := RoleBlock{
				Role: roleName,
				Rect: Rect{
					X: zone.Rect.X,
					Y: y,
					W: ZoneWidth,
					H: RoleTitleH + RolePadding + len(hosts)*HostSpacing,
				},
			}
			for hi, host := range hosts {
				block.Hosts = append(block.Hosts, HostPoint{
					Name: host,
					X:    zone.Rect.X + ZoneWidth/2,
					Y:    block.Rect.Y + RoleTitleH + RolePadding + hi*HostSpacing,
				})
			}
			zone.Roles = append(zone.Roles, block)
			y += block.Rect.H + RoleMargin
		}

		zone.Rect.H = y - zone.Rect.Y
		if zone.Rect.H > out.Height {
			out.Height = zone.Rect.H
		}
		out.Zones = append(out.Zones, zone)
	}

	out.Width = len(out.Zones) * (ZoneWidth + ZoneMargin)
	return out
}

// groupNodes builds zone → role → host-name lists. Host names may repeat
// across roles but appear once per (zone, role).
func groupNodes(nodes []model.NodeRecord) map[string]map[string][]string {
	groups := make(map[string]map[string][]string)
	for _, n := range nodes {
		if len(n.Roles) == 0 {
			continue
		}
		zone := strings.TrimSpace(n.Zone)
		if zone == "" {
			zone = DefaultZone
		}
		roles := groups[zone]
		if roles == nil {
			roles = make(map[string][]string)
			groups[zone] = roles
		}
		for _, role := range n.Roles {
			roles[role] = append(roles[role], n.Name)
		}
	}
	return groups
}
