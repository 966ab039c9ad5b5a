package grid

import "github.com/samber/lo"

// Promotion records a tile that survived a merge and gained a level.
type Promotion struct {
	Tile *Tile
	From int // level before promotion
}

// Resolution is what a policy did to the board.
// Removed tiles no longer belong to any cell; their Pos is the cell they left.
type Resolution struct {
	Removed  []*Tile
	Promoted []Promotion
}

// Matched returns the number of tiles the policy consumed.
func (r Resolution) Matched() int {
	return len(r.Removed) + len(r.Promoted)
}

// Policy decides what happens to each detected group.
type Policy interface {
	Apply(g *Grid, groups []Group) Resolution
}

// DeleteAll removes every tile in every group. Nothing survives and no level
// changes.
type DeleteAll struct{}

// Apply implements Policy.
func (DeleteAll) Apply(g *Grid, groups []Group) Resolution {
	var res Resolution
	for _, group := range groups {
		for _, c := range group {
			if t := g.Take(c); t != nil {
				res.Removed = append(res.Removed, t)
			}
		}
	}
	return res
}

// PromoteAnchor keeps one tile per group, the anchor, and raises its level
// by one. The rest of the group is removed.
type PromoteAnchor struct{}

// Apply implements Policy.
func (PromoteAnchor) Apply(g *Grid, groups []Group) Resolution {
	var res Resolution
	for _, group := range groups {
		if len(group) == 0 {
			continue
		}
		anchor := Anchor(group)
		for _, c := range group {
			if c == anchor {
				continue
			}
			if t := g.Take(c); t != nil {
				res.Removed = append(res.Removed, t)
			}
		}
		if t := g.Get(anchor); t != nil {
			res.Promoted = append(res.Promoted, Promotion{Tile: t, From: t.Level})
			t.Level++
		}
	}
	return res
}

// Anchor picks the surviving cell of a group: the lowest row on screen
// (largest Row), ties broken by the leftmost column.
func Anchor(group Group) Coord {
	return lo.MaxBy(group, func(a, b Coord) bool {
		if a.Row != b.Row {
			return a.Row > b.Row
		}
		return a.Col < b.Col
	})
}
