// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zbdd

// GenerateCutSets walks v's diagram and returns every set it encodes, each
// as a slice of literal indices. The traversal is destructive: as soon as a
// SetNode's cut sets are computed and cached, its high and low edges are
// released (CutBranches), so a diagram should only be walked this way once,
// at the very end of an analysis. Module
// proxies are expanded transitively: the literal of a module node is
// replaced, in every extracted set, by each of the module's own cut sets in
// turn. A set whose cardinality would exceed the engine's limit order is
// dropped.
//
// Grounded on the original SCRAM Zbdd::GenerateCutSets(vertex) (zbdd.cc),
// which performs the identical high/low split and reclaims children on the
// way out.
func (z *Zbdd) GenerateCutSets(v Vertex) [][]int32 {
	if v == Empty {
		return nil
	}
	if v == Base {
		return [][]int32{{}}
	}
	if z.nodes[v].cached {
		return z.nodes[v].cutSets
	}

	index, high, low, isModule := z.nodes[v].index, z.nodes[v].high, z.nodes[v].low, z.nodes[v].isModule

	highSets := z.GenerateCutSets(high)
	lowSets := z.GenerateCutSets(low)

	var result [][]int32
	if isModule {
		moduleSets := z.GenerateCutSets(z.moduleRoot(index))
		result = make([][]int32, 0, len(highSets)*len(moduleSets)+len(lowSets))
		for _, hs := range highSets {
			for _, ms := range moduleSets {
				if int32(len(hs)+len(ms)) > z.limitOrder {
					continue
				}
				cs := make([]int32, 0, len(hs)+len(ms))
				cs = append(cs, hs...)
				cs = append(cs, ms...)
				result = append(result, cs)
			}
		}
	} else {
		result = make([][]int32, 0, len(highSets)+len(lowSets))
		for _, hs := range highSets {
			if int32(len(hs)) >= z.limitOrder {
				continue
			}
			cs := make([]int32, 0, len(hs)+1)
			cs = append(cs, hs...)
			cs = append(cs, index)
			result = append(result, cs)
		}
	}
	result = append(result, lowSets...)

	z.nodes[v].cutSets = result
	z.nodes[v].cached = true
	z.CutBranches(v)
	return result
}

// CutBranches releases v's high and low edges after its cut sets have been
// cached, so that a large diagram's memory is reclaimed incrementally as
// GenerateCutSets descends it rather than all at once at the very end.
func (z *Zbdd) CutBranches(v Vertex) {
	if v.Terminal() {
		return
	}
	high, low := z.nodes[v].high, z.nodes[v].low
	z.nodes[v].high, z.nodes[v].low = Empty, Empty
	z.unref(high)
	z.unref(low)
}

// CountSetNodes returns the number of distinct SetNodes reachable from v,
// descending into every module exactly once thanks to the mark field.
// CountSetNodes calls ClearMarks(v) itself before returning, so the marks
// it sets do not leak into a later marked traversal.
func (z *Zbdd) CountSetNodes(v Vertex) int64 {
	n := z.countSetNodesRec(v)
	z.ClearMarks(v)
	return n
}

func (z *Zbdd) countSetNodesRec(v Vertex) int64 {
	if v.Terminal() || z.nodes[v].mark {
		return 0
	}
	z.nodes[v].mark = true
	index, high, low, isModule := z.nodes[v].index, z.nodes[v].high, z.nodes[v].low, z.nodes[v].isModule
	count := int64(1)
	count += z.countSetNodesRec(high)
	count += z.countSetNodesRec(low)
	if isModule {
		count += z.countSetNodesRec(z.moduleRoot(index))
	}
	return count
}

// CountCutSets returns the number of sets v's diagram encodes without
// materializing any of them, useful for sizing a result buffer or for
// logging before a potentially huge GenerateCutSets call.
func (z *Zbdd) CountCutSets(v Vertex) int64 {
	n := z.countCutSetsRec(v)
	z.ClearMarks(v)
	return n
}

func (z *Zbdd) countCutSetsRec(v Vertex) int64 {
	if v == Empty {
		return 0
	}
	if v == Base {
		return 1
	}
	if z.nodes[v].mark {
		return z.nodes[v].count
	}
	z.nodes[v].mark = true
	index, high, low, isModule := z.nodes[v].index, z.nodes[v].high, z.nodes[v].low, z.nodes[v].isModule
	highCount := z.countCutSetsRec(high)
	lowCount := z.countCutSetsRec(low)
	var total int64
	if isModule {
		total = z.countCutSetsRec(z.moduleRoot(index))*highCount + lowCount
	} else {
		total = highCount + lowCount
	}
	z.nodes[v].count = total
	return total
}

// ClearMarks resets the transient mark field set by CountSetNodes and
// CountCutSets across v's diagram, including every module it reaches.
func (z *Zbdd) ClearMarks(v Vertex) {
	if v.Terminal() || !z.nodes[v].mark {
		return
	}
	z.nodes[v].mark = false
	index, high, low, isModule := z.nodes[v].index, z.nodes[v].high, z.nodes[v].low, z.nodes[v].isModule
	z.ClearMarks(high)
	z.ClearMarks(low)
	if isModule {
		z.ClearMarks(z.moduleRoot(index))
	}
}
