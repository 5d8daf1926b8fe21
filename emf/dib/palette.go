package dib

import "slices"

// palette assigns table indices to RGBA pixels.
type palette struct {
	table []RGBQuad
	index func(row, col int, px []byte) int
}

func rgbaKey(px []byte) uint32 {
	return uint32(px[0])<<24 | uint32(px[1])<<16 | uint32(px[2])<<8 | uint32(px[3])
}

func keyQuad(k uint32) RGBQuad {
	return RGBQuad{Red: uint8(k >> 24), Green: uint8(k >> 16), Blue: uint8(k >> 8), Reserved: uint8(k)}
}

// luminance uses the Rec. 601 weights scaled by 1000.
func luminance(k uint32) int {
	q := keyQuad(k)
	return 299*int(q.Red) + 587*int(q.Green) + 114*int(q.Blue)
}

func buildPalette(rgba []byte, width, height, stride, depth int, supplied []RGBQuad) *palette {
	if len(supplied) > 0 {
		table := slices.Clone(supplied)
		return &palette{table: table, index: nearestIndexer(table)}
	}

	var distinct []uint32
	seen := make(map[uint32]int)
	for row := range height {
		src := rgba[row*stride:]
		for col := range width {
			k := rgbaKey(src[4*col:])
			if _, ok := seen[k]; !ok {
				seen[k] = len(distinct)
				distinct = append(distinct, k)
			}
		}
	}

	limit := TableCapacity(width, height, depth)
	if len(distinct) <= limit {
		table := make([]RGBQuad, len(distinct))
		for i, k := range distinct {
			table[i] = keyQuad(k)
		}
		return &palette{table: table, index: func(_, _ int, px []byte) int {
			return seen[rgbaKey(px)]
		}}
	}

	sorted := slices.Clone(distinct)
	slices.SortStableFunc(sorted, func(a, b uint32) int {
		return luminance(a) - luminance(b)
	})
	table := make([]RGBQuad, limit)
	for i := range limit {
		j := 0
		if limit > 1 {
			j = i * (len(sorted) - 1) / (limit - 1)
		}
		table[i] = keyQuad(sorted[j])
	}
	return &palette{table: table, index: nearestIndexer(table)}
}

// nearestIndexer matches each color to the closest entry by squared RGBA
// distance. Ties resolve to the lowest index.
func nearestIndexer(table []RGBQuad) func(row, col int, px []byte) int {
	cache := make(map[uint32]int)
	return func(_, _ int, px []byte) int {
		k := rgbaKey(px)
		if i, ok := cache[k]; ok {
			return i
		}
		best, bestDist := 0, -1
		for i, q := range table {
			d := sq(int(px[0])-int(q.Red)) + sq(int(px[1])-int(q.Green)) +
				sq(int(px[2])-int(q.Blue)) + sq(int(px[3])-int(q.Reserved))
			if bestDist < 0 || d < bestDist {
				best, bestDist = i, d
			}
		}
		cache[k] = best
		return best
	}
}

func sq(v int) int { return v * v }

func positionPalette(rgba []byte, width, height, stride, depth int) *palette {
	table := make([]RGBQuad, TableCapacity(width, height, depth))
	set := make([]bool, len(table))
	for row := range height {
		src := rgba[row*stride:]
		for col := range width {
			i := PositionIndex(row, col, width, height, depth)
			if !set[i] {
				table[i] = keyQuad(rgbaKey(src[4*col:]))
				set[i] = true
			}
		}
	}
	return &palette{table: table, index: func(row, col int, _ []byte) int {
		return PositionIndex(row, col, width, height, depth)
	}}
}
