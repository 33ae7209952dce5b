package buffer

type OffsetClampMode uint8

const (
	OffsetError OffsetClampMode = iota
	OffsetClamp
)

// PosFromRuneOffset converts a rune offset into the document text (newline
// counts as one rune) to a position. Offsets that fall inside a grapheme
// cluster are rejected.
func (b *Buffer) PosFromRuneOffset(off int, mode OffsetClampMode) (Pos, bool) {
	off, ok := clampOffset(off, b.docRuneLen(), mode)
	if !ok {
		return Pos{}, false
	}
	return b.runeOffsetToPos(off)
}

func (b *Buffer) RuneOffsetFromPos(pos Pos, mode OffsetClampMode) (int, bool) {
	switch mode {
	case OffsetError:
		if b.clampPos(pos) != pos {
			return 0, false
		}
	case OffsetClamp:
		pos = b.clampPos(pos)
	default:
		return 0, false
	}
	return b.posToRuneOffset(pos), true
}

func clampOffset(off, max int, mode OffsetClampMode) (int, bool) {
	switch mode {
	case OffsetError:
		if off < 0 || off > max {
			return 0, false
		}
		return off, true
	case OffsetClamp:
		if off < 0 {
			return 0, true
		}
		if off > max {
			return max, true
		}
		return off, true
	default:
		return 0, false
	}
}

func runeLen(cluster string) int {
	n := 0
	for range cluster {
		n++
	}
	return n
}

func (b *Buffer) docRuneLen() int {
	total := 0
	for row, line := range b.lines {
		for _, cluster := range line {
			total += runeLen(cluster)
		}
		if row < len(b.lines)-1 {
			total++
		}
	}
	return total
}

func (b *Buffer) runeOffsetToPos(off int) (Pos, bool) {
	cur := 0

	for row, line := range b.lines {
		col := 0
		if off == cur {
			return Pos{Row: row, GraphemeCol: col}, true
		}

		for _, cluster := range line {
			next := cur + runeLen(cluster)
			if off > cur && off < next {
				return Pos{}, false
			}
			cur = next
			col++
			if off == cur {
				return Pos{Row: row, GraphemeCol: col}, true
			}
		}

		if row < len(b.lines)-1 {
			cur++
			if off == cur {
				return Pos{Row: row + 1, GraphemeCol: 0}, true
			}
		}
	}

	return Pos{}, false
}

func (b *Buffer) posToRuneOffset(pos Pos) int {
	off := 0

	for row := 0; row < pos.Row; row++ {
		for _, cluster := range b.lines[row] {
			off += runeLen(cluster)
		}
		off++
	}

	for col := 0; col < pos.GraphemeCol; col++ {
		off += runeLen(b.lines[pos.Row][col])
	}

	return off
}
