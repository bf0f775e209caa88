package kit

// Remap moves raw vendor mappings onto the standard pad layout.
func Remap(raw []Mapping) []Mapping {
	return RemapTo(raw, Pads)
}

// RemapTo assigns raw mappings to pads in two passes.
//
// Keyword pass: each pad, in table order, claims the first unclaimed
// mapping whose sample name contains one of its keywords.
// Fill pass: pads left empty take the remaining mappings in their
// original order. Extra mappings are dropped and extra pads stay empty.
//
// The raw slice is not modified. Each pad note appears at most once.
func RemapTo(raw []Mapping, pads []Pad) []Mapping {
	claimed := make([]bool, len(raw))
	filled := make([]bool, len(pads))
	out := make([]Mapping, 0, min(len(raw), len(pads)))

	for p, pad := range pads {
		if filled[p] || padTaken(out, pad.Note) {
			continue
		}
		for i := range raw {
			if claimed[i] || !pad.Matches(raw[i].SampleName) {
				continue
			}
			m := raw[i]
			m.Note = pad.Note
			out = append(out, m)
			claimed[i] = true
			filled[p] = true
			break
		}
	}

	var empty []uint8
	for p, pad := range pads {
		if !filled[p] && !padTaken(out, pad.Note) && !containsNote(empty, pad.Note) {
			empty = append(empty, pad.Note)
		}
	}

	next := 0
	for i := range raw {
		if next >= len(empty) {
			break
		}
		if claimed[i] {
			continue
		}
		m := raw[i]
		m.Note = empty[next]
		out = append(out, m)
		claimed[i] = true
		next++
	}

	return out
}

func padTaken(out []Mapping, note uint8) bool {
	for _, m := range out {
		if m.Note == note {
			return true
		}
	}
	return false
}

func containsNote(notes []uint8, note uint8) bool {
	for _, n := range notes {
		if n == note {
			return true
		}
	}
	return false
}
