package diff

import "slices"

// Hunks groups entries into hunks. Options read: WithContext.
//
// With no context (the default), each maximal run of non-equal entries is one hunk, and OldStart/NewStart are 1 + the number of old/new tokens before the run, even
// when the count on that side is 0.
//
// With context n > 0, each hunk also carries up to n equal entries before and after its changes, runs separated by at most 2n equal entries share a hunk, and a side
// with a count of 0 uses the canonical start (the line before the hunk), so the output can be consumed by patch tools.
//
// Entries is a copy; hunks do not alias the input.
func Hunks(entries []Entry, opts ...Option) []Hunk {
	o := newOptions(opts)
	n := o.context

	// oldBefore[i] and newBefore[i] count the tokens consumed by entries[:i].
	oldBefore := make([]int, len(entries)+1)
	newBefore := make([]int, len(entries)+1)
	for i, e := range entries {
		oldBefore[i+1] = oldBefore[i]
		newBefore[i+1] = newBefore[i]
		if e.hasOld() {
			oldBefore[i+1]++
		}
		if e.hasNew() {
			newBefore[i+1]++
		}
	}

	var hunks []Hunk
	rs := runs(entries)
	for k := 0; k < len(rs); {
		start, end := rs[k][0], rs[k][1]
		k++
		// Runs are maximal, so the gap is at least 1 and nothing merges when n == 0.
		for k < len(rs) && rs[k][0]-end <= 2*n {
			end = rs[k][1]
			k++
		}

		lo := max(start-n, 0)
		hi := min(end+n, len(entries))
		h := Hunk{
			OldStart: oldBefore[lo] + 1,
			OldCount: oldBefore[hi] - oldBefore[lo],
			NewStart: newBefore[lo] + 1,
			NewCount: newBefore[hi] - newBefore[lo],
			Entries:  slices.Clone(entries[lo:hi]),
		}
		if n > 0 {
			if h.OldCount == 0 {
				h.OldStart--
			}
			if h.NewCount == 0 {
				h.NewStart--
			}
		}
		hunks = append(hunks, h)
	}
	return hunks
}
