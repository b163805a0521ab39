package itinerary

import "tripplan/internal/domain"

// ReorderDay rebuilds the stored entry sequence after a drag-and-drop inside
// a single day. ids is the dropped visual order of entry identifiers for
// that day's container.
//
// The transaction commits as one update against a fresh grouping of the
// current data, never against render state:
//
//   - entries belonging to other days keep their identity and relative
//     order, untouched;
//   - the named day's entries are re-emitted in ids order;
//   - an id in the visual order with no matching entry (a stale render) is
//     skipped rather than failing the drop;
//   - day entries absent from the visual order are appended in their prior
//     relative order, so a stale drop can reorder but never lose data.
//
// A day with fewer than two entries makes the drop a no-op and the input is
// returned unchanged.
func ReorderDay(list []domain.Entry, date string, ids []string) []domain.Entry {
	group := GroupByDate(list)[date]
	if len(group) < 2 {
		return list
	}

	byID := make(map[string]int, len(group))
	for i, e := range group {
		byID[e.ID] = i
	}

	out := make([]domain.Entry, 0, len(list))
	for _, e := range list {
		if e.Date != date {
			out = append(out, e)
		}
	}

	placed := make(map[string]bool, len(ids))
	for _, id := range ids {
		i, ok := byID[id]
		if !ok || placed[id] {
			continue
		}
		out = append(out, group[i])
		placed[id] = true
	}
	for _, e := range group {
		if !placed[e.ID] {
			out = append(out, e)
		}
	}
	return out
}
