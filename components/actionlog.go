package components

// HistoryCap bounds the action history; the oldest entry is evicted first.
const HistoryCap = 20

// ActionLog is a bounded, ordered log of recent behavior labels plus a
// derived label->count map. The map always equals the multiset counts of
// the current history window: Record maintains both in lockstep.
type ActionLog struct {
	Records []string
	Counts  map[string]float32
}

// NewActionLog returns an empty log with its count map allocated.
func NewActionLog() ActionLog {
	return ActionLog{
		Records: make([]string, 0, HistoryCap+1),
		Counts:  make(map[string]float32),
	}
}

// Record appends a label, evicting the oldest entry once the window
// exceeds HistoryCap and dropping its count entry when it reaches zero.
func (l *ActionLog) Record(label string) {
	if l.Counts == nil {
		l.Counts = make(map[string]float32)
	}
	l.Records = append(l.Records, label)
	l.Counts[label]++

	if len(l.Records) > HistoryCap {
		oldest := l.Records[0]
		copy(l.Records, l.Records[1:])
		l.Records = l.Records[:len(l.Records)-1]

		if c, ok := l.Counts[oldest]; ok {
			c--
			if c <= 0 {
				delete(l.Counts, oldest)
			} else {
				l.Counts[oldest] = c
			}
		}
	}
}

// Weights returns the label frequencies of the current window, normalized
// by history length. This is the map fed into trait mutation; it is
// rebuilt from the ordered records, not taken from the raw count map.
func (l *ActionLog) Weights() map[string]float32 {
	weights := make(map[string]float32, len(l.Counts))
	if len(l.Records) == 0 {
		return weights
	}
	for _, label := range l.Records {
		weights[label]++
	}
	n := float32(len(l.Records))
	for label := range weights {
		weights[label] /= n
	}
	return weights
}

// Actions returns a copy of the ordered history window.
func (l *ActionLog) Actions() []string {
	out := make([]string, len(l.Records))
	copy(out, l.Records)
	return out
}

// CountsCopy returns a copy of the raw label->count map.
func (l *ActionLog) CountsCopy() map[string]float32 {
	out := make(map[string]float32, len(l.Counts))
	for label, c := range l.Counts {
		out[label] = c
	}
	return out
}
