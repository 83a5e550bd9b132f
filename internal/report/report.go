// Package report renders simulation events and results as text.
package report

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"monopolysim/internal/engine"
)

var doublesWords = map[int]string{1: "once", 2: "twice"}

// Narrator writes one line per event.
type Narrator struct {
	w   io.Writer
	err error
}

func NewNarrator(w io.Writer) *Narrator {
	return &Narrator{w: w}
}

// Emit implements engine.Sink. The first write error stops output and is
// kept for Err.
func (n *Narrator) Emit(ev engine.Event) {
	if n.err != nil {
		return
	}
	line := Line(ev)
	if line == "" {
		return
	}
	_, n.err = fmt.Fprintln(n.w, line)
}

func (n *Narrator) Err() error {
	return n.err
}

// Line describes an event in plain English.
func Line(ev engine.Event) string {
	switch ev.Type {
	case engine.EventTurnStarted:
		return fmt.Sprintf("--- Turn %d ---", ev.Turn)
	case engine.EventRoll:
		return fmt.Sprintf("%s rolled %d and %d totaling %d", ev.Player, ev.Dice[0], ev.Dice[1], ev.Total())
	case engine.EventDoubles:
		word, ok := doublesWords[ev.Doubles]
		if !ok {
			word = fmt.Sprintf("%d times", ev.Doubles)
		}
		return fmt.Sprintf("%s rolled doubles %s and rolls again", ev.Player, word)
	case engine.EventThirdDoubles:
		return fmt.Sprintf("%s rolled doubles three times. Go directly to jail, do not pass Go, do not collect $200", ev.Player)
	case engine.EventLanded:
		return fmt.Sprintf("%s is on %s", ev.Player, ev.Name)
	case engine.EventCardDrawn:
		return fmt.Sprintf("%s drew %s card: %s", ev.Player, ev.Deck, ev.Card)
	default:
		return ""
	}
}

// WriteTally prints count|name for every space in board order.
func WriteTally(w io.Writer, s engine.Summary) error {
	for _, t := range s.Tally {
		if _, err := fmt.Fprintf(w, "%d|%s\n", t.Count, t.Name); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d landings by %d players over %d turns (seed %d)\n",
		s.TotalLandings, len(s.Players), s.Turns, s.Seed)
	return err
}

// GroupTotal is the landing count of one colour group.
type GroupTotal struct {
	Group string
	Count uint64
	Share float64
}

// Groups sums landings per colour group, busiest first.
func Groups(s engine.Summary) []GroupTotal {
	totals := map[string]uint64{}
	for _, t := range s.Tally {
		if t.Group != "" {
			totals[t.Group] += t.Count
		}
	}
	out := make([]GroupTotal, 0, len(totals))
	for g, n := range totals {
		gt := GroupTotal{Group: g, Count: n}
		if s.TotalLandings > 0 {
			gt.Share = float64(n) / float64(s.TotalLandings)
		}
		out = append(out, gt)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Group < out[j].Group
	})
	return out
}

// WriteGroups prints the per-group totals as an aligned table.
func WriteGroups(w io.Writer, s engine.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "GROUP\tLANDINGS\tSHARE")
	for _, g := range Groups(s) {
		fmt.Fprintf(tw, "%s\t%d\t%.1f%%\n", g.Group, g.Count, g.Share*100)
	}
	return tw.Flush()
}
