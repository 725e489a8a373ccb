// Package activation decides whether a campaign or quest is currently shown,
// based on its optional status override and its [starts_at, ends_at] window.
package activation

import (
	"strings"
	"time"

	"nexuraPortal/utils"
)

// Class is the outcome of classifying one entry at one instant.
type Class int

const (
	// None means the entry belongs to no group.
	None Class = iota
	Active
	Upcoming
	// Closed means the window opened and has since ended.
	Closed
)

const (
	StatusActive   = "active"
	StatusUpcoming = "upcoming"
)

func (c Class) String() string {
	switch c {
	case Active:
		return "active"
	case Upcoming:
		return "upcoming"
	case Closed:
		return "closed"
	default:
		return "none"
	}
}

// Window carries the raw wire values; every field is optional.
type Window struct {
	StartsAt string
	EndsAt   string
	Status   string
}

// instant is a parsed timestamp. A present but unparseable value never
// satisfies a comparison.
type instant struct {
	t       time.Time
	present bool
	valid   bool
}

func parseInstant(raw string) instant {
	if strings.TrimSpace(raw) == "" {
		return instant{}
	}
	t, ok := utils.ParseTimestamp(raw)
	return instant{t: t, present: true, valid: ok}
}

// notBefore reports now >= i.
func (i instant) notBefore(now time.Time) bool {
	return i.valid && !now.Before(i.t)
}

// notAfter reports now <= i.
func (i instant) notAfter(now time.Time) bool {
	return i.valid && !now.After(i.t)
}

// ClassifyCampaign applies the campaign rules: an explicit "active" status
// wins; otherwise a started window is active until it ends; otherwise an
// explicit "upcoming" status marks the entry upcoming. Entries without a
// start time are never active.
func ClassifyCampaign(w Window, now time.Time) Class {
	if w.Status == StatusActive {
		return Active
	}
	start := parseInstant(w.StartsAt)
	if start.notBefore(now) {
		end := parseInstant(w.EndsAt)
		if !end.present || end.notAfter(now) {
			return Active
		}
		return Closed
	}
	if w.Status == StatusUpcoming {
		return Upcoming
	}
	return None
}

// ClassifyQuest applies the quest rules, which differ from campaigns: an
// entry missing either boundary is always active.
func ClassifyQuest(w Window, now time.Time) Class {
	if w.Status == StatusActive {
		return Active
	}
	start := parseInstant(w.StartsAt)
	end := parseInstant(w.EndsAt)
	if !start.present || !end.present {
		return Active
	}
	if start.notBefore(now) && end.notAfter(now) {
		return Active
	}
	return Closed
}

// Windowed is implemented by campaigns and quests.
type Windowed interface {
	ActivationWindow() Window
}

// Groups holds a partition in input order.
type Groups[T Windowed] struct {
	Active   []T
	Upcoming []T
}

// PartitionCampaigns splits entries into active and upcoming groups; closed
// and unclassified entries are dropped.
func PartitionCampaigns[T Windowed](entries []T, now time.Time) Groups[T] {
	g := Groups[T]{Active: []T{}, Upcoming: []T{}}
	for _, e := range entries {
		switch ClassifyCampaign(e.ActivationWindow(), now) {
		case Active:
			g.Active = append(g.Active, e)
		case Upcoming:
			g.Upcoming = append(g.Upcoming, e)
		}
	}
	return g
}

// FilterQuests keeps the active quests in input order.
func FilterQuests[T Windowed](entries []T, now time.Time) []T {
	out := make([]T, 0, len(entries))
	for _, e := range entries {
		if ClassifyQuest(e.ActivationWindow(), now) == Active {
			out = append(out, e)
		}
	}
	return out
}
