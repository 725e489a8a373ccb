package activation_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"nexuraPortal/internal/activation"
)

var now = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func TestClassifyCampaign(t *testing.T) {
	tests := []struct {
		name   string
		window activation.Window
		want   activation.Class
	}{
		{"active status with no window", activation.Window{Status: "active"}, activation.Active},
		{"active status with expired window", activation.Window{Status: "active", StartsAt: "2024-01-01T00:00:00Z", EndsAt: "2024-02-01T00:00:00Z"}, activation.Active},
		{"active status with future start", activation.Window{Status: "active", StartsAt: "2026-01-01T00:00:00Z"}, activation.Active},
		{"open-ended window", activation.Window{StartsAt: "2025-01-01T00:00:00Z"}, activation.Active},
		{"inside window", activation.Window{StartsAt: "2025-01-01T00:00:00Z", EndsAt: "2025-12-31T00:00:00Z"}, activation.Active},
		{"start boundary is inclusive", activation.Window{StartsAt: "2025-06-01T00:00:00Z", EndsAt: "2025-12-31T00:00:00Z"}, activation.Active},
		{"end boundary is inclusive", activation.Window{StartsAt: "2025-01-01T00:00:00Z", EndsAt: "2025-06-01T00:00:00Z"}, activation.Active},
		{"ended", activation.Window{StartsAt: "2025-01-01T00:00:00Z", EndsAt: "2025-05-31T23:59:59Z"}, activation.Closed},
		{"upcoming status only", activation.Window{Status: "upcoming"}, activation.Upcoming},
		{"upcoming status with future start", activation.Window{Status: "upcoming", StartsAt: "2025-09-01T00:00:00Z"}, activation.Upcoming},
		{"upcoming status but already started", activation.Window{Status: "upcoming", StartsAt: "2025-01-01T00:00:00Z"}, activation.Active},
		{"future start without status", activation.Window{StartsAt: "2025-09-01T00:00:00Z"}, activation.None},
		{"nothing at all", activation.Window{}, activation.None},
		{"end without start", activation.Window{EndsAt: "2025-12-31T00:00:00Z"}, activation.None},
		{"unparseable start", activation.Window{StartsAt: "soon"}, activation.None},
		{"unparseable end", activation.Window{StartsAt: "2025-01-01T00:00:00Z", EndsAt: "later"}, activation.Closed},
		{"zone-less start", activation.Window{StartsAt: "2025-05-31T12:00:00"}, activation.Active},
		{"date only start", activation.Window{StartsAt: "2025-06-02"}, activation.None},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, activation.ClassifyCampaign(tt.window, now))
		})
	}
}

func TestClassifyQuest(t *testing.T) {
	tests := []struct {
		name   string
		window activation.Window
		want   activation.Class
	}{
		{"active status", activation.Window{Status: "active", EndsAt: "2020-01-01T00:00:00Z"}, activation.Active},
		{"no boundaries", activation.Window{}, activation.Active},
		{"start only", activation.Window{StartsAt: "2030-01-01T00:00:00Z"}, activation.Active},
		{"end only", activation.Window{EndsAt: "2020-01-01T00:00:00Z"}, activation.Active},
		{"inside window", activation.Window{StartsAt: "2025-01-01T00:00:00Z", EndsAt: "2025-12-31T00:00:00Z"}, activation.Active},
		{"ended", activation.Window{StartsAt: "2025-01-01T00:00:00Z", EndsAt: "2025-02-01T00:00:00Z"}, activation.Closed},
		{"not started", activation.Window{StartsAt: "2025-07-01T00:00:00Z", EndsAt: "2025-12-31T00:00:00Z"}, activation.Closed},
		{"upcoming status is not special", activation.Window{Status: "upcoming", StartsAt: "2025-07-01T00:00:00Z", EndsAt: "2025-12-31T00:00:00Z"}, activation.Closed},
		{"unparseable boundary", activation.Window{StartsAt: "2025-01-01T00:00:00Z", EndsAt: "never"}, activation.Closed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, activation.ClassifyQuest(tt.window, now))
		})
	}
}

type entry struct {
	id string
	w  activation.Window
}

func (e entry) ActivationWindow() activation.Window { return e.w }

func ids(in []entry) []string {
	out := make([]string, 0, len(in))
	for _, e := range in {
		out = append(out, e.id)
	}
	return out
}

func TestPartitionCampaignsKeepsOrderAndDropsClosed(t *testing.T) {
	entries := []entry{
		{"a", activation.Window{Status: "active"}},
		{"b", activation.Window{Status: "upcoming"}},
		{"c", activation.Window{StartsAt: "2025-01-01T00:00:00Z", EndsAt: "2025-02-01T00:00:00Z"}},
		{"d", activation.Window{StartsAt: "2025-01-01T00:00:00Z"}},
		{"e", activation.Window{}},
		{"f", activation.Window{Status: "upcoming", StartsAt: "2026-01-01T00:00:00Z"}},
	}

	g := activation.PartitionCampaigns(entries, now)

	if diff := cmp.Diff([]string{"a", "d"}, ids(g.Active)); diff != "" {
		t.Errorf("active mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"b", "f"}, ids(g.Upcoming)); diff != "" {
		t.Errorf("upcoming mismatch (-want +got):\n%s", diff)
	}
}

func TestPartitionCampaignsUpcomingOnlyAppearsOnce(t *testing.T) {
	g := activation.PartitionCampaigns([]entry{{"u", activation.Window{Status: "upcoming"}}}, now)
	assert.Empty(t, g.Active)
	assert.Equal(t, []string{"u"}, ids(g.Upcoming))
}

func TestPartitionCampaignsEmptyInput(t *testing.T) {
	g := activation.PartitionCampaigns[entry](nil, now)
	assert.NotNil(t, g.Active)
	assert.NotNil(t, g.Upcoming)
	assert.Empty(t, g.Active)
	assert.Empty(t, g.Upcoming)
}

func TestFilterQuests(t *testing.T) {
	entries := []entry{
		{"open", activation.Window{}},
		{"closed", activation.Window{StartsAt: "2024-01-01T00:00:00Z", EndsAt: "2024-06-01T00:00:00Z"}},
		{"forced", activation.Window{Status: "active", StartsAt: "2024-01-01T00:00:00Z", EndsAt: "2024-06-01T00:00:00Z"}},
		{"window", activation.Window{StartsAt: "2025-05-01T00:00:00Z", EndsAt: "2025-07-01T00:00:00Z"}},
	}
	assert.Equal(t, []string{"open", "forced", "window"}, ids(activation.FilterQuests(entries, now)))
}

func TestClassString(t *testing.T) {
	assert.Equal(t, "active", activation.Active.String())
	assert.Equal(t, "upcoming", activation.Upcoming.String())
	assert.Equal(t, "closed", activation.Closed.String())
	assert.Equal(t, "none", activation.None.String())
}
