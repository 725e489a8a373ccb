package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexuraPortal/internal/onetime"
	"nexuraPortal/internal/seed"
	"nexuraPortal/internal/types/quest"
)

type stubQuests struct {
	collections quest.Collections
	err         error
}

func (s stubQuests) FetchQuests(context.Context) (quest.Collections, error) {
	return s.collections, s.err
}

var questNow = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func newQuestService(c quest.Collections) *QuestService {
	svc := NewQuestService(stubQuests{collections: c}, onetime.NewStore(time.Minute), nil)
	svc.SetClock(func() time.Time { return questNow })
	return svc
}

func TestActiveQuests(t *testing.T) {
	svc := newQuestService(quest.Collections{
		OneTimeQuests:  []quest.Quest{{ID: "no-window"}},
		DailyQuests:    []quest.Quest{{ID: "expired", StartsAt: "2025-01-01T00:00:00Z", EndsAt: "2025-02-01T00:00:00Z"}},
		FeaturedQuests: []quest.Quest{{ID: "live", StartsAt: "2025-05-01T00:00:00Z", EndsAt: "2025-07-01T00:00:00Z"}},
	})

	got, err := svc.ActiveQuests(context.Background())
	require.NoError(t, err)

	ids := make([]string, 0, len(got))
	for _, e := range got {
		ids = append(ids, e.ID)
		assert.True(t, e.IsActive)
	}
	assert.Equal(t, []string{seed.TasksCardID, "no-window", "live"}, ids)
}

func TestFind(t *testing.T) {
	svc := newQuestService(quest.Collections{
		DailyQuests: []quest.Quest{{ID: "expired", StartsAt: "2025-01-01T00:00:00Z", EndsAt: "2025-02-01T00:00:00Z"}},
	})

	e, found, err := svc.Find(context.Background(), "expired")
	require.NoError(t, err)
	require.True(t, found)
	assert.False(t, e.IsActive)

	_, found, err = svc.Find(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, found)

	e, found, err = svc.Find(context.Background(), seed.TasksCardID)
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, e.IsActive)
}

func TestOneTimeFlow(t *testing.T) {
	svc := newQuestService(quest.Collections{})
	session := svc.BeginSession()

	list := svc.OneTime(session)
	require.Len(t, list, 2)
	assert.Equal(t, "Connect", list[0].Label)
	assert.Equal(t, onetime.Pending, list[0].Status)

	e, changed, err := svc.AdvanceOneTime(session, "onetime-discord-join")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, onetime.Visited, e.Status)
	assert.Equal(t, "Claim 50 XP", e.Label)

	e, changed, err = svc.AdvanceOneTime(session, "onetime-discord-join")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "Completed", e.Label)

	_, changed, err = svc.AdvanceOneTime(session, "onetime-discord-join")
	require.NoError(t, err)
	assert.False(t, changed)

	list = svc.OneTime(session)
	assert.Equal(t, onetime.Claimed, list[0].Status)
	assert.Equal(t, onetime.Pending, list[1].Status)

	fresh := svc.OneTime(svc.BeginSession())
	assert.Equal(t, onetime.Pending, fresh[0].Status, "a new page session starts over")
}

func TestAdvanceUnknownTask(t *testing.T) {
	svc := newQuestService(quest.Collections{})
	_, _, err := svc.AdvanceOneTime(svc.BeginSession(), "nope")
	assert.ErrorIs(t, err, ErrUnknownTask)
}
