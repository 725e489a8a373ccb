package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"nexuraPortal/internal/activation"
	"nexuraPortal/internal/onetime"
	"nexuraPortal/internal/seed"
	"nexuraPortal/internal/types/metadata"
	"nexuraPortal/internal/types/quest"
)

var ErrUnknownTask = errors.New("unknown one-time task")

type QuestSource interface {
	FetchQuests(ctx context.Context) (quest.Collections, error)
}

type QuestEntry struct {
	quest.Quest
	Meta     metadata.Metadata `json:"meta"`
	IsActive bool              `json:"isActive"`
}

type OneTimeEntry struct {
	quest.Quest
	Status onetime.Status `json:"status"`
	Label  string         `json:"label"`
}

type QuestService struct {
	source   QuestSource
	sessions *onetime.Store
	oneTime  []quest.Quest
	logger   *zap.Logger
	now      func() time.Time
}

func NewQuestService(source QuestSource, sessions *onetime.Store, logger *zap.Logger) *QuestService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuestService{
		source:   source,
		sessions: sessions,
		oneTime:  seed.OneTimeQuests(),
		logger:   logger.Named("quests"),
		now:      time.Now,
	}
}

func (s *QuestService) SetClock(now func() time.Time) {
	s.now = now
}

// ActiveQuests performs one fetch and keeps the quests active now.
func (s *QuestService) ActiveQuests(ctx context.Context) ([]QuestEntry, error) {
	collections, err := s.source.FetchQuests(ctx)
	if err != nil {
		return nil, err
	}
	return s.Derive(&collections, s.now()), nil
}

// Derive merges the seed card ahead of the fetched collections and filters
// by activation window.
func (s *QuestService) Derive(c *quest.Collections, now time.Time) []QuestEntry {
	all := seed.MergeQuests([]quest.Quest{seed.QuestTasksCard(now)}, c)
	active := activation.FilterQuests(all, now)
	out := make([]QuestEntry, 0, len(active))
	for _, q := range active {
		out = append(out, s.entry(q, true))
	}
	return out
}

// Find looks a quest up in the merged list, active or not.
func (s *QuestService) Find(ctx context.Context, id string) (QuestEntry, bool, error) {
	collections, err := s.source.FetchQuests(ctx)
	if err != nil {
		return QuestEntry{}, false, err
	}
	now := s.now()
	for _, q := range seed.MergeQuests([]quest.Quest{seed.QuestTasksCard(now)}, &collections) {
		if q.ID == id {
			active := activation.ClassifyQuest(q.ActivationWindow(), now) == activation.Active
			return s.entry(q, active), true, nil
		}
	}
	return QuestEntry{}, false, nil
}

func (s *QuestService) entry(q quest.Quest, active bool) QuestEntry {
	meta, discarded := metadata.Parse(q.Metadata)
	if discarded {
		metadataParseFailures.WithLabelValues("quest").Inc()
		s.logger.Debug("ignoring malformed metadata", zap.String("id", q.ID))
	}
	return QuestEntry{Quest: q, Meta: meta, IsActive: active}
}

// BeginSession starts a fresh page session with nothing visited or claimed.
func (s *QuestService) BeginSession() uuid.UUID {
	return s.sessions.Begin()
}

// OneTime lists the one-time quests with their state in session.
func (s *QuestService) OneTime(session uuid.UUID) []OneTimeEntry {
	out := make([]OneTimeEntry, 0, len(s.oneTime))
	for _, q := range s.oneTime {
		st := s.sessions.Status(session, q.ID)
		out = append(out, OneTimeEntry{Quest: q, Status: st, Label: onetime.Label(q, st)})
	}
	return out
}

// AdvanceOneTime records a visit, then a claim, for taskID in session.
func (s *QuestService) AdvanceOneTime(session uuid.UUID, taskID string) (OneTimeEntry, bool, error) {
	for _, q := range s.oneTime {
		if q.ID != taskID {
			continue
		}
		st, changed := s.sessions.Advance(session, taskID)
		if changed {
			oneTimeTransitions.WithLabelValues(st.String()).Inc()
			s.logger.Info("one-time task advanced",
				zap.String("session", session.String()),
				zap.String("task", taskID),
				zap.Stringer("status", st))
		}
		return OneTimeEntry{Quest: q, Status: st, Label: onetime.Label(q, st)}, changed, nil
	}
	return OneTimeEntry{}, false, ErrUnknownTask
}
