package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/electoscope/electoscope/internal/analytics"
	"github.com/electoscope/electoscope/internal/errors"
	"github.com/electoscope/electoscope/internal/logger"
	"github.com/electoscope/electoscope/internal/models"
	"github.com/electoscope/electoscope/pkg/gemini"
)

// DefaultAskTimeout bounds a single question round-trip.
const DefaultAskTimeout = 45 * time.Second

// maxKnowledgeParties caps how many parties the knowledge context lists.
const maxKnowledgeParties = 12

// Answer is the result of one ask-panel question.
type Answer struct {
	ID     string `json:"id"`
	Answer string `json:"answer"`
}

// AskService answers natural-language questions about the loaded dataset
// by sending a rendered knowledge context plus the conversation to the
// question client.
type AskService struct {
	log      logger.Logger
	datasets *DatasetService
	engine   *analytics.Engine
	client   gemini.Client
	timeout  time.Duration
}

// NewAskService creates an ask service. A zero timeout falls back to
// DefaultAskTimeout.
func NewAskService(log logger.Logger, datasets *DatasetService, engine *analytics.Engine, client gemini.Client, timeout time.Duration) *AskService {
	if timeout <= 0 {
		timeout = DefaultAskTimeout
	}
	return &AskService{
		log:      log,
		datasets: datasets,
		engine:   engine,
		client:   client,
		timeout:  timeout,
	}
}

// Ask sends one question with its conversation history. Each call gets a
// fresh correlation id and its own deadline.
func (s *AskService) Ask(ctx context.Context, question string, history []models.AskMessage) (*Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, errors.Validation("question must not be empty")
	}
	if s.client == nil {
		return nil, errors.Unavailable("question service is not configured")
	}

	snap, err := s.datasets.Snapshot()
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	s.log.Debug("Ask question", "id", id, "question_len", len(question), "history", len(history))

	msgs := make([]gemini.Message, 0, len(history))
	for _, m := range history {
		msgs = append(msgs, gemini.Message{Role: m.Role, Text: m.Text})
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	answer, err := s.client.Ask(ctx, question, msgs, s.buildKnowledge(snap))
	if err != nil {
		s.log.Warn("Ask failed", "id", id, "error", err)
		return nil, errors.Wrap(err, errors.ErrUnavailable, "question service unavailable")
	}

	return &Answer{ID: id, Answer: answer}, nil
}

// buildKnowledge renders the current aggregates into the fixed context
// block that precedes every question.
func (s *AskService) buildKnowledge(snap *Snapshot) string {
	tables := s.engine.Tables()
	partyStats := s.engine.PartyStats(snap.Constituencies)
	stateStats := s.engine.StateStats(snap.Detailed)
	voteShare := s.engine.VoteShare(snap.Detailed)

	totalVotes := 0
	for _, d := range snap.Detailed {
		totalVotes += d.TotalVotes
	}

	var b strings.Builder
	b.WriteString("You answer questions about the Indian General Elections 2024 results ")
	b.WriteString("using only the data below. Answer concisely; if the data does not ")
	b.WriteString("cover a question, say so.\n\n")

	fmt.Fprintf(&b, "OVERALL: %d constituencies declared, %s candidates, %s votes counted, %d states and union territories.\n\n",
		len(snap.Constituencies),
		humanize.Comma(int64(len(snap.Candidates))),
		humanize.Comma(int64(totalVotes)),
		len(snap.States),
	)

	b.WriteString("SEATS WON (2024, top parties, with 2019 seats in brackets):\n")
	for i, p := range partyStats {
		if i == maxKnowledgeParties {
			break
		}
		fmt.Fprintf(&b, "- %s (%s): %d seats, %.1f%% of seats [2019: %d]\n",
			p.Party, tables.ShortName(p.Party), p.Seats, p.Percentage, tables.PriorSeats(p.Party))
	}

	b.WriteString("\nVOTE SHARE (2024, NOTA excluded):\n")
	for i, p := range voteShare {
		if i == maxKnowledgeParties {
			break
		}
		fmt.Fprintf(&b, "- %s: %s votes, %.2f%%\n", p.Party, humanize.Comma(int64(p.MarginVotes)), p.Percentage)
	}

	b.WriteString("\nSTATE RESULTS (seats per party):\n")
	for _, st := range stateStats {
		parts := make([]string, 0, len(st.Parties))
		for _, p := range partyOrder(st.Parties) {
			parts = append(parts, fmt.Sprintf("%s %d", tables.ShortName(p), st.Parties[p]))
		}
		fmt.Fprintf(&b, "- %s: %d seats (%s)\n", st.State, st.TotalSeats, strings.Join(parts, ", "))
	}

	if insights := s.engine.Insights(snap.Constituencies, snap.Detailed); len(insights) > 0 {
		b.WriteString("\nKEY FACTS:\n")
		for _, in := range insights {
			fmt.Fprintf(&b, "- %s: %s\n", in.Title, in.Description)
		}
	}

	return b.String()
}

// partyOrder returns map keys sorted by seat count descending, name
// ascending on ties, so the rendered context is deterministic.
func partyOrder(parties map[string]int) []string {
	keys := make([]string, 0, len(parties))
	for k := range parties {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if parties[keys[i]] != parties[keys[j]] {
			return parties[keys[i]] > parties[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}
