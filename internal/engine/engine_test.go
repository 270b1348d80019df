package engine

import (
	"context"
	"errors"
	"testing"

	"joke_suggestions_system/internal/dataset"
	"joke_suggestions_system/internal/db/models"
	"joke_suggestions_system/internal/db/repositories"
	mock_repositories "joke_suggestions_system/internal/db/repositories/mocks"
	"joke_suggestions_system/internal/presentation"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakePlatform struct {
	nextMessageID string
	postErr       error

	posted      []presentation.View
	edited      map[string]presentation.View
	deleted     []string
	reacted     []string
	cleared     []string
	userCleared []string
	roles       map[string][]Role
	announced   []string
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{
		nextMessageID: "posted-message",
		edited:        make(map[string]presentation.View),
		roles:         make(map[string][]Role),
	}
}

func (p *fakePlatform) PostRendering(_ context.Context, _ models.ProposalKind, view presentation.View) (string, error) {
	if p.postErr != nil {
		return "", p.postErr
	}
	p.posted = append(p.posted, view)
	return p.nextMessageID, nil
}

func (p *fakePlatform) EditRendering(rendering Rendering, view presentation.View) error {
	p.edited[rendering.MessageID] = view
	return nil
}

func (p *fakePlatform) DeleteRendering(rendering Rendering) error {
	p.deleted = append(p.deleted, rendering.MessageID)
	return nil
}

func (p *fakePlatform) AddVoteReactions(rendering Rendering) error {
	p.reacted = append(p.reacted, rendering.MessageID)
	return nil
}

func (p *fakePlatform) RemoveAllReactions(rendering Rendering) error {
	p.cleared = append(p.cleared, rendering.MessageID)
	return nil
}

func (p *fakePlatform) RemoveUserReactions(rendering Rendering, userID string) error {
	p.userCleared = append(p.userCleared, rendering.MessageID+":"+userID)
	return nil
}

func (p *fakePlatform) GrantRole(userID string, role Role) error {
	p.roles[userID] = append(p.roles[userID], role)
	return nil
}

func (p *fakePlatform) AnnounceMerge(_ presentation.View, note string) error {
	p.announced = append(p.announced, note)
	return nil
}

type fakeDataset struct {
	jokes      []dataset.Joke
	nextJokeID int64
	merged     []dataset.JokePayload
	mergeErr   error
	listErr    error
}

func (d *fakeDataset) MergeJoke(_ context.Context, payload dataset.JokePayload) (int64, error) {
	if d.mergeErr != nil {
		return 0, d.mergeErr
	}
	d.merged = append(d.merged, payload)
	return d.nextJokeID, nil
}

func (d *fakeDataset) Jokes(_ context.Context) ([]dataset.Joke, error) {
	return d.jokes, d.listErr
}

func testConfig() Config {
	return Config{
		NeededSuggestionsApprovals:    2,
		NeededCorrectionsApprovals:    2,
		NeededSuggestionsDisapprovals: 2,
		NeededCorrectionsDisapprovals: 2,
		MaxJokePartLength:             130,
		DuplicateScoreThreshold:       0.8,
		SimilarScoreThreshold:         0.6,
	}
}

type engineFixture struct {
	engine       *Engine
	proposals    *mock_repositories.MockProposalRepository
	approvals    *mock_repositories.MockApprovalRepository
	disapprovals *mock_repositories.MockDisapprovalRepository
	votes        *mock_repositories.MockVoteRepository
	godfathers   *mock_repositories.MockGodfatherRepository
	platform     *fakePlatform
	dataset      *fakeDataset
}

func newEngineFixture(ctrl *gomock.Controller) *engineFixture {
	logger := zap.NewNop().Sugar()

	fixture := &engineFixture{
		proposals:    mock_repositories.NewMockProposalRepository(ctrl),
		approvals:    mock_repositories.NewMockApprovalRepository(ctrl),
		disapprovals: mock_repositories.NewMockDisapprovalRepository(ctrl),
		votes:        mock_repositories.NewMockVoteRepository(ctrl),
		godfathers:   mock_repositories.NewMockGodfatherRepository(ctrl),
		platform:     newFakePlatform(),
		dataset:      &fakeDataset{nextJokeID: 42},
	}

	ledger := NewLedger(fixture.approvals, fixture.disapprovals, fixture.votes, logger)
	fixture.engine = NewEngine(
		testConfig(),
		fixture.proposals,
		fixture.godfathers,
		ledger,
		fixture.platform,
		fixture.dataset,
		logger,
	)

	return fixture
}

func (f *engineFixture) expectApprovalAdded(proposalID int64, userID string) {
	f.approvals.EXPECT().DeleteByProposalAndUser(proposalID, userID).Return(false, nil)
	f.disapprovals.EXPECT().DeleteByProposalAndUser(proposalID, userID).Return(false, nil)
	f.approvals.EXPECT().Create(gomock.Any()).Return(&models.Approval{}, nil)
	f.votes.EXPECT().DeleteByProposalAndUser(proposalID, userID).Return(0, nil)
	f.godfathers.EXPECT().GetOneByUserID(userID).Return(&models.Godfather{UserID: userID}, nil)
}

func (f *engineFixture) expectCounts(proposalID int64, counts Counts) {
	f.approvals.EXPECT().CountByProposal(proposalID).Return(counts.Approvals, nil)
	f.disapprovals.EXPECT().CountByProposal(proposalID).Return(counts.Disapprovals, nil)
	f.votes.EXPECT().CountByProposal(proposalID, models.VoteTypeUp).Return(counts.VotesUp, nil)
	f.votes.EXPECT().CountByProposal(proposalID, models.VoteTypeDown).Return(counts.VotesDown, nil)
}

func TestSubmit_RejectsOversizedJoke(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newEngineFixture(ctrl)

	long := make([]rune, 131)
	for i := range long {
		long[i] = 'a'
	}

	_, err := fixture.engine.Submit(context.Background(), SubmitRequest{
		Actor:    Actor{ID: "user"},
		Kind:     models.ProposalKindSuggestion,
		Category: models.CategoryGlobal,
		Question: string(long),
		Answer:   "réponse",
	})
	assert.IsType(t, &ValidationError{}, err)
}

func TestSubmit_RejectsUnknownCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newEngineFixture(ctrl)

	_, err := fixture.engine.Submit(context.Background(), SubmitRequest{
		Actor:    Actor{ID: "user"},
		Kind:     models.ProposalKindSuggestion,
		Category: "nonsense",
		Question: "question",
		Answer:   "réponse",
	})
	assert.IsType(t, &ValidationError{}, err)
}

func TestSubmit_DuplicatePersistsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newEngineFixture(ctrl)
	fixture.dataset.jokes = []dataset.Joke{{
		ID:       1,
		Category: models.CategoryGlobal,
		Question: "Quel est le comble pour un électricien",
		Answer:   "De ne pas être au courant",
	}}
	fixture.proposals.EXPECT().GetOpenSuggestions().Return(nil, nil)

	result, err := fixture.engine.Submit(context.Background(), SubmitRequest{
		Actor:    Actor{ID: "user"},
		Kind:     models.ProposalKindSuggestion,
		Category: models.CategoryGlobal,
		Question: "Quel est le comble pour un électricien ?",
		Answer:   "De ne pas être au courant !",
	})
	assert.NoError(t, err)
	assert.Nil(t, result.Proposal)
	assert.NotNil(t, result.Duplicate)
	assert.Greater(t, result.Duplicate.Score, 0.8)
	assert.Empty(t, fixture.platform.posted)
}

func TestSubmit_SimilarJokeGetsWarningField(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newEngineFixture(ctrl)
	fixture.dataset.jokes = []dataset.Joke{{
		ID:       1,
		Category: models.CategoryGlobal,
		Question: "Quel est le comble pour un électricien",
		Answer:   "De ne pas être au courant",
	}}
	fixture.proposals.EXPECT().GetOpenSuggestions().Return(nil, nil)
	fixture.proposals.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *models.Proposal) (*models.Proposal, error) {
		p.ID = 1
		return p, nil
	})

	result, err := fixture.engine.Submit(context.Background(), SubmitRequest{
		Actor:    Actor{ID: "user"},
		Kind:     models.ProposalKindSuggestion,
		Category: models.CategoryGlobal,
		Question: "Quel est le comble pour un boulanger ?",
		Answer:   "De ne pas être dans le pétrin",
	})
	assert.NoError(t, err)
	assert.Nil(t, result.Duplicate)
	assert.NotNil(t, result.Proposal)
	assert.Equal(t, "posted-message", result.Proposal.MessageID)

	assert.Len(t, fixture.platform.posted, 1)
	assert.Len(t, fixture.platform.posted[0].Fields, 1)
	assert.Equal(t, "Blague similaire", fixture.platform.posted[0].Fields[0].Name)
	assert.Equal(t, []string{"posted-message"}, fixture.platform.reacted)
}

func TestSubmit_DistinctJokeIsCreated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newEngineFixture(ctrl)
	fixture.dataset.jokes = []dataset.Joke{{
		ID:       1,
		Category: models.CategoryGlobal,
		Question: "Quel est le comble pour un électricien",
		Answer:   "De ne pas être au courant",
	}}
	fixture.proposals.EXPECT().GetOpenSuggestions().Return(nil, nil)
	fixture.proposals.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *models.Proposal) (*models.Proposal, error) {
		p.ID = 1
		return p, nil
	})

	result, err := fixture.engine.Submit(context.Background(), SubmitRequest{
		Actor:    Actor{ID: "user"},
		Kind:     models.ProposalKindSuggestion,
		Category: models.CategoryDev,
		Question: "Pourquoi les développeurs détestent la nature ?",
		Answer:   "Trop de bugs",
	})
	assert.NoError(t, err)
	assert.NotNil(t, result.Proposal)
	assert.Empty(t, fixture.platform.posted[0].Fields)
}

func TestSubmit_OrphanRenderingDeletedOnStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newEngineFixture(ctrl)
	fixture.proposals.EXPECT().GetOpenSuggestions().Return(nil, nil)
	fixture.proposals.EXPECT().Create(gomock.Any()).Return(nil, errors.New("insert failed"))

	_, err := fixture.engine.Submit(context.Background(), SubmitRequest{
		Actor:    Actor{ID: "user"},
		Kind:     models.ProposalKindSuggestion,
		Category: models.CategoryGlobal,
		Question: "question",
		Answer:   "réponse",
	})
	assert.IsType(t, &StoreError{}, err)
	assert.Equal(t, []string{"posted-message"}, fixture.platform.deleted)
}

func TestSubmit_CorrectionNeedsSubject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newEngineFixture(ctrl)

	_, err := fixture.engine.Submit(context.Background(), SubmitRequest{
		Actor:    Actor{ID: "user"},
		Kind:     models.ProposalKindCorrection,
		Category: models.CategoryGlobal,
		Question: "question",
		Answer:   "réponse",
	})
	assert.IsType(t, &ValidationError{}, err)
}

func TestSubmit_CorrectionInheritsJokeIDFromMergedSubject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newEngineFixture(ctrl)

	jokeID := int64(7)
	subject := &models.Proposal{
		ID:        10,
		Kind:      models.ProposalKindSuggestion,
		MessageID: "subject-message",
		Merged:    true,
		JokeID:    &jokeID,
	}
	fixture.proposals.EXPECT().GetOneByMessageID("subject-message").Return(subject, nil)

	var created *models.Proposal
	fixture.proposals.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *models.Proposal) (*models.Proposal, error) {
		created = p
		p.ID = 2
		return p, nil
	})

	_, err := fixture.engine.Submit(context.Background(), SubmitRequest{
		Actor:            Actor{ID: "user"},
		Kind:             models.ProposalKindCorrection,
		Category:         models.CategoryGlobal,
		Question:         "question",
		Answer:           "réponse",
		SubjectMessageID: "subject-message",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(10), *created.SuggestionID)
	assert.Equal(t, int64(7), *created.JokeID)
}

func TestDecide_RequiresGodfather(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newEngineFixture(ctrl)

	_, err := fixture.engine.Decide(context.Background(), Actor{ID: "user"}, "message", DecisionApprove)
	assert.IsType(t, &ValidationError{}, err)
}

func TestDecide_TerminalProposal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newEngineFixture(ctrl)
	fixture.proposals.EXPECT().GetOneByMessageID("message").Return(&models.Proposal{
		ID:        1,
		Kind:      models.ProposalKindSuggestion,
		MessageID: "message",
		Merged:    true,
	}, nil)

	_, err := fixture.engine.Decide(context.Background(), Actor{ID: "godfather", IsGodfather: true}, "message", DecisionApprove)
	assert.IsType(t, &TerminalProposalError{}, err)

	// The repair path resynchronizes the terminal rendering.
	assert.Contains(t, fixture.platform.edited, "message")
}

func TestDecide_StaleCorrectionPointsAtLatest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newEngineFixture(ctrl)

	subjectID := int64(10)
	latest := &models.Proposal{ID: 4, Kind: models.ProposalKindCorrection, MessageID: "latest-message"}
	stale := &models.Proposal{
		ID:           3,
		Kind:         models.ProposalKindCorrection,
		MessageID:    "stale-message",
		SuggestionID: &subjectID,
		Stale:        true,
		Suggestion: &models.Proposal{
			ID:          subjectID,
			Kind:        models.ProposalKindSuggestion,
			Corrections: []*models.Proposal{latest},
		},
	}
	fixture.proposals.EXPECT().GetOneByMessageID("stale-message").Return(stale, nil)

	_, err := fixture.engine.Decide(context.Background(), Actor{ID: "godfather", IsGodfather: true}, "stale-message", DecisionApprove)

	var staleErr *StaleTargetError
	assert.ErrorAs(t, err, &staleErr)
	assert.Equal(t, "latest-message", staleErr.LatestMessageID)
}

func TestDecide_SuggestionApprovalBlockedByPendingCorrection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newEngineFixture(ctrl)

	suggestion := &models.Proposal{
		ID:        1,
		Kind:      models.ProposalKindSuggestion,
		MessageID: "message",
		UserID:    "author",
		Corrections: []*models.Proposal{
			{ID: 2, Kind: models.ProposalKindCorrection},
		},
	}
	fixture.proposals.EXPECT().GetOneByMessageID("message").Return(suggestion, nil)

	outcome, err := fixture.engine.Decide(context.Background(), Actor{ID: "godfather", IsGodfather: true}, "message", DecisionApprove)
	assert.NoError(t, err)
	assert.NotEmpty(t, outcome.Info)
	assert.False(t, outcome.Merged)
}

func TestDecide_ApprovalBelowThreshold(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newEngineFixture(ctrl)

	suggestion := &models.Proposal{
		ID:        1,
		Kind:      models.ProposalKindSuggestion,
		MessageID: "message",
		UserID:    "author",
		Category:  models.CategoryGlobal,
		Question:  "question",
		Answer:    "réponse",
	}
	fixture.proposals.EXPECT().GetOneByMessageID("message").Return(suggestion, nil)
	fixture.expectApprovalAdded(1, "godfather")
	fixture.expectCounts(1, Counts{Approvals: 1})
	fixture.proposals.EXPECT().GetOne(int64(1)).Return(&models.Proposal{
		ID:        1,
		Kind:      models.ProposalKindSuggestion,
		MessageID: "message",
		UserID:    "author",
		Category:  models.CategoryGlobal,
		Question:  "question",
		Answer:    "réponse",
		Approvals: []models.Approval{{UserID: "godfather"}},
	}, nil)

	outcome, err := fixture.engine.Decide(context.Background(), Actor{ID: "godfather", IsGodfather: true}, "message", DecisionApprove)
	assert.NoError(t, err)
	assert.Equal(t, LedgerActionAdded, outcome.Action)
	assert.False(t, outcome.Merged)
	assert.Empty(t, fixture.dataset.merged)

	// The rendering carries the refreshed godfather line.
	edited := fixture.platform.edited["message"]
	assert.Contains(t, edited.Description, "<@godfather>")
}

func TestDecide_ProposalDeletedDuringDecision(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newEngineFixture(ctrl)

	suggestion := &models.Proposal{
		ID:        1,
		Kind:      models.ProposalKindSuggestion,
		MessageID: "message",
		UserID:    "author",
		Category:  models.CategoryGlobal,
		Question:  "question",
		Answer:    "réponse",
	}
	fixture.proposals.EXPECT().GetOneByMessageID("message").Return(suggestion, nil)
	fixture.expectApprovalAdded(1, "godfather")
	fixture.expectCounts(1, Counts{Approvals: 1})

	// The rendering was deleted concurrently and its cleanup handler
	// removed the row before the reload.
	fixture.proposals.EXPECT().GetOne(int64(1)).Return(nil, nil)

	_, err := fixture.engine.Decide(context.Background(), Actor{ID: "godfather", IsGodfather: true}, "message", DecisionApprove)
	assert.IsType(t, &ValidationError{}, err)
}

func TestDecide_ApprovalAtThresholdMergesSuggestion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newEngineFixture(ctrl)

	suggestion := &models.Proposal{
		ID:        1,
		Kind:      models.ProposalKindSuggestion,
		MessageID: "message",
		UserID:    "author",
		Category:  models.CategoryGlobal,
		Question:  "question",
		Answer:    "réponse",
		Approvals: []models.Approval{{UserID: "other"}},
	}
	fixture.proposals.EXPECT().GetOneByMessageID("message").Return(suggestion, nil)
	fixture.expectApprovalAdded(1, "godfather")
	fixture.expectCounts(1, Counts{Approvals: 2})
	fixture.proposals.EXPECT().GetOne(int64(1)).Return(suggestion, nil)

	jokeID := int64(42)
	fixture.proposals.EXPECT().MarkMerged(int64(1), &jokeID).Return(true, nil)

	outcome, err := fixture.engine.Decide(context.Background(), Actor{ID: "godfather", IsGodfather: true}, "message", DecisionApprove)
	assert.NoError(t, err)
	assert.True(t, outcome.Merged)

	assert.Len(t, fixture.dataset.merged, 1)
	assert.Nil(t, fixture.dataset.merged[0].JokeID)
	assert.Equal(t, []Role{RoleJoker}, fixture.platform.roles["author"])
	assert.Equal(t, []string{"Blague ajoutée à l'API"}, fixture.platform.announced)
	assert.Equal(t, presentation.ColorAccepted, fixture.platform.edited["message"].Color)
}

func TestDecide_DisapprovalAtThresholdRefuses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newEngineFixture(ctrl)

	suggestion := &models.Proposal{
		ID:        1,
		Kind:      models.ProposalKindSuggestion,
		MessageID: "message",
		UserID:    "author",
		Category:  models.CategoryGlobal,
		Question:  "question",
		Answer:    "réponse",
	}
	fixture.proposals.EXPECT().GetOneByMessageID("message").Return(suggestion, nil)
	fixture.disapprovals.EXPECT().DeleteByProposalAndUser(int64(1), "godfather").Return(false, nil)
	fixture.approvals.EXPECT().DeleteByProposalAndUser(int64(1), "godfather").Return(false, nil)
	fixture.disapprovals.EXPECT().Create(gomock.Any()).Return(&models.Disapproval{}, nil)
	fixture.votes.EXPECT().DeleteByProposalAndUser(int64(1), "godfather").Return(0, nil)
	fixture.godfathers.EXPECT().GetOneByUserID("godfather").Return(&models.Godfather{UserID: "godfather"}, nil)
	fixture.expectCounts(1, Counts{Disapprovals: 2})
	fixture.proposals.EXPECT().GetOne(int64(1)).Return(suggestion, nil)
	fixture.proposals.EXPECT().MarkRefused(int64(1)).Return(true, nil)

	outcome, err := fixture.engine.Decide(context.Background(), Actor{ID: "godfather", IsGodfather: true}, "message", DecisionDisapprove)
	assert.NoError(t, err)
	assert.True(t, outcome.Refused)
	assert.Empty(t, fixture.dataset.merged)
	assert.Equal(t, presentation.ColorRefused, fixture.platform.edited["message"].Color)
}

func TestDecide_ToggleOffDoesNotMerge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newEngineFixture(ctrl)

	suggestion := &models.Proposal{
		ID:        1,
		Kind:      models.ProposalKindSuggestion,
		MessageID: "message",
		UserID:    "author",
		Category:  models.CategoryGlobal,
		Question:  "question",
		Answer:    "réponse",
		Approvals: []models.Approval{{UserID: "godfather"}, {UserID: "other"}},
	}
	fixture.proposals.EXPECT().GetOneByMessageID("message").Return(suggestion, nil)
	fixture.approvals.EXPECT().DeleteByProposalAndUser(int64(1), "godfather").Return(true, nil)
	fixture.godfathers.EXPECT().GetOneByUserID("godfather").Return(&models.Godfather{UserID: "godfather"}, nil)
	fixture.expectCounts(1, Counts{Approvals: 2})
	fixture.proposals.EXPECT().GetOne(int64(1)).Return(suggestion, nil)

	outcome, err := fixture.engine.Decide(context.Background(), Actor{ID: "godfather", IsGodfather: true}, "message", DecisionApprove)
	assert.NoError(t, err)
	assert.Equal(t, LedgerActionRemoved, outcome.Action)
	assert.False(t, outcome.Merged)
	assert.Empty(t, fixture.dataset.merged)
}

func TestDecide_CorrectionMergeCascades(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newEngineFixture(ctrl)
	fixture.dataset.nextJokeID = 99

	subjectID := int64(10)
	sibling := &models.Proposal{
		ID:        3,
		Kind:      models.ProposalKindCorrection,
		MessageID: "sibling-message",
		Category:  models.CategoryGlobal,
		Question:  "autre version",
		Answer:    "autre réponse",
	}

	buildCorrection := func() *models.Proposal {
		correction := &models.Proposal{
			ID:           2,
			Kind:         models.ProposalKindCorrection,
			MessageID:    "correction-message",
			UserID:       "corrector",
			Category:     models.CategoryGlobal,
			Question:     "question corrigée",
			Answer:       "réponse corrigée",
			SuggestionID: &subjectID,
		}
		correction.Suggestion = &models.Proposal{
			ID:          subjectID,
			Kind:        models.ProposalKindSuggestion,
			MessageID:   "subject-message",
			UserID:      "author",
			Category:    models.CategoryGlobal,
			Question:    "question",
			Answer:      "réponse",
			Approvals:   []models.Approval{{UserID: "g1"}, {UserID: "g2"}},
			Corrections: []*models.Proposal{correction, sibling},
		}
		return correction
	}

	fixture.proposals.EXPECT().GetOneByMessageID("correction-message").Return(buildCorrection(), nil)
	fixture.expectApprovalAdded(2, "godfather")
	fixture.expectCounts(2, Counts{Approvals: 2})
	fixture.proposals.EXPECT().GetOne(int64(2)).Return(buildCorrection(), nil)

	fixture.proposals.EXPECT().ApplyCorrectionMerge(repositories.CorrectionMerge{
		MergeID: 2,
		UpdateSubject: &repositories.SubjectUpdate{
			ID:       subjectID,
			Category: models.CategoryGlobal,
			Question: "question corrigée",
			Answer:   "réponse corrigée",
		},
		StaleIDs: []int64{3},
	}).Return(nil)

	subjectAfterMerge := &models.Proposal{
		ID:        subjectID,
		Kind:      models.ProposalKindSuggestion,
		MessageID: "subject-message",
		UserID:    "author",
		Category:  models.CategoryGlobal,
		Question:  "question corrigée",
		Answer:    "réponse corrigée",
		Approvals: []models.Approval{{UserID: "g1"}, {UserID: "g2"}},
	}
	fixture.proposals.EXPECT().GetOne(subjectID).Return(subjectAfterMerge, nil)

	jokeID := int64(99)
	fixture.proposals.EXPECT().MarkMerged(subjectID, &jokeID).Return(true, nil)

	outcome, err := fixture.engine.Decide(context.Background(), Actor{ID: "godfather", IsGodfather: true}, "correction-message", DecisionApprove)
	assert.NoError(t, err)
	assert.True(t, outcome.Merged)
	assert.True(t, outcome.AutoMerged)

	assert.Equal(t, []Role{RoleCorrector}, fixture.platform.roles["corrector"])
	assert.Equal(t, []Role{RoleJoker}, fixture.platform.roles["author"])

	// The stale sibling rendering gets its replaced marker.
	assert.Equal(t, presentation.ColorReplaced, fixture.platform.edited["sibling-message"].Color)
	assert.Equal(t, presentation.ColorAccepted, fixture.platform.edited["correction-message"].Color)

	// One dataset mutation only: the correction targeted an unpublished
	// suggestion, the auto-merge added the corrected joke.
	assert.Len(t, fixture.dataset.merged, 1)
	assert.Equal(t, "question corrigée", fixture.dataset.merged[0].Question)
	assert.Equal(t, []string{"Correction migrée", "Blague ajoutée automatiquement à l'API"}, fixture.platform.announced)
}

func TestRefreshSubjectVotes_ResetsWhenContentDiverges(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newEngineFixture(ctrl)

	correction := &models.Proposal{
		Question: "Que dit une imprimante dans l'eau ?",
		Answer:   "J'ai papier !",
	}
	subject := &models.Proposal{
		Kind:      models.ProposalKindSuggestion,
		MessageID: "subject-message",
		Question:  "question",
		Answer:    "réponse",
	}

	fixture.engine.refreshSubjectVotes(correction, subject)
	assert.Equal(t, []string{"subject-message"}, fixture.platform.cleared)
	assert.Equal(t, []string{"subject-message"}, fixture.platform.reacted)
}

func TestRefreshSubjectVotes_KeepsVotesOnMinorEdit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newEngineFixture(ctrl)

	correction := &models.Proposal{
		Question: "Quel est le comble du jardinier",
		Answer:   "Raconter des salades",
	}
	subject := &models.Proposal{
		Kind:      models.ProposalKindSuggestion,
		MessageID: "subject-message",
		Question:  "Quel est le comble du jardinier ?",
		Answer:    "Raconter des salades.",
	}

	fixture.engine.refreshSubjectVotes(correction, subject)
	assert.Empty(t, fixture.platform.cleared)
	assert.Empty(t, fixture.platform.reacted)
}

func TestDecide_CorrectionOnPublishedJokeUpdatesDataset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newEngineFixture(ctrl)
	fixture.dataset.nextJokeID = 7

	jokeID := int64(7)
	buildCorrection := func() *models.Proposal {
		return &models.Proposal{
			ID:        2,
			Kind:      models.ProposalKindCorrection,
			MessageID: "correction-message",
			UserID:    "corrector",
			Category:  models.CategoryGlobal,
			Question:  "question corrigée",
			Answer:    "réponse corrigée",
			JokeID:    &jokeID,
		}
	}

	fixture.proposals.EXPECT().GetOneByMessageID("correction-message").Return(buildCorrection(), nil)
	fixture.proposals.EXPECT().GetActiveCorrectionsByJoke(jokeID).Return([]*models.Proposal{buildCorrection()}, nil)
	fixture.expectApprovalAdded(2, "godfather")
	fixture.expectCounts(2, Counts{Approvals: 2})
	fixture.proposals.EXPECT().GetOne(int64(2)).Return(buildCorrection(), nil)
	fixture.proposals.EXPECT().GetActiveCorrectionsByJoke(jokeID).Return([]*models.Proposal{buildCorrection()}, nil)

	fixture.proposals.EXPECT().ApplyCorrectionMerge(repositories.CorrectionMerge{
		MergeID: 2,
		JokeID:  &jokeID,
	}).Return(nil)

	outcome, err := fixture.engine.Decide(context.Background(), Actor{ID: "godfather", IsGodfather: true}, "correction-message", DecisionApprove)
	assert.NoError(t, err)
	assert.True(t, outcome.Merged)
	assert.False(t, outcome.AutoMerged)

	assert.Len(t, fixture.dataset.merged, 1)
	assert.Equal(t, jokeID, *fixture.dataset.merged[0].JokeID)
}

func TestIgnoreCategory_Toggles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newEngineFixture(ctrl)

	godfather := &models.Godfather{ID: 1, UserID: "godfather"}
	fixture.godfathers.EXPECT().GetOneByUserID("godfather").Return(godfather, nil)
	fixture.godfathers.EXPECT().Update(gomock.Any()).DoAndReturn(func(g *models.Godfather) (*models.Godfather, error) {
		assert.Equal(t, []models.Category{models.CategoryDark}, g.IgnoredCategories)
		return g, nil
	})

	ignored, err := fixture.engine.IgnoreCategory(Actor{ID: "godfather", IsGodfather: true}, models.CategoryDark)
	assert.NoError(t, err)
	assert.True(t, ignored)

	fixture.godfathers.EXPECT().GetOneByUserID("godfather").Return(godfather, nil)
	fixture.godfathers.EXPECT().Update(gomock.Any()).DoAndReturn(func(g *models.Godfather) (*models.Godfather, error) {
		assert.Empty(t, g.IgnoredCategories)
		return g, nil
	})

	ignored, err = fixture.engine.IgnoreCategory(Actor{ID: "godfather", IsGodfather: true}, models.CategoryDark)
	assert.NoError(t, err)
	assert.False(t, ignored)
}

func TestIgnoreCategory_RequiresGodfatherRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newEngineFixture(ctrl)
	fixture.godfathers.EXPECT().GetOneByUserID("godfather").Return(nil, nil)

	_, err := fixture.engine.IgnoreCategory(Actor{ID: "godfather", IsGodfather: true}, models.CategoryDark)
	assert.IsType(t, &ValidationError{}, err)
}

func TestHandleRenderingRemoved_DeletesRowAndReportsOrphans(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newEngineFixture(ctrl)

	suggestion := &models.Proposal{
		ID:        1,
		Kind:      models.ProposalKindSuggestion,
		MessageID: "message",
		Corrections: []*models.Proposal{
			{ID: 2, MessageID: "correction-a"},
			{ID: 3, MessageID: "correction-b"},
		},
	}
	fixture.proposals.EXPECT().GetOneByMessageID("message").Return(suggestion, nil)
	fixture.proposals.EXPECT().Delete(suggestion).Return(nil)

	orphaned, err := fixture.engine.HandleRenderingRemoved("message")
	assert.NoError(t, err)
	assert.Equal(t, []string{"correction-a", "correction-b"}, orphaned)
}

func TestHandleRenderingRemoved_UnknownMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newEngineFixture(ctrl)
	fixture.proposals.EXPECT().GetOneByMessageID("message").Return(nil, nil)

	orphaned, err := fixture.engine.HandleRenderingRemoved("message")
	assert.NoError(t, err)
	assert.Nil(t, orphaned)
}
