// Package engine implements the proposal lifecycle: submission with
// duplicate detection, the approval/disapproval workflow, the correction
// cascade and the synchronization of the public rendering with the ledger.
package engine

import (
	"context"
	"unicode/utf8"

	"joke_suggestions_system/internal/dataset"
	"joke_suggestions_system/internal/db/models"
	"joke_suggestions_system/internal/db/repositories"
	"joke_suggestions_system/internal/presentation"
	"joke_suggestions_system/internal/similarity"

	"go.uber.org/zap"
)

type DecisionKind string

const (
	DecisionApprove    DecisionKind = "approve"
	DecisionDisapprove DecisionKind = "disapprove"
)

type Role string

const (
	RoleJoker     Role = "joker"
	RoleCorrector Role = "corrector"
)

// Actor is the identity handed in by the platform. IsGodfather is the
// capability flag resolved upstream; the engine only checks it.
type Actor struct {
	ID          string
	IsGodfather bool
}

type Config struct {
	NeededSuggestionsApprovals    int
	NeededCorrectionsApprovals    int
	NeededSuggestionsDisapprovals int
	NeededCorrectionsDisapprovals int
	MaxJokePartLength             int
	DuplicateScoreThreshold       float64
	SimilarScoreThreshold         float64
}

// Rendering identifies a proposal's public message; the kind decides which
// channel it lives in.
type Rendering struct {
	Kind      models.ProposalKind
	MessageID string
}

func renderingOf(proposal *models.Proposal) Rendering {
	return Rendering{Kind: proposal.Kind, MessageID: proposal.MessageID}
}

// Platform is the chat side of the engine: renderings, reactions, roles.
// Every call can fail independently of the store.
type Platform interface {
	PostRendering(ctx context.Context, kind models.ProposalKind, view presentation.View) (string, error)
	EditRendering(rendering Rendering, view presentation.View) error
	DeleteRendering(rendering Rendering) error
	AddVoteReactions(rendering Rendering) error
	RemoveAllReactions(rendering Rendering) error
	RemoveUserReactions(rendering Rendering, userID string) error
	GrantRole(userID string, role Role) error
	AnnounceMerge(view presentation.View, note string) error
}

// Dataset mutates and reads the canonical jokes API. Non transactional
// with the store: a merge call that succeeds is durable even if the engine
// fails right after.
type Dataset interface {
	MergeJoke(ctx context.Context, payload dataset.JokePayload) (int64, error)
	Jokes(ctx context.Context) ([]dataset.Joke, error)
}

type SubmitRequest struct {
	Actor    Actor
	Kind     models.ProposalKind
	Category models.Category
	Question string
	Answer   string

	// Subject of a correction: a managed proposal rendering, or a
	// published joke when no proposal row exists for it.
	SubjectMessageID string
	JokeID           *int64
}

type DuplicateMatch struct {
	Category models.Category
	Question string
	Answer   string
	Score    float64
}

type SubmitResult struct {
	Proposal  *models.Proposal
	Duplicate *DuplicateMatch
}

type Outcome struct {
	Proposal   *models.Proposal
	Action     LedgerAction
	Counts     Counts
	Merged     bool
	Refused    bool
	AutoMerged bool
	Info       string
}

type Engine struct {
	config     Config
	proposals  repositories.ProposalRepository
	godfathers repositories.GodfatherRepository
	ledger     *Ledger
	platform   Platform
	dataset    Dataset
	logger     *zap.SugaredLogger
}

func NewEngine(
	config Config,
	proposals repositories.ProposalRepository,
	godfathers repositories.GodfatherRepository,
	ledger *Ledger,
	platform Platform,
	dataset Dataset,
	logger *zap.SugaredLogger,
) *Engine {
	return &Engine{
		config:     config,
		proposals:  proposals,
		godfathers: godfathers,
		ledger:     ledger,
		platform:   platform,
		dataset:    dataset,
		logger:     logger,
	}
}

// Submit validates a proposal, runs the duplicate check and creates the
// proposal together with its rendering. A duplicate rejection persists
// nothing.
func (e *Engine) Submit(ctx context.Context, request SubmitRequest) (SubmitResult, error) {
	if err := e.validateSubmission(request); err != nil {
		return SubmitResult{}, err
	}

	proposal := &models.Proposal{
		Kind:     request.Kind,
		UserID:   request.Actor.ID,
		Category: request.Category,
		Question: request.Question,
		Answer:   request.Answer,
	}

	var warning *presentation.Field

	if request.Kind == models.ProposalKindSuggestion {
		match, entry, err := e.bestMatch(ctx, request)
		if err != nil {
			return SubmitResult{}, err
		}

		if match.Score > e.config.DuplicateScoreThreshold {
			return SubmitResult{Duplicate: &DuplicateMatch{
				Category: entry.Category,
				Question: entry.Question,
				Answer:   entry.Answer,
				Score:    match.Score,
			}}, nil
		}

		if match.Score > e.config.SimilarScoreThreshold {
			field := presentation.SimilarJokeField(entry.Category, entry.Question, entry.Answer)
			warning = &field
		}
	} else {
		if err := e.resolveSubject(request, proposal); err != nil {
			return SubmitResult{}, err
		}
	}

	view := presentation.OpenView(presentation.Region{
		Base: presentation.FormatJoke(proposal.Category, proposal.Question, proposal.Answer),
	})
	if warning != nil {
		view.Fields = []presentation.Field{*warning}
	}

	messageID, err := e.platform.PostRendering(ctx, request.Kind, view)
	if err != nil {
		return SubmitResult{}, &ExternalSyncError{Op: "post rendering", Err: err}
	}
	proposal.MessageID = messageID

	created, err := e.proposals.Create(proposal)
	if err != nil {
		if deleteErr := e.platform.DeleteRendering(Rendering{Kind: request.Kind, MessageID: messageID}); deleteErr != nil {
			e.logger.Errorw("failed to delete orphan rendering", "message_id", messageID, "error", deleteErr)
		}
		return SubmitResult{}, &StoreError{Err: err}
	}

	if request.Kind == models.ProposalKindSuggestion {
		if err := e.platform.AddVoteReactions(renderingOf(created)); err != nil {
			e.logger.Errorw("failed to add vote reactions", "message_id", messageID, "error", err)
		}
	}

	return SubmitResult{Proposal: created}, nil
}

// Decide records an approval or disapproval and drives the resulting
// transition, if any.
func (e *Engine) Decide(ctx context.Context, actor Actor, messageID string, decision DecisionKind) (Outcome, error) {
	if !actor.IsGodfather {
		return Outcome{}, &ValidationError{Reason: "seul un parrain peut prendre cette décision"}
	}

	proposal, err := e.proposals.GetOneByMessageID(messageID)
	if err != nil {
		return Outcome{}, &StoreError{Err: err}
	}
	if proposal == nil {
		return Outcome{}, &ValidationError{Reason: "ce message n'est pas une proposition gérée"}
	}

	if proposal.Merged || proposal.Refused {
		// Repair path: make sure the rendering carries its terminal marker.
		e.syncTerminalRendering(proposal)
		return Outcome{}, &TerminalProposalError{ProposalID: proposal.ID, Status: terminalStatus(proposal)}
	}

	if proposal.Kind == models.ProposalKindCorrection {
		if err := e.checkLatestCorrection(proposal); err != nil {
			return Outcome{}, err
		}
	}

	if decision == DecisionApprove && proposal.IsSuggestion() {
		if correction := proposal.LatestActiveCorrection(); correction != nil && !correction.ApprovedBy(actor.ID) {
			return Outcome{
				Proposal: proposal,
				Info:     "une correction est en attente sur cette suggestion, approuvez-la d'abord",
			}, nil
		}
	}

	var action LedgerAction
	switch decision {
	case DecisionApprove:
		action, err = e.ledger.CastApproval(proposal, actor.ID)
	case DecisionDisapprove:
		action, err = e.ledger.CastDisapproval(proposal, actor.ID)
	default:
		return Outcome{}, &ValidationError{Reason: "décision inconnue"}
	}
	if err != nil {
		return Outcome{}, err
	}

	e.ensureGodfatherRecord(actor)

	if action == LedgerActionAdded {
		if err := e.platform.RemoveUserReactions(renderingOf(proposal), actor.ID); err != nil {
			e.logger.Errorw("failed to remove vote reactions", "message_id", proposal.MessageID, "error", err)
		}
	}

	counts, err := e.ledger.Counts(proposal.ID)
	if err != nil {
		return Outcome{}, err
	}

	// Reload so the godfather line reflects the toggle just applied.
	proposal, err = e.proposals.GetOne(proposal.ID)
	if err != nil {
		return Outcome{}, &StoreError{Err: err}
	}
	if proposal == nil {
		// The rendering was deleted while the decision was being recorded;
		// its cleanup handler took the row along.
		return Outcome{}, &ValidationError{Reason: "la proposition n'existe plus"}
	}

	outcome := Outcome{Proposal: proposal, Action: action, Counts: counts}

	if decision == DecisionApprove && action == LedgerActionAdded && counts.Approvals >= e.neededApprovals(proposal) {
		if proposal.IsSuggestion() {
			if correction := proposal.LatestActiveCorrection(); correction != nil {
				e.syncOpenRendering(proposal)
				outcome.Info = "le seuil est atteint, mais une correction doit encore être approuvée"
				return outcome, nil
			}
			if err := e.mergeSuggestion(ctx, proposal, false); err != nil {
				return outcome, err
			}
			outcome.Merged = true
			return outcome, nil
		}

		autoMerged, err := e.mergeCorrection(ctx, proposal)
		if err != nil {
			return outcome, err
		}
		outcome.Merged = true
		outcome.AutoMerged = autoMerged
		return outcome, nil
	}

	if decision == DecisionDisapprove && action == LedgerActionAdded && counts.Disapprovals >= e.neededDisapprovals(proposal) {
		if err := e.refuse(proposal); err != nil {
			return outcome, err
		}
		outcome.Refused = true
		return outcome, nil
	}

	e.syncOpenRendering(proposal)
	return outcome, nil
}

// IgnoreCategory toggles a category in the godfather's ignore list and
// reports the new state.
func (e *Engine) IgnoreCategory(actor Actor, category models.Category) (bool, error) {
	if !category.Valid() {
		return false, &ValidationError{Reason: "catégorie inconnue"}
	}
	if !actor.IsGodfather {
		return false, &ValidationError{Reason: "seul un parrain peut ignorer une catégorie"}
	}

	godfather, err := e.godfathers.GetOneByUserID(actor.ID)
	if err != nil {
		return false, &StoreError{Err: err}
	}
	if godfather == nil {
		return false, &ValidationError{Reason: "approuvez quelques blagues avant de faire la fine bouche"}
	}

	ignored := godfather.Ignores(category)
	if ignored {
		categories := make([]models.Category, 0, len(godfather.IgnoredCategories))
		for _, c := range godfather.IgnoredCategories {
			if c != category {
				categories = append(categories, c)
			}
		}
		godfather.IgnoredCategories = categories
	} else {
		godfather.IgnoredCategories = append(godfather.IgnoredCategories, category)
	}

	if _, err := e.godfathers.Update(godfather); err != nil {
		return false, &StoreError{Err: err}
	}

	return !ignored, nil
}

// HandleRenderingRemoved reacts to an out-of-band deletion of a proposal
// rendering: the row goes away and the message ids of dependent correction
// renderings are returned for removal.
func (e *Engine) HandleRenderingRemoved(messageID string) ([]string, error) {
	proposal, err := e.proposals.GetOneByMessageID(messageID)
	if err != nil {
		return nil, &StoreError{Err: err}
	}
	if proposal == nil {
		return nil, nil
	}

	var orphaned []string
	for _, correction := range proposal.Corrections {
		orphaned = append(orphaned, correction.MessageID)
	}

	if err := e.proposals.Delete(proposal); err != nil {
		return nil, &StoreError{Err: err}
	}

	return orphaned, nil
}

func (e *Engine) validateSubmission(request SubmitRequest) error {
	if !request.Category.Valid() {
		return &ValidationError{Reason: "catégorie inconnue"}
	}
	if request.Question == "" || request.Answer == "" {
		return &ValidationError{Reason: "la blague et sa réponse sont obligatoires"}
	}
	if utf8.RuneCountInString(request.Question) > e.config.MaxJokePartLength ||
		utf8.RuneCountInString(request.Answer) > e.config.MaxJokePartLength {
		return &ValidationError{
			Reason: "chaque partie d'une blague ne peut pas dépasser les 130 caractères",
		}
	}
	return nil
}

type corpusEntry struct {
	Category models.Category
	Question string
	Answer   string
}

func (e *Engine) bestMatch(ctx context.Context, request SubmitRequest) (similarity.Match, corpusEntry, error) {
	jokes, err := e.dataset.Jokes(ctx)
	if err != nil {
		return similarity.Match{}, corpusEntry{}, &ExternalSyncError{Op: "list jokes", Err: err}
	}

	suggestions, err := e.proposals.GetOpenSuggestions()
	if err != nil {
		return similarity.Match{}, corpusEntry{}, &StoreError{Err: err}
	}

	entries := make([]corpusEntry, 0, len(jokes)+len(suggestions))
	texts := make([]string, 0, cap(entries))
	for _, joke := range jokes {
		entries = append(entries, corpusEntry{Category: joke.Category, Question: joke.Question, Answer: joke.Answer})
		texts = append(texts, joke.Question+" "+joke.Answer)
	}
	for _, suggestion := range suggestions {
		entries = append(entries, corpusEntry{Category: suggestion.Category, Question: suggestion.Question, Answer: suggestion.Answer})
		texts = append(texts, suggestion.Question+" "+suggestion.Answer)
	}

	match := similarity.FindBestMatch(request.Question+" "+request.Answer, texts)
	if match.Index == -1 {
		return match, corpusEntry{}, nil
	}

	return match, entries[match.Index], nil
}

func (e *Engine) resolveSubject(request SubmitRequest, proposal *models.Proposal) error {
	if request.SubjectMessageID != "" {
		subject, err := e.proposals.GetOneByMessageID(request.SubjectMessageID)
		if err != nil {
			return &StoreError{Err: err}
		}
		if subject == nil {
			return &ValidationError{Reason: "la cible de la correction est introuvable"}
		}
		if subject.Kind == models.ProposalKindCorrection {
			return &ValidationError{Reason: "une correction doit viser une suggestion, pas une autre correction"}
		}
		if subject.Refused {
			return &ValidationError{Reason: "la cible de la correction a été refusée"}
		}

		proposal.SuggestionID = &subject.ID
		if subject.Merged {
			proposal.JokeID = subject.JokeID
		}
		return nil
	}

	if request.JokeID != nil {
		proposal.JokeID = request.JokeID
		return nil
	}

	return &ValidationError{Reason: "une correction doit viser une suggestion ou une blague publiée"}
}

func (e *Engine) checkLatestCorrection(proposal *models.Proposal) error {
	var siblings []*models.Proposal
	if proposal.Suggestion != nil {
		siblings = proposal.Suggestion.Corrections
	} else if proposal.JokeID != nil {
		var err error
		siblings, err = e.proposals.GetActiveCorrectionsByJoke(*proposal.JokeID)
		if err != nil {
			return &StoreError{Err: err}
		}
	}

	var latest *models.Proposal
	for _, sibling := range siblings {
		if !sibling.Terminal() {
			latest = sibling
			break
		}
	}

	if proposal.Stale {
		staleErr := &StaleTargetError{ProposalID: proposal.ID}
		if latest != nil {
			staleErr.LatestMessageID = latest.MessageID
		}
		return staleErr
	}

	if latest != nil && latest.ID != proposal.ID {
		return &StaleTargetError{ProposalID: proposal.ID, LatestMessageID: latest.MessageID}
	}

	return nil
}

func (e *Engine) neededApprovals(proposal *models.Proposal) int {
	if proposal.IsSuggestion() {
		return e.config.NeededSuggestionsApprovals
	}
	return e.config.NeededCorrectionsApprovals
}

func (e *Engine) neededDisapprovals(proposal *models.Proposal) int {
	if proposal.IsSuggestion() {
		return e.config.NeededSuggestionsDisapprovals
	}
	return e.config.NeededCorrectionsDisapprovals
}

// mergeSuggestion runs the terminal transition of a suggestion. The
// dataset mutation comes first: if it fails nothing is persisted and the
// proposal stays open for a retry.
func (e *Engine) mergeSuggestion(ctx context.Context, proposal *models.Proposal, auto bool) error {
	jokeID, err := e.dataset.MergeJoke(ctx, dataset.JokePayload{
		Category: proposal.Category,
		Question: proposal.Question,
		Answer:   proposal.Answer,
	})
	if err != nil {
		return &ExternalSyncError{Op: "merge joke", Err: err}
	}

	transitioned, err := e.proposals.MarkMerged(proposal.ID, &jokeID)
	if err != nil {
		return &StoreError{Err: err}
	}
	if !transitioned {
		return &TerminalProposalError{ProposalID: proposal.ID, Status: "merged"}
	}
	proposal.Merged = true
	proposal.JokeID = &jokeID

	if proposal.UserID != "" {
		if err := e.platform.GrantRole(proposal.UserID, RoleJoker); err != nil {
			e.logger.Errorw("failed to grant joker role", "user_id", proposal.UserID, "error", err)
		}
	}

	e.syncTerminalRendering(proposal)

	note := "Blague ajoutée à l'API"
	if auto {
		note = "Blague ajoutée automatiquement à l'API"
	}
	e.announce(proposal, note)

	return nil
}

// mergeCorrection merges a correction and cascades: sibling corrections on
// the same subject go stale in the same transaction, then the renderings
// are brought in line. Returns whether the subject suggestion auto-merged.
func (e *Engine) mergeCorrection(ctx context.Context, proposal *models.Proposal) (bool, error) {
	var jokeID *int64
	if proposal.TargetsPublishedJoke() {
		id, err := e.dataset.MergeJoke(ctx, dataset.JokePayload{
			JokeID:   proposal.JokeID,
			Category: proposal.Category,
			Question: proposal.Question,
			Answer:   proposal.Answer,
		})
		if err != nil {
			return false, &ExternalSyncError{Op: "merge joke correction", Err: err}
		}
		jokeID = &id
	}

	siblings := make([]*models.Proposal, 0)
	if proposal.Suggestion != nil {
		siblings = proposal.Suggestion.Corrections
	} else if proposal.JokeID != nil {
		var err error
		siblings, err = e.proposals.GetActiveCorrectionsByJoke(*proposal.JokeID)
		if err != nil {
			return false, &StoreError{Err: err}
		}
	}

	subjectApprovals := 0
	if proposal.Suggestion != nil {
		subjectApprovals = len(proposal.Suggestion.Approvals)
	}

	plan := planCascade(CascadeInput{
		Correction:       proposal,
		Siblings:         siblings,
		JokeID:           jokeID,
		SubjectApprovals: subjectApprovals,
		NeededApprovals:  e.config.NeededSuggestionsApprovals,
	})

	if err := e.proposals.ApplyCorrectionMerge(plan.Merge); err != nil {
		return false, &StoreError{Err: err}
	}
	proposal.Merged = true

	if proposal.UserID != "" {
		if err := e.platform.GrantRole(proposal.UserID, RoleCorrector); err != nil {
			e.logger.Errorw("failed to grant corrector role", "user_id", proposal.UserID, "error", err)
		}
	}

	e.syncTerminalRendering(proposal)
	e.announce(proposal, "Correction migrée")

	// Stale siblings: safe to re-run, a stale rendering resyncs to the
	// same bytes.
	for _, sibling := range plan.StaleRenderings {
		sibling.Stale = true
		e.syncTerminalRendering(sibling)
	}

	if proposal.Suggestion == nil {
		return false, nil
	}

	subject, err := e.proposals.GetOne(proposal.Suggestion.ID)
	if err != nil {
		return false, &StoreError{Err: err}
	}
	if subject == nil {
		return false, nil
	}

	if !subject.Terminal() {
		e.syncOpenRendering(subject)
		e.refreshSubjectVotes(proposal, subject)
	}

	if plan.AutoMergeSubject {
		if err := e.mergeSuggestion(ctx, subject, true); err != nil {
			return false, err
		}
		return true, nil
	}

	return false, nil
}

func (e *Engine) refuse(proposal *models.Proposal) error {
	transitioned, err := e.proposals.MarkRefused(proposal.ID)
	if err != nil {
		return &StoreError{Err: err}
	}
	if !transitioned {
		return &TerminalProposalError{ProposalID: proposal.ID, Status: "refused"}
	}
	proposal.Refused = true

	e.syncTerminalRendering(proposal)
	e.announce(proposal, "Proposition refusée")

	return nil
}

// refreshSubjectVotes resets the vote reactions of the subject suggestion
// when the merged correction changed its content substantially: old votes
// no longer refer to what is displayed.
func (e *Engine) refreshSubjectVotes(correction, subject *models.Proposal) {
	score := similarity.Compare(
		correction.Question+" "+correction.Answer,
		subject.Question+" "+subject.Answer,
	)
	if score >= 0.5 {
		return
	}

	if err := e.platform.RemoveAllReactions(renderingOf(subject)); err != nil {
		e.logger.Errorw("failed to reset subject reactions", "message_id", subject.MessageID, "error", err)
		return
	}
	if err := e.platform.AddVoteReactions(renderingOf(subject)); err != nil {
		e.logger.Errorw("failed to re-add vote reactions", "message_id", subject.MessageID, "error", err)
	}
}

func (e *Engine) syncOpenRendering(proposal *models.Proposal) {
	region := presentation.Region{
		Base:       presentation.FormatJoke(proposal.Category, proposal.Question, proposal.Answer),
		Godfathers: presentation.GodfatherLine(decisionIDs(proposal)),
	}
	if correction := proposal.LatestActiveCorrection(); correction != nil && proposal.IsSuggestion() {
		region.Warning = "une correction a été proposée"
	}

	if err := e.platform.EditRendering(renderingOf(proposal), presentation.OpenView(region)); err != nil {
		e.logger.Errorw("failed to sync rendering", "message_id", proposal.MessageID, "error", err)
	}
}

func (e *Engine) syncTerminalRendering(proposal *models.Proposal) {
	region := presentation.Region{
		Base: presentation.FormatJoke(proposal.Category, proposal.Question, proposal.Answer),
	}

	if err := e.platform.EditRendering(renderingOf(proposal), presentation.TerminalView(region, proposal)); err != nil {
		e.logger.Errorw("failed to sync terminal rendering", "message_id", proposal.MessageID, "error", err)
		return
	}

	if err := e.platform.RemoveAllReactions(renderingOf(proposal)); err != nil {
		e.logger.Errorw("failed to remove reactions", "message_id", proposal.MessageID, "error", err)
	}
}

func (e *Engine) announce(proposal *models.Proposal, note string) {
	view := presentation.TerminalView(presentation.Region{
		Base: presentation.FormatJoke(proposal.Category, proposal.Question, proposal.Answer),
	}, proposal)

	if err := e.platform.AnnounceMerge(view, note); err != nil {
		e.logger.Errorw("failed to announce transition", "proposal_id", proposal.ID, "error", err)
	}
}

func (e *Engine) ensureGodfatherRecord(actor Actor) {
	godfather, err := e.godfathers.GetOneByUserID(actor.ID)
	if err != nil {
		e.logger.Errorw("failed to load godfather", "user_id", actor.ID, "error", err)
		return
	}
	if godfather != nil {
		return
	}

	if _, err := e.godfathers.Create(&models.Godfather{UserID: actor.ID}); err != nil {
		e.logger.Errorw("failed to create godfather", "user_id", actor.ID, "error", err)
	}
}

func decisionIDs(proposal *models.Proposal) (approvers []string, disapprovers []string) {
	for _, approval := range proposal.Approvals {
		approvers = append(approvers, approval.UserID)
	}
	for _, disapproval := range proposal.Disapprovals {
		disapprovers = append(disapprovers, disapproval.UserID)
	}
	return approvers, disapprovers
}
