package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/influencer-marketplace/backend/internal/models"
	"github.com/influencer-marketplace/backend/internal/repositories"
	"go.uber.org/zap"
)

// ---- in-memory fakes ----

type pairKey struct {
	campaignID   uuid.UUID
	influencerID uuid.UUID
}

type fakeApplications struct {
	byID map[uuid.UUID]*models.Application
	// staleReads makes GetByID report pending regardless of the stored
	// status, imitating a read raced by another decision.
	staleReads bool
}

func newFakeApplications() *fakeApplications {
	return &fakeApplications{byID: make(map[uuid.UUID]*models.Application)}
}

func (f *fakeApplications) Create(_ context.Context, a *models.Application) error {
	for _, existing := range f.byID {
		if existing.CampaignID == a.CampaignID && existing.InfluencerID == a.InfluencerID {
			return repositories.ErrDuplicateKey
		}
	}
	a.ID = uuid.New()
	stored := *a
	f.byID[a.ID] = &stored
	return nil
}

func (f *fakeApplications) GetByID(_ context.Context, id uuid.UUID) (*models.Application, error) {
	stored, ok := f.byID[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copy := *stored
	if f.staleReads {
		copy.Status = models.ApplicationStatusPending
	}
	return &copy, nil
}

func (f *fakeApplications) ListByCampaign(_ context.Context, campaignID uuid.UUID) ([]models.ApplicationWithInfluencer, error) {
	var out []models.ApplicationWithInfluencer
	for _, a := range f.byID {
		if a.CampaignID == campaignID {
			out = append(out, models.ApplicationWithInfluencer{Application: *a})
		}
	}
	return out, nil
}

func (f *fakeApplications) ListByInfluencer(_ context.Context, influencerID uuid.UUID) ([]models.Application, error) {
	var out []models.Application
	for _, a := range f.byID {
		if a.InfluencerID == influencerID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeApplications) UpdateStatusIfPending(_ context.Context, id uuid.UUID, status string) (bool, error) {
	stored, ok := f.byID[id]
	if !ok || stored.Status != models.ApplicationStatusPending {
		return false, nil
	}
	stored.Status = status
	return true, nil
}

type fakeCampaigns struct {
	byID map[uuid.UUID]*models.Campaign
}

func (f *fakeCampaigns) GetByID(_ context.Context, id uuid.UUID) (*models.Campaign, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copy := *c
	return &copy, nil
}

type fakeBrands struct {
	byID   map[uuid.UUID]*models.Brand
	byUser map[uuid.UUID]*models.Brand
}

func (f *fakeBrands) GetByID(_ context.Context, id uuid.UUID) (*models.Brand, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return b, nil
}

func (f *fakeBrands) GetByUserID(_ context.Context, userID uuid.UUID) (*models.Brand, error) {
	b, ok := f.byUser[userID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return b, nil
}

type fakeInfluencers struct {
	byID   map[uuid.UUID]*models.Influencer
	byUser map[uuid.UUID]*models.Influencer
}

func (f *fakeInfluencers) GetByID(_ context.Context, id uuid.UUID) (*models.Influencer, error) {
	inf, ok := f.byID[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return inf, nil
}

func (f *fakeInfluencers) GetByUserID(_ context.Context, userID uuid.UUID) (*models.Influencer, error) {
	inf, ok := f.byUser[userID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return inf, nil
}

type fakeAudit struct{ entries []models.AuditLog }

func (f *fakeAudit) Log(_ context.Context, entry models.AuditLog) error {
	f.entries = append(f.entries, entry)
	return nil
}

type fakeNotifications struct {
	created   []models.Notification
	createErr error
}

func (f *fakeNotifications) Create(_ context.Context, n *models.Notification) error {
	if f.createErr != nil {
		return f.createErr
	}
	n.ID = uuid.New()
	f.created = append(f.created, *n)
	return nil
}

func (f *fakeNotifications) ExistsForTarget(_ context.Context, userID uuid.UUID, notificationType string, relatedID uuid.UUID) (bool, error) {
	for _, n := range f.created {
		if n.UserID == userID && n.Type == notificationType && n.RelatedID != nil && *n.RelatedID == relatedID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeNotifications) ofType(t string) []models.Notification {
	var out []models.Notification
	for _, n := range f.created {
		if n.Type == t {
			out = append(out, n)
		}
	}
	return out
}

// ---- test environment ----

type testEnv struct {
	svc           *ApplicationService
	apps          *fakeApplications
	notifications *fakeNotifications

	brandUserID      uuid.UUID
	brand            *models.Brand
	influencerUserID uuid.UUID
	influencer       *models.Influencer
	campaign         *models.Campaign

	otherBrandUserID uuid.UUID
}

const validProposal = "I have worked with similar brands before and my audience is a great fit for this campaign."

func newTestEnv() *testEnv {
	env := &testEnv{
		brandUserID:      uuid.New(),
		influencerUserID: uuid.New(),
		otherBrandUserID: uuid.New(),
	}

	env.brand = &models.Brand{ID: uuid.New(), UserID: env.brandUserID, CompanyName: "Acme Drinks"}
	otherBrand := &models.Brand{ID: uuid.New(), UserID: env.otherBrandUserID, CompanyName: "Rival Corp"}
	env.influencer = &models.Influencer{
		ID:          uuid.New(),
		UserID:      env.influencerUserID,
		DisplayName: "Jamie Doe",
		Handle:      "jamiedoe",
	}
	env.campaign = &models.Campaign{
		ID:      uuid.New(),
		BrandID: env.brand.ID,
		Title:   "Summer Launch",
		Status:  models.CampaignStatusActive,
	}

	env.apps = newFakeApplications()
	env.notifications = &fakeNotifications{}

	campaigns := &fakeCampaigns{byID: map[uuid.UUID]*models.Campaign{env.campaign.ID: env.campaign}}
	brands := &fakeBrands{
		byID:   map[uuid.UUID]*models.Brand{env.brand.ID: env.brand, otherBrand.ID: otherBrand},
		byUser: map[uuid.UUID]*models.Brand{env.brandUserID: env.brand, env.otherBrandUserID: otherBrand},
	}
	influencers := &fakeInfluencers{
		byID:   map[uuid.UUID]*models.Influencer{env.influencer.ID: env.influencer},
		byUser: map[uuid.UUID]*models.Influencer{env.influencerUserID: env.influencer},
	}

	log := zap.NewNop()
	notifier := NewNotifier(env.notifications, nil, log)
	env.svc = NewApplicationService(env.apps, campaigns, brands, influencers, &fakeAudit{}, notifier, log)
	return env
}

// ---- submit ----

func TestSubmitCreatesPendingApplicationAndNotifiesOwner(t *testing.T) {
	env := newTestEnv()

	app, err := env.svc.Submit(context.Background(), env.influencerUserID, env.campaign.ID, validProposal)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if app.Status != models.ApplicationStatusPending {
		t.Errorf("status = %q, want pending", app.Status)
	}
	if app.InfluencerID != env.influencer.ID {
		t.Errorf("influencer id = %s, want %s", app.InfluencerID, env.influencer.ID)
	}

	got := env.notifications.ofType(models.NotificationTypeNewApplication)
	if len(got) != 1 {
		t.Fatalf("new_application notifications = %d, want 1", len(got))
	}
	if got[0].UserID != env.brandUserID {
		t.Errorf("notification recipient = %s, want brand owner %s", got[0].UserID, env.brandUserID)
	}
}

func TestSubmitFailsWhenCampaignNotActive(t *testing.T) {
	for _, status := range []string{
		models.CampaignStatusDraft, models.CampaignStatusClosed, models.CampaignStatusCompleted,
	} {
		t.Run(status, func(t *testing.T) {
			env := newTestEnv()
			env.campaign.Status = status

			_, err := env.svc.Submit(context.Background(), env.influencerUserID, env.campaign.ID, validProposal)
			if !errors.Is(err, ErrCampaignNotOpen) {
				t.Fatalf("err = %v, want ErrCampaignNotOpen", err)
			}
			if len(env.apps.byID) != 0 {
				t.Errorf("application rows = %d, want 0", len(env.apps.byID))
			}
			if len(env.notifications.created) != 0 {
				t.Errorf("notifications = %d, want 0", len(env.notifications.created))
			}
		})
	}
}

func TestSubmitWithoutInfluencerProfile(t *testing.T) {
	env := newTestEnv()

	_, err := env.svc.Submit(context.Background(), uuid.New(), env.campaign.ID, validProposal)
	if !errors.Is(err, ErrProfileRequired) {
		t.Fatalf("err = %v, want ErrProfileRequired", err)
	}
}

func TestSubmitToMissingCampaign(t *testing.T) {
	env := newTestEnv()

	_, err := env.svc.Submit(context.Background(), env.influencerUserID, uuid.New(), validProposal)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSubmitRejectsShortProposal(t *testing.T) {
	env := newTestEnv()

	_, err := env.svc.Submit(context.Background(), env.influencerUserID, env.campaign.ID, "too short")
	if !errors.Is(err, ErrProposalTooShort) {
		t.Fatalf("err = %v, want ErrProposalTooShort", err)
	}
	if len(env.apps.byID) != 0 {
		t.Errorf("application rows = %d, want 0", len(env.apps.byID))
	}
}

func TestSubmitDuplicateApplication(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	if _, err := env.svc.Submit(ctx, env.influencerUserID, env.campaign.ID, validProposal); err != nil {
		t.Fatalf("first Submit: %v", err)
	}
	_, err := env.svc.Submit(ctx, env.influencerUserID, env.campaign.ID, validProposal)
	if !errors.Is(err, ErrDuplicateApplication) {
		t.Fatalf("second Submit err = %v, want ErrDuplicateApplication", err)
	}
	if len(env.apps.byID) != 1 {
		t.Errorf("application rows = %d, want 1", len(env.apps.byID))
	}
	if n := len(env.notifications.ofType(models.NotificationTypeNewApplication)); n != 1 {
		t.Errorf("new_application notifications = %d, want 1", n)
	}
}

func TestSubmitSucceedsWhenNotificationPersistFails(t *testing.T) {
	env := newTestEnv()
	env.notifications.createErr = errors.New("notification store down")

	app, err := env.svc.Submit(context.Background(), env.influencerUserID, env.campaign.ID, validProposal)
	if err != nil {
		t.Fatalf("Submit should not fail on notification error, got %v", err)
	}
	if app.Status != models.ApplicationStatusPending {
		t.Errorf("status = %q, want pending", app.Status)
	}
}

// ---- decide ----

func TestDecideAcceptNotifiesInfluencer(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	app, err := env.svc.Submit(ctx, env.influencerUserID, env.campaign.ID, validProposal)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	decided, err := env.svc.Decide(ctx, env.brandUserID, app.ID, "accept")
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if decided.Status != models.ApplicationStatusAccepted {
		t.Errorf("status = %q, want accepted", decided.Status)
	}

	got := env.notifications.ofType(models.NotificationTypeApplicationApproved)
	if len(got) != 1 {
		t.Fatalf("application_approved notifications = %d, want 1", len(got))
	}
	if got[0].UserID != env.influencerUserID {
		t.Errorf("notification recipient = %s, want influencer %s", got[0].UserID, env.influencerUserID)
	}
}

func TestDecideRejectNotifiesInfluencer(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	app, err := env.svc.Submit(ctx, env.influencerUserID, env.campaign.ID, validProposal)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	decided, err := env.svc.Decide(ctx, env.brandUserID, app.ID, "reject")
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if decided.Status != models.ApplicationStatusRejected {
		t.Errorf("status = %q, want rejected", decided.Status)
	}
	if n := len(env.notifications.ofType(models.NotificationTypeApplicationRejected)); n != 1 {
		t.Errorf("application_rejected notifications = %d, want 1", n)
	}
}

func TestDecideTwiceFailsWithoutSecondNotification(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	app, err := env.svc.Submit(ctx, env.influencerUserID, env.campaign.ID, validProposal)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, err := env.svc.Decide(ctx, env.brandUserID, app.ID, "accept"); err != nil {
		t.Fatalf("first Decide: %v", err)
	}
	before := len(env.notifications.created)

	for _, decision := range []string{"accept", "reject"} {
		if _, err := env.svc.Decide(ctx, env.brandUserID, app.ID, decision); !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("repeat Decide(%s) err = %v, want ErrInvalidTransition", decision, err)
		}
	}

	stored, _ := env.apps.GetByID(ctx, app.ID)
	if stored.Status != models.ApplicationStatusAccepted {
		t.Errorf("status = %q, want accepted to stick", stored.Status)
	}
	if len(env.notifications.created) != before {
		t.Errorf("notifications = %d, want %d (no double-notify)", len(env.notifications.created), before)
	}
}

func TestDecideRacingDecisionLosesAtStore(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	app, err := env.svc.Submit(ctx, env.influencerUserID, env.campaign.ID, validProposal)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, err := env.svc.Decide(ctx, env.brandUserID, app.ID, "accept"); err != nil {
		t.Fatalf("first Decide: %v", err)
	}

	// The second decider read the row before the first decision landed; the
	// conditional update must still reject it.
	env.apps.staleReads = true
	before := len(env.notifications.created)

	if _, err := env.svc.Decide(ctx, env.brandUserID, app.ID, "reject"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("stale Decide err = %v, want ErrInvalidTransition", err)
	}
	if len(env.notifications.created) != before {
		t.Errorf("notifications = %d, want %d", len(env.notifications.created), before)
	}
}

func TestDecideByNonOwningBrand(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	app, err := env.svc.Submit(ctx, env.influencerUserID, env.campaign.ID, validProposal)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	before := len(env.notifications.created)

	if _, err := env.svc.Decide(ctx, env.otherBrandUserID, app.ID, "accept"); !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("err = %v, want ErrNotAuthorized", err)
	}

	stored, _ := env.apps.GetByID(ctx, app.ID)
	if stored.Status != models.ApplicationStatusPending {
		t.Errorf("status = %q, want pending unchanged", stored.Status)
	}
	if len(env.notifications.created) != before {
		t.Errorf("notifications = %d, want %d", len(env.notifications.created), before)
	}
}

func TestDecideWithoutBrandProfile(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	app, err := env.svc.Submit(ctx, env.influencerUserID, env.campaign.ID, validProposal)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, err := env.svc.Decide(ctx, uuid.New(), app.ID, "accept"); !errors.Is(err, ErrProfileRequired) {
		t.Fatalf("err = %v, want ErrProfileRequired", err)
	}
}

func TestDecideInvalidDecision(t *testing.T) {
	env := newTestEnv()

	if _, err := env.svc.Decide(context.Background(), env.brandUserID, uuid.New(), "maybe"); !errors.Is(err, ErrInvalidDecision) {
		t.Fatalf("err = %v, want ErrInvalidDecision", err)
	}
}

// ---- mark viewed ----

func TestMarkViewedNotifiesOnce(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	app, err := env.svc.Submit(ctx, env.influencerUserID, env.campaign.ID, validProposal)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if err := env.svc.MarkViewed(ctx, env.brandUserID, app.ID); err != nil {
		t.Fatalf("MarkViewed: %v", err)
	}
	if err := env.svc.MarkViewed(ctx, env.brandUserID, app.ID); err != nil {
		t.Fatalf("second MarkViewed: %v", err)
	}

	got := env.notifications.ofType(models.NotificationTypeApplicationViewed)
	if len(got) != 1 {
		t.Fatalf("application_viewed notifications = %d, want 1", len(got))
	}
	if got[0].UserID != env.influencerUserID {
		t.Errorf("recipient = %s, want influencer %s", got[0].UserID, env.influencerUserID)
	}
}

func TestMarkViewedByNonOwner(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	app, err := env.svc.Submit(ctx, env.influencerUserID, env.campaign.ID, validProposal)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if err := env.svc.MarkViewed(ctx, env.otherBrandUserID, app.ID); !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("err = %v, want ErrNotAuthorized", err)
	}
}

// ---- end-to-end ----

func TestApplicationLifecycleEndToEnd(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	app, err := env.svc.Submit(ctx, env.influencerUserID, env.campaign.ID, validProposal)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if app.Status != models.ApplicationStatusPending {
		t.Fatalf("status = %q, want pending", app.Status)
	}
	if n := len(env.notifications.ofType(models.NotificationTypeNewApplication)); n != 1 {
		t.Fatalf("new_application notifications = %d, want 1", n)
	}

	decided, err := env.svc.Decide(ctx, env.brandUserID, app.ID, "accept")
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if decided.Status != models.ApplicationStatusAccepted {
		t.Fatalf("status = %q, want accepted", decided.Status)
	}
	approved := env.notifications.ofType(models.NotificationTypeApplicationApproved)
	if len(approved) != 1 || approved[0].UserID != env.influencerUserID {
		t.Fatalf("approved notifications = %+v, want exactly one to influencer", approved)
	}

	if _, err := env.svc.Decide(ctx, env.brandUserID, app.ID, "reject"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("re-decide err = %v, want ErrInvalidTransition", err)
	}
	stored, _ := env.apps.GetByID(ctx, app.ID)
	if stored.Status != models.ApplicationStatusAccepted {
		t.Errorf("status = %q, want accepted", stored.Status)
	}
	if n := len(env.notifications.ofType(models.NotificationTypeApplicationRejected)); n != 0 {
		t.Errorf("application_rejected notifications = %d, want 0", n)
	}
}
