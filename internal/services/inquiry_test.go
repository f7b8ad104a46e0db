package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"littlemaestros/internal/domain"
)

// fakeRegistrationRepo is an in-memory RegistrationRepository for tests.
type fakeRegistrationRepo struct {
	created []*domain.Registration
}

func (f *fakeRegistrationRepo) Create(ctx context.Context, reg *domain.Registration) error {
	reg.ID = int64(len(f.created) + 1)
	f.created = append(f.created, reg)
	return nil
}

func (f *fakeRegistrationRepo) List(ctx context.Context) ([]*domain.Registration, error) {
	return f.created, nil
}

// fakeContactRepo is an in-memory ContactRepository for tests.
type fakeContactRepo struct {
	created []*domain.ContactSubmission
}

func (f *fakeContactRepo) Create(ctx context.Context, sub *domain.ContactSubmission) error {
	sub.ID = int64(len(f.created) + 1)
	f.created = append(f.created, sub)
	return nil
}

func (f *fakeContactRepo) List(ctx context.Context) ([]*domain.ContactSubmission, error) {
	return f.created, nil
}

// fakeNewsletterRepo is an in-memory NewsletterRepository for tests.
type fakeNewsletterRepo struct {
	byEmail map[string]*domain.NewsletterSubscriber
}

func newFakeNewsletterRepo() *fakeNewsletterRepo {
	return &fakeNewsletterRepo{byEmail: make(map[string]*domain.NewsletterSubscriber)}
}

func (f *fakeNewsletterRepo) Create(ctx context.Context, sub *domain.NewsletterSubscriber) error {
	if _, ok := f.byEmail[sub.Email]; ok {
		return domain.ErrDuplicateEmail
	}
	sub.ID = int64(len(f.byEmail) + 1)
	f.byEmail[sub.Email] = sub
	return nil
}

func (f *fakeNewsletterRepo) GetByEmail(ctx context.Context, email string) (*domain.NewsletterSubscriber, error) {
	if sub, ok := f.byEmail[email]; ok {
		return sub, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeNewsletterRepo) List(ctx context.Context) ([]*domain.NewsletterSubscriber, error) {
	var out []*domain.NewsletterSubscriber
	for _, sub := range f.byEmail {
		out = append(out, sub)
	}
	return out, nil
}

// fakeEmailService records contact notifications.
type fakeEmailService struct {
	sent []*domain.ContactNotificationEmailData
	err  error
}

func (f *fakeEmailService) SendContactNotification(ctx context.Context, data *domain.ContactNotificationEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, data)
	return nil
}

func newTestInquiryService(notifyEmail string) (domain.InquiryService, *fakeRegistrationRepo, *fakeContactRepo, *fakeNewsletterRepo, *fakeEmailService) {
	regs := &fakeRegistrationRepo{}
	contacts := &fakeContactRepo{}
	newsletter := newFakeNewsletterRepo()
	emails := &fakeEmailService{}
	svc := NewInquiryService(regs, contacts, newsletter, emails, notifyEmail, slog.New(slog.DiscardHandler), 5*time.Second)
	return svc, regs, contacts, newsletter, emails
}

func TestCreateRegistrationDefaultsPaymentStatus(t *testing.T) {
	svc, regs, _, _, _ := newTestInquiryService("")

	reg := &domain.Registration{
		SessionID:   4,
		ParentName:  "Dana Whitfield",
		ParentEmail: "dana@example.com",
		StudentName: "Milo",
		StudentAge:  3,
	}
	require.NoError(t, svc.CreateRegistration(context.Background(), reg))

	require.Len(t, regs.created, 1)
	assert.Equal(t, "Pending", regs.created[0].PaymentStatus)
	assert.False(t, regs.created[0].CreatedAt.IsZero())
}

func TestCreateRegistrationRejectsBadEmail(t *testing.T) {
	svc, regs, _, _, _ := newTestInquiryService("")

	err := svc.CreateRegistration(context.Background(), &domain.Registration{
		SessionID:   4,
		ParentName:  "Dana",
		ParentEmail: "not-an-email",
		StudentName: "Milo",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, regs.created)
}

func TestSubmitContactFormSendsNotification(t *testing.T) {
	svc, _, contacts, _, emails := newTestInquiryService("owner@littlemaestros.com")

	phone := "555-0100"
	sub := &domain.ContactSubmission{
		Name:        "Dana Whitfield",
		Email:       "dana@example.com",
		Phone:       &phone,
		InquiryType: "Birthday Party",
		Message:     "Do you do parties for 3 year olds?",
	}
	require.NoError(t, svc.SubmitContactForm(context.Background(), sub))

	require.Len(t, contacts.created, 1)
	require.Len(t, emails.sent, 1)
	assert.Equal(t, "dana@example.com", emails.sent[0].Email)
	assert.Equal(t, "555-0100", emails.sent[0].Phone)
}

func TestSubmitContactFormSurvivesEmailFailure(t *testing.T) {
	svc, _, contacts, _, emails := newTestInquiryService("owner@littlemaestros.com")
	emails.err = errors.New("ses throttled")

	err := svc.SubmitContactForm(context.Background(), &domain.ContactSubmission{
		Name:    "Dana",
		Email:   "dana@example.com",
		Message: "hello",
	})

	// The submission is stored even though the notification failed.
	require.NoError(t, err)
	assert.Len(t, contacts.created, 1)
}

func TestSubmitContactFormSkipsEmailWhenUnconfigured(t *testing.T) {
	svc, _, _, _, emails := newTestInquiryService("")

	err := svc.SubmitContactForm(context.Background(), &domain.ContactSubmission{
		Name:    "Dana",
		Email:   "dana@example.com",
		Message: "hello",
	})

	require.NoError(t, err)
	assert.Empty(t, emails.sent)
}

func TestSubscribeNormalizesEmail(t *testing.T) {
	svc, _, _, newsletter, _ := newTestInquiryService("")

	sub, err := svc.Subscribe(context.Background(), "  Dana@Example.COM ")

	require.NoError(t, err)
	assert.Equal(t, "dana@example.com", sub.Email)
	_, ok := newsletter.byEmail["dana@example.com"]
	assert.True(t, ok)
}

func TestSubscribeDuplicate(t *testing.T) {
	svc, _, _, _, _ := newTestInquiryService("")

	_, err := svc.Subscribe(context.Background(), "dana@example.com")
	require.NoError(t, err)

	_, err = svc.Subscribe(context.Background(), "dana@example.com")
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestListRegistrations(t *testing.T) {
	svc, _, _, _, _ := newTestInquiryService("")

	regs, err := svc.ListRegistrations(context.Background())
	require.NoError(t, err)
	assert.Empty(t, regs)
	assert.NotNil(t, regs)

	require.NoError(t, svc.CreateRegistration(context.Background(), &domain.Registration{
		SessionID:   4,
		ParentName:  "Dana Whitfield",
		ParentEmail: "dana@example.com",
		StudentName: "Milo",
	}))

	regs, err = svc.ListRegistrations(context.Background())
	require.NoError(t, err)
	require.Len(t, regs, 1)
	assert.Equal(t, "Milo", regs[0].StudentName)
}

func TestListContactSubmissions(t *testing.T) {
	svc, _, _, _, _ := newTestInquiryService("")

	require.NoError(t, svc.SubmitContactForm(context.Background(), &domain.ContactSubmission{
		Name:    "Dana",
		Email:   "dana@example.com",
		Message: "hello",
	}))

	subs, err := svc.ListContactSubmissions(context.Background())
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "hello", subs[0].Message)
}

func TestListSubscribers(t *testing.T) {
	svc, _, _, _, _ := newTestInquiryService("")

	subs, err := svc.ListSubscribers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, subs)
	assert.NotNil(t, subs)

	_, err = svc.Subscribe(context.Background(), "dana@example.com")
	require.NoError(t, err)

	subs, err = svc.ListSubscribers(context.Background())
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "dana@example.com", subs[0].Email)
}

func TestSubscribeRejectsBadEmail(t *testing.T) {
	svc, _, _, _, _ := newTestInquiryService("")

	_, err := svc.Subscribe(context.Background(), "nope")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
