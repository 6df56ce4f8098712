package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pasarhub/pasar/internal/notification/entity"
	"github.com/pasarhub/pasar/internal/pkg/config"
	"github.com/pasarhub/pasar/internal/pkg/goerror"
	"github.com/pasarhub/pasar/internal/pkg/instrument"
	"github.com/pasarhub/pasar/internal/pkg/mail"
	"github.com/pasarhub/pasar/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC)

type fakeRepoDB struct {
	template func(ctx context.Context, tk entity.TriggerKey, ch entity.Channel) (*entity.Template, error)

	created []entity.CreateDeliveryLog
	updated []entity.UpdateDeliveryLog
}

func (f *fakeRepoDB) GetTemplateByTriggerChannel(ctx context.Context, tk entity.TriggerKey, ch entity.Channel) (*entity.Template, error) {
	return f.template(ctx, tk, ch)
}

func (f *fakeRepoDB) CreateDeliveryLog(ctx context.Context, dl entity.CreateDeliveryLog) error {
	f.created = append(f.created, dl)
	return nil
}

func (f *fakeRepoDB) UpdateDeliveryLogStatus(ctx context.Context, u entity.UpdateDeliveryLog) error {
	f.updated = append(f.updated, u)
	return nil
}

type fakeMail struct {
	err  error
	sent []mail.Message
}

func (f *fakeMail) Send(ctx context.Context, msg mail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

type fakeClock struct{ now time.Time }

func (f fakeClock) Now() time.Time { return f.now }

type fakeUID struct{ next int64 }

func (f *fakeUID) Generate() int64 {
	f.next++
	return f.next
}

// testConfig overrides only the keys the notification flow reads.
type testConfig struct {
	config.Config
}

func (testConfig) GetMinute(key string) time.Duration { return 2 * time.Minute }

func (testConfig) GetInt(key string) int { return 5 }

func codeTemplate() *entity.Template {
	return &entity.Template{
		ID:         1,
		TriggerKey: entity.TriggerKeyVerificationCode,
		Channel:    entity.ChannelEmail,
		Subject:    "Your verification code",
		Body:       "<p>Code: {{.code}} (valid {{.ttl_minutes}} minutes) from {{.company_name}}</p>",
	}
}

func newTestUsecase(t *testing.T, repo *fakeRepoDB, mailer *fakeMail) *Usecase {
	t.Helper()

	v, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("init validator: %v", err)
	}

	return NewNotification(Dependency{
		RepoDB:     repo,
		Config:     testConfig{},
		UID:        &fakeUID{},
		Clock:      fakeClock{now: testNow},
		Validator:  v,
		RepoMail:   mailer,
		Instrument: instrument.NewNoop(),
	})
}

func TestConsumeVerificationCode(t *testing.T) {

	// Arrange
	repo := &fakeRepoDB{
		template: func(ctx context.Context, tk entity.TriggerKey, ch entity.Channel) (*entity.Template, error) {
			require.Equal(t, entity.TriggerKeyVerificationCode, tk)
			require.Equal(t, entity.ChannelEmail, ch)
			return codeTemplate(), nil
		},
	}
	mailer := &fakeMail{}
	uc := newTestUsecase(t, repo, mailer)

	// Act
	err := uc.ConsumeVerificationCode(context.Background(), ConsumeVerificationCodeInput{
		AccountID: 42,
		Email:     "pending@example.com",
		Code:      "123456",
		ExpiresAt: testNow.Add(5 * time.Minute),
	})

	// Assert
	require.NoError(t, err)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, []string{"pending@example.com"}, mailer.sent[0].To)
	assert.Equal(t, "Your verification code", mailer.sent[0].Subject)
	assert.Contains(t, mailer.sent[0].HTMLBody, "Code: 123456")
	assert.Contains(t, mailer.sent[0].HTMLBody, "valid 5 minutes")
	assert.Contains(t, mailer.sent[0].HTMLBody, "PasarHub")

	require.Len(t, repo.created, 1)
	assert.Equal(t, entity.DeliveryStatusQueued, repo.created[0].Status)
	assert.Equal(t, int64(42), repo.created[0].AccountID)

	require.Len(t, repo.updated, 1)
	assert.Equal(t, repo.created[0].ID, repo.updated[0].ID)
	assert.Equal(t, entity.DeliveryStatusSent, repo.updated[0].Status)
	assert.Nil(t, repo.updated[0].NextRetryAt)
}

func TestConsumeVerificationCodeMailFailure(t *testing.T) {

	// Arrange
	repo := &fakeRepoDB{
		template: func(ctx context.Context, tk entity.TriggerKey, ch entity.Channel) (*entity.Template, error) {
			return codeTemplate(), nil
		},
	}
	mailer := &fakeMail{err: errors.New("smtp: connection refused")}
	uc := newTestUsecase(t, repo, mailer)

	// Act
	err := uc.ConsumeVerificationCode(context.Background(), ConsumeVerificationCodeInput{
		AccountID: 42,
		Email:     "pending@example.com",
		Code:      "123456",
		ExpiresAt: testNow.Add(5 * time.Minute),
	})

	// Assert: the failure is recorded, not propagated
	require.NoError(t, err)
	require.Len(t, repo.updated, 1)
	assert.Equal(t, entity.DeliveryStatusFailed, repo.updated[0].Status)
	assert.Equal(t, "smtp: connection refused", repo.updated[0].ProviderResponse["error"])
	require.NotNil(t, repo.updated[0].NextRetryAt)
	assert.Equal(t, testNow.Add(2*time.Minute), *repo.updated[0].NextRetryAt)
}

func TestConsumeVerificationCodeMissingTemplate(t *testing.T) {

	// Arrange
	repo := &fakeRepoDB{
		template: func(ctx context.Context, tk entity.TriggerKey, ch entity.Channel) (*entity.Template, error) {
			return nil, goerror.ErrNotFound
		},
	}
	mailer := &fakeMail{}
	uc := newTestUsecase(t, repo, mailer)

	// Act
	err := uc.ConsumeVerificationCode(context.Background(), ConsumeVerificationCodeInput{
		AccountID: 42,
		Email:     "pending@example.com",
		Code:      "123456",
		ExpiresAt: testNow.Add(5 * time.Minute),
	})

	// Assert: nothing sent, nothing logged
	require.NoError(t, err)
	assert.Empty(t, mailer.sent)
	assert.Empty(t, repo.created)
}

func TestConsumeVerificationCodeInvalidPayload(t *testing.T) {

	// Arrange
	repo := &fakeRepoDB{
		template: func(ctx context.Context, tk entity.TriggerKey, ch entity.Channel) (*entity.Template, error) {
			t.Fatal("template lookup not expected")
			return nil, nil
		},
	}
	uc := newTestUsecase(t, repo, &fakeMail{})

	// Act: malformed events are dropped so the broker does not redeliver
	err := uc.ConsumeVerificationCode(context.Background(), ConsumeVerificationCodeInput{
		AccountID: 42,
		Email:     "not-an-email",
		Code:      "123456",
	})

	// Assert
	require.NoError(t, err)
	assert.Empty(t, repo.created)
}

func TestConsumeSellerDecision(t *testing.T) {
	tests := []struct {
		name     string
		approved bool
		want     entity.TriggerKey
	}{
		{name: "Approved", approved: true, want: entity.TriggerKeySellerApproved},
		{name: "Rejected", approved: false, want: entity.TriggerKeySellerRejected},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			var gotTrigger entity.TriggerKey
			repo := &fakeRepoDB{
				template: func(ctx context.Context, tk entity.TriggerKey, ch entity.Channel) (*entity.Template, error) {
					gotTrigger = tk
					return &entity.Template{
						ID:         2,
						TriggerKey: tk,
						Channel:    entity.ChannelEmail,
						Subject:    "Seller application update",
						Body:       "<p>Greetings from {{.company_name}}</p>",
					}, nil
				},
			}
			mailer := &fakeMail{}
			uc := newTestUsecase(t, repo, mailer)

			// Act
			err := uc.ConsumeSellerDecision(context.Background(), ConsumeSellerDecisionInput{
				AccountID: 9,
				Email:     "seller@example.com",
				Approved:  tc.approved,
			})

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tc.want, gotTrigger)
			require.Len(t, mailer.sent, 1)
		})
	}
}
