package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pasarhub/pasar/internal/identity/entity"
	"github.com/pasarhub/pasar/internal/pkg/config"
	"github.com/pasarhub/pasar/internal/pkg/goroutine"
	"github.com/pasarhub/pasar/internal/pkg/idempotency"
	"github.com/pasarhub/pasar/internal/pkg/instrument"
	"github.com/pasarhub/pasar/internal/pkg/jwt"
	"github.com/pasarhub/pasar/internal/pkg/validator"
)

var testNow = time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

type fakeHash struct{}

func (fakeHash) Hash(plaintext string) ([]byte, error) {
	return []byte("hashed:" + plaintext), nil
}

func (fakeHash) Verify(hashed, plaintext string) bool {
	return hashed == "hashed:"+plaintext
}

type fakeUID struct {
	next int64
}

func (f *fakeUID) Generate() int64 {
	f.next++
	return f.next
}

type fakeOTP struct {
	codes []string
	calls int
}

func (f *fakeOTP) Generate() (string, error) {
	code := f.codes[f.calls%len(f.codes)]
	f.calls++
	return code, nil
}

type fakeJWT struct{}

func (fakeJWT) Generate(uid int64, email, role string) (string, error) {
	return "token", nil
}

func (fakeJWT) Verify(tokenStr string) (jwt.Claims, error) {
	return jwt.Claims{}, nil
}

type fakeIdempotency struct {
	err error // returned instead of running fn when set
}

func (f *fakeIdempotency) Exec(ctx context.Context, key string, fn func(context.Context) error, opts ...idempotency.Option) error {
	if f.err != nil {
		return f.err
	}
	return fn(ctx)
}

func (f *fakeIdempotency) Acquire(ctx context.Context, key string, lockDuration time.Duration) (idempotency.State, error) {
	return idempotency.StateNone, nil
}

func (f *fakeIdempotency) MarkCompleted(ctx context.Context, key string, ttl time.Duration) error {
	return nil
}

func (f *fakeIdempotency) MarkFailed(ctx context.Context, key string, ttl time.Duration) error {
	return nil
}

type fakeMessaging struct {
	mu        sync.Mutex
	codes     []VerificationCodeEvent
	decisions []SellerDecisionEvent
}

func (f *fakeMessaging) PublishVerificationCode(ctx context.Context, msg VerificationCodeEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.codes = append(f.codes, msg)
	return nil
}

func (f *fakeMessaging) PublishSellerDecision(ctx context.Context, msg SellerDecisionEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.decisions = append(f.decisions, msg)
	return nil
}

func (f *fakeMessaging) publishedCodes() []VerificationCodeEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]VerificationCodeEvent(nil), f.codes...)
}

// fakeRepoDB covers the account store with overridable behavior per test.
type fakeRepoDB struct {
	getByEmail func(ctx context.Context, email string) (*entity.Account, error)
	create     func(ctx context.Context, acc entity.NewAccount, hash string) error
	rotate     func(ctx context.Context, in entity.OtpRotation) error
	activate   func(ctx context.Context, in entity.OtpActivation) (bool, error)
	purge      func(ctx context.Context, email string, now time.Time) (bool, error)
}

func (f *fakeRepoDB) GetAccountByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return f.getByEmail(ctx, email)
}

func (f *fakeRepoDB) GetAccountByID(context.Context, int64) (*entity.Account, error) {
	panic("not expected")
}

func (f *fakeRepoDB) GetAccountList(context.Context, entity.AccountListFilterData) ([]entity.Account, int64, error) {
	panic("not expected")
}

func (f *fakeRepoDB) GetPendingSellers(context.Context) ([]entity.Account, error) {
	panic("not expected")
}

func (f *fakeRepoDB) CreateAccount(ctx context.Context, acc entity.NewAccount, hash string) error {
	return f.create(ctx, acc, hash)
}

func (f *fakeRepoDB) RotateOtp(ctx context.Context, in entity.OtpRotation) error {
	return f.rotate(ctx, in)
}

func (f *fakeRepoDB) ActivateByOtp(ctx context.Context, in entity.OtpActivation) (bool, error) {
	return f.activate(ctx, in)
}

func (f *fakeRepoDB) PurgeIfUnverifiedAndExpired(ctx context.Context, email string, now time.Time) (bool, error) {
	if f.purge == nil {
		return false, nil
	}
	return f.purge(ctx, email, now)
}

func (f *fakeRepoDB) UpdateAccountStatus(context.Context, entity.AccountStatusChange) error {
	panic("not expected")
}

func (f *fakeRepoDB) ApproveSeller(context.Context, int64) error {
	panic("not expected")
}

func (f *fakeRepoDB) RejectSeller(context.Context, int64) error {
	panic("not expected")
}

func (f *fakeRepoDB) DeleteAccount(context.Context, int64) error {
	panic("not expected")
}

// testConfig overrides only the keys the verification flow reads.
type testConfig struct {
	config.Config
}

func (testConfig) GetMinute(key string) time.Duration {
	return 5 * time.Minute
}

func (testConfig) GetInt(key string) int {
	return 6
}

type testEnv struct {
	uc   *Usecase
	repo *fakeRepoDB
	msg  *fakeMessaging
	otp  *fakeOTP
	mgr  *goroutine.Manager
}

func newTestEnv(t *testing.T, repo *fakeRepoDB) *testEnv {
	t.Helper()

	v, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("init validator: %v", err)
	}

	msg := &fakeMessaging{}
	gen := &fakeOTP{codes: []string{"123456", "654321"}}
	mgr := goroutine.NewManager(4)

	uc := New(Dependency{
		RepoDB:        repo,
		RepoMessaging: msg,
		Idempotency:   &fakeIdempotency{},
		Validator:     v,
		Config:        testConfig{},
		Bcrypt:        fakeHash{},
		UID:           &fakeUID{},
		OTP:           gen,
		Clock:         &fakeClock{now: testNow},
		JWT:           fakeJWT{},
		Instrument:    instrument.NewNoop(),
		Goroutine:     mgr,
	})

	return &testEnv{uc: uc, repo: repo, msg: msg, otp: gen, mgr: mgr}
}

// drain waits for fire-and-forget publishes scheduled by the last call.
func (e *testEnv) drain() {
	_ = e.mgr.Wait()
}
