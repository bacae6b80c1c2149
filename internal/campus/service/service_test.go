package service

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/internal/campus/moderation"
	"github.com/aussiebroadwan/campus/internal/campus/store/drivers/sqlite"
	"github.com/aussiebroadwan/campus/pkg/cryptox"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestMain(m *testing.M) {
	cryptox.PasswordCost = bcrypt.MinCost
	os.Exit(m.Run())
}

type fixedNames string

func (f fixedNames) Generate() string { return string(f) }

// fakeClock lets tests move time without sleeping.
type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type fixture struct {
	store    *sqlite.Store
	clock    *fakeClock
	tokens   *TokenService
	accounts *AccountService
	queries  *QueryService
	comments *CommentService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	st, err := sqlite.NewStore(sqlite.MemoryDSN)
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	clock := &fakeClock{t: time.Now().UTC().Truncate(time.Millisecond)}

	tokens, err := NewTokenService(testSecret, "campus-qa", 0)
	require.NoError(t, err)

	return &fixture{
		store:    st,
		clock:    clock,
		tokens:   tokens,
		accounts: &AccountService{Store: st, Tokens: tokens, Policy: NewEmailPolicy(nil), Clock: clock.Now},
		queries:  &QueryService{Store: st, Names: fixedNames("Quiet Owl"), Clock: clock.Now},
		comments: &CommentService{Store: st, Names: fixedNames("Bold Fox"), Clock: clock.Now},
	}
}

func (f *fixture) signup(t *testing.T, email string) domain.Account {
	t.Helper()
	res, err := f.accounts.Signup(context.Background(), email, "secret1")
	require.NoError(t, err)
	return res.Account
}

func (f *fixture) postQuery(t *testing.T, creator string) domain.Query {
	t.Helper()
	q, err := f.queries.Create(context.Background(), creator, NewQuery{
		Section:     "DSA",
		Title:       "Dijkstra with negative edges?",
		Description: "Why does it break?",
	})
	require.NoError(t, err)
	return q
}

func TestQueryCreateAndGet(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.signup(t, "owner@college.edu")

	q := f.postQuery(t, owner.ID)
	require.Equal(t, "Quiet Owl", q.AnonymousName)
	require.Equal(t, owner.ID, q.CreatorID)
	require.Equal(t, f.clock.t, q.CreatedAt)

	detail, err := f.queries.Get(ctx, q.ID, owner.ID)
	require.NoError(t, err)
	require.Equal(t, q, detail.Query)
	require.Empty(t, detail.Comments)
	require.True(t, detail.IsOwner)
}

func TestQueryCreateMissingFields(t *testing.T) {
	f := newFixture(t)
	owner := f.signup(t, "owner@college.edu")

	for _, in := range []NewQuery{
		{Section: "", Title: "t", Description: "d"},
		{Section: "OS", Title: "   ", Description: "d"},
		{Section: "OS", Title: "t", Description: "\n\t"},
	} {
		_, err := f.queries.Create(context.Background(), owner.ID, in)
		require.ErrorIs(t, err, ErrMissingFields)
	}

	_, err := f.queries.Create(context.Background(), "", NewQuery{Section: "OS", Title: "t", Description: "d"})
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestIsOwnerOnlyForCreator(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.signup(t, "owner@college.edu")
	other := f.signup(t, "other@college.edu")
	q := f.postQuery(t, owner.ID)

	tests := []struct {
		name   string
		viewer string
		want   bool
	}{
		{"creator", owner.ID, true},
		{"creator lower-case id", toLower(owner.ID), true},
		{"another account", other.ID, false},
		{"anonymous", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detail, err := f.queries.Get(ctx, q.ID, tt.viewer)
			require.NoError(t, err)
			require.Equal(t, tt.want, detail.IsOwner)
		})
	}
}

func toLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 32
		}
	}
	return string(b)
}

func TestGetMissingQuery(t *testing.T) {
	f := newFixture(t)
	_, err := f.queries.Get(context.Background(), "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", "")
	require.ErrorIs(t, err, ErrQueryNotFound)
}

func TestMalformedQueryIDSkipsStore(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.signup(t, "owner@college.edu")

	// A closed store fails every call, so ErrQueryNotFound here means the
	// id was rejected before any lookup.
	require.NoError(t, f.store.Close())

	for _, id := range []string{"nope", "42", "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3Z!", "' OR 1=1 --"} {
		_, err := f.queries.Get(ctx, id, "")
		require.ErrorIs(t, err, ErrQueryNotFound, "get %q", id)

		require.ErrorIs(t, f.queries.Delete(ctx, id, owner.ID), ErrQueryNotFound, "delete %q", id)

		_, err = f.comments.Create(ctx, owner.ID, id, "text")
		require.ErrorIs(t, err, ErrQueryNotFound, "comment %q", id)
	}

	// Blank ids are still a missing field for comments
	_, err := f.comments.Create(ctx, owner.ID, "  ", "text")
	require.ErrorIs(t, err, ErrMissingFields)
}

func TestLowerCaseQueryIDResolves(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.signup(t, "owner@college.edu")
	q := f.postQuery(t, owner.ID)

	detail, err := f.queries.Get(ctx, toLower(q.ID), "")
	require.NoError(t, err)
	require.Equal(t, q.ID, detail.Query.ID)

	_, err = f.comments.Create(ctx, owner.ID, toLower(q.ID), "answer")
	require.NoError(t, err)
}

func TestDeleteCascadesAndThenNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.signup(t, "owner@college.edu")
	commenter := f.signup(t, "commenter@college.edu")

	q := f.postQuery(t, owner.ID)
	_, err := f.comments.Create(ctx, commenter.ID, q.ID, "Use Bellman-Ford")
	require.NoError(t, err)

	require.NoError(t, f.queries.Delete(ctx, q.ID, owner.ID))

	_, err = f.queries.Get(ctx, q.ID, owner.ID)
	require.ErrorIs(t, err, ErrQueryNotFound)

	left, err := f.store.Comments().ListCommentsByQuery(ctx, q.ID)
	require.NoError(t, err)
	require.Empty(t, left)

	require.ErrorIs(t, f.queries.Delete(ctx, q.ID, owner.ID), ErrQueryNotFound)
}

func TestDeleteByNonCreatorIsForbiddenAndUnchanged(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.signup(t, "owner@college.edu")
	intruder := f.signup(t, "intruder@college.edu")

	q := f.postQuery(t, owner.ID)
	_, err := f.comments.Create(ctx, owner.ID, q.ID, "bump")
	require.NoError(t, err)

	require.ErrorIs(t, f.queries.Delete(ctx, q.ID, intruder.ID), ErrNotQueryOwner)
	require.ErrorIs(t, f.queries.Delete(ctx, q.ID, ""), ErrNotQueryOwner)

	detail, err := f.queries.Get(ctx, q.ID, owner.ID)
	require.NoError(t, err)
	require.Len(t, detail.Comments, 1)
}

func TestListAnnotatesCommentCount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.signup(t, "owner@college.edu")

	first := f.postQuery(t, owner.ID)
	f.clock.Advance(time.Second)
	second, err := f.queries.Create(ctx, owner.ID, NewQuery{Section: "OS", Title: "Paging", Description: "TLB?"})
	require.NoError(t, err)

	_, err = f.comments.Create(ctx, owner.ID, first.ID, "one")
	require.NoError(t, err)
	_, err = f.comments.Create(ctx, owner.ID, first.ID, "two")
	require.NoError(t, err)

	all, err := f.queries.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, second.ID, all[0].ID)
	require.Equal(t, 0, all[0].CommentCount)
	require.Equal(t, first.ID, all[1].ID)
	require.Equal(t, 2, all[1].CommentCount)

	osOnly, err := f.queries.List(ctx, " OS ")
	require.NoError(t, err)
	require.Len(t, osOnly, 1)
	require.Equal(t, second.ID, osOnly[0].ID)
}

func TestCommentsAscending(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.signup(t, "owner@college.edu")
	q := f.postQuery(t, owner.ID)

	c1, err := f.comments.Create(ctx, owner.ID, q.ID, "first")
	require.NoError(t, err)
	f.clock.Advance(time.Minute)
	c2, err := f.comments.Create(ctx, owner.ID, q.ID, "second")
	require.NoError(t, err)

	detail, err := f.queries.Get(ctx, q.ID, "")
	require.NoError(t, err)
	require.Equal(t, []domain.Comment{c1, c2}, detail.Comments)
}

func TestCommentValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.signup(t, "owner@college.edu")
	q := f.postQuery(t, owner.ID)

	_, err := f.comments.Create(ctx, owner.ID, q.ID, "   ")
	require.ErrorIs(t, err, ErrMissingFields)

	_, err = f.comments.Create(ctx, owner.ID, "", "text")
	require.ErrorIs(t, err, ErrMissingFields)

	_, err = f.comments.Create(ctx, owner.ID, "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", "text")
	require.ErrorIs(t, err, ErrQueryNotFound)
}

func TestToxicCommentRejectedAndNotPersisted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.signup(t, "owner@college.edu")
	q := f.postQuery(t, owner.ID)

	f.comments.Filter = moderation.Static(0.91, moderation.DefaultThreshold)
	_, err := f.comments.Create(ctx, owner.ID, q.ID, "something nasty")
	require.ErrorIs(t, err, ErrToxicContent)

	detail, err := f.queries.Get(ctx, q.ID, "")
	require.NoError(t, err)
	require.Empty(t, detail.Comments)

	f.comments.Filter = moderation.Static(0.05, moderation.DefaultThreshold)
	c, err := f.comments.Create(ctx, owner.ID, q.ID, "helpful answer")
	require.NoError(t, err)

	detail, err = f.queries.Get(ctx, q.ID, "")
	require.NoError(t, err)
	require.Equal(t, []domain.Comment{c}, detail.Comments)
}

func TestFilterFailureAcceptsComment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.signup(t, "owner@college.edu")
	q := f.postQuery(t, owner.ID)

	f.comments.Filter = moderation.FilterFunc(func(context.Context, string) moderation.Result {
		return moderation.Result{Err: moderation.ErrUpstream}
	})

	_, err := f.comments.Create(ctx, owner.ID, q.ID, "fine text")
	require.NoError(t, err)
}

func TestRetentionSweep(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.signup(t, "owner@college.edu")
	start := f.clock.t

	f.clock.t = start.Add(-8 * 24 * time.Hour)
	old := f.postQuery(t, owner.ID)
	_, err := f.comments.Create(ctx, owner.ID, old.ID, "stale")
	require.NoError(t, err)

	f.clock.t = start.Add(-6 * 24 * time.Hour)
	recent := f.postQuery(t, owner.ID)

	f.clock.t = start
	sweeper := &RetentionService{Store: f.store, Clock: f.clock.Now}

	n, err := sweeper.Sweep(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	_, err = f.queries.Get(ctx, old.ID, "")
	require.ErrorIs(t, err, ErrQueryNotFound)
	left, err := f.store.Comments().ListCommentsByQuery(ctx, old.ID)
	require.NoError(t, err)
	require.Empty(t, left)

	_, err = f.queries.Get(ctx, recent.ID, "")
	require.NoError(t, err)

	// Nothing more to do on a second pass
	n, err = sweeper.Sweep(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestHousekeepingRunsSweepOnStart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.signup(t, "owner@college.edu")

	f.clock.Advance(-10 * 24 * time.Hour)
	old := f.postQuery(t, owner.ID)
	f.clock.Advance(10 * 24 * time.Hour)

	hk := NewHousekeepingService(
		&RetentionService{Store: f.store, Clock: f.clock.Now},
		testLogger(),
		time.Hour,
	)
	hk.Start()

	require.Eventually(t, func() bool {
		_, err := f.queries.Get(ctx, old.ID, "")
		return err != nil
	}, 2*time.Second, 10*time.Millisecond)

	hk.Stop()
	hk.Stop()
}

func TestHousekeepingStopWithoutStart(t *testing.T) {
	hk := NewHousekeepingService(&RetentionService{}, testLogger(), 0)
	require.Equal(t, time.Hour, hk.Interval)

	done := make(chan struct{})
	go func() {
		hk.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop blocked without Start")
	}
}
