package lazy

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/ropasync/pkg/rop"
	"github.com/ib-77/ropasync/pkg/rop/solo"
)

type person struct {
	Name    string
	Matched bool
	Tags    []string
}

func nameIs(name string) func(context.Context, person) bool {
	return func(_ context.Context, p person) bool { return p.Name == name }
}

func markMatched(_ context.Context, p person) (person, error) {
	p.Matched = true
	return p, nil
}

func people() []solo.MatchCondition[person] {
	return []solo.MatchCondition[person]{
		{When: nameIs("Alice"), Then: markMatched},
		{When: nameIs("Bob"), Then: markMatched},
	}
}

func TestMatch_First(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	res := Succeed(ctx, person{Name: "Alice"}).Match(people(), solo.MatchOptions{}).Yield()
	require.True(t, res.IsSuccess())
	assert.Equal(t, person{Name: "Alice", Matched: true}, res.Result())
}

func TestMatch_NoMatch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	res := Succeed(ctx, person{Name: "Charlie"}).Match(people(), solo.MatchOptions{}).Yield()
	require.True(t, res.IsFailure())
	assert.EqualError(t, res.Err(), "No conditions matched")

	res = Succeed(ctx, person{Name: "Charlie"}).
		Match(people(), solo.MatchOptions{ContinueIfNoMatch: true}).Yield()
	require.True(t, res.IsSuccess())
	assert.Equal(t, person{Name: "Charlie"}, res.Result())
}

func TestMatch_FirstStopsAtFirstMatch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	secondRan := false
	conds := []solo.MatchCondition[person]{
		{When: nameIs("Alice"), Then: markMatched},
		{When: nameIs("Alice"), Then: func(_ context.Context, p person) (person, error) {
			secondRan = true
			return p, nil
		}},
	}

	res := Succeed(ctx, person{Name: "Alice"}).Match(conds, solo.MatchOptions{}).Yield()
	assert.True(t, res.Result().Matched)
	assert.False(t, secondRan)
}

func TestMatch_ActionFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	boom := errors.New("action failed")
	conds := []solo.MatchCondition[person]{
		{When: nameIs("Alice"), Then: func(context.Context, person) (person, error) {
			return person{}, boom
		}},
	}

	res := Succeed(ctx, person{Name: "Alice"}).Match(conds, solo.MatchOptions{}).Yield()
	assert.ErrorIs(t, res.Err(), boom)

	res = Succeed(ctx, person{Name: "Alice"}).Match(conds, solo.MatchOptions{ContinueOnError: true}).Yield()
	require.True(t, res.IsSuccess())
	assert.Equal(t, person{Name: "Alice"}, res.Result())

	panicking := []solo.MatchCondition[person]{
		{When: nameIs("Alice"), Then: func(context.Context, person) (person, error) {
			panic("raw value")
		}},
	}
	res = Succeed(ctx, person{Name: "Alice"}).Match(panicking, solo.MatchOptions{}).Yield()
	assert.EqualError(t, res.Err(), "raw value")
}

func TestMatch_Every(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tag := func(label string) func(context.Context, person) (person, error) {
		return func(_ context.Context, p person) (person, error) {
			p.Tags = append(append([]string{}, p.Tags...), label)
			return p, nil
		}
	}
	always := func(context.Context, person) bool { return true }
	boom := errors.New("skip me")

	conds := []solo.MatchCondition[person]{
		{When: always, Then: tag("a")},
		{When: nameIs("Bob"), Then: tag("never")},
		{When: always, Then: func(context.Context, person) (person, error) { return person{}, boom }},
		{When: func(_ context.Context, p person) bool { return len(p.Tags) == 1 }, Then: tag("b")},
	}

	res := Succeed(ctx, person{Name: "Alice"}).
		Match(conds, solo.MatchOptions{Mode: solo.MatchEvery, ContinueOnError: true}).Yield()
	require.True(t, res.IsSuccess())
	assert.Equal(t, []string{"a", "b"}, res.Result().Tags)

	res = Succeed(ctx, person{Name: "Alice"}).
		Match(conds, solo.MatchOptions{Mode: solo.MatchEvery}).Yield()
	assert.ErrorIs(t, res.Err(), boom)
}

func TestMatch_FailurePassesThrough(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	boom := errors.New("earlier")
	res := Fail[person](ctx, boom).Match(people(), solo.MatchOptions{}).Yield()
	assert.ErrorIs(t, res.Err(), boom)
	assert.NotErrorIs(t, res.Err(), rop.ErrNoMatch)
}
