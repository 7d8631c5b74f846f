package lazy

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/ropasync/pkg/rop"
)

func TestShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	boom := errors.New("boom")

	called := false
	mark := func() { called = true }

	chains := map[string]*Chain[int]{
		"map": Map(Fail[int](ctx, boom), func(_ context.Context, v int) int { mark(); return v }),
		"flatMap": FlatMap(Fail[int](ctx, boom), func(ctx context.Context, v int) *Chain[int] {
			mark()
			return Succeed(ctx, v)
		}),
		"try": Try(Fail[int](ctx, boom), func(_ context.Context, v int) (int, error) { mark(); return v, nil }),
		"filter": Fail[int](ctx, boom).Filter(func(context.Context, int) bool { mark(); return true },
			func(context.Context, int) error { mark(); return nil }),
		"tap": Fail[int](ctx, boom).Tap(func(context.Context, int) { mark() }),
	}

	for name, c := range chains {
		res := c.Yield()
		assert.True(t, res.IsFailure(), name)
		assert.ErrorIs(t, res.Err(), boom, name)
	}
	assert.False(t, called, "no transforming function may run on a failure")
}

func TestMap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	res := Map(Succeed(ctx, 3), func(_ context.Context, v int) string {
		return strconv.Itoa(v * 2)
	}).Yield()
	require.True(t, res.IsSuccess())
	assert.Equal(t, "6", res.Result())
}

func TestMap_PanicCoercedToMessage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	res := Map(Succeed(ctx, 3), func(_ context.Context, v int) int {
		panic(fmt.Errorf("bad value %d", v))
	}).Yield()

	require.True(t, res.IsFailure())
	assert.Equal(t, "bad value 3", res.Err().Error())
}

func TestFlatMap_Flattens(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	res := FlatMap(Succeed(ctx, 1), func(ctx context.Context, v int) *Chain[int] {
		return Succeed(ctx, v+1)
	}).Yield()
	require.True(t, res.IsSuccess())
	assert.Equal(t, 2, res.Result())

	e := errors.New("inner")
	res = FlatMap(Succeed(ctx, 1), func(ctx context.Context, v int) *Chain[int] {
		return Fail[int](ctx, e)
	}).Yield()
	assert.ErrorIs(t, res.Err(), e)

	res = FlatMap(Succeed(ctx, 1), func(ctx context.Context, v int) *Chain[int] {
		return nil
	}).Yield()
	assert.ErrorIs(t, res.Err(), rop.ErrNilChain)
}

func TestThen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	res := Then(Succeed(ctx, "7"), func(_ context.Context, s string) rop.Result[int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return rop.Fail[int](err)
		}
		return rop.Success(n)
	}).Yield()

	assert.Equal(t, 7, res.Result())
}

func TestTry_DeferredValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	res := Try(Succeed(ctx, "12"), func(_ context.Context, s string) (int, error) {
		return strconv.Atoi(s)
	}).Yield()
	assert.Equal(t, 12, res.Result())

	res = Try(Succeed(ctx, "x"), func(_ context.Context, s string) (int, error) {
		return strconv.Atoi(s)
	}).Yield()
	assert.True(t, res.IsFailure())

	var numErr *strconv.NumError
	assert.ErrorAs(t, res.Err(), &numErr)
}

func TestRecover(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	res := Fail[int](ctx, errors.New("x")).Recover(func(_ context.Context, err error) int {
		return len(err.Error())
	}).Yield()
	require.True(t, res.IsSuccess())
	assert.Equal(t, 1, res.Result())

	called := false
	res = Succeed(ctx, 5).Recover(func(context.Context, error) int {
		called = true
		return 0
	}).Yield()
	assert.Equal(t, 5, res.Result())
	assert.False(t, called)
}

func TestOrElse(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	res := Fail[int](ctx, errors.New("x")).OrElse(Succeed(ctx, 2)).Yield()
	assert.Equal(t, 2, res.Result())

	alt := errors.New("alt")
	res = Fail[int](ctx, errors.New("x")).OrElse(Fail[int](ctx, alt)).Yield()
	assert.ErrorIs(t, res.Err(), alt)

	res = Succeed(ctx, 1).OrElse(Succeed(ctx, 2)).Yield()
	assert.Equal(t, 1, res.Result())

	res = Fail[int](ctx, errors.New("abc")).OrElseWith(func(ctx context.Context, err error) *Chain[int] {
		return Succeed(ctx, len(err.Error()))
	}).Yield()
	assert.Equal(t, 3, res.Result())
}

func TestFilter(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	even := func(_ context.Context, v int) bool { return v%2 == 0 }

	assert.Equal(t, 4, Succeed(ctx, 4).Filter(even, nil).Yield().Result())

	res := Succeed(ctx, 3).Filter(even, nil).Yield()
	assert.ErrorIs(t, res.Err(), rop.ErrPredicate)
	assert.EqualError(t, res.Err(), "value did not satisfy predicate")

	res = Succeed(ctx, 3).Filter(even, func(_ context.Context, v int) error {
		return fmt.Errorf("%d is odd", v)
	}).Yield()
	assert.EqualError(t, res.Err(), "3 is odd")

	res = Succeed(ctx, 3).Filter(func(context.Context, int) bool { panic("nope") }, nil).Yield()
	assert.ErrorIs(t, res.Err(), rop.ErrPredicate)

	v, err := Succeed(ctx, 5).Filter(even, func(context.Context, int) error { return nil }).Await()
	assert.ErrorIs(t, err, rop.ErrPredicate)
	assert.Zero(t, v)
}

func TestTap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var seen int
	res := Succeed(ctx, 8).Tap(func(_ context.Context, v int) { seen = v }).Yield()
	assert.Equal(t, 8, seen)
	assert.Equal(t, 8, res.Result())

	var seenErr error
	boom := errors.New("boom")
	res = Fail[int](ctx, boom).TapError(func(_ context.Context, err error) { seenErr = err }).Yield()
	assert.ErrorIs(t, seenErr, boom)
	assert.ErrorIs(t, res.Err(), boom)
}

func TestFold(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	onSuccess := func(_ context.Context, v int) string { return "ok:" + strconv.Itoa(v) }
	onFailure := func(_ context.Context, err error) string { return "err:" + err.Error() }

	out := Fold(Succeed(ctx, 1), onSuccess, onFailure)
	assert.Equal(t, "ok:1", out.Value)
	assert.NoError(t, out.Err)

	out = Fold(Fail[int](ctx, errors.New("x")), onSuccess, onFailure)
	assert.Equal(t, "err:x", out.Value)
	assert.NoError(t, out.Err)

	out = Fold(Succeed(ctx, 1), func(context.Context, int) string { panic("fold") }, onFailure)
	assert.Empty(t, out.Value)
	assert.EqualError(t, out.Err, "fold")
}

func TestChain_Pipeline(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var log []string
	res := Map(
		Try(FromFunc(ctx, func(context.Context) (string, error) { return "21", nil }),
			func(_ context.Context, s string) (int, error) { return strconv.Atoi(s) }),
		func(_ context.Context, v int) int { return v * 2 }).
		Filter(func(_ context.Context, v int) bool { return v > 40 }, nil).
		Tap(func(_ context.Context, v int) { log = append(log, strconv.Itoa(v)) }).
		Yield()

	require.True(t, res.IsSuccess())
	assert.Equal(t, 42, res.Result())
	assert.Equal(t, []string{"42"}, log)
}
