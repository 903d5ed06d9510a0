package inference_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bayesnet/inference"
)

func TestQuery_ConcurrentCallers(t *testing.T) {
	ve := alarmEngine(t)
	ev := map[string]int{"JohnCalls": 1, "MaryCalls": 1}

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			query := []string{"Burglary"}
			if i%2 == 1 {
				query = []string{"Earthquake"}
			}
			f, err := ve.Query(query, ev)
			if !assert.NoError(t, err) {
				return
			}
			want := 0.28417183536439294
			if i%2 == 1 {
				want = 0.17549246584007516 + 0.0005743725650040577
			}
			got, err := f.Value(1)
			assert.NoError(t, err)
			assert.InDelta(t, want, got, tol)
		}(i)
	}
	wg.Wait()
}

func TestQueryBatch(t *testing.T) {
	ve := alarmEngine(t)
	reqs := []inference.Request{
		{Variables: []string{"Alarm"}},
		{Variables: []string{"Burglary"}, Evidence: map[string]int{"JohnCalls": 1}},
		{Variables: []string{"Alarm"}, Evidence: map[string]int{"Alarm": 1}},
		{Variables: []string{"Burglary"}, Evidence: map[string]int{"JohnCalls": 1, "MaryCalls": 1},
			Options: []inference.QueryOption{inference.WithEliminationOrder("Alarm", "Earthquake")}},
	}

	for _, limit := range []int{0, 1, 3} {
		res, err := ve.QueryBatch(context.Background(), reqs, limit)
		require.NoError(t, err)
		require.Len(t, res, len(reqs))

		require.NoError(t, res[0].Err)
		assert.InDelta(t, 0.002516442, prob(t, res[0].Factor, 1), tol)
		require.NoError(t, res[1].Err)
		assert.InDelta(t, 0.016283729946769937, prob(t, res[1].Factor, 1), tol)
		assert.ErrorIs(t, res[2].Err, inference.ErrQueryEvidenceOverlap)
		assert.Nil(t, res[2].Factor)
		require.NoError(t, res[3].Err)
		assert.InDelta(t, 0.28417183536439294, prob(t, res[3].Factor, 1), tol)
	}
}

func TestQueryBatch_Cancelled(t *testing.T) {
	ve := alarmEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reqs := make([]inference.Request, 8)
	for i := range reqs {
		reqs[i] = inference.Request{Variables: []string{"Alarm"}}
	}
	res, err := ve.QueryBatch(ctx, reqs, 2)
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, res, len(reqs))
	for _, r := range res {
		assert.ErrorIs(t, r.Err, context.Canceled)
		assert.Nil(t, r.Factor)
	}
}
