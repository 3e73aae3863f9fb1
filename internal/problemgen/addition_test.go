package problemgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddition_ScriptedStandard(t *testing.T) {
	src := &scriptedSource{
		ints:   []int{4, 2, 8},
		floats: []float64{0.9, 0.1},
	}
	q := New(src, WithIDs(counterIDs())).Addition(3, DigitSingle, RuleStandard)

	assert.Equal(t, []int{5, -3, 9}, q.Rows)
	assert.Equal(t, 11, q.Answer)
	assert.Equal(t, CategoryAddition, q.Category)
	assert.Equal(t, RuleStandard, q.Rule)
	assert.Empty(t, q.MultLevel)
	// The opening row never draws a sign.
	assert.Equal(t, 2, src.floatDraws)
}

func TestAddition_RejectsOutOfRangeTotals(t *testing.T) {
	var stats Stats
	src := &scriptedSource{
		ints:   []int{89, 10, 0},
		floats: []float64{0.1, 0.9},
	}
	q := New(src, WithObserver(&stats)).Addition(2, DigitDouble, RuleStandard)

	assert.Equal(t, []int{99, -10}, q.Rows)
	assert.Equal(t, 89, q.Answer)

	rows := stats.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].Attempts)
	assert.Equal(t, 2, rows[1].Attempts)
	assert.Equal(t, 99, rows[1].Before)
}

func TestAddition_ForcedStepUp(t *testing.T) {
	var stats Stats
	// Every draw is a 1, which mixed friends always rejects.
	q := New(&scriptedSource{}, WithObserver(&stats)).Addition(3, DigitSingle, RuleMixedFriends)

	assert.Equal(t, []int{1, 1, 1}, q.Rows)
	assert.Equal(t, 3, q.Answer)

	sum := stats.Summary()
	assert.Equal(t, 3, sum.ForcedRows)
	assert.Equal(t, 3*maxRowAttempts, sum.Attempts)
	assert.True(t, stats.IsForced(q.ID, 2))
}

func TestAddition_ForcedStepDown(t *testing.T) {
	var stats Stats
	src := &scriptedSource{ints: []int{59}}
	q := New(src, WithObserver(&stats)).Addition(2, DigitDouble, RuleMixedFriends)

	assert.Equal(t, []int{69, -1}, q.Rows)
	assert.Equal(t, 68, q.Answer)
	assert.False(t, stats.IsForced(q.ID, 0))
	assert.True(t, stats.IsForced(q.ID, 1))
}

func TestAddition_SmallFriendsRelaxesAfterFiftyAttempts(t *testing.T) {
	var stats Stats
	// At total 0 no 1-4 addend needs the small friend, so the requirement
	// must be lifted before anything is accepted.
	q := New(&scriptedSource{}, WithObserver(&stats)).Addition(1, DigitSingle, RuleSmallFriends)

	assert.Equal(t, []int{1}, q.Rows)
	rows := stats.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, relaxAfterAttempts, rows[0].Attempts)
	assert.True(t, rows[0].Relaxed)
	assert.False(t, rows[0].Forced)
}

func TestAddition_BigFriendsAcceptsCarry(t *testing.T) {
	var stats Stats
	src := &scriptedSource{
		ints:   append(repeat(6, relaxAfterAttempts), 4),
		floats: []float64{0.1},
	}
	q := New(src, WithObserver(&stats)).Addition(2, DigitSingle, RuleBigFriends)

	assert.Equal(t, []int{7, 5}, q.Rows)
	rows := stats.Rows()
	require.Len(t, rows, 2)
	assert.True(t, rows[0].Relaxed, "single-digit opening row cannot carry")
	assert.Equal(t, 1, rows[1].Attempts)
	assert.False(t, rows[1].Relaxed)
}

func TestAddition_SmallFriendsRejectsLargeOnesDigit(t *testing.T) {
	var stats Stats
	// 7 is rejected outright; 3 after a 4 needs the small friend.
	src := &scriptedSource{
		ints:   append(repeat(3, relaxAfterAttempts), 6, 2),
		floats: []float64{0.1, 0.1},
	}
	q := New(src, WithObserver(&stats)).Addition(2, DigitSingle, RuleSmallFriends)

	assert.Equal(t, []int{4, 3}, q.Rows)
	rows := stats.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, 2, rows[1].Attempts)
	assert.True(t, SmallFriendNeeded(4, 3))
}

func TestAddition_MixedDigitsChoosesRangePerDraw(t *testing.T) {
	src := &scriptedSource{
		ints:   []int{8, 40},
		floats: []float64{0.9, 0.2, 0.1},
	}
	q := New(src).Addition(2, DigitMixed, RuleStandard)

	// Row 0: 0.9 picks single (9). Row 1: 0.2 picks double (50), 0.1 keeps it positive.
	assert.Equal(t, []int{9, 50}, q.Rows)
	assert.Equal(t, 59, q.Answer)
}

func TestAddition_ZeroRows(t *testing.T) {
	q := New(NewSource(1)).Addition(0, DigitSingle, RuleStandard)
	assert.Empty(t, q.Rows)
	assert.Equal(t, 0, q.Answer)
}

func TestAddition_SingleStandardScenario(t *testing.T) {
	cfg := GenerationConfig{
		Category:  CategoryAddition,
		Rule:      RuleStandard,
		RowCount:  5,
		DigitType: DigitSingle,
	}
	for seed := uint64(0); seed < 200; seed++ {
		q := New(NewSource(seed)).Addition(5, DigitSingle, RuleStandard)
		require.Len(t, q.Rows, 5)

		total := 0
		for _, r := range q.Rows {
			assert.NotZero(t, r)
			assert.GreaterOrEqual(t, r, -9)
			assert.LessOrEqual(t, r, 9)
			total += r
			assert.GreaterOrEqual(t, total, MinTotal)
			assert.LessOrEqual(t, total, MaxTotal)
		}
		assert.Equal(t, total, q.Answer)
		assert.Nil(t, Check(&q, cfg), "seed %d", seed)
	}
}

func TestAddition_PropertiesAcrossRulesAndDigits(t *testing.T) {
	for _, rule := range Rules {
		for _, digits := range DigitTypes {
			for _, rowCount := range []int{1, 3, 10, MaxRowCount} {
				cfg := GenerationConfig{
					Category:  CategoryAddition,
					Rule:      rule,
					RowCount:  rowCount,
					DigitType: digits,
					Count:     25,
				}
				qs := New(NewSource(uint64(rowCount)*31 + 7)).QuizSet(cfg)
				require.Len(t, qs, 25)

				failures := CheckSet(qs, cfg)
				for i, err := range failures {
					t.Errorf("%s/%s/%d rows: question %d %v: %v", rule, digits, rowCount, i, qs[i].Rows, err)
				}
				for _, q := range qs {
					assert.GreaterOrEqual(t, q.Rows[0], 0)
				}
			}
		}
	}
}

func TestAddition_MixedFriendsOnesDigits(t *testing.T) {
	var stats Stats
	gen := New(NewSource(11), WithObserver(&stats))
	for range 100 {
		gen.Addition(8, DigitMixed, RuleMixedFriends)
	}
	for _, e := range stats.Rows() {
		if e.Forced {
			continue
		}
		assert.GreaterOrEqual(t, abs(e.Value)%10, 6, "row %+v", e)
	}
}

func TestAddition_SmallFriendsOnesDigits(t *testing.T) {
	var stats Stats
	gen := New(NewSource(12), WithObserver(&stats))
	for range 100 {
		gen.Addition(8, DigitDouble, RuleSmallFriends)
	}
	for _, e := range stats.Rows() {
		ones := abs(e.Value) % 10
		assert.True(t, ones >= 1 && ones <= 4, "row %+v", e)
	}
}

func TestAddition_BigFriendsCoverage(t *testing.T) {
	var stats Stats
	gen := New(NewSource(2024), WithObserver(&stats))
	for range 200 {
		gen.Addition(10, DigitSingle, RuleBigFriends)
	}

	var eligible, crossing int
	for _, e := range stats.Rows() {
		if e.Forced {
			continue
		}
		eligible++
		if BigFriendNeeded(e.Before, e.Value) {
			crossing++
		}
	}
	require.NotZero(t, eligible)
	ratio := float64(crossing) / float64(eligible)
	assert.GreaterOrEqual(t, ratio, 0.7, "only %.2f of rows cross a tens boundary", ratio)
}
