package grouping_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"go.ytsaurus.tech/library/go/grouping"
)

// region Test cases

var (
	valString       = []string{"a", "bb", "a", "ccc"}
	keyGetterString = grouping.Identity[string]
	expectedString  = map[string][]string{
		"a":   {"a", "a"},
		"bb":  {"bb"},
		"ccc": {"ccc"},
	}
)

var (
	valInt       = []int{1, 2, 3, 4, 5, 6}
	keyGetterInt = func(t int) int { return t % 2 }
	expectedInt  = map[int][]int{
		0: {2, 4, 6},
		1: {1, 3, 5},
	}
	expectedIntSum = map[int]int{
		0: 12,
		1: 9,
	}
)

var (
	valBool       = []bool{true, true, false, false, true}
	keyGetterBool = grouping.Identity[bool]
	expectedBool  = map[bool][]bool{
		true:  {true, true, true},
		false: {false, false},
	}
)

type testStruct struct {
	Key   string
	Value int
}

var (
	valStruct = []testStruct{
		{Key: "a", Value: 4},
		{Key: "b", Value: 1},
		{Key: "a", Value: 3},
		{Key: "a", Value: 2},
	}
	keyGetterStruct = func(t testStruct) string { return t.Key }
	expectedStruct  = map[string][]testStruct{
		"a": {
			{Key: "a", Value: 4},
			{Key: "a", Value: 3},
			{Key: "a", Value: 2},
		},
		"b": {
			{Key: "b", Value: 1},
		},
	}
	expectedStructSum = map[string]int{
		"a": 9,
		"b": 1,
	}
)

// endregion Test cases

// region GroupBy

func TestGroupByEmpty(t *testing.T) {
	assert.Equal(t, map[string][]string{}, grouping.GroupBy([]string{}, keyGetterString))
}

func TestGroupByString(t *testing.T) {
	assert.Equal(t, expectedString, grouping.GroupBy(valString, keyGetterString))
}

func TestGroupByInt(t *testing.T) {
	assert.Equal(t, expectedInt, grouping.GroupBy(valInt, keyGetterInt))
}

func TestGroupByBool(t *testing.T) {
	assert.Equal(t, expectedBool, grouping.GroupBy(valBool, keyGetterBool))
}

func TestGroupByStruct(t *testing.T) {
	assert.Equal(t, expectedStruct, grouping.GroupBy(valStruct, keyGetterStruct))
}

// endregion GroupBy

// region GroupByReduce

func TestGroupByReduceEmpty(t *testing.T) {
	assert.Equal(t, map[int]int{}, grouping.GroupByReduce(nil, keyGetterInt, grouping.Sum[int]()))
}

func TestGroupByReduceSum(t *testing.T) {
	assert.Equal(t, expectedIntSum, grouping.GroupByReduce(valInt, keyGetterInt, grouping.Sum[int]()))
}

func TestGroupByReduceSumTransform(t *testing.T) {
	coll := grouping.SumTransform(func(s testStruct) int { return s.Value })
	assert.Equal(t, expectedStructSum, grouping.GroupByReduce(valStruct, keyGetterStruct, coll))
}

func TestGroupByReduceConcatOrder(t *testing.T) {
	concat := grouping.Collector[int, string]{
		Start:  func() string { return "" },
		Reduce: func(acc string, item int) string { return acc + strconv.Itoa(item) },
	}
	even := func(int) string { return "all" }

	assert.Equal(t, map[string]string{"all": "123"}, grouping.GroupByReduce([]int{1, 2, 3}, even, concat))
	assert.Equal(t, map[string]string{"all": "312"}, grouping.GroupByReduce([]int{3, 1, 2}, even, concat))

	// Replaying the same input always folds to the same result.
	assert.Equal(t,
		grouping.GroupByReduce([]int{3, 1, 2}, even, concat),
		grouping.GroupByReduce([]int{3, 1, 2}, even, concat))
}

// endregion GroupByReduce

// region Reusable

func TestReusableIndependentDatasets(t *testing.T) {
	byKey := grouping.Reusable(keyGetterStruct)

	assert.Equal(t, grouping.GroupBy(valStruct, keyGetterStruct), byKey(valStruct))
	assert.Equal(t, grouping.GroupBy(valStruct[:2], keyGetterStruct), byKey(valStruct[:2]))

	// No state leaks between calls: same input, same output.
	assert.Equal(t, byKey(valStruct), byKey(valStruct))
}

func TestReusableReduce(t *testing.T) {
	sums := grouping.ReusableReduce(keyGetterInt, grouping.Sum[int]())

	assert.Equal(t, expectedIntSum, sums(valInt))
	assert.Equal(t, map[int]int{1: 1}, sums([]int{1}))
	assert.Equal(t, expectedIntSum, sums(valInt))
}

// endregion Reusable
