package utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	assert.Equal(t, []string{"1", "2"}, Map([]int{1, 2}, strconv.Itoa))
	assert.Equal(t, []string{}, Map([]int{}, strconv.Itoa))
}

func TestFilter(t *testing.T) {
	even := func(i int) bool { return i%2 == 0 }
	assert.Equal(t, []int{2, 4}, Filter([]int{1, 2, 3, 4}, even))
	assert.Equal(t, []int{}, Filter(nil, even))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{"admin", "reviewer"}, "reviewer"))
	assert.False(t, Contains([]string{"admin"}, "student"))
}

func TestUniques(t *testing.T) {
	assert.Equal(t, []int{8, 7, 9}, Uniques([]int{8, 7, 8, 9, 7}))
	assert.Empty(t, Uniques([]int(nil)))
}
