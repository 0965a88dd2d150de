// Copyright (c) 2026 Cinedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slice

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3"}, Map([]int{1, 2, 3}, strconv.Itoa))
	assert.Nil(t, Map[int, string](nil, strconv.Itoa))
	assert.Equal(t, []string{}, Map([]int{}, strconv.Itoa))
}
