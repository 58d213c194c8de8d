package lox_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"addressbook/pkg/lox"
)

func TestMap(t *testing.T) {
	rq := require.New(t)

	rq.Equal([]string{"1", "2", "3"}, lox.Map([]int{1, 2, 3}, strconv.Itoa))
	rq.Empty(lox.Map([]int(nil), strconv.Itoa))
}

func TestMapErr(t *testing.T) {
	rq := require.New(t)

	result, err := lox.MapErr([]string{"1", "2"}, strconv.Atoi)
	rq.NoError(err)
	rq.Equal([]int{1, 2}, result)

	result, err = lox.MapErr([]string{"1", "x", "3"}, strconv.Atoi)
	rq.Nil(result)

	var numErr *strconv.NumError
	rq.True(errors.As(err, &numErr))
	rq.Equal("x", numErr.Num)
}
