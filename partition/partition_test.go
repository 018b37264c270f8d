package partition_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/poligras/internal/obsrand"
	"github.com/katalvlaran/poligras/partition"
)

func TestPartitionCoversEveryMemberExactlyOnce(t *testing.T) {
	order := []string{"1", "2", "3", "4", "5", "6"}
	neighbors := map[string][]string{
		"1": {"2"}, "2": {"1", "3"}, "3": {"2"},
		"4": {"5"}, "5": {"4", "6"}, "6": {"5"},
	}
	orig := partition.NewOriginalGraph(order, neighbors)
	p := partition.New(orig, obsrand.New(7))

	members := map[string][]string{
		"1": {"1"}, "2": {"2"}, "3": {"3"},
		"4": {"4"}, "5": {"5"}, "6": {"6"},
	}
	buckets, err := p.Partition(members, 2)
	require.NoError(t, err)
	require.Equal(t, 3, len(buckets))

	seen := make(map[string]bool)
	for _, b := range buckets {
		for _, root := range b {
			require.False(t, seen[root], "root %q assigned to more than one bucket", root)
			seen[root] = true
		}
	}
	require.Equal(t, len(members), len(seen))
}

func TestPartitionTooFewSupernodesYieldsNoBuckets(t *testing.T) {
	orig := partition.NewOriginalGraph([]string{"1", "2"}, map[string][]string{"1": {"2"}, "2": {"1"}})
	p := partition.New(orig, obsrand.New(1))

	buckets, err := p.Partition(map[string][]string{"1": {"1"}, "2": {"2"}}, 5)
	require.NoError(t, err)
	require.Nil(t, buckets)
}

func TestPartitionRejectsNonPositiveGroupSize(t *testing.T) {
	orig := partition.NewOriginalGraph([]string{"1"}, map[string][]string{"1": nil})
	p := partition.New(orig, obsrand.New(1))
	_, err := p.Partition(map[string][]string{"1": {"1"}}, 0)
	require.ErrorIs(t, err, partition.ErrGroupSizeNotPositive)
}
