package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFilter(t *testing.T) {
	assert.Nil(t, BuildFilter(nil, nil, nil))

	single := BuildFilter(nil, []string{"Credit", "Refund"}, nil)
	require.NotNil(t, single)
	assert.Equal(t, Filter{Kind: FilterExcludeRecordTypes, Values: []string{"Credit", "Refund"}}, *single)

	all := BuildFilter([]string{"eu-west-1"}, []string{"Tax"}, []string{"Usage"})
	require.NotNil(t, all)
	assert.Equal(t, FilterAnd, all.Kind)
	assert.Equal(t, []Filter{
		{Kind: FilterRegion, Values: []string{"eu-west-1"}},
		{Kind: FilterExcludeRecordTypes, Values: []string{"Tax"}},
		{Kind: FilterIncludeRecordTypes, Values: []string{"Usage"}},
	}, all.Clauses)

	// a ordem das cláusulas não depende da ordem dos argumentos presentes
	two := BuildFilter([]string{"us-east-1"}, nil, []string{"Usage"})
	assert.Equal(t, FilterRegion, two.Clauses[0].Kind)
	assert.Equal(t, FilterIncludeRecordTypes, two.Clauses[1].Kind)
}
