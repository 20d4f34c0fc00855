package reviewRepo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestStatsPipelineGroupsByRating(t *testing.T) {
	p := statsPipeline("L1")
	require.Len(t, p, 2)

	assert.Equal(t, "$match", p[0][0].Key)
	assert.Equal(t, bson.D{{Key: "lawyerId", Value: "L1"}}, p[0][0].Value)

	assert.Equal(t, "$group", p[1][0].Key)
	group, ok := p[1][0].Value.(bson.D)
	require.True(t, ok)
	assert.Equal(t, "$rating", group.Map()["_id"])
}
