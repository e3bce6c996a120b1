package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

type fakeStat struct{}

func (fakeStat) AcquiredConns() int32 { return 2 }
func (fakeStat) IdleConns() int32     { return 3 }
func (fakeStat) TotalConns() int32    { return 5 }

func TestRecordSearch(t *testing.T) {
	before := testutil.ToFloat64(Searches.WithLabelValues("delegation", "true"))
	RecordSearch("delegation", true)
	assert.Equal(t, before+1, testutil.ToFloat64(Searches.WithLabelValues("delegation", "true")))
}

func TestRecordNearby(t *testing.T) {
	before := testutil.ToFloat64(NearbyQueries.WithLabelValues("false"))
	RecordNearby(false)
	assert.Equal(t, before+1, testutil.ToFloat64(NearbyQueries.WithLabelValues("false")))
}

func TestSetDataset(t *testing.T) {
	SetDataset(24, 265)
	assert.Equal(t, 24.0, testutil.ToFloat64(DatasetGovernorates))
	assert.Equal(t, 265.0, testutil.ToFloat64(DatasetDelegations))
}

func TestUpdateDBPoolMetrics(t *testing.T) {
	UpdateDBPoolMetrics(fakeStat{})
	assert.Equal(t, 5.0, testutil.ToFloat64(DBPoolConnsOpen))
	assert.Equal(t, 2.0, testutil.ToFloat64(DBPoolConnsAcquired))
	assert.Equal(t, 3.0, testutil.ToFloat64(DBPoolConnsIdle))

	// Unknown values are ignored.
	UpdateDBPoolMetrics("nope")
	assert.Equal(t, 5.0, testutil.ToFloat64(DBPoolConnsOpen))
}
