// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/genres", "200"))
	RecordAPIRequest("GET", "/api/v1/genres", "200", 3*time.Millisecond)
	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/genres", "200"))

	if after-before != 1 {
		t.Errorf("api_requests_total delta = %v, want 1", after-before)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("active = %v, want %v", got, before+1)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("active = %v, want %v", got, before)
	}
}

func TestRecordRecommendation(t *testing.T) {
	c := RecommendRequests.WithLabelValues(StrategyPredict, OutcomeInvalid)
	before := testutil.ToFloat64(c)
	RecordRecommendation(StrategyPredict, OutcomeInvalid, time.Millisecond)
	if got := testutil.ToFloat64(c) - before; got != 1 {
		t.Errorf("recommend_requests_total delta = %v, want 1", got)
	}

	var m dto.Metric
	obs, err := RecommendDuration.GetMetricWithLabelValues(StrategyPredict)
	if err != nil {
		t.Fatalf("GetMetricWithLabelValues() error = %v", err)
	}
	if err := obs.(interface{ Write(*dto.Metric) error }).Write(&m); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if m.GetHistogram().GetSampleCount() == 0 {
		t.Error("recommend_duration_seconds has no samples")
	}
}

func TestRecordGenreCache(t *testing.T) {
	hits := testutil.ToFloat64(GenreCacheLookups.WithLabelValues("hit"))
	misses := testutil.ToFloat64(GenreCacheLookups.WithLabelValues("miss"))

	RecordGenreCache(true)
	RecordGenreCache(false)
	RecordGenreCache(false)

	if got := testutil.ToFloat64(GenreCacheLookups.WithLabelValues("hit")) - hits; got != 1 {
		t.Errorf("hit delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(GenreCacheLookups.WithLabelValues("miss")) - misses; got != 2 {
		t.Errorf("miss delta = %v, want 2", got)
	}
}

func TestRecordDataLoad(t *testing.T) {
	tests := []struct {
		name      string
		source    string
		err       error
		wantError float64
	}{
		{"success", "movies", nil, 0},
		{"failure", "similarity", errors.New("no such file"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(DataLoadErrors.WithLabelValues(tt.source))
			RecordDataLoad(tt.source, 10*time.Millisecond, tt.err)
			if got := testutil.ToFloat64(DataLoadErrors.WithLabelValues(tt.source)) - before; got != tt.wantError {
				t.Errorf("data_load_errors_total delta = %v, want %v", got, tt.wantError)
			}
		})
	}
}

func TestSetDataGauges(t *testing.T) {
	SetDataGauges(3883, 1000209, 110000)

	if got := testutil.ToFloat64(CatalogMovies); got != 3883 {
		t.Errorf("catalog_movies = %v, want 3883", got)
	}
	if got := testutil.ToFloat64(CatalogRatings); got != 1000209 {
		t.Errorf("catalog_ratings = %v, want 1000209", got)
	}
	if got := testutil.ToFloat64(SimilarityEntries); got != 110000 {
		t.Errorf("similarity_pruned_entries = %v, want 110000", got)
	}
}

func TestRecordSnapshot(t *testing.T) {
	before := testutil.ToFloat64(SnapshotLookups.WithLabelValues("hit"))
	RecordSnapshot("hit")
	if got := testutil.ToFloat64(SnapshotLookups.WithLabelValues("hit")) - before; got != 1 {
		t.Errorf("similarity_snapshot_total delta = %v, want 1", got)
	}
}
