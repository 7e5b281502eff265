// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package metrics

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Counts(t *testing.T) {
	r := New()

	r.ObserveDivision("division_by_zero")
	r.ObserveDivision("division_by_zero")
	r.ObserveDivision("ok")
	r.ObserveRun()

	assert.Equal(t, 2.0, testutil.ToFloat64(r.divisions.WithLabelValues("division_by_zero")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.divisions.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.runs))
}

func TestRecorder_Independent(t *testing.T) {
	a, b := New(), New()
	a.ObserveRun()

	assert.Equal(t, 0.0, testutil.ToFloat64(b.runs), "recorders must not share counters")
}

func TestRecorder_WriteText(t *testing.T) {
	r := New()
	r.ObserveDivision("division_by_zero")
	r.ObserveRun()

	var buf bytes.Buffer
	require.NoError(t, r.WriteText(&buf))

	out := buf.String()
	assert.Contains(t, out, "# TYPE divdemo_divisions_total counter")
	assert.Contains(t, out, `divdemo_divisions_total{outcome="division_by_zero"} 1`)
	assert.Contains(t, out, "divdemo_runs_total 1")
}

func TestRecorder_Registry(t *testing.T) {
	r := New()
	r.ObserveRun()

	count, err := testutil.GatherAndCount(r.Registry(), "divdemo_runs_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
