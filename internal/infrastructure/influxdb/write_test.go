package influxdb

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/nerrad567/qpudev-core/internal/infrastructure/config"
)

func TestGateTimePoint(t *testing.T) {
	at := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

	got := write.PointToLineProtocol(gateTimePoint("ibmq_belem", "CNOT", "0,1", 300, at), time.Second)

	// Tags are sorted by key; the comma in the qubits tag is escaped.
	want := `gate_time,device=ibmq_belem,gate=CNOT,qubits=0\,1 value=300 1792152000`
	if strings.TrimSpace(got) != want {
		t.Errorf("line protocol = %q, want %q", got, want)
	}
}

func TestDecoherencePoint(t *testing.T) {
	at := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

	got := write.PointToLineProtocol(decoherencePoint("ibm_perth", 6, "raw[1][1]", 0.25, at), time.Second)

	want := `decoherence_rate,component=raw[1][1],device=ibm_perth,qubit=6 value=0.25 1792152000`
	if strings.TrimSpace(got) != want {
		t.Errorf("line protocol = %q, want %q", got, want)
	}
}

func TestWriteOptions(t *testing.T) {
	tests := []struct {
		name      string
		batch     int
		flush     int
		site      string
		wantBatch uint
		wantFlush uint
	}{
		{name: "configured", batch: 500, flush: 2, site: "lab-01", wantBatch: 500, wantFlush: 2000},
		{name: "defaults", batch: 0, flush: -1, wantBatch: 100, wantFlush: 10000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := writeOptions(config.InfluxDBConfig{BatchSize: tt.batch, FlushInterval: tt.flush}, tt.site)

			if got := opts.BatchSize(); got != tt.wantBatch {
				t.Errorf("BatchSize() = %d, want %d", got, tt.wantBatch)
			}
			if got := opts.FlushInterval(); got != tt.wantFlush {
				t.Errorf("FlushInterval() = %d, want %d", got, tt.wantFlush)
			}

			p := write.NewPoint("m", nil, map[string]interface{}{"value": 1.0}, time.Unix(0, 0))
			for k, v := range opts.WriteOptions().DefaultTags() {
				p.AddTag(k, v)
			}
			line := write.PointToLineProtocol(p, time.Second)
			if hasSite := strings.Contains(line, "site="+tt.site); tt.site != "" && !hasSite {
				t.Errorf("line protocol %q missing site tag", line)
			}
			if tt.site == "" && strings.Contains(line, "site=") {
				t.Errorf("line protocol %q has unexpected site tag", line)
			}
		})
	}
}

func TestDrainErrors_WrapsAndCounts(t *testing.T) {
	c := &Client{}
	var got []error
	c.SetOnError(func(err error) { got = append(got, err) })

	errs := make(chan error, 2)
	errs <- errors.New("bucket not found")
	errs <- errors.New("unauthorized")
	close(errs)
	c.drainErrors(errs)

	if len(got) != 2 {
		t.Fatalf("callback invoked %d times, want 2", len(got))
	}
	for _, err := range got {
		if !errors.Is(err, ErrWriteFailed) {
			t.Errorf("error %v does not wrap ErrWriteFailed", err)
		}
	}
	if c.Stats().Failed != 2 {
		t.Errorf("Failed = %d, want 2", c.Stats().Failed)
	}
}
