package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/membench/membench/bench"
	"github.com/membench/membench/bench/sysinfo"
)

// resultsDoc is the on-disk schema. The measurement core only produces
// bench.Result; the shape of the JSON document is owned here.
type resultsDoc struct {
	Metadata resultsMetadata `json:"metadata"`
	Config   resultsConfig   `json:"config"`
	Stats    resultsStats    `json:"stats"`
}

type resultsMetadata struct {
	Timestamp string       `json:"timestamp"`
	Platform  sysinfo.Info `json:"platform"`
}

type resultsConfig struct {
	Kernel   string `json:"kernel"`
	Size     string `json:"size"`
	Threads  int    `json:"threads"`
	Iters    int    `json:"iters"`
	Warmup   int    `json:"warmup"`
	Seed     int64  `json:"seed"`
	Prefault bool   `json:"prefault"`
	Aligned  bool   `json:"aligned"`
	Out      string `json:"out"`
}

type resultsStats struct {
	Performance resultsPerformance `json:"performance"`
	Sweep       []sweepPoint       `json:"sweep,omitempty"`
}

type resultsPerformance struct {
	TotalTimeNs  int64   `json:"total_time_ns"`
	AvgNsPerOp   float64 `json:"avg_ns_per_op"`
	BandwidthGBs float64 `json:"bandwidth_gb_s"`
	GFLOPS       float64 `json:"gflops"`
}

type sweepPoint struct {
	Kernel       string  `json:"kernel"`
	Bytes        uint64  `json:"bytes"`
	MedianNs     float64 `json:"median_ns"`
	P95Ns        float64 `json:"p95_ns"`
	MinNs        float64 `json:"min_ns"`
	MaxNs        float64 `json:"max_ns"`
	StddevNs     float64 `json:"stddev_ns"`
	BandwidthGBs float64 `json:"bandwidth_gb_s"`
	NsPerAccess  float64 `json:"ns_per_access,omitempty"`
	Checksum     float64 `json:"checksum"`
}

// WriteResults serializes one run to cfg.Out as indented JSON.
func WriteResults(cfg bench.Config, res *bench.Result) error {
	doc := resultsDoc{
		Metadata: resultsMetadata{
			Timestamp: res.Info.Timestamp.Format("2006-01-02 15:04:05"),
			Platform:  sysinfo.Collect(),
		},
		Config: resultsConfig{
			Kernel:   cfg.Kernel,
			Size:     cfg.Size,
			Threads:  cfg.Threads,
			Iters:    cfg.Iters,
			Warmup:   cfg.Warmup,
			Seed:     cfg.Seed,
			Prefault: cfg.Prefault,
			Aligned:  cfg.Aligned,
			Out:      cfg.Out,
		},
		Stats: resultsStats{
			Performance: resultsPerformance{
				TotalTimeNs:  res.TotalNs,
				AvgNsPerOp:   res.AvgNs,
				BandwidthGBs: res.BandwidthGBs,
				GFLOPS:       res.GFLOPS,
			},
		},
	}

	for _, pt := range res.SweepPoints {
		doc.Stats.Sweep = append(doc.Stats.Sweep, sweepPoint{
			Kernel:       pt.Kernel,
			Bytes:        pt.Bytes,
			MedianNs:     pt.MedianNs,
			P95Ns:        pt.P95Ns,
			MinNs:        pt.MinNs,
			MaxNs:        pt.MaxNs,
			StddevNs:     pt.StddevNs,
			BandwidthGBs: pt.BandwidthGBs,
			NsPerAccess:  pt.NsPerAccess,
			Checksum:     pt.Checksum,
		})
	}

	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("marshaling results: %w", err)
	}
	if err := os.WriteFile(cfg.Out, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", cfg.Out, err)
	}

	logrus.Infof("Results written to %s", cfg.Out)
	return nil
}
