package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/oocgraph/gmodel"
	"github.com/katalvlaran/oocgraph/tfp"
)

var swapFlags struct {
	input        string
	batch        string
	output       string
	results      string
	subBatchSize int
}

var swapCmd = &cobra.Command{
	Use:   "swap",
	Short: "Apply a batch of edge swaps to a wire-format edge list via time-forward processing",
	Long: `swap reads an edge list and a YAML swap batch, decides every swap request
in increasing swap-id order, and writes the updated edge list back in wire
format. Pass --results to additionally dump one debug record per swap.

Swap batch file format:

  swaps:
    - eid0: 0
      eid1: 1
      dir: false

Example:
  oocgraph swap --input edges.bin --batch swaps.yaml --output edges.out.bin`,
	RunE: runSwap,
}

func init() {
	f := swapCmd.Flags()
	f.StringVar(&swapFlags.input, "input", "", "wire-format input edge list (required)")
	f.StringVar(&swapFlags.batch, "batch", "", "YAML swap batch file (required)")
	f.StringVar(&swapFlags.output, "output", "", "wire-format output edge list (required)")
	f.StringVar(&swapFlags.results, "results", "", "optional YAML path to dump per-swap SwapResult records")
	f.IntVar(&swapFlags.subBatchSize, "sub-batch-size", 0, "swaps decided per round before re-folding into the input; 0 means the whole batch")
	_ = swapCmd.MarkFlagRequired("input")
	_ = swapCmd.MarkFlagRequired("batch")
	_ = swapCmd.MarkFlagRequired("output")
}

// swapFile is the on-disk YAML shape of a swap batch: one descriptor per
// swap, applied in file order as increasing swap ids.
type swapFile struct {
	Swaps []struct {
		Eid0 uint64 `yaml:"eid0"`
		Eid1 uint64 `yaml:"eid1"`
		Dir  bool   `yaml:"dir"`
	} `yaml:"swaps"`
}

func runSwap(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	logger.Debug("invocation", zap.Strings("flags", explicitFlags(cmd)))

	edges, err := readEdgeList(swapFlags.input)
	if err != nil {
		return fmt.Errorf("oocgraph swap: %w", err)
	}

	batch, err := readSwapBatch(swapFlags.batch)
	if err != nil {
		return fmt.Errorf("oocgraph swap: %w", err)
	}
	logger.Info("loaded swap batch", zap.Int("edges", len(edges)), zap.Int("swaps", len(batch)))

	opts := []tfp.Option{tfp.WithLogger(logger)}
	if swapFlags.subBatchSize > 0 {
		opts = append(opts, tfp.WithSubBatchSize(swapFlags.subBatchSize))
	}
	if mb := memoryBudget(); mb > 0 {
		opts = append(opts, tfp.WithMemoryBudget(mb))
	}

	result, err := tfp.Run(edges, batch, opts...)
	if err != nil {
		return fmt.Errorf("oocgraph swap: %w", err)
	}
	logger.Info("swap batch decided",
		zap.Int("sub_batches", result.Stats.SubBatches),
		zap.Int("edges_touched", result.Stats.EdgesTouched),
		zap.Int("messages_forwarded", result.Stats.MessagesForwarded))

	if err := writeEdgeList(swapFlags.output, result.Edges); err != nil {
		return fmt.Errorf("oocgraph swap: %w", err)
	}

	if swapFlags.results != "" {
		if err := writeResults(swapFlags.results, result.Results); err != nil {
			return fmt.Errorf("oocgraph swap: %w", err)
		}
	}
	return nil
}

func readEdgeList(path string) ([]gmodel.Edge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", abs(path), err)
	}
	defer f.Close()

	r := gmodel.NewEdgeReader(f)
	var edges []gmodel.Edge
	for {
		e, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", abs(path), err)
		}
		edges = append(edges, e)
	}
	return edges, nil
}

func writeEdgeList(path string, edges []gmodel.Edge) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", abs(path), err)
	}
	defer f.Close()

	w := gmodel.NewEdgeWriter(f)
	for _, e := range edges {
		if err := w.Write(e); err != nil {
			return fmt.Errorf("writing %s: %w", abs(path), err)
		}
	}
	return w.Flush()
}

func readSwapBatch(path string) ([]gmodel.SwapDescriptor, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", abs(path), err)
	}
	var sf swapFile
	if err := yaml.Unmarshal(raw, &sf); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", abs(path), err)
	}
	batch := make([]gmodel.SwapDescriptor, len(sf.Swaps))
	for i, s := range sf.Swaps {
		if s.Eid0 == s.Eid1 {
			return nil, fmt.Errorf("%s: swap %d names the same edge twice (%d)", abs(path), i, s.Eid0)
		}
		batch[i] = gmodel.NewSwapDescriptor(gmodel.EdgeID(s.Eid0), gmodel.EdgeID(s.Eid1), s.Dir)
	}
	return batch, nil
}

// resultRecord is the YAML-serializable projection of gmodel.SwapResult.
type resultRecord struct {
	Performed bool         `yaml:"performed"`
	Loop      bool         `yaml:"loop"`
	Edges     [2][2]uint64 `yaml:"edges"`
	Conflict  [2]bool      `yaml:"conflict"`
}

func writeResults(path string, results []gmodel.SwapResult) error {
	recs := make([]resultRecord, len(results))
	for i, r := range results {
		recs[i] = resultRecord{
			Performed: r.Performed,
			Loop:      r.Loop,
			Edges: [2][2]uint64{
				{uint64(r.Edges[0].U), uint64(r.Edges[0].V)},
				{uint64(r.Edges[1].U), uint64(r.Edges[1].V)},
			},
			Conflict: r.ConflictDetected,
		}
	}
	out, err := yaml.Marshal(struct {
		Results []resultRecord `yaml:"results"`
	}{recs})
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	return os.WriteFile(path, out, 0o644)
}
