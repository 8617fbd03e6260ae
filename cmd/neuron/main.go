// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/katalvlaran/neuron/activation"
	"github.com/katalvlaran/neuron/canvas"
	"github.com/katalvlaran/neuron/dataset"
	"github.com/katalvlaran/neuron/network"
	"github.com/katalvlaran/neuron/server"
	"github.com/katalvlaran/neuron/trainer"
)

const usage = `usage: neuron <command> [flags]

commands:
  train     train a network on a labelled dataset
  eval      report accuracy and the confusion matrix
  predict   classify one input vector
  serve     expose the network over HTTP and websocket
`

// Default geometry: a 28×28 drawing surface, one hidden layer, ten digits.
const defaultLayers = "784,256,10"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "neuron:", err)
		os.Exit(1)
	}
}

// run dispatches a subcommand. Split from main so tests can drive it.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return errors.New("missing command")
	}
	switch args[0] {
	case "train":
		return runTrain(ctx, args[1:], stdout, stderr)
	case "eval":
		return runEval(args[1:], stdout, stderr)
	case "predict":
		return runPredict(args[1:], stdout, stderr)
	case "serve":
		return runServe(ctx, args[1:], stderr)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return nil
	default:
		fmt.Fprint(stderr, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

// modelFlags are shared by every subcommand.
type modelFlags struct {
	layers     string
	activation string
	weights    string
	seed       int64
	verbose    bool
}

func (m *modelFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&m.layers, "layers", defaultLayers, "comma-separated layer sizes, input first")
	fs.StringVar(&m.activation, "activation", activation.NameSigmoid, "activation: sigmoid or modrelu")
	fs.StringVar(&m.weights, "weights", "", "weights file")
	fs.Int64Var(&m.seed, "seed", network.DefaultSeed, "seed for weight init and shuffling")
	fs.BoolVar(&m.verbose, "v", false, "debug logging")
}

func (m *modelFlags) logger(w io.Writer) *slog.Logger {
	lvl := slog.LevelInfo
	if m.verbose {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// network builds a fresh network from -layers, then replaces it with the
// weights file when one exists. With mustExist a missing file is an error.
func (m *modelFlags) network(log *slog.Logger, mustExist bool) (*network.Network, error) {
	act, err := activation.ByName(m.activation)
	if err != nil {
		return nil, err
	}
	sizes, err := parseInts(m.layers)
	if err != nil {
		return nil, fmt.Errorf("-layers: %w", err)
	}
	net, err := network.New(sizes, act, network.WithSeed(m.seed))
	if err != nil {
		return nil, err
	}
	if m.weights == "" {
		if mustExist {
			return nil, errors.New("-weights is required")
		}
		return net, nil
	}

	err = net.LoadFile(m.weights)
	switch {
	case err == nil:
		log.Info("weights loaded", "path", m.weights, "sizes", net.Sizes())
	case errors.Is(err, os.ErrNotExist) && !mustExist:
		log.Info("no weights file, starting fresh", "path", m.weights, "sizes", net.Sizes())
	default:
		return nil, err
	}

	return net, nil
}

// dataFlags locate a dataset.
type dataFlags struct {
	data   string
	labels string
	format string
}

func (d *dataFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&d.data, "data", "", "dataset file (text, csv, or IDX images)")
	fs.StringVar(&d.labels, "labels", "", "IDX labels file, paired with -data")
	fs.StringVar(&d.format, "format", "", "text, csv or idx (default: from file name)")
}

func (d *dataFlags) load(inputSize int) ([]dataset.Sample, error) {
	if d.data == "" {
		return nil, errors.New("-data is required")
	}
	format := d.format
	if format == "" {
		switch {
		case d.labels != "":
			format = "idx"
		case strings.EqualFold(filepath.Ext(d.data), ".csv"):
			format = "csv"
		default:
			format = "text"
		}
	}

	if format == "idx" {
		if d.labels == "" {
			return nil, errors.New("-labels is required for idx data")
		}
		return dataset.LoadIDX(d.data, d.labels)
	}

	f, err := os.Open(d.data)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch format {
	case "csv":
		return dataset.ReadCSV(f)
	case "text":
		return dataset.ReadText(f, inputSize)
	default:
		return nil, fmt.Errorf("unknown -format %q", format)
	}
}

func runTrain(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		m       modelFlags
		d       dataFlags
		epochs  = fs.Int("epochs", trainer.DefaultMaxEpochs, "maximum epochs")
		target  = fs.Float64("target", trainer.DefaultTargetAccuracy, "stop once an epoch reaches this accuracy")
		rate    = fs.Float64("rate", trainer.DefaultBaseRate, "base learning rate")
		decay   = fs.Bool("decay", true, "decay the rate as rate*exp(-epoch/epochs)")
		size    = fs.Int("epoch-size", 0, "samples per epoch (0: one pass)")
		all     = fs.Bool("all", false, "back-propagate every sample, not only mistakes")
		holdout = fs.Float64("holdout", 0, "fraction of samples kept back for evaluation")
	)
	m.register(fs)
	d.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	switch {
	case *epochs <= 0:
		return fmt.Errorf("-epochs %d must be positive", *epochs)
	case !(*target > 0 && *target <= 1):
		return fmt.Errorf("-target %g outside (0,1]", *target)
	case *size < 0:
		return fmt.Errorf("-epoch-size %d is negative", *size)
	}
	log := m.logger(stderr)

	net, err := m.network(log, false)
	if err != nil {
		return err
	}
	samples, err := d.load(net.Sizes()[0])
	if err != nil {
		return err
	}
	rng := rand.New(rand.NewSource(m.seed))
	dataset.Shuffle(samples, rng)

	var test []dataset.Sample
	if *holdout > 0 {
		test, samples, err = dataset.Split(samples, *holdout)
		if err != nil {
			return err
		}
	}

	schedule := trainer.Constant(*rate)
	if *decay {
		schedule = trainer.ExpDecay(*rate, *epochs)
	}
	rep, runErr := trainer.Run(ctx, net, samples,
		trainer.WithMaxEpochs(*epochs),
		trainer.WithTargetAccuracy(*target),
		trainer.WithEpochSize(*size),
		trainer.WithSchedule(schedule),
		trainer.WithMistakesOnly(!*all),
		trainer.WithShuffle(rng),
		trainer.WithLogger(log),
	)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}

	if m.weights != "" {
		if err = net.SaveFile(m.weights); err != nil {
			return err
		}
		log.Info("weights saved", "path", m.weights)
	}
	fmt.Fprintf(stdout, "epochs=%d accuracy=%.4f best=%.4f converged=%t steps=%d\n",
		rep.Epochs, rep.Accuracy, rep.BestAccuracy, rep.Converged, rep.Steps)

	if len(test) > 0 {
		acc, err := trainer.Evaluate(net, test)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "holdout=%d accuracy=%.4f\n", len(test), acc)
	}
	if runErr != nil {
		log.Warn("training interrupted", "epochs", rep.Epochs)
	}

	return nil
}

func runEval(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("eval", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		m         modelFlags
		d         dataFlags
		confusion = fs.Bool("confusion", false, "print the confusion matrix (rows: label, cols: prediction)")
	)
	m.register(fs)
	d.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	net, err := m.network(m.logger(stderr), true)
	if err != nil {
		return err
	}
	samples, err := d.load(net.Sizes()[0])
	if err != nil {
		return err
	}
	acc, err := trainer.Evaluate(net, samples)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "samples=%d accuracy=%.4f\n", len(samples), acc)

	if *confusion {
		sizes := net.Sizes()
		cm, err := trainer.Confusion(net, samples, sizes[len(sizes)-1])
		if err != nil {
			return err
		}
		fmt.Fprint(stdout, cm)
	}

	return nil
}

func runPredict(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("predict", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		m     modelFlags
		input = fs.String("input", "", "comma-separated input vector")
		draw  = fs.Bool("draw", false, "render the input as a square canvas")
	)
	m.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	net, err := m.network(m.logger(stderr), true)
	if err != nil {
		return err
	}
	vec, err := parseFloats(*input)
	if err != nil {
		return fmt.Errorf("-input: %w", err)
	}
	if *draw {
		if side := isqrt(len(vec)); side*side == len(vec) {
			c, err := canvas.FromVector(side, side, vec, canvas.DefaultOptions())
			if err != nil {
				return err
			}
			fmt.Fprint(stdout, c)
		}
	}

	class, out, err := net.Classify(vec)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "class=%d output=%s\n", class, formatFloats(out))

	return nil
}

func runServe(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		m    modelFlags
		addr = fs.String("addr", ":8080", "listen address")
		side = fs.Int("canvas", server.DefaultCanvasRows, "canvas side in cells")
		conn = fs.Int("conn", 4, "canvas falloff connectivity: 4 or 8")
	)
	m.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *side <= 0 {
		return fmt.Errorf("-canvas %d must be positive", *side)
	}
	if *conn != 4 && *conn != 8 {
		return fmt.Errorf("-conn %d must be 4 or 8", *conn)
	}
	log := m.logger(stderr)

	net, err := m.network(log, false)
	if err != nil {
		return err
	}
	opts := canvas.DefaultOptions()
	if *conn == 8 {
		opts.Conn = canvas.Conn8
	}
	srv, err := server.New(net,
		server.WithLogger(log),
		server.WithWeightsPath(m.weights),
		server.WithCanvas(*side, *side, opts),
	)
	if err != nil {
		return err
	}

	return srv.Run(ctx, *addr)
}

func parseInts(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func parseFloats(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errors.New("empty vector")
	}
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func formatFloats(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatFloat(x, 'f', 4, 64)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func isqrt(n int) int {
	r := 0
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}
