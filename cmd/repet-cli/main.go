// Command repet-cli runs one of the REPET family separation pipelines
// against a WAV file and writes the estimated repeating background
// (and, as its complement, the non-repeating foreground) back out as
// WAV files.
package main

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	flag "github.com/spf13/pflag"

	"github.com/go-repet/repet/pkg/repet"
	"github.com/go-repet/repet/pkg/repetlog"
	"github.com/go-repet/repet/pkg/repetmetrics"
	"github.com/go-repet/repet/pkg/repetutil"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	printBanner()

	var (
		algorithm   = flag.StringP("algorithm", "a", "original", "separation algorithm: original, extended, adaptive, sim, simonline")
		input       = flag.StringP("input", "i", "", "input WAV file (required)")
		outDir      = flag.StringP("out", "o", ".", "output directory for background/foreground WAV files")
		configPath  = flag.String("config", "", "optional YAML file overlaying default parameters")
		cutoff      = flag.Float64("cutoff-hz", 100, "high-pass cutoff frequency in Hz")
		periodLo    = flag.Float64("period-lo", 1, "minimum repeating period in seconds")
		periodHi    = flag.Float64("period-hi", 10, "maximum repeating period in seconds")
		segLen      = flag.Float64("segment-length", 10, "sliding segment length in seconds (extended/adaptive)")
		segStep     = flag.Float64("segment-step", 5, "sliding segment step in seconds (extended/adaptive)")
		filterOrder = flag.Int("filter-order", 5, "adaptive mask filter order")
		simThresh   = flag.Float64("similarity-threshold", 0, "minimum self-similarity score")
		simDistance = flag.Float64("similarity-distance", 1, "minimum separation between similar frames, seconds")
		simNumber   = flag.Int("similarity-number", 100, "maximum similar frames per column")
		bufferLen   = flag.Float64("buffer-length", 10, "sim-online ring buffer length in seconds")
		verbose     = flag.BoolP("verbose", "v", false, "enable debug logging")
		metricsAddr = flag.String("metrics-addr", "", "if set, serve Prometheus metrics on this address (e.g. :9090)")
	)
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "error: --input is required")
		flag.Usage()
		os.Exit(1)
	}

	fileCfg, err := loadFileConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: loading config: %v\n", err)
		os.Exit(1)
	}
	applyFileConfig(fileCfg, cutoff, periodLo, periodHi, segLen, segStep, filterOrder, simThresh, simDistance, simNumber, bufferLen)

	logger := repetlog.New()
	if *verbose {
		logger = repetlog.NewWithLevel(charmlog.DebugLevel)
	}

	var metrics repet.MetricsRecorder
	if *metricsAddr != "" {
		metrics = repetmetrics.New(prometheus.DefaultRegisterer)
		go serveMetrics(*metricsAddr, logger)
	}

	opts := []repet.Option{
		repet.WithCutoffFrequency(*cutoff),
		repet.WithPeriodRange(*periodLo, *periodHi),
		repet.WithSegment(*segLen, *segStep),
		repet.WithFilterOrder(*filterOrder),
		repet.WithSimilarity(*simThresh, *simDistance, *simNumber),
		repet.WithBufferLength(*bufferLen),
		repet.WithLogger(logger),
	}
	if metrics != nil {
		opts = append(opts, repet.WithMetrics(metrics))
	}
	if *verbose {
		logger.Debugf("verbose logging enabled")
	}

	signal, fs, err := readWAV(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: reading %s: %v\n", *input, err)
		os.Exit(1)
	}

	var background repet.Signal
	switch *algorithm {
	case "original":
		background, err = repet.Original(signal, fs, opts...)
	case "extended":
		background, err = repet.Extended(signal, fs, opts...)
	case "adaptive":
		background, err = repet.Adaptive(signal, fs, opts...)
	case "sim":
		background, err = repet.Sim(signal, fs, opts...)
	case "simonline":
		background, err = repet.SimOnline(signal, fs, opts...)
	default:
		fmt.Fprintf(os.Stderr, "error: unknown algorithm %q\n", *algorithm)
		os.Exit(1)
	}

	if err != nil {
		if errors.Is(err, repet.ErrDegenerateStructure) {
			fmt.Fprintln(os.Stderr, "warning: no repeating structure found, passing the mixture through unchanged")
			background = signal
		} else {
			fmt.Fprintf(os.Stderr, "error: separation failed: %v\n", err)
			os.Exit(1)
		}
	}

	foreground := subtract(signal, background)

	if err := repetutil.MakeDir(*outDir); err != nil {
		fmt.Fprintf(os.Stderr, "error: creating output directory: %v\n", err)
		os.Exit(1)
	}
	bgPath := *outDir + "/background.wav"
	fgPath := *outDir + "/foreground.wav"
	if err := writeWAV(bgPath, background, int(fs)); err != nil {
		fmt.Fprintf(os.Stderr, "error: writing %s: %v\n", bgPath, err)
		os.Exit(1)
	}
	if err := writeWAV(fgPath, foreground, int(fs)); err != nil {
		fmt.Fprintf(os.Stderr, "error: writing %s: %v\n", fgPath, err)
		os.Exit(1)
	}

	fmt.Printf("wrote %s and %s\n", bgPath, fgPath)
}

func applyFileConfig(cfg *fileConfig, cutoff, periodLo, periodHi, segLen, segStep *float64, filterOrder *int, simThresh, simDistance *float64, simNumber *int, bufferLen *float64) {
	if cfg == nil {
		return
	}
	if cfg.CutoffFrequency != nil {
		*cutoff = *cfg.CutoffFrequency
	}
	if len(cfg.PeriodRangeSeconds) == 2 {
		*periodLo, *periodHi = cfg.PeriodRangeSeconds[0], cfg.PeriodRangeSeconds[1]
	}
	if cfg.SegmentLengthSeconds != nil {
		*segLen = *cfg.SegmentLengthSeconds
	}
	if cfg.SegmentStepSeconds != nil {
		*segStep = *cfg.SegmentStepSeconds
	}
	if cfg.FilterOrder != nil {
		*filterOrder = *cfg.FilterOrder
	}
	if cfg.SimilarityThreshold != nil {
		*simThresh = *cfg.SimilarityThreshold
	}
	if cfg.SimilarityDistanceSeconds != nil {
		*simDistance = *cfg.SimilarityDistanceSeconds
	}
	if cfg.SimilarityNumber != nil {
		*simNumber = *cfg.SimilarityNumber
	}
	if cfg.BufferLengthSeconds != nil {
		*bufferLen = *cfg.BufferLengthSeconds
	}
}

func subtract(mixture, background repet.Signal) repet.Signal {
	n := mixture.NumSamples()
	c := mixture.NumChannels()
	out := make(repet.Signal, n)
	for i := 0; i < n; i++ {
		out[i] = make([]float64, c)
		for ch := 0; ch < c; ch++ {
			out[i][ch] = mixture[i][ch] - background[i][ch]
		}
	}
	return out
}

func readWAV(path string) (repet.Signal, float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, 0, fmt.Errorf("not a valid WAV file")
	}

	duration, err := decoder.Duration()
	if err != nil {
		return nil, 0, err
	}
	numChans := int(decoder.NumChans)
	totalSamples := int(duration.Seconds()*float64(decoder.SampleRate)) * numChans
	if totalSamples == 0 {
		return nil, 0, fmt.Errorf("empty WAV file")
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: numChans,
			SampleRate:  int(decoder.SampleRate),
		},
		Data:           make([]int, totalSamples),
		SourceBitDepth: int(decoder.BitDepth),
	}
	if _, err := decoder.PCMBuffer(buf); err != nil {
		return nil, 0, err
	}

	maxAmp := float64(int(1) << (uint(decoder.BitDepth) - 1))
	numSamples := len(buf.Data) / numChans
	signal := make(repet.Signal, numSamples)
	for i := 0; i < numSamples; i++ {
		signal[i] = make([]float64, numChans)
		for ch := 0; ch < numChans; ch++ {
			signal[i][ch] = float64(buf.Data[i*numChans+ch]) / maxAmp
		}
	}

	return signal, float64(decoder.SampleRate), nil
}

func writeWAV(path string, signal repet.Signal, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	numChans := signal.NumChannels()
	bitDepth := 16
	maxAmp := float64(int(1) << (uint(bitDepth) - 1))

	encoder := wav.NewEncoder(f, sampleRate, bitDepth, numChans, 1)

	data := make([]int, signal.NumSamples()*numChans)
	for i := 0; i < signal.NumSamples(); i++ {
		for ch := 0; ch < numChans; ch++ {
			v := signal[i][ch] * maxAmp
			v = math.Max(-maxAmp, math.Min(maxAmp-1, v))
			data[i*numChans+ch] = int(v)
		}
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{NumChannels: numChans, SampleRate: sampleRate},
		Data:   data,
	}
	if err := encoder.Write(buf); err != nil {
		return err
	}
	return encoder.Close()
}

func serveMetrics(addr string, logger *repetlog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	logger.Infof("serving Prometheus metrics on %s/metrics", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Errorf("metrics server stopped: %v", err)
	}
}

func printBanner() {
	fmt.Println("repet-cli: REPET-family periodic source separation")
}
