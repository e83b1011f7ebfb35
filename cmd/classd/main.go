// Command classd simulates a class-D amplifier and plots its signal chain.
//
// Usage:
//
//	classd [flags]
//
// The defaults reproduce the reference amplifier: a 1 kHz, 4 V tone
// chopped by an NE555 (R1=1k, R2=22k, C=470p) on a 12 V supply, simulated
// for 10 ms. The music and integrator traces are plotted.
//
// Examples:
//
//	classd -out classd.html
//	classd -show-ne -show-ao -tmax 2e-4 -out pwm.html
//	classd -csv trace.csv -wav speaker.wav -wav-series integr
//	classd -window flattop -out ""
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-classd/dsp/classd"
	"github.com/cwbudde/algo-classd/dsp/core"
	"github.com/cwbudde/algo-classd/dsp/window"
	"github.com/cwbudde/algo-classd/measure/thd"
	"github.com/cwbudde/algo-classd/render"
	timestats "github.com/cwbudde/algo-classd/stats/time"
)

const (
	chartTitle  = "Class-D amplifier"
	xLabel      = "t (s)"
	yLabel      = "U (V)"
	chartPoints = 10000
)

type options struct {
	circuit   classd.Circuit
	htmlPath  string
	csvPath   string
	wavPath   string
	wavSeries string
	window    window.Type
	quiet     bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opt, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	c := opt.circuit
	if _, err := core.Arange(0, c.MaxTime, c.Step); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	fmt.Fprintf(stderr, "simulating %g s at %g s steps\n", c.MaxTime, c.Step)
	tr := classd.Simulate(c)
	fmt.Fprintf(stderr, "%d samples\n", tr.Len())

	if !opt.quiet {
		if err := writeSummary(stdout, c, tr, opt.window); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	}

	if opt.htmlPath != "" {
		if err := writeHTML(opt.htmlPath, c, tr); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		fmt.Fprintf(stderr, "wrote %s\n", opt.htmlPath)
	}

	if opt.csvPath != "" {
		if err := writeCSV(opt.csvPath, tr); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		fmt.Fprintf(stderr, "wrote %s\n", opt.csvPath)
	}

	if opt.wavPath != "" {
		if err := writeWAV(opt.wavPath, opt.wavSeries, c, tr); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		fmt.Fprintf(stderr, "wrote %s\n", opt.wavPath)
	}

	return 0
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	def := classd.DefaultCircuit()
	opt := options{circuit: def}
	c := &opt.circuit

	var (
		tmax, step float64
		winName    string
	)

	fs := flag.NewFlagSet("classd", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.Float64Var(&tmax, "tmax", def.MaxTime, "simulated time in seconds")
	fs.Float64Var(&step, "step", def.Step, "time step in seconds")
	fs.Float64Var(&c.MusicFrequency, "freq", def.MusicFrequency, "music frequency in Hz")
	fs.Float64Var(&c.MusicAmplitude, "ampl", def.MusicAmplitude, "music amplitude in V (peak to peak)")
	fs.Float64Var(&c.R1, "r1", def.R1, "NE555 R1 in Ohms")
	fs.Float64Var(&c.R2, "r2", def.R2, "NE555 R2 in Ohms")
	fs.Float64Var(&c.C, "c", def.C, "NE555 timing capacitor in Farads")
	fs.Float64Var(&c.VCC, "vcc", def.VCC, "supply voltage in V")
	fs.BoolVar(&c.Display.Oscillator, "show-ne", def.Display.Oscillator, "plot the NE555 output")
	fs.BoolVar(&c.Display.Comparator, "show-ao", def.Display.Comparator, "plot the comparator (PWM) output")
	fs.BoolVar(&c.Display.Music, "show-music", def.Display.Music, "plot the music input")
	fs.BoolVar(&c.Display.Integrator, "show-integr", def.Display.Integrator, "plot the integrator output")
	fs.StringVar(&opt.htmlPath, "out", "classd.html", "HTML chart output path (empty to skip)")
	fs.StringVar(&opt.csvPath, "csv", "", "CSV output path for all traces")
	fs.StringVar(&opt.wavPath, "wav", "", "WAV output path")
	fs.StringVar(&opt.wavSeries, "wav-series", "integr", "trace written to -wav: ne, music, ao or integr")
	fs.StringVar(&winName, "window", "hann", "THD analysis window: rectangular, hann, hamming, blackman or flattop")
	fs.BoolVar(&opt.quiet, "quiet", false, "do not print the trace summary")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: classd [flags]\n\n")
		fmt.Fprintf(stderr, "Simulates a class-D amplifier signal chain and plots it.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opt, err
	}
	if fs.NArg() > 0 {
		return opt, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if _, ok := (classd.Trace{}).ByName(opt.wavSeries); !ok {
		return opt, fmt.Errorf("unknown -wav-series %q", opt.wavSeries)
	}
	if !(tmax > 0) {
		return opt, fmt.Errorf("-tmax must be positive: %v", tmax)
	}
	if !(step > 0) {
		return opt, fmt.Errorf("-step must be positive: %v", step)
	}

	wt, err := window.ParseType(winName)
	if err != nil {
		return opt, err
	}
	opt.window = wt

	tb := core.ApplyTimeBaseOptions(core.WithMaxTime(tmax), core.WithStep(step))
	c.MaxTime, c.Step = tb.MaxTime, tb.Step
	return opt, nil
}

func writeSummary(w io.Writer, c classd.Circuit, tr classd.Trace, wt window.Type) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Trace\tDC [V]\tMin [V]\tMax [V]\tRange [V]\tAC RMS [V]\tEdges\n")
	fmt.Fprintf(tw, "-----\t------\t-------\t-------\t---------\t----------\t-----\n")

	for _, name := range []string{"ne", "music", "ao", "integr"} {
		s, _ := tr.ByName(name)
		st := timestats.Calculate(s.Values)
		fmt.Fprintf(tw, "%s\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%d\n",
			s.Label, st.DC, st.Min, st.Max, st.Range, st.ACRMS, st.Transitions)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}

	osc := classd.NewOscillator(c.OscillatorConfig())
	fmt.Fprintf(w, "\ntau charge %.4g s, tau discharge %.4g s, switching %.4g Hz\n",
		osc.TauCharge(), osc.TauDischarge(),
		1/((osc.TauCharge()+osc.TauDischarge())*math.Ln2))
	fmt.Fprintf(w, "PWM duty cycle %.4f\n", timestats.DutyCycle(tr.Comparator, c.VCC))
	if periods := timestats.Periods(tr.Comparator, c.VCC); len(periods) > 0 {
		lo, hi := periods[0], periods[0]
		for _, d := range periods[1:] {
			lo, hi = min(lo, d), max(hi, d)
		}
		fmt.Fprintf(w, "PWM duty per period %.4f .. %.4f over %d periods (modulation depth %.4f)\n",
			lo, hi, len(periods), (hi-lo)/2)
	}

	for _, name := range []string{"music", "integr"} {
		s, _ := tr.ByName(name)
		res, err := thd.AnalyzeSignal(s.Values, thd.Config{
			SampleRate: c.TimeBase().SampleRate(),
			WindowType: wt,
		})
		if err != nil {
			fmt.Fprintf(w, "%s: no tone (%v)\n", s.Label, err)
			continue
		}
		fmt.Fprintf(w, "%s: f0 %.1f Hz, A0 %.4g V, THD %.2f dB (%s window)\n",
			s.Label, res.FundamentalFreq, res.FundamentalAmplitude, res.THD_dB, wt)
	}
	return nil
}

func writeHTML(path string, c classd.Circuit, tr classd.Trace) error {
	chart := render.Chart{
		Title:     chartTitle,
		XLabel:    xLabel,
		YLabel:    yLabel,
		MaxPoints: chartPoints,
	}
	if lo, hi, ok := c.YRange(); ok {
		chart.YRange = &[2]float64{lo, hi}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.HTML(f, chart, tr.T, tr.Series(c.Display)...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeCSV(path string, tr classd.Trace) error {
	all := classd.Display{Oscillator: true, Comparator: true, Music: true, Integrator: true}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.CSV(f, xLabel, tr.T, tr.Series(all)...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeWAV(path, name string, c classd.Circuit, tr classd.Trace) error {
	s, ok := tr.ByName(name)
	if !ok {
		return fmt.Errorf("unknown trace %q", name)
	}

	lo, hi := 0.0, c.VCC
	if name == "integr" {
		// The speaker node stays close to VCC/2; scale by its own extremes
		// unless the trace is flat.
		if st := timestats.Calculate(s.Values); st.Range > 0 {
			lo, hi = st.Min, st.Max
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.WAV(f, int(math.Round(c.TimeBase().SampleRate())), s, lo, hi); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
