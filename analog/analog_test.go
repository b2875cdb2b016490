package analog_test

import (
	"bytes"
	"context"
	"encoding/csv"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/db47h/nandsim/analog"
)

// at returns the index of time t in a waveform sampled every step.
func at(t float64) int { return int(t/analog.DefaultStep + 0.5) }

var _ = Describe("Pulse", func() {
	p := analog.Pulse{Initial: 0, Pulsed: 5, Delay: 2, Rise: 1, Fall: 2, Width: 3, Period: 10}

	DescribeTable("follows SPICE PULSE semantics",
		func(t, v float64) {
			Expect(p.V(t)).To(BeNumerically("~", v, 1e-9))
		},
		Entry("before delay", 1.0, 0.0),
		Entry("mid rise", 2.5, 2.5),
		Entry("high", 4.0, 5.0),
		Entry("mid fall", 7.0, 2.5),
		Entry("low", 9.0, 0.0),
		Entry("next period high", 14.5, 5.0),
	)

	It("is constant for DC", func() {
		Expect(analog.DC(3.3).V(42)).To(Equal(3.3))
	})
})

var _ = Describe("MOSFET", func() {
	It("is off below threshold", func() {
		Expect(analog.DefaultNMOS.G(0.5, 0)).To(BeZero())
		Expect(analog.DefaultPMOS.G(4.5, 5)).To(BeZero())
	})

	It("conducts with gate overdrive", func() {
		Expect(analog.DefaultNMOS.G(5, 0)).To(BeNumerically(">", 1e-3))
		Expect(analog.DefaultPMOS.G(0, 5)).To(BeNumerically("~", analog.DefaultNMOS.G(5, 0), 1e-12))
	})
})

var _ = Describe("Transient", func() {
	var (
		ctx context.Context
		o   analog.Options
	)

	BeforeEach(func() {
		ctx = context.Background()
		o = analog.DefaultOptions()
	})

	It("inverts a DC input", func() {
		inv := analog.NewInverter()
		w, err := analog.Transient(ctx, inv, []analog.Source{analog.DC(0)}, o)
		Expect(err).NotTo(HaveOccurred())
		Expect(w.Len()).To(Equal(501))
		Expect(w.Final()).To(BeNumerically("~", o.Vdd, 1e-6))

		w, err = analog.Transient(ctx, inv, []analog.Source{analog.DC(o.Vdd)}, o)
		Expect(err).NotTo(HaveOccurred())
		Expect(w.Final()).To(BeNumerically("~", 0, 1e-6))
	})

	It("follows pulse inputs on a NAND2", func() {
		w, err := analog.Transient(ctx, analog.NewNand2(), analog.NandPulses(o.Vdd, 5e-9, 10e-9), o)
		Expect(err).NotTo(HaveOccurred())
		vdd := w.Vdd
		// a=1 b=1
		Expect(analog.Logic(w.Out[at(4e-9)], vdd)).To(BeFalse())
		// a=0 b=1
		Expect(analog.Logic(w.Out[at(9e-9)], vdd)).To(BeTrue())
		// a=1 b=0
		Expect(analog.Logic(w.Out[at(15e-9)], vdd)).To(BeTrue())
		// a=0 b=0
		Expect(analog.Logic(w.Out[at(19e-9)], vdd)).To(BeTrue())
		// second pattern period, a=1 b=1 again
		Expect(analog.Logic(w.Out[at(24e-9)], vdd)).To(BeFalse())
	})

	It("inverts a pulse input", func() {
		w, err := analog.Transient(ctx, analog.NewInverter(), []analog.Source{analog.InverterPulse(o.Vdd, 5e-9, 10e-9)}, o)
		Expect(err).NotTo(HaveOccurred())
		for _, ns := range []float64{4, 14, 24, 34, 44} {
			Expect(w.In[0][at(ns*1e-9)]).To(BeNumerically("~", o.Vdd, 1e-9))
			Expect(analog.Logic(w.Out[at(ns*1e-9)], o.Vdd)).To(BeFalse(), "at %gns", ns)
		}
		for _, ns := range []float64{9, 19, 29, 39, 49} {
			Expect(w.In[0][at(ns*1e-9)]).To(BeZero())
			Expect(analog.Logic(w.Out[at(ns*1e-9)], o.Vdd)).To(BeTrue(), "at %gns", ns)
		}
	})

	It("charges the load gradually", func() {
		src := analog.Pulse{Initial: 5, Pulsed: 0, Delay: 1e-9, Width: 100e-9}
		w, err := analog.Transient(ctx, analog.NewInverter(), []analog.Source{src}, o)
		Expect(err).NotTo(HaveOccurred())
		Expect(w.Out[at(1e-9)]).To(BeNumerically("~", 0, 1e-6))
		mid := w.Out[at(1.2e-9)]
		Expect(mid).To(And(BeNumerically(">", 0), BeNumerically("<", o.Vdd)))
		Expect(w.Final()).To(BeNumerically("~", o.Vdd, 1e-3))
	})

	It("rejects bad arguments", func() {
		_, err := analog.Transient(ctx, analog.NewNand2(), []analog.Source{analog.DC(0)}, o)
		Expect(err).To(MatchError("NAND2 has 2 inputs, got 1 sources"))

		o.Step = 0
		_, err = analog.Transient(ctx, analog.NewInverter(), []analog.Source{analog.DC(0)}, o)
		Expect(err).To(MatchError(ContainSubstring("invalid time step")))
	})

	It("stops when the context is canceled", func() {
		c, cancel := context.WithCancel(ctx)
		cancel()
		_, err := analog.Transient(c, analog.NewInverter(), []analog.Source{analog.DC(0)}, o)
		Expect(err).To(MatchError(context.Canceled))
	})
})

var _ = Describe("Sweep", func() {
	It("reproduces the NAND truth table", func() {
		pts, err := analog.Sweep(context.Background(), analog.NewNand2(), analog.DefaultOptions())
		Expect(err).NotTo(HaveOccurred())
		Expect(pts).To(HaveLen(4))
		want := [][3]bool{
			{false, false, true},
			{false, true, true},
			{true, false, true},
			{true, true, false},
		}
		for i, p := range pts {
			Expect(p.In).To(Equal([]bool{want[i][0], want[i][1]}))
			Expect(p.Logic).To(Equal(want[i][2]), "a=%v b=%v", want[i][0], want[i][1])
		}
	})
})

var _ = Describe("WriteCSV", func() {
	It("writes one row per time point", func() {
		o := analog.DefaultOptions()
		o.End = 1e-9
		w, err := analog.Transient(context.Background(), analog.NewNand2(), []analog.Source{analog.DC(0), analog.DC(5)}, o)
		Expect(err).NotTo(HaveOccurred())

		var buf bytes.Buffer
		Expect(analog.WriteCSV(&buf, w, []string{"a", "b"})).To(Succeed())
		rows, err := csv.NewReader(&buf).ReadAll()
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(HaveLen(12))
		Expect(rows[0]).To(Equal([]string{"time", "a", "b", "out"}))
		Expect(rows[1]).To(Equal([]string{"0", "0", "5", "5"}))
	})

	It("checks the signal names", func() {
		w := &analog.Waveform{In: make([][]float64, 2)}
		Expect(analog.WriteCSV(&bytes.Buffer{}, w, []string{"a"})).To(MatchError("1 names for 2 inputs"))
	})
})
