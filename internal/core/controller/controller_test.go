package controller_test

import (
	"bytes"
	"log"
	"math"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/paul0314/fitts-experiment/internal/core/controller"
	"github.com/paul0314/fitts-experiment/internal/core/experiment"
	"github.com/paul0314/fitts-experiment/internal/core/model"
)

var _ = Describe("Controller", func() {
	var (
		exp    *experiment.Model
		view   *fakeView
		now    time.Time
		logBuf *bytes.Buffer
	)

	advance := func(delta time.Duration) {
		now = now.Add(delta)
	}

	BeforeEach(func() {
		now = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
		logBuf = &bytes.Buffer{}
		exp = experiment.New()
		exp.SetClock(func() time.Time { return now })
		exp.SetLogger(log.New(logBuf, "", 0))
		exp.Initialize()
		view = &fakeView{}
		controller.New(exp, view)
	})

	It("binds every view input", func() {
		Expect(view.onClick).NotTo(BeNil())
		Expect(view.onWidth).NotTo(BeNil())
		Expect(view.onDistance).NotTo(BeNil())
		Expect(view.onValues).NotTo(BeNil())
		Expect(view.onStart).NotTo(BeNil())
	})

	Describe("start", func() {
		It("stamps t0 and shows the experiment", func() {
			advance(3 * time.Second)
			view.onStart()
			advance(250 * time.Millisecond)
			view.onClick(experiment.LeftNodeID)

			Expect(view.screens).To(Equal([]string{"fitts"}))
			Expect(exp.Times()).To(Equal([]time.Duration{250 * time.Millisecond}))
		})
	})

	Describe("clicking targets with the default configuration", func() {
		BeforeEach(func() {
			view.onStart()
		})

		It("toggles only on the active node", func() {
			view.onClick(experiment.LeftNodeID)
			Expect(exp.TrialCount()).To(Equal(1))
			Expect(exp.Node(experiment.RightNodeID).Active()).To(BeTrue())
			Expect(exp.Node(experiment.LeftNodeID).Active()).To(BeFalse())
			Expect(view.statusCalls).To(Equal([]bool{false}))

			view.onClick(experiment.LeftNodeID)
			Expect(exp.TrialCount()).To(Equal(1))
			Expect(view.statusCalls).To(HaveLen(1))

			view.onClick(experiment.RightNodeID)
			Expect(exp.TrialCount()).To(Equal(2))
			Expect(view.statusCalls).To(Equal([]bool{false, true}))
		})

		It("keeps exactly one node active", func() {
			for i := 0; i < 9; i++ {
				view.onClick(experiment.LeftNodeID)
				view.onClick(experiment.RightNodeID)
				left := exp.Node(experiment.LeftNodeID).Active()
				right := exp.Node(experiment.RightNodeID).Active()
				Expect(left).NotTo(Equal(right))
			}
		})

		It("ignores unknown ids and logs them", func() {
			Expect(func() { view.onClick(3) }).NotTo(Panic())
			Expect(exp.TrialCount()).To(BeZero())
			Expect(logBuf.String()).To(ContainSubstring("id=3"))
		})
	})

	Describe("trial threshold", func() {
		It("renders status before the N-th click and results after it", func() {
			view.onValues(2)
			view.onStart()

			advance(400 * time.Millisecond)
			view.onClick(experiment.LeftNodeID)
			Expect(view.resultsCalls).To(BeEmpty())
			Expect(view.statusCalls).To(HaveLen(1))

			advance(300 * time.Millisecond)
			view.onClick(experiment.RightNodeID)
			Expect(view.statusCalls).To(HaveLen(1))
			Expect(view.resultsCalls).To(HaveLen(1))

			result := view.resultsCalls[0]
			Expect(result.Distance).To(Equal(450.0))
			Expect(result.Width).To(Equal(100.0))
			Expect(result.Times).To(Equal([]time.Duration{400 * time.Millisecond, 300 * time.Millisecond}))
		})

		It("re-checks on every further toggle", func() {
			view.onValues(1)
			view.onClick(experiment.LeftNodeID)
			view.onClick(experiment.RightNodeID)

			Expect(view.resultsCalls).To(HaveLen(2))
			Expect(view.resultsCalls[1].Times).To(HaveLen(2))
		})

		It("reports right away when the trial count is not a number", func() {
			view.onValues(math.NaN())
			view.onClick(experiment.LeftNodeID)

			Expect(view.statusCalls).To(BeEmpty())
			Expect(view.resultsCalls).To(HaveLen(1))
		})

		It("reports the configured geometry", func() {
			view.onValues(1)
			view.onWidth(60)
			view.onDistance(300)
			view.onClick(experiment.LeftNodeID)

			Expect(view.resultsCalls[0].Width).To(Equal(60.0))
			Expect(view.resultsCalls[0].Distance).To(Equal(300.0))
		})
	})

	Describe("geometry changes", func() {
		It("forwards the width and distance pair", func() {
			view.onWidth(50)
			view.onDistance(200)

			Expect(view.geometryCalls).To(Equal([]geometryCall{{50, 450}, {50, 200}}))
			last := view.geometryCalls[1]
			Expect(model.Span(last.Width, last.Distance)).To(Equal(300.0))
		})

		It("does not de-duplicate identical updates", func() {
			view.onDistance(200)
			view.onDistance(200)

			Expect(view.geometryCalls).To(HaveLen(2))
			Expect(view.geometryCalls[0]).To(Equal(view.geometryCalls[1]))
		})

		It("does not render anything for trial count changes", func() {
			view.onValues(5)

			Expect(view.geometryCalls).To(BeEmpty())
			Expect(exp.Config().Trials).To(Equal(5.0))
		})
	})

	Describe("exported handlers", func() {
		It("apply configuration through the same path as view events", func() {
			ctrl := controller.New(exp, view)
			ctrl.HandleWidthChange(70)
			ctrl.HandleDistanceChange(150)
			ctrl.HandleValuesChange(4)

			Expect(exp.Config()).To(Equal(model.Config{Distance: 150, Width: 70, Trials: 4}))
			Expect(view.geometryCalls).To(HaveLen(2))
		})
	})
})
