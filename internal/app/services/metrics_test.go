package services

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestComputeROI(t *testing.T) {
	convey.Convey("Given cost and earnings figures", t, func() {
		cost := 20000.0
		earnings := 60000.0

		convey.Convey("When both are present and positive", func() {
			roi, payback := ComputeROI(&cost, &earnings)

			convey.Convey("Then ROI projects earnings against the program cost", func() {
				convey.So(roi, convey.ShouldNotBeNil)
				// (60000*10 - 20000*4) / (20000*4)
				convey.So(*roi, convey.ShouldAlmostEqual, 6.5, 0.0001)
			})
			convey.Convey("And payback is the program cost in earnings-years", func() {
				convey.So(payback, convey.ShouldNotBeNil)
				convey.So(*payback, convey.ShouldAlmostEqual, 80000.0/60000.0, 0.0001)
			})
		})

		convey.Convey("When cost is missing", func() {
			roi, payback := ComputeROI(nil, &earnings)
			convey.So(roi, convey.ShouldBeNil)
			convey.So(payback, convey.ShouldBeNil)
		})

		convey.Convey("When earnings are missing", func() {
			roi, payback := ComputeROI(&cost, nil)
			convey.So(roi, convey.ShouldBeNil)
			convey.So(payback, convey.ShouldBeNil)
		})

		convey.Convey("When cost is zero", func() {
			zero := 0.0
			roi, payback := ComputeROI(&zero, &earnings)
			convey.So(roi, convey.ShouldBeNil)
			convey.So(payback, convey.ShouldBeNil)
		})

		convey.Convey("When earnings are negative", func() {
			neg := -1.0
			roi, payback := ComputeROI(&cost, &neg)
			convey.So(roi, convey.ShouldBeNil)
			convey.So(payback, convey.ShouldBeNil)
		})
	})
}
