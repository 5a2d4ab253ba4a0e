package schema_test

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/collegescope/api/internal/app/schema"
)

func TestResolve_FallbackChain(t *testing.T) {
	convey.Convey("Given the outcomes field table", t, func() {
		table := schema.Outcomes()

		convey.Convey("When the primary cost path is present", func() {
			doc := bson.M{"cost": bson.M{"avg_net_price": bson.M{"overall": 12345.0}}}

			convey.Convey("Then it wins", func() {
				v := table.ResolveFloat(doc, schema.FieldCost)
				convey.So(v, convey.ShouldNotBeNil)
				convey.So(*v, convey.ShouldEqual, 12345.0)
			})
		})

		convey.Convey("When only a lower-priority path carries a value", func() {
			doc := bson.M{"cost": bson.M{
				"avg_net_price": bson.M{"public": 9000.0},
				"tuition":       bson.M{"in_state": 7000.0},
			}}

			convey.Convey("Then the highest-priority present candidate wins", func() {
				v := table.ResolveFloat(doc, schema.FieldCost)
				convey.So(v, convey.ShouldNotBeNil)
				convey.So(*v, convey.ShouldEqual, 9000.0)
			})
		})

		convey.Convey("When an intermediate segment is absent", func() {
			doc := bson.M{"cost": bson.M{}}

			convey.Convey("Then resolution yields nil without panicking", func() {
				convey.So(table.Resolve(doc, schema.FieldCost), convey.ShouldBeNil)
			})
		})

		convey.Convey("When a segment holds a scalar instead of a document", func() {
			doc := bson.M{"cost": 5.0}

			convey.Convey("Then resolution yields nil", func() {
				convey.So(table.Resolve(doc, schema.FieldCost), convey.ShouldBeNil)
			})
		})

		convey.Convey("When the logical field is unknown", func() {
			convey.So(table.Resolve(bson.M{}, "nonexistent"), convey.ShouldBeNil)
		})
	})
}

func TestResolve_NumericCoercion(t *testing.T) {
	convey.Convey("Given documents with driver-native numeric types", t, func() {
		table := schema.Schools()

		convey.Convey("An int32 size resolves through ResolveInt", func() {
			doc := bson.M{"latest": bson.M{"student": bson.M{"size": int32(4200)}}}
			v := table.ResolveInt(doc, schema.FieldSize)
			convey.So(v, convey.ShouldNotBeNil)
			convey.So(*v, convey.ShouldEqual, 4200)
		})

		convey.Convey("An int64 size resolves as well", func() {
			doc := bson.M{"latest": bson.M{"size": int64(150)}}
			v := table.ResolveInt(doc, schema.FieldSize)
			convey.So(v, convey.ShouldNotBeNil)
			convey.So(*v, convey.ShouldEqual, 150)
		})
	})
}

func TestRangeFilter(t *testing.T) {
	convey.Convey("Given the schools field table", t, func() {
		table := schema.Schools()

		convey.Convey("A single-candidate field yields one condition", func() {
			min := 0.5
			f, err := table.RangeFilter(schema.FieldCompletionRate, &min, nil)
			convey.So(err, convey.ShouldBeNil)
			convey.So(f, convey.ShouldResemble, bson.M{
				"latest.completion.completion_rate_4yr_150nt": bson.M{"$gte": 0.5},
			})
		})

		convey.Convey("A multi-candidate field yields an $or of per-path ranges", func() {
			min, max := 10000.0, 30000.0
			f, err := table.RangeFilter(schema.FieldCost, &min, &max)
			convey.So(err, convey.ShouldBeNil)

			or, ok := f["$or"].([]bson.M)
			convey.So(ok, convey.ShouldBeTrue)
			convey.So(len(or), convey.ShouldEqual, 4)
			convey.So(or[0], convey.ShouldResemble, bson.M{
				"latest.cost.avg_net_price.overall": bson.M{"$gte": 10000.0, "$lte": 30000.0},
			})
		})

		convey.Convey("No bounds yields no condition", func() {
			f, err := table.RangeFilter(schema.FieldCost, nil, nil)
			convey.So(err, convey.ShouldBeNil)
			convey.So(f, convey.ShouldBeNil)
		})

		convey.Convey("An unknown logical field is an error", func() {
			min := 1.0
			_, err := table.RangeFilter("bogus", &min, nil)
			convey.So(err, convey.ShouldNotBeNil)
		})
	})
}

func TestExpr(t *testing.T) {
	convey.Convey("Given the outcomes field table", t, func() {
		table := schema.Outcomes()

		convey.Convey("A single-candidate field is a plain reference", func() {
			expr, err := table.Expr(schema.FieldEarnings10yr)
			convey.So(err, convey.ShouldBeNil)
			convey.So(expr, convey.ShouldEqual, "$earnings.10_yrs_after_entry.median")
		})

		convey.Convey("A multi-candidate field is an $ifNull chain in priority order", func() {
			expr, err := table.Expr(schema.FieldCost)
			convey.So(err, convey.ShouldBeNil)

			chain, ok := expr.(bson.M)
			convey.So(ok, convey.ShouldBeTrue)
			args, ok := chain["$ifNull"].(bson.A)
			convey.So(ok, convey.ShouldBeTrue)
			convey.So(args[0], convey.ShouldEqual, "$cost.avg_net_price.overall")
		})
	})
}

func TestWithPrefix(t *testing.T) {
	convey.Convey("Given a prefixed table for a joined context", t, func() {
		joined := schema.Schools().WithPrefix("school_info.")

		convey.Convey("Paths carry the prefix", func() {
			path, err := joined.Primary(schema.FieldState)
			convey.So(err, convey.ShouldBeNil)
			convey.So(path, convey.ShouldEqual, "school_info.school.state")
		})

		convey.Convey("The original table is untouched", func() {
			path, err := schema.Schools().Primary(schema.FieldState)
			convey.So(err, convey.ShouldBeNil)
			convey.So(path, convey.ShouldEqual, "school.state")
		})
	})
}
