package schema

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/collegescope/api/internal/app/models"
)

func TestValidate_ShippedTables(t *testing.T) {
	convey.Convey("The shipped field tables validate against the models", t, func() {
		convey.So(Validate(), convey.ShouldBeNil)
	})
}

func TestValidateAgainst_RejectsUnknownPath(t *testing.T) {
	convey.Convey("Given a mapping with a typo in one candidate path", t, func() {
		m := &Mapping{
			collection: "schools",
			fields: map[string][]string{
				FieldName: {"school.name"},
				FieldCost: {"latest.cost.avg_netprice.overall"},
			},
		}

		convey.Convey("Then validation fails naming the bad path", func() {
			err := m.validateAgainst(models.School{})
			convey.So(err, convey.ShouldNotBeNil)
			convey.So(err.Error(), convey.ShouldContainSubstring, "avg_netprice")
		})
	})
}

func TestValidateAgainst_MapWildcards(t *testing.T) {
	convey.Convey("Given a mapping reaching into a map-typed field", t, func() {
		m := &Mapping{
			collection: "academics_programs",
			fields: map[string][]string{
				"computer_share": {"academics.program_percentage.computer"},
			},
		}

		convey.Convey("Then any key under the map is accepted", func() {
			convey.So(m.validateAgainst(models.AcademicsRecord{}), convey.ShouldBeNil)
		})
	})
}
