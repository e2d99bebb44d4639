package digest

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFormatName(t *testing.T) {
	Convey("Given competitor names from the schedule feed", t, func() {
		Convey("Plain names are title-cased", func() {
			So(FormatName("JOHN SMITH"), ShouldEqual, "John Smith")
			So(FormatName("jane doe"), ShouldEqual, "Jane Doe")
		})

		Convey("Particles stay lowercase wherever they appear", func() {
			So(FormatName("van der berg"), ShouldEqual, "van Der Berg")
			So(FormatName("ANNA VAN DIJK"), ShouldEqual, "Anna van Dijk")
			So(FormatName("DE LA CRUZ"), ShouldEqual, "de la Cruz")
		})

		Convey("Hyphenated tokens are capitalized per sub-word", func() {
			So(FormatName("smith-jones"), ShouldEqual, "Smith-Jones")
			So(FormatName("MARY ANNE-LOUISE"), ShouldEqual, "Mary Anne-Louise")
		})

		Convey("Slash-joined pairs are formatted independently", func() {
			So(FormatName("a/b"), ShouldEqual, "A / B")
			So(FormatName("JOHN SMITH/jane doe"), ShouldEqual, "John Smith / Jane Doe")
			So(FormatName("smith / jones"), ShouldEqual, "Smith / Jones")
		})

		Convey("Empty input yields empty output", func() {
			So(FormatName(""), ShouldEqual, "")
		})

		Convey("Formatting is idempotent", func() {
			inputs := []string{
				"JOHN SMITH",
				"van der berg",
				"smith-jones",
				"a/b",
				"ANNA VAN DIJK",
				"",
			}
			for _, in := range inputs {
				once := FormatName(in)
				So(FormatName(once), ShouldEqual, once)
			}
		})
	})
}
