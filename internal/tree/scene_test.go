package tree_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fractree/internal/tree"
)

var _ = Describe("Scene", func() {
	var scene *tree.Scene

	BeforeEach(func() {
		scene = tree.NewScene(tree.NewSeededGenerator(42), 300, 500)
	})

	It("starts on the basic variant with every sequence generated", func() {
		Expect(scene.Active()).To(Equal(tree.Basic))
		Expect(scene.Sequence(tree.Basic)).To(HaveLen(2047))
		Expect(scene.Sequence(tree.Random)).To(HaveLen(8191))
		Expect(scene.Sequence(tree.Colored)).To(HaveLen(2047))
		Expect(scene.Current()).To(Equal(scene.Sequence(tree.Basic)))
	})

	It("remembers the origin", func() {
		x, y := scene.Origin()
		Expect(x).To(Equal(300.0))
		Expect(y).To(Equal(500.0))
	})

	Describe("Select", func() {
		It("activates the chosen variant", func() {
			scene.Select(tree.Colored)
			Expect(scene.Active()).To(Equal(tree.Colored))
			Expect(scene.Current()).To(HaveLen(2047))
			Expect(scene.Current()[0].Width).To(Equal(11.0))
		})

		It("regenerates only the selected variant", func() {
			basic := scene.Sequence(tree.Basic)
			colored := scene.Sequence(tree.Colored)
			before := append(tree.Sequence(nil), scene.Sequence(tree.Random)...)

			scene.Select(tree.Random)

			Expect(scene.Sequence(tree.Basic)).To(Equal(basic))
			Expect(scene.Sequence(tree.Colored)).To(Equal(colored))
			Expect(scene.Current()).To(HaveLen(len(before)))
			Expect(scene.Current()).NotTo(Equal(before))
		})

		It("leaves previously handed out sequences intact", func() {
			old := scene.Current()
			first := old[1]

			scene.Select(tree.Basic)

			Expect(old[1]).To(Equal(first))
			Expect(scene.Current()).To(Equal(old))
		})
	})
})

var _ = Describe("Generator", func() {
	DescribeTable("sequence size",
		func(v tree.Variant, size int) {
			seq := tree.NewGenerator(nil).Generate(v, 300, 500)
			Expect(seq).To(HaveLen(size))
			Expect(seq).To(HaveLen(tree.RuleFor(v).Size()))
		},
		Entry("basic", tree.Basic, 2047),
		Entry("random", tree.Random, 8191),
		Entry("colored", tree.Colored, 2047),
	)

	It("emits the basic trunk first", func() {
		root := tree.NewGenerator(nil).Generate(tree.Basic, 300, 500)[0]
		Expect(root.X1).To(Equal(300.0))
		Expect(root.Y1).To(Equal(500.0))
		Expect(root.X2).To(Equal(300.0))
		Expect(root.Y2).To(Equal(400.0))
	})

	It("produces the same colored tree for the same seed", func() {
		a := tree.NewSeededGenerator(9).Generate(tree.Colored, 300, 500)
		b := tree.NewSeededGenerator(9).Generate(tree.Colored, 300, 500)
		Expect(a).To(Equal(b))
	})
})
