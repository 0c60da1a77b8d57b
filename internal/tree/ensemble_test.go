package tree_test

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fractree/internal/tree"
)

var _ = Describe("Ensemble", func() {
	It("generates one tree per seed in seed order", func() {
		e := tree.NewEnsemble(tree.Random, 300, 500, 4, 10)
		seqs, err := e.Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(seqs).To(HaveLen(4))

		for i, seq := range seqs {
			Expect(e.Seed(i)).To(Equal(int64(10 + i)))
			want := tree.NewSeededGenerator(e.Seed(i)).Generate(tree.Random, 300, 500)
			Expect(seq).To(Equal(want))
		}
	})

	It("stops on a cancelled context", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := tree.NewEnsemble(tree.Basic, 0, 0, 3, 1).Run(ctx)
		Expect(err).To(MatchError(context.Canceled))
	})

	It("averages per-depth means across members", func() {
		seqs, err := tree.NewEnsemble(tree.Basic, 300, 500, 3, 1).Run(context.Background())
		Expect(err).NotTo(HaveOccurred())

		means := tree.MeanLengthByDepth(seqs)
		Expect(means).To(HaveLen(11))
		for d, m := range means {
			Expect(m).To(BeNumerically("~", 100*math.Pow(0.8, float64(d)), 1e-9))
		}
		Expect(tree.MeanLengthByDepth(nil)).To(BeEmpty())
	})
})
