package balancer_test

import (
	"testing"

	"github.com/katalvlaran/chembalance/balancer"
)

func BenchmarkBalance(b *testing.B) {
	for _, in := range []string{
		"Al + O2 -> Al2O3",
		"K4[Fe(CN)6] + KMnO4 + H2SO4 -> KHSO4 + Fe2(SO4)3 + MnSO4 + HNO3 + CO2 + H2O",
	} {
		b.Run(in, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := balancer.Balance(in); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
