package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRupiah(t *testing.T) {
	cases := map[int64]string{
		0:        "Rp 0",
		950:      "Rp 950",
		25000000: "Rp 25.000.000",
		1500:     "Rp 1.500",
		-17500:   "-Rp 17.500",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatRupiah(in))
	}
}
